package solar

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/solarlune/soft3d"
	"github.com/solarlune/soft3d/math32"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every error Config.Validate returns.
var ErrInvalidConfig = errors.New("invalid config")

// HexColor is a soft3d.Color that reads and writes itself in YAML as "#RRGGBB" (opaque) or "#AARRGGBB".
type HexColor soft3d.Color

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *HexColor) UnmarshalYAML(value *yaml.Node) error {

	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}

	hex := strings.TrimPrefix(strings.TrimPrefix(s, "#"), "0x")

	if len(hex) != 6 && len(hex) != 8 {
		return fmt.Errorf("line %d: color %q should look like #RRGGBB or #AARRGGBB", value.Line, s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return fmt.Errorf("line %d: color %q: %w", value.Line, s, err)
	}

	if len(hex) == 6 {
		v |= 0xFF000000
	}

	*c = HexColor(v)

	return nil

}

// MarshalYAML implements yaml.Marshaler.
func (c HexColor) MarshalYAML() (any, error) {
	if c>>24 == 0xFF {
		return fmt.Sprintf("#%06X", uint32(c)&0xFFFFFF), nil
	}
	return fmt.Sprintf("#%08X", uint32(c)), nil
}

// Color returns the HexColor as a soft3d.Color.
func (c HexColor) Color() soft3d.Color {
	return soft3d.Color(c)
}

// WindowConfig is the size and title of the render target.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// CameraConfig configures the FreeCamera and the projection.
type CameraConfig struct {
	Position    [3]float32 `yaml:"position"`
	FOV         float32    `yaml:"fov"` // Vertical field of view, in degrees
	Near        float32    `yaml:"near"`
	Far         float32    `yaml:"far"`
	Speed       float32    `yaml:"speed"`
	Boost       float32    `yaml:"boost"` // Speed multiplier while the boost key is held
	Sensitivity float32    `yaml:"sensitivity"`
}

// SceneConfig configures what's drawn behind and around the bodies.
type SceneConfig struct {
	ClearColor      HexColor `yaml:"clear_color"`
	Stars           int      `yaml:"stars"`
	StarSeed        int64    `yaml:"star_seed"`
	SphereLat       int      `yaml:"sphere_lat"`
	SphereLon       int      `yaml:"sphere_lon"`
	CollisionMargin float32  `yaml:"collision_margin"` // The camera is kept at least Radius * CollisionMargin away from every body
}

// WarpConfig configures warping to planets.
type WarpConfig struct {
	Duration float32    `yaml:"duration"`
	Easing   string     `yaml:"easing"`
	Offset   [3]float32 `yaml:"offset"` // Where the camera ends up, relative to the planet
}

// BodyConfig describes a single Body.
type BodyConfig struct {
	Name        string   `yaml:"name"`
	Radius      float32  `yaml:"radius"`
	OrbitRadius float32  `yaml:"orbit_radius"`
	OrbitSpeed  float32  `yaml:"orbit_speed"`
	SpinSpeed   float32  `yaml:"spin_speed"`
	Color       HexColor `yaml:"color"`
}

// NewBody creates a Body from the BodyConfig.
func (bc BodyConfig) NewBody() *Body {
	return NewBody(bc.Name, bc.Radius, bc.OrbitRadius, bc.OrbitSpeed, bc.SpinSpeed, bc.Color.Color())
}

// ShipConfig describes the Ship following the camera. An empty Model disables the Ship.
type ShipConfig struct {
	Model        string   `yaml:"model"`
	LoadScale    float32  `yaml:"load_scale"`
	Scale        float32  `yaml:"scale"`
	Distance     float32  `yaml:"distance"`
	HeightOffset float32  `yaml:"height_offset"`
	Color        HexColor `yaml:"color"`
}

// Config holds everything needed to build and render a solar system scene.
type Config struct {
	Window  WindowConfig `yaml:"window"`
	Camera  CameraConfig `yaml:"camera"`
	Scene   SceneConfig  `yaml:"scene"`
	Warp    WarpConfig   `yaml:"warp"`
	Sun     BodyConfig   `yaml:"sun"`
	Planets []BodyConfig `yaml:"planets"`
	Ship    ShipConfig   `yaml:"ship"`
}

// DefaultConfig returns the stock configuration: a 1280x720 view of NewDefaultSystem's bodies.
func DefaultConfig() Config {

	return Config{

		Window: WindowConfig{
			Title:  "Solar System - Software Renderer",
			Width:  1280,
			Height: 720,
		},

		Camera: CameraConfig{
			Position:    [3]float32{0, 5, 30},
			FOV:         60,
			Near:        0.1,
			Far:         1000,
			Speed:       12,
			Boost:       3,
			Sensitivity: 0.002,
		},

		Scene: SceneConfig{
			ClearColor:      0xFF000A0F,
			Stars:           300,
			StarSeed:        1,
			SphereLat:       16,
			SphereLon:       16,
			CollisionMargin: 1.5,
		},

		Warp: WarpConfig{
			Duration: DefaultWarpDuration,
			Easing:   "smoothstep",
			Offset:   [3]float32{0, 3, 12},
		},

		Sun: BodyConfig{Name: "Sun", Radius: 4, SpinSpeed: 0.3, Color: 0xFFFFDD44},

		Planets: []BodyConfig{
			{Name: "PlanetA", Radius: 1.5, OrbitRadius: 10, OrbitSpeed: 0.4, SpinSpeed: 0.8, Color: 0xFF44AAFF},
			{Name: "PlanetB", Radius: 1, OrbitRadius: 16, OrbitSpeed: 0.3, SpinSpeed: 1.2, Color: 0xFFFF8844},
			{Name: "PlanetC", Radius: 2.5, OrbitRadius: 24, OrbitSpeed: 0.1, SpinSpeed: 0.4, Color: 0xFF88FF44},
		},

		Ship: ShipConfig{
			LoadScale:    1,
			Scale:        0.4,
			Distance:     6,
			HeightOffset: -1,
			Color:        0xFFFFFFFF,
		},
	}

}

// LoadConfig reads a YAML config file. Anything the file leaves out keeps its DefaultConfig value.
// The result is validated before it's returned.
func LoadConfig(path string) (Config, error) {

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("solar: read config: %w", err)
	}

	return ParseConfig(data)

}

// ParseConfig parses YAML config data over DefaultConfig and validates the result.
func ParseConfig(data []byte) (Config, error) {

	cfg := DefaultConfig()

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("solar: parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	soft3d.Logger().Debug("config loaded", "bodies", len(cfg.Planets)+1, "stars", cfg.Scene.Stars)

	return cfg, nil

}

// Validate returns every problem with the Config, joined, or nil if there are none.
func (cfg Config) Validate() error {

	var errs []error

	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
		}
	}

	check(cfg.Window.Width > 0 && cfg.Window.Height > 0, "window size must be positive, got %d x %d", cfg.Window.Width, cfg.Window.Height)
	check(cfg.Camera.FOV > 0 && cfg.Camera.FOV < 180, "camera fov must be between 0 and 180 degrees, got %g", cfg.Camera.FOV)
	check(cfg.Camera.Near > 0 && cfg.Camera.Far > cfg.Camera.Near, "camera near and far planes must satisfy 0 < near < far, got %g and %g", cfg.Camera.Near, cfg.Camera.Far)
	check(cfg.Scene.Stars >= 0, "star count can't be negative, got %d", cfg.Scene.Stars)
	check(cfg.Scene.CollisionMargin >= 0, "collision margin can't be negative, got %g", cfg.Scene.CollisionMargin)
	check(cfg.Warp.Duration > 0, "warp duration must be positive, got %g", cfg.Warp.Duration)

	if _, ok := EasingByName(cfg.Warp.Easing); !ok {
		check(false, "unknown warp easing %q", cfg.Warp.Easing)
	}

	for _, body := range append([]BodyConfig{cfg.Sun}, cfg.Planets...) {
		check(body.Radius > 0, "body %q must have a positive radius, got %g", body.Name, body.Radius)
		check(body.OrbitRadius >= 0, "body %q can't have a negative orbit radius, got %g", body.Name, body.OrbitRadius)
	}

	if cfg.Ship.Model != "" {
		check(cfg.Ship.LoadScale > 0 && cfg.Ship.Scale > 0, "ship scales must be positive, got %g and %g", cfg.Ship.LoadScale, cfg.Ship.Scale)
	}

	return errors.Join(errs...)

}

// Aspect returns the window's width / height ratio.
func (cfg Config) Aspect() float32 {
	return float32(cfg.Window.Width) / float32(cfg.Window.Height)
}

// Projection returns the perspective projection matrix the camera settings describe.
func (cfg Config) Projection() soft3d.Matrix4 {
	return soft3d.NewProjectionPerspective(math32.ToRadians(cfg.Camera.FOV), cfg.Aspect(), cfg.Camera.Near, cfg.Camera.Far)
}

// NewSystem builds the System the Config describes, with a shared sphere Mesh of the configured resolution.
func (cfg Config) NewSystem() *System {

	planets := make([]*Body, 0, len(cfg.Planets))
	for _, pc := range cfg.Planets {
		planets = append(planets, pc.NewBody())
	}

	return NewSystem(soft3d.NewSphereMesh(cfg.Scene.SphereLat, cfg.Scene.SphereLon), cfg.Sun.NewBody(), planets...)

}

// NewCamera creates the FreeCamera the Config describes.
func (cfg Config) NewCamera() *FreeCamera {
	p := cfg.Camera.Position
	cam := NewFreeCamera(soft3d.NewVector3(p[0], p[1], p[2]))
	cam.Speed = cfg.Camera.Speed
	cam.Sensitivity = cfg.Camera.Sensitivity
	return cam
}

// NewWarp creates the Warp the Config describes.
func (cfg Config) NewWarp() *Warp {
	easing, _ := EasingByName(cfg.Warp.Easing)
	return NewWarp(cfg.Warp.Duration, easing)
}

// WarpTarget returns where a warp to the Body given should end.
func (cfg Config) WarpTarget(body *Body) soft3d.Vector3 {
	o := cfg.Warp.Offset
	return body.Position().Add(soft3d.NewVector3(o[0], o[1], o[2]))
}

// NewShip loads the configured ship model and wraps it in a Ship. It returns nil and no error if no model is configured.
// A relative model path is resolved against baseDir.
func (cfg Config) NewShip(baseDir string) (*Ship, error) {

	if cfg.Ship.Model == "" {
		return nil, nil
	}

	path := cfg.Ship.Model
	if !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, path)
	}

	mesh, err := soft3d.LoadOBJFile(path, cfg.Ship.LoadScale)
	if err != nil {
		return nil, fmt.Errorf("solar: ship: %w", err)
	}

	ship := NewShip(mesh)
	ship.Scale = cfg.Ship.Scale
	ship.Distance = cfg.Ship.Distance
	ship.HeightOffset = cfg.Ship.HeightOffset
	ship.Color = cfg.Ship.Color.Color()

	return ship, nil

}
