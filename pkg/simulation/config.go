package simulation

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lao-tseu-is-alive/go-aquarium-boids/pkg/behavior"
	"github.com/lao-tseu-is-alive/go-aquarium-boids/pkg/geometry"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed aquarium.schema.json
var embeddedSchema string

const embeddedSchemaURL = "aquarium.schema.json"

// ErrInvalidConfig is returned when a configuration is well formed but cannot run.
var ErrInvalidConfig = errors.New("invalid configuration")

// TankConfig holds the full extents of the tank, centered on the origin.
type TankConfig struct {
	Width  float64 `json:"width" toml:"width" yaml:"width"`
	Height float64 `json:"height" toml:"height" yaml:"height"`
	Depth  float64 `json:"depth" toml:"depth" yaml:"depth"`
}

// SpeciesConfig describes one school. Schools never interact with each other.
type SpeciesConfig struct {
	Name     string  `json:"name" toml:"name" yaml:"name"`
	Count    int     `json:"count" toml:"count" yaml:"count"`
	Scale    float64 `json:"scale" toml:"scale" yaml:"scale"`          // visual scale, radius = 2 * scale
	MaxSpeed float64 `json:"maxSpeed" toml:"maxSpeed" yaml:"maxSpeed"` // distance per tick
	MaxForce float64 `json:"maxForce" toml:"maxForce" yaml:"maxForce"` // steering cap per tick
	Color    string  `json:"color,omitempty" toml:"color" yaml:"color"`
}

type Config struct {
	Tank    TankConfig      `json:"tank" toml:"tank" yaml:"tank"`
	Species []SpeciesConfig `json:"species" toml:"species" yaml:"species"`

	// Seed makes spawns reproducible, 0 picks a random one.
	Seed uint64 `json:"seed" toml:"seed" yaml:"seed"`
	// Workers used by the force phase of each school (see behavior.Flock).
	Workers int `json:"workers" toml:"workers" yaml:"workers"`

	// Rendering
	WindowWidth     int  `json:"windowWidth" toml:"windowWidth" yaml:"windowWidth"`
	WindowHeight    int  `json:"windowHeight" toml:"windowHeight" yaml:"windowHeight"`
	DisplaySideView bool `json:"displaySideView" toml:"displaySideView" yaml:"displaySideView"`
	DisplayTank     bool `json:"displayTank" toml:"displayTank" yaml:"displayTank"`

	// ListenAddr enables the websocket snapshot feed when not empty, e.g. ":8080".
	ListenAddr string `json:"listenAddr" toml:"listenAddr" yaml:"listenAddr"`

	LogLevel  string `json:"logLevel" toml:"logLevel" yaml:"logLevel"`
	LogFormat string `json:"logFormat" toml:"logFormat" yaml:"logFormat"`
}

// DefaultConfig is the classic aquarium: a 70x30x50 tank with
// a school of fish and a smaller, slower group of turtles.
func DefaultConfig() *Config {
	return &Config{
		Tank: TankConfig{Width: 70, Height: 30, Depth: 50},
		Species: []SpeciesConfig{
			{Name: "fish", Count: 15, Scale: 0.3, MaxSpeed: 1.2, MaxForce: 0.12, Color: "#ff6600"},
			{Name: "turtle", Count: 5, Scale: 2, MaxSpeed: 0.7, MaxForce: 0.08, Color: "#00cc44"},
		},
		Seed:            0,
		Workers:         0,
		WindowWidth:     1100,
		WindowHeight:    720,
		DisplaySideView: true,
		DisplayTank:     true,
		ListenAddr:      "",
		LogLevel:        "info",
		LogFormat:       "console",
	}
}

// Bounds returns the tank extents as a vector.
func (c *Config) Bounds() geometry.Vector3 {
	return geometry.Vector3{X: c.Tank.Width, Y: c.Tank.Height, Z: c.Tank.Depth}
}

// Population returns the number of agents over all species.
func (c *Config) Population() int {
	n := 0
	for _, s := range c.Species {
		n += s.Count
	}
	return n
}

// Params converts the species overrides into behavioural parameters.
func (s SpeciesConfig) Params() behavior.Params {
	return behavior.Params{MaxSpeed: s.MaxSpeed, MaxForce: s.MaxForce, Scale: s.Scale}
}

// Radius returns the collision radius derived from the visual scale.
func (s SpeciesConfig) Radius() float64 {
	return s.Scale * behavior.RadiusPerScale
}

// RGBA parses Color ("#rrggbb"), falling back to white.
func (s SpeciesConfig) RGBA() color.RGBA {
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	if len(s.Color) != 7 || s.Color[0] != '#' {
		return white
	}
	v, err := strconv.ParseUint(s.Color[1:], 16, 32)
	if err != nil {
		return white
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
}

// Validate checks what the schema cannot express: every species must fit in the tank
// once its containment margins are removed, and names must be unique.
func (c *Config) Validate() error {
	if c.Population() == 0 {
		return fmt.Errorf("%w: the tank is empty", ErrInvalidConfig)
	}
	seen := make(map[string]bool, len(c.Species))
	for _, s := range c.Species {
		if seen[s.Name] {
			return fmt.Errorf("%w: species %q declared twice", ErrInvalidConfig, s.Name)
		}
		seen[s.Name] = true

		margin := 2 * (behavior.WallMargin + s.Radius())
		if c.Tank.Width <= margin || c.Tank.Depth <= margin || c.Tank.Height <= margin+behavior.FloorClearance {
			return fmt.Errorf("%w: species %q (radius %.2f) does not fit in a %.0fx%.0fx%.0f tank",
				ErrInvalidConfig, s.Name, s.Radius(), c.Tank.Width, c.Tank.Height, c.Tank.Depth)
		}
	}
	return nil
}

// LoadConfig loads configuration from a JSON, TOML or YAML file on top of DefaultConfig,
// validates it against the schema and checks it can run.
// An empty schemaFile uses the schema embedded in the binary.
func LoadConfig(configFile string, schemaFile string) (*Config, error) {
	// 1. Compile Schema
	sch, err := compileSchema(schemaFile)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	// 2. Read Config File
	b, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}

	// 3. Decode on top of the defaults, rejecting unknown keys
	cfg := DefaultConfig()
	defaults := cfg.Species
	cfg.Species = nil
	if err := decodeConfig(configFile, b, cfg); err != nil {
		return nil, err
	}
	if len(cfg.Species) == 0 {
		cfg.Species = defaults
	}

	// 4. Validate
	if err := validateSchema(sch, cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func compileSchema(schemaFile string) (*jsonschema.Schema, error) {
	if schemaFile == "" {
		return jsonschema.CompileString(embeddedSchemaURL, embeddedSchema)
	}
	return jsonschema.Compile(schemaFile)
}

func decodeConfig(name string, b []byte, cfg *Config) error {
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(b))
		dec.DisallowUnknownFields()
		if err := dec.Decode(cfg); err != nil {
			return fmt.Errorf("failed to decode config json: %w", err)
		}
	case ".toml":
		md, err := toml.Decode(string(b), cfg)
		if err != nil {
			return fmt.Errorf("failed to decode config toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return fmt.Errorf("%w: unknown keys %v", ErrInvalidConfig, undecoded)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(b))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil {
			return fmt.Errorf("failed to decode config yaml: %w", err)
		}
	default:
		return fmt.Errorf("%w: unsupported config format %q", ErrInvalidConfig, ext)
	}
	return nil
}

// validateSchema validates the merged configuration, so defaults are checked too.
func validateSchema(sch *jsonschema.Schema, cfg *Config) error {
	b, err := json.Marshal(cfg)
	if err != nil {
		return err
	}
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	return sch.Validate(v)
}
