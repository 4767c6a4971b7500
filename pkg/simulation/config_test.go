package simulation

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 20, cfg.Population())
	sch, err := compileSchema("")
	require.NoError(t, err)
	assert.NoError(t, validateSchema(sch, cfg))
}

func TestLoadConfig_Formats(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "json",
			file: "aquarium.json",
			content: `{
  "tank": {"width": 90, "height": 40, "depth": 60},
  "species": [{"name": "tetra", "count": 30, "scale": 0.2, "maxSpeed": 1.5, "maxForce": 0.1, "color": "#3366ff"}],
  "seed": 7,
  "workers": 2
}`,
		},
		{
			name: "toml",
			file: "aquarium.toml",
			content: `seed = 7
workers = 2

[tank]
width = 90
height = 40
depth = 60

[[species]]
name = "tetra"
count = 30
scale = 0.2
maxSpeed = 1.5
maxForce = 0.1
color = "#3366ff"
`,
		},
		{
			name: "yaml",
			file: "aquarium.yaml",
			content: `seed: 7
workers: 2
tank:
  width: 90
  height: 40
  depth: 60
species:
  - name: tetra
    count: 30
    scale: 0.2
    maxSpeed: 1.5
    maxForce: 0.1
    color: "#3366ff"
`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfig(writeConfig(t, tt.file, tt.content), "")
			require.NoError(t, err)
			assert.Equal(t, TankConfig{Width: 90, Height: 40, Depth: 60}, cfg.Tank)
			require.Len(t, cfg.Species, 1)
			assert.Equal(t, "tetra", cfg.Species[0].Name)
			assert.Equal(t, 30, cfg.Species[0].Count)
			assert.Equal(t, color.RGBA{R: 0x33, G: 0x66, B: 0xff, A: 0xff}, cfg.Species[0].RGBA())
			assert.Equal(t, uint64(7), cfg.Seed)
			assert.Equal(t, 2, cfg.Workers)
			// untouched keys keep their defaults
			assert.Equal(t, "info", cfg.LogLevel)
			assert.True(t, cfg.DisplaySideView)
		})
	}
}

func TestLoadConfig_KeepsDefaultSpecies(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "a.json", `{"tank": {"width": 80, "height": 30, "depth": 50}}`), "")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Species, cfg.Species)
	assert.Equal(t, 80.0, cfg.Tank.Width)
}

func TestLoadConfig_Rejects(t *testing.T) {
	tests := []struct {
		name         string
		file         string
		content      string
		wantSemantic bool
	}{
		{name: "unknown json key", file: "a.json", content: `{"tank": {"width": 70, "height": 30, "depth": 50}, "sharks": 3}`},
		{name: "unknown toml key", file: "a.toml", content: "sharks = 3\n", wantSemantic: true},
		{name: "unknown yaml key", file: "a.yml", content: "sharks: 3\n"},
		{name: "negative count", file: "a.json", content: `{"species": [{"name": "fish", "count": -1, "scale": 0.3, "maxSpeed": 1, "maxForce": 0.1}]}`},
		{name: "bad color", file: "a.json", content: `{"species": [{"name": "fish", "count": 1, "scale": 0.3, "maxSpeed": 1, "maxForce": 0.1, "color": "orange"}]}`},
		{name: "bad log level", file: "a.yaml", content: "logLevel: verbose\n"},
		{name: "tank too small", file: "a.json", content: `{"tank": {"width": 70, "height": 10, "depth": 50}}`, wantSemantic: true},
		{name: "duplicate species", file: "a.yaml", content: "species:\n  - {name: fish, count: 1, scale: 0.3, maxSpeed: 1, maxForce: 0.1}\n  - {name: fish, count: 2, scale: 0.3, maxSpeed: 1, maxForce: 0.1}\n", wantSemantic: true},
		{name: "empty tank", file: "a.json", content: `{"species": [{"name": "fish", "count": 0, "scale": 0.3, "maxSpeed": 1, "maxForce": 0.1}]}`, wantSemantic: true},
		{name: "unsupported format", file: "a.ini", content: "seed=1", wantSemantic: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.file, tt.content), "")
			require.Error(t, err)
			if tt.wantSemantic {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			}
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"), "")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadConfig_ExternalSchema(t *testing.T) {
	schema := writeConfig(t, "strict.schema.json", `{"type": "object", "properties": {"seed": {"type": "integer", "minimum": 100}}}`)
	_, err := LoadConfig(writeConfig(t, "a.json", `{"seed": 7}`), schema)
	require.Error(t, err)

	cfg, err := LoadConfig(writeConfig(t, "b.json", `{"seed": 700}`), schema)
	require.NoError(t, err)
	assert.Equal(t, uint64(700), cfg.Seed)
}

func TestSpeciesConfig_RGBAFallback(t *testing.T) {
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	assert.Equal(t, white, SpeciesConfig{}.RGBA())
	assert.Equal(t, white, SpeciesConfig{Color: "#zzzzzz"}.RGBA())
	assert.Equal(t, 4.0, SpeciesConfig{Scale: 2}.Radius())
}

func TestNewLogger(t *testing.T) {
	for _, format := range []string{"json", "console"} {
		logger, err := NewLogger("debug", format)
		require.NoError(t, err)
		assert.NotNil(t, logger)
	}
	_, err := NewLogger("loud", "json")
	assert.ErrorIs(t, err, ErrInvalidConfig)
	_, err = NewLogger("info", "xml")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadConfig_ShippedExamples(t *testing.T) {
	for _, name := range []string{"aquarium.json", "aquarium.toml", "aquarium.yaml"} {
		t.Run(name, func(t *testing.T) {
			cfg, err := LoadConfig(filepath.Join("..", "..", "configs", name), "")
			require.NoError(t, err)
			assert.NotZero(t, cfg.Population())
		})
	}
}
