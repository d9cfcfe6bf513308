package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type SPI struct {
	Dev string `yaml:"dev"` // e.g. /dev/spidev0.0, empty picks the first port
}

type Matrix struct {
	TileRows int `yaml:"tile_rows"`
	TileCols int `yaml:"tile_cols"`
}

type Config struct {
	Output     string  `yaml:"output"` // "spi" | "console" | "auto"
	ColorOrder string  `yaml:"color_order"`
	Brightness float64 `yaml:"brightness"` // 0..1
	FPS        int     `yaml:"fps"`
	LEDs       int     `yaml:"leds"` // strip length for 1D devices, 0 uses the device default

	Matrix Matrix `yaml:"matrix"`
	SPI    SPI    `yaml:"spi,omitempty"`
}

// Default is the configuration used when no file is given: a single 8x8
// GlowBit matrix on auto-detected output.
func Default() *Config {
	return &Config{
		Output:     "auto",
		ColorOrder: "GRB",
		Brightness: 0.08,
		FPS:        30,
		Matrix:     Matrix{TileRows: 1, TileCols: 1},
	}
}

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := Default()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, err
	}
	return c, nil
}

func Save(path string, c *Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}
