// Package config loads the parameters shared by every pool.
package config

import (
	_ "embed"
	"io"
	"os"

	"github.com/calebcase/levpool/quote"
	"github.com/calebcase/oops"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/zeebo/errs"
	"gopkg.in/yaml.v3"
)

// Error is the error class for invalid parameter files.
var Error = errs.Class("config")

//go:embed default.yaml
var defaultYAML []byte

var validate = validator.New()

// Config holds the parameters shared by every pool.
type Config struct {
	Log  string `yaml:"log" validate:"oneof=trace debug info warn error fatal panic disabled"`
	Fees struct {
		Leverage  uint16 `yaml:"leverage" validate:"lte=10000"`
		Liquidity uint16 `yaml:"liquidity" validate:"lte=10000"`
	} `yaml:"fees"`
	Tax   uint8 `yaml:"tax"`
	Tiers struct {
		Min int8 `yaml:"min" validate:"gte=-8,lte=8"`
		Max int8 `yaml:"max" validate:"gte=-8,lte=8,gtefield=Min"`
	} `yaml:"tiers"`
}

// Default returns the built in parameters.
func Default() *Config {
	c, err := Parse(nil)
	if err != nil {
		panic(err)
	}

	return c
}

// Parse reads a parameter file. Fields missing from data keep their default.
func Parse(data []byte) (c *Config, err error) {
	defer Error.WrapP(&err)

	c = &Config{}

	err = yaml.Unmarshal(defaultYAML, c)
	if err != nil {
		return nil, err
	}

	err = yaml.Unmarshal(data, c)
	if err != nil {
		return nil, err
	}

	err = validate.Struct(c)
	if err != nil {
		return nil, err
	}

	return c, nil
}

// Load reads the parameter file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, oops.Trace(err)
	}

	return Parse(data)
}

// LogLevel returns the configured zerolog level.
func (c Config) LogLevel() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(c.Log)
	if err != nil {
		return zerolog.InfoLevel, Error.Wrap(err)
	}

	return level, nil
}

// Logger returns a logger for module writing to w at the configured level.
func (c Config) Logger(w io.Writer, module string) zerolog.Logger {
	level, _ := c.LogLevel()

	return zerolog.New(w).Level(level).With().Str("Module", module).Timestamp().Logger()
}

// Params returns the quote parameters of a pool with the given tier.
func (c Config) Params(tier int8) (quote.Params, error) {
	if tier < c.Tiers.Min || tier > c.Tiers.Max {
		return quote.Params{}, Error.New("tier %d outside [%d, %d]", tier, c.Tiers.Min, c.Tiers.Max)
	}

	return quote.Params{
		LeverageFee:  c.Fees.Leverage,
		LiquidityFee: c.Fees.Liquidity,
		Tax:          c.Tax,
		Tier:         tier,
	}, nil
}
