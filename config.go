package fibonacci

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	pkgerrors "github.com/absmach/fibonacci/pkg/errors"
	"github.com/pelletier/go-toml/v2"
)

const (
	defDemoTerms = 10
	defFormat    = "list"
)

var defDemoIndices = []int{5, 10}

type ShellConfig struct {
	DemoTerms   int    `toml:"demo_terms"`
	DemoIndices []int  `toml:"demo_indices"`
	Format      string `toml:"format"`
}

type Config struct {
	Shell ShellConfig `toml:"shell"`
}

// DefaultConfig returns the demo configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		Shell: ShellConfig{
			DemoTerms:   defDemoTerms,
			DemoIndices: append([]int(nil), defDemoIndices...),
			Format:      defFormat,
		},
	}
}

// LoadConfig reads a TOML file on top of the defaults. A missing file yields
// the defaults.
func LoadConfig(filePath string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(filePath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return cfg, nil
	case err != nil:
		return Config{}, fmt.Errorf("error reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("error unmarshaling config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if c.Shell.DemoTerms < 0 {
		return fmt.Errorf("%w: demo_terms must not be negative, got %d", pkgerrors.ErrInvalidConfig, c.Shell.DemoTerms)
	}
	for _, i := range c.Shell.DemoIndices {
		if i < 0 {
			return fmt.Errorf("%w: demo_indices must not be negative, got %d", pkgerrors.ErrInvalidConfig, i)
		}
	}
	if c.Shell.Format == "" {
		return fmt.Errorf("%w: format is empty", pkgerrors.ErrInvalidConfig)
	}

	return nil
}
