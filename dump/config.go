package dump

import (
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// ErrInvalidConfig signals an invalid rendering configuration.
var ErrInvalidConfig = errors.New("dump: invalid configuration")

// Default settings.
const (
	DefaultLineWidth = 65
	DefaultSeparator = ", "
	MinLineWidth     = 10
)

// Config configures console renderings.
type Config struct {
	LineWidth int    // maximum width of a line in fixed-width cells; 0 selects DefaultLineWidth
	Separator string // separates values of a key; "" selects DefaultSeparator
	Color     bool   // colorize keys and branch numbers
}

func (cfg Config) normalized() Config {
	if cfg.LineWidth == 0 {
		cfg.LineWidth = DefaultLineWidth
	}
	if cfg.Separator == "" {
		cfg.Separator = DefaultSeparator
	}
	return cfg
}

func (cfg Config) validate() error {
	cfg = cfg.normalized()
	if cfg.LineWidth < MinLineWidth {
		return fmt.Errorf("%w: line width must be at least %d, is %d",
			ErrInvalidConfig, MinLineWidth, cfg.LineWidth)
	}
	return nil
}

// prepare returns the effective configuration for cfg, which may be nil.
func prepare(cfg *Config) (Config, error) {
	if cfg == nil {
		return Config{}.normalized(), nil
	}
	if err := cfg.validate(); err != nil {
		tracer().Errorf("dump: %v", err)
		return Config{}, err
	}
	return cfg.normalized(), nil
}

// ConfigFromTerminal creates a configuration fitting stdout.
// If stdout is a terminal, the line width follows the terminal's width and
// colors are switched on.
func ConfigFromTerminal() *Config {
	config := &Config{LineWidth: DefaultLineWidth}
	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return config
	}
	config.Color = true
	if w, _, err := term.GetSize(int(fd)); err == nil {
		config.LineWidth = lineWidthFor(w)
	}
	tracer().Infof("dump: setting line width to %d", config.LineWidth)
	return config
}

func lineWidthFor(termwidth int) int {
	switch {
	case termwidth > 65:
		return termwidth - 10
	case termwidth > 30:
		return termwidth - 5
	case termwidth > MinLineWidth:
		return termwidth
	}
	return MinLineWidth
}
