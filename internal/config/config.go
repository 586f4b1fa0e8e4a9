// Package config provides configuration data structures for strategycanvas.
package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/dbmrq/strategycanvas/internal/logging"
)

// Config represents the complete configuration loaded from
// .strategycanvas/config.yaml.
type Config struct {
	Export ExportConfig `yaml:"export" json:"export" mapstructure:"export"`
	Log    LogConfig    `yaml:"log"    json:"log"    mapstructure:"log"`
}

// ExportConfig configures the PNG export.
type ExportConfig struct {
	// OutputDir is where exported images are written (default: ".").
	OutputDir string `yaml:"output_dir" json:"output_dir" mapstructure:"output_dir"`
	// FileName is the name of the exported image (default: "strategy-canvas.png").
	FileName string `yaml:"file_name" json:"file_name" mapstructure:"file_name"`
	// Scale multiplies every pixel dimension of the image (default: 2).
	Scale float64 `yaml:"scale" json:"scale" mapstructure:"scale"`
	// Width is the logical width of the exported layout (default: 800).
	Width int `yaml:"width" json:"width" mapstructure:"width"`
	// ChartHeight is the logical height of the chart area (default: 400).
	ChartHeight int `yaml:"chart_height" json:"chart_height" mapstructure:"chart_height"`
	// Title is drawn above the chart.
	Title string `yaml:"title" json:"title" mapstructure:"title"`
	// Attribution is drawn below the data table.
	Attribution string `yaml:"attribution" json:"attribution" mapstructure:"attribution"`
	// Timeout bounds a single export run. Zero means no limit.
	Timeout time.Duration `yaml:"timeout" json:"timeout" mapstructure:"timeout"`
}

// LogConfig configures file logging.
type LogConfig struct {
	Level string `yaml:"level" json:"level" mapstructure:"level"`
	Dir   string `yaml:"dir"   json:"dir"   mapstructure:"dir"`
}

// Default values.
const (
	DefaultOutputDir   = "."
	DefaultFileName    = "strategy-canvas.png"
	DefaultScale       = 2.0
	DefaultWidth       = 800
	DefaultChartHeight = 400
	DefaultTitle       = "Strategy Canvas Analysis"
	DefaultAttribution = "Created with stetteradvisory.com"
	DefaultTimeout     = 30 * time.Second
	DefaultLogLevel    = "info"
	DefaultLogDir      = ".strategycanvas/logs"
)

// NewConfig returns a new Config with default values applied.
func NewConfig() *Config {
	return &Config{
		Export: ExportConfig{
			OutputDir:   DefaultOutputDir,
			FileName:    DefaultFileName,
			Scale:       DefaultScale,
			Width:       DefaultWidth,
			ChartHeight: DefaultChartHeight,
			Title:       DefaultTitle,
			Attribution: DefaultAttribution,
			Timeout:     DefaultTimeout,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
			Dir:   DefaultLogDir,
		},
	}
}

// ApplyDefaults fills in any zero-valued fields.
func (c *Config) ApplyDefaults() {
	defaults := NewConfig()

	if c.Export.OutputDir == "" {
		c.Export.OutputDir = defaults.Export.OutputDir
	}
	if c.Export.FileName == "" {
		c.Export.FileName = defaults.Export.FileName
	}
	if c.Export.Scale == 0 {
		c.Export.Scale = defaults.Export.Scale
	}
	if c.Export.Width == 0 {
		c.Export.Width = defaults.Export.Width
	}
	if c.Export.ChartHeight == 0 {
		c.Export.ChartHeight = defaults.Export.ChartHeight
	}
	// Title and Attribution may be blanked on purpose.

	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
	if c.Log.Dir == "" {
		c.Log.Dir = defaults.Log.Dir
	}
}

// OutputPath is the full path of the exported image.
func (c *Config) OutputPath() string {
	return filepath.Join(c.Export.OutputDir, c.Export.FileName)
}

// LoggingConfig converts the log section into a logger configuration.
// Validate must have accepted the level.
func (c *Config) LoggingConfig() *logging.Config {
	lc := logging.DefaultConfig()
	if level, err := logging.ParseLevel(c.Log.Level); err == nil {
		lc.Level = level
	}
	lc.LogDir = c.Log.Dir
	return lc
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}
	msg := "multiple validation errors:"
	for _, err := range e {
		msg += "\n  - " + err.Error()
	}
	return msg
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidationErrors

	if c.Export.Scale <= 0 || c.Export.Scale > 8 {
		errs = append(errs, &ValidationError{Field: "export.scale", Message: "must be greater than 0 and at most 8"})
	}
	if c.Export.Width < 200 {
		errs = append(errs, &ValidationError{Field: "export.width", Message: "must be at least 200"})
	}
	if c.Export.ChartHeight < 100 {
		errs = append(errs, &ValidationError{Field: "export.chart_height", Message: "must be at least 100"})
	}
	if c.Export.Timeout < 0 {
		errs = append(errs, &ValidationError{Field: "export.timeout", Message: "must be non-negative"})
	}

	name := c.Export.FileName
	switch {
	case strings.ContainsAny(name, `/\`):
		errs = append(errs, &ValidationError{Field: "export.file_name", Message: "must be a file name, not a path"})
	case !strings.EqualFold(filepath.Ext(name), ".png"):
		errs = append(errs, &ValidationError{
			Field:   "export.file_name",
			Message: fmt.Sprintf("must end in .png, got %q", name),
		})
	}

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, &ValidationError{
			Field:   "log.level",
			Message: "must be 'debug', 'info', 'warn', or 'error'",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
