// Package config loads the knitchart command line configuration file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/hnimtadd/knitchart/chart/input"
	"github.com/hnimtadd/knitchart/logger"
	"gopkg.in/yaml.v3"
)

// Config is the content of the configuration file. Every field is
// optional; Default fills in what the file leaves out.
type Config struct {
	LogLevel  string `yaml:"log_level" validate:"oneof=debug info warn error"`
	LogFormat string `yaml:"log_format" validate:"oneof=text json auto"`

	// StoreDir is where charts are saved between runs.
	StoreDir string `yaml:"store_dir" validate:"required"`

	// App is the application started when no --app flag is given.
	App string `yaml:"app" validate:"required"`

	// CellPx is the side of a chart cell in PNG output, in pixels.
	CellPx int `yaml:"cell_px" validate:"gte=4,lte=64"`
	// CellWidth is the width of a chart cell in text output, in columns.
	CellWidth int `yaml:"cell_width" validate:"gte=1,lte=8"`

	// Listen is the address of the serve command.
	Listen string `yaml:"listen" validate:"hostname_port"`
}

// Default returns the configuration used when there is no file.
func Default() Config {
	return Config{
		LogLevel:  "info",
		LogFormat: "auto",
		StoreDir:  DefaultStoreDir(),
		App:       "twocolor",
		CellPx:    20,
		CellWidth: 2,
		Listen:    "127.0.0.1:8080",
	}
}

// DefaultStoreDir returns knitchart/charts under the user configuration
// directory, or a relative directory when there is none.
func DefaultStoreDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".knitchart", "charts")
	}
	return filepath.Join(dir, "knitchart", "charts")
}

// ParseError reports a configuration file that cannot be read or decoded.
type ParseError struct {
	Path string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("config: parse %s:%d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("config: parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

func extractLine(err error) int {
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}

// Load reads the file at path over the defaults and validates the result.
// An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, &ParseError{Path: path, Err: err}
	}
	if err := Decode(bytes.NewReader(data), &cfg); err != nil {
		var perr *ParseError
		if errors.As(err, &perr) {
			perr.Path = path
		}
		return Config{}, err
	}
	return cfg, nil
}

// Decode reads YAML from r into cfg, keeping the fields r does not set,
// and validates the result. Unknown keys are an error.
func Decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return &ParseError{Line: extractLine(err), Err: err}
	}
	return cfg.Validate()
}

// Validate checks every field.
func (c *Config) Validate() error {
	err := input.Validator().Struct(c)
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if !errors.As(err, &ves) || len(ves) == 0 {
		return &input.ValidationError{Field: "config", Message: err.Error(), Err: err}
	}
	ve := ves[0]
	field := yamlName(ve.StructField())
	return &input.ValidationError{
		Field:   field,
		Message: fmt.Sprintf("%v failed validation for tag '%s'", ve.Value(), ve.Tag()),
		Err:     err,
	}
}

func yamlName(structField string) string {
	f, ok := reflect.TypeOf(Config{}).FieldByName(structField)
	if !ok {
		return strings.ToLower(structField)
	}
	name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
	return name
}

// Logger builds the logger described by c, writing to w.
func (c *Config) Logger(w io.Writer) (logger.Logger, error) {
	level, err := logger.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	kind, err := logger.ParseType(c.LogFormat)
	if err != nil {
		return nil, err
	}
	return logger.New(logger.Options{Buffer: w, Level: level, Type: kind}), nil
}
