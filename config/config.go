package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/kbukum/dbkit/estring"
	"github.com/kbukum/dbkit/logger"
	"github.com/kbukum/dbkit/version"
)

// Settings contains the foundation layer configuration.
type Settings struct {
	Conversion ConversionConfig `yaml:"conversion" mapstructure:"conversion"`
	Logging    logger.Config    `yaml:"logging" mapstructure:"logging"`
	Version    string           `yaml:"-" mapstructure:"-"`
}

// ConversionConfig controls how text conversions treat invalid input and
// which character set is assumed when none is given.
type ConversionConfig struct {
	Policy  string `yaml:"policy" mapstructure:"policy" validate:"oneof=strict lossy"`
	Charset string `yaml:"charset" mapstructure:"charset" validate:"charset"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Returned error is always nil for a non-empty tag with a valid fn.
	_ = v.RegisterValidation("charset", func(fl validator.FieldLevel) bool {
		return estring.Charset(fl.Field().String()).Valid()
	})
	return v
}

// ApplyDefaults applies default values to all settings.
func (s *Settings) ApplyDefaults() {
	if s.Conversion.Policy == "" {
		s.Conversion.Policy = estring.Strict.String()
	}
	if s.Conversion.Charset == "" {
		s.Conversion.Charset = string(estring.CharsetUTF8MB4)
	}
	if s.Version == "" {
		s.Version = version.Short()
	}
	s.Logging.ApplyDefaults()
}

// Validate validates all settings.
func (s *Settings) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	return s.Logging.Validate()
}

// ConversionPolicy returns the configured policy as an estring.Policy. It
// panics on a policy name that ApplyDefaults and Validate would have caught:
// reaching it with unchecked Settings is a programming error, not input.
func (s *Settings) ConversionPolicy() estring.Policy {
	p, err := estring.ParsePolicy(s.Conversion.Policy)
	if err != nil {
		panic(err)
	}
	return p
}

// DefaultCharset returns the configured default character set.
func (s *Settings) DefaultCharset() estring.Charset {
	return estring.Charset(s.Conversion.Charset)
}

// NewLogger builds a logger from the logging settings.
func (s *Settings) NewLogger(component string) *logger.Logger {
	return logger.New(&s.Logging, component)
}
