package config

import (
	"github.com/rochers/feoblog/logger"
	"github.com/rochers/feoblog/util"
	"github.com/rochers/feoblog/validation"
)

// Settings holds the client kit's configuration.
type Settings struct {
	// ServerURL is the base URL of the user's home server, `http(s)://host`
	// with nothing after the host. Optional; empty means "not configured".
	ServerURL string `yaml:"server_url" mapstructure:"server_url"`

	// PrefetchCount bounds how many feed-item transforms run ahead of the
	// consumer. Zero means fully sequential processing.
	PrefetchCount int `yaml:"prefetch_count" mapstructure:"prefetch_count" validate:"gte=0,lte=64"`

	Logging logger.Config `yaml:"logging" mapstructure:"logging"`
}

// ApplyDefaults applies default values.
func (s *Settings) ApplyDefaults() {
	s.Logging.ApplyDefaults()
}

// Validate checks tag constraints plus the rules tags cannot express:
// the server URL must be a bare http(s) origin.
func (s *Settings) Validate() error {
	if err := validation.Struct(s); err != nil {
		return err
	}
	v := validation.New()
	v.Check("server_url", util.ValidateServerURL(s.ServerURL))
	v.Check("logging", s.Logging.Validate())
	return v.Validate()
}
