package config

import (
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

var Opts *Options

// GetConfig resets Opts to the defaults.
func GetConfig() (*Options, error) {
	GetDefaultOptions()
	return Opts, nil
}

// ParseFile overlays the values of a config file on top of the defaults.
func ParseFile(file string) (*Options, error) {
	if _, err := os.Stat(file); err != nil {
		return nil, errors.Wrapf(err, "unable to access config file %s", file)
	}

	GetDefaultOptions()

	v := viper.New()
	v.SetConfigFile(file)
	v.SetEnvPrefix("BOOKSERVER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "unable to read config file %s", file)
	}
	if err := v.Unmarshal(Opts); err != nil {
		return nil, errors.Wrap(err, "unable to decode config")
	}
	if err := Opts.validate(); err != nil {
		return nil, err
	}
	return Opts, nil
}

// OpenSearchTimeoutDuration returns the OpenSearch fetch timeout.
func (o *Options) OpenSearchTimeoutDuration() time.Duration {
	return time.Duration(o.OpenSearchTimeout) * time.Second
}

func (o *Options) validate() error {
	if o.WorkerPoolSize < 1 {
		return errors.Errorf("worker_pool_size must be positive, got %d", o.WorkerPoolSize)
	}
	if o.Port <= 0 || o.Port > 65535 {
		return errors.Errorf("invalid port %d", o.Port)
	}
	if o.OpenSearchTimeout < 0 {
		return errors.Errorf("opensearch_timeout must not be negative, got %d", o.OpenSearchTimeout)
	}
	return nil
}
