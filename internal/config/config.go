// Package config loads htmlast settings with viper from defaults, an optional
// .htmlast.yml file, HTMLAST_ environment variables and bound command flags,
// in increasing order of precedence.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g.
// HTMLAST_SERVER_ADDR.
const EnvPrefix = "HTMLAST"

type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Server ServerConfig `mapstructure:"server"`
	Parse  ParseConfig  `mapstructure:"parse"`
	Watch  WatchConfig  `mapstructure:"watch"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=trace debug info warn warning error fatal panic"`
	Format string `mapstructure:"format" validate:"oneof=text json"`
}

type ServerConfig struct {
	Addr         string        `mapstructure:"addr" validate:"required,hostname_port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout" validate:"gte=0"`
	MaxBodyBytes int64         `mapstructure:"max_body_bytes" validate:"gt=0"`
}

type ParseConfig struct {
	Format string `mapstructure:"format" validate:"oneof=dump json yaml html"`
	// Charset names the input encoding. Empty means UTF-8.
	Charset  string `mapstructure:"charset"`
	Minify   bool   `mapstructure:"minify"`
	MaxBytes int64  `mapstructure:"max_bytes" validate:"gte=0"`
}

type WatchConfig struct {
	Debounce time.Duration `mapstructure:"debounce" validate:"gte=0"`
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("server.addr", "0.0.0.0:8002")
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.max_body_bytes", int64(4<<20))
	v.SetDefault("parse.format", "dump")
	v.SetDefault("parse.charset", "")
	v.SetDefault("parse.minify", false)
	v.SetDefault("parse.max_bytes", int64(0))
	v.SetDefault("watch.debounce", 100*time.Millisecond)
}

// Init registers defaults and environment binding on v and reads the config
// file. When file is empty a .htmlast.yml in the working directory is used
// if one exists.
func Init(v *viper.Viper, file string) error {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".htmlast")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return errors.Wrap(err, "reading config")
		}
	}
	return nil
}

// Load decodes and validates the settings held by v.
func Load(v *viper.Viper) (*Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, errors.Wrap(err, "decoding config")
	}
	if err := Validate(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

var validate = validator.New()

// Validate checks c and reports every invalid field in one error.
func Validate(c *Config) error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errors.Wrap(err, "validating config")
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %s", strings.ToLower(e.Namespace()), e.Tag()))
	}
	return errors.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}
