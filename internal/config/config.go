// Package config loads the server settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

var validate = validator.New()

type Config struct {
	Port               int           `envconfig:"PORT" default:"8080" validate:"min=1,max=65535"`
	UploadDir          string        `envconfig:"UPLOAD_DIR" default:"tmp/uploads" validate:"required"`
	DemoDir            string        `envconfig:"DEMO_DIR" default:"public/demo" validate:"required"`
	DemoURLPrefix      string        `envconfig:"DEMO_URL_PREFIX" default:"/demo/" validate:"required,startswith=/"`
	MaxUploadSizeMB    int64         `envconfig:"MAX_UPLOAD_SIZE_MB" default:"25" validate:"min=1,max=512"`
	LogLevel           string        `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	CORSAllowedOrigins []string      `envconfig:"CORS_ALLOWED_ORIGINS" default:"https://*,http://*" validate:"min=1,dive,required"`
	ShutdownTimeout    time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"5s" validate:"gt=0"`
}

// Load reads an optional .env file, then the environment. Only a missing
// default .env is ignored; explicit files must exist and every file must parse.
func Load(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && (len(envFiles) > 0 || !errors.Is(err, fs.ErrNotExist)) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("decode env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if filepath.Clean(c.UploadDir) == filepath.Clean(c.DemoDir) {
		return fmt.Errorf("invalid config: UPLOAD_DIR and DEMO_DIR must differ")
	}
	return nil
}

func (c Config) MaxUploadBytes() int64 {
	return c.MaxUploadSizeMB << 20
}

func (c Config) SlogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
