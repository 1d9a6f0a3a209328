package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap/zapcore"

	"github.com/campushub/circulation-service/pkg/kafka"
	"github.com/campushub/circulation-service/pkg/logger"
	"github.com/campushub/circulation-service/pkg/postgres"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"CIRCULATION_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"CIRCULATION_HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"30s"`
	WriteTimeout time.Duration
}

type IdentityHTTPServer struct {
	Host string `envconfig:"IDENTITY_HTTP_HOST" default:"localhost"`
	Port string `envconfig:"IDENTITY_HTTP_PORT" default:"8060"`
}

type Circulation struct {
	// FinePerDay is charged per whole day past the due date at approval time.
	FinePerDay int `envconfig:"FINE_PER_DAY" default:"5"`
}

type Config struct {
	Server             HTTPServer `yaml:"server"`
	Database           postgres.Config
	Kafka              kafka.Config
	IdentityHTTPServer IdentityHTTPServer
	Circulation        Circulation
	Log                logger.Log `yaml:"log"`
}

var (
	once sync.Once
	cfg  Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		err := envconfig.Process("", &config)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = config
		printConfig(cfg)
	})

	return &cfg
}

func printConfig(cfg Config) {
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}

type Option func(*Config)

func WithLogLevel(level zapcore.Level) Option {
	return func(c *Config) {
		c.Log.LogLevel = level
	}
}

func WithWriteTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.Server.WriteTimeout = timeout
	}
}
