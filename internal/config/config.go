// Package config loads and exposes the application configuration.
// Configuration lives in a TOML file looked up across several candidate
// paths so the server can be started from the repo root or a subcommand
// directory.
package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// MainConfig holds basic application settings.
type MainConfig struct {
	AppName string `toml:"appName"` // application name, used in logs
	Host    string `toml:"host"`    // listen address, e.g. "0.0.0.0"
	Port    int    `toml:"port"`    // listen port, e.g. 8000
	Mode    string `toml:"mode"`    // "dev" or "release"
}

// MysqlConfig holds the MySQL connection settings.
type MysqlConfig struct {
	Host         string `toml:"host"`
	Port         int    `toml:"port"`
	User         string `toml:"user"`
	Password     string `toml:"password"`
	DatabaseName string `toml:"databaseName"`
}

// RedisConfig holds the Redis connection settings.
type RedisConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	Password string `toml:"password"` // empty when auth is disabled
	Db       int    `toml:"db"`
}

// LogConfig configures zap output and lumberjack rotation.
type LogConfig struct {
	LogPath    string `toml:"logPath"`    // log directory
	FileName   string `toml:"fileName"`   // log file name
	MaxSize    int    `toml:"maxSize"`    // max size per file (MB)
	MaxBackups int    `toml:"maxBackups"` // rotated files kept
	MaxAge     int    `toml:"maxAge"`     // rotated files kept (days)
	Level      string `toml:"level"`      // debug, info, warn, error
}

// KafkaConfig configures the lifecycle-event publisher.
// EventMode selects between "off" (no events) and "kafka".
type KafkaConfig struct {
	EventMode  string        `toml:"eventMode"`  // "off" or "kafka"
	HostPort   string        `toml:"hostPort"`   // broker address, e.g. "localhost:9092"
	EventTopic string        `toml:"eventTopic"` // request lifecycle event topic
	Partition  int           `toml:"partition"`
	Timeout    time.Duration `toml:"timeout"`
}

// StaticSrcConfig holds static asset paths (property photos, documents).
type StaticSrcConfig struct {
	StaticPhotoPath string `toml:"staticPhotoPath"`
	StaticDocPath   string `toml:"staticDocPath"`
}

// JWTConfig holds token signing settings.
type JWTConfig struct {
	Secret             string `toml:"secret"`             // HMAC secret, 32+ chars recommended
	AccessTokenExpiry  int    `toml:"accessTokenExpiry"`  // minutes
	RefreshTokenExpiry int    `toml:"refreshTokenExpiry"` // hours
}

// Config aggregates every configuration section.
type Config struct {
	MainConfig      `toml:"mainConfig"`
	MysqlConfig     `toml:"mysqlConfig"`
	RedisConfig     `toml:"redisConfig"`
	LogConfig       `toml:"logConfig"`
	KafkaConfig     `toml:"kafkaConfig"`
	StaticSrcConfig `toml:"staticSrcConfig"`
	JWTConfig       `toml:"jwtConfig"`
}

var config *Config

// LoadConfig reads the first configuration file found among the
// candidate paths. Local overrides take precedence over the default.
func LoadConfig() error {
	paths := []string{
		"configs/config_local.toml",
		"configs/config.toml",
		"../../configs/config_local.toml",
		"../../configs/config.toml",
	}

	for _, path := range paths {
		if _, err := toml.DecodeFile(path, config); err == nil {
			return nil
		}
	}

	return fmt.Errorf("could not find configuration file in any of the search paths")
}

// GetConfig returns the global configuration, loading it on first use.
func GetConfig() *Config {
	if config == nil {
		config = new(Config)
		_ = LoadConfig() // fall back to zero values when no file exists
	}
	return config
}
