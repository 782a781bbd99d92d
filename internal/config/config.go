// Package config loads process configuration from the environment, with an
// optional JSON config file overlay.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/tidwall/gjson"
)

// Transport kinds the server can serve on.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// Config contains server configuration values such as transport kind, HTTP
// port, logging, and the optional Redis backend.
type Config struct {
	Transport string
	Port      string
	LogLevel  string
	LogFormat string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// FromEnv builds a Config from CATBASE_* environment variables, overlays the
// JSON file named by CATBASE_CONFIG if set, and validates the result.
func FromEnv() (Config, error) {
	cfg := Config{
		Transport:     getEnv("CATBASE_TRANSPORT", TransportStdio),
		Port:          getEnv("CATBASE_PORT", "3000"),
		LogLevel:      getEnv("CATBASE_LOG_LEVEL", "info"),
		LogFormat:     getEnv("CATBASE_LOG_FORMAT", "json"),
		RedisAddr:     os.Getenv("CATBASE_REDIS_ADDR"),
		RedisPassword: os.Getenv("CATBASE_REDIS_PASSWORD"),
		RedisDB:       getEnvInt("CATBASE_REDIS_DB", 0),
	}

	if path := os.Getenv("CATBASE_CONFIG"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return Config{}, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// loadFile overlays values from a JSON config file. File values win over the
// environment.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("config file %s is not valid JSON", path)
	}

	if v := gjson.GetBytes(data, "transport"); v.Exists() {
		c.Transport = v.String()
	}
	if v := gjson.GetBytes(data, "port"); v.Exists() {
		c.Port = v.String()
	}
	if v := gjson.GetBytes(data, "log.level"); v.Exists() {
		c.LogLevel = v.String()
	}
	if v := gjson.GetBytes(data, "log.format"); v.Exists() {
		c.LogFormat = v.String()
	}
	if v := gjson.GetBytes(data, "redis.addr"); v.Exists() {
		c.RedisAddr = v.String()
	}
	if v := gjson.GetBytes(data, "redis.password"); v.Exists() {
		c.RedisPassword = v.String()
	}
	if v := gjson.GetBytes(data, "redis.db"); v.Exists() {
		c.RedisDB = int(v.Int())
	}
	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	switch c.Transport {
	case TransportStdio, TransportHTTP:
	default:
		return fmt.Errorf("unsupported transport type: %s", c.Transport)
	}
	if c.Transport == TransportHTTP && c.Port == "" {
		return fmt.Errorf("port is required for http transport")
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}
