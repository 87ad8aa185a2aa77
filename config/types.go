package config

import "time"

// ServerConfig contains REST server configuration
type ServerConfig struct {
	Port int `yaml:"port" validate:"gt=0"`
}

// UpstreamConfig contains the db.transport.rest endpoint configuration
type UpstreamConfig struct {
	BaseURL   string `yaml:"baseURL" validate:"required,url"`
	TimeoutMS int    `yaml:"timeoutMS" validate:"gt=0"`
}

// Timeout returns the upstream call timeout as a duration.
func (u UpstreamConfig) Timeout() time.Duration {
	return time.Duration(u.TimeoutMS) * time.Millisecond
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server   ServerConfig   `yaml:"server" validate:"required"`
	Upstream UpstreamConfig `yaml:"upstream" validate:"required"`
}
