// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// Environment variables (optionally from a .env file) override the file
// values, so containerized deployments need no config file at all.
package config
