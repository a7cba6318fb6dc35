// Package config loads and validates application configuration from
// environment variables and an optional config file, using viper for
// loading and go-playground/validator for structural validation.
package config
