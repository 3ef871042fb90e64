// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// Environment overrides from .env / .env.local are applied before the file
// is read, and defaults are filled in afterwards.
package config
