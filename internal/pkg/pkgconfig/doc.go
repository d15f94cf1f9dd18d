// Package pkgconfig provides a small abstraction for reading configuration values.
//
// Modules depend on the Config interface; the Viper implementation layers
// defaults, a YAML file and GOVIS_* environment variables.
package pkgconfig
