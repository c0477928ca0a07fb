// Package cli provides command-line interface setup and configuration
// for the silabario application. It handles flag parsing, subcommand
// creation, configuration management using cobra and viper, and the
// slog logger setup.
package cli
