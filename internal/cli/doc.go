// Package cli provides command-line interface setup and configuration
// for the wordly application. It handles flag parsing, command
// creation, configuration management using cobra and viper, and the
// terminal rendering of the four learning views.
package cli
