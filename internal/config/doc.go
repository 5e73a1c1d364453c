// Package config holds the explicit runtime configuration of wordly. The
// configuration is assembled once from viper, the environment and an
// optional .env file, and then passed by pointer to the components that
// need it. A missing API key does not stop the program; it puts the
// configuration into a degraded state that the UI reports.
package config
