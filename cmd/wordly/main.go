package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/wordly/internal/cli"
	"codeberg.org/snonux/wordly/internal/config"
	"codeberg.org/snonux/wordly/internal/gui"
	"codeberg.org/snonux/wordly/internal/logging"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// No subcommand launches the GUI
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runGUI(flags)
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runGUI(flags *cli.Flags) error {
	settings, err := config.Load(config.LoadOptions{EnvFile: flags.EnvFile, Viper: viper.GetViper()})
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if flags.Verbose {
		settings.Verbose = true
	}

	logger, err := logging.New(settings.Verbose)
	if err != nil {
		return err
	}
	defer logging.Sync(logger)

	app, err := gui.New(&gui.Config{Settings: settings, Logger: logger})
	if err != nil {
		return err
	}
	app.Run()
	return nil
}
