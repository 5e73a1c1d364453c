package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/wordly/internal"
	"codeberg.org/snonux/wordly/internal/batch"
	"codeberg.org/snonux/wordly/internal/models"
	"codeberg.org/snonux/wordly/internal/ui"
)

// ErrPageFailed is returned by a subcommand whose page shows an error or a
// warning, so the process exits non-zero
var ErrPageFailed = errors.New("request did not succeed")

// CreateRootCommand creates and configures the root cobra command. The
// caller sets RunE, which starts the GUI.
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wordly",
		Short: "Vocabulary builder backed by a hosted language model",
		Long: `wordly suggests a word of the day, explains words, generates
multiple-choice quizzes and tracks how many words you learned.

The API key is read from TOGETHER_API_KEY (environment or .env file).

Examples:
  wordly                          # Launch interactive GUI (default)
  wordly daily                    # Word of the day in the terminal
  wordly details serendipity      # Details and an example sentence
  wordly quiz lucid               # Multiple-choice quiz
  wordly quiz --batch words.txt   # One quiz per word in the file
  wordly progress --learned 3     # Show progress, 3 of 10 words`,
		Args:    cobra.NoArgs,
		Version: internal.Version,
	}

	setupFlags(rootCmd, flags)

	rootCmd.AddCommand(
		newDailyCommand(flags),
		newDetailsCommand(flags),
		newQuizCommand(flags),
		newProgressCommand(flags),
		newModelsCommand(flags),
	)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.wordly.yaml)")
	cmd.PersistentFlags().StringVar(&flags.EnvFile, "env-file", flags.EnvFile, "dotenv file with TOGETHER_API_KEY")
	cmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Debug logging")
	cmd.PersistentFlags().BoolVar(&flags.Plain, "plain", false, "Print markdown instead of styled terminal output")

	// Completion flags
	cmd.PersistentFlags().StringVar(&flags.Provider, "provider", "", "Completion provider: together, openai or gemini (default together)")
	cmd.PersistentFlags().StringVar(&flags.Model, "model", "", "Model identifier (default meta-llama/Llama-3.3-70B-Instruct-Turbo)")
	cmd.PersistentFlags().StringVar(&flags.Endpoint, "endpoint", "", "Chat completion URL for the together provider")
	cmd.PersistentFlags().StringVar(&flags.BaseURL, "base-url", "", "API base URL for the openai provider and the models command")
	cmd.PersistentFlags().DurationVar(&flags.Timeout, "timeout", 0, "HTTP timeout, 0 keeps the client default")

	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("completion.provider", cmd.PersistentFlags().Lookup("provider"))
	viper.BindPFlag("completion.model", cmd.PersistentFlags().Lookup("model"))
	viper.BindPFlag("completion.endpoint", cmd.PersistentFlags().Lookup("endpoint"))
	viper.BindPFlag("completion.base_url", cmd.PersistentFlags().Lookup("base-url"))
	viper.BindPFlag("completion.timeout", cmd.PersistentFlags().Lookup("timeout"))
	viper.BindPFlag("log.verbose", cmd.PersistentFlags().Lookup("verbose"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".wordly" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".wordly")
	}

	// Environment variables, e.g. WORDLY_COMPLETION_MODEL
	viper.SetEnvPrefix("WORDLY")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func newDailyCommand(flags *Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "daily",
		Short: "Suggest a word of the day with an example sentence",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(cmd, flags, func(s ui.State) ui.State {
				return s
			})
		},
	}
}

func newDetailsCommand(flags *Flags) *cobra.Command {
	return newWordCommand(flags, ui.WordDetails, "details <word>", "Show details and an example sentence for a word")
}

func newQuizCommand(flags *Flags) *cobra.Command {
	return newWordCommand(flags, ui.Quiz, "quiz <word>", "Generate a multiple-choice quiz for a word")
}

// newWordCommand builds a subcommand for a view that takes a word, either
// from the arguments or, with --batch, from a word list
func newWordCommand(flags *Flags, view ui.View, use, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.BatchFile != "" {
				words, err := batch.ReadWordFile(flags.BatchFile)
				if err != nil {
					return err
				}
				return runBatch(cmd, flags, view, words)
			}
			return runView(cmd, flags, func(s ui.State) ui.State {
				return s.Navigate(view).WithInput(strings.Join(args, " ")).Submit()
			})
		},
	}

	cmd.Flags().StringVar(&flags.BatchFile, "batch", "", "Process words from file (one per line)")

	return cmd
}

func newProgressCommand(flags *Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Show learning progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(cmd, flags, func(s ui.State) ui.State {
				s = s.Navigate(ui.ProgressTracker).WithProgress(flags.Learned, flags.Total)
				if flags.Save {
					s = s.Save()
				}
				return s
			})
		},
	}

	cmd.Flags().IntVar(&flags.Learned, "learned", 0, "Words learned")
	cmd.Flags().IntVar(&flags.Total, "total", flags.Total, "Total words (at least 1)")
	cmd.Flags().BoolVar(&flags.Save, "save", false, "Print a save confirmation")

	return cmd
}

func newModelsCommand(flags *Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List models available at the configured OpenAI-compatible endpoint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := NewSession(flags)
			if err != nil {
				return err
			}
			defer session.Close()

			lister := models.NewLister(session.Config.APIKey, session.Config.BaseURL)
			lister.SetOutput(cmd.OutOrStdout())
			lister.SetCurrent(session.Config.Model)
			return lister.ListAvailableModels(cmd.Context())
		},
	}
}

// runView renders one page for the state built by prepare and prints it
func runView(cmd *cobra.Command, flags *Flags, prepare func(ui.State) ui.State) error {
	session, err := NewSession(flags)
	if err != nil {
		return err
	}
	defer session.Close()

	state := prepare(session.InitialState())
	page := ui.Render(cmd.Context(), state, session.Services())

	if err := PrintPage(cmd.OutOrStdout(), page, flags.Plain); err != nil {
		return err
	}

	if failed(page) {
		cmd.SilenceUsage = true
		return ErrPageFailed
	}
	return nil
}

// runBatch renders view once per word, one page after the other. A failed
// word does not stop the run.
func runBatch(cmd *cobra.Command, flags *Flags, view ui.View, words []string) error {
	if len(words) == 0 {
		return fmt.Errorf("no words in %s", flags.BatchFile)
	}

	session, err := NewSession(flags)
	if err != nil {
		return err
	}
	defer session.Close()

	failures := 0
	for i, word := range words {
		if i > 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "\n---")
		}

		state := session.InitialState().Navigate(view).WithInput(word).Submit()
		page := ui.Render(cmd.Context(), state, session.Services())
		if err := PrintPage(cmd.OutOrStdout(), page, flags.Plain); err != nil {
			return err
		}
		if failed(page) {
			failures++
		}
	}

	if failures > 0 {
		cmd.SilenceUsage = true
		return fmt.Errorf("%d of %d words failed: %w", failures, len(words), ErrPageFailed)
	}
	return nil
}

func failed(page ui.Page) bool {
	return page.Has(ui.BlockError) || page.Has(ui.BlockWarning)
}
