package cli

import (
	"time"

	"codeberg.org/snonux/wordly/internal/progress"
)

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile string
	EnvFile string
	Verbose bool
	Plain   bool

	// Completion flags, empty means "use config file or default"
	Provider string
	Model    string
	Endpoint string
	BaseURL  string
	Timeout  time.Duration

	// Details and quiz subcommands
	BatchFile string

	// Progress subcommand
	Learned int
	Total   int
	Save    bool
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		EnvFile: ".env",
		Total:   progress.DefaultTotal,
	}
}
