package config

import (
	"flag"
	"os"
	"time"

	"github.com/lynlab/accounts/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-d string   PostgreSQL DSN
//	-b string   activation base URL embedded in mail links
//	-f string   From address for outgoing mail
//	-t int      activation token validity, minutes
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with the -c/-config flags handled by
// the JSON stage.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-b", "-f", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.BindAddr, "a", config.BindAddr, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.ActivationBaseURL, "b", config.ActivationBaseURL, "activation base URL")
	fs.StringVar(&config.MailFrom, "f", config.MailFrom, "mail From address")

	activationTokenValidity := fs.Int("t", int(config.ActivationTokenValidity.Minutes()), "activation_token_validity (in minutes)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.ActivationTokenValidity = time.Duration(*activationTokenValidity) * time.Minute
}
