package config

import (
	"encoding/json"
	"os"

	"github.com/lynlab/accounts/internal/flagx"
	"github.com/lynlab/accounts/internal/timex"
)

// JsonConfig is an intermediate DTO used only for reading JSON configuration
// files. It uses timex.Duration for interval fields, which parses both
// string values such as "2h" and integer nanoseconds. After unmarshalling,
// non-empty fields are copied into the runtime Config.
type JsonConfig struct {
	BindAddr                string         `json:"bind_addr"`
	DatabaseDSN             string         `json:"database_dsn"`
	ActivationTokenValidity timex.Duration `json:"activation_token_validity"`
	ActivationBaseURL       string         `json:"activation_base_url"`
	MailFrom                string         `json:"mail_from"`
	SMTPHost                string         `json:"smtp_host"`
	SMTPPort                string         `json:"smtp_port"`
	SMTPUsername            string         `json:"smtp_username"`
	SMTPPassword            string         `json:"smtp_password"`
	FirebaseServiceAccount  string         `json:"firebase_service_account"`
	FirebaseKeyFile         string         `json:"firebase_key_file"`
}

// parseJson loads configuration values from the JSON file named by the
// -c/-config flags into the provided Config. If no file is given, nothing is
// loaded; if the file cannot be read or parsed, the function panics.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	overlayString(&config.BindAddr, c.BindAddr)
	overlayString(&config.DatabaseDSN, c.DatabaseDSN)
	overlayString(&config.ActivationBaseURL, c.ActivationBaseURL)
	overlayString(&config.MailFrom, c.MailFrom)
	overlayString(&config.SMTPHost, c.SMTPHost)
	overlayString(&config.SMTPPort, c.SMTPPort)
	overlayString(&config.SMTPUsername, c.SMTPUsername)
	overlayString(&config.SMTPPassword, c.SMTPPassword)
	overlayString(&config.FirebaseServiceAccount, c.FirebaseServiceAccount)
	overlayString(&config.FirebaseKeyFile, c.FirebaseKeyFile)

	if c.ActivationTokenValidity.Duration != 0 {
		config.ActivationTokenValidity = c.ActivationTokenValidity.Duration
	}
}

func overlayString(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}
