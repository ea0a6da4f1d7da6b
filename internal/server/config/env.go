package config

import (
	"os"
	"time"
)

// parseEnv overlays configuration from environment variables. Names follow
// the original deployment (DATABASE_URL, SMTP_*, FIREBASE_SERVICE_ACCOUNT).
// Unset variables leave the current values untouched.
func parseEnv(config *Config) {
	setString(&config.BindAddr, "BIND_ADDR")
	setString(&config.DatabaseDSN, "DATABASE_URL")
	setString(&config.ActivationBaseURL, "ACTIVATION_BASE_URL")
	setString(&config.MailFrom, "MAIL_FROM")
	setString(&config.SMTPHost, "SMTP_HOST")
	setString(&config.SMTPPort, "SMTP_PORT")
	setString(&config.SMTPUsername, "SMTP_USERNAME")
	setString(&config.SMTPPassword, "SMTP_PASSWORD")
	setString(&config.FirebaseServiceAccount, "FIREBASE_SERVICE_ACCOUNT")
	setString(&config.FirebaseKeyFile, "FIREBASE_KEY_FILE")

	if v, ok := os.LookupEnv("ACTIVATION_TOKEN_VALIDITY"); ok {
		if parsed, err := time.ParseDuration(v); err == nil {
			config.ActivationTokenValidity = parsed
		}
	}
}

func setString(dst *string, name string) {
	if v, ok := os.LookupEnv(name); ok {
		*dst = v
	}
}
