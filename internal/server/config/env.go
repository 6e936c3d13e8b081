package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config fields from environment variables. A .env file in
// the working directory is loaded first when present; real environment
// variables win over values from the file.
//
// Recognized variables (the mail and OTP names match the original
// deployment's .env):
//
//	ADDRESS             HTTP bind address
//	KEY_FILE            Fernet key file path
//	UPLOAD_DIR          artifact directory
//	STATIC_DIR          static assets directory
//	TOTP_SECRET         base32 shared OTP secret
//	OTP_PERIOD          TOTP window in seconds
//	SMTP_SERVER         SMTP host
//	SMTP_PORT           SMTP port
//	GMAIL_USER          SMTP username, also the default From address
//	GMAIL_APP_PASSWORD  SMTP password
//	MAIL_FROM           From address override
//	STORAGE_BACKEND     "local" or "s3"
//	S3_BUCKET, AWS_REGION, S3_ENDPOINT, S3_ACCESS_KEY, S3_SECRET_KEY
func parseEnv(config *Config) {
	_ = godotenv.Load()

	setString(&config.EndpointAddr, "ADDRESS")
	setString(&config.KeyFile, "KEY_FILE")
	setString(&config.UploadDir, "UPLOAD_DIR")
	setString(&config.StaticDir, "STATIC_DIR")

	setString(&config.TOTPSecret, "TOTP_SECRET")
	if v := os.Getenv("OTP_PERIOD"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			config.OTPPeriod = time.Duration(secs) * time.Second
		}
	}

	setString(&config.SMTPHost, "SMTP_SERVER")
	if v := os.Getenv("SMTP_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			config.SMTPPort = port
		}
	}
	setString(&config.SMTPUser, "GMAIL_USER")
	setString(&config.SMTPPassword, "GMAIL_APP_PASSWORD")
	setString(&config.MailFrom, "MAIL_FROM")
	if config.MailFrom == "" {
		config.MailFrom = config.SMTPUser
	}

	setString(&config.StorageBackend, "STORAGE_BACKEND")
	setString(&config.S3Bucket, "S3_BUCKET")
	setString(&config.S3Region, "AWS_REGION")
	setString(&config.S3BaseEndpoint, "S3_ENDPOINT")
	setString(&config.S3AccessKey, "S3_ACCESS_KEY")
	setString(&config.S3SecretKey, "S3_SECRET_KEY")
}

func setString(dst *string, name string) {
	if v := os.Getenv(name); v != "" {
		*dst = v
	}
}
