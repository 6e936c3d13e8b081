// Package config handles configuration for the lockbox server,
// including defaults, JSON overlay, environment variables, and
// command-line flags.
package config

import "time"

// Storage backend selectors for the artifact store.
const (
	StorageLocal = "local"
	StorageS3    = "s3"
)

// Config holds runtime settings for the lockbox server.
//
// Fields:
//   - EndpointAddr: bind address for the HTTP endpoint.
//   - KeyFile: path of the persisted Fernet key; created on first run.
//   - UploadDir: local directory accumulating encrypted artifacts.
//   - StaticDir: directory with the landing page and static assets.
//   - TOTPSecret: base32 shared secret for the OTP authenticator (required
//     for issuing; absence is surfaced at issue time).
//   - OTPPeriod: TOTP time-step window, also the record lifetime.
//   - SMTPHost / SMTPPort / SMTPUser / SMTPPassword / MailFrom: mail
//     delivery settings.
//   - StorageBackend: "local" or "s3" for the artifact store.
//   - S3Bucket / S3Region / S3BaseEndpoint / S3AccessKey / S3SecretKey:
//     object storage settings for the s3 backend.
type Config struct {
	EndpointAddr string
	KeyFile      string
	UploadDir    string
	StaticDir    string

	TOTPSecret string
	OTPPeriod  time.Duration

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	MailFrom     string

	StorageBackend string
	S3Bucket       string
	S3Region       string
	S3BaseEndpoint string
	S3AccessKey    string
	S3SecretKey    string
}

// LoadDefaults populates Config with development defaults.
// NOTE: the TOTP secret and mail credentials have no defaults and must be
// provided through the environment.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":8080"
	c.KeyFile = "keys/filekey.key"
	c.UploadDir = "uploads"
	c.StaticDir = "web"
	c.OTPPeriod = 30 * time.Second
	c.SMTPHost = "smtp.gmail.com"
	c.SMTPPort = 587
	c.StorageBackend = StorageLocal
	c.S3Region = "us-east-1"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment (including an optional .env
// file), and finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
