package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/akuznecov/lockbox/internal/flagx"
)

// JsonConfig is the intermediate DTO used only for reading JSON
// configuration files; durations are given in seconds. After unmarshalling,
// non-zero fields are copied into the runtime Config.
type JsonConfig struct {
	EndpointAddr     string `json:"endpoint_addr"`
	KeyFile          string `json:"key_file"`
	UploadDir        string `json:"upload_dir"`
	StaticDir        string `json:"static_dir"`
	TOTPSecret       string `json:"totp_secret"`
	OTPPeriodSeconds int    `json:"otp_period_seconds"`
	SMTPHost         string `json:"smtp_host"`
	SMTPPort         int    `json:"smtp_port"`
	SMTPUser         string `json:"smtp_user"`
	SMTPPassword     string `json:"smtp_password"`
	MailFrom         string `json:"mail_from"`
	StorageBackend   string `json:"storage_backend"`
	S3Bucket         string `json:"s3_bucket"`
	S3Region         string `json:"s3_region"`
	S3BaseEndpoint   string `json:"s3_base_endpoint"`
	S3AccessKey      string `json:"s3_access_key"`
	S3SecretKey      string `json:"s3_secret_key"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance. The file path comes from the -c or -config command-line
// flags; when neither is set, no JSON file is loaded. An unreadable or
// invalid file panics, matching the flags layer.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

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

	overlayString(&config.EndpointAddr, c.EndpointAddr)
	overlayString(&config.KeyFile, c.KeyFile)
	overlayString(&config.UploadDir, c.UploadDir)
	overlayString(&config.StaticDir, c.StaticDir)
	overlayString(&config.TOTPSecret, c.TOTPSecret)
	if c.OTPPeriodSeconds > 0 {
		config.OTPPeriod = time.Duration(c.OTPPeriodSeconds) * time.Second
	}
	overlayString(&config.SMTPHost, c.SMTPHost)
	if c.SMTPPort != 0 {
		config.SMTPPort = c.SMTPPort
	}
	overlayString(&config.SMTPUser, c.SMTPUser)
	overlayString(&config.SMTPPassword, c.SMTPPassword)
	overlayString(&config.MailFrom, c.MailFrom)
	overlayString(&config.StorageBackend, c.StorageBackend)
	overlayString(&config.S3Bucket, c.S3Bucket)
	overlayString(&config.S3Region, c.S3Region)
	overlayString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	overlayString(&config.S3AccessKey, c.S3AccessKey)
	overlayString(&config.S3SecretKey, c.S3SecretKey)
}

func overlayString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
