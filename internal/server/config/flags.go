package config

import (
	"flag"
	"os"

	"github.com/akuznecov/lockbox/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-k string   Fernet key file path
//	-u string   artifact upload directory
//	-w string   static assets directory
//	-s string   storage backend ("local" or "s3")
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-k", "-u", "-w", "-s"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.KeyFile, "k", config.KeyFile, "encryption key file")
	fs.StringVar(&config.UploadDir, "u", config.UploadDir, "encrypted artifact directory")
	fs.StringVar(&config.StaticDir, "w", config.StaticDir, "static assets directory")
	fs.StringVar(&config.StorageBackend, "s", config.StorageBackend, "artifact storage backend (local|s3)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
