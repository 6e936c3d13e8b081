// Package server wires the lockbox application together: it loads the
// Fernet key, picks the artifact storage backend, builds the services
// and runs the HTTP server until a shutdown signal arrives.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/akuznecov/lockbox/internal/cryptox"
	"github.com/akuznecov/lockbox/internal/logging"
	"github.com/akuznecov/lockbox/internal/server/artifacts"
	"github.com/akuznecov/lockbox/internal/server/config"
	"github.com/akuznecov/lockbox/internal/server/httpapi"
	"github.com/akuznecov/lockbox/internal/server/mail"
	otprepo "github.com/akuznecov/lockbox/internal/server/repositories/otp"
	"github.com/akuznecov/lockbox/internal/server/services"
)

type App struct {
	config     *config.Config
	logger     logging.Logger
	httpServer *httpapi.Server
	otpService *services.OTPService
}

func NewApp(c *config.Config) (*App, error) {

	logger := logging.NewDefault()

	key, err := cryptox.LoadOrCreateKey(c.KeyFile)
	if err != nil {
		return nil, fmt.Errorf("key init error: %w", err)
	}

	store, err := newArtifactStore(context.Background(), c)
	if err != nil {
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	sender := mail.NewSMTPSender(mail.SMTPOptions{
		Host:     c.SMTPHost,
		Port:     c.SMTPPort,
		Username: c.SMTPUser,
		Password: c.SMTPPassword,
		From:     c.MailFrom,
		Period:   c.OTPPeriod,
	})

	cs := services.NewCryptoService(key, store)
	ots := services.NewOTPService(otprepo.NewMemoryRepository(), sender, c)

	srv := httpapi.NewServer(c, logger, cs, ots, store)

	return &App{config: c, logger: logger, httpServer: srv, otpService: ots}, nil
}

func newArtifactStore(ctx context.Context, c *config.Config) (artifacts.Store, error) {
	switch c.StorageBackend {
	case config.StorageS3:
		return artifacts.NewS3Store(ctx, artifacts.S3Options{
			Bucket:       c.S3Bucket,
			Region:       c.S3Region,
			BaseEndpoint: c.S3BaseEndpoint,
			AccessKey:    c.S3AccessKey,
			SecretKey:    c.S3SecretKey,
		})
	case config.StorageLocal:
		return artifacts.NewLocalStore(c.UploadDir), nil
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", c.StorageBackend)
	}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.httpServer.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.otpService.RunSweeper(ctx, app.config.OTPPeriod)
	}()

	wg.Wait()

}
