// Package server initializes and runs the gateway application.
// It wires the classifier client, object storage, the record store backend
// and the HTTP endpoint, and handles graceful shutdown on OS signals.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/verifeed/verifeed/internal/classifier"
	"github.com/verifeed/verifeed/internal/logging"
	"github.com/verifeed/verifeed/internal/server/blob"
	"github.com/verifeed/verifeed/internal/server/config"
	"github.com/verifeed/verifeed/internal/server/httpapi"
	"github.com/verifeed/verifeed/internal/server/repositories/repomanager"
	"github.com/verifeed/verifeed/internal/server/services"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	manager repomanager.Manager
	httpSrv *httpapi.Server
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	slog := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slog)

	manager, err := newRecordStore(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("record store init error: %w", err)
	}

	blobs, err := blob.NewS3Store(ctx, c.AWSRegion, c.AWSAccessKey, c.AWSSecretKey, c.S3BaseEndpoint)
	if err != nil {
		_ = manager.Close()
		return nil, fmt.Errorf("blob store init error: %w", err)
	}

	clf := classifier.NewTFServingClient(c.ClassifierEndpoint, c.ClassifierModel, c.ClassifierTimeout)

	gw := services.NewGateway(logger, clf, blobs,
		manager.Identities(), manager.Quarantine(), manager.Posts(),
		c.ProfileBucket, c.PostsBucket)

	srv := httpapi.NewServer(c.EndpointAddrHTTP, gw, logger)

	return &App{config: c, logger: logger, manager: manager, httpSrv: srv}, nil
}

func newRecordStore(ctx context.Context, c *config.Config) (repomanager.Manager, error) {
	tables := repomanager.Tables{
		Identities: c.IdentitiesTable,
		Quarantine: c.QuarantineTable,
		Posts:      c.PostsTable,
	}

	switch c.RecordStoreBackend {
	case "sqlite":
		return repomanager.NewSQLiteManager(c.SQLitePath, tables)
	case "dynamodb":
		return repomanager.NewDynamoManager(ctx, repomanager.DynamoOptions{
			Region:       c.AWSRegion,
			AccessKey:    c.AWSAccessKey,
			SecretKey:    c.AWSSecretKey,
			BaseEndpoint: c.DynamoBaseEndpoint,
			Tables:       tables,
		})
	default:
		return nil, fmt.Errorf("unknown record store backend: %q", c.RecordStoreBackend)
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
	if err := app.httpSrv.Run(ctx); err != nil {
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

	wg.Wait()

	if err := app.manager.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}
}
