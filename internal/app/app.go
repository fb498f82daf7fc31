// Package app is the application layer between the CLI and the registry
// service. It builds every dependency from config and owns their lifecycle.
package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"artag/internal/artag"
	"artag/internal/auth"
	"artag/internal/config"
	"artag/internal/database"
	"artag/internal/encryption"
	"artag/internal/history"
	"artag/internal/media"
	"artag/internal/nfc"
)

// App wires config-selected implementations together and exposes them to
// the CLI. The caller must call Close when done.
type App struct {
	cfg *config.Config

	DB       artag.Database
	Media    artag.MediaStore
	Reader   artag.TagReader
	History  artag.HistoryStore
	Registry *artag.RegistryService
	Auth     *auth.Service
	Logger   artag.Logger

	logFile *os.File
}

// NewApp creates a fully wired App from the given config.
// operation identifies the CLI command being run (e.g. "scan", "artwork add").
func NewApp(cfg *config.Config, operation string) (*App, error) {
	opID := time.Now().UTC().Format("20060102T150405Z")
	slogger, logFile, err := newLogger(cfg.LogDir, opID)
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}
	logger := &slogAdapter{l: slogger}
	logger.Debug("starting", "operation", operation)

	db, err := database.NewDatabaseFromConfig(cfg.Database, cfg.InstallID)
	if err != nil {
		logFile.Close()
		return nil, fmt.Errorf("creating database: %w", err)
	}

	mediaStore, err := media.NewMediaStoreFromConfig(cfg.Media)
	if err != nil {
		db.Close()
		logFile.Close()
		return nil, fmt.Errorf("creating media store: %w", err)
	}

	reader, err := nfc.NewReaderFromConfig(cfg.Reader, logger)
	if err != nil {
		db.Close()
		logFile.Close()
		return nil, fmt.Errorf("creating tag reader: %w", err)
	}

	historyStore := history.NewFileStore(filepath.Join(cfg.BaseDir, "history.json"))

	encryptor := encryption.NewAgeEncryptor(cfg.Auth.PublicKeyPath, cfg.Auth.PrivateKeyPath)

	clock := artag.RealClock{}
	idgen := artag.UUIDGenerator{}

	registry := artag.NewRegistryService(db, mediaStore, logger, clock, idgen)
	authSvc := auth.NewService(db, encryptor, logger, clock, idgen,
		cfg.Auth.Secret, cfg.Auth.TokenValidity(), cfg.Auth.SessionPath)

	return &App{
		cfg:      cfg,
		DB:       db,
		Media:    mediaStore,
		Reader:   reader,
		History:  historyStore,
		Registry: registry,
		Auth:     authSvc,
		Logger:   logger,
		logFile:  logFile,
	}, nil
}

// NewScanController builds a scan controller over the app's reader, registry
// and history store. The navigator decides what "opening an artwork" means
// for the frontend in use.
func (a *App) NewScanController(navigator artag.Navigator) *artag.ScanController {
	return artag.NewScanController(a.Reader, a.Registry, a.History, navigator, a.Logger, artag.RealClock{})
}

// Close stops the reader and releases all resources.
func (a *App) Close() error {
	var firstErr error

	a.Reader.Stop()

	if err := a.DB.Close(); err != nil {
		firstErr = fmt.Errorf("closing database: %w", err)
	}

	if a.logFile != nil {
		a.logFile.Close()
	}

	return firstErr
}
