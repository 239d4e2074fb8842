package main

import (
	"errors"
	"io/fs"
	"log"
	"os"

	"github.com/Aarondoran/Dotlink-url-shortener/internal/app"
	"github.com/Aarondoran/Dotlink-url-shortener/internal/blacklist"
	"github.com/Aarondoran/Dotlink-url-shortener/internal/config"
	"github.com/Aarondoran/Dotlink-url-shortener/internal/logger"
	"github.com/Aarondoran/Dotlink-url-shortener/internal/logic"
	fsStore "github.com/Aarondoran/Dotlink-url-shortener/internal/store/fs"
	"github.com/Aarondoran/Dotlink-url-shortener/internal/store/memory"
	"github.com/Aarondoran/Dotlink-url-shortener/internal/store/postgres"
)

func newStore(conf *config.ServerConfig) (logic.Store, error) {
	if conf.DatabaseDSN != "" {
		return postgres.NewPostgresStore(conf.DatabaseDSN)
	}
	if conf.FileStoragePath != "" {
		return fsStore.NewFileStorage(conf.FileStoragePath)
	}
	return memory.NewMemoryStorage(make(map[string]string)), nil
}

func main() {
	conf, err := config.ParseFlags()
	if err != nil {
		log.Fatalf("error parsing config: %v", err)
	}

	zapLogger, err := logger.NewLogger()
	if err != nil {
		log.Fatalf("error creating logger: %v", err)
	}
	defer func() {
		_ = zapLogger.Sync()
	}()

	storage, err := newStore(conf)
	if err != nil {
		zapLogger.Fatalf("error initializing storage: %v", err)
	}
	defer storage.Close()

	filter := blacklist.New(conf.BlacklistPath)
	coreLogic := logic.NewCoreLogic(conf, storage, filter, zapLogger.Named("logic"))

	srv := app.NewApp(conf, coreLogic, zapLogger.Named("app"))
	r, err := srv.SetupRouter()
	if err != nil {
		zapLogger.Fatalf("error setting up router: %v", err)
	}

	if conf.EnableHTTPS {
		if _, err := os.Stat(conf.TLSCertPath); errors.Is(err, fs.ErrNotExist) {
			if err := app.CreateCertificates(conf.TLSCertPath, conf.TLSKeyPath); err != nil {
				zapLogger.Fatalf("error creating certificates: %v", err)
			}
		}
		zapLogger.Fatal(r.RunTLS(conf.RunAddr, conf.TLSCertPath, conf.TLSKeyPath))
	}

	zapLogger.Fatal(r.Run(conf.RunAddr))
}
