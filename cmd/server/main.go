package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DylM0nster22/Tetris/pkg/api"
	"github.com/DylM0nster22/Tetris/pkg/log"
	"github.com/DylM0nster22/Tetris/pkg/network"
	"github.com/DylM0nster22/Tetris/pkg/repositories"
	"github.com/DylM0nster22/Tetris/pkg/version"
	"github.com/DylM0nster22/Tetris/pkg/workers"
)

func main() {
	port := flag.Int("port", 10000, "Port to listen on")
	logLevel := flag.String("log-level", "info", "Log level")
	maxRooms := flag.Int("max-rooms", network.DefaultMaxRooms, "Maximum number of open rooms")
	roomTimeout := flag.Duration("room-timeout", workers.DefaultRoomTimeout, "Close rooms idle for longer than this")
	sweepInterval := flag.Duration("sweep-interval", workers.DefaultRoomSweepInterval, "How often idle rooms are looked for")
	migrations := flag.String("migrations", "./migrations/sqlite", "SQLite migrations directory")
	certFile := flag.String("tls-cert", "", "TLS certificate file")
	keyFile := flag.String("tls-key", "", "TLS key file")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	log.Info("Starting relay server version %s", version.Get())
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	connStr := os.Getenv("TETRIS_DATABASE_URL")
	if connStr == "" {
		connStr = "sqlite://tetris.db"
	}

	repository, err := repositories.Open(ctx, connStr, *migrations)
	if err != nil {
		panic(fmt.Sprintf("Failed to open repository: %v", err))
	}
	defer repository.Close(context.Background())

	networkManager := network.NewNetworkManager(network.NewNetworkManagerOptions{
		Ctx:           ctx,
		ClientManager: network.NewClientManager(),
		RoomManager: network.NewRoomManager(network.NewRoomManagerOptions{
			MaxRooms: *maxRooms,
		}),
	})

	roomSweepWorker := workers.NewRoomSweepWorker(workers.NewRoomSweepWorkerOptions{
		Sweeper:  networkManager,
		Interval: *sweepInterval,
		Timeout:  *roomTimeout,
	})
	go roomSweepWorker.Start(ctx)

	var tlsConfig *api.TLSConfig
	if *certFile != "" && *keyFile != "" {
		tlsConfig = &api.TLSConfig{
			CertFile: *certFile,
			KeyFile:  *keyFile,
		}
	}

	apiServer := api.NewAPIServer(api.NewAPIServerOptions{
		Port:         *port,
		TLS:          tlsConfig,
		Repository:   repository,
		RelayHandler: networkManager.Handler(),
	})
	go func() {
		<-ctx.Done()
		log.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := apiServer.Stop(shutdownCtx); err != nil {
			log.Error("Failed to stop API server: %v", err)
		}
	}()

	apiServer.Start()
}
