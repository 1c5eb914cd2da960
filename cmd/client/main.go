package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/DylM0nster22/Tetris/client/game"
	clientnetwork "github.com/DylM0nster22/Tetris/pkg/client/network"
	"github.com/DylM0nster22/Tetris/pkg/config"
	"github.com/DylM0nster22/Tetris/pkg/log"
	"github.com/DylM0nster22/Tetris/pkg/repositories"
	"github.com/DylM0nster22/Tetris/pkg/version"
	"github.com/DylM0nster22/Tetris/pkg/workers"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	serverURL := flag.String("server", clientnetwork.DefaultServerURL, "Relay server websocket URL")
	playerName := flag.String("name", "player", "Name stored with your scores")
	configPath := flag.String("config", "", "Game config YAML file")
	debug := flag.Bool("debug", false, "Show the debug overlay")
	logLevel := flag.String("log-level", "info", "Log level")
	dbURL := flag.String("db", "sqlite://tetris-client.db", "Score database URL, empty to disable")
	migrations := flag.String("migrations", "./migrations/sqlite", "SQLite migrations directory")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	log.Info("Starting client version %s", version.Get())

	cfg := config.Default()
	if *configPath != "" {
		cfg, err = config.Load(*configPath)
		if err != nil {
			panic(fmt.Sprintf("Failed to load config: %v", err))
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var repository repositories.Repository
	var saveScoreChan chan workers.SaveScoreRequest
	if *dbURL != "" {
		repository, err = repositories.Open(ctx, *dbURL, *migrations)
		if err != nil {
			panic(fmt.Sprintf("Failed to open score repository: %v", err))
		}
		defer repository.Close(context.Background())

		saveScoreChan = make(chan workers.SaveScoreRequest, 16)
		saveScoreWorker := workers.NewSaveScoreWorker(workers.NewSaveScoreWorkerOptions{
			Repository:    repository,
			SaveScoreChan: saveScoreChan,
		})
		go saveScoreWorker.Start(ctx)
	}

	g, err := game.NewGame(game.NewGameOptions{
		Debug:         *debug,
		Config:        cfg,
		ServerURL:     *serverURL,
		PlayerName:    *playerName,
		Repository:    repository,
		SaveScoreChan: saveScoreChan,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to create game: %v", err))
	}

	ebiten.SetWindowSize(game.DefaultScreenWidth, game.DefaultScreenHeight)
	ebiten.SetWindowTitle("Tetris")
	if err := ebiten.RunGame(g); err != nil {
		panic(fmt.Sprintf("Failed to run game: %v", err))
	}
}
