package main

import (
	"github.com/wfunc/coloretto/config"
	"github.com/wfunc/coloretto/logger"
	"github.com/wfunc/coloretto/persistence"
	"github.com/wfunc/coloretto/server"
	"github.com/wfunc/coloretto/services"
)

func main() {
	// Initialize logger
	logger.Init()
	defer logger.Sync()

	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		logger.Log.Fatalf("Failed to load configuration: %v", err)
	}

	// Room store (redis)
	store, err := persistence.NewRedisRoomStore(
		cfg.Redis.Addr,
		cfg.Redis.Password,
		cfg.Redis.DB,
		cfg.Redis.RoomTTL,
	)
	if err != nil {
		logger.Log.Fatalf("Failed to connect to redis: %v", err)
	}
	defer store.Close()
	logger.Log.Info("Room store connection successful.")

	// Game archive (postgres); optional
	var archive persistence.Archive = persistence.NoopArchive{}
	if cfg.Database.Postgres.Host != "" {
		archive, err = persistence.NewGormArchive(
			cfg.Database.Postgres.Host,
			cfg.Database.Postgres.Port,
			cfg.Database.Postgres.User,
			cfg.Database.Postgres.Password,
			cfg.Database.Postgres.DBName,
		)
		if err != nil {
			logger.Log.Fatalf("Failed to connect to database: %v", err)
		}
		logger.Log.Info("Archive connection successful.")
	} else {
		logger.Log.Warn("No postgres configured, game records disabled.")
	}
	defer archive.Close()

	roomService := services.NewRoomService(store, archive)

	// Initialize Game Server
	gameServer := server.NewGameServer(cfg.Server.HTTPAddress, cfg.Server.RPCAddress, roomService)
	gameServer.Monitor().StartServer(cfg.Server.MonitorAddress)

	// Start Server
	logger.Log.Infof("Starting game server on %s", cfg.Server.HTTPAddress)
	if err := gameServer.Start(); err != nil {
		logger.Log.Fatalf("Failed to start server: %v", err)
	}
}
