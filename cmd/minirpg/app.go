package main

import (
	"os"
	"path/filepath"

	"github.com/FredLuc12/MiniRPG/internal/config"
	"github.com/FredLuc12/MiniRPG/internal/constants"
	"github.com/FredLuc12/MiniRPG/internal/logging"
	"github.com/FredLuc12/MiniRPG/internal/storage"
)

func loadEnvOrExit() config.Env {
	cfg, err := config.LoadEnv()
	if err != nil {
		logging.Fatal("Invalid environment configuration", err, nil)
	}
	return cfg
}

func loadWorldOrExit(path string) *config.World {
	w, err := config.LoadWorld(path)
	if err != nil {
		logging.Fatal("Missing or invalid world configuration", err, logging.Fields{constants.LogFieldPath: path, "hint": "create a world.yaml with classes, enemies, boss and zones"})
	}
	return w
}

func createRepositoryOrExit(dbPath string) storage.Repository {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logging.Fatal("Failed to create database directory", err, logging.Fields{constants.LogFieldPath: dir})
		}
	}
	db, err := storage.OpenAndMigrate(dbPath)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, logging.Fields{constants.LogFieldPath: dbPath})
	}
	return storage.NewSQLiteRepository(db)
}
