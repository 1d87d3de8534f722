package main

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/san-kum/sortviz/internal/server"
)

func serve(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	var level slog.Level
	_ = level.UnmarshalText([]byte(logLevel))
	if level > slog.LevelInfo {
		level = slog.LevelInfo
	}
	jsonLogger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(jsonLogger)

	if level > slog.LevelDebug {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := server.New(cfg, jsonLogger)
	return srv.Run(cmd.Context())
}
