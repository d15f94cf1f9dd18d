package app

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/rs/cors"
	"github.com/shandysiswandi/govis/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/govis/internal/pkg/pkglog"
	"github.com/shandysiswandi/govis/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/govis/internal/pkg/pkguid"
)

const serviceName = "govis"

var defaults = map[string]any{
	"tz":                     "UTC",
	"server.address.http":    ":8080",
	"server.read_timeout":    "30s",
	"server.write_timeout":   "60s",
	"log.level":              "info",
	"log.format":             "json",
	"cors.allowed_origins":   "*",
	"modules.visual.enabled": true,
	"upload.max_bytes":       32 << 20,
	"preview.rows":           5,
	"render.engine":          "gonum",
	"render.width":           800,
	"render.height":          500,
	"snowflake.node":         1,
}

func (a *App) initConfig() {
	path := "/config/config.yaml"
	if os.Getenv("LOCAL") == "true" {
		path = "./config/config.yaml"
	}

	cfg, err := pkgconfig.NewViper(path, defaults)
	if err != nil {
		slog.Error("failed to init config", "error", err)
		os.Exit(1)
	}

	//nolint:errcheck,gosec // ignore error
	os.Setenv("TZ", cfg.GetString("tz"))

	a.config = cfg
}

func (a *App) initLogging() {
	pkglog.InitLogging(pkglog.Options{
		Level:   a.config.GetString("log.level"),
		Format:  a.config.GetString("log.format"),
		Service: serviceName,
	})
}

func (a *App) initLibraries() {
	a.uuid = pkguid.NewUUID()

	node, err := pkguid.NewSnowflakeNode(a.config.GetInt("snowflake.node"))
	if err != nil {
		slog.Error("failed to init snowflake", "error", err)
		os.Exit(1)
	}
	a.snowflake = node
}

func (a *App) initHTTPServer() {
	a.router = pkgrouter.NewRouter(a.uuid,
		pkgrouter.WithService(serviceName),
		pkgrouter.WithBodyLimit(a.config.GetInt("upload.max_bytes")),
	)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: a.config.GetArray("cors.allowed_origins"),
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{pkgrouter.HeaderCorrelationID},
		AllowCredentials: true,
	})

	a.httpServer = &http.Server{
		Addr:              a.config.GetString("server.address.http"),
		Handler:           corsHandler.Handler(a.router),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       a.config.GetDuration("server.read_timeout"),
		WriteTimeout:      a.config.GetDuration("server.write_timeout"),
	}
}

func (a *App) initClosers() {
	a.closers = append(a.closers, closer{
		name: "Config",
		fn:   func(context.Context) error { return a.config.Close() },
	})
}
