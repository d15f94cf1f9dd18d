package app

import (
	"context"
	"net/http"

	"github.com/shandysiswandi/govis/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/govis/internal/pkg/pkglog"
	"github.com/shandysiswandi/govis/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/govis/internal/pkg/pkguid"
)

type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config pkgconfig.Config

	// libraries
	uuid      pkguid.StringID
	snowflake pkguid.NumberID

	// server
	router     *pkgrouter.Router
	httpServer *http.Server

	// released by Stop after the server drains
	closers []closer
}

func New() *App {
	pkglog.InitLogging(pkglog.Options{})

	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initLogging()
	app.initLibraries()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
