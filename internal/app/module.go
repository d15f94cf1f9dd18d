package app

import (
	"log/slog"
	"os"

	"github.com/shandysiswandi/govis/internal/visual"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.visual.enabled") {
		err := visual.New(visual.Dependency{
			Config: a.config,
			Router: a.router,
			ID:     a.snowflake,
		})
		if err != nil {
			slog.Error("failed to init module visual", "error", err)
			os.Exit(1)
		}
	}
}
