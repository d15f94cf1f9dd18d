package visual

import (
	"github.com/shandysiswandi/govis/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/govis/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/govis/internal/pkg/pkguid"
	"github.com/shandysiswandi/govis/internal/visual/inbound"
	"github.com/shandysiswandi/govis/internal/visual/render"
	"github.com/shandysiswandi/govis/internal/visual/usecase"
)

type Dependency struct {
	Config pkgconfig.Config
	Router *pkgrouter.Router
	ID     pkguid.NumberID
}

func New(dep Dependency) error {
	renderer, err := render.New(
		dep.Config.GetString("render.engine"),
		int(dep.Config.GetInt("render.width")),
		int(dep.Config.GetInt("render.height")),
	)
	if err != nil {
		return err
	}

	uc := usecase.New(usecase.Dependency{
		Renderer:    renderer,
		ID:          dep.ID,
		PreviewRows: int(dep.Config.GetInt("preview.rows")),
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
