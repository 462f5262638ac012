package artworkcatalog

import (
	"log/slog"

	httpadapter "artjury/contexts/competition/artwork-catalog/adapters/http"
	"artjury/contexts/competition/artwork-catalog/adapters/memory"
	"artjury/contexts/competition/artwork-catalog/application/commands"
	"artjury/contexts/competition/artwork-catalog/application/queries"
	"artjury/contexts/competition/artwork-catalog/domain/entities"
	"artjury/contexts/competition/artwork-catalog/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Queries queries.ArtworkQueryService
	Store   *memory.Store
}

type Dependencies struct {
	Artworks    ports.ArtworkRepository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func NewModule(deps Dependencies) Module {
	artworkUseCase := commands.ArtworkUseCase{
		Artworks: deps.Artworks,
		Clock:    deps.Clock,
		IDGen:    deps.IDGenerator,
		Logger:   deps.Logger,
	}
	orderingUseCase := commands.OrderingUseCase{
		Artworks: deps.Artworks,
		Clock:    deps.Clock,
		Logger:   deps.Logger,
	}
	queryService := queries.ArtworkQueryService{
		Artworks: deps.Artworks,
	}
	return Module{
		Handler: httpadapter.Handler{
			Artworks: artworkUseCase,
			Ordering: orderingUseCase,
			Queries:  queryService,
			Logger:   deps.Logger,
		},
		Queries: queryService,
	}
}

func NewInMemoryModule(seed []entities.Artwork, logger *slog.Logger) Module {
	store := memory.NewStore(seed)
	module := NewModule(Dependencies{
		Artworks:    store,
		Clock:       store,
		IDGenerator: store,
		Logger:      logger,
	})
	module.Store = store
	return module
}
