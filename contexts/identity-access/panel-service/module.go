package panelservice

import (
	"log/slog"

	"artjury/contexts/identity-access/panel-service/adapters/crypto"
	httpadapter "artjury/contexts/identity-access/panel-service/adapters/http"
	"artjury/contexts/identity-access/panel-service/adapters/memory"
	"artjury/contexts/identity-access/panel-service/application/commands"
	"artjury/contexts/identity-access/panel-service/application/queries"
	"artjury/contexts/identity-access/panel-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Admins  commands.AdminUseCase
	Queries queries.JudgeQueryService
	Store   *memory.Store
}

type Dependencies struct {
	Repository  ports.PanelRepository
	Hasher      ports.PasswordHasher
	Tokens      ports.TokenIssuer
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func NewModule(deps Dependencies) Module {
	hasher := deps.Hasher
	if hasher == nil {
		hasher = crypto.BcryptHasher{}
	}
	queryService := queries.JudgeQueryService{Repository: deps.Repository}
	return Module{
		Handler: httpadapter.Handler{
			Login: commands.LoginUseCase{
				Repository: deps.Repository,
				Hasher:     hasher,
				Clock:      deps.Clock,
				Logger:     deps.Logger,
			},
			Judges: commands.JudgeUseCase{
				Repository: deps.Repository,
				Hasher:     hasher,
				Clock:      deps.Clock,
				IDGen:      deps.IDGenerator,
				Logger:     deps.Logger,
			},
			Query:  queryService,
			Tokens: deps.Tokens,
			Logger: deps.Logger,
		},
		Admins: commands.AdminUseCase{
			Repository: deps.Repository,
			Hasher:     hasher,
			Clock:      deps.Clock,
			IDGen:      deps.IDGenerator,
			Logger:     deps.Logger,
		},
		Queries: queryService,
	}
}

func NewInMemoryModule(hasher ports.PasswordHasher, tokens ports.TokenIssuer, logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Repository:  store,
		Hasher:      hasher,
		Tokens:      tokens,
		Clock:       store,
		IDGenerator: store,
		Logger:      logger,
	})
	module.Store = store
	return module
}
