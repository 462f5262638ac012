package judgingengine

import (
	"log/slog"

	httpadapter "artjury/contexts/competition/judging-engine/adapters/http"
	"artjury/contexts/competition/judging-engine/adapters/memory"
	"artjury/contexts/competition/judging-engine/application/commands"
	"artjury/contexts/competition/judging-engine/application/queries"
	"artjury/contexts/competition/judging-engine/domain/entities"
	"artjury/contexts/competition/judging-engine/ports"

	"golang.org/x/sync/singleflight"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Votes       ports.VoteRepository
	Artworks    ports.ArtworkDirectory
	Judges      ports.JudgeDirectory
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	MaxScore    float64
	TopN        int
	Logger      *slog.Logger
}

func NewModule(deps Dependencies) Module {
	voteUseCase := commands.VoteUseCase{
		Votes:    deps.Votes,
		Artworks: deps.Artworks,
		Clock:    deps.Clock,
		IDGen:    deps.IDGenerator,
		MaxScore: deps.MaxScore,
		Logger:   deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Votes: voteUseCase,
			MyVotes: queries.MyVotesQueryService{
				Votes:    deps.Votes,
				Artworks: deps.Artworks,
			},
			Results: queries.ResultsQueryService{
				Votes:       deps.Votes,
				Artworks:    deps.Artworks,
				Judges:      deps.Judges,
				DefaultTopN: deps.TopN,
				Flight:      &singleflight.Group{},
				Logger:      deps.Logger,
			},
			Logger: deps.Logger,
		},
	}
}

func NewInMemoryModule(
	seed []entities.Vote,
	artworks ports.ArtworkDirectory,
	judges ports.JudgeDirectory,
	logger *slog.Logger,
) Module {
	store := memory.NewStore(seed)
	module := NewModule(Dependencies{
		Votes:       store,
		Artworks:    artworks,
		Judges:      judges,
		Clock:       store,
		IDGenerator: store,
		MaxScore:    entities.DefaultMaxScore,
		TopN:        10,
		Logger:      logger,
	})
	module.Store = store
	return module
}
