package setup

import (
	"context"

	"github.com/itchan-dev/punchcards/backend/internal/handler"
	"github.com/itchan-dev/punchcards/backend/internal/service"
	"github.com/itchan-dev/punchcards/backend/internal/storage/pg"
	"github.com/itchan-dev/punchcards/backend/internal/utils"
	"github.com/itchan-dev/punchcards/shared/config"
)

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Storage *pg.Storage
	Handler *handler.Handler
	Config  *config.Config
}

// SetupDependencies connects to the database, runs migrations and builds
// the services and handler on top of it.
func SetupDependencies(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(ctx, cfg)
	if err != nil {
		return nil, err
	}

	limits := cfg.Public.Limits
	card := service.NewCard(storage, &utils.CardValidator{Limits: limits})
	person := service.NewPerson(storage, &utils.PersonValidator{Limits: limits})
	punch := service.NewPunch(storage, &utils.PunchValidator{Limits: limits})

	h := handler.New(card, person, punch, storage)

	return &Dependencies{
		Storage: storage,
		Handler: h,
		Config:  cfg,
	}, nil
}
