package cli

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/lbruckner/palletsim/internal/adapters/persistence"
	"github.com/lbruckner/palletsim/internal/application/common"
	"github.com/lbruckner/palletsim/internal/application/gameops"
	"github.com/lbruckner/palletsim/internal/domain/shared"
	"github.com/lbruckner/palletsim/internal/infrastructure/config"
	"github.com/lbruckner/palletsim/internal/infrastructure/database"
)

// openQueryMediator connects to the game database and returns a mediator
// with the query handlers registered. Statistic projections are pure reads
// over stored snapshots, so they run in-process instead of going through
// the daemon.
func openQueryMediator() (common.Mediator, *gorm.DB, error) {
	cfg, err := config.LoadConfig("")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	seed, err := shared.NewRandomSeed()
	if err != nil {
		database.Close(db)
		return nil, nil, fmt.Errorf("failed to seed random source: %w", err)
	}

	registry := gameops.NewHandlerRegistry(
		persistence.NewGormGameRepository(db),
		persistence.NewGormStateRepository(db),
		nil, // round advances go through the daemon
		nil,
		shared.NewSeededRandom(seed),
		shared.NewRealClock(),
	)

	mediator := common.NewMediator()
	if err := registry.RegisterQueryHandlers(mediator); err != nil {
		database.Close(db)
		return nil, nil, err
	}
	return mediator, db, nil
}
