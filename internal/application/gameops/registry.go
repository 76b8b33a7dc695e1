package gameops

import (
	"reflect"

	"github.com/lbruckner/palletsim/internal/application/common"
	"github.com/lbruckner/palletsim/internal/application/gameops/commands"
	"github.com/lbruckner/palletsim/internal/application/gameops/queries"
	"github.com/lbruckner/palletsim/internal/domain/game"
	"github.com/lbruckner/palletsim/internal/domain/shared"
)

// HandlerRegistry holds all application dependencies for handler creation
type HandlerRegistry struct {
	games    game.GameRepository
	states   game.StateRepository
	engine   commands.RoundEngine
	notifier game.RoundNotifier
	rng      shared.Random
	clock    shared.Clock
}

// NewHandlerRegistry creates a new handler registry with required
// dependencies. The notifier may be nil when no client transport runs.
func NewHandlerRegistry(
	games game.GameRepository,
	states game.StateRepository,
	engine commands.RoundEngine,
	notifier game.RoundNotifier,
	rng shared.Random,
	clock shared.Clock,
) *HandlerRegistry {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &HandlerRegistry{
		games:    games,
		states:   states,
		engine:   engine,
		notifier: notifier,
		rng:      rng,
		clock:    clock,
	}
}

// RegisterLifecycleHandlers registers the game lifecycle command handlers:
// create, advance, revert and delete.
func (r *HandlerRegistry) RegisterLifecycleHandlers(m common.Mediator) error {
	if err := m.Register(
		reflect.TypeOf(&commands.CreateGameCommand{}),
		commands.NewCreateGameHandler(r.games, r.states, r.rng, r.clock),
	); err != nil {
		return err
	}

	if err := m.Register(
		reflect.TypeOf(&commands.AdvanceRoundCommand{}),
		commands.NewAdvanceRoundHandler(r.games, r.states, r.engine, r.notifier, r.clock),
	); err != nil {
		return err
	}

	if err := m.Register(
		reflect.TypeOf(&commands.RevertRoundCommand{}),
		commands.NewRevertRoundHandler(r.games, r.states, r.clock),
	); err != nil {
		return err
	}

	return m.Register(
		reflect.TypeOf(&commands.DeleteGameCommand{}),
		commands.NewDeleteGameHandler(r.games, r.states),
	)
}

// RegisterActionHandlers registers every player action command. All plain
// mutators share one handler instance; placing an order has its own handler
// because of the short-shipping draw.
func (r *HandlerRegistry) RegisterActionHandlers(m common.Mediator) error {
	actions := commands.NewActionHandler(r.games, r.states, r.clock)
	for _, cmd := range []common.Request{
		&commands.HireEmployeeCommand{},
		&commands.TerminateEmployeeCommand{},
		&commands.TrainEmployeeCommand{},
		&commands.AssignEmployeeCommand{},
		&commands.BuyConveyorCommand{},
		&commands.SellConveyorCommand{},
		&commands.OverhaulConveyorCommand{},
		&commands.ToggleMaintenanceCommand{},
		&commands.AssignConveyorCommand{},
		&commands.CancelOrderCommand{},
		&commands.SetOvertimeCommand{},
		&commands.SetClimateInvestmentCommand{},
		&commands.UpdateServicesCommand{},
		&commands.UpdateTechnologyCommand{},
		&commands.UpdateLoadingEquipmentCommand{},
		&commands.UpdateStorageDistributionCommand{},
		&commands.UpdateInboundControlCommand{},
		&commands.UpdateOutboundControlCommand{},
		&commands.UpdateSecurityDevicesCommand{},
		&commands.UpdateIncomingStrategyCommand{},
		&commands.UpdateStorageStrategyCommand{},
		&commands.UpdateOutgoingStrategyCommand{},
		&commands.InitiateABCAnalysisCommand{},
		&commands.InitiateABCZoningCommand{},
	} {
		if err := m.Register(reflect.TypeOf(cmd), actions); err != nil {
			return err
		}
	}

	return m.Register(
		reflect.TypeOf(&commands.PlaceOrderCommand{}),
		commands.NewPlaceOrderHandler(r.games, r.states, r.rng, r.clock),
	)
}

// RegisterQueryHandlers registers the game information and statistic
// projection queries
func (r *HandlerRegistry) RegisterQueryHandlers(m common.Mediator) error {
	if err := m.Register(
		reflect.TypeOf(&queries.GetGameQuery{}),
		queries.NewGetGameHandler(r.games, r.states),
	); err != nil {
		return err
	}

	if err := m.Register(
		reflect.TypeOf(&queries.ListGamesQuery{}),
		queries.NewListGamesHandler(r.games, r.states),
	); err != nil {
		return err
	}

	if err := m.Register(
		reflect.TypeOf(&queries.GetStateQuery{}),
		queries.NewGetStateHandler(r.games, r.states),
	); err != nil {
		return err
	}

	history := queries.NewHistoryHandler(r.states)
	for _, q := range []common.Request{
		&queries.GetBalanceHistoryQuery{},
		&queries.GetSatisfactionHistoryQuery{},
		&queries.GetStockHistoryQuery{},
	} {
		if err := m.Register(reflect.TypeOf(q), history); err != nil {
			return err
		}
	}

	return m.Register(
		reflect.TypeOf(&queries.ExportGameQuery{}),
		queries.NewExportGameHandler(r.games, r.states),
	)
}

// CreateConfiguredMediator creates a mediator with every command and query
// handler registered
func (r *HandlerRegistry) CreateConfiguredMediator() (common.Mediator, error) {
	m := common.NewMediator()

	if err := r.RegisterLifecycleHandlers(m); err != nil {
		return nil, err
	}
	if err := r.RegisterActionHandlers(m); err != nil {
		return nil, err
	}
	if err := r.RegisterQueryHandlers(m); err != nil {
		return nil, err
	}

	return m, nil
}
