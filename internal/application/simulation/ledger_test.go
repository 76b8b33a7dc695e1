package simulation

import (
	"testing"

	"github.com/lbruckner/palletsim/internal/domain/game"
	"github.com/lbruckner/palletsim/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLedgerState() *game.GameState {
	state := newFlowState()
	state.RoundValues = &game.RoundValues{GameState: game.GameStateOK}
	return state
}

func TestCalculateLedger_ClosesTheBooks(t *testing.T) {
	// Arrange
	state := newLedgerState()
	rv := state.RoundValues
	rv.AccountBalance = 1000
	rv.SalesIncomeArticle = [game.ArticleCount]float64{100, 0, 0, 0}
	rv.StockValueProcesses[game.ProcessStorage.Index()] = 1000
	engine := newTestEngine(&shared.ScriptedRandom{})

	// Act
	engine.calculateLedger(state)

	// Assert: storage cost floor(0.15 * 1000), credit interest 2% of the
	// balance, new balance rounds the sum
	assert.Equal(t, 150.0, rv.StorageCost)
	assert.Equal(t, 20.0, rv.CreditInterestIncome)
	assert.Equal(t, 100.0, rv.SalesIncome)
	assert.Equal(t, 150.0, rv.CostsRound)
	assert.Equal(t, 120.0, rv.IncomeRound)
	assert.Equal(t, 970.0, rv.AccountBalance)
}

func TestCalculateLedger_DebtAccruesDebitInterest(t *testing.T) {
	// Arrange
	state := newLedgerState()
	rv := state.RoundValues
	rv.AccountBalance = -1000
	engine := newTestEngine(&shared.ScriptedRandom{})

	// Act
	engine.calculateLedger(state)

	// Assert
	assert.Equal(t, 100.0, rv.DebitInterestCost)
	assert.Equal(t, 0.0, rv.CreditInterestIncome)
	assert.Equal(t, -1100.0, rv.AccountBalance)
}

func TestCalculateLedger_ABCFeesAreBookedOnce(t *testing.T) {
	// Arrange
	state := newLedgerState()
	rv := state.RoundValues
	rv.ABCAnalysisRound = state.Round
	rv.ABCZoningRound = state.Round
	engine := newTestEngine(&shared.ScriptedRandom{})

	// Act
	engine.calculateLedger(state)

	// Assert
	assert.Equal(t, float64(game.ABCAnalysisCost+game.ABCZoningCost), rv.ABCCost)
}

func TestPrepareLedger_DebtBeyondCompanyValueTurnsCritical(t *testing.T) {
	// Arrange
	state := newLedgerState()
	rv := state.RoundValues
	rv.CompanyValue = 100
	rv.AccountBalance = -200
	rv.CustomerSatisfaction = 80
	engine := newTestEngine(&shared.ScriptedRandom{})

	// Act
	engine.prepareLedger(state)

	// Assert
	assert.Equal(t, game.GameStateCritical, rv.GameState)
	assert.Equal(t, state.Round-1, rv.StatusChangeRound)
	require.NotEmpty(t, state.Messages)
	assert.Contains(t, state.Messages[0].TextEN, "FINANCIAL SITUATION HAS BECOME CRITICAL")
}

func TestPrepareLedger_PersistentCriticalStateEndsTheGame(t *testing.T) {
	// Arrange: critical since four rounds
	state := newLedgerState()
	rv := state.RoundValues
	rv.GameState = game.GameStateCritical
	rv.StatusChangeRound = state.Round - game.MaxCriticalStateDuration - 1
	rv.CompanyValue = 100
	rv.AccountBalance = -200
	rv.CustomerSatisfaction = 80
	engine := newTestEngine(&shared.ScriptedRandom{})

	// Act
	engine.prepareLedger(state)

	// Assert
	assert.Equal(t, game.GameStateEnd, rv.GameState)
	require.NotEmpty(t, state.Messages)
	assert.Contains(t, state.Messages[0].TextEN, "DECLARE BANKRUPTCY")
}

func TestPrepareLedger_CriticalStateWithinGraceGetsReminder(t *testing.T) {
	// Arrange
	state := newLedgerState()
	rv := state.RoundValues
	rv.GameState = game.GameStateCritical
	rv.StatusChangeRound = state.Round - 1
	rv.CompanyValue = 100
	rv.AccountBalance = -200
	rv.CustomerSatisfaction = 80
	engine := newTestEngine(&shared.ScriptedRandom{})

	// Act
	engine.prepareLedger(state)

	// Assert
	assert.Equal(t, game.GameStateCritical, rv.GameState)
	require.NotEmpty(t, state.Messages)
	assert.Contains(t, state.Messages[0].TextEN, "STILL CRITICAL")
}

func TestPrepareLedger_LostCustomersTurnCritical(t *testing.T) {
	// Arrange
	state := newLedgerState()
	rv := state.RoundValues
	rv.CompanyValue = 1000
	rv.AccountBalance = 500
	rv.CustomerSatisfaction = 0.05
	engine := newTestEngine(&shared.ScriptedRandom{})

	// Act
	engine.prepareLedger(state)

	// Assert
	assert.Equal(t, game.GameStateCritical, rv.GameState)
	require.NotEmpty(t, state.Messages)
	assert.Contains(t, state.Messages[0].TextEN, "CUSTOMER SATISFACTION HAS BECOME CRITICAL")
}

func TestPrepareLedger_RecoveryClearsCriticalState(t *testing.T) {
	// Arrange
	state := newLedgerState()
	rv := state.RoundValues
	rv.GameState = game.GameStateCritical
	rv.StatusChangeRound = state.Round - 2
	rv.CompanyValue = 1000
	rv.AccountBalance = 500
	rv.CustomerSatisfaction = 80
	engine := newTestEngine(&shared.ScriptedRandom{})

	// Act
	engine.prepareLedger(state)

	// Assert
	assert.Equal(t, game.GameStateOK, rv.GameState)
	assert.Equal(t, state.Round-1, rv.StatusChangeRound)
	require.NotEmpty(t, state.Messages)
	assert.Contains(t, state.Messages[0].TextEN, "SITUATION HAS IMPROVED")
}
