package game

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestState() *GameState {
	return &GameState{
		ID:          uuid.NewString(),
		GameID:      uuid.NewString(),
		Round:       InitialRound,
		Storage:     &Storage{},
		RoundValues: NewRoundValues(),
		ArticleDynamics: []*ArticleDynamic{
			{
				ID: uuid.NewString(),
				Article: &Article{
					ID:            uuid.NewString(),
					ArticleNumber: 100101,
					PurchasePrice: 40.0,
					SalesPrice:    75.0,
					FixOrderCost:  90.0,
				},
				PastConsumption: []int{30},
			},
		},
	}
}

func newTestApplicant(name string, qualification int) *EmployeeDynamic {
	return NewEmployeeDynamic(&Employee{
		ID:              uuid.NewString(),
		Name:            name,
		Age:             30,
		EmploymentRound: -1,
		EndRound:        1000,
	}, qualification)
}

func TestHireEmployeeFullTime(t *testing.T) {
	// Arrange
	state := newTestState()
	applicant := newTestApplicant("Emma Fischer", 1)
	state.EmployeeStore = []*EmployeeDynamic{applicant}

	// Act
	err := state.HireEmployee(applicant.Employee.ID, ProcessStorage, ContractFullTime)

	// Assert
	require.NoError(t, err)
	assert.Empty(t, state.EmployeeStore)
	require.Len(t, state.EmployeeDynamics, 1)
	hired := state.EmployeeDynamics[0]
	assert.Equal(t, ProcessStorage, hired.Process)
	assert.Equal(t, state.Round+3, hired.Employee.EmploymentRound)
	assert.Equal(t, SalaryByQualification[1], hired.Salary)
}

func TestHireEmployeeHalfTimeCutsSalary(t *testing.T) {
	// Arrange
	state := newTestState()
	applicant := newTestApplicant("Jan Weber", 3)
	state.EmployeeStore = []*EmployeeDynamic{applicant}
	fullSalary := applicant.Salary

	// Act
	err := state.HireEmployee(applicant.Employee.ID, ProcessUnloading, ContractHalfTime)

	// Assert
	require.NoError(t, err)
	assert.InDelta(t, fullSalary*HalfTimeSalaryFactor, state.EmployeeDynamics[0].Salary, 0.0001)
}

func TestHireEmployeeTemporaryStartsNextRound(t *testing.T) {
	// Arrange
	state := newTestState()
	applicant := newTestApplicant("Lena Koch", 0)
	state.EmployeeStore = []*EmployeeDynamic{applicant}

	// Act
	err := state.HireEmployee(applicant.Employee.ID, ProcessLoading, ContractTemporary)

	// Assert
	require.NoError(t, err)
	hired := state.EmployeeDynamics[0]
	assert.Equal(t, state.Round+1, hired.Employee.EmploymentRound)
	assert.Equal(t, state.Round+4, hired.Employee.EndRound)
}

func TestHireEmployeeRejectsUnknownContract(t *testing.T) {
	// Arrange
	state := newTestState()
	applicant := newTestApplicant("Tom Braun", 0)
	state.EmployeeStore = []*EmployeeDynamic{applicant}

	// Act
	err := state.HireEmployee(applicant.Employee.ID, ProcessLoading, 7)

	// Assert
	assert.ErrorContains(t, err, "invalid contract type")
	assert.Len(t, state.EmployeeStore, 1)
}

func TestTerminateEmployeeNoticePeriods(t *testing.T) {
	// Arrange
	state := newTestState()
	regular := newTestApplicant("Nora Klein", 0)
	regular.Employee.ContractType = ContractFullTime
	temp := newTestApplicant("Ole Graf", 0)
	temp.Employee.ContractType = ContractTemporary
	state.EmployeeDynamics = []*EmployeeDynamic{regular, temp}

	// Act
	require.NoError(t, state.TerminateEmployee(regular.Employee.ID))
	require.NoError(t, state.TerminateEmployee(temp.Employee.ID))

	// Assert
	assert.Equal(t, state.Round+3, regular.Employee.EndRound)
	assert.Equal(t, state.Round+1, temp.Employee.EndRound)
}

func TestTrainEmployeeSchedulesTrainingRounds(t *testing.T) {
	// Arrange
	state := newTestState()
	d := newTestApplicant("Mia Wolf", 0)
	state.EmployeeDynamics = []*EmployeeDynamic{d}

	// Act
	require.NoError(t, state.TrainEmployee(d.Employee.ID, 1))
	require.NoError(t, state.TrainEmployee(d.Employee.ID, 2))
	require.NoError(t, state.TrainEmployee(d.Employee.ID, 4))

	// Assert
	assert.Equal(t, state.Round+2, d.FPRound)
	assert.Equal(t, state.Round+1, d.SecRound)
	assert.Equal(t, state.Round+2, d.QMRound)
}

func TestBuyConveyorClonesStoreModel(t *testing.T) {
	// Arrange
	state := newTestState()
	model := &ConveyorDynamic{
		ID: uuid.NewString(),
		Conveyor: &Conveyor{
			ID:             uuid.NewString(),
			Name:           "Gabelstapler",
			Price:          28000,
			TimeToDelivery: 1,
		},
		Condition: 100,
		Process:   ProcessUnloading,
	}
	state.ConveyorStore = []*ConveyorDynamic{model}

	// Act
	err := state.BuyConveyor(model.Conveyor.ID)

	// Assert
	require.NoError(t, err)
	require.Len(t, state.ConveyorDynamics, 1)
	bought := state.ConveyorDynamics[0]
	assert.Equal(t, state.Round, bought.RoundBought)
	assert.NotEqual(t, model.ID, bought.ID)
	assert.NotEqual(t, model.Conveyor.ID, bought.Conveyor.ID)
	// store model must stay untouched
	assert.Len(t, state.ConveyorStore, 1)
}

func TestCancelOrderChargesLeadTimeFee(t *testing.T) {
	// Arrange
	state := newTestState()
	order, err := state.PlaceOrder(OrderDraft{
		OrderNumber:       1,
		OrderRound:        state.Round,
		DeliveryRound:     state.Round + 2,
		DeliveryWishRound: state.Round + 2,
		ArticleNumber:     100101,
		RealPurchasePrice: 40.0,
		Quantity:          100,
		FixCosts:          90.0,
	}, 0)
	require.NoError(t, err)
	balanceBefore := state.RoundValues.AccountBalance

	// Act
	err = state.CancelOrder(order.ID)

	// Assert
	require.NoError(t, err)
	assert.Empty(t, state.Orders)
	expectedFee := OrderCancelCost[2]*100*40.0 + 90.0
	assert.InDelta(t, balanceBefore-expectedFee, state.RoundValues.AccountBalance, 0.0001)
}

func TestCancelOrderUnknownIDFails(t *testing.T) {
	// Arrange
	state := newTestState()

	// Act
	err := state.CancelOrder("missing")

	// Assert
	assert.ErrorContains(t, err, "order not found")
}

func TestCloneIsDeep(t *testing.T) {
	// Arrange
	state := newTestState()
	d := newTestApplicant("Paul Berg", 1)
	state.EmployeeDynamics = []*EmployeeDynamic{d}
	state.Storage.FreeStocks = []*StockGround{{ID: uuid.NewString(), ABC: "A", ArticleNumber: 100101}}
	state.PushMessage(NewMessage("Hallo", "Hello", state.Round))

	// Act
	clone := state.Clone(time.Now())
	clone.EmployeeDynamics[0].Motivation = 1
	clone.Storage.FreeStocks[0].ArticleNumber = 100104
	clone.RoundValues.AccountBalance = 0

	// Assert
	assert.Equal(t, 100, state.EmployeeDynamics[0].Motivation)
	assert.Equal(t, 100101, state.Storage.FreeStocks[0].ArticleNumber)
	assert.NotZero(t, state.RoundValues.AccountBalance)
	assert.Equal(t, state.Round, clone.Round)
	assert.NotEqual(t, state.ID, clone.ID)
}
