package game

// Balance constants of the simulation. Values are shared between the round
// pipeline and the player-facing action accessors; they never change at
// runtime.

// Conveyor wear and repair
const (
	ConveyorBreakdownLimit           = 40
	ConveyorScrapLimit               = 20
	ConveyorRepairCostFactor         = 0.25
	ConveyorDamageWithMaintenance    = 2
	ConveyorDamageWithoutMaintenance = 5
	ConveyorSaleFactor               = 0.85
	ConveyorDisabilityFactor         = 0.02
)

// WorkingTimeSeconds is the regular per-round working time of one employee
// or one conveyor, in seconds
const WorkingTimeSeconds = 27000

// One-shot analysis services
const (
	ABCAnalysisCost = 10000
	ABCZoningCost   = 5000
)

// Finance
const (
	StorageCostFactor        = 0.15
	DebitInterestFactor      = 0.1
	CreditInterestFactor     = 0.02
	MaxCriticalStateDuration = 3
	MinCustomerSatisfaction  = 0.1
)

// Per-round subscription costs of the information modules
const (
	ModuleOrderQuantityCost = 450
	ModuleReorderLevelCost  = 200
	ModuleSafetyStockCost   = 200
	ModuleLookInStorageCost = 300
	ModuleStatusReportCost  = 500
)

// Employee contracts and hiring
const (
	NewEmployeeCostIndefinite = 500
	NewEmployeeCostTemporary  = 200
	HalfTimeSalaryFactor      = 0.6
	CompensationFactor        = 0.3
	MotivationWarningLevel    = 50
	MotivationBase            = 0.25
)

// ValidContractTypes enumerates the contract type codes a hire may carry:
// 0 full time, 1 half time, 2 temporary
var ValidContractTypes = []int{0, 1, 2}

// SecurityQualifications lists the qualification codes that include the
// safety training bit
var SecurityQualifications = []int{2, 3, 6, 7}

// Error chances per employee depending on forklift permit and training
const (
	ErrorChanceWfpTrained    = 0.01
	ErrorChanceWfpUntrained  = 0.05
	ErrorChanceWofpUntrained = 0.1
	ErrorChanceWithQM        = 0.05
	ErrorChanceWithoutQM     = 0.1
)

// Training costs
const (
	ForkliftTrainingCost = 2300
	QMTrainingCost       = 2250
	SecurityTrainingCost = 1700
)

// IT levels: per-round cost and transport speed-up factor per level
var (
	TechnologyCost   = []int{0, 850, 1300, 1600}
	TechnologyFactor = []float64{0.0, 0.02, 0.05, 0.1}
)

// Work climate investment brackets and the resulting motivation factor
var (
	WorkClimateInvestLevel = []int{0, 100, 250, 400, 550}
	WorkClimateFactor      = []float64{0.7, 0.85, 1.0, 1.05, 1.1}
)

// Overtime motivation penalty brackets (hours -> factor)
var (
	OvertimeMotivationBorders = []int{0, 1, 2, 3}
	OvertimeMotivationFactor  = []float64{1.0, 0.9, 0.75, 0.5}
)

// Temporary-worker share motivation penalty brackets (share -> factor)
var (
	TemporaryMotivationBorders = []float64{0.1, 0.2, 0.3, 0.4, 0.5}
	TemporaryMotivationFactor  = []float64{1.0, 0.95, 0.9, 0.85, 0.8, 0.7}
)

// SalaryByQualification maps qualification code (0-7) to the per-round salary
var SalaryByQualification = []float64{85.0, 125.0, 125.0, 145.0, 110.0, 150.0, 160.0, 170.0}

// Customer demand
var (
	JobArticleProbability      = []float64{0.1, 0.3, 0.6, 1.0}
	JobQuantityProbability     = []float64{0.15, 0.50, 0.70, 0.85, 1.0}
	CustomerSatisfactionLevel  = []int{10, 20, 30, 40, 50, 60, 70, 80, 90}
	CustomerSatisfactionFactor = []float64{-1.0, -0.8, -0.6, -0.4, -0.2, 0.0, 0.2, 0.4, 0.8, 1.0}
)

// PalletIncrease caps the per-round growth of the demand quota
const PalletIncrease = 25

// HistoryTime is the length of the consumption history window, in rounds
const HistoryTime = 5

// StockCarryingFactor is the per-round carrying cost share used by the
// optimal order quantity estimate
const StockCarryingFactor = 0.15

// Loading equipment levels: per-round cost, crash chance and handling factor
var (
	LoadingEquipmentLevel       = []int{0, 450, 800}
	LoadingEquipmentCrashChance = []float64{0.1, 0.05, 0.01}
	LoadingEquipmentFactor      = []float64{0.9, 0.95, 0.99}
)

// Transport legs: truck to goods-in and goods-out to truck, in meters
var TransportTime = []float64{25.0, 25.0}

// Pallet handling times, in seconds
const (
	USDCostPerPallet           = 12
	ControlTimeStaticInbound   = 40
	ControlTimeDynamicInbound  = 150
	ControlTimeStaticOutbound  = 20
	ControlTimeDynamicOutbound = 100
	USDUnitTime                = 50
	TimeTakeUpRelease          = 5
)

// LiftLayerDuration is the extra lift time per storage level, in seconds
var LiftLayerDuration = []int{0, 5, 10, 15}

// Names of the damage categories in the order the damage draw stacks its
// cumulative weights: damage, wrong delivery, wrong retrieval, then the
// three transport crashes. The last entry marks an undamaged pallet; the
// order is NOT the one of the PalletError constants.
var PalletErrorNames = []string{
	"Schaden",
	"Falsche Anlieferung",
	"Falsche Auslagerung",
	"Transportschaden bei Entladung",
	"Transportschaden im Lager",
	"Transportschaden in Verladung",
	"-",
}

// Damage draw weights
const (
	ErrorSum               = 160.0
	ErrorDamage            = 10.0
	ErrorWrongDelivered    = 10.0
	ErrorWrongRetrieval    = 10.0
	ErrorTransportDamageEn = 10.0
	ErrorTransportDamageLa = 10.0
	ErrorTransportDamageVe = 10.0
)

// Crash probabilities during transport
const (
	CrashFactorLoadingEquipment = 0.3
	CrashFactorSecurityDevices  = 0.3
	CrashFactorEmployee         = 0.4
	CrashChanceWithUSD          = 0.0
	CrashChanceWithoutUSD       = 0.05
	TimeCrash                   = 1200
)

// OrderCancelCost maps rounds-until-delivery to the cancellation fee share
var OrderCancelCost = []float64{0.25, 0.2, 0.1, 0.05, 0.01}
