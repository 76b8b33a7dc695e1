package game

// Game states of the critical-state machine
const (
	GameStateOK       = "OK"
	GameStateCritical = "CRITICAL"
	GameStateEnd      = "END"
)

// ArticleCount is the number of stock keeping units in the catalog
const ArticleCount = 4

// RoundValues is the per-round scoreboard of the company. The fields are
// grouped by the pipeline stage that owns them: each group is reset and
// written by exactly one stage per round, every later stage only reads it.
// Player-set values are written between rounds through GameState accessors
// and only read by the pipeline.
type RoundValues struct {
	AccountBalance       float64 `json:"account_balance"`
	CustomerSatisfaction float64 `json:"customer_satisfaction"`
	PMax                 int     `json:"p_max"`
	GameState            string  `json:"game_state"`
	StatusChangeRound    int     `json:"status_change_round"`

	// Player-set values
	UnitSecurityDevices   bool              `json:"unit_security_devices_used"`
	ITCosts               int               `json:"it_costs"`
	StrategyIncoming      int               `json:"strategy_incoming"`
	StrategyOutgoing      int               `json:"strategy_outgoing"`
	StrategyStorage       int               `json:"strategy_storage"`
	PalletInFactor        float64           `json:"pallet_we_factor"`
	PalletOutFactor       float64           `json:"pallet_wa_factor"`
	OvertimeProcess       [ProcessCount]int `json:"overtime_process"`
	BackToBasicStorage    int               `json:"back_to_basic_storage"`
	BackToITLevel1        int               `json:"back_to_it_level1"`
	BackToITLevel2        int               `json:"back_to_it_level2"`
	ABCAnalysisRound      int               `json:"abc_analysis_round"`
	ABCZoningRound        int               `json:"abc_zoning_round"`
	StorageFactor         float64           `json:"storage_factor"`
	LoadingEquipmentLevel int               `json:"loading_equipment_level"`
	ModuleOrderQuantity   bool              `json:"module_order_quantity"`
	ModuleReorderLevel    bool              `json:"module_reorder_level"`
	ModuleSafetyStock     bool              `json:"module_safety_stock"`
	ModuleLookInStorage   bool              `json:"module_look_in_storage"`
	ModuleStatusReport    bool              `json:"module_status_report"`

	// Statistics stage
	LateJobs    int `json:"late_jobs"`
	FreeStorage int `json:"free_storage"`
	OccStorage  int `json:"occ_storage"`

	// Ledger stage
	SalesIncome          float64               `json:"sales_income"`
	StorageCost          float64               `json:"storage_cost"`
	WorkTimeCost         float64               `json:"work_time_cost"`
	QualificationCost    float64               `json:"costs_qualification_measure"`
	NewEmployeeCost      float64               `json:"costs_new_employees"`
	WorkClimateInvest    int                   `json:"work_climate_invest"`
	ConveyorSaleIncome   float64               `json:"income_conveyor_sale"`
	USDCost              float64               `json:"costs_usd"`
	ABCCost              float64               `json:"costs_abc"`
	SalesIncomeArticle   [ArticleCount]float64 `json:"sales_income_article"`
	CostsRound           float64               `json:"costs_round"`
	IncomeRound          float64               `json:"income_round"`
	DebitInterestCost    float64               `json:"debit_interest_cost"`
	CreditInterestIncome float64               `json:"credit_interest_income"`

	// Capacity stage
	CapacityProcesses        [ProcessCount]float64 `json:"capacity_processes"`
	CapacityOverallProcesses [ProcessCount]float64 `json:"capacity_overall_processes"`
	CapacityStorageIn        float64               `json:"capacity_storage_in"`
	CapacityStorageOut       float64               `json:"capacity_storage_out"`

	// Equipment stage
	ConvCapacityProcesses     [ProcessCount]float64 `json:"conv_capacity_processes"`
	ConvCapacityWfpProcesses  [ProcessCount]float64 `json:"conv_capacity_wfp_processes"`
	ConvCapacityWofpProcesses [ProcessCount]float64 `json:"conv_capacity_wofp_processes"`
	ConvCountProcesses        [ProcessCount]int     `json:"conv_count_processes"`
	AvgSpeedProcesses         [ProcessCount]float64 `json:"avg_speed_processes"`
	CurrentConvValue          float64               `json:"current_conv_value"`
	RepairDuration            float64               `json:"repair_duration"`
	RepairCost                float64               `json:"costs_repair"`
	MaintenanceCost           float64               `json:"costs_maintenance"`
	OverhaulCost              float64               `json:"costs_overhaul"`
	NewConveyorCost           float64               `json:"costs_new"`

	// Employee stage
	EmpCapacityProcesses     [ProcessCount]float64 `json:"emp_capacity_processes"`
	EmpCapacityWfpProcesses  [ProcessCount]float64 `json:"emp_capacity_wfp_processes"`
	EmpCapacityWofpProcesses [ProcessCount]float64 `json:"emp_capacity_wofp_processes"`
	AvgErrorChanceProcesses  [ProcessCount]float64 `json:"avg_error_chance_processes"`
	EmpCountProcesses        [ProcessCount]int     `json:"emp_count_processes"`
	EmployeeCost             float64               `json:"employee_cost"`
	AvgMotivation            float64               `json:"avg_motivation"`

	// Flow stage
	AccurateFinishedJobs         int                   `json:"accurate_finished_jobs"`
	LateFinishedJobs             int                   `json:"late_finished_jobs"`
	AccurateDeliveredPallets     int                   `json:"accurate_delivered_pallets"`
	LateDeliveredPallets         int                   `json:"late_delivered_pallets"`
	PalletQuantityPerErrors      [PalletErrorCount]int `json:"pallet_quantity_per_errors"`
	PalletsTransportedProcess    [ProcessCount]int     `json:"pallets_transported_process"`
	PalletsNotTransportedProcess [ProcessCount]int     `json:"pallets_not_transported_process"`
	PalletsTransportedStorageIn  int                   `json:"pallets_transported_la_in"`
	PalletsTransportedStorageOut int                   `json:"pallets_transported_la_out"`
	NotTransportedStorageIn      int                   `json:"not_transported_pallets_la_in"`
	NotTransportedStorageOut     int                   `json:"not_transported_pallets_la_out"`
	OrderCostsArticle            [ArticleCount]float64 `json:"order_costs_article"`
	OrderFixCostsArticle         [ArticleCount]float64 `json:"order_fix_costs_article"`
	CurrentCustomerJobs          int                   `json:"current_customer_jobs"`
	CrashTimeProcesses           [ProcessCount]int     `json:"crash_time_processes"`

	// Analytics stage
	ServiceLevel               float64               `json:"service_level"`
	WorkloadEmployee           [ProcessCount]float64 `json:"workload_employee"`
	WorkloadConveyor           [ProcessCount]float64 `json:"workload_conveyor"`
	WorkloadEmployeeStorageIn  float64               `json:"workload_employee_storage_in"`
	WorkloadEmployeeStorageOut float64               `json:"workload_employee_storage_out"`
	WorkloadConveyorStorageIn  float64               `json:"workload_conveyor_storage_in"`
	WorkloadConveyorStorageOut float64               `json:"workload_conveyor_storage_out"`
	CompanyValue               float64               `json:"company_value"`
	StockValue                 float64               `json:"stock_value"`
	StockValueProcesses        [ProcessCount]float64 `json:"stock_value_processes"`
	CurrentOrderedPallets      int                   `json:"current_ordered_pallets"`
	CurrentOrderCosts          float64               `json:"current_order_costs"`
	ComplaintPercentage        float64               `json:"overall_complaint_percentage"`
	ComplaintDamaged           float64               `json:"overall_complaint_damaged"`
	ComplaintWrongDelivered    float64               `json:"overall_complaint_w_delivered"`
	ComplaintWrongRetrieval    float64               `json:"overall_complaint_w_retrieval"`
	ComplaintWrongPallets      float64               `json:"overall_complaint_w_pallets"`
	ComplaintErrorUnloading    float64               `json:"overall_complaint_e_en"`
	ComplaintErrorStorage      float64               `json:"overall_complaint_e_la"`
	ComplaintErrorLoading      float64               `json:"overall_complaint_e_ve"`
	ComplaintErrorTransport    float64               `json:"overall_complaint_e_transport"`
}

// NewRoundValues returns the scoreboard of a freshly created company
func NewRoundValues() *RoundValues {
	rv := &RoundValues{
		AccountBalance:       363708.0,
		CustomerSatisfaction: 99.0,
		PMax:                 255,
		GameState:            GameStateOK,
		StatusChangeRound:    1000,

		UnitSecurityDevices: true,
		StrategyOutgoing:    3,
		PalletInFactor:      1.0,
		PalletOutFactor:     1.0,
		StorageFactor:       0.5,

		FreeStorage: 2736,
		OccStorage:  380,

		SalesIncome:          45683.0,
		StorageCost:          10218.0,
		WorkTimeCost:         1370.0,
		CostsRound:           12614.0,
		IncomeRound:          7378.86,
		CreditInterestIncome: 7131.0,

		ConvCountProcesses: [ProcessCount]int{1, 0, 3, 0, 1},
		MaintenanceCost:    180.0,

		EmpCountProcesses: [ProcessCount]int{2, 4, 3, 2, 1},
		AvgMotivation:     1.0,

		PalletsTransportedProcess:    [ProcessCount]int{140, 140, 395, 255, 255},
		PalletsTransportedStorageIn:  140,
		PalletsTransportedStorageOut: 255,

		ServiceLevel:     0.99,
		WorkloadEmployee: [ProcessCount]float64{9.0, 47.0, 32.0, 58.0, 21.0},
		WorkloadConveyor: [ProcessCount]float64{9.0, 0.0, 22.0, 0.0, 21.0},

		WorkloadEmployeeStorageIn:  22.0,
		WorkloadEmployeeStorageOut: 42.0,
		WorkloadConveyorStorageIn:  17.0,
		WorkloadConveyorStorageOut: 28.0,
		CompanyValue:               260279.5,
		StockValue:                 68120.0,
		StockValueProcesses:        [ProcessCount]float64{0.0, 0.0, 68120.0, 0.0, 0.0},
		CurrentOrderedPallets:      1490,
	}
	return rv
}

// Clone returns an independent copy of the scoreboard
func (rv *RoundValues) Clone() *RoundValues {
	clone := *rv
	return &clone
}
