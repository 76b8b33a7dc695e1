package game

// Player actions. All mutators run between rounds on the current snapshot;
// the pipeline picks the values up on the next advance. Lookup misses
// return typed errors and leave the state untouched.

func (s *GameState) employeeDynamic(employeeID string) (*EmployeeDynamic, error) {
	for _, d := range s.EmployeeDynamics {
		if d.Employee.ID == employeeID {
			return d, nil
		}
	}
	return nil, &ErrEmployeeNotFound{EmployeeID: employeeID}
}

func (s *GameState) conveyorDynamic(conveyorID string) (*ConveyorDynamic, error) {
	for _, d := range s.ConveyorDynamics {
		if d.Conveyor.ID == conveyorID {
			return d, nil
		}
	}
	return nil, &ErrConveyorNotFound{ConveyorID: conveyorID}
}

// SetOvertime sets the overtime hours of one station
func (s *GameState) SetOvertime(process Process, hours int) error {
	if !process.IsStation() {
		return &ErrInvalidProcess{Value: int(process)}
	}
	s.RoundValues.OvertimeProcess[process.Index()] = hours
	return nil
}

// SetClimateInvestment sets the per-round work climate budget
func (s *GameState) SetClimateInvestment(amount int) {
	s.RoundValues.WorkClimateInvest = amount
}

// UpdateServices replaces the set of booked information modules. The codes
// are 0 order quantity, 1 reorder level, 2 safety stock, 3 status report,
// 4 look into storage.
func (s *GameState) UpdateServices(services []int) {
	has := func(code int) bool {
		for _, c := range services {
			if c == code {
				return true
			}
		}
		return false
	}
	s.RoundValues.ModuleOrderQuantity = has(0)
	s.RoundValues.ModuleReorderLevel = has(1)
	s.RoundValues.ModuleSafetyStock = has(2)
	s.RoundValues.ModuleStatusReport = has(3)
	s.RoundValues.ModuleLookInStorage = has(4)
}

// UpdateTechnology books the given IT level and arms the fallback counters
// that model the notice periods of the dropped levels
func (s *GameState) UpdateTechnology(level int) error {
	if level < 0 || level >= len(TechnologyCost) {
		return &ErrInvalidProcess{Value: level}
	}
	rv := s.RoundValues
	rv.ITCosts = TechnologyCost[level]
	switch level {
	case 0:
		rv.BackToBasicStorage = 0
		rv.BackToITLevel1 = 0
		rv.BackToITLevel2 = 0
	case 1:
		rv.BackToBasicStorage = 7
		rv.BackToITLevel1 = 0
		rv.BackToITLevel2 = 0
	case 2:
		rv.BackToBasicStorage = 7
		rv.BackToITLevel1 = 5
		rv.BackToITLevel2 = 0
	default:
		rv.BackToBasicStorage = 7
		rv.BackToITLevel1 = 5
		rv.BackToITLevel2 = 3
	}
	return nil
}

// UpdateLoadingEquipmentLevel books the given loading equipment cost level
func (s *GameState) UpdateLoadingEquipmentLevel(costLevel int) {
	s.RoundValues.LoadingEquipmentLevel = costLevel
}

// UpdateStorageDistribution sets the inbound share of the storage capacity
func (s *GameState) UpdateStorageDistribution(factor float64) {
	s.RoundValues.StorageFactor = factor
}

// UpdateInboundControl sets the goods-in inspection rate
func (s *GameState) UpdateInboundControl(factor float64) {
	s.RoundValues.PalletInFactor = factor
}

// UpdateOutboundControl sets the goods-out inspection rate
func (s *GameState) UpdateOutboundControl(factor float64) {
	s.RoundValues.PalletOutFactor = factor
}

// UpdateUnitSecurityDevices toggles the use of unit security devices
func (s *GameState) UpdateUnitSecurityDevices(enabled bool) {
	s.RoundValues.UnitSecurityDevices = enabled
}

// UpdateIncomingStrategy sets the slot selection strategy at storage-in
func (s *GameState) UpdateIncomingStrategy(strategy int) {
	s.RoundValues.StrategyIncoming = strategy
}

// UpdateStorageStrategy sets the slot assignment strategy of the storage
func (s *GameState) UpdateStorageStrategy(strategy int) {
	s.RoundValues.StrategyStorage = strategy
}

// UpdateOutgoingStrategy sets the slot selection strategy at storage-out
func (s *GameState) UpdateOutgoingStrategy(strategy int) {
	s.RoundValues.StrategyOutgoing = strategy
}

// InitiateABCAnalysis books a one-shot ABC analysis for this round
func (s *GameState) InitiateABCAnalysis() {
	s.RoundValues.ABCAnalysisRound = s.Round
}

// InitiateABCZoning books a one-shot ABC zoning for this round
func (s *GameState) InitiateABCZoning() {
	s.RoundValues.ABCZoningRound = s.Round
}

// TerminateEmployee gives notice to an employee. Temporary workers leave
// after one round, everyone else after the notice period of three rounds.
func (s *GameState) TerminateEmployee(employeeID string) error {
	d, err := s.employeeDynamic(employeeID)
	if err != nil {
		return err
	}
	if d.Employee.ContractType == ContractTemporary {
		d.Employee.EndRound = s.Round + 1
	} else {
		d.Employee.EndRound = s.Round + 3
	}
	return nil
}

// HireEmployee moves an applicant from the store into the workforce. Normal
// hires start after three rounds; temporary workers start next round and
// leave after four.
func (s *GameState) HireEmployee(employeeID string, process Process, contractType int) error {
	if !process.IsStation() {
		return &ErrInvalidProcess{Value: int(process)}
	}
	valid := false
	for _, t := range ValidContractTypes {
		if contractType == t {
			valid = true
		}
	}
	if !valid {
		return &ErrInvalidContractType{ContractType: contractType}
	}

	for i, d := range s.EmployeeStore {
		if d.Employee.ID != employeeID {
			continue
		}
		s.EmployeeStore = append(s.EmployeeStore[:i], s.EmployeeStore[i+1:]...)
		d.Process = process
		d.Employee.EmploymentRound = s.Round + 3
		d.Employee.ContractType = contractType
		switch contractType {
		case ContractHalfTime:
			d.Salary *= HalfTimeSalaryFactor
		case ContractTemporary:
			d.Employee.EndRound = s.Round + 4
			d.Employee.EmploymentRound = s.Round + 1
		}
		s.EmployeeDynamics = append(s.EmployeeDynamics, d)
		return nil
	}
	return &ErrEmployeeNotFound{EmployeeID: employeeID}
}

// TrainEmployee books a training for an employee: 1 forklift permit,
// 2 safety training, anything else the QM seminar. The training resolves
// when its round is reached.
func (s *GameState) TrainEmployee(employeeID string, qualification int) error {
	d, err := s.employeeDynamic(employeeID)
	if err != nil {
		return err
	}
	switch qualification {
	case 1:
		d.FPRound = s.Round + 2
	case 2:
		d.SecRound = s.Round + 1
	default:
		d.QMRound = s.Round + 2
	}
	return nil
}

// UpdateEmployeeProcess reassigns an employee to another station
func (s *GameState) UpdateEmployeeProcess(employeeID string, process Process) error {
	if !process.IsStation() {
		return &ErrInvalidProcess{Value: int(process)}
	}
	d, err := s.employeeDynamic(employeeID)
	if err != nil {
		return err
	}
	d.Process = process
	return nil
}

// UpdateConveyorProcess reassigns a conveyor to another station
func (s *GameState) UpdateConveyorProcess(conveyorID string, process Process) error {
	if !process.IsStation() {
		return &ErrInvalidProcess{Value: int(process)}
	}
	d, err := s.conveyorDynamic(conveyorID)
	if err != nil {
		return err
	}
	d.Process = process
	return nil
}

// ToggleConveyorMaintenance flips the maintenance contract of a conveyor
func (s *GameState) ToggleConveyorMaintenance(conveyorID string) error {
	d, err := s.conveyorDynamic(conveyorID)
	if err != nil {
		return err
	}
	d.MaintenanceEnabled = !d.MaintenanceEnabled
	return nil
}

// OverhaulConveyor books an overhaul for the next round
func (s *GameState) OverhaulConveyor(conveyorID string) error {
	d, err := s.conveyorDynamic(conveyorID)
	if err != nil {
		return err
	}
	d.Overhaul = true
	return nil
}

// SellConveyor marks a conveyor for sale at the next round's processing
func (s *GameState) SellConveyor(conveyorID string) error {
	d, err := s.conveyorDynamic(conveyorID)
	if err != nil {
		return err
	}
	d.Sold = true
	return nil
}

// BuyConveyor orders a unit of a store model. The unit joins the fleet
// immediately but only works once delivered.
func (s *GameState) BuyConveyor(conveyorID string) error {
	for _, d := range s.ConveyorStore {
		if d.Conveyor.ID == conveyorID {
			s.ConveyorDynamics = append(s.ConveyorDynamics, d.CloneForPurchase(s.Round))
			return nil
		}
	}
	return &ErrConveyorNotFound{ConveyorID: conveyorID}
}

// PlaceOrder registers a supply order. The shortfall draw models the
// wholesaler's short-shipping.
func (s *GameState) PlaceOrder(draft OrderDraft, shortfall int) (*Order, error) {
	if _, err := s.ArticleByNumber(draft.ArticleNumber); err != nil {
		return nil, err
	}
	order := NewOrder(draft, shortfall)
	s.Orders = append(s.Orders, order)
	return order, nil
}

// CancelOrder withdraws a pending supply order against a cancellation fee
// that grows the closer the delivery is
func (s *GameState) CancelOrder(orderID string) error {
	for i, o := range s.Orders {
		if o.ID != orderID {
			continue
		}
		leadTime := o.DeliveryRound - s.Round
		if leadTime < 0 || leadTime >= len(OrderCancelCost) {
			return &ErrOrderNotFound{OrderID: orderID}
		}
		fee := OrderCancelCost[leadTime]*float64(o.Quantity)*o.RealPurchasePrice + o.FixCosts
		s.RoundValues.AccountBalance -= fee
		s.Orders = append(s.Orders[:i], s.Orders[i+1:]...)
		return nil
	}
	return &ErrOrderNotFound{OrderID: orderID}
}
