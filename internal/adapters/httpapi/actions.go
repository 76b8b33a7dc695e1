package httpapi

import (
	"encoding/json"
	"reflect"

	"github.com/lbruckner/palletsim/internal/application/common"
	"github.com/lbruckner/palletsim/internal/application/gameops/commands"
)

// actionCommands maps URL action names to their command types. The request
// body is decoded into the command; the game ID always comes from the URL
// path so the body cannot redirect the action to another game.
var actionCommands = map[string]func() common.Request{
	"hire-employee":               func() common.Request { return &commands.HireEmployeeCommand{} },
	"terminate-employee":          func() common.Request { return &commands.TerminateEmployeeCommand{} },
	"train-employee":              func() common.Request { return &commands.TrainEmployeeCommand{} },
	"assign-employee":             func() common.Request { return &commands.AssignEmployeeCommand{} },
	"buy-conveyor":                func() common.Request { return &commands.BuyConveyorCommand{} },
	"sell-conveyor":               func() common.Request { return &commands.SellConveyorCommand{} },
	"overhaul-conveyor":           func() common.Request { return &commands.OverhaulConveyorCommand{} },
	"toggle-maintenance":          func() common.Request { return &commands.ToggleMaintenanceCommand{} },
	"assign-conveyor":             func() common.Request { return &commands.AssignConveyorCommand{} },
	"place-order":                 func() common.Request { return &commands.PlaceOrderCommand{} },
	"cancel-order":                func() common.Request { return &commands.CancelOrderCommand{} },
	"set-overtime":                func() common.Request { return &commands.SetOvertimeCommand{} },
	"set-climate-investment":      func() common.Request { return &commands.SetClimateInvestmentCommand{} },
	"update-services":             func() common.Request { return &commands.UpdateServicesCommand{} },
	"update-technology":           func() common.Request { return &commands.UpdateTechnologyCommand{} },
	"update-loading-equipment":    func() common.Request { return &commands.UpdateLoadingEquipmentCommand{} },
	"update-storage-distribution": func() common.Request { return &commands.UpdateStorageDistributionCommand{} },
	"update-inbound-control":      func() common.Request { return &commands.UpdateInboundControlCommand{} },
	"update-outbound-control":     func() common.Request { return &commands.UpdateOutboundControlCommand{} },
	"update-security-devices":     func() common.Request { return &commands.UpdateSecurityDevicesCommand{} },
	"update-incoming-strategy":    func() common.Request { return &commands.UpdateIncomingStrategyCommand{} },
	"update-storage-strategy":     func() common.Request { return &commands.UpdateStorageStrategyCommand{} },
	"update-outgoing-strategy":    func() common.Request { return &commands.UpdateOutgoingStrategyCommand{} },
	"abc-analysis":                func() common.Request { return &commands.InitiateABCAnalysisCommand{} },
	"abc-zoning":                  func() common.Request { return &commands.InitiateABCZoningCommand{} },
}

func buildAction(action, gameID string, body []byte) (common.Request, bool, error) {
	newCmd, ok := actionCommands[action]
	if !ok {
		return nil, false, nil
	}

	cmd := newCmd()
	if len(body) > 0 {
		if err := json.Unmarshal(body, cmd); err != nil {
			return nil, true, err
		}
	}

	// Every action command carries an exported GameID field.
	reflect.ValueOf(cmd).Elem().FieldByName("GameID").SetString(gameID)
	return cmd, true, nil
}
