package queries

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/lbruckner/palletsim/internal/application/common"
	"github.com/lbruckner/palletsim/internal/domain/game"
)

// ExportGameQuery represents a query for the semicolon-separated history
// export of a game
type ExportGameQuery struct {
	GameID string
}

// ExportGameResponse carries the rendered CSV document
type ExportGameResponse struct {
	Filename string
	Content  []byte
}

// ExportGameHandler handles the ExportGame query. Every stored round
// becomes one row: scoreboard, per-article stock / demand / arriving
// orders, pallet counts per station, staffing split by forklift permit,
// and the workload percentages.
type ExportGameHandler struct {
	games  game.GameRepository
	states game.StateRepository
}

// NewExportGameHandler creates a new ExportGameHandler
func NewExportGameHandler(games game.GameRepository, states game.StateRepository) *ExportGameHandler {
	return &ExportGameHandler{games: games, states: states}
}

// Handle executes the ExportGame query
func (h *ExportGameHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*ExportGameQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *ExportGameQuery")
	}

	g, err := h.games.FindByID(ctx, query.GameID)
	if err != nil {
		return nil, fmt.Errorf("failed to load game: %w", err)
	}

	states, err := h.states.FindAllByGame(ctx, g.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	if len(states) == 0 {
		return nil, &game.ErrStateNotFound{GameID: g.ID, Round: game.InitialRound}
	}

	articleCount := len(states[0].ArticleDynamics)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = ';'

	if err := w.Write(exportHeader(articleCount)); err != nil {
		return nil, fmt.Errorf("failed to render export: %w", err)
	}
	for _, state := range states {
		if err := w.Write(exportRow(state, articleCount)); err != nil {
			return nil, fmt.Errorf("failed to render export: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to render export: %w", err)
	}

	return &ExportGameResponse{
		Filename: fmt.Sprintf("%s.csv", g.Name),
		Content:  buf.Bytes(),
	}, nil
}

func exportHeader(articleCount int) []string {
	header := []string{"round", "balance", "satisfaction"}
	perArticle := func(prefix string) {
		for i := 0; i < articleCount; i++ {
			header = append(header, fmt.Sprintf("%s_article_%d", prefix, i+1))
		}
	}
	perArticle("stock")
	perArticle("demand")
	perArticle("delayed")
	perArticle("arriving")

	for _, p := range game.StationProcesses() {
		header = append(header,
			fmt.Sprintf("pallets_%s", p.ShortCode()),
			fmt.Sprintf("pallets_missed_%s", p.ShortCode()),
		)
	}
	header = append(header,
		"pallets_la_in", "pallets_missed_la_in",
		"pallets_la_out", "pallets_missed_la_out",
	)

	for _, p := range game.StationProcesses() {
		header = append(header,
			fmt.Sprintf("staff_permit_%s", p.ShortCode()),
			fmt.Sprintf("staff_%s", p.ShortCode()),
			fmt.Sprintf("conveyors_%s", p.ShortCode()),
		)
	}
	for _, p := range game.StationProcesses() {
		header = append(header, fmt.Sprintf("workload_staff_%s", p.ShortCode()))
	}
	for _, p := range game.StationProcesses() {
		header = append(header, fmt.Sprintf("workload_conveyors_%s", p.ShortCode()))
	}
	header = append(header, "storage_in_share", "storage_out_share", "timestamp")
	return header
}

func exportRow(state *game.GameState, articleCount int) []string {
	rv := state.RoundValues
	row := []string{
		strconv.Itoa(state.Round),
		formatFloat(rv.AccountBalance),
		formatFloat(rv.CustomerSatisfaction),
	}

	for _, d := range state.ArticleDynamics {
		row = append(row, strconv.Itoa(d.CurrentStock))
	}

	demand := make([]int, articleCount)
	delayed := make([]int, articleCount)
	for _, job := range state.CustomerJobs {
		idx := state.ArticleIndex(job.ArticleNumber)
		if idx < 0 {
			continue
		}
		if job.DemandRound == state.Round {
			demand[idx] += job.Quantity
		} else {
			delayed[idx] += job.Quantity
		}
	}
	arriving := make([]int, articleCount)
	for _, order := range state.Orders {
		if order.DeliveryRound != state.Round {
			continue
		}
		if idx := state.ArticleIndex(order.ArticleNumber); idx >= 0 {
			arriving[idx] += order.DeliveredQuantity
		}
	}
	for _, counts := range [][]int{demand, delayed, arriving} {
		for _, q := range counts {
			row = append(row, strconv.Itoa(q))
		}
	}

	for i := 0; i < game.ProcessCount; i++ {
		row = append(row,
			strconv.Itoa(rv.PalletsTransportedProcess[i]),
			strconv.Itoa(rv.PalletsNotTransportedProcess[i]),
		)
	}
	row = append(row,
		strconv.Itoa(rv.PalletsTransportedStorageIn),
		strconv.Itoa(rv.NotTransportedStorageIn),
		strconv.Itoa(rv.PalletsTransportedStorageOut),
		strconv.Itoa(rv.NotTransportedStorageOut),
	)

	var staffPermit, staff, conveyors [game.ProcessCount]int
	for _, d := range state.EmployeeDynamics {
		if !d.Employee.IsReady(state.Round) || !d.Process.IsStation() {
			continue
		}
		staff[d.Process.Index()]++
		if d.HasForkliftPermit() {
			staffPermit[d.Process.Index()]++
		}
	}
	for _, d := range state.ConveyorDynamics {
		if d.IsDelivered(state.Round) && d.Process.IsStation() {
			conveyors[d.Process.Index()]++
		}
	}
	for i := 0; i < game.ProcessCount; i++ {
		row = append(row,
			strconv.Itoa(staffPermit[i]),
			strconv.Itoa(staff[i]),
			strconv.Itoa(conveyors[i]),
		)
	}

	for i := 0; i < game.ProcessCount; i++ {
		row = append(row, formatFloat(rv.WorkloadEmployee[i]))
	}
	for i := 0; i < game.ProcessCount; i++ {
		row = append(row, formatFloat(rv.WorkloadConveyor[i]))
	}

	row = append(row,
		formatFloat(rv.StorageFactor*100),
		formatFloat((1-rv.StorageFactor)*100),
		state.UpdatedAt.Format("2006-01-02 15:04:05"),
	)
	return row
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
