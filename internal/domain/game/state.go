package game

import (
	"time"

	"github.com/google/uuid"
)

// InitialRound is the round number of a freshly created game. The company
// carries ten rounds of pre-played history, so play starts at eleven.
const InitialRound = 11

// EmployeeStoreSize is the number of applicants held available for hire
const EmployeeStoreSize = 10

// GameState is the full company snapshot of one round: every entity list
// plus the scoreboard. Advancing a round never mutates the previous
// snapshot; the pipeline works on a deep copy.
type GameState struct {
	ID        string    `json:"id"`
	GameID    string    `json:"game_id"`
	Round     int       `json:"round"`
	UpdatedAt time.Time `json:"updated_at"`

	EmployeeDynamics []*EmployeeDynamic `json:"employee_dynamics"`
	ConveyorDynamics []*ConveyorDynamic `json:"conveyor_dynamics"`
	ArticleDynamics  []*ArticleDynamic  `json:"article_dynamics"`
	Messages         []*Message         `json:"messages"`
	Orders           []*Order           `json:"orders"`
	CustomerJobs     []*CustomerJob     `json:"customer_jobs"`
	ConveyorStore    []*ConveyorDynamic `json:"conveyor_store"`
	EmployeeStore    []*EmployeeDynamic `json:"employee_store"`
	Storage          *Storage           `json:"storage"`
	RoundValues      *RoundValues       `json:"round_values"`
}

// Clone returns a deep copy of the snapshot with a fresh identity. Entity
// identities are preserved so player actions keep referring to the same
// employees and conveyors across rounds.
func (s *GameState) Clone(now time.Time) *GameState {
	clone := &GameState{
		ID:        uuid.NewString(),
		GameID:    s.GameID,
		Round:     s.Round,
		UpdatedAt: now,

		EmployeeDynamics: make([]*EmployeeDynamic, len(s.EmployeeDynamics)),
		ConveyorDynamics: make([]*ConveyorDynamic, len(s.ConveyorDynamics)),
		ArticleDynamics:  make([]*ArticleDynamic, len(s.ArticleDynamics)),
		Messages:         make([]*Message, len(s.Messages)),
		Orders:           make([]*Order, len(s.Orders)),
		CustomerJobs:     make([]*CustomerJob, len(s.CustomerJobs)),
		ConveyorStore:    make([]*ConveyorDynamic, len(s.ConveyorStore)),
		EmployeeStore:    make([]*EmployeeDynamic, len(s.EmployeeStore)),
		Storage:          s.Storage.Clone(),
		RoundValues:      s.RoundValues.Clone(),
	}
	for i, d := range s.EmployeeDynamics {
		clone.EmployeeDynamics[i] = d.Clone()
	}
	for i, d := range s.ConveyorDynamics {
		clone.ConveyorDynamics[i] = d.Clone()
	}
	for i, d := range s.ArticleDynamics {
		clone.ArticleDynamics[i] = d.Clone()
	}
	for i, m := range s.Messages {
		msg := *m
		clone.Messages[i] = &msg
	}
	for i, o := range s.Orders {
		order := *o
		clone.Orders[i] = &order
	}
	for i, j := range s.CustomerJobs {
		job := *j
		clone.CustomerJobs[i] = &job
	}
	for i, d := range s.ConveyorStore {
		clone.ConveyorStore[i] = d.Clone()
	}
	for i, d := range s.EmployeeStore {
		clone.EmployeeStore[i] = d.Clone()
	}
	return clone
}

// PushMessage prepends a message, keeping the list newest first
func (s *GameState) PushMessage(m *Message) {
	s.Messages = append([]*Message{m}, s.Messages...)
}

// ArticleByNumber returns the article dynamic with the given number
func (s *GameState) ArticleByNumber(articleNumber int) (*ArticleDynamic, error) {
	for _, d := range s.ArticleDynamics {
		if d.Article.ArticleNumber == articleNumber {
			return d, nil
		}
	}
	return nil, &ErrArticleNotFound{ArticleNumber: articleNumber}
}

// ArticleIndex returns the catalog position of the given article number
func (s *GameState) ArticleIndex(articleNumber int) int {
	for i, d := range s.ArticleDynamics {
		if d.Article.ArticleNumber == articleNumber {
			return i
		}
	}
	return -1
}
