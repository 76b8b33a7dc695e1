package persistence

import (
	"time"
)

// GameModel represents the games table
type GameModel struct {
	ID              string    `gorm:"column:id;primaryKey"`
	Name            string    `gorm:"column:name;not null"`
	PlayerID        string    `gorm:"column:player_id;index;not null"`
	CurrentStateID  string    `gorm:"column:current_state_id"`
	PreviousStateID string    `gorm:"column:previous_state_id"`
	CreatedAt       time.Time `gorm:"column:created_at;not null"`
	UpdatedAt       time.Time `gorm:"column:updated_at;not null"`
}

func (GameModel) TableName() string {
	return "games"
}

// GameStateModel represents the game_states table. The snapshot itself is
// one JSON document; game id and round number are lifted into columns so
// history queries never have to parse documents.
type GameStateModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	GameID    string    `gorm:"column:game_id;index;not null"`
	Round     int       `gorm:"column:round;index;not null"`
	State     string    `gorm:"column:state;type:jsonb;not null"` // JSONB for PostgreSQL, TEXT for SQLite
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

func (GameStateModel) TableName() string {
	return "game_states"
}
