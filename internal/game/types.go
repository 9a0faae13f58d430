package game

import (
	"fmt"
	"time"
)

// Occupancy represents the paint state of a cell on the game board.
type Occupancy int

const (
	Empty     Occupancy = iota
	Transient           // Footprint of the falling piece, redrawn every frame
	Persisted           // Part of a locked piece
)

// Color is the display identity of a piece. Background is what empty cells carry.
type Color int

const (
	Background Color = iota
	SkyBlue
	Purple
	Yellow
	Blue
	Orange
	Green
	Red
)

// Cell is a single square of the board.
type Cell struct {
	Occupancy Occupancy `json:"occupancy"`
	Color     Color     `json:"color"`
}

// Direction represents a movement direction of the active piece.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirDown
)

// ActionType represents the type of player action.
type ActionType int

const (
	ActionMove ActionType = iota
	ActionRotate
	ActionHardDrop
)

// Action represents a player's input action.
type Action struct {
	Type ActionType
	Dir  Direction // Only relevant for ActionMove
}

// Position is the anchor of the active piece's pivot. X is the column, Y the row.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// GameStatus represents the current game phase.
type GameStatus int

const (
	StatusRunning GameStatus = iota // Pieces are falling
	StatusOver                      // A new piece could not be spawned
)

// Config holds the parameters of a game session.
type Config struct {
	Rows            int           `json:"rows"`
	Cols            int           `json:"cols"`
	Spawn           Position      `json:"spawn"`
	TickRate        int           `json:"tick_rate"`        // Frames per second
	GravityInterval time.Duration `json:"gravity_interval"` // Time between automatic one-row drops
	QueueSize       int           `json:"queue_size"`       // Buffered input actions
}

// DefaultConfig returns the canonical 20x10 game configuration.
func DefaultConfig() Config {
	return Config{
		Rows:            20,
		Cols:            10,
		Spawn:           Position{X: 5, Y: 1},
		TickRate:        160,
		GravityInterval: 1200 * time.Millisecond,
		QueueSize:       256,
	}
}

// Validate reports configurations the engine cannot run with.
func (c Config) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return fmt.Errorf("board must have positive dimensions, got %dx%d", c.Rows, c.Cols)
	}
	if c.Spawn.X < 0 || c.Spawn.X >= c.Cols || c.Spawn.Y < 0 || c.Spawn.Y >= c.Rows {
		return fmt.Errorf("spawn (%d,%d) is outside the %dx%d board", c.Spawn.X, c.Spawn.Y, c.Rows, c.Cols)
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("tick rate must be positive, got %d", c.TickRate)
	}
	if c.GravityInterval <= 0 {
		return fmt.Errorf("gravity interval must be positive, got %s", c.GravityInterval)
	}
	if c.QueueSize < 0 {
		return fmt.Errorf("queue size must not be negative, got %d", c.QueueSize)
	}
	return nil
}
