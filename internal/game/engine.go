package game

import (
	"log"
	"sync"
	"time"
)

// Snapshot is a copy of what the renderer needs after a frame.
// It shares no memory with the engine.
type Snapshot struct {
	Cells  [][]Cell   `json:"cells"`
	Rows   int        `json:"rows"`
	Cols   int        `json:"cols"`
	Status GameStatus `json:"status"`
	Lines  int        `json:"lines"` // Rows removed since the game started
	Active Kind       `json:"active"`
}

// Engine drives a GameState one frame at a time and feeds it queued input.
type Engine struct {
	State  *GameState
	Config Config

	status   GameStatus
	lines    int
	lastFall time.Time

	actions chan Action
	done    chan struct{}
	stopped sync.Once
	mu      sync.Mutex
	onTick  func(Snapshot) // Callback after each frame with a COPY of the board
}

// NewEngine creates a new engine with the given config and piece source.
func NewEngine(config Config, rng RandomSource) *Engine {
	return &Engine{
		State:   NewGameState(config, rng),
		Config:  config,
		status:  StatusRunning,
		actions: make(chan Action, config.QueueSize),
		done:    make(chan struct{}),
	}
}

// OnTick sets a callback that is invoked after every frame with a snapshot.
// Used by the UI to redraw.
func (e *Engine) OnTick(fn func(Snapshot)) {
	e.onTick = fn
}

// Run starts the frame loop at the configured tick rate.
// This blocks until Stop() is called.
func (e *Engine) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(e.Config.TickRate))
	defer ticker.Stop()

	e.mu.Lock()
	e.lastFall = time.Now()
	e.mu.Unlock()

	log.Printf("[ENGINE] Running %dx%d board at %d fps", e.Config.Rows, e.Config.Cols, e.Config.TickRate)

	for {
		select {
		case <-e.done:
			log.Printf("[ENGINE] Stopped after %d lines", e.Lines())
			return
		case now := <-ticker.C:
			e.tick(now)
		}
	}
}

// Stop halts the frame loop. It is safe to call more than once.
func (e *Engine) Stop() {
	e.stopped.Do(func() { close(e.done) })
}

// EnqueueAction queues a player action for the next frame.
func (e *Engine) EnqueueAction(a Action) {
	select {
	case e.actions <- a:
	default:
		// Drop action if buffer is full (prevents blocking)
	}
}

// Status returns the current game phase.
func (e *Engine) Status() GameStatus {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status
}

// Lines returns the number of rows removed so far.
func (e *Engine) Lines() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lines
}

// tick runs one frame and publishes the result.
// The snapshot is taken under the lock; onTick runs after it is released.
func (e *Engine) tick(now time.Time) {
	e.mu.Lock()

	if e.status == StatusRunning {
		e.frame(now)
	}

	snap := e.snapshotLocked()

	e.mu.Unlock()

	if e.onTick != nil {
		e.onTick(snap)
	}
}

// frame applies one frame of rules in the required order:
// housekeeping, input, gravity, lock, paint. MUST be called while e.mu is held.
func (e *Engine) frame(now time.Time) {
	if n := e.State.TickHousekeeping(); n > 0 {
		e.lines += n
		log.Printf("[ENGINE] Cleared %d row(s), %d total", n, e.lines)
	}

	e.drainActions()
	e.applyGravity(now)

	if !e.State.CanDescend() {
		kind := e.State.Active().Kind
		if e.State.Lock() {
			log.Printf("[ENGINE] Locked %s piece", kind)
		}
		if e.State.SpawnBlocked() {
			e.status = StatusOver
			log.Printf("[ENGINE] Game over: %s piece cannot spawn", e.State.Active().Kind)
			return
		}
	}

	e.State.PaintActive()
}

// drainActions applies all queued player actions.
func (e *Engine) drainActions() {
	for {
		select {
		case a := <-e.actions:
			switch a.Type {
			case ActionMove:
				e.State.Move(a.Dir)
			case ActionRotate:
				e.State.Rotate()
			case ActionHardDrop:
				e.State.HardDrop()
			}
		default:
			return
		}
	}
}

// Snapshot returns a copy of the current board safe to use from any goroutine.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

// snapshotLocked copies the board.
// MUST be called while e.mu is held.
func (e *Engine) snapshotLocked() Snapshot {
	board := e.State.Board()
	return Snapshot{
		Cells:  board.Grid(),
		Rows:   board.Rows(),
		Cols:   board.Cols(),
		Status: e.status,
		Lines:  e.lines,
		Active: e.State.Active().Kind,
	}
}
