package game

import "time"

// applyGravity drops the active piece one row once GravityInterval has passed
// since the last drop. The timer restarts whether or not the piece moved.
func (e *Engine) applyGravity(now time.Time) {
	if e.lastFall.IsZero() {
		e.lastFall = now
		return
	}
	if now.Sub(e.lastFall) < e.Config.GravityInterval {
		return
	}
	e.State.Move(DirDown)
	e.lastFall = now
}
