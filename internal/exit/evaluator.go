// Package exit decides whether a position's current price triggers an exit.
package exit

import "equity-desk/internal/types"

// Evaluate checks the position's current price against its target and stop-loss.
//
// Target is checked first, so a price that satisfies both conditions
// (possible only when a position's levels are mis-ordered) exits at target.
func Evaluate(p types.Position) types.ExitSignal {
	if hitTarget(p) {
		return types.HitTarget
	}
	if hitStopLoss(p) {
		return types.HitStopLoss
	}
	return types.NoExit
}

func hitTarget(p types.Position) bool {
	return p.CurrentPrice.GreaterThanOrEqual(p.Target)
}

func hitStopLoss(p types.Position) bool {
	return p.CurrentPrice.LessThanOrEqual(p.StopLoss)
}
