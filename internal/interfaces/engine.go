package interfaces

import (
	"context"

	"equity-desk/internal/types"

	"github.com/shopspring/decimal"
)

// AlgoMode names a trading mode that can be started and stopped.
type AlgoMode string

const (
	AlgoEquity    AlgoMode = "equity"
	AlgoOptions   AlgoMode = "options"
	AlgoCommodity AlgoMode = "commodity"
	AlgoSell      AlgoMode = "sell"
)

// AlgoState is the lifecycle state of an algo mode.
type AlgoState string

const (
	AlgoIdle    AlgoState = "Idle"
	AlgoRunning AlgoState = "Running"
	AlgoStopped AlgoState = "Stopped"
)

// Desk is the action surface a session layer drives.
type Desk interface {
	GenerateRecommendations(ctx context.Context, universe []string, count int) ([]types.Recommendation, error)
	Recommendations() []types.Recommendation
	PlaceOrder(ctx context.Context, rec types.Recommendation, qty int) (types.Position, error)
	RunTrackingCycle(ctx context.Context) (types.CycleReport, error)
	TotalPnL() decimal.Decimal
	ActivePositions() []types.IndexedPosition
	Positions() []types.Position
	StartAlgo(ctx context.Context, mode AlgoMode) (started bool, err error)
	StopAlgo(ctx context.Context, mode AlgoMode) error
	AlgoState(mode AlgoMode) (AlgoState, error)
}
