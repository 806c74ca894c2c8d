package interfaces

import (
	"context"

	"equity-desk/internal/tradelog"
)

// TradeJournal records fills for audit. Implementations must be safe to call
// after every order and exit; failures are reported, never retried.
type TradeJournal interface {
	Record(ctx context.Context, e tradelog.Entry) error
}
