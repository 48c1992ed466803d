package ports

import (
	"context"

	"github.com/andrewborzenkov20-ui/Stockify/internal/domain"
)

// UserStore persists per-user wallet and challenge state plus the practice
// trade journal. Load happens once per session start; Save is write-through,
// once after every coin or challenge mutation.
type UserStore interface {
	// Load returns the stored state for the user, or the zero state for a
	// user never seen before.
	Load(ctx context.Context, userID string) (domain.UserState, error)

	// Save upserts the user's wallet and challenge state.
	Save(ctx context.Context, userID string, state domain.UserState) error

	// AppendTrade journals one closed practice trade.
	AppendTrade(ctx context.Context, userID, symbol string, trade domain.ClosedTrade) error

	// Trades returns the user's closed trades, oldest first.
	Trades(ctx context.Context, userID string) ([]domain.ClosedTrade, error)

	// Close releases the underlying database cleanly.
	Close() error
}
