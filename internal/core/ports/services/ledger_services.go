package services

import (
	"context"

	"github.com/impresthq/imprest_backend/internal/core/domain"
)

// LedgerSvcFacade produces the derived per-user financial view.
type LedgerSvcFacade interface {
	// GetUserLedger loads the full transaction set and user directory and
	// folds them into the user's ledger. Unavailable inputs degrade to an
	// empty ledger rather than an error.
	GetUserLedger(ctx context.Context, userID string) (*domain.UserLedger, error)
}
