// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"locus/internal/domain/entity"
)

// ResolutionMode is where a scanned code routes the client.
type ResolutionMode string

const (
	// ResolutionEdit routes to the edit form of an existing asset.
	ResolutionEdit ResolutionMode = "edit"
	// ResolutionCreate routes to the create form pre-filled with the code.
	ResolutionCreate ResolutionMode = "create"
)

// Resolution is the routing decision for one scanned code.
type Resolution struct {
	Mode  ResolutionMode `json:"mode"`
	Code  string         `json:"code"`
	Asset *entity.Asset  `json:"asset,omitempty"`
}

// ResolverUsecase maps scanned codes to create or edit routing.
type ResolverUsecase interface {
	// Resolve performs one point lookup of the trimmed code.
	Resolve(ctx context.Context, code string) (*Resolution, error)
	// OpenScanSession starts a scanner owned by the account owner and returns
	// its id. Scanners idle for longer than a fixed TTL are forgotten.
	OpenScanSession(ctx context.Context, owner string) string
	// Scan resolves payload while holding the session's lock. The lock stays
	// held after a successful resolution until ReleaseScanSession.
	Scan(ctx context.Context, owner, sessionID, payload string) (*Resolution, error)
	// ReleaseScanSession re-arms the scanner after the client navigated.
	ReleaseScanSession(ctx context.Context, owner, sessionID string) error
	// CloseScanSession discards the scanner.
	CloseScanSession(ctx context.Context, owner, sessionID string) error
}
