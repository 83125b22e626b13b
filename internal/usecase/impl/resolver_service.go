// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	deliverycontext "locus/internal/delivery/context"
	domainerrors "locus/internal/domain/errors"
	"locus/internal/domain/repository"
	"locus/internal/domain/service"
	"locus/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// scanSessionIdleTTL is how long a scanner may go unused before it is
// forgotten. Clients that never close their scanner are swept on open.
const scanSessionIdleTTL = 30 * time.Minute

// scanSession is one scanner of one account. locked is held from the start of
// a resolution until the client navigates away or the resolution fails.
type scanSession struct {
	owner    string
	locked   atomic.Bool
	lastUsed atomic.Int64 // unix nanoseconds
}

func (sess *scanSession) touch(now time.Time) {
	sess.lastUsed.Store(now.UnixNano())
}

func (sess *scanSession) idleSince(now time.Time) time.Duration {
	return now.Sub(time.Unix(0, sess.lastUsed.Load()))
}

type resolverService struct {
	assetRepo repository.AssetRepository
	metrics   service.InventoryMetrics
	logger    *slog.Logger
	now       func() time.Time
	idleTTL   time.Duration

	mu       sync.Mutex
	sessions map[string]*scanSession
}

// NewResolverService creates a new resolver service instance
func NewResolverService(
	assetRepo repository.AssetRepository,
	metrics service.InventoryMetrics,
	logger *slog.Logger,
) usecase.ResolverUsecase {
	return &resolverService{
		assetRepo: assetRepo,
		metrics:   metrics,
		logger:    logger,
		now:       time.Now,
		idleTTL:   scanSessionIdleTTL,
		sessions:  make(map[string]*scanSession),
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *resolverService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Resolve maps a scanned code to edit routing when the asset exists and to
// create routing when it does not. Store failures are never read as absence.
func (srv *resolverService) Resolve(ctx context.Context, code string) (*usecase.Resolution, error) {
	code, err := normalizeCode(code)
	if err != nil {
		return nil, err
	}

	asset, err := srv.assetRepo.FindAsset(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrAssetNotFound) {
			srv.metrics.ScanResolved(string(usecase.ResolutionCreate))
			srv.log(ctx).Debug("Scanned code routes to create", slog.String("code", code))

			return &usecase.Resolution{Mode: usecase.ResolutionCreate, Code: code}, nil
		}

		srv.log(ctx).Warn("Failed to resolve scanned code", slog.String("code", code), slog.Any("error", err))

		return nil, domainerrors.NewStoreUnavailableError(err, "resolve "+code)
	}

	asset.Code = code
	srv.metrics.ScanResolved(string(usecase.ResolutionEdit))
	srv.log(ctx).Debug("Scanned code routes to edit", slog.String("code", code))

	return &usecase.Resolution{Mode: usecase.ResolutionEdit, Code: code, Asset: asset}, nil
}

// OpenScanSession registers an unlocked scanner owned by owner and forgets
// scanners that have been idle for longer than the idle TTL.
func (srv *resolverService) OpenScanSession(ctx context.Context, owner string) string {
	id := uuid.NewString()
	now := srv.now()

	sess := &scanSession{owner: owner}
	sess.touch(now)

	srv.mu.Lock()
	evicted := srv.evictIdleLocked(now)
	srv.sessions[id] = sess
	srv.mu.Unlock()

	srv.log(ctx).Debug("Scan session opened",
		slog.String("scan_session_id", id),
		slog.Int("evicted_idle", evicted),
	)

	return id
}

// Scan resolves payload unless the scanner is already locked. A successful
// resolution keeps the lock so repeated frames of the same code are ignored
// until ReleaseScanSession; a failed one re-arms the scanner.
func (srv *resolverService) Scan(ctx context.Context, owner, sessionID, payload string) (*usecase.Resolution, error) {
	sess, err := srv.session(owner, sessionID)
	if err != nil {
		return nil, err
	}

	if !sess.locked.CompareAndSwap(false, true) {
		srv.log(ctx).Debug("Ignoring scan while a resolution is in flight", slog.String("scan_session_id", sessionID))

		return nil, errors.WithStack(domainerrors.ErrScanInProgress)
	}

	resolution, err := srv.Resolve(ctx, payload)
	if err != nil {
		sess.locked.Store(false)

		return nil, err
	}

	return resolution, nil
}

// ReleaseScanSession unlocks the scanner after the client navigated.
func (srv *resolverService) ReleaseScanSession(ctx context.Context, owner, sessionID string) error {
	sess, err := srv.session(owner, sessionID)
	if err != nil {
		return err
	}
	sess.locked.Store(false)

	srv.log(ctx).Debug("Scan session released", slog.String("scan_session_id", sessionID))

	return nil
}

// CloseScanSession forgets the scanner.
func (srv *resolverService) CloseScanSession(ctx context.Context, owner, sessionID string) error {
	srv.mu.Lock()
	sess, ok := srv.sessions[sessionID]
	if ok && sess.owner == owner {
		delete(srv.sessions, sessionID)
	}
	srv.mu.Unlock()

	if !ok || sess.owner != owner {
		return errors.WithStack(domainerrors.ErrScanSessionNotFound)
	}

	srv.log(ctx).Debug("Scan session closed", slog.String("scan_session_id", sessionID))

	return nil
}

// session returns the scanner if owner opened it and it has not expired.
// Another account's scanner is reported as not found.
func (srv *resolverService) session(owner, id string) (*scanSession, error) {
	now := srv.now()

	srv.mu.Lock()
	defer srv.mu.Unlock()

	sess, ok := srv.sessions[id]
	if !ok || sess.owner != owner {
		return nil, errors.WithStack(domainerrors.ErrScanSessionNotFound)
	}
	if sess.idleSince(now) > srv.idleTTL {
		delete(srv.sessions, id)

		return nil, errors.WithStack(domainerrors.ErrScanSessionNotFound)
	}
	sess.touch(now)

	return sess, nil
}

func (srv *resolverService) evictIdleLocked(now time.Time) int {
	evicted := 0
	for id, sess := range srv.sessions {
		if sess.idleSince(now) > srv.idleTTL {
			delete(srv.sessions, id)
			evicted++
		}
	}

	return evicted
}
