package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"locus/internal/domain/entity"
	"locus/internal/domain/liveview"
	"locus/internal/domain/repository"
	"locus/internal/infra/metrics"
	mockRepo "locus/internal/mocks/repository"
	mockUsecase "locus/internal/mocks/usecase"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var liveAssets = []*entity.Asset{
	{Code: "PAT-001", Description: "Mesa", State: entity.AssetStateNew, Location: "Sala 1", Sector: "ADM"},
	{Code: "PAT-002", Description: "Notebook", State: entity.AssetStateInUse, Location: "Sala 2", Sector: "TI"},
}

// openTestView subscribes a real live view to a repository that delivers
// liveAssets once and then, when failAfter is set, fails.
func openTestView(t *testing.T, ctx context.Context, failAfter bool) *liveview.View {
	t.Helper()

	repo := mockRepo.NewMockAssetRepository(t)
	repo.EXPECT().SubscribeAssets(mock.Anything, entity.FieldDescription, mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, observer repository.AssetObserver) (repository.CancelFunc, error) {
			observer.OnSnapshot(liveAssets)
			if failAfter {
				observer.OnError(errors.New("listener lost"))
			}

			return func() {}, nil
		}).Once()

	engine := liveview.NewEngine(repo, metrics.New(prometheus.NewRegistry(), "test"), newTestLogger())
	view, err := engine.Subscribe(ctx, entity.FieldDescription)
	require.NoError(t, err)

	return view
}

// sseSnapshots decodes the data of every "snapshot" event of an SSE body.
func sseSnapshots(t *testing.T, body string) []liveview.Snapshot {
	t.Helper()

	var snapshots []liveview.Snapshot
	for _, event := range strings.Split(body, "\n\n") {
		lines := strings.SplitN(event, "\n", 2)
		if len(lines) != 2 || lines[0] != "event: snapshot" {
			continue
		}
		var snap liveview.Snapshot
		require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(lines[1], "data: ")), &snap))
		snapshots = append(snapshots, snap)
	}

	return snapshots
}

func TestLiveHandler_Stream(t *testing.T) {
	assetUC := mockUsecase.NewMockAssetUsecase(t)
	h := NewLiveHandler(LiveHandlerParams{AssetUC: assetUC, Logger: newTestLogger()})

	assetUC.EXPECT().WatchAssets(mock.Anything, userSession(), "").
		RunAndReturn(func(ctx context.Context, _ *entity.Session, _ string) (*liveview.View, error) {
			return openTestView(t, ctx, true), nil
		}).Once()

	e := newTestEcho(userSession())
	e.GET("/assets/stream", h.Stream)

	rec := serve(e, http.MethodGet, "/assets/stream?sector=TI", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, "event: snapshot\n"))
	assert.Contains(t, body, "event: error\n")
	assert.Contains(t, body, `"code":"STORE_UNAVAILABLE"`)

	// The snapshot queued before the filter was applied never reaches the client.
	snapshots := sseSnapshots(t, body)
	require.NotEmpty(t, snapshots)
	var last uint64
	for _, snap := range snapshots {
		assert.Greater(t, snap.Version, last)
		last = snap.Version
		assert.Equal(t, "TI", snap.Filter.Sector)
		require.Len(t, snap.Filtered, 1)
		assert.Equal(t, "PAT-002", snap.Filtered[0].Code)
	}
}

func TestLiveHandler_Live(t *testing.T) {
	assetUC := mockUsecase.NewMockAssetUsecase(t)
	h := NewLiveHandler(LiveHandlerParams{AssetUC: assetUC, Logger: newTestLogger()})

	assetUC.EXPECT().WatchAssets(mock.Anything, userSession(), "").
		RunAndReturn(func(ctx context.Context, _ *entity.Session, _ string) (*liveview.View, error) {
			return openTestView(t, ctx, false), nil
		}).Once()

	e := newTestEcho(userSession())
	e.GET("/assets/live", h.Live)
	server := httptest.NewServer(e)
	defer server.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(server.URL, "http")+"/assets/live", nil)
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	var first LiveMessage
	require.NoError(t, conn.ReadJSON(&first))
	assert.Equal(t, "snapshot", first.Type)
	require.NotNil(t, first.Snapshot)
	assert.Len(t, first.Snapshot.Assets, 2)

	require.NoError(t, conn.WriteJSON(FilterMessage{Type: "filter", Filter: liveview.Filter{Text: "mesa"}}))

	// The very next frame is the filtered one; nothing older is replayed.
	var next LiveMessage
	require.NoError(t, conn.ReadJSON(&next))
	require.Equal(t, "snapshot", next.Type)
	assert.Greater(t, next.Snapshot.Version, first.Snapshot.Version)
	assert.Equal(t, "mesa", next.Snapshot.Filter.Text)
	require.Len(t, next.Snapshot.Filtered, 1)
	assert.Equal(t, "PAT-001", next.Snapshot.Filtered[0].Code)
}

func TestOriginChecker(t *testing.T) {
	tests := []struct {
		name    string
		allowed []string
		origin  string
		want    bool
	}{
		{name: "no list allows any origin", origin: "https://evil.example", want: true},
		{name: "listed origin", allowed: []string{"https://locus.example"}, origin: "https://locus.example", want: true},
		{name: "unlisted origin", allowed: []string{"https://locus.example"}, origin: "https://evil.example"},
		{name: "wildcard", allowed: []string{"*"}, origin: "https://evil.example", want: true},
		{name: "non-browser client", allowed: []string{"https://locus.example"}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/assets/live", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			assert.Equal(t, tt.want, originChecker(tt.allowed)(req))
		})
	}
}
