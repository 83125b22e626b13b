package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "locus/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	deliverycontext.SetRequestID(c, "req-1")

	return c, rec
}

func TestList(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, List(c, []string{"PAT-001", "PAT-002"}, 2))

	var body struct {
		Data []string `json:"data"`
		Meta MetaInfo `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, body.Data, 2)
	assert.Equal(t, "req-1", body.Meta.RequestID)
	require.NotNil(t, body.Meta.Count)
	assert.Equal(t, 2, *body.Meta.Count)
}

func TestError_Details(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		wantDetails bool
	}{
		{name: "bad request keeps details", status: http.StatusBadRequest, wantDetails: true},
		{name: "conflict keeps details", status: http.StatusConflict, wantDetails: true},
		{name: "unauthorized hides details", status: http.StatusUnauthorized},
		{name: "forbidden hides details", status: http.StatusForbidden},
		{name: "server error hides details", status: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext()

			require.NoError(t, Error(c, tt.status, "SOME_CODE", "message", map[string]string{"field": "code"}))

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "SOME_CODE", body.Error.Code)
			assert.Equal(t, "req-1", body.Meta.RequestID)
			assert.Equal(t, tt.wantDetails, body.Error.Details != nil)
		})
	}
}
