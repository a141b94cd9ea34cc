package composition

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kantine-klima/http-server/response"
	"kantine-klima/internal/estimator"
)

func TestClamp(t *testing.T) {
	handler := Clamp(slog.New(slog.NewTextHandler(io.Discard, nil)))

	tests := []struct {
		name       string
		body       string
		wantStatus int
		want       estimator.MeatDistribution
	}{
		{
			name:       "red over budget",
			body:       `{"redMeat": 60, "brightMeat": 60, "fish": 0, "changed": "redMeat"}`,
			wantStatus: http.StatusOK,
			want:       estimator.MeatDistribution{RedMeat: 40, BrightMeat: 60},
		},
		{
			name:       "initial load",
			body:       `{"redMeat": 20, "brightMeat": 30, "fish": 10}`,
			wantStatus: http.StatusOK,
			want:       estimator.MeatDistribution{RedMeat: 20, BrightMeat: 30, Fish: 10, Vegetarian: 40},
		},
		{
			name:       "unknown slider",
			body:       `{"redMeat": 20, "changed": "tofu"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "broken body",
			body:       `{`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/composition/clamp", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)

			if tt.wantStatus != http.StatusOK {
				var resp response.Response
				require.NoError(t, render.DecodeJSON(rr.Body, &resp))
				assert.NotEmpty(t, resp.Error)
				return
			}

			var got estimator.MeatDistribution
			require.NoError(t, render.DecodeJSON(rr.Body, &got))
			assert.Equal(t, tt.want, got)
		})
	}
}
