package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBasicAuth(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	tests := []struct {
		name       string
		login      string
		user, pass string
		setAuth    bool
		wantStatus int
	}{
		{"valid", "admin", "admin", "secret", true, http.StatusNoContent},
		{"wrong password", "admin", "admin", "nope", true, http.StatusUnauthorized},
		{"wrong user", "admin", "root", "secret", true, http.StatusUnauthorized},
		{"no header", "admin", "", "", false, http.StatusUnauthorized},
		{"no admin configured", "", "", "", true, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := BasicAuth(tt.login, "secret")(next)

			req := httptest.NewRequest(http.MethodPut, "/api/admin/canteen/215", nil)
			if tt.setAuth {
				req.SetBasicAuth(tt.user, tt.pass)
			}
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.Equal(t, `Basic realm="Klima Admin"`, rr.Header().Get("WWW-Authenticate"))
			}
		})
	}
}
