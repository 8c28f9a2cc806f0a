package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"codearena/internal/common"
	"codearena/internal/common/security"
	"codearena/internal/platform/config"
)

func initTestJWT(t *testing.T) {
	t.Helper()
	config.AppConfig = &config.Config{
		JWTKey: []byte("test-secret"),
		JWTExp: time.Hour,
	}
	security.InitJWT()
}

func TestAuthenticatorValidToken(t *testing.T) {
	initTestJWT(t)

	tokenString, err := security.GenerateToken(42, "ada@example.com", "contestee")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	var gotID int64
	var gotRole string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = UserIDFromContext(r.Context())
		gotRole, _ = UserRoleFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/contests/1", nil)
	req.Header.Set("Authorization", "Bearer "+tokenString)
	rec := httptest.NewRecorder()

	handler := jwtauth.Verifier(security.TokenAuth)(Authenticator(next))
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}
	if gotID != 42 || gotRole != "contestee" {
		t.Errorf("claims: id=%d role=%q, want 42/contestee", gotID, gotRole)
	}
}

func TestAuthenticatorRejectsMissingAndBadTokens(t *testing.T) {
	initTestJWT(t)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not run without a valid token")
	})
	handler := jwtauth.Verifier(security.TokenAuth)(Authenticator(next))

	cases := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"garbage token", "Bearer not-a-jwt"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/contests/1", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", rec.Code)
			}
			var envelope common.Envelope
			if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
				t.Fatalf("response is not an envelope: %v", err)
			}
			if envelope.Success || envelope.Error == nil || *envelope.Error != "UNAUTHORIZED" {
				t.Errorf("envelope = %+v, want success=false error=UNAUTHORIZED", envelope)
			}
		})
	}
}
