package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/stocktrack/inventory-api/internal/core/domain"
)

func TestHTTPErrorHandler_Mapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantCode   int
		wantMsg    string
	}{
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid username or password"},
		{"wrapped invalid credentials", fmt.Errorf("login: %w", domain.ErrInvalidCredentials), http.StatusUnauthorized, "Invalid username or password"},
		{"too many attempts", domain.ErrTooManyAttempts, http.StatusTooManyRequests, "too many login attempts, try again later"},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, "forbidden"},
		{"user exists", domain.ErrUserExists, http.StatusConflict, "user already exists"},
		{"item not found", domain.ErrItemNotFound, http.StatusNotFound, "item not found"},
		{"item exists", domain.ErrItemExists, http.StatusConflict, "item already exists"},
		{"unexpected", errors.New("mongo: connection reset"), http.StatusInternalServerError, "internal server error"},
		{"echo error", echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token"), http.StatusUnauthorized, "invalid or expired token"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			NewHTTPErrorHandler(zerolog.Nop())(tc.err, c)

			if rec.Code != tc.wantCode {
				t.Fatalf("expected %d, got %d", tc.wantCode, rec.Code)
			}
			var resp map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if resp["message"] != tc.wantMsg {
				t.Fatalf("expected message %q, got %q", tc.wantMsg, resp["message"])
			}
		})
	}
}

func TestHTTPErrorHandler_NoInternalLeak(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(errors.New("dial tcp 10.0.0.5:27017: i/o timeout"), c)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	var resp map[string]string
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["message"] != "internal server error" {
		t.Fatalf("internal detail leaked: %q", resp["message"])
	}
}
