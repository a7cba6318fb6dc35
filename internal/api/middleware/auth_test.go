package middleware_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskdeck/api/internal/api/middleware"
	"github.com/taskdeck/api/internal/api/shared"
	"github.com/taskdeck/api/internal/domain"
	"github.com/taskdeck/api/internal/mocks"
	"github.com/taskdeck/api/internal/service/auth"
)

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	validClaims := &auth.Claims{
		UserID: 42,
		Role:   domain.RoleUser,
	}

	testCases := []struct {
		name        string
		authHeader  string
		jwtService  *mocks.MockJWTService
		wantStatus  int
		wantError   string
		wantUpCall  bool
		wantUserID  int64
		wantRole    domain.Role
	}{
		{
			name:       "missing header",
			authHeader: "",
			jwtService: &mocks.MockJWTService{},
			wantStatus: http.StatusUnauthorized,
			wantError:  "Authorization header required",
		},
		{
			name:       "not a bearer token",
			authHeader: "Basic dXNlcjpwYXNz",
			jwtService: &mocks.MockJWTService{},
			wantStatus: http.StatusUnauthorized,
			wantError:  "Invalid authorization format",
		},
		{
			name:       "missing token part",
			authHeader: "Bearer",
			jwtService: &mocks.MockJWTService{},
			wantStatus: http.StatusUnauthorized,
			wantError:  "Invalid authorization format",
		},
		{
			name:       "expired token",
			authHeader: "Bearer some.expired.token",
			jwtService: &mocks.MockJWTService{ValidateErr: auth.ErrExpiredToken},
			wantStatus: http.StatusUnauthorized,
			wantError:  "Token expired",
		},
		{
			name:       "malformed token",
			authHeader: "Bearer garbage",
			jwtService: &mocks.MockJWTService{ValidateErr: auth.ErrInvalidToken},
			wantStatus: http.StatusUnauthorized,
			wantError:  "Invalid token",
		},
		{
			name:       "unconfigured service rejects every token",
			authHeader: "Bearer some.token.here",
			jwtService: &mocks.MockJWTService{},
			wantStatus: http.StatusUnauthorized,
			wantError:  "Invalid token",
		},
		{
			name:       "unexpected validation failure",
			authHeader: "Bearer some.token.here",
			jwtService: &mocks.MockJWTService{ValidateErr: errors.New("key store offline")},
			wantStatus: http.StatusInternalServerError,
			wantError:  "Authentication error",
		},
		{
			name:       "valid token",
			authHeader: "Bearer valid.token.here",
			jwtService: &mocks.MockJWTService{Claims: validClaims},
			wantStatus: http.StatusOK,
			wantUpCall: true,
			wantUserID: 42,
			wantRole:   domain.RoleUser,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var gotPrincipal shared.Principal
			var nextCalled bool

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				gotPrincipal, _ = shared.PrincipalFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			m := middleware.NewAuthMiddleware(tc.jwtService)

			req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}
			rec := httptest.NewRecorder()

			m.Authenticate(next).ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, tc.wantUpCall, nextCalled)

			if tc.wantUpCall {
				assert.Equal(t, tc.wantUserID, gotPrincipal.UserID)
				assert.Equal(t, tc.wantRole, gotPrincipal.Role)
				return
			}

			var body shared.Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, tc.wantError, body.Error)
		})
	}
}

func TestRequireRole(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		principal  *shared.Principal
		allowed    []domain.Role
		wantStatus int
		wantError  string
	}{
		{
			name:       "no principal in context",
			principal:  nil,
			allowed:    []domain.Role{domain.RoleAdmin},
			wantStatus: http.StatusUnauthorized,
			wantError:  "Authentication required",
		},
		{
			name:       "role not in allowed set",
			principal:  &shared.Principal{UserID: 42, Role: domain.RoleUser},
			allowed:    []domain.Role{domain.RoleAdmin},
			wantStatus: http.StatusForbidden,
			wantError:  "Insufficient permissions for this operation",
		},
		{
			name:       "role allowed",
			principal:  &shared.Principal{UserID: 42, Role: domain.RoleAdmin},
			allowed:    []domain.Role{domain.RoleAdmin},
			wantStatus: http.StatusOK,
		},
		{
			name:       "multiple allowed roles",
			principal:  &shared.Principal{UserID: 42, Role: domain.RoleUser},
			allowed:    []domain.Role{domain.RoleUser, domain.RoleAdmin},
			wantStatus: http.StatusOK,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			m := middleware.NewAuthMiddleware(&mocks.MockJWTService{})

			req := httptest.NewRequest(http.MethodGet, "/tasks/admin/all", nil)
			if tc.principal != nil {
				req = req.WithContext(shared.WithPrincipal(req.Context(), *tc.principal))
			}
			rec := httptest.NewRecorder()

			m.RequireRole(tc.allowed...)(next).ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)

			if tc.wantError != "" {
				var body shared.Response
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, tc.wantError, body.Error)
			}
		})
	}
}
