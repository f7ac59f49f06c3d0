package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/growth-insights-api/internal/domain"
)

const testSecret = "segredo-de-teste"

func signToken(t *testing.T, method jwt.SigningMethod, key any, roleID int, expiresIn time.Duration) string {
	t.Helper()

	claims := domain.Claims{
		UserID:     7,
		UserEmail:  "analista@example.com",
		UserRoleID: roleID,
		EntityID:   3,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
		},
	}

	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		header     string
		wantStatus int
		wantCode   string
	}{
		{
			name:       "healthcheck é público",
			path:       "/healthcheck",
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "métricas são públicas",
			path:       "/metrics",
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "sem header de autorização",
			path:       "/v1/sites",
			wantStatus: http.StatusUnauthorized,
			wantCode:   "AUTH_006",
		},
		{
			name:       "header sem Bearer",
			path:       "/v1/sites",
			header:     "Token abc",
			wantStatus: http.StatusUnauthorized,
			wantCode:   "AUTH_006",
		},
		{
			name:       "token válido",
			path:       "/v1/sites",
			header:     "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), RoleAnalyst, time.Hour),
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "token expirado",
			path:       "/v1/sites",
			header:     "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), RoleAnalyst, -time.Hour),
			wantStatus: http.StatusUnauthorized,
			wantCode:   "AUTH_007",
		},
		{
			name:       "assinatura com outro segredo",
			path:       "/v1/sites",
			header:     "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte("outro"), RoleAnalyst, time.Hour),
			wantStatus: http.StatusUnauthorized,
			wantCode:   "AUTH_006",
		},
		{
			name:       "algoritmo diferente de HS256",
			path:       "/v1/sites",
			header:     "Bearer " + signToken(t, jwt.SigningMethodHS512, []byte(testSecret), RoleAnalyst, time.Hour),
			wantStatus: http.StatusUnauthorized,
			wantCode:   "AUTH_006",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(testSecret)(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Contains(t, rec.Body.String(), tt.wantCode)
			}
		})
	}
}

func TestAuthMiddleware_ColocaClaimsNoContexto(t *testing.T) {
	var got *domain.Claims
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = ClaimsFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/channels", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, jwt.SigningMethodHS256, []byte(testSecret), RoleAdmin, time.Hour))

	AuthMiddleware(testSecret)(next).ServeHTTP(httptest.NewRecorder(), req)

	require.NotNil(t, got)
	assert.Equal(t, 7, got.UserID)
	assert.Equal(t, uint(3), got.EntityID)
}

func TestAuthMiddleware_EscopoDeEntidade(t *testing.T) {
	tests := []struct {
		name       string
		roleID     int
		wantScoped bool
	}{
		{name: "admin sem escopo", roleID: RoleAdmin},
		{name: "supervisor limitado à entidade", roleID: RoleSupervisor, wantScoped: true},
		{name: "analista limitado à entidade", roleID: RoleAnalyst, wantScoped: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				scope  uint
				scoped bool
			)
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				scope, scoped = domain.EntityScope(r.Context())
			})

			req := httptest.NewRequest(http.MethodGet, "/v1/sites", nil)
			req.Header.Set("Authorization", "Bearer "+signToken(t, jwt.SigningMethodHS256, []byte(testSecret), tt.roleID, time.Hour))

			AuthMiddleware(testSecret)(next).ServeHTTP(httptest.NewRecorder(), req)

			assert.Equal(t, tt.wantScoped, scoped)
			if tt.wantScoped {
				assert.Equal(t, uint(3), scope)
			}
		})
	}
}

func TestRoleMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		claims     *domain.Claims
		middleware func(http.Handler) http.Handler
		wantStatus int
	}{
		{name: "sem claims", middleware: AllRoles(), wantStatus: http.StatusUnauthorized},
		{name: "analista lê", claims: &domain.Claims{UserRoleID: RoleAnalyst}, middleware: AllRoles(), wantStatus: http.StatusNoContent},
		{name: "analista não escreve", claims: &domain.Claims{UserRoleID: RoleAnalyst}, middleware: AdminOrSupervisor(), wantStatus: http.StatusForbidden},
		{name: "supervisor escreve", claims: &domain.Claims{UserRoleID: RoleSupervisor}, middleware: AdminOrSupervisor(), wantStatus: http.StatusNoContent},
		{name: "supervisor não administra", claims: &domain.Claims{UserRoleID: RoleSupervisor}, middleware: AdminOnly(), wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/channels", nil)
			if tt.claims != nil {
				req = req.WithContext(withClaims(req, tt.claims))
			}
			rec := httptest.NewRecorder()

			tt.middleware(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestCors(t *testing.T) {
	handler := Cors([]string{"http://localhost:3000"})(okHandler())

	req := httptest.NewRequest(http.MethodOptions, "/v1/sites", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/v1/sites", nil)
	req.Header.Set("Origin", "http://evil.example")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestLoggingMiddleware_PropagaCorrelationID(t *testing.T) {
	handler := LoggingMiddleware()(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
	req.Header.Set("X-Correlation-ID", "req-42")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "req-42", rec.Header().Get("X-Correlation-ID"))
}

func TestLogPanicMiddleware(t *testing.T) {
	handler := LogPanicMiddleware()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("falhou")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/sites", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "SRV_001")
}

func withClaims(r *http.Request, claims *domain.Claims) context.Context {
	return context.WithValue(r.Context(), ContextKeyUser, claims)
}
