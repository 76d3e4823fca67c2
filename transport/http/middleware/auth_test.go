package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"barbershop/config"
	"barbershop/infras/jwt"
	jwtMocks "barbershop/infras/jwt/mocks"
	otelMocks "barbershop/infras/otel/mocks"
	"barbershop/permissions"
	"barbershop/shared/constant"
	"barbershop/transport/http/middleware"
)

func newProtectedRouter(t *testing.T, jwtService jwt.JWT) http.Handler {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.APIKey = "internal-key"

	perms := &permissions.PermissionData{
		Endpoints: []permissions.Permission{
			{Path: "/v1/admin/reconcile/repair", Method: http.MethodPost, Permissions: []string{constant.RoleSuperAdmin}},
			{Path: "/v1/admin/reconcile/audit", Method: http.MethodGet, Permissions: []string{constant.RoleAdmin, constant.RoleSuperAdmin}},
		},
	}

	authRole := middleware.NewAuthRoleMiddleware(jwtService, otelMocks.NewOtel(), perms, cfg)

	router := chi.NewRouter()
	router.Route("/v1/admin", func(admin chi.Router) {
		admin.Use(authRole.APIKey, authRole.Auth, authRole.RBAC)

		ok := func(w http.ResponseWriter, r *http.Request) {
			user, _ := r.Context().Value(constant.ContextKeyUserID).(string)
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(user))
		}

		admin.Post("/reconcile/repair", ok)
		admin.Get("/reconcile/audit", ok)
	})

	return router
}

func TestAuthRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockJWT := jwtMocks.NewMockJWT(ctrl)
	router := newProtectedRouter(t, mockJWT)

	adminClaims := &jwt.Claims{UserID: "admin-1", Email: "owner@example.com", Role: constant.RoleAdmin}

	tests := []struct {
		name      string
		method    string
		path      string
		headers   map[string]string
		setupMock func()
		wantCode  int
		wantBody  string
	}{
		{
			name:      "missing header",
			method:    http.MethodGet,
			path:      "/v1/admin/reconcile/audit",
			setupMock: func() {},
			wantCode:  http.StatusUnauthorized,
		},
		{
			name:      "malformed header",
			method:    http.MethodGet,
			path:      "/v1/admin/reconcile/audit",
			headers:   map[string]string{"Authorization": "Token abc"},
			setupMock: func() {},
			wantCode:  http.StatusUnauthorized,
		},
		{
			name:    "expired token",
			method:  http.MethodGet,
			path:    "/v1/admin/reconcile/audit",
			headers: map[string]string{"Authorization": "Bearer expired"},
			setupMock: func() {
				mockJWT.EXPECT().ValidateToken(gomock.Any(), "expired", jwt.AccessToken).Return(nil, jwt.ErrExpiredToken)
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:    "claims without identity",
			method:  http.MethodGet,
			path:    "/v1/admin/reconcile/audit",
			headers: map[string]string{"Authorization": "Bearer empty"},
			setupMock: func() {
				mockJWT.EXPECT().ValidateToken(gomock.Any(), "empty", jwt.AccessToken).Return(&jwt.Claims{Role: constant.RoleAdmin}, nil)
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:    "admin allowed",
			method:  http.MethodGet,
			path:    "/v1/admin/reconcile/audit",
			headers: map[string]string{"Authorization": "Bearer good"},
			setupMock: func() {
				mockJWT.EXPECT().ValidateToken(gomock.Any(), "good", jwt.AccessToken).Return(adminClaims, nil)
			},
			wantCode: http.StatusOK,
			wantBody: "admin-1",
		},
		{
			name:    "role not allowed",
			method:  http.MethodPost,
			path:    "/v1/admin/reconcile/repair",
			headers: map[string]string{"Authorization": "Bearer good"},
			setupMock: func() {
				mockJWT.EXPECT().ValidateToken(gomock.Any(), "good", jwt.AccessToken).Return(adminClaims, nil)
			},
			wantCode: http.StatusForbidden,
		},
		{
			name:      "internal api key skips the token",
			method:    http.MethodPost,
			path:      "/v1/admin/reconcile/repair",
			headers:   map[string]string{"X-API-Key": "internal-key"},
			setupMock: func() {},
			wantCode:  http.StatusOK,
		},
		{
			name:      "wrong api key",
			method:    http.MethodPost,
			path:      "/v1/admin/reconcile/repair",
			headers:   map[string]string{"X-API-Key": "guess"},
			setupMock: func() {},
			wantCode:  http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			request := httptest.NewRequest(tt.method, tt.path, nil)
			for key, value := range tt.headers {
				request.Header.Set(key, value)
			}

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantCode, recorder.Code)

			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, recorder.Body.String())
			}
		})
	}
}
