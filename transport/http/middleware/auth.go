package middleware

import (
	"context"
	"errors"
	"net/http"

	"barbershop/config"
	"barbershop/infras/jwt"
	"barbershop/infras/otel"
	"barbershop/permissions"
	"barbershop/shared/constant"
	"barbershop/shared/failure"
	"barbershop/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type SkipAuthKey string

const skipAuth = SkipAuthKey("skip")

// Auth guards the admin group. APIKey lets internal callers through without a token.
type Auth interface {
	Auth(http.Handler) http.Handler
	APIKey(http.Handler) http.Handler
}

type Role interface {
	RBAC(http.Handler) http.Handler
}

type AuthRole interface {
	Auth
	Role
}

type authRoleImpl struct {
	jwtService jwt.JWT
	otel       otel.Otel
	permission *permissions.PermissionData
	cfg        *config.Config
}

func NewAuthRoleMiddleware(jwtService jwt.JWT, otel otel.Otel, permissions *permissions.PermissionData, cfg *config.Config) AuthRole {
	return &authRoleImpl{
		jwtService: jwtService,
		otel:       otel,
		permission: permissions,
		cfg:        cfg,
	}
}

func skipped(r *http.Request) bool {
	skip, _ := r.Context().Value(skipAuth).(bool)

	return skip
}

// routePattern resolves the registered chi pattern, e.g. /v1/admin/slots/{id}, so permissions never see raw ids.
func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil || rctx.Routes == nil {
		return r.URL.Path
	}

	if pattern := rctx.Routes.Find(chi.NewRouteContext(), r.Method, r.URL.Path); pattern != constant.Empty {
		return pattern
	}

	return r.URL.Path
}

func reject(w http.ResponseWriter, scope otel.Scope, err error) {
	scope.TraceError(err)
	scope.End()

	response.WithError(w, err)
}

func tokenFailure(err error) error {
	switch {
	case errors.Is(err, jwt.ErrExpiredToken):
		return failure.Unauthorized("Token has expired")
	case errors.Is(err, jwt.ErrInvalidClaim):
		return failure.Unauthorized("Invalid token claims")
	case errors.Is(err, jwt.ErrInvalidToken):
		return failure.Unauthorized("Invalid token")
	default:
		return failure.Unauthorized("Token validation failed")
	}
}

// Auth validates the bearer access token and puts the admin identity on the context.
func (m *authRoleImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, scope := m.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, "auth.middleware")

		if skipped(r) {
			scope.End()
			next.ServeHTTP(w, r)

			return
		}

		path := routePattern(r)

		if m.permission != nil && m.permission.FindPermissions(path, r.Method).Skip {
			scope.End()
			next.ServeHTTP(w, r)

			return
		}

		scope.SetAttributes(map[string]any{
			"middleware.type": "auth",
			"http.path":       path,
			"http.method":     r.Method,
		})

		authHeader := r.Header.Get(constant.RequestHeaderAuthorization)
		if authHeader == constant.Empty {
			reject(w, scope, failure.Unauthorized("Missing authorization header"))

			return
		}

		tokenString, err := jwt.ExtractTokenFromHeader(authHeader)
		if err != nil {
			reject(w, scope, failure.Unauthorized("Invalid authorization header format"))

			return
		}

		claims, err := m.jwtService.ValidateToken(ctx, tokenString, jwt.AccessToken)
		if err != nil {
			reject(w, scope, tokenFailure(err))

			return
		}

		if claims.UserID == constant.Empty || claims.Email == constant.Empty {
			log.Warn().Str("token_id", claims.TokenID).Msg("access token without identity")
			reject(w, scope, failure.Unauthorized("Invalid token claims"))

			return
		}

		ctx = context.WithValue(ctx, constant.ContextKeyUserID, claims.UserID)
		ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, claims.Email)
		ctx = context.WithValue(ctx, constant.ContextKeyUserRole, claims.Role)
		ctx = context.WithValue(ctx, constant.ContextKeyTokenID, claims.TokenID)

		scope.End()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RBAC matches the role set by Auth against the route's permission entry. Without a table every route is denied.
func (m *authRoleImpl) RBAC(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, scope := m.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, "rbac.middleware")

		if skipped(r) {
			scope.End()
			next.ServeHTTP(w, r)

			return
		}

		if m.permission == nil {
			reject(w, scope, failure.ForbiddenError)

			return
		}

		if m.permission.Skip {
			scope.End()
			next.ServeHTTP(w, r)

			return
		}

		permission := m.permission.FindPermissions(routePattern(r), r.Method)
		userRole, _ := r.Context().Value(constant.ContextKeyUserRole).(string)

		if !permission.Skip && !permission.Allows(userRole) {
			scope.SetAttributes(map[string]any{
				"user_role":     userRole,
				"allowed_roles": permission.Permissions,
			})
			reject(w, scope, failure.ForbiddenError)

			return
		}

		scope.End()
		next.ServeHTTP(w, r)
	})
}

// APIKey marks requests carrying the internal key as pre-authenticated. A wrong key is refused outright.
func (m *authRoleImpl) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, scope := m.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, "api_key.middleware")

		apiKey := r.Header.Get(constant.RequestHeaderAPIKey)
		if apiKey == constant.Empty {
			scope.SetAttribute("http.source", "client")
			scope.End()
			next.ServeHTTP(w, r.WithContext(context.WithValue(ctx, skipAuth, false)))

			return
		}

		scope.SetAttribute("http.source", "internal")

		if m.cfg.App.APIKey == constant.Empty || apiKey != m.cfg.App.APIKey {
			reject(w, scope, failure.ForbiddenError)

			return
		}

		scope.End()
		next.ServeHTTP(w, r.WithContext(context.WithValue(ctx, skipAuth, true)))
	})
}
