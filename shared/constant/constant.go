package constant

import "time"

// Actor recorded in created_by/modified_by for public bookings.
const ContextGuest = "guest"

type contextKey string

// Identity of the authenticated admin, set by the auth middleware.
const (
	ContextKeyUserID    contextKey = "user_id"
	ContextKeyUserEmail contextKey = "user_email"
	ContextKeyUserRole  contextKey = "user_role"
	ContextKeyTokenID   contextKey = "token_id"
)

// Services offered by the shop. The duration follows from the name.
const (
	ServiceHair         = "hair"
	ServiceBeard        = "beard"
	ServiceHairAndBeard = "hair & beard"
)

var Services = []string{ServiceHair, ServiceBeard, ServiceHairAndBeard}

const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "superadmin"
)

const (
	RequestParamID      = "id"
	RequestParamDate    = "date"
	RequestParamPage    = "page"
	RequestParamLimit   = "limit"
	RequestParamSortBy  = "sort_by"
	RequestParamSortDir = "sort_dir"

	DefaultValuePage  = 1
	DefaultValueLimit = 10
)

// Audit columns shared by every table.
const (
	FieldModifiedAt = "modified_at"
	FieldModifiedBy = "modified_by"
)

const (
	DateFormat       = time.RFC3339
	MinutesToSeconds = 60
)

const (
	OtelHandlerScopeName    = "handler"
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelEventScopeName      = "event"
	OtelExternalScopeName   = "external"

	OtelQueryAttributeKey = "query"
)

// Prefixes of cached public listings, cleared whenever availability or bookings change.
const (
	CacheKeyOpenDates = "availability:open_dates"
	CacheKeyOpenTimes = "slot:open_times"
)

const (
	RequestHeaderAuthorization      = "Authorization"
	RequestHeaderAPIKey             = "X-API-Key"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderRequestID          = "X-Request-ID"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"

	ContentTypeJSON = "application/json"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Asterix = "*"
	Empty   = ""
)
