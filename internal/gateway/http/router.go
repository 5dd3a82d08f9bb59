package http

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aussiebroadwan/cognitogw/internal/gateway/domain"
	"github.com/aussiebroadwan/cognitogw/pkg/httpx"
	"github.com/aussiebroadwan/cognitogw/pkg/slogx"

	_ "github.com/aussiebroadwan/cognitogw/api/gateway" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Route names. A route is served at Prefix + "/" + name and can be turned
// off through Router.DisabledRoutes.
const (
	RouteSignUp                = "signup"
	RouteSignIn                = "signin"
	RouteConfirmSignUp         = "confirm-signup"
	RouteRefreshToken          = "refresh-token"
	RouteResendOTP             = "resend-otp"
	RouteAssociateTOTP         = "associate-totp"
	RouteVerifyTOTP            = "verify-totp"
	RouteEnableMFA             = "enable-mfa"
	RouteDisableMFA            = "disable-mfa"
	RouteVerifyMFA             = "verify-mfa"
	RouteChangePassword        = "change-password"
	RouteForgotPassword        = "forgot-password"
	RouteConfirmForgotPassword = "confirm-forgot-password"
)

// RouteNames lists every gateway route in registration order.
var RouteNames = []string{
	RouteSignUp,
	RouteSignIn,
	RouteConfirmSignUp,
	RouteRefreshToken,
	RouteResendOTP,
	RouteAssociateTOTP,
	RouteVerifyTOTP,
	RouteEnableMFA,
	RouteDisableMFA,
	RouteVerifyMFA,
	RouteChangePassword,
	RouteForgotPassword,
	RouteConfirmForgotPassword,
}

// AuthService is the set of identity provider operations the handlers call.
// *service.CognitoService implements it.
type AuthService interface {
	SignUp(ctx context.Context, email, password string) (domain.SignUpResult, error)
	SignIn(ctx context.Context, email, password string) (domain.SignInResult, error)
	ConfirmSignUp(ctx context.Context, email, code string) (domain.ConfirmSignUpResult, error)
	ResendConfirmationCode(ctx context.Context, email string) (domain.CodeDeliveryResult, error)
	AssociateSoftwareToken(ctx context.Context, accessToken string) (domain.TOTPEnrollment, error)
	VerifySoftwareToken(ctx context.Context, accessToken, code string) (domain.VerifyTOTPResult, error)
	EnableMFA(ctx context.Context, accessToken string) (domain.MFAPreferenceResult, error)
	DisableMFA(ctx context.Context, accessToken string) (domain.MFAPreferenceResult, error)
	RespondToMFAChallenge(ctx context.Context, code, session, email string) (domain.SignInResult, error)
	ChangePassword(ctx context.Context, accessToken, oldPassword, newPassword string) (domain.Ack, error)
	ForgotPassword(ctx context.Context, email string) (domain.CodeDeliveryResult, error)
	ConfirmForgotPassword(ctx context.Context, email, code, newPassword string) (domain.Ack, error)
	RefreshToken(ctx context.Context, refreshToken, username string) (domain.AuthenticationResult, error)
}

// ReadinessCheck reports whether the gateway can reach its provider.
type ReadinessCheck func(ctx context.Context) error

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	// Prefix is the path the gateway routes are mounted under, e.g. "/api".
	Prefix string

	// DisabledRoutes holds route names that are not registered at all.
	DisabledRoutes map[string]bool

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	Service        AuthService
	ReadinessCheck ReadinessCheck // Optional: readyz reports ok when nil
}

func NewRouter(buildVersion string, logger *slog.Logger) *Router {
	r := &Router{
		Mux:            http.NewServeMux(),
		Prefix:         "/api",
		DisabledRoutes: map[string]bool{},
		buildVersion:   buildVersion,
		startTime:      time.Now(),
		logger:         logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAccount()
	r.registerMFA()
	r.registerPassword()
	r.registerToken()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Cognito Gateway API
//	@version		0.1.0
//	@description	JSON gateway in front of an AWS Cognito user pool app client.
//	@description
//	@description	Each route maps to one user pool operation. Secret hashes are computed server side so
//	@description	confidential app clients can be used from browsers and mobile apps.
//
//	@contact.name	AussieBroadWAN Team
//	@contact.url	https://github.com/aussiebroadwan/cognitogw
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8080
//	@BasePath		/api
//
//	@schemes		http https
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// RoutePath returns the path a route is served at.
func (r *Router) RoutePath(name string) string {
	prefix := "/" + strings.Trim(r.Prefix, "/")
	if prefix == "/" {
		return "/" + name
	}
	return prefix + "/" + name
}

// handle registers a POST route unless it is disabled.
func (r *Router) handle(name string, h http.HandlerFunc, limit httpx.Middleware) {
	if r.DisabledRoutes[name] {
		r.logger.Info("route disabled", "route", name)
		return
	}
	r.Mux.Handle("POST "+r.RoutePath(name), httpx.Chain(h, limit))
}

func (r *Router) registerAccount() {
	h := &AccountHandler{Service: r.Service}

	// POST /signup - moderate rate limit by IP
	r.handle(RouteSignUp, h.HandleSignUp, httpx.RateLimitByIP(httpx.ModerateLimit))

	// Credential and code bearing routes are limited by IP + email to
	// slow down guessing against a single account.
	r.handle(RouteSignIn, h.HandleSignIn, httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "email"))
	r.handle(RouteConfirmSignUp, h.HandleConfirmSignUp, httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "email"))
	r.handle(RouteResendOTP, h.HandleResendOTP, httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "email"))
}

func (r *Router) registerMFA() {
	h := &MFAHandler{Service: r.Service}

	// Access-token routes - moderate rate limit by IP
	r.handle(RouteAssociateTOTP, h.HandleAssociateTOTP, httpx.RateLimitByIP(httpx.ModerateLimit))
	r.handle(RouteVerifyTOTP, h.HandleVerifyTOTP, httpx.RateLimitByIP(httpx.ModerateLimit))
	r.handle(RouteEnableMFA, h.HandleEnableMFA, httpx.RateLimitByIP(httpx.ModerateLimit))
	r.handle(RouteDisableMFA, h.HandleDisableMFA, httpx.RateLimitByIP(httpx.ModerateLimit))

	// POST /verify-mfa - strict rate limit (prevent brute force of TOTP codes)
	r.handle(RouteVerifyMFA, h.HandleVerifyMFA, httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "email"))
}

func (r *Router) registerPassword() {
	h := &PasswordHandler{Service: r.Service}

	r.handle(RouteChangePassword, h.HandleChangePassword, httpx.RateLimitByIP(httpx.ModerateLimit))
	r.handle(RouteForgotPassword, h.HandleForgotPassword, httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "email"))
	r.handle(RouteConfirmForgotPassword, h.HandleConfirmForgotPassword, httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "email"))
}

func (r *Router) registerToken() {
	h := &TokenHandler{Service: r.Service}

	r.handle(RouteRefreshToken, h.HandleRefreshToken, httpx.RateLimitByIP(httpx.ModerateLimit))
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.ReadinessCheck),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
