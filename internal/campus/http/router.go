package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/uniendoculturas/campus/internal/campus/domain"
	"github.com/uniendoculturas/campus/internal/campus/service"
	"github.com/uniendoculturas/campus/internal/campus/store"
	"github.com/uniendoculturas/campus/pkg/httpx"
	"github.com/uniendoculturas/campus/pkg/jwtx"
	"github.com/uniendoculturas/campus/pkg/slogx"

	_ "github.com/uniendoculturas/campus/api/campus" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	signer       *jwtx.Signer
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store           store.Store
	AuthService     *service.AuthService
	Verification    *service.VerificationService
	ReferralService *service.ReferralService
	CourseService   *service.CourseService
	CatalogService  *service.CatalogService
}

func NewRouter(
	signer *jwtx.Signer,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		signer:       signer,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerUsers()
	r.registerReferrals()
	r.registerCourses()
	r.registerCatalog()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Campus API
//	@version		0.1.0
//	@description	Backend for the online language course platform: account sign up with
//	@description	email verification, referral discount codes, and the course catalog
//	@description	with per-user ratings.
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	signUpHandler := &SignUpHandler{AuthService: r.AuthService}
	signInHandler := &SignInHandler{AuthService: r.AuthService}
	verifyHandler := &VerifyEmailHandler{Verification: r.Verification}
	resendHandler := &ResendVerificationHandler{AuthService: r.AuthService}

	// All four are unauthenticated and brute-forceable, so they sit behind
	// the strict per-IP limit.
	r.Mux.Handle("POST /v1/auth/signup",
		httpx.Chain(signUpHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/auth/signin",
		httpx.Chain(signInHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/auth/verify",
		httpx.Chain(verifyHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/auth/resend-verification",
		httpx.Chain(resendHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerUsers() {
	h := &UserInfoHandler{Store: r.store}

	secured := httpx.Chain(h,
		httpx.AuthnMiddleware(r.signer),
		httpx.RateLimitByUser(httpx.LenientLimit),
	)

	r.Mux.Handle("GET /v1/users/me", secured)
}

func (r *Router) registerReferrals() {
	mintHandler := &ReferralMintHandler{ReferralService: r.ReferralService}
	listHandler := &ReferralListHandler{ReferralService: r.ReferralService}
	redeemHandler := &ReferralRedeemHandler{ReferralService: r.ReferralService}

	// POST /referrals/mint - admin-only batch issuance
	r.Mux.Handle("POST /v1/referrals/mint",
		httpx.Chain(mintHandler,
			httpx.AuthnMiddleware(r.signer),
			httpx.RequireRole(domain.RoleAdmin),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// GET /referrals - admin-only listing
	r.Mux.Handle("GET /v1/referrals",
		httpx.Chain(listHandler,
			httpx.AuthnMiddleware(r.signer),
			httpx.RequireRole(domain.RoleAdmin),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// POST /referrals/redeem - strict limit, codes are guessable by shape
	r.Mux.Handle("POST /v1/referrals/redeem",
		httpx.Chain(redeemHandler,
			httpx.AuthnMiddleware(r.signer),
			httpx.RateLimitByUser(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerCourses() {
	h := &CoursesHandler{CourseService: r.CourseService}
	rateHandler := &CourseRateHandler{CourseService: r.CourseService}

	// Public catalog reads
	r.Mux.Handle("GET /v1/courses",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /v1/courses/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)

	// Admin mutations
	r.Mux.Handle("POST /v1/courses",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.AuthnMiddleware(r.signer),
			httpx.RequireRole(domain.RoleAdmin),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("DELETE /v1/courses/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleDelete),
			httpx.AuthnMiddleware(r.signer),
			httpx.RequireRole(domain.RoleAdmin),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// Authenticated rating
	r.Mux.Handle("POST /v1/courses/{id}/rate",
		httpx.Chain(rateHandler,
			httpx.AuthnMiddleware(r.signer),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerCatalog() {
	h := &CatalogHandler{CatalogService: r.CatalogService}

	// Public reads
	r.Mux.Handle("GET /v1/languages",
		httpx.Chain(http.HandlerFunc(h.HandleListLanguages),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /v1/categories",
		httpx.Chain(http.HandlerFunc(h.HandleListCategories),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)

	// Admin mutations
	adminChain := func(next http.Handler) http.Handler {
		return httpx.Chain(next,
			httpx.AuthnMiddleware(r.signer),
			httpx.RequireRole(domain.RoleAdmin),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		)
	}
	r.Mux.Handle("POST /v1/languages", adminChain(http.HandlerFunc(h.HandleCreateLanguage)))
	r.Mux.Handle("DELETE /v1/languages/{id}", adminChain(http.HandlerFunc(h.HandleDeleteLanguage)))
	r.Mux.Handle("POST /v1/categories", adminChain(http.HandlerFunc(h.HandleCreateCategory)))
	r.Mux.Handle("DELETE /v1/categories/{id}", adminChain(http.HandlerFunc(h.HandleDeleteCategory)))
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
