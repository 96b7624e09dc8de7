package httpapi

import (
	"net/http"

	"github.com/riskibarqy/cantera/internal/platform/logging"
)

type RouterOptions struct {
	ServiceName        string
	SwaggerEnabled     bool
	AuthRequired       bool
	CORSAllowedOrigins []string
}

func NewRouter(
	handler *Handler,
	verifier SessionVerifier,
	logger *logging.Logger,
	opts RouterOptions,
) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}
	if opts.ServiceName == "" {
		opts.ServiceName = "cantera"
	}

	auth := func(next http.HandlerFunc) http.Handler {
		if !opts.AuthRequired || verifier == nil {
			return next
		}
		return RequireAuth(verifier, next)
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler, opts.SwaggerEnabled)
	registerSessionRoutes(mux, handler, verifier)
	registerClubRoutes(mux, handler, auth)
	registerRosterRoutes(mux, handler, auth)
	registerMatchRoutes(mux, handler, auth)
	registerDashboardRoutes(mux, handler, auth)

	return RequestTracing(opts.ServiceName, RequestLogging(logger, CORS(opts.CORSAllowedOrigins, recoverPanic(logger, mux))))
}
