package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"github.com/gorilla/sessions"

	"github.com/mahabubulhasibshawon/foodadmin/internal/application"
)

type Options struct {
	// CSRFKey is the 32-byte authentication key; nil disables CSRF checks.
	CSRFKey []byte
	// SessionKey signs the browser binding cookie; nil picks a random key,
	// so bindings do not survive a restart.
	SessionKey    []byte
	SecureCookies bool
}

// Handler serves the management console.
type Handler struct {
	session *application.SessionService
	foods   *application.FoodService
	orders  *application.OrderService
	notices *application.Notices
	guard   *application.RouteGuard
	logger  *slog.Logger
	pages   *pages
	opts    Options
	cookies *sessions.CookieStore
}

func NewHandler(session *application.SessionService, foods *application.FoodService, orders *application.OrderService,
	notices *application.Notices, guard *application.RouteGuard, logger *slog.Logger, opts Options) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	if guard == nil {
		guard = application.NewRouteGuard()
	}
	return &Handler{
		session: session,
		foods:   foods,
		orders:  orders,
		notices: notices,
		guard:   guard,
		logger:  logger,
		pages:   loadPages(),
		opts:    opts,
		cookies: newCookieStore(opts),
	}
}

// NewRouter wires the console routes. Unknown paths never reach a handler:
// the route guard picks their redirect target.
func NewRouter(h *Handler) http.Handler {
	opts := h.opts
	r := mux.NewRouter().StrictSlash(true)
	r.NotFoundHandler = http.HandlerFunc(h.unmatched)
	r.MethodNotAllowedHandler = http.HandlerFunc(h.unmatched)

	r.Use(h.guardMiddleware)
	if opts.CSRFKey != nil {
		if !opts.SecureCookies {
			r.Use(plaintextMiddleware)
		}
		r.Use(csrf.Protect(opts.CSRFKey,
			csrf.Secure(opts.SecureCookies),
			csrf.Path("/"),
			csrf.ErrorHandler(http.HandlerFunc(h.csrfFailed)),
		))
	}

	r.HandleFunc(application.LoginPath, h.loginPage).Methods(http.MethodGet)
	r.HandleFunc(application.LoginPath, h.login).Methods(http.MethodPost)
	r.HandleFunc("/logout", h.logout).Methods(http.MethodPost)

	r.HandleFunc(application.RootPath, h.listFoods).Methods(http.MethodGet)
	r.HandleFunc("/list", h.listFoods).Methods(http.MethodGet)
	r.HandleFunc("/add", h.addFoodPage).Methods(http.MethodGet)
	r.HandleFunc("/foods", h.createFood).Methods(http.MethodPost)
	r.HandleFunc("/edit-food/{id}", h.editFoodPage).Methods(http.MethodGet)
	r.HandleFunc("/foods/{id}", h.updateFood).Methods(http.MethodPost)
	r.HandleFunc("/foods/{id}/delete", h.deleteFood).Methods(http.MethodPost)

	r.HandleFunc("/orders", h.listOrders).Methods(http.MethodGet)
	r.HandleFunc("/orders/{id}/status", h.setOrderStatus).Methods(http.MethodPost)

	return requestIDMiddleware(recoverMiddleware(h.logger, loggingMiddleware(h.logger, r)))
}

func (h *Handler) csrfFailed(w http.ResponseWriter, r *http.Request) {
	h.logger.Warn("csrf_rejected", "path", r.URL.Path, "reason", csrf.FailureReason(r), "request_id", RequestID(r.Context()))
	http.Error(w, "Forbidden - invalid CSRF token", http.StatusForbidden)
}
