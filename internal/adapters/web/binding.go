package web

import (
	"net/http"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"

	"github.com/mahabubulhasibshawon/foodadmin/internal/domain"
)

const (
	sessionCookie = "foodadmin_session"
	bindingValue  = "binding"
)

func newCookieStore(opts Options) *sessions.CookieStore {
	key := opts.SessionKey
	if key == nil {
		key = securecookie.GenerateRandomKey(32)
	}
	store := sessions.NewCookieStore(key)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   7 * 24 * 60 * 60,
		HttpOnly: true,
		Secure:   opts.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

// requestState is the session as seen by this browser. Without a cookie
// carrying the current binding the requester is Anonymous.
func (h *Handler) requestState(r *http.Request) domain.SessionState {
	sess, err := h.cookies.Get(r, sessionCookie)
	if err != nil {
		return domain.Anonymous()
	}
	b, _ := sess.Values[bindingValue].(string)
	return h.session.StateFor(b)
}

// bindBrowser hands the requesting browser the binding for the current token.
func (h *Handler) bindBrowser(w http.ResponseWriter, r *http.Request) error {
	// a cookie that fails to decode still yields a fresh session to overwrite it
	sess, _ := h.cookies.Get(r, sessionCookie)
	sess.Values[bindingValue] = h.session.Binding()
	return sess.Save(r, w)
}

func (h *Handler) unbindBrowser(w http.ResponseWriter, r *http.Request) {
	sess, _ := h.cookies.Get(r, sessionCookie)
	sess.Options.MaxAge = -1
	if err := sess.Save(r, w); err != nil {
		h.logger.Warn("cookie_clear_failed", "error", err.Error(), "request_id", RequestID(r.Context()))
	}
}
