package middleware

import (
	"net/http"

	"gitea.com/go-chi/session"
	"github.com/tamanh-his/hisadmin/userctx"
)

// Session keys set at login and read on every gated request
const (
	SessionLoggedIn = "loggedin"
	SessionLoginID  = "username"
	SessionFullName = "fullname"
	SessionHostIP   = "ip"
)

// RequireSession ensures the request carries an authenticated session.
// If not, it redirects to /login instead of returning an error body.
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := session.GetSession(r)

		if sess.Get(SessionLoggedIn) == nil {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		actor := userctx.Actor{
			LoginID:  stringValue(sess.Get(SessionLoginID)),
			FullName: stringValue(sess.Get(SessionFullName)),
			HostIP:   stringValue(sess.Get(SessionHostIP)),
		}

		ctx := userctx.WithActor(r.Context(), actor)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func stringValue(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
