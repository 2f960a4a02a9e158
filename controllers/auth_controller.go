package controllers

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"log"
	"net/http"

	"gitea.com/go-chi/session"

	"github.com/tamanh-his/hisadmin/authenticator"
	"github.com/tamanh-his/hisadmin/middleware"
	"github.com/tamanh-his/hisadmin/models"
	"github.com/tamanh-his/hisadmin/services"
)

// AuthController handles login, logout and the optional SSO flow
type AuthController struct {
	services *services.Services
}

// NewAuthController creates a new auth controller
func NewAuthController(services *services.Services) *AuthController {
	return &AuthController{
		services: services,
	}
}

type loginPage struct {
	Title string
	Error string
}

// LoginForm handles GET /login
func (c *AuthController) LoginForm(w http.ResponseWriter, r *http.Request) {
	renderTemplate(w, "login", "templates/login.html", loginPage{Title: "Đăng nhập"})
}

// Login handles POST /login
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	user, err := c.services.Auth.Login(r.Context(), r.FormValue("username"), r.FormValue("password"))
	if errors.Is(err, services.ErrInvalidCredentials) {
		renderTemplateWithStatus(w, http.StatusUnauthorized, "login", "templates/login.html", loginPage{
			Title: "Đăng nhập",
			Error: "Tên đăng nhập và mật khẩu không hợp lệ!",
		})
		return
	}
	if err != nil {
		log.Printf("Login failed: %v", err)
		http.Error(w, "Error connecting to database", http.StatusInternalServerError)
		return
	}

	c.establishSession(r, user)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout handles GET /logout: destroys the server-side session state
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	sess := session.GetSession(r)
	if err := sess.Destroy(w, r); err != nil {
		log.Printf("Failed to destroy session: %v", err)
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// SSOLogin initiates the optional OpenID Connect flow
func (c *AuthController) SSOLogin(auth authenticator.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := generateRandomState()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		// Save the state in the session to validate in callback
		sess := session.GetSession(r)
		sess.Set("state", state)

		http.Redirect(w, r, auth.GetAuthURL(state), http.StatusTemporaryRedirect)
	}
}

// Callback handles the OpenID Connect callback and maps the external
// identity to a staff login record
func (c *AuthController) Callback(auth authenticator.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := session.GetSession(r)

		storedState := sess.Get("state")
		if storedState == nil {
			http.Error(w, "State not found in session", http.StatusBadRequest)
			return
		}
		if r.URL.Query().Get("state") != storedState.(string) {
			http.Error(w, "Invalid state parameter", http.StatusBadRequest)
			return
		}

		token, err := auth.ExchangeCode(r.Context(), r.URL.Query().Get("code"))
		if err != nil {
			http.Error(w, "Failed to exchange authorization code for a token: "+err.Error(), http.StatusUnauthorized)
			return
		}

		claims, err := auth.GetClaims(r.Context(), token)
		if err != nil {
			http.Error(w, "Failed to verify ID Token: "+err.Error(), http.StatusInternalServerError)
			return
		}

		user, err := c.services.Auth.ResolveLogin(r.Context(), claims.LoginID())
		if err != nil {
			http.Error(w, "Unknown staff identity: "+err.Error(), http.StatusForbidden)
			return
		}

		sess.Delete("state")
		c.establishSession(r, user)
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

// establishSession stores the authenticated actor in the session
func (c *AuthController) establishSession(r *http.Request, user *models.User) {
	sess := session.GetSession(r)
	sess.Set(middleware.SessionLoggedIn, true)
	sess.Set(middleware.SessionLoginID, user.LoginID)
	sess.Set(middleware.SessionFullName, user.FullName)
	sess.Set(middleware.SessionHostIP, middleware.ClientIP(r))
}

// generateRandomState generates a random state value for CSRF protection
func generateRandomState() (string, error) {
	b := make([]byte, 32)
	_, err := rand.Read(b)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(b), nil
}
