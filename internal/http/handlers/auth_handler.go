package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shaharman18/porfolio-shaharman-backend/internal/http/middleware"
	"github.com/shaharman18/porfolio-shaharman-backend/internal/services"
	"github.com/shaharman18/porfolio-shaharman-backend/internal/utils"
)

type AuthHandler struct {
	auth     *services.AuthService
	sessions *services.SessionManager
	secure   bool
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Passcode string `json:"passcode"`
}

type ProfileRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type UserResponse struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
}

func NewAuthHandler(auth *services.AuthService, sessions *services.SessionManager, secure bool) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions, secure: secure}
}

// Login responds identically to every failed attempt: missing fields, a bad
// passcode and bad credentials all produce the same 401.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(utils.ErrUnauthorized("Invalid credentials"))
		return
	}

	user, token, err := h.auth.Login(c.Request.Context(), req.Username, req.Password, req.Passcode)
	if err != nil {
		c.Error(err)
		return
	}

	h.setSessionCookie(c, token)
	c.JSON(http.StatusOK, UserResponse{ID: user.ID, Username: user.Username})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// Status reports whether a valid session cookie is present. It never errors.
func (h *AuthHandler) Status(c *gin.Context) {
	token, err := c.Cookie(middleware.SessionCookie)
	if err != nil || token == "" {
		c.JSON(http.StatusOK, gin.H{"isAuthenticated": false})
		return
	}
	if _, err := h.sessions.Verify(token); err != nil {
		c.JSON(http.StatusOK, gin.H{"isAuthenticated": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"isAuthenticated": true})
}

func (h *AuthHandler) Profile(c *gin.Context) {
	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(utils.ErrInvalidInput(err.Error()))
		return
	}

	userID := c.GetString(middleware.UserIDKey)
	user, err := h.auth.UpdateProfile(c.Request.Context(), userID, req.Username, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, UserResponse{ID: user.ID, Username: user.Username})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.sessions.TTL().Seconds()),
		Expires:  time.Now().Add(h.sessions.TTL()),
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: h.sameSite(),
	})
}

// clearSessionCookie invalidates client-side only; a copied token stays valid
// until its natural expiry.
func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: h.sameSite(),
	})
}

func (h *AuthHandler) sameSite() http.SameSite {
	if h.secure {
		return http.SameSiteNoneMode
	}
	return http.SameSiteLaxMode
}
