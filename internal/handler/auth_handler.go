package handler

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"

	"meal-mosaic/internal/service"
	"meal-mosaic/pkg/response"

	"github.com/gin-gonic/gin"
)

const stateCookie = "oauth_state"

// AuthHandler handles the GitHub login flow.
type AuthHandler struct {
	service    service.AuthServicer
	configured bool
}

// NewAuthHandler creates a new AuthHandler. configured reports whether GitHub
// app credentials are present; when false every auth route answers 503.
func NewAuthHandler(service service.AuthServicer, configured bool) *AuthHandler {
	return &AuthHandler{service: service, configured: configured}
}

// GithubLogin godoc
// @Summary      Start GitHub login
// @Description  Redirect the browser to GitHub's consent page
// @Tags         auth
// @Produce      json
// @Success      302  "Redirect to GitHub"
// @Failure      503  {object}  response.Response
// @Router       /auth/github [get]
func (h *AuthHandler) GithubLogin(c *gin.Context) {
	if !h.configured {
		response.ServiceUnavailable(c, "GitHub login is not configured")
		return
	}

	state, err := randomState()
	if err != nil {
		response.InternalError(c, "Unable to start login")
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(stateCookie, state, 300, "/", "", false, true)
	c.Redirect(http.StatusFound, h.service.LoginURL(state))
}

// GithubCallback godoc
// @Summary      Complete GitHub login
// @Description  Exchange the authorization code, upsert the user, and return a token
// @Tags         auth
// @Produce      json
// @Param        code   query     string  true   "Authorization code"
// @Param        state  query     string  true   "Opaque state from the login redirect"
// @Success      200    {object}  response.Response{data=models.LoginResponse}
// @Failure      401    {object}  response.Response
// @Failure      503    {object}  response.Response
// @Router       /auth/github/callback [get]
func (h *AuthHandler) GithubCallback(c *gin.Context) {
	if !h.configured {
		response.ServiceUnavailable(c, "GitHub login is not configured")
		return
	}

	state, err := c.Cookie(stateCookie)
	if err != nil || state == "" || state != c.Query("state") {
		response.Unauthorized(c, "GitHub authentication failed")
		return
	}
	c.SetCookie(stateCookie, "", -1, "/", "", false, true)

	code := c.Query("code")
	if code == "" {
		response.Unauthorized(c, "GitHub authentication failed")
		return
	}

	result, err := h.service.HandleCallback(c.Request.Context(), code)
	if err != nil {
		response.Unauthorized(c, "GitHub authentication failed")
		return
	}

	response.Success(c, result)
}

// Failure godoc
// @Summary      Login failure
// @Description  Terminal route for aborted or failed GitHub logins
// @Tags         auth
// @Produce      json
// @Failure      401  {object}  response.Response
// @Router       /auth/failure [get]
func (h *AuthHandler) Failure(c *gin.Context) {
	response.Unauthorized(c, "GitHub authentication failed")
}

// Logout godoc
// @Summary      Log out
// @Description  Tokens are stateless, so logout just confirms; clients drop the token
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /auth/logout [get]
func (h *AuthHandler) Logout(c *gin.Context) {
	response.Success(c, gin.H{"message": "Logged out"})
}

func randomState() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
