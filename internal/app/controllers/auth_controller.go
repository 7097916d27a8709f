package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/devrim/examforge/internal/app/models/dto"
	"github.com/devrim/examforge/internal/app/services"
	"github.com/devrim/examforge/internal/middleware"
)

// AuthController handles admin login, logout and session checks. The session
// token travels only in an HTTP-only cookie.
type AuthController struct {
	authService   *services.AuthService
	secureCookies bool
}

// NewAuthController creates a new AuthController. secureCookies marks the
// session cookie Secure, which production mode should always do.
func NewAuthController(authService *services.AuthService, secureCookies bool) *AuthController {
	return &AuthController{
		authService:   authService,
		secureCookies: secureCookies,
	}
}

func (c *AuthController) setSessionCookie(ctx *gin.Context, token string, maxAge int) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(middleware.SessionCookieName, token, maxAge, "/", "", c.secureCookies, true)
}

// Login authenticates an admin
// @Summary Admin login
// @Description Verifies credentials and sets the HTTP-only session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.APIResponse{data=dto.LoginResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid login data")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail.WithDetails(err.Error())))
		return
	}

	admin, token, err := c.authService.Login(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.setSessionCookie(ctx, token, c.authService.SessionTTL())

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.LoginResponse{Success: true, Admin: *admin},
		Timestamp: time.Now(),
	})
}

// Logout clears the session cookie
// @Summary Admin logout
// @Tags auth
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	c.setSessionCookie(ctx, "", -1)

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "logged out"},
		Timestamp: time.Now(),
	})
}

// CheckSession reports the current session identity
// @Summary Check session
// @Description Returns the session identity, or 401 when no valid session cookie is present
// @Tags auth
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.SessionCheckResponse}
// @Failure 401 {object} dto.APIResponse{data=dto.SessionCheckResponse}
// @Router /auth/check [get]
func (c *AuthController) CheckSession(ctx *gin.Context) {
	respond := func(status int, resp dto.SessionCheckResponse) {
		ctx.JSON(status, dto.APIResponse{
			Data:      resp,
			Timestamp: time.Now(),
		})
	}

	token, err := ctx.Cookie(middleware.SessionCookieName)
	if err != nil || token == "" {
		respond(http.StatusUnauthorized, dto.SessionCheckResponse{Authenticated: false})
		return
	}

	admin, err := c.authService.CheckSession(ctx, token)
	if err != nil {
		respond(http.StatusUnauthorized, dto.SessionCheckResponse{Authenticated: false})
		return
	}

	respond(http.StatusOK, dto.SessionCheckResponse{Authenticated: true, Admin: admin})
}
