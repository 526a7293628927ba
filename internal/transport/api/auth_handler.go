package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/fsdevblog/invoice-dashboard/internal/domain"
	"github.com/fsdevblog/invoice-dashboard/internal/service"
	"github.com/fsdevblog/invoice-dashboard/internal/transport/api/middlewares"
)

// MsgInvalidCredentials единственный ответ на любой отказ в аутентификации.
const MsgInvalidCredentials = "Invalid credentials."

const (
	loginResultSuccess  = "success"
	loginResultRejected = "rejected"
	loginResultError    = "error"
)

type AuthHandler struct {
	authService AuthServicer
	observer    Observer
}

func NewAuthHandler(authService AuthServicer, observer Observer) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		observer:    observer,
	}
}

// LoginParams пароль ограничен 72 байтами: дальше bcrypt их не учитывает.
type LoginParams struct {
	Email      string `binding:"required,email"              form:"email"`
	Password   string `binding:"required,min=6,max_bytes=72" form:"password"`
	RedirectTo string `form:"redirectTo"`
}

// LoginPage GET LoginRoute. Для авторизованных юзеров срабатывает редирект в NonAuthRequired.
func (h *AuthHandler) LoginPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{})
}

// Login POST LoginRoute. Аутентификация по паре email/пароль, при успехе устанавливает cookie сессии.
func (h *AuthHandler) Login(c *gin.Context) {
	var params LoginParams
	if bindErr := c.ShouldBind(&params); bindErr != nil {
		var valErrs validator.ValidationErrors
		if errors.As(bindErr, &valErrs) {
			h.reject(c)
			return
		}
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).
			SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	_, token, err := h.authService.Login(ctx, service.LoginArgs{
		Email:    params.Email,
		Password: params.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrCredentialsInvalid) {
			h.reject(c)
			return
		}
		h.observer.ObserveLogin(loginResultError)
		_ = c.AbortWithError(http.StatusInternalServerError, err).
			SetType(gin.ErrorTypePrivate)
		return
	}
	h.observer.ObserveLogin(loginResultSuccess)

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middlewares.SessionCookie, token, int(service.JWTTokenExpire.Seconds()), "/", "",
		gin.Mode() == gin.ReleaseMode, true)
	c.Header("Authorization", "Bearer "+token)
	c.Redirect(http.StatusSeeOther, loginRedirectTarget(params.RedirectTo))
}

// Logout POST LogoutRoute.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middlewares.SessionCookie, "", -1, "/", "", gin.Mode() == gin.ReleaseMode, true)
	c.Redirect(http.StatusSeeOther, LoginRoute)
}

func (h *AuthHandler) reject(c *gin.Context) {
	h.observer.ObserveLogin(loginResultRejected)
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": MsgInvalidCredentials})
}

// loginRedirectTarget после входа разрешаем переход только внутрь панели.
func loginRedirectTarget(redirectTo string) string {
	if redirectTo == DashboardRoute || strings.HasPrefix(redirectTo, DashboardRoute+"/") {
		return redirectTo
	}
	return DashboardRoute
}
