package v1

import (
	"errors"
	"net/http"

	"interview-tracker/internal/delivery/http/response"
	"interview-tracker/internal/domain"
	"interview-tracker/pkg/apperror"
	"interview-tracker/pkg/metrics"
	"interview-tracker/pkg/security"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC    domain.AuthUsecase
	secLogger *security.SecurityLogger
	metrics   *metrics.HTTPMetrics
}

type AuthHandlerDeps struct {
	AuthUC         domain.AuthUsecase
	SecurityLogger *security.SecurityLogger
	Metrics        *metrics.HTTPMetrics
	// RateLimit guards signup and login when set
	RateLimit gin.HandlerFunc
	// RequireAuth guards /me
	RequireAuth gin.HandlerFunc
}

func NewAuthHandler(api *gin.RouterGroup, deps AuthHandlerDeps) {
	handler := &AuthHandler{
		authUC:    deps.AuthUC,
		secLogger: deps.SecurityLogger,
		metrics:   deps.Metrics,
	}

	limited := []gin.HandlerFunc{}
	if deps.RateLimit != nil {
		limited = append(limited, deps.RateLimit)
	}

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/signup", append(limited, handler.Signup)...)
		authGroup.POST("/login", append(limited, handler.Login)...)
		authGroup.POST("/logout", handler.Logout)
		if deps.RequireAuth != nil {
			authGroup.GET("/me", deps.RequireAuth, handler.Me)
		}
	}
}

type SignupRequest struct {
	Name           string  `json:"name" binding:"required,nonempty"`
	Email          string  `json:"email" binding:"required,email"`
	Password       string  `json:"password" binding:"required,min=6"`
	Designation    *string `json:"designation" binding:"omitnil,nonempty"`
	BusinessAreaID *string `json:"business_area_id" binding:"omitnil,uuid"`
	EmployeeID     string  `json:"employee_id" binding:"required,nonempty"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Signup godoc
// @Summary      Register an interviewer account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        signup  body      SignupRequest  true  "Account details"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      429  {object}  response.Response
// @Router       /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.authUC.Register(c.Request.Context(), domain.RegisterInput{
		Name:           req.Name,
		Email:          req.Email,
		Password:       req.Password,
		Designation:    req.Designation,
		BusinessAreaID: req.BusinessAreaID,
		EmployeeID:     req.EmployeeID,
	})
	h.metrics.RecordAuthOperation("signup", err == nil)
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Code == http.StatusBadRequest && appErr.Message != "Validation Error" {
			h.secLogger.LogSignupConflict(c.Request.Context(), req.Email, c.ClientIP(), c.GetString(string(domain.KeyRequestID)))
		}
		_ = c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "User registered successfully", gin.H{"user": user})
}

// Login godoc
// @Summary      Exchange credentials for a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        login  body      LoginRequest  true  "Credentials"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      429  {object}  response.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	reqID := c.GetString(string(domain.KeyRequestID))

	result, err := h.authUC.Login(ctx, req.Email, req.Password)
	h.metrics.RecordAuthOperation("login", err == nil)
	if err != nil {
		h.secLogger.LogLoginFailed(ctx, req.Email, c.ClientIP(), c.Request.UserAgent(), reqID, err.Error())
		_ = c.Error(err)
		return
	}
	h.secLogger.LogLoginSuccess(ctx, result.User.ID, c.ClientIP(), c.Request.UserAgent(), reqID)

	response.Success(c, http.StatusOK, "Login successful", gin.H{
		"token":      result.Token,
		"expires_at": result.ExpiresAt,
		"user":       result.User,
	})
}

// Logout godoc
// @Summary      Log out
// @Description  Tokens are stateless; clients discard theirs.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	response.Success(c, http.StatusOK, "Logout successful", nil)
}

// Me godoc
// @Summary      Current account
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /auth/me [get]
// @Security     BearerAuth
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.authUC.CurrentUser(c.Request.Context(), c.GetString(string(domain.KeyUserID)))
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Retrieved User successfully", gin.H{"user": user})
}
