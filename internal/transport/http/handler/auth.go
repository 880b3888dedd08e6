package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tripplanner/internal/app"
	"tripplanner/internal/model"
	"tripplanner/internal/transport/http/middleware"
	"tripplanner/internal/transport/http/response"
)

type AuthHandler struct {
	authService *app.AuthService
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email,max=180"`
	Password string `json:"password" binding:"required,max=128"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func NewAuthHandler(authService *app.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// absent fields get the original's message; a present but malformed
		// email fails the binding validator instead
		if req.Email == "" || req.Password == "" {
			response.Fail(c, http.StatusBadRequest, "Email and password are required")
		} else {
			response.FailValidation(c, http.StatusBadRequest, "Validation failed", err.Error())
		}
		return
	}

	result, err := h.authService.Register(app.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput):
			response.Fail(c, http.StatusBadRequest, "Email and password are required")
		case errors.Is(err, app.ErrInvalidEmail), errors.Is(err, app.ErrWeakPassword):
			response.FailValidation(c, http.StatusBadRequest, "Validation failed", err.Error())
		case errors.Is(err, app.ErrEmailExists):
			response.Fail(c, http.StatusConflict, "User with this email already exists")
		default:
			response.Fail(c, http.StatusInternalServerError, "Registration failed")
		}
		return
	}

	response.OK(c, http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"token":   result.Token,
		"user":    userJSON(result.User),
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	result, err := h.authService.Login(app.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput):
			response.Fail(c, http.StatusBadRequest, "Email and password are required")
		case errors.Is(err, app.ErrInvalidCredential):
			response.Fail(c, http.StatusUnauthorized, "Invalid credentials")
		default:
			response.Fail(c, http.StatusInternalServerError, "Login failed")
		}
		return
	}

	response.OK(c, http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   result.Token,
		"user":    userJSON(result.User),
	})
}

func (h *AuthHandler) Me(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	user, err := h.authService.GetUserByID(identity.UserID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "Fetch current user failed")
		return
	}
	if user == nil {
		response.Fail(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	response.OK(c, http.StatusOK, gin.H{
		"user": userJSON(user),
	})
}

// Logout has no server-side effect: tokens are stateless and stay valid
// until expiry, the client just discards its copy.
func (h *AuthHandler) Logout(c *gin.Context) {
	response.OK(c, http.StatusOK, gin.H{
		"message": "Logged out successfully. Please remove the token from your app.",
	})
}

func userJSON(user *model.User) gin.H {
	return gin.H{
		"id":    user.ID,
		"email": user.Email,
		"roles": user.Roles,
	}
}
