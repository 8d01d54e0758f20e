package handlers

import (
	"net/http"
	"regexp"

	"exam-platform-backend/internal/middleware"
	"exam-platform-backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type RegisterRequest struct {
	Name               string `json:"name" binding:"required,min=1,max=255" example:"Jane Doe"`
	Email              string `json:"email" binding:"required,email" example:"jane@example.com"`
	Password           string `json:"password" binding:"required,min=6" example:"password123"`
	RegistrationNumber string `json:"registration_number" binding:"required,regnumber" example:"REG-2024-001"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"jane@example.com"`
	Password string `json:"password" binding:"required" example:"password123"`
}

type AuthResponse struct {
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIs..."`
}

var regNumberPattern = regexp.MustCompile(`^[A-Za-z0-9-]{4,32}$`)

// RegNumber validates the registration_number binding tag.
func RegNumber(fl validator.FieldLevel) bool {
	return regNumberPattern.MatchString(fl.Field().String())
}

// Register godoc
// @Summary      Register a new user
// @Description  Create an account and return a JWT token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "Registration data"
// @Success      201 {object} AuthResponse
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	token, err := h.authService.Register(req.Name, req.Email, req.Password, req.RegistrationNumber)
	if err != nil {
		c.JSON(statusFromError(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, AuthResponse{Token: token})
}

// Login godoc
// @Summary      Login
// @Description  Authenticate by email and password and return a JWT token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login data"
// @Success      200 {object} AuthResponse
// @Failure      401 {object} ErrorResponse
// @Router       /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	token, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		c.JSON(statusFromError(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, AuthResponse{Token: token})
}

// Profile godoc
// @Summary      Current user profile
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} User
// @Failure      401 {object} ErrorResponse
// @Router       /api/v1/auth/profile [get]
func (h *AuthHandler) Profile(c *gin.Context) {
	user, err := h.authService.Profile(middleware.UserID(c))
	if err != nil {
		c.JSON(statusFromError(err), ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, user)
}
