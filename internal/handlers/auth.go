package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"medicare-portal-server/internal/config"
	"medicare-portal-server/internal/middleware"
	"medicare-portal-server/internal/models"
	"medicare-portal-server/internal/store"
	"medicare-portal-server/internal/utils"
)

// AuthHandler handles authentication-related requests.
type AuthHandler struct {
	Users store.UserStore
	Cfg   *config.Config
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(users store.UserStore, cfg *config.Config) *AuthHandler {
	return &AuthHandler{Users: users, Cfg: cfg}
}

// LoginRequest represents the request body for user login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse represents the response body for successful login or registration.
type AuthResponse struct {
	Message string               `json:"message"`
	Token   string               `json:"token"`
	User    models.UserSanitized `json:"user"`
}

// Login handles user login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Email and password are required")
		return
	}

	user, err := h.Users.Authenticate(req.Email, req.Password)
	if err != nil {
		utils.Unauthorized(c, "Invalid email or password")
		return
	}

	token, err := utils.GenerateToken(user, h.Cfg.JWTSecret, h.Cfg.TokenTTL)
	if err != nil {
		utils.InternalServerError(c, "Failed to generate token")
		return
	}

	c.JSON(http.StatusOK, AuthResponse{
		Message: "Login successful",
		Token:   token,
		User:    user.Sanitize(),
	})
}

// RegisterRequest represents the request body for user registration.
// Role-specific fields are copied into the account only for the matching
// role; anything else in the payload is dropped.
type RegisterRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
	Role      string `json:"role" binding:"required,oneof=patient doctor admin"`
	Phone     string `json:"phone"`

	// Patient fields
	DateOfBirth string `json:"dateOfBirth"`
	Gender      string `json:"gender"`

	// Doctor fields
	Specialization  string  `json:"specialization"`
	LicenseNumber   string  `json:"licenseNumber"`
	Experience      int     `json:"experience"`
	ConsultationFee float64 `json:"consultationFee"`
}

// Register handles user registration. A token is issued immediately so the
// client is logged in after registering.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "All fields are required")
		return
	}

	user := models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Role:      models.Role(req.Role),
		Phone:     req.Phone,
	}
	switch user.Role {
	case models.RolePatient:
		user.DateOfBirth = req.DateOfBirth
		user.Gender = req.Gender
	case models.RoleDoctor:
		user.Specialization = req.Specialization
		user.LicenseNumber = req.LicenseNumber
		user.Experience = req.Experience
		user.ConsultationFee = req.ConsultationFee
	}

	created, err := h.Users.Register(&user, req.Password)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			utils.Conflict(c, "User with this email already exists")
		} else {
			utils.InternalServerError(c, "Failed to create user")
		}
		return
	}

	token, err := utils.GenerateToken(created, h.Cfg.JWTSecret, h.Cfg.TokenTTL)
	if err != nil {
		utils.InternalServerError(c, "Failed to generate token")
		return
	}

	c.JSON(http.StatusCreated, AuthResponse{
		Message: "Registration successful",
		Token:   token,
		User:    created.Sanitize(),
	})
}

// VerifyResponse represents the response body for a successful token check.
type VerifyResponse struct {
	Message string               `json:"message"`
	User    models.UserSanitized `json:"user"`
}

// Verify confirms the caller's token and returns the matching account.
func (h *AuthHandler) Verify(c *gin.Context) {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		utils.Unauthorized(c, "Invalid token")
		return
	}

	user, err := h.Users.FindByID(claims.ID)
	if err != nil {
		utils.Unauthorized(c, "Invalid token")
		return
	}

	c.JSON(http.StatusOK, VerifyResponse{
		Message: "Token valid",
		User:    user.Sanitize(),
	})
}
