package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/wanderplan/backend/internal/application/identity"
	"github.com/wanderplan/backend/internal/interfaces/http/router"
)

// RegisterRequest is the request body for account registration
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the request body for login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserHandler handles registration, login and profile requests
type UserHandler struct {
	BaseHandler
	authService *identity.AuthService
}

// NewUserHandler creates a new user handler
func NewUserHandler(authService *identity.AuthService) *UserHandler {
	return &UserHandler{authService: authService}
}

// Routes returns the user route group
func (h *UserHandler) Routes() *router.DomainGroup {
	group := router.NewDomainGroup("users", "/users")
	group.POST("/register", h.Register)
	group.POST("/login", h.Login)
	group.GET("/me", h.Me)
	return group
}

// Register creates an account and returns a token for it
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.authService.Register(c.Request.Context(), identity.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// Login authenticates by email and password
func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.authService.Login(c.Request.Context(), identity.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Me returns the authenticated user's profile
func (h *UserHandler) Me(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	info, err := h.authService.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, info)
}
