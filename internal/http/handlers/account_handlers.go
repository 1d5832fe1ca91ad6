package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/you/accountsvc/domain"
)

// AccountHandlers handles account lifecycle HTTP requests
type AccountHandlers struct {
	accountSvc domain.AccountService
}

// NewAccountHandlers creates new account handlers
func NewAccountHandlers(accountSvc domain.AccountService) *AccountHandlers {
	return &AccountHandlers{accountSvc: accountSvc}
}

// SignupRequest represents a signup request
type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// VerifyOTPRequest represents an OTP verification request
type VerifyOTPRequest struct {
	UserID uint   `json:"userId" binding:"required"`
	OTP    string `json:"otp" binding:"required"`
}

// ResendOTPRequest represents an OTP resend request
type ResendOTPRequest struct {
	UserID uint `json:"userId" binding:"required"`
}

// ForgotPasswordRequest represents a forgot-password request
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required"`
}

// ResetPasswordRequest represents a reset-password request
type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required"`
	ResetToken  string `json:"resetToken" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

// UpdateUserRequest represents an update-by-email request
type UpdateUserRequest struct {
	Email string `json:"email" binding:"required"`
	Name  string `json:"name" binding:"required"`
}

// UpdateUserByIDRequest represents an update-by-id request; both fields are
// optional and only provided values change.
type UpdateUserByIDRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// DeleteUserRequest represents a delete-by-email request
type DeleteUserRequest struct {
	Email string `json:"email" binding:"required"`
}

// UserResponse is the safe projection of a user record. The password hash
// never leaves the service.
type UserResponse struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	EmailVerified bool      `json:"emailVerified"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func toUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:            user.ID,
		Name:          user.Name,
		Email:         user.Email,
		EmailVerified: user.EmailVerified,
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
	}
}

// Signup handles user registration
func (h *AccountHandlers) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name, email, and password required"})
		return
	}

	user, err := h.accountSvc.Signup(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Signup successful, OTP sent to email",
		"userId":  user.ID,
	})
}

// Login handles credential login
func (h *AccountHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password required"})
		return
	}

	result, err := h.accountSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		case errors.Is(err, domain.ErrEmailNotVerified):
			c.JSON(http.StatusForbidden, gin.H{"error": "Email not verified. Please verify OTP."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   result.AccessToken,
		"user":    toUserResponse(result.User),
	})
}

// VerifyOTP handles email verification
func (h *AccountHandlers) VerifyOTP(c *gin.Context) {
	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User ID and OTP required"})
		return
	}

	_, err := h.accountSvc.VerifyEmail(c.Request.Context(), req.UserID, req.OTP)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		case errors.Is(err, domain.ErrOTPInvalid), errors.Is(err, domain.ErrOTPNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid OTP"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Email verified successfully"})
}

// ResendOTP handles issuing a fresh verification code
func (h *AccountHandlers) ResendOTP(c *gin.Context) {
	var req ResendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User ID required"})
		return
	}

	if err := h.accountSvc.ResendOTP(c.Request.Context(), req.UserID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "OTP resent to email"})
}

// ForgotPassword handles reset token issuance
func (h *AccountHandlers) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email required"})
		return
	}

	token, err := h.accountSvc.ForgotPassword(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Reset token sent to email",
		"resetToken": token,
	})
}

// ResetPassword handles token-based password replacement
func (h *AccountHandlers) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email, reset token, and new password required"})
		return
	}

	if err := h.accountSvc.ResetPassword(c.Request.Context(), req.Email, req.ResetToken, req.NewPassword); err != nil {
		if errors.Is(err, domain.ErrResetTokenInvalid) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired reset token"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password reset successful"})
}

// ListUsers handles listing all users
func (h *AccountHandlers) ListUsers(c *gin.Context) {
	users, err := h.accountSvc.ListUsers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	out := make([]UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, toUserResponse(user))
	}
	c.JSON(http.StatusOK, out)
}

// GetUserByID handles fetching a single user
func (h *AccountHandlers) GetUserByID(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	user, err := h.accountSvc.GetUserByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User fetched successfully",
		"user":    toUserResponse(user),
	})
}

// UpdateUser handles renaming a user addressed by email
func (h *AccountHandlers) UpdateUser(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and name required"})
		return
	}

	user, err := h.accountSvc.UpdateUserByEmail(c.Request.Context(), req.Email, req.Name)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User updated",
		"user":    toUserResponse(user),
	})
}

// UpdateUserByID handles partial updates of a user addressed by id
func (h *AccountHandlers) UpdateUserByID(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req UpdateUserByIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	user, err := h.accountSvc.UpdateUserByID(c.Request.Context(), id, req.Name, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User updated successfully",
		"user":    toUserResponse(user),
	})
}

// DeleteUser handles deleting a user addressed by email
func (h *AccountHandlers) DeleteUser(c *gin.Context) {
	var req DeleteUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email required"})
		return
	}

	if err := h.accountSvc.DeleteUserByEmail(c.Request.Context(), req.Email); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

// DeleteUserByID handles deleting a user addressed by id
func (h *AccountHandlers) DeleteUserByID(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.accountSvc.DeleteUserByID(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

func (h *AccountHandlers) parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return 0, false
	}
	return uint(id), true
}
