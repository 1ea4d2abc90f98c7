package handlers

import (
	"net/http"

	"spendwise-backend/internal/config"
	"spendwise-backend/internal/dto"
	"spendwise-backend/internal/middleware"
	"spendwise-backend/internal/models"
	"spendwise-backend/internal/services"
	"spendwise-backend/internal/utils"
)

// AuthHandler handles authentication and account requests
type AuthHandler struct {
	auth *services.AuthService
	jwt  *config.JWTConfig
}

// NewAuthHandler creates a new AuthHandler instance
func NewAuthHandler(auth *services.AuthService, jwtCfg *config.JWTConfig) *AuthHandler {
	return &AuthHandler{auth: auth, jwt: jwtCfg}
}

// Register handles user registration
// @Summary Register a new user
// @Description Create a new account with name, email and password
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "User registration data"
// @Success 201 {object} dto.MessageResponse "User registered successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or email already registered"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	if _, err := h.auth.Register(r.Context(), req.Name, req.Email, req.Password); err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusCreated, dto.MessageResponse{Message: "User registered successfully"})
}

// Login handles user login
// @Summary Login user
// @Description Authenticate with email and password and receive a session token
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.LoginResponse "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	user, err := h.auth.Verify(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	token, err := middleware.GenerateToken(user.ID, h.jwt)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.LoginResponse{
		Token: token,
		User: dto.UserSummary{
			ID:    user.ID.String(),
			Name:  user.Name,
			Email: user.Email,
		},
	})
}

// Me returns the authenticated user
// @Summary Current user
// @Tags authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /auth/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	user, err := h.auth.GetUser(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, toUserResponse(user))
}

// UpdateProfile changes the display name
// @Summary Update profile
// @Tags authentication
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateProfileRequest true "New name"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /auth/update-profile [put]
func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	user, err := h.auth.UpdateName(r.Context(), userID, req.Name)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, toUserResponse(user))
}

// DeleteAccount removes the user and all of their data
// @Summary Delete account
// @Description Deletes every expense and budget of the user, then the user
// @Tags authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /auth/delete-account [delete]
func (h *AuthHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	if err := h.auth.DeleteAccount(r.Context(), userID); err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{
		Message: "Account and all associated data deleted successfully.",
	})
}

func toUserResponse(u *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID.String(),
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: utils.FormatTimestamp(u.CreatedAt),
		UpdatedAt: utils.FormatTimestamp(u.UpdatedAt),
	}
}
