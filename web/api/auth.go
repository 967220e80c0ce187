package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"pageforge/models"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
	"github.com/rohanthewiz/serr"
)

// AuthResponse contains the user and token returned on successful authentication
type AuthResponse struct {
	User  models.UserOutput `json:"user"`
	Token string            `json:"token"`
}

// Register creates a new user account and returns a JWT token.
// POST /api/auth/register
func Register(ctx rweb.Context) error {
	var input models.UserRegisterInput
	if err := json.Unmarshal(ctx.Request().Body(), &input); err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request body")
	}

	if input.Username == "" {
		return writeError(ctx, http.StatusBadRequest, "username is required")
	}
	if input.Password == "" {
		return writeError(ctx, http.StatusBadRequest, "password is required")
	}

	user, err := models.CreateUser(input)
	if err != nil {
		errMsg := err.Error()
		if strings.Contains(errMsg, "already exists") {
			return writeError(ctx, http.StatusConflict, errMsg)
		}
		if strings.Contains(errMsg, "must be") || strings.Contains(errMsg, "can only") {
			return writeError(ctx, http.StatusBadRequest, errMsg)
		}
		logger.LogErr(serr.Wrap(err, "failed to create user"), "username", input.Username)
		return writeError(ctx, http.StatusInternalServerError, "failed to create user")
	}

	token, err := models.GenerateToken(user)
	if err != nil {
		logger.LogErr(serr.Wrap(err, "failed to generate token"), "username", input.Username)
		return writeError(ctx, http.StatusInternalServerError, "failed to generate token")
	}

	logger.Info("User registered", "username", user.Username)
	return writeSuccess(ctx, http.StatusCreated, AuthResponse{User: user.ToOutput(), Token: token})
}

// Login authenticates a user and returns a JWT token.
// POST /api/auth/login
func Login(ctx rweb.Context) error {
	var input models.UserLoginInput
	if err := json.Unmarshal(ctx.Request().Body(), &input); err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request body")
	}

	if input.Username == "" || input.Password == "" {
		return writeError(ctx, http.StatusBadRequest, "username and password are required")
	}

	user, err := models.Authenticate(input)
	if err != nil {
		logger.LogErr(serr.Wrap(err, "authentication failed"), "username", input.Username)
		return writeError(ctx, http.StatusInternalServerError, "authentication failed")
	}
	if user == nil {
		// Same message for unknown user and wrong password
		return writeError(ctx, http.StatusUnauthorized, "invalid credentials")
	}

	token, err := models.GenerateToken(user)
	if err != nil {
		logger.LogErr(serr.Wrap(err, "failed to generate token"), "username", input.Username)
		return writeError(ctx, http.StatusInternalServerError, "failed to generate token")
	}

	logger.Info("User logged in", "username", user.Username)
	return writeSuccess(ctx, http.StatusOK, AuthResponse{User: user.ToOutput(), Token: token})
}
