package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/schemehub/schemehub/internal/apperr"
	"github.com/schemehub/schemehub/internal/auth"
	"github.com/schemehub/schemehub/internal/domain"
	"github.com/schemehub/schemehub/internal/httpserver/deps"
	"github.com/schemehub/schemehub/internal/logger"
)

var validate = validator.New()

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required,len=10,numeric"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=user admin"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string         `json:"token"`
	User  domain.Summary `json:"user"`
}

// Register creates a new account. The username is the uniqueness boundary;
// a taken username comes back 409.
func Register(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, d.Logger, apperr.E(apperr.KindValidation, "Invalid request body"))
			return
		}
		req.Username = strings.TrimSpace(req.Username)
		req.Email = strings.TrimSpace(req.Email)
		req.Phone = strings.TrimSpace(req.Phone)

		if err := validate.Struct(&req); err != nil {
			writeError(w, d.Logger, apperr.Wrap(apperr.KindValidation, validationMessage(err), err))
			return
		}

		role := req.Role
		if role == "" {
			role = domain.RoleUser
		}

		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			writeError(w, d.Logger, apperr.Wrap(apperr.KindInternal, "", err))
			return
		}

		user := &domain.User{
			ID:           uuid.NewString(),
			Username:     req.Username,
			Email:        req.Email,
			Phone:        req.Phone,
			PasswordHash: hash,
			Role:         role,
			CreatedAt:    time.Now().UTC(),
		}

		if err := d.Users.CreateUser(r.Context(), user); err != nil {
			writeError(w, d.Logger, err)
			return
		}

		d.Logger.Info("user registered",
			logger.String("username", user.Username),
			logger.String("role", user.Role))
		writeJSON(w, http.StatusCreated, messageResponse{Message: "Registration successful."})
	}
}

// Login checks credentials and returns a signed token plus the account
// summary. An unknown username is 404, a wrong password 401.
func Login(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, d.Logger, apperr.E(apperr.KindValidation, "Invalid request body"))
			return
		}
		req.Username = strings.TrimSpace(req.Username)

		if err := validate.Struct(&req); err != nil {
			writeError(w, d.Logger, apperr.Wrap(apperr.KindValidation, validationMessage(err), err))
			return
		}

		user, err := d.Users.GetUserByUsername(r.Context(), req.Username)
		if err != nil {
			writeError(w, d.Logger, err)
			return
		}

		if !auth.CheckPassword(user.PasswordHash, req.Password) {
			writeError(w, d.Logger, apperr.E(apperr.KindUnauthorized, "Invalid credentials"))
			return
		}

		token, err := d.Tokens.Issue(user)
		if err != nil {
			writeError(w, d.Logger, apperr.Wrap(apperr.KindInternal, "", err))
			return
		}

		d.Logger.Info("user logged in", logger.String("username", user.Username))
		writeJSON(w, http.StatusOK, loginResponse{
			Token: token,
			User:  user.Summary(),
		})
	}
}

// validationMessage turns the first field violation into a client message.
func validationMessage(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return "Invalid request"
	}
	fe := verrs[0]
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return "Field '" + field + "' is required"
	case "min":
		return "Field '" + field + "' must be at least " + fe.Param() + " characters"
	case "email":
		return "Field 'email' must be a valid email address"
	case "len":
		return "Field '" + field + "' must be exactly " + fe.Param() + " characters"
	case "numeric":
		return "Field '" + field + "' must be numeric"
	case "oneof":
		return "Field '" + field + "' must be one of: " + fe.Param()
	default:
		return "Field '" + field + "' is invalid"
	}
}
