package login

import (
	"errors"
	"log/slog"
	"net/http"

	"slotBooker/internal/lib/api/response"
	"slotBooker/internal/lib/jwt"
	"slotBooker/internal/lib/logger/sl"
	"slotBooker/internal/models"
	"slotBooker/internal/storage"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	response.Response
	Token string `json:"token"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserProvider
type UserProvider interface {
	GetUserByUsername(username string) (*models.User, error)
}

// New returns the login handler. Unknown usernames and wrong passwords
// produce the identical response so callers cannot enumerate accounts.
func New(log *slog.Logger, users UserProvider, tokens *jwt.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.login.New"

		log = log.With(slog.String("op", op))

		var req LoginRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.String("username", req.Username))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		user, err := users.GetUserByUsername(req.Username)
		if err != nil {
			if errors.Is(err, storage.ErrUserNotFound) {
				log.Info("unknown username", slog.String("username", req.Username))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid credentials"))
				return
			}

			log.Error("failed to get user", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to login"))
			return
		}

		if err = bcrypt.CompareHashAndPassword([]byte(user.PassHash), []byte(req.Password)); err != nil {
			log.Info("wrong password", slog.String("username", req.Username))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid credentials"))
			return
		}

		token, err := tokens.Generate(user.ID, user.IsAdmin)
		if err != nil {
			log.Error("failed to generate token", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to login"))
			return
		}

		log.Info("user logged in", slog.Int("user_id", user.ID))

		responseOK(w, r, token)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, token string) {
	render.JSON(w, r, LoginResponse{
		Response: response.OK(),
		Token:    token,
	})
}
