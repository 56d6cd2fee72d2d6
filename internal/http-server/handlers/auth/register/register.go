package register

import (
	"errors"
	"log/slog"
	"net/http"

	"slotBooker/internal/lib/api/response"
	"slotBooker/internal/lib/logger/sl"
	"slotBooker/internal/storage"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
	IsAdmin  bool   `json:"is_admin"`
}

type RegisterResponse struct {
	response.Response
	UserID int `json:"user_id"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserSaver
type UserSaver interface {
	SaveUser(username, passHash string, isAdmin bool) (int, error)
}

func New(log *slog.Logger, users UserSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.register.New"

		log = log.With(slog.String("op", op))

		var req RegisterRequest

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

		passHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Error("failed to hash password", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to register user"))
			return
		}

		userID, err := users.SaveUser(req.Username, string(passHash), req.IsAdmin)
		if err != nil {
			if errors.Is(err, storage.ErrUserExists) {
				log.Info("username already taken", slog.String("username", req.Username))
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("username already taken"))
				return
			}

			log.Error("failed to save user", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to register user"))
			return
		}

		log.Info("user registered", slog.Int("user_id", userID))

		responseOK(w, r, userID)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, userID int) {
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, RegisterResponse{
		Response: response.OK(),
		UserID:   userID,
	})
}
