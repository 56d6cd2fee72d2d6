package createBooking

import (
	"errors"
	"log/slog"
	"net/http"

	"slotBooker/internal/http-server/middleware/auth"
	"slotBooker/internal/lib/api/response"
	"slotBooker/internal/lib/logger/sl"
	"slotBooker/internal/models"
	"slotBooker/internal/storage"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type BookingRequest struct {
	Event int `json:"event" validate:"required"`
	Slots int `json:"slots" validate:"required,gt=0"`
}

type BookingResponse struct {
	response.Response
	Booking *models.Booking `json:"booking"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingCreator
type BookingCreator interface {
	CreateBooking(eventID, userID, slots int) (*models.Booking, error)
}

func New(log *slog.Logger, bookings BookingCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.createBooking.New"

		log = log.With(slog.String("op", op))

		userID, ok := auth.UserID(r.Context())
		if !ok {
			log.Error("no user identity in context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authentication required"))
			return
		}

		log = log.With(slog.Int("user_id", userID))

		var req BookingRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		booking, err := bookings.CreateBooking(req.Event, userID, req.Slots)
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrEventNotFound):
				log.Info("event not found", slog.Int("event_id", req.Event))
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
			case errors.Is(err, storage.ErrNotEnoughSlots):
				log.Info("not enough slots", slog.Int("event_id", req.Event), slog.Int("slots", req.Slots))
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("not enough slots available"))
			default:
				log.Error("failed to create booking", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to create booking"))
			}
			return
		}

		log.Info("booking created", slog.Int("booking_id", booking.ID))

		responseOK(w, r, booking)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, booking *models.Booking) {
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, BookingResponse{
		Response: response.OK(),
		Booking:  booking,
	})
}
