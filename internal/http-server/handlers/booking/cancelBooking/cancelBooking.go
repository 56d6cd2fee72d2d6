package cancelBooking

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"slotBooker/internal/http-server/middleware/auth"
	"slotBooker/internal/lib/api/response"
	"slotBooker/internal/lib/logger/sl"
	"slotBooker/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type CancelResponse struct {
	response.Response
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingCanceler
type BookingCanceler interface {
	CancelBooking(bookingID, userID int) error
}

func New(log *slog.Logger, bookings BookingCanceler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.cancelBooking.New"

		log = log.With(slog.String("op", op))

		userID, ok := auth.UserID(r.Context())
		if !ok {
			log.Error("no user identity in context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authentication required"))
			return
		}

		bookingID, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			log.Error("invalid booking id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid booking id format"))
			return
		}

		log = log.With(slog.Int("booking_id", bookingID), slog.Int("user_id", userID))

		if err = bookings.CancelBooking(bookingID, userID); err != nil {
			switch {
			case errors.Is(err, storage.ErrBookingNotFound):
				log.Info("booking not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("booking not found"))
			case errors.Is(err, storage.ErrNotOwner):
				log.Info("caller does not own booking")
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("not authorized to cancel this booking"))
			default:
				log.Error("failed to cancel booking", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to cancel booking"))
			}
			return
		}

		log.Info("booking canceled")

		responseOK(w, r)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, CancelResponse{
		Response: response.OK(),
	})
}
