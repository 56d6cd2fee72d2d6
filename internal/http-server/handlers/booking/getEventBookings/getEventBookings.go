package getEventBookings

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"slotBooker/internal/lib/api/response"
	"slotBooker/internal/lib/logger/sl"
	"slotBooker/internal/models"
	"slotBooker/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type BookingsResponse struct {
	response.Response
	Bookings []models.EventBooking `json:"bookings"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventBookingsGetter
type EventBookingsGetter interface {
	GetEventBookings(eventID int) ([]models.EventBooking, error)
}

func New(log *slog.Logger, bookings EventBookingsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.getEventBookings.New"

		log = log.With(slog.String("op", op))

		eventID, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			log.Error("invalid event id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event id format"))
			return
		}

		log = log.With(slog.Int("event_id", eventID))

		list, err := bookings.GetEventBookings(eventID)
		if err != nil {
			if errors.Is(err, storage.ErrEventNotFound) {
				log.Info("event not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
				return
			}

			log.Error("failed to get event bookings", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get event bookings"))
			return
		}

		log.Info("event bookings retrieved", slog.Int("count", len(list)))

		responseOK(w, r, list)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, bookings []models.EventBooking) {
	render.JSON(w, r, BookingsResponse{
		Response: response.OK(),
		Bookings: bookings,
	})
}
