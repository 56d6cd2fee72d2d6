package getMyBookings

import (
	"log/slog"
	"net/http"

	"slotBooker/internal/http-server/middleware/auth"
	"slotBooker/internal/lib/api/response"
	"slotBooker/internal/lib/logger/sl"
	"slotBooker/internal/models"

	"github.com/go-chi/render"
)

type BookingsResponse struct {
	response.Response
	Bookings []models.UserBooking `json:"bookings"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserBookingsGetter
type UserBookingsGetter interface {
	GetUserBookings(userID int) ([]models.UserBooking, error)
}

func New(log *slog.Logger, bookings UserBookingsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.getMyBookings.New"

		log = log.With(slog.String("op", op))

		userID, ok := auth.UserID(r.Context())
		if !ok {
			log.Error("no user identity in context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authentication required"))
			return
		}

		log = log.With(slog.Int("user_id", userID))

		list, err := bookings.GetUserBookings(userID)
		if err != nil {
			log.Error("failed to get bookings", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get bookings"))
			return
		}

		log.Info("bookings retrieved", slog.Int("count", len(list)))

		responseOK(w, r, list)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, bookings []models.UserBooking) {
	render.JSON(w, r, BookingsResponse{
		Response: response.OK(),
		Bookings: bookings,
	})
}
