package deleteEvent

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

type DeleteResponse struct {
	response.Response
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventDeleter
type EventDeleter interface {
	DeleteEvent(id int) error
}

func New(log *slog.Logger, events EventDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.deleteEvent.New"

		log = log.With(slog.String("op", op))

		if !auth.IsAdmin(r.Context()) {
			log.Info("non-admin tried to delete event")
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, response.Error("admin access required"))
			return
		}

		eventID, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			log.Error("invalid event id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event id format"))
			return
		}

		log = log.With(slog.Int("event_id", eventID))

		if err = events.DeleteEvent(eventID); err != nil {
			if errors.Is(err, storage.ErrEventNotFound) {
				log.Info("event not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
				return
			}

			log.Error("failed to delete event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to delete event"))
			return
		}

		log.Info("event deleted")

		responseOK(w, r)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, DeleteResponse{
		Response: response.OK(),
	})
}
