package updateEvent

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"slotBooker/internal/http-server/middleware/auth"
	"slotBooker/internal/lib/api/response"
	"slotBooker/internal/lib/logger/sl"
	"slotBooker/internal/models"
	"slotBooker/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

// UpdateRequest carries only the fields the caller wants to change;
// nil fields are left untouched.
type UpdateRequest struct {
	Name     *string    `json:"name" validate:"omitempty,min=1"`
	Date     *time.Time `json:"date"`
	Location *string    `json:"location" validate:"omitempty,min=1"`
	Capacity *int       `json:"capacity" validate:"omitempty,gt=0"`
}

type UpdateResponse struct {
	response.Response
	Event *models.Event `json:"event"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventUpdater
type EventUpdater interface {
	UpdateEvent(id int, name *string, date *time.Time, location *string, capacity *int) (*models.Event, error)
}

func New(log *slog.Logger, events EventUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.updateEvent.New"

		log = log.With(slog.String("op", op))

		if !auth.IsAdmin(r.Context()) {
			log.Info("non-admin tried to update event")
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

		var req UpdateRequest

		err = render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		event, err := events.UpdateEvent(eventID, req.Name, req.Date, req.Location, req.Capacity)
		if err != nil {
			if errors.Is(err, storage.ErrEventNotFound) {
				log.Info("event not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
				return
			}

			log.Error("failed to update event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to update event"))
			return
		}

		log.Info("event updated")

		responseOK(w, r, event)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, event *models.Event) {
	render.JSON(w, r, UpdateResponse{
		Response: response.OK(),
		Event:    event,
	})
}
