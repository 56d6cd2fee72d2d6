package createEvent

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"slotBooker/internal/http-server/middleware/auth"
	"slotBooker/internal/lib/api/response"
	"slotBooker/internal/lib/logger/sl"
	"slotBooker/internal/models"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type EventRequest struct {
	Name     string    `json:"name" validate:"required"`
	Date     time.Time `json:"date" validate:"required"`
	Location string    `json:"location" validate:"required"`
	Capacity int       `json:"capacity" validate:"required,gt=0"`
}

type EventResponse struct {
	response.Response
	Event *models.Event `json:"event"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventSaver
type EventSaver interface {
	CreateEvent(name string, date time.Time, location string, capacity int) (*models.Event, error)
}

func New(log *slog.Logger, events EventSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.createEvent.New"

		log = log.With(slog.String("op", op))

		if !auth.IsAdmin(r.Context()) {
			log.Info("non-admin tried to create event")
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, response.Error("admin access required"))
			return
		}

		var req EventRequest

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

		event, err := events.CreateEvent(req.Name, req.Date, req.Location, req.Capacity)
		if err != nil {
			log.Error("failed to add event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to add event"))
			return
		}

		log.Info("event added", slog.Int("id", event.ID))

		responseOK(w, r, event)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, event *models.Event) {
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, EventResponse{
		Response: response.OK(),
		Event:    event,
	})
}
