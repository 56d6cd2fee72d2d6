package deleteEvent

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"slotBooker/internal/http-server/handlers/event/deleteEvent/mocks"
	"slotBooker/internal/http-server/middleware/auth"
	"slotBooker/internal/lib/logger/handlers/slogdiscard"
	"slotBooker/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteEventHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		isAdmin        bool
		eventID        string
		mockSetup      func(m *mocks.EventDeleter)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:    "Success",
			isAdmin: true,
			eventID: "3",
			mockSetup: func(m *mocks.EventDeleter) {
				m.On("DeleteEvent", 3).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK"}`,
		},
		{
			name:           "Non-admin forbidden",
			isAdmin:        false,
			eventID:        "3",
			mockSetup:      func(m *mocks.EventDeleter) {},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"status":"Error","error":"admin access required"}`,
		},
		{
			name:           "Invalid event id format",
			isAdmin:        true,
			eventID:        "abc",
			mockSetup:      func(m *mocks.EventDeleter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid event id format"}`,
		},
		{
			name:    "Event not found",
			isAdmin: true,
			eventID: "99",
			mockSetup: func(m *mocks.EventDeleter) {
				m.On("DeleteEvent", 99).Return(storage.ErrEventNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"event not found"}`,
		},
		{
			name:    "Internal server error",
			isAdmin: true,
			eventID: "3",
			mockSetup: func(m *mocks.EventDeleter) {
				m.On("DeleteEvent", 3).Return(assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to delete event"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockDeleter := mocks.NewEventDeleter(t)
			tc.mockSetup(mockDeleter)

			handler := New(logger, mockDeleter)

			router := chi.NewRouter()
			router.Delete("/events/{id}", handler)

			req, err := http.NewRequest("DELETE", "/events/"+tc.eventID, nil)
			require.NoError(t, err)
			req = req.WithContext(auth.WithIdentity(req.Context(), 1, tc.isAdmin))

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
		})
	}
}
