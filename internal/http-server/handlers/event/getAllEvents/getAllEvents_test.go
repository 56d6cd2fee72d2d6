package getAllEvents

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"slotBooker/internal/http-server/handlers/event/getAllEvents/mocks"
	"slotBooker/internal/lib/logger/handlers/slogdiscard"
	"slotBooker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAllEventsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	date := time.Date(2026, 10, 1, 19, 0, 0, 0, time.UTC)

	testCases := []struct {
		name           string
		mockSetup      func(m *mocks.EventsGetter)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name: "Success with events",
			mockSetup: func(m *mocks.EventsGetter) {
				m.On("GetAllEvents").Return([]models.Event{
					{ID: 1, Name: "GopherCon", Date: date, Location: "Berlin", Capacity: 100, BookedSlots: 40},
					{ID: 2, Name: "FOSDEM", Date: date.AddDate(0, 1, 0), Location: "Brussels", Capacity: 500},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var resp EventsResponse
				require.NoError(t, json.Unmarshal([]byte(body), &resp))
				assert.Equal(t, "OK", resp.Status)
				require.Len(t, resp.Events, 2)
				assert.Equal(t, 40, resp.Events[0].BookedSlots)
				assert.Equal(t, "FOSDEM", resp.Events[1].Name)
			},
		},
		{
			name: "Success with no events",
			mockSetup: func(m *mocks.EventsGetter) {
				m.On("GetAllEvents").Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
			},
		},
		{
			name: "Internal server error",
			mockSetup: func(m *mocks.EventsGetter) {
				m.On("GetAllEvents").Return(nil, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"status":"Error","error":"failed to get events"}`, body)
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockGetter := mocks.NewEventsGetter(t)
			tc.mockSetup(mockGetter)

			handler := New(logger, mockGetter)

			req, err := http.NewRequest("GET", "/events", nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			tc.checkBody(t, rr.Body.String())
		})
	}
}
