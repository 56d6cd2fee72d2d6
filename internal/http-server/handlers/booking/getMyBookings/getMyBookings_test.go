package getMyBookings

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"slotBooker/internal/http-server/handlers/booking/getMyBookings/mocks"
	"slotBooker/internal/http-server/middleware/auth"
	"slotBooker/internal/lib/logger/handlers/slogdiscard"
	"slotBooker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMyBookingsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		authenticated  bool
		mockSetup      func(m *mocks.UserBookingsGetter)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:          "Success with event joined",
			authenticated: true,
			mockSetup: func(m *mocks.UserBookingsGetter) {
				m.On("GetUserBookings", 42).Return([]models.UserBooking{
					{
						Booking: models.Booking{ID: 10, EventID: 1, UserID: 42, Slots: 2},
						Event:   models.Event{ID: 1, Name: "GopherCon", Location: "Berlin", Capacity: 100, BookedSlots: 2},
					},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var resp BookingsResponse
				require.NoError(t, json.Unmarshal([]byte(body), &resp))
				assert.Equal(t, "OK", resp.Status)
				require.Len(t, resp.Bookings, 1)
				assert.Equal(t, 2, resp.Bookings[0].Slots)
				assert.Equal(t, "GopherCon", resp.Bookings[0].Event.Name)
			},
		},
		{
			name:           "Unauthenticated",
			authenticated:  false,
			mockSetup:      func(m *mocks.UserBookingsGetter) {},
			expectedStatus: http.StatusUnauthorized,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"status":"Error","error":"authentication required"}`, body)
			},
		},
		{
			name:          "Internal server error",
			authenticated: true,
			mockSetup: func(m *mocks.UserBookingsGetter) {
				m.On("GetUserBookings", 42).Return(nil, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"status":"Error","error":"failed to get bookings"}`, body)
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockGetter := mocks.NewUserBookingsGetter(t)
			tc.mockSetup(mockGetter)

			handler := New(logger, mockGetter)

			req, err := http.NewRequest("GET", "/bookings/me", nil)
			require.NoError(t, err)
			if tc.authenticated {
				req = req.WithContext(auth.WithIdentity(req.Context(), 42, false))
			}

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			tc.checkBody(t, rr.Body.String())
		})
	}
}
