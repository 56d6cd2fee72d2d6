package login

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"slotBooker/internal/http-server/handlers/auth/login/mocks"
	"slotBooker/internal/lib/jwt"
	"slotBooker/internal/lib/logger/handlers/slogdiscard"
	"slotBooker/internal/models"
	"slotBooker/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testUser(t *testing.T, password string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return &models.User{
		ID:       42,
		Username: "alice",
		PassHash: string(hash),
		IsAdmin:  true,
	}
}

func TestLoginHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	tokens := jwt.NewManager("test-secret", time.Hour)

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(t *testing.T, m *mocks.UserProvider)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Success",
			requestBody: `{"username": "alice", "password": "secret123"}`,
			mockSetup: func(t *testing.T, m *mocks.UserProvider) {
				m.On("GetUserByUsername", "alice").Return(testUser(t, "secret123"), nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var resp LoginResponse
				require.NoError(t, json.Unmarshal([]byte(body), &resp))
				assert.Equal(t, "OK", resp.Status)

				claims, err := tokens.Validate(resp.Token)
				require.NoError(t, err)
				userID, err := claims.UserID()
				require.NoError(t, err)
				assert.Equal(t, 42, userID)
				assert.True(t, claims.IsAdmin)
			},
		},
		{
			name:        "Unknown username",
			requestBody: `{"username": "nobody", "password": "secret123"}`,
			mockSetup: func(t *testing.T, m *mocks.UserProvider) {
				m.On("GetUserByUsername", "nobody").Return(nil, storage.ErrUserNotFound)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid credentials"}`,
		},
		{
			name:        "Wrong password",
			requestBody: `{"username": "alice", "password": "wrongpass"}`,
			mockSetup: func(t *testing.T, m *mocks.UserProvider) {
				m.On("GetUserByUsername", "alice").Return(testUser(t, "secret123"), nil)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid credentials"}`,
		},
		{
			name:           "Missing password",
			requestBody:    `{"username": "alice"}`,
			mockSetup:      func(t *testing.T, m *mocks.UserProvider) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "Password")
			},
		},
		{
			name:           "Invalid JSON",
			requestBody:    `{`,
			mockSetup:      func(t *testing.T, m *mocks.UserProvider) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name:        "Internal server error",
			requestBody: `{"username": "alice", "password": "secret123"}`,
			mockSetup: func(t *testing.T, m *mocks.UserProvider) {
				m.On("GetUserByUsername", "alice").Return(nil, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to login"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockProvider := mocks.NewUserProvider(t)
			tc.mockSetup(t, mockProvider)

			handler := New(logger, mockProvider, tokens)

			req, err := http.NewRequest("POST", "/login", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}

// Unknown usernames and wrong passwords must be indistinguishable to the
// caller.
func TestLoginNoUserEnumeration(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	tokens := jwt.NewManager("test-secret", time.Hour)

	run := func(setup func(m *mocks.UserProvider), body string) *httptest.ResponseRecorder {
		m := mocks.NewUserProvider(t)
		setup(m)

		handler := New(logger, m, tokens)
		req := httptest.NewRequest("POST", "/login", bytes.NewBufferString(body))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr
	}

	unknownUser := run(func(m *mocks.UserProvider) {
		m.On("GetUserByUsername", "ghost").Return(nil, storage.ErrUserNotFound)
	}, `{"username": "ghost", "password": "whatever"}`)

	wrongPass := run(func(m *mocks.UserProvider) {
		m.On("GetUserByUsername", "alice").Return(testUser(t, "secret123"), nil)
	}, `{"username": "alice", "password": "whatever"}`)

	assert.Equal(t, unknownUser.Code, wrongPass.Code)
	assert.Equal(t, unknownUser.Body.String(), wrongPass.Body.String())
}
