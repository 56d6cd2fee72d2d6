package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	t.Parallel()

	m := NewManager("test-secret", time.Hour)

	token, err := m.Generate(42, true)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.Validate(token)
	require.NoError(t, err)

	userID, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, 42, userID)
	assert.True(t, claims.IsAdmin)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestValidateExpiredToken(t *testing.T) {
	t.Parallel()

	m := NewManager("test-secret", -time.Minute)

	token, err := m.Generate(42, false)
	require.NoError(t, err)

	_, err = m.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateWrongSecret(t *testing.T) {
	t.Parallel()

	token, err := NewManager("secret-one", time.Hour).Generate(42, false)
	require.NoError(t, err)

	_, err = NewManager("secret-two", time.Hour).Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateGarbage(t *testing.T) {
	t.Parallel()

	m := NewManager("test-secret", time.Hour)

	_, err := m.Validate("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = m.Validate("")
	assert.ErrorIs(t, err, ErrMissingToken)

	_, err = m.Validate("   ")
	assert.ErrorIs(t, err, ErrMissingToken)
}

func TestTokenFromHeader(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		header    string
		wantToken string
		wantErr   bool
	}{
		{name: "Valid bearer", header: "Bearer abc.def.ghi", wantToken: "abc.def.ghi"},
		{name: "Lowercase scheme", header: "bearer abc.def.ghi", wantToken: "abc.def.ghi"},
		{name: "Empty header", header: "", wantErr: true},
		{name: "No scheme", header: "abc.def.ghi", wantErr: true},
		{name: "Wrong scheme", header: "Basic abc.def.ghi", wantErr: true},
		{name: "Scheme only", header: "Bearer", wantErr: true},
		{name: "Too many parts", header: "Bearer a b", wantErr: true},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			token, err := TokenFromHeader(tc.header)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrMissingToken)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantToken, token)
		})
	}
}
