package password_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frontdesk/shared/password"
)

func TestHash(t *testing.T) {
	tests := []struct {
		name        string
		password    string
		expectedErr error
	}{
		{
			name:     "valid password",
			password: "validPassword123",
		},
		{
			name:        "empty password",
			password:    "",
			expectedErr: password.ErrEmptyPassword,
		},
		{
			name:     "password with special characters",
			password: "P@ssw0rd!#$%^&*()",
		},
		{
			name:        "password beyond bcrypt limit",
			password:    strings.Repeat("a", 100),
			expectedErr: password.ErrHashingPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := password.Hash(tt.password)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Empty(t, hash)

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, hash)
			assert.NoError(t, password.Verify(tt.password, hash))
		})
	}
}

func TestVerify(t *testing.T) {
	hash, err := password.Hash("correct-horse")
	require.NoError(t, err)

	tests := []struct {
		name        string
		password    string
		hash        string
		expectedErr error
	}{
		{
			name:     "matching password",
			password: "correct-horse",
			hash:     hash,
		},
		{
			name:        "wrong password",
			password:    "battery-staple",
			hash:        hash,
			expectedErr: password.ErrInvalidPassword,
		},
		{
			name:        "empty password",
			password:    "",
			hash:        hash,
			expectedErr: password.ErrInvalidPassword,
		},
		{
			name:        "empty hash",
			password:    "correct-horse",
			hash:        "",
			expectedErr: password.ErrInvalidPassword,
		},
		{
			name:        "malformed hash",
			password:    "correct-horse",
			hash:        "not-a-bcrypt-hash",
			expectedErr: password.ErrVerifyingPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := password.Verify(tt.password, tt.hash)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestHashUsesRandomSalt(t *testing.T) {
	first, err := password.Hash("same-password")
	require.NoError(t, err)

	second, err := password.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.NoError(t, password.Verify("same-password", first))
	assert.NoError(t, password.Verify("same-password", second))
}
