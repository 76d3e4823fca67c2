package password_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"barbershop/shared/password"
)

func TestHash(t *testing.T) {
	tests := []struct {
		name    string
		plain   string
		wantErr error
	}{
		{name: "regular password", plain: "correct horse battery"},
		{name: "exactly max length", plain: strings.Repeat("a", password.MaxLength)},
		{name: "unicode", plain: "Zürich-Bärte-2026"},
		{name: "empty", plain: "", wantErr: password.ErrEmptyPassword},
		{name: "too long", plain: strings.Repeat("a", password.MaxLength+1), wantErr: password.ErrTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hashed, err := password.Hash(tt.plain)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, hashed)

				return
			}

			require.NoError(t, err)
			assert.NotEqual(t, tt.plain, hashed)

			cost, err := bcrypt.Cost([]byte(hashed))
			require.NoError(t, err)
			assert.Equal(t, password.Cost, cost)
		})
	}
}

func TestHashIsSalted(t *testing.T) {
	first, err := password.Hash("same-secret")
	require.NoError(t, err)

	second, err := password.Hash("same-secret")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.NoError(t, password.Verify("same-secret", first))
	assert.NoError(t, password.Verify("same-secret", second))
}

func TestVerify(t *testing.T) {
	hashed, err := password.Hash("shave-and-a-haircut")
	require.NoError(t, err)

	tests := []struct {
		name    string
		plain   string
		hash    string
		wantErr error
	}{
		{name: "match", plain: "shave-and-a-haircut", hash: hashed},
		{name: "mismatch", plain: "two-bits", hash: hashed, wantErr: password.ErrInvalidPassword},
		{name: "case sensitive", plain: "SHAVE-AND-A-HAIRCUT", hash: hashed, wantErr: password.ErrInvalidPassword},
		{name: "empty password", plain: "", hash: hashed, wantErr: password.ErrInvalidPassword},
		{name: "empty hash", plain: "shave-and-a-haircut", hash: "", wantErr: password.ErrInvalidPassword},
		{name: "malformed hash", plain: "shave-and-a-haircut", hash: "not-a-bcrypt-hash", wantErr: password.ErrVerifyingPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := password.Verify(tt.plain, tt.hash)

			if tt.wantErr == nil {
				assert.NoError(t, err)

				return
			}

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
