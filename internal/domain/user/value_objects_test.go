package user_test

import (
	"testing"

	"loyalty-coupon-api/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	cases := []struct {
		name  string
		input string
		errIs error
	}{
		{name: "valid email", input: "test@example.com"},
		{name: "trims surrounding whitespace", input: "  test@example.com  "},
		{name: "empty", input: "", errIs: user.ErrInvalidEmail},
		{name: "missing at sign", input: "testexample.com", errIs: user.ErrInvalidEmail},
		{name: "missing domain", input: "test@", errIs: user.ErrInvalidEmail},
		{name: "missing tld", input: "test@example", errIs: user.ErrInvalidEmail},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			email, err := user.NewEmail(tc.input)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "test@example.com", email.Value())
		})
	}
}

func TestNewPassword(t *testing.T) {
	cases := []struct {
		name  string
		input string
		errIs error
	}{
		{name: "8 chars is the lower bound", input: "12345678"},
		{name: "7 chars rejected", input: "1234567", errIs: user.ErrPasswordTooWeak},
		{name: "empty rejected", input: "", errIs: user.ErrPasswordTooWeak},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pw, err := user.NewPassword(tc.input)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.input, pw.Value())
		})
	}
}

func TestNewName(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
		errIs error
	}{
		{name: "valid name", input: "Alice", want: "Alice"},
		{name: "trims whitespace", input: "  Alice  ", want: "Alice"},
		{name: "empty rejected", input: "", errIs: user.ErrInvalidName},
		{name: "whitespace only rejected", input: "   ", errIs: user.ErrInvalidName},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			n, err := user.NewName(tc.input)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, n.Value())
		})
	}
}

func TestNewRole(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  user.Role
		errIs error
	}{
		{name: "admin", input: "admin", want: user.RoleAdmin},
		{name: "client", input: "client", want: user.RoleClient},
		{name: "unknown role rejected", input: "superuser", errIs: user.ErrInvalidRole},
		{name: "empty rejected", input: "", errIs: user.ErrInvalidRole},
		{name: "case sensitive", input: "Admin", errIs: user.ErrInvalidRole},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			role, err := user.NewRole(tc.input)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, role)
			assert.True(t, role.IsValid())
		})
	}
}
