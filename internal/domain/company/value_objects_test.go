package company_test

import (
	"testing"

	"loyalty-coupon-api/internal/domain/company"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewName(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
		errIs error
	}{
		{name: "valid name", input: "Acme Coffee", want: "Acme Coffee"},
		{name: "trims whitespace", input: "  Acme Coffee ", want: "Acme Coffee"},
		{name: "empty rejected", input: "", errIs: company.ErrInvalidName},
		{name: "whitespace only rejected", input: "  ", errIs: company.ErrInvalidName},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			n, err := company.NewName(tc.input)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, n.Value())
		})
	}
}
