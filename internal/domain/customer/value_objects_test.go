//go:build unit

package customer_test

import (
	"strings"
	"testing"

	"queue-engine/internal/domain/customer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContact(t *testing.T) {
	testCases := []struct {
		name  string
		cname string
		email string
		errIs error
	}{
		{name: "valid", cname: "Ana", email: "ana@example.com"},
		{name: "blank name", cname: " ", email: "ana@example.com", errIs: customer.ErrNameRequired},
		{name: "long name", cname: strings.Repeat("a", customer.MaxNameLength+1), email: "ana@example.com", errIs: customer.ErrNameTooLong},
		{name: "missing email", cname: "Ana", email: "", errIs: customer.ErrInvalidEmail},
		{name: "malformed email", cname: "Ana", email: "ana@", errIs: customer.ErrInvalidEmail},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := customer.NewContact(tc.cname, tc.email, "")
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestContact_Matches(t *testing.T) {
	c, err := customer.NewContact(" Ana ", " Ana@Example.com ", "123")
	require.NoError(t, err)

	assert.Equal(t, "Ana", c.Name())
	assert.Equal(t, "ana@example.com", c.Email().Value())
	assert.True(t, c.Matches("ANA@example.com"))
	assert.False(t, c.Matches("bob@example.com"))
	assert.False(t, c.Matches(""))

	walkIn, err := customer.NewWalkIn("Walk-in")
	require.NoError(t, err)
	assert.False(t, walkIn.Matches(""))
	assert.True(t, walkIn.Email().IsZero())
}
