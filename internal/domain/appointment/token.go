package appointment

import (
	"crypto/rand"
	"encoding/base64"
)

const tokenBytes = 32

// ManagementToken grants anonymous access to a single appointment.
type ManagementToken string

func NewManagementToken() (ManagementToken, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return ManagementToken(base64.RawURLEncoding.EncodeToString(b)), nil
}

func (t ManagementToken) String() string { return string(t) }
