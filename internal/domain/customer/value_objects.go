package customer

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail = errors.New("invalid email format")
	ErrNameRequired = errors.New("customer name is required")
	ErrNameTooLong  = errors.New("customer name is too long")
)

const MaxNameLength = 200

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

// NewEmail lower-cases the address so lookups and ownership checks compare equal.
func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string { return e.value }
func (e Email) IsZero() bool  { return e.value == "" }

// Contact identifies whoever holds a claim. Staff walk-ins have a name only.
type Contact struct {
	name  string
	email Email
	phone string
}

func NewContact(name, email, phone string) (Contact, error) {
	c, err := NewWalkIn(name)
	if err != nil {
		return Contact{}, err
	}
	e, err := NewEmail(email)
	if err != nil {
		return Contact{}, err
	}
	c.email = e
	c.phone = strings.TrimSpace(phone)
	return c, nil
}

func NewWalkIn(name string) (Contact, error) {
	n := strings.TrimSpace(name)
	if n == "" {
		return Contact{}, ErrNameRequired
	}
	if len(n) > MaxNameLength {
		return Contact{}, ErrNameTooLong
	}
	return Contact{name: n}, nil
}

// ReconstructContact skips validation for stored rows.
func ReconstructContact(name, email, phone string) Contact {
	return Contact{name: name, email: Email{value: email}, phone: phone}
}

func (c Contact) Name() string  { return c.name }
func (c Contact) Email() Email  { return c.email }
func (c Contact) Phone() string { return c.phone }

// Matches compares emails case-insensitively. An empty email never matches.
func (c Contact) Matches(email string) bool {
	e := strings.TrimSpace(email)
	return e != "" && !c.email.IsZero() && strings.EqualFold(c.email.value, e)
}
