package staff

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrInvalidRole     = errors.New("invalid role")
	ErrWrongBusiness   = errors.New("resource belongs to another business")
	ErrMissingBusiness = errors.New("staff member has no business")
)

type Role string

const (
	RoleOwner Role = "owner"
	RoleStaff Role = "staff"
)

func NewRole(s string) (Role, error) {
	r := Role(s)
	switch r {
	case RoleOwner, RoleStaff:
		return r, nil
	default:
		return "", ErrInvalidRole
	}
}

func (r Role) String() string { return string(r) }

// Member is an authenticated business user acting through the staff API.
type Member struct {
	userID     uuid.UUID
	businessID uuid.UUID
	role       Role
}

func NewMember(userID, businessID uuid.UUID, role Role) (Member, error) {
	if businessID == uuid.Nil {
		return Member{}, ErrMissingBusiness
	}
	if _, err := NewRole(role.String()); err != nil {
		return Member{}, err
	}
	return Member{userID: userID, businessID: businessID, role: role}, nil
}

func (m Member) UserID() uuid.UUID     { return m.userID }
func (m Member) BusinessID() uuid.UUID { return m.businessID }
func (m Member) Role() Role            { return m.role }

// Authorize checks that a resource owned by businessID may be managed by m.
func (m Member) Authorize(businessID uuid.UUID) error {
	if m.businessID == uuid.Nil || m.businessID != businessID {
		return ErrWrongBusiness
	}
	return nil
}
