package services

import (
	"database/sql"
	"errors"

	"phonerdokan/internal/domain"
	"phonerdokan/internal/repos"
)

var ErrForbidden = errors.New("forbidden")

// AuthzService decides whether a principal may perform a role-gated action.
// The role is always re-read from the user store, never trusted from the
// token: a role change must take effect on the very next request.
type AuthzService struct {
	Users *repos.UserRepo
}

func NewAuthzService(users *repos.UserRepo) *AuthzService { return &AuthzService{Users: users} }

// Principal resolves an email to the live user record. A missing record
// yields (nil, nil) so callers can deny without treating it as a store error.
func (s *AuthzService) Principal(email string) (*domain.User, error) {
	u, err := s.Users.ByEmail(email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return u, nil
}

// Authorize allows the action only when the principal's current role equals
// the required one. Unknown principals are Forbidden, never a crash.
func (s *AuthzService) Authorize(email, requiredRole string) error {
	u, err := s.Principal(email)
	if err != nil {
		return err
	}
	if u == nil || u.Role != requiredRole {
		return ErrForbidden
	}
	return nil
}

// AuthorizeOwner layers the seller ownership rule on top of the role check:
// a seller may only touch products whose sellerEmail matches their own.
func (s *AuthzService) AuthorizeOwner(email, ownerEmail string) error {
	if err := s.Authorize(email, domain.RoleSeller); err != nil {
		return err
	}
	if email != ownerEmail {
		return ErrForbidden
	}
	return nil
}
