package services

import (
	"database/sql"

	"adminboard/internal/auth"
	"adminboard/internal/listing"
	"adminboard/internal/repositories"
)

// ListService is the identity gate in front of every list endpoint: the
// caller must present a resolvable token AND still exist as an active user.
type ListService struct {
	Users repositories.UserRepository
}

func (s ListService) requireUser(identity auth.Identity) error {
	if !identity.Resolved() {
		return auth.ErrInvalidToken
	}
	if _, err := s.Users.FindActiveByID(identity.UserID); err != nil {
		if err == sql.ErrNoRows {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

// ListRecords runs the shared list contract for one resource: identity check,
// parameter normalization, then the resource's count + clamped page fetch.
// Read-only and idempotent for a fixed store state.
func ListRecords[T any](s ListService, identity auth.Identity, p listing.Params, fetch func(listing.Params) ([]T, int, error)) (listing.Page[T], error) {
	if err := s.requireUser(identity); err != nil {
		return listing.Page[T]{}, err
	}

	p = p.Normalize()
	records, total, err := fetch(p)
	if err != nil {
		return listing.Page[T]{}, err
	}

	return listing.Page[T]{
		Records:    records,
		TotalPages: listing.TotalPages(total, p.PageSize),
	}, nil
}
