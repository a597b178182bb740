package services

import (
	"database/sql"
	"errors"
	"time"

	"adminboard/internal/auth"
	"adminboard/internal/domain/models"
	"adminboard/internal/listing"
	"adminboard/internal/repositories"
	"adminboard/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

// ErrBadCredentials covers both unknown email and wrong password so login
// responses never reveal which one failed.
var ErrBadCredentials = errors.New("bad credentials")

const tokenTTL = 24 * time.Hour

type UserService struct {
	Lists     ListService
	Users     repositories.UserRepository
	Projects  repositories.ProjectRepository
	JWTSecret []byte
}

func (s UserService) Login(email, password string) (string, models.User, error) {
	email = utils.TrimOrEmpty(email)
	if email == "" || password == "" {
		return "", models.User{}, ErrBadCredentials
	}

	user, hash, err := s.Users.FindByEmail(email)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", models.User{}, ErrBadCredentials
		}
		return "", models.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return "", models.User{}, ErrBadCredentials
	}

	token, err := auth.Sign(s.JWTSecret, user.ID, user.Role, tokenTTL)
	if err != nil {
		return "", models.User{}, err
	}
	return token, user, nil
}

func (s UserService) Profile(identity auth.Identity) (models.User, error) {
	if !identity.Resolved() {
		return models.User{}, auth.ErrInvalidToken
	}
	user, err := s.Users.FindActiveByID(identity.UserID)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

// Permissions returns the caller's capability flags for one screen; the UI
// uses them to decide which row actions to render.
func (s UserService) Permissions(identity auth.Identity, screen string) (models.Permissions, error) {
	if err := s.Lists.requireUser(identity); err != nil {
		return models.Permissions{}, err
	}
	return s.Users.Permissions(identity.UserID, screen)
}

// ListProjects pages the caller's own projects table.
func (s UserService) ListProjects(identity auth.Identity, p listing.Params) (listing.Page[models.Project], error) {
	return ListRecords(s.Lists, identity, p, func(p listing.Params) ([]models.Project, int, error) {
		return s.Projects.ListForUser(identity.UserID, p)
	})
}
