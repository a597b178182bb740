package repositories

import (
	"database/sql"

	intconfig "adminboard/internal/config"
	"adminboard/internal/domain/models"
)

type UserRepository struct {
	DB *sql.DB
}

func (r UserRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// FindActiveByID returns the user only if it exists and is not soft-deleted.
func (r UserRepository) FindActiveByID(id int64) (models.User, error) {
	var u models.User
	err := r.db().QueryRow(`
		SELECT id, name, email, COALESCE(phone,''), role
		FROM users
		WHERE id = ? AND is_deleted = ?`, id, string(models.NotDeleted)).Scan(
		&u.ID, &u.Name, &u.Email, &u.Phone, &u.Role,
	)
	return u, err
}

// FindByEmail fetches credentials for login. Soft-deleted users cannot sign in.
func (r UserRepository) FindByEmail(email string) (models.User, string, error) {
	var (
		u    models.User
		hash string
	)
	err := r.db().QueryRow(`
		SELECT id, name, email, COALESCE(phone,''), role, password_hash
		FROM users
		WHERE email = ? AND is_deleted = ?`, email, string(models.NotDeleted)).Scan(
		&u.ID, &u.Name, &u.Email, &u.Phone, &u.Role, &hash,
	)
	return u, hash, err
}

// Permissions loads the caller's per-screen capability flags. Users without a
// permission row get read-only access.
func (r UserRepository) Permissions(userID int64, screen string) (models.Permissions, error) {
	var p models.Permissions
	err := r.db().QueryRow(`
		SELECT COALESCE(write_permission,'N'), COALESCE(edit_permission,'N'), COALESCE(delete_permission,'N')
		FROM user_permissions
		WHERE user_id = ? AND screen = ?`, userID, screen).Scan(
		&p.WritePermission, &p.EditPermission, &p.DeletePermission,
	)
	if err == sql.ErrNoRows {
		return models.Permissions{WritePermission: models.No, EditPermission: models.No, DeletePermission: models.No}, nil
	}
	return p, err
}
