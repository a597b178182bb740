package repositories

import (
	"database/sql"

	intconfig "adminboard/internal/config"
	"adminboard/internal/domain/models"
	"adminboard/internal/listing"
)

// WebsiteRepository backs the website-content screens: achievements, team
// members and toggleable page sections.
type WebsiteRepository struct {
	DB *sql.DB
}

func (r WebsiteRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

var (
	achievementQuery = listQuery{
		table:         "achievements",
		columns:       []string{"id", "title", "COALESCE(description,'')", "COALESCE(image,'')"},
		searchColumns: []string{"title", "description"},
	}
	teamQuery = listQuery{
		table:         "team_members",
		columns:       []string{"id", "name", "COALESCE(designation,'')", "COALESCE(image,'')"},
		searchColumns: []string{"name", "designation"},
	}
)

func (r WebsiteRepository) ListAchievements(p listing.Params) ([]models.Achievement, int, error) {
	total, rows, err := countAndFetch(r.db(), achievementQuery, p)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := []models.Achievement{}
	for rows.Next() {
		var a models.Achievement
		if err := rows.Scan(&a.ID, &a.Title, &a.Description, &a.Image); err != nil {
			return nil, 0, err
		}
		out = append(out, a)
	}
	return out, total, rows.Err()
}

func (r WebsiteRepository) ListTeamMembers(p listing.Params) ([]models.TeamMember, int, error) {
	total, rows, err := countAndFetch(r.db(), teamQuery, p)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := []models.TeamMember{}
	for rows.Next() {
		var m models.TeamMember
		if err := rows.Scan(&m.ID, &m.Name, &m.Designation, &m.Image); err != nil {
			return nil, 0, err
		}
		out = append(out, m)
	}
	return out, total, rows.Err()
}

func (r WebsiteRepository) CreateAchievement(a models.Achievement, createdBy int64) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO achievements (title, description, image, is_deleted, created_at, updated_at, updated_user)
		VALUES (?, ?, ?, ?, NOW(), NOW(), ?)`,
		a.Title, a.Description, a.Image, string(models.NotDeleted), createdBy)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r WebsiteRepository) UpdateAchievement(a models.Achievement, updatedBy int64) (bool, error) {
	res, err := r.db().Exec(`
		UPDATE achievements
		SET title = ?, description = ?, image = ?, updated_at = NOW(), updated_user = ?
		WHERE id = ? AND is_deleted = ?`,
		a.Title, a.Description, a.Image, updatedBy, a.ID, string(models.NotDeleted))
	if err != nil {
		return false, err
	}
	affected, _ := res.RowsAffected()
	return affected > 0, nil
}

func (r WebsiteRepository) CreateTeamMember(m models.TeamMember, createdBy int64) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO team_members (name, designation, image, is_deleted, created_at, updated_at, updated_user)
		VALUES (?, ?, ?, ?, NOW(), NOW(), ?)`,
		m.Name, m.Designation, m.Image, string(models.NotDeleted), createdBy)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r WebsiteRepository) UpdateTeamMember(m models.TeamMember, updatedBy int64) (bool, error) {
	res, err := r.db().Exec(`
		UPDATE team_members
		SET name = ?, designation = ?, image = ?, updated_at = NOW(), updated_user = ?
		WHERE id = ? AND is_deleted = ?`,
		m.Name, m.Designation, m.Image, updatedBy, m.ID, string(models.NotDeleted))
	if err != nil {
		return false, err
	}
	affected, _ := res.RowsAffected()
	return affected > 0, nil
}

func (r WebsiteRepository) SoftDeleteAchievement(id, updatedBy int64) error {
	return softDelete(r.db(), "achievements", id, updatedBy)
}

func (r WebsiteRepository) SoftDeleteTeamMember(id, updatedBy int64) error {
	return softDelete(r.db(), "team_members", id, updatedBy)
}

// ListSections returns every active section with its visibility flag.
func (r WebsiteRepository) ListSections() ([]models.Section, error) {
	rows, err := r.db().Query(`
		SELECT id, name, COALESCE(visible,'Y') FROM sections
		WHERE is_deleted = ? ORDER BY id ASC`, string(models.NotDeleted))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Section{}
	for rows.Next() {
		var s models.Section
		if err := rows.Scan(&s.ID, &s.Name, &s.Visible); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// SetSectionVisibility flips the public visibility toggle of a section.
func (r WebsiteRepository) SetSectionVisibility(id int64, visible models.YesNo, updatedBy int64) (bool, error) {
	res, err := r.db().Exec(`
		UPDATE sections SET visible = ?, updated_at = NOW(), updated_user = ?
		WHERE id = ? AND is_deleted = ?`,
		string(visible), updatedBy, id, string(models.NotDeleted))
	if err != nil {
		return false, err
	}
	affected, _ := res.RowsAffected()
	return affected > 0, nil
}
