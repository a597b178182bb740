package repositories

import (
	"database/sql"

	intconfig "adminboard/internal/config"
	"adminboard/internal/domain/models"
	"adminboard/internal/listing"
)

type ProjectRepository struct {
	DB *sql.DB
}

func (r ProjectRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// ListForUser pages the profile projects table, scoped to the owning user.
func (r ProjectRepository) ListForUser(userID int64, p listing.Params) ([]models.Project, int, error) {
	q := listQuery{
		table:         "projects",
		columns:       []string{"id", "user_id", "title", "COALESCE(client,'')", "COALESCE(status,'')"},
		searchColumns: []string{"title", "client"},
		extraWhere:    "user_id = ?",
		extraArgs:     []any{userID},
	}

	total, rows, err := countAndFetch(r.db(), q, p)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := []models.Project{}
	for rows.Next() {
		var pr models.Project
		if err := rows.Scan(&pr.ID, &pr.UserID, &pr.Title, &pr.Client, &pr.Status); err != nil {
			return nil, 0, err
		}
		out = append(out, pr)
	}
	return out, total, rows.Err()
}
