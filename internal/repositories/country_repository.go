package repositories

import (
	"database/sql"

	intconfig "adminboard/internal/config"
	"adminboard/internal/domain/models"
	"adminboard/internal/listing"
)

type CountryRepository struct {
	DB *sql.DB
}

func (r CountryRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

var countryQuery = listQuery{
	table:         "countries",
	columns:       []string{"id", "name", "COALESCE(shortname,'')", "COALESCE(phone_code,'')", "COALESCE(is_active,'N')"},
	searchColumns: []string{"name", "shortname"},
}

// List returns one page of active countries plus the total match count.
func (r CountryRepository) List(p listing.Params) ([]models.Country, int, error) {
	total, rows, err := countAndFetch(r.db(), countryQuery, p)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := []models.Country{}
	for rows.Next() {
		var c models.Country
		if err := rows.Scan(&c.ID, &c.Name, &c.Shortname, &c.PhoneCode, &c.IsActive); err != nil {
			return nil, 0, err
		}
		out = append(out, c)
	}
	return out, total, rows.Err()
}

// ListAll fetches every active country matching the search text, in list
// order. Used by the PDF export, which is not paginated.
func (r CountryRepository) ListAll(searchText string) ([]models.Country, error) {
	where := ` WHERE is_deleted = ?`
	args := []any{string(models.NotDeleted)}
	if searchText != "" {
		where += ` AND (name LIKE ? OR shortname LIKE ?)`
		like := "%" + searchText + "%"
		args = append(args, like, like)
	}

	rows, err := r.db().Query(`
		SELECT id, name, COALESCE(shortname,''), COALESCE(phone_code,''), COALESCE(is_active,'N')
		FROM countries`+where+` ORDER BY id ASC`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Country{}
	for rows.Next() {
		var c models.Country
		if err := rows.Scan(&c.ID, &c.Name, &c.Shortname, &c.PhoneCode, &c.IsActive); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r CountryRepository) Create(c models.Country, createdBy int64) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO countries (name, shortname, phone_code, is_active, is_deleted, created_at, updated_at, updated_user)
		VALUES (?, ?, ?, ?, ?, NOW(), NOW(), ?)`,
		c.Name, c.Shortname, c.PhoneCode, string(c.IsActive), string(models.NotDeleted), createdBy)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r CountryRepository) Update(c models.Country, updatedBy int64) (bool, error) {
	res, err := r.db().Exec(`
		UPDATE countries
		SET name = ?, shortname = ?, phone_code = ?, is_active = ?, updated_at = NOW(), updated_user = ?
		WHERE id = ? AND is_deleted = ?`,
		c.Name, c.Shortname, c.PhoneCode, string(c.IsActive), updatedBy, c.ID, string(models.NotDeleted))
	if err != nil {
		return false, err
	}
	affected, _ := res.RowsAffected()
	return affected > 0, nil
}

func (r CountryRepository) SoftDelete(id, updatedBy int64) error {
	return softDelete(r.db(), "countries", id, updatedBy)
}
