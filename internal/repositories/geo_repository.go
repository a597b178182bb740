package repositories

import (
	"database/sql"

	intconfig "adminboard/internal/config"
	"adminboard/internal/domain/models"
	"adminboard/internal/listing"
)

// GeoRepository covers the state/city/district hierarchy under countries.
type GeoRepository struct {
	DB *sql.DB
}

func (r GeoRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

var (
	stateQuery = listQuery{
		table:         "states",
		columns:       []string{"id", "name", "country_id"},
		searchColumns: []string{"name"},
	}
	cityQuery = listQuery{
		table:         "cities",
		columns:       []string{"id", "name", "state_id"},
		searchColumns: []string{"name"},
	}
	districtQuery = listQuery{
		table:         "districts",
		columns:       []string{"id", "name", "city_id"},
		searchColumns: []string{"name"},
	}
)

func (r GeoRepository) ListStates(p listing.Params) ([]models.State, int, error) {
	total, rows, err := countAndFetch(r.db(), stateQuery, p)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := []models.State{}
	for rows.Next() {
		var s models.State
		if err := rows.Scan(&s.ID, &s.Name, &s.CountryID); err != nil {
			return nil, 0, err
		}
		out = append(out, s)
	}
	return out, total, rows.Err()
}

func (r GeoRepository) ListCities(p listing.Params) ([]models.City, int, error) {
	total, rows, err := countAndFetch(r.db(), cityQuery, p)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := []models.City{}
	for rows.Next() {
		var c models.City
		if err := rows.Scan(&c.ID, &c.Name, &c.StateID); err != nil {
			return nil, 0, err
		}
		out = append(out, c)
	}
	return out, total, rows.Err()
}

func (r GeoRepository) ListDistricts(p listing.Params) ([]models.District, int, error) {
	total, rows, err := countAndFetch(r.db(), districtQuery, p)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := []models.District{}
	for rows.Next() {
		var d models.District
		if err := rows.Scan(&d.ID, &d.Name, &d.CityID); err != nil {
			return nil, 0, err
		}
		out = append(out, d)
	}
	return out, total, rows.Err()
}

// StatesByCountry is the unpaginated cascade lookup behind the
// country → state select inputs.
func (r GeoRepository) StatesByCountry(countryID int64) ([]models.State, error) {
	rows, err := r.db().Query(`
		SELECT id, name, country_id FROM states
		WHERE country_id = ? AND is_deleted = ?
		ORDER BY id ASC`, countryID, string(models.NotDeleted))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.State{}
	for rows.Next() {
		var s models.State
		if err := rows.Scan(&s.ID, &s.Name, &s.CountryID); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r GeoRepository) CitiesByState(stateID int64) ([]models.City, error) {
	rows, err := r.db().Query(`
		SELECT id, name, state_id FROM cities
		WHERE state_id = ? AND is_deleted = ?
		ORDER BY id ASC`, stateID, string(models.NotDeleted))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.City{}
	for rows.Next() {
		var c models.City
		if err := rows.Scan(&c.ID, &c.Name, &c.StateID); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r GeoRepository) DistrictsByCity(cityID int64) ([]models.District, error) {
	rows, err := r.db().Query(`
		SELECT id, name, city_id FROM districts
		WHERE city_id = ? AND is_deleted = ?
		ORDER BY id ASC`, cityID, string(models.NotDeleted))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.District{}
	for rows.Next() {
		var d models.District
		if err := rows.Scan(&d.ID, &d.Name, &d.CityID); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r GeoRepository) CreateState(s models.State, createdBy int64) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO states (name, country_id, is_deleted, created_at, updated_at, updated_user)
		VALUES (?, ?, ?, NOW(), NOW(), ?)`,
		s.Name, s.CountryID, string(models.NotDeleted), createdBy)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r GeoRepository) CreateCity(c models.City, createdBy int64) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO cities (name, state_id, is_deleted, created_at, updated_at, updated_user)
		VALUES (?, ?, ?, NOW(), NOW(), ?)`,
		c.Name, c.StateID, string(models.NotDeleted), createdBy)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r GeoRepository) CreateDistrict(d models.District, createdBy int64) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO districts (name, city_id, is_deleted, created_at, updated_at, updated_user)
		VALUES (?, ?, ?, NOW(), NOW(), ?)`,
		d.Name, d.CityID, string(models.NotDeleted), createdBy)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r GeoRepository) SoftDeleteState(id, updatedBy int64) error {
	return softDelete(r.db(), "states", id, updatedBy)
}

func (r GeoRepository) SoftDeleteCity(id, updatedBy int64) error {
	return softDelete(r.db(), "cities", id, updatedBy)
}

func (r GeoRepository) SoftDeleteDistrict(id, updatedBy int64) error {
	return softDelete(r.db(), "districts", id, updatedBy)
}
