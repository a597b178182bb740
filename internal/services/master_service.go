package services

import (
	"adminboard/internal/auth"
	"adminboard/internal/domain/models"
	"adminboard/internal/listing"
	"adminboard/internal/repositories"
	"adminboard/internal/utils"
)

// MasterService covers the master-data screens: countries and the
// state/city/district hierarchy.
type MasterService struct {
	Lists     ListService
	Countries repositories.CountryRepository
	Geo       repositories.GeoRepository
}

func (s MasterService) ListCountries(identity auth.Identity, p listing.Params) (listing.Page[models.Country], error) {
	return ListRecords(s.Lists, identity, p, s.Countries.List)
}

func (s MasterService) ListStates(identity auth.Identity, p listing.Params) (listing.Page[models.State], error) {
	return ListRecords(s.Lists, identity, p, s.Geo.ListStates)
}

func (s MasterService) ListCities(identity auth.Identity, p listing.Params) (listing.Page[models.City], error) {
	return ListRecords(s.Lists, identity, p, s.Geo.ListCities)
}

func (s MasterService) ListDistricts(identity auth.Identity, p listing.Params) (listing.Page[models.District], error) {
	return ListRecords(s.Lists, identity, p, s.Geo.ListDistricts)
}

// CreateCountry validates and inserts a country, returning per-field messages
// on bad input.
func (s MasterService) CreateCountry(identity auth.Identity, c models.Country) (int64, error) {
	if err := s.Lists.requireUser(identity); err != nil {
		return 0, err
	}
	if err := validateCountry(&c); err != nil {
		return 0, err
	}
	return s.Countries.Create(c, identity.UserID)
}

func (s MasterService) UpdateCountry(identity auth.Identity, c models.Country) error {
	if err := s.Lists.requireUser(identity); err != nil {
		return err
	}
	if c.ID <= 0 {
		return ValidationError{"id": "id is required"}
	}
	if err := validateCountry(&c); err != nil {
		return err
	}
	ok, err := s.Countries.Update(c, identity.UserID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrRecordNotFound
	}
	return nil
}

// DeleteCountry soft-deletes. Repeating the delete for an already-deleted id
// is a successful no-op.
func (s MasterService) DeleteCountry(identity auth.Identity, id int64) error {
	if err := s.Lists.requireUser(identity); err != nil {
		return err
	}
	if id <= 0 {
		return ValidationError{"id": "id is required"}
	}
	return s.Countries.SoftDelete(id, identity.UserID)
}

func (s MasterService) CreateState(identity auth.Identity, st models.State) (int64, error) {
	if err := s.Lists.requireUser(identity); err != nil {
		return 0, err
	}
	st.Name = utils.NormalizeSpace(st.Name)
	fields := ValidationError{}
	if st.Name == "" {
		fields["name"] = "name is required"
	}
	if st.CountryID <= 0 {
		fields["countryId"] = "countryId is required"
	}
	if len(fields) > 0 {
		return 0, fields
	}
	return s.Geo.CreateState(st, identity.UserID)
}

func (s MasterService) CreateCity(identity auth.Identity, c models.City) (int64, error) {
	if err := s.Lists.requireUser(identity); err != nil {
		return 0, err
	}
	c.Name = utils.NormalizeSpace(c.Name)
	fields := ValidationError{}
	if c.Name == "" {
		fields["name"] = "name is required"
	}
	if c.StateID <= 0 {
		fields["stateId"] = "stateId is required"
	}
	if len(fields) > 0 {
		return 0, fields
	}
	return s.Geo.CreateCity(c, identity.UserID)
}

func (s MasterService) CreateDistrict(identity auth.Identity, d models.District) (int64, error) {
	if err := s.Lists.requireUser(identity); err != nil {
		return 0, err
	}
	d.Name = utils.NormalizeSpace(d.Name)
	fields := ValidationError{}
	if d.Name == "" {
		fields["name"] = "name is required"
	}
	if d.CityID <= 0 {
		fields["cityId"] = "cityId is required"
	}
	if len(fields) > 0 {
		return 0, fields
	}
	return s.Geo.CreateDistrict(d, identity.UserID)
}

func (s MasterService) DeleteState(identity auth.Identity, id int64) error {
	if err := s.Lists.requireUser(identity); err != nil {
		return err
	}
	return s.Geo.SoftDeleteState(id, identity.UserID)
}

func (s MasterService) DeleteCity(identity auth.Identity, id int64) error {
	if err := s.Lists.requireUser(identity); err != nil {
		return err
	}
	return s.Geo.SoftDeleteCity(id, identity.UserID)
}

func (s MasterService) DeleteDistrict(identity auth.Identity, id int64) error {
	if err := s.Lists.requireUser(identity); err != nil {
		return err
	}
	return s.Geo.SoftDeleteDistrict(id, identity.UserID)
}

// Cascade lookups feeding dependent select inputs. The legacy dashboard
// serves these without a token check; kept that way.

func (s MasterService) StatesByCountry(countryID int64) ([]models.State, error) {
	return s.Geo.StatesByCountry(countryID)
}

func (s MasterService) CitiesByState(stateID int64) ([]models.City, error) {
	return s.Geo.CitiesByState(stateID)
}

func (s MasterService) DistrictsByCity(cityID int64) ([]models.District, error) {
	return s.Geo.DistrictsByCity(cityID)
}

func validateCountry(c *models.Country) error {
	c.Name = utils.NormalizeSpace(c.Name)
	c.Shortname = utils.TrimOrEmpty(c.Shortname)
	c.PhoneCode = utils.TrimOrEmpty(c.PhoneCode)
	if !c.IsActive.Bool() {
		c.IsActive = models.No
	}

	fields := ValidationError{}
	if c.Name == "" {
		fields["name"] = "name is required"
	}
	if c.Shortname == "" {
		fields["shortname"] = "shortname is required"
	}
	if len(fields) > 0 {
		return fields
	}
	return nil
}
