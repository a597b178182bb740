package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"adminboard/internal/domain/models"
	"adminboard/internal/services"

	"github.com/gin-gonic/gin"
)

// POST /api/master-data/countries
func (a *API) CreateCountry(c *gin.Context) {
	var body models.Country
	if err := c.ShouldBindJSON(&body); err != nil {
		writeFailure(c, services.ValidationError{"body": "invalid payload"})
		return
	}

	identity, err := callerIdentity(c)
	if err != nil {
		writeFailure(c, err)
		return
	}

	id, err := a.Master.CreateCountry(identity, body)
	if err != nil {
		writeFailure(c, err)
		return
	}
	ok(c, gin.H{"id": id})
}

// PUT /api/master-data/countries/:id
func (a *API) UpdateCountry(c *gin.Context) {
	id, okID := paramID(c)
	if !okID {
		writeFailure(c, services.ValidationError{"id": "id is required"})
		return
	}

	var body models.Country
	if err := c.ShouldBindJSON(&body); err != nil {
		writeFailure(c, services.ValidationError{"body": "invalid payload"})
		return
	}
	body.ID = id

	identity, err := callerIdentity(c)
	if err != nil {
		writeFailure(c, err)
		return
	}

	if err := a.Master.UpdateCountry(identity, body); err != nil {
		writeFailure(c, err)
		return
	}
	ok(c, "country updated")
}

// POST /api/master-data/states ... districts follow the same shape.

func (a *API) CreateState(c *gin.Context) {
	var body models.State
	if err := c.ShouldBindJSON(&body); err != nil {
		writeFailure(c, services.ValidationError{"body": "invalid payload"})
		return
	}

	identity, err := callerIdentity(c)
	if err != nil {
		writeFailure(c, err)
		return
	}

	id, err := a.Master.CreateState(identity, body)
	if err != nil {
		writeFailure(c, err)
		return
	}
	ok(c, gin.H{"id": id})
}

func (a *API) CreateCity(c *gin.Context) {
	var body models.City
	if err := c.ShouldBindJSON(&body); err != nil {
		writeFailure(c, services.ValidationError{"body": "invalid payload"})
		return
	}

	identity, err := callerIdentity(c)
	if err != nil {
		writeFailure(c, err)
		return
	}

	id, err := a.Master.CreateCity(identity, body)
	if err != nil {
		writeFailure(c, err)
		return
	}
	ok(c, gin.H{"id": id})
}

func (a *API) CreateDistrict(c *gin.Context) {
	var body models.District
	if err := c.ShouldBindJSON(&body); err != nil {
		writeFailure(c, services.ValidationError{"body": "invalid payload"})
		return
	}

	identity, err := callerIdentity(c)
	if err != nil {
		writeFailure(c, err)
		return
	}

	id, err := a.Master.CreateDistrict(identity, body)
	if err != nil {
		writeFailure(c, err)
		return
	}
	ok(c, gin.H{"id": id})
}

// Cascade lookups for dependent selects. No pagination, audit fields already
// stripped by the projection.

// POST /api/master-data/states/by-country {countryId}
func (a *API) StatesByCountry(c *gin.Context) {
	var body struct {
		CountryID int64 `json:"countryId"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		writeFailure(c, services.ValidationError{"body": "invalid payload"})
		return
	}

	states, err := a.Master.StatesByCountry(body.CountryID)
	if err != nil {
		writeFailure(c, err)
		return
	}
	ok(c, states)
}

// POST /api/master-data/cities/by-state {stateId}
func (a *API) CitiesByState(c *gin.Context) {
	var body struct {
		StateID int64 `json:"stateId"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		writeFailure(c, services.ValidationError{"body": "invalid payload"})
		return
	}

	cities, err := a.Master.CitiesByState(body.StateID)
	if err != nil {
		writeFailure(c, err)
		return
	}
	ok(c, cities)
}

// POST /api/master-data/districts/by-city {cityId}
func (a *API) DistrictsByCity(c *gin.Context) {
	var body struct {
		CityID int64 `json:"cityId"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		writeFailure(c, services.ValidationError{"body": "invalid payload"})
		return
	}

	districts, err := a.Master.DistrictsByCity(body.CityID)
	if err != nil {
		writeFailure(c, err)
		return
	}
	ok(c, districts)
}

// GET /api/master-data/countries/export?searchText=
func (a *API) ExportCountries(c *gin.Context) {
	identity, err := callerIdentity(c)
	if err != nil {
		writeFailure(c, err)
		return
	}

	pdf, name, err := a.Docs.CountriesPDF(identity, strings.TrimSpace(c.Query("searchText")))
	if err != nil {
		writeFailure(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func paramID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Param("id")), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
