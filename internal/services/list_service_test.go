package services

import (
	"errors"
	"testing"

	"adminboard/internal/auth"
	"adminboard/internal/domain/models"
	"adminboard/internal/listing"
	"adminboard/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMasterService(t *testing.T) (MasterService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	svc := MasterService{
		Lists:     ListService{Users: repositories.UserRepository{DB: db}},
		Countries: repositories.CountryRepository{DB: db},
		Geo:       repositories.GeoRepository{DB: db},
	}
	return svc, mock, func() { db.Close() }
}

func expectActiveUser(mock sqlmock.Sqlmock, id int64) {
	mock.ExpectQuery(`SELECT id, name, email`).
		WithArgs(id, "N").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "phone", "role"}).
			AddRow(id, "Admin", "admin@example.com", "", "admin"))
}

func TestListCountriesRejectsUnresolvedIdentity(t *testing.T) {
	svc, mock, done := newMasterService(t)
	defer done()

	// No store traffic may happen before the identity gate.
	_, err := svc.ListCountries(auth.Identity{}, listing.Params{Page: 1, PageSize: 10})
	if !errors.Is(err, auth.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unexpected store traffic: %v", err)
	}
}

func TestListCountriesRejectsMissingUser(t *testing.T) {
	svc, mock, done := newMasterService(t)
	defer done()

	mock.ExpectQuery(`SELECT id, name, email`).
		WithArgs(int64(7), "N").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "phone", "role"}))

	_, err := svc.ListCountries(auth.Identity{UserID: 7}, listing.Params{Page: 1, PageSize: 10})
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestListCountriesSuccess(t *testing.T) {
	svc, mock, done := newMasterService(t)
	defer done()

	expectActiveUser(mock, 7)
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM countries`).
		WithArgs("N").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	rows := sqlmock.NewRows([]string{"id", "name", "shortname", "phone_code", "is_active"})
	for i := 1; i <= 10; i++ {
		rows.AddRow(i, "Country", "CC", "+1", "Y")
	}
	mock.ExpectQuery(`SELECT id, name, .* FROM countries`).
		WithArgs("N", 10, 0).
		WillReturnRows(rows)

	page, err := svc.ListCountries(auth.Identity{UserID: 7}, listing.Params{Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(page.Records) != 10 {
		t.Fatalf("expected 10 records, got %d", len(page.Records))
	}
	if page.TotalPages != 2 {
		t.Fatalf("expected 2 total pages, got %d", page.TotalPages)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateCountryValidation(t *testing.T) {
	svc, mock, done := newMasterService(t)
	defer done()

	expectActiveUser(mock, 7)

	_, err := svc.CreateCountry(auth.Identity{UserID: 7}, models.Country{Name: "  ", Shortname: ""})
	var fields ValidationError
	if !errors.As(err, &fields) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if fields["name"] == "" || fields["shortname"] == "" {
		t.Fatalf("expected per-field messages, got %v", fields)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeleteCountryIdempotent(t *testing.T) {
	svc, mock, done := newMasterService(t)
	defer done()

	expectActiveUser(mock, 7)
	mock.ExpectExec(`UPDATE countries SET is_deleted`).
		WithArgs("Y", int64(7), int64(4), "N").
		WillReturnResult(sqlmock.NewResult(0, 1))

	expectActiveUser(mock, 7)
	mock.ExpectExec(`UPDATE countries SET is_deleted`).
		WithArgs("Y", int64(7), int64(4), "N").
		WillReturnResult(sqlmock.NewResult(0, 0))

	identity := auth.Identity{UserID: 7}
	if err := svc.DeleteCountry(identity, 4); err != nil {
		t.Fatalf("first delete error: %v", err)
	}
	// already-deleted id: still success, no error
	if err := svc.DeleteCountry(identity, 4); err != nil {
		t.Fatalf("second delete error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
