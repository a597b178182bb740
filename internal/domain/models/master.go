package models

// Master-data rows. JSON field names follow the legacy dashboard API; audit
// columns (created_at, updated_at, updated_user) and the soft-delete flag are
// intentionally absent from these projections and never leave the server.

type Country struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Shortname string `json:"shortname"`
	PhoneCode string `json:"phoneCode"`
	IsActive  YesNo  `json:"isActive"`
}

type State struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	CountryID int64  `json:"countryId"`
}

type City struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	StateID int64  `json:"stateId"`
}

type District struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	CityID int64  `json:"cityId"`
}
