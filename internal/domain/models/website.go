package models

// Website-content rows managed from the dashboard.

type Achievement struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

type TeamMember struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Designation string `json:"designation"`
	Image       string `json:"image"`
}

// Section is a toggleable content block on the public site.
type Section struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Visible YesNo  `json:"visible"`
}
