package models

type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

// Permissions gates row actions on a screen. Flags use the legacy "Y"/"N"
// sentinel so the JSON shape matches what the dashboard UI already consumes.
type Permissions struct {
	WritePermission  YesNo `json:"writePermission"`
	EditPermission   YesNo `json:"editPermission"`
	DeletePermission YesNo `json:"deletePermission"`
}

// Project is a row of the user-profile projects table.
type Project struct {
	ID     int64  `json:"id"`
	UserID int64  `json:"userId"`
	Title  string `json:"title"`
	Client string `json:"client"`
	Status string `json:"status"`
}

// SMSMessage is a sent (or failed) message from the SMS screen.
type SMSMessage struct {
	ID        int64  `json:"id"`
	Recipient string `json:"recipient"`
	Body      string `json:"body"`
	Status    string `json:"status"`
	SentAt    string `json:"sentAt"`
}

const (
	SMSStatusSent   = "sent"
	SMSStatusFailed = "failed"
)
