package repositories

import (
	"database/sql"

	intconfig "adminboard/internal/config"
	"adminboard/internal/domain/models"
	"adminboard/internal/listing"
)

type SMSRepository struct {
	DB *sql.DB
}

func (r SMSRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

var smsQuery = listQuery{
	table:         "sms_messages",
	columns:       []string{"id", "recipient", "body", "COALESCE(status,'')", "COALESCE(DATE_FORMAT(sent_at, '%Y-%m-%d %H:%i:%s'),'')"},
	searchColumns: []string{"recipient", "body"},
	orderBy:       "id DESC",
}

func (r SMSRepository) List(p listing.Params) ([]models.SMSMessage, int, error) {
	total, rows, err := countAndFetch(r.db(), smsQuery, p)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := []models.SMSMessage{}
	for rows.Next() {
		var m models.SMSMessage
		if err := rows.Scan(&m.ID, &m.Recipient, &m.Body, &m.Status, &m.SentAt); err != nil {
			return nil, 0, err
		}
		out = append(out, m)
	}
	return out, total, rows.Err()
}

func (r SMSRepository) Insert(recipient, body, status string, sentBy int64) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO sms_messages (recipient, body, status, sent_at, is_deleted, created_at, updated_at, updated_user)
		VALUES (?, ?, ?, NOW(), ?, NOW(), NOW(), ?)`,
		recipient, body, status, string(models.NotDeleted), sentBy)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}
