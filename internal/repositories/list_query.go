package repositories

import (
	"database/sql"
	"strings"

	"adminboard/internal/domain/models"
	"adminboard/internal/listing"
)

// listQuery describes one resource's slice of the shared list contract: which
// table, which projected columns, and which columns the search text matches
// against. Every list endpoint reuses the same count + clamp + fetch sequence.
type listQuery struct {
	table         string
	columns       []string
	searchColumns []string
	orderBy       string

	// optional extra conjunct, e.g. scoping projects to one user
	extraWhere string
	extraArgs  []any
}

// countAndFetch runs the two-step list protocol: count matching rows under
// the soft-delete + search filter, clamp the requested page against the
// count, then fetch one page. The caller owns the returned rows.
func countAndFetch(db *sql.DB, q listQuery, p listing.Params) (int, *sql.Rows, error) {
	where := []string{"is_deleted = ?"}
	args := []any{string(models.NotDeleted)}

	if q.extraWhere != "" {
		where = append(where, q.extraWhere)
		args = append(args, q.extraArgs...)
	}

	if p.SearchText != "" {
		like := "%" + p.SearchText + "%"
		ors := make([]string, 0, len(q.searchColumns))
		for _, col := range q.searchColumns {
			ors = append(ors, col+" LIKE ?")
			args = append(args, like)
		}
		where = append(where, "("+strings.Join(ors, " OR ")+")")
	}

	whereSQL := " WHERE " + strings.Join(where, " AND ")

	var total int
	if err := db.QueryRow(`SELECT COUNT(*) FROM `+q.table+whereSQL, args...).Scan(&total); err != nil {
		return 0, nil, err
	}

	order := q.orderBy
	if order == "" {
		order = "id ASC"
	}

	skip := listing.ClampSkip(p.Page, p.PageSize, total)
	pageArgs := append(append([]any{}, args...), p.PageSize, skip)

	rows, err := db.Query(
		`SELECT `+strings.Join(q.columns, ", ")+` FROM `+q.table+whereSQL+
			` ORDER BY `+order+` LIMIT ? OFFSET ?`, pageArgs...)
	if err != nil {
		return 0, nil, err
	}
	return total, rows, nil
}

// softDelete flips the soft-delete flag and records who did it. Deleting an
// already-deleted id is a no-op, not an error.
func softDelete(db *sql.DB, table string, id, updatedBy int64) error {
	_, err := db.Exec(
		`UPDATE `+table+` SET is_deleted = ?, updated_user = ?, updated_at = NOW() WHERE id = ? AND is_deleted = ?`,
		string(models.Deleted), updatedBy, id, string(models.NotDeleted),
	)
	return err
}
