package client

import (
	"fmt"
	"sort"
	"strings"
)

// FilterRows is the client-side fuzzy stage: it narrows and ranks the rows of
// the currently loaded page by case-insensitive substring match across string
// fields. It never reaches beyond the page already in memory; whole-dataset
// search is the server filter's job.
func FilterRows(rows []Row, query string) []Row {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return rows
	}

	type ranked struct {
		row  Row
		rank int
	}

	matched := []ranked{}
	for _, row := range rows {
		best := -1
		for _, v := range row {
			s, ok := v.(string)
			if !ok {
				s = fmt.Sprintf("%v", v)
			}
			if idx := strings.Index(strings.ToLower(s), query); idx >= 0 {
				if best == -1 || idx < best {
					best = idx
				}
			}
		}
		if best >= 0 {
			matched = append(matched, ranked{row: row, rank: best})
		}
	}

	sort.SliceStable(matched, func(i, j int) bool { return matched[i].rank < matched[j].rank })

	out := make([]Row, len(matched))
	for i, m := range matched {
		out[i] = m.row
	}
	return out
}
