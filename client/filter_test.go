package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterRowsNarrowsLoadedPage(t *testing.T) {
	page := []Row{
		{"id": 1, "name": "India", "shortname": "IN"},
		{"id": 2, "name": "Indonesia", "shortname": "ID"},
		{"id": 3, "name": "Iceland", "shortname": "IS"},
	}

	got := FilterRows(page, "ind")
	require.Len(t, got, 2)
	assert.Equal(t, "India", got[0]["name"])
	assert.Equal(t, "Indonesia", got[1]["name"])

	// Widening back to an empty query restores the full page.
	assert.Len(t, FilterRows(page, ""), 3)
}

func TestFilterRowsCaseInsensitive(t *testing.T) {
	page := []Row{{"name": "Gujarat"}, {"name": "Goa"}}

	assert.Len(t, FilterRows(page, "GUJ"), 1)
	assert.Len(t, FilterRows(page, "g"), 2)
}

func TestFilterRowsRanksEarlierMatchesFirst(t *testing.T) {
	page := []Row{
		{"name": "Northland"},
		{"name": "Landmark"},
	}

	got := FilterRows(page, "land")
	require.Len(t, got, 2)
	assert.Equal(t, "Landmark", got[0]["name"], "match at the start of a field ranks first")
	assert.Equal(t, "Northland", got[1]["name"])
}

func TestFilterRowsNonStringFields(t *testing.T) {
	page := []Row{
		{"id": 4211, "name": "Pune"},
		{"id": 7, "name": "Nashik"},
	}

	got := FilterRows(page, "4211")
	require.Len(t, got, 1)
	assert.Equal(t, "Pune", got[0]["name"])
}

func TestFilterRowsNoMatch(t *testing.T) {
	page := []Row{{"name": "Kerala"}}
	assert.Empty(t, FilterRows(page, "zzz"))
}
