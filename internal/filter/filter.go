// Package filter derives the visible listing set from a free-text query and
// location filters. It performs no I/O.
package filter

import (
	"strings"

	"bookswap/internal/models"
)

// Query holds the search text and optional location filters. Empty fields impose no constraint.
type Query struct {
	Text       string `query:"q"`
	DivisionID string `query:"division"`
	DistrictID string `query:"district"`
	UpazilaID  string `query:"upazila"`
}

// Apply returns the listings matching q, preserving input order.
func Apply(listings []models.BookListing, q Query) []models.BookListing {
	needle := strings.ToLower(q.Text)
	out := make([]models.BookListing, 0, len(listings))
	for _, l := range listings {
		if matchesText(l, needle) && matchesLocation(l.Location, q) {
			out = append(out, l)
		}
	}
	return out
}

func matchesText(l models.BookListing, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(l.Title), needle) ||
		strings.Contains(strings.ToLower(l.Author), needle) ||
		strings.Contains(strings.ToLower(l.Description), needle)
}

func matchesLocation(loc models.LocationData, q Query) bool {
	if q.DivisionID != "" && loc.DivisionID != q.DivisionID {
		return false
	}
	if q.DistrictID != "" && loc.DistrictID != q.DistrictID {
		return false
	}
	if q.UpazilaID != "" && loc.UpazilaID != q.UpazilaID {
		return false
	}
	return true
}
