// Package geography holds the fixed division -> district -> upazila tables used
// by location filters and listing forms.
//
// The tables are shipped with the binary and never persisted. Lookups return
// copies so callers cannot mutate the reference data.
package geography

import "bookswap/internal/models"

// Divisions returns every division in display order.
func Divisions() []models.Division {
	out := make([]models.Division, len(divisions))
	copy(out, divisions)
	return out
}

// Districts returns the districts whose DivisionID equals divisionID.
// An empty divisionID offers nothing.
func Districts(divisionID string) []models.District {
	out := []models.District{}
	if divisionID == "" {
		return out
	}
	for _, d := range districts {
		if d.DivisionID == divisionID {
			out = append(out, d)
		}
	}
	return out
}

// Upazilas returns the upazilas whose DistrictID equals districtID.
func Upazilas(districtID string) []models.Upazila {
	out := []models.Upazila{}
	if districtID == "" {
		return out
	}
	for _, u := range upazilas {
		if u.DistrictID == districtID {
			out = append(out, u)
		}
	}
	return out
}

// DivisionByID looks up a division.
func DivisionByID(id string) (models.Division, bool) {
	for _, d := range divisions {
		if d.ID == id {
			return d, true
		}
	}
	return models.Division{}, false
}

// DistrictByID looks up a district.
func DistrictByID(id string) (models.District, bool) {
	for _, d := range districts {
		if d.ID == id {
			return d, true
		}
	}
	return models.District{}, false
}

// UpazilaByID looks up an upazila.
func UpazilaByID(id string) (models.Upazila, bool) {
	for _, u := range upazilas {
		if u.ID == id {
			return u, true
		}
	}
	return models.Upazila{}, false
}

// IsPath reports whether loc names an upazila inside its district inside its division.
func IsPath(loc models.LocationData) bool {
	district, ok := DistrictByID(loc.DistrictID)
	if !ok || district.DivisionID != loc.DivisionID {
		return false
	}
	upazila, ok := UpazilaByID(loc.UpazilaID)
	return ok && upazila.DistrictID == loc.DistrictID
}
