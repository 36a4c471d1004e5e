package geography

import "bookswap/internal/models"

// Selection is a cascading division/district/upazila choice.
// Changing a parent always resets its children.
type Selection struct {
	DivisionID string `json:"divisionId"`
	DistrictID string `json:"districtId"`
	UpazilaID  string `json:"upazilaId"`
}

// Options lists the children a UI may offer for the current selection.
type Options struct {
	Divisions []models.Division `json:"divisions"`
	Districts []models.District `json:"districts"`
	Upazilas  []models.Upazila  `json:"upazilas"`
}

// SetDivision selects a division and clears district and upazila.
func (s *Selection) SetDivision(id string) {
	s.DivisionID = id
	s.DistrictID = ""
	s.UpazilaID = ""
}

// SetDistrict selects a district and clears the upazila.
func (s *Selection) SetDistrict(id string) {
	s.DistrictID = id
	s.UpazilaID = ""
}

// SetUpazila selects an upazila.
func (s *Selection) SetUpazila(id string) {
	s.UpazilaID = id
}

// Clear resets every level.
func (s *Selection) Clear() {
	s.SetDivision("")
}

// Complete reports whether all three levels are chosen.
func (s Selection) Complete() bool {
	return s.DivisionID != "" && s.DistrictID != "" && s.UpazilaID != ""
}

// Location converts the selection to listing location data.
func (s Selection) Location() models.LocationData {
	return models.LocationData{
		DivisionID: s.DivisionID,
		DistrictID: s.DistrictID,
		UpazilaID:  s.UpazilaID,
	}
}

// Options returns the choices offered at each level given the current selection.
func (s Selection) Options() Options {
	return Options{
		Divisions: Divisions(),
		Districts: Districts(s.DivisionID),
		Upazilas:  Upazilas(s.DistrictID),
	}
}
