package models

// Division is the top level of the location hierarchy.
type Division struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// District belongs to exactly one division.
type District struct {
	ID         string `json:"id"`
	DivisionID string `json:"divisionId"`
	Name       string `json:"name"`
}

// Upazila belongs to exactly one district.
type Upazila struct {
	ID         string `json:"id"`
	DistrictID string `json:"districtId"`
	Name       string `json:"name"`
}
