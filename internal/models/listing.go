package models

import "time"

// Condition is the physical state a seller reports for a book.
type Condition string

const (
	ConditionNew     Condition = "New"
	ConditionLikeNew Condition = "Like New"
	ConditionGood    Condition = "Good"
	ConditionFair    Condition = "Fair"
	ConditionPoor    Condition = "Poor"
)

// Conditions lists every accepted condition in display order.
var Conditions = []Condition{ConditionNew, ConditionLikeNew, ConditionGood, ConditionFair, ConditionPoor}

// Valid reports whether c is one of the accepted conditions.
func (c Condition) Valid() bool {
	for _, known := range Conditions {
		if c == known {
			return true
		}
	}
	return false
}

// LocationData points at an upazila through its division and district.
type LocationData struct {
	DivisionID string `json:"divisionId" validate:"required"`
	DistrictID string `json:"districtId" validate:"required"`
	UpazilaID  string `json:"upazilaId" validate:"required"`
}

// BookListing is a seller's book-for-sale record.
// SellerName is copied from the seller's display name at creation time and is not kept in sync.
type BookListing struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Author       string       `json:"author"`
	Subject      string       `json:"subject"`
	Condition    Condition    `json:"condition"`
	Price        float64      `json:"price"`
	ContactPhone string       `json:"contactPhone"`
	Description  string       `json:"description"`
	SellerID     string       `json:"sellerId"`
	SellerName   string       `json:"sellerName"`
	Location     LocationData `json:"location"`
	CreatedAt    time.Time    `json:"createdAt"`
	ImageURL     string       `json:"imageUrl,omitempty"`
}

// NewListing holds the caller-supplied fields of a listing; ID and CreatedAt are assigned on create.
type NewListing struct {
	Title        string       `json:"title" validate:"required,max=200"`
	Author       string       `json:"author" validate:"required,max=200"`
	Subject      string       `json:"subject" validate:"required,max=100"`
	Condition    Condition    `json:"condition" validate:"required,bookcondition"`
	Price        float64      `json:"price" validate:"gte=0"`
	ContactPhone string       `json:"contactPhone" validate:"required,max=32"`
	Description  string       `json:"description" validate:"max=5000"`
	SellerID     string       `json:"sellerId" validate:"required"`
	SellerName   string       `json:"sellerName"`
	Location     LocationData `json:"location"`
	ImageURL     string       `json:"imageUrl,omitempty" validate:"omitempty,url"`
}

// ListingPatch is a partial update; nil fields are left untouched.
type ListingPatch struct {
	Title        *string       `json:"title,omitempty" validate:"omitnil,min=1,max=200"`
	Author       *string       `json:"author,omitempty" validate:"omitnil,min=1,max=200"`
	Subject      *string       `json:"subject,omitempty" validate:"omitnil,min=1,max=100"`
	Condition    *Condition    `json:"condition,omitempty" validate:"omitnil,bookcondition"`
	Price        *float64      `json:"price,omitempty" validate:"omitnil,gte=0"`
	ContactPhone *string       `json:"contactPhone,omitempty" validate:"omitnil,min=1,max=32"`
	Description  *string       `json:"description,omitempty" validate:"omitnil,max=5000"`
	Location     *LocationData `json:"location,omitempty"`
	ImageURL     *string       `json:"imageUrl,omitempty" validate:"omitnil,omitempty,url"`
}

// Apply merges the non-nil fields of p into l.
func (p ListingPatch) Apply(l *BookListing) {
	if p.Title != nil {
		l.Title = *p.Title
	}
	if p.Author != nil {
		l.Author = *p.Author
	}
	if p.Subject != nil {
		l.Subject = *p.Subject
	}
	if p.Condition != nil {
		l.Condition = *p.Condition
	}
	if p.Price != nil {
		l.Price = *p.Price
	}
	if p.ContactPhone != nil {
		l.ContactPhone = *p.ContactPhone
	}
	if p.Description != nil {
		l.Description = *p.Description
	}
	if p.Location != nil {
		l.Location = *p.Location
	}
	if p.ImageURL != nil {
		l.ImageURL = *p.ImageURL
	}
}
