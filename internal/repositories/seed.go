package repositories

import (
	"time"

	"bookswap/internal/models"
)

// SeedListings returns the sample listings written to a store that has never held listings.
func SeedListings() []models.BookListing {
	return []models.BookListing{
		{
			ID:           "seed-1",
			Title:        "Concepts of Physics Vol. 1",
			Author:       "H.C. Verma",
			Subject:      "Physics",
			Condition:    models.ConditionGood,
			Price:        350,
			ContactPhone: "01711000001",
			Description:  "Lightly highlighted in the mechanics chapters. All pages intact.",
			SellerID:     "seed-seller-1",
			SellerName:   "rahim",
			Location:     models.LocationData{DivisionID: "dhaka", DistrictID: "dhaka", UpazilaID: "mirpur"},
			CreatedAt:    time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:           "seed-2",
			Title:        "Higher Mathematics 1st Paper",
			Author:       "S.U. Ahmed",
			Subject:      "Mathematics",
			Condition:    models.ConditionLikeNew,
			Price:        280,
			ContactPhone: "01811000002",
			Description:  "HSC edition, solved examples marked in pencil only.",
			SellerID:     "seed-seller-2",
			SellerName:   "nusrat",
			Location:     models.LocationData{DivisionID: "chattogram", DistrictID: "chattogram", UpazilaID: "hathazari"},
			CreatedAt:    time.Date(2024, time.June, 3, 9, 30, 0, 0, time.UTC),
		},
		{
			ID:           "seed-3",
			Title:        "Campbell Biology",
			Author:       "Urry, Cain, Wasserman",
			Subject:      "Biology",
			Condition:    models.ConditionFair,
			Price:        1200,
			ContactPhone: "01911000003",
			Description:  "11th edition. Cover worn, inside clean. Good for first-year undergrads.",
			SellerID:     "seed-seller-3",
			SellerName:   "tanvir",
			Location:     models.LocationData{DivisionID: "rajshahi", DistrictID: "rajshahi", UpazilaID: "boalia"},
			CreatedAt:    time.Date(2024, time.June, 2, 18, 15, 0, 0, time.UTC),
		},
	}
}
