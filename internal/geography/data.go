package geography

import "bookswap/internal/models"

var divisions = []models.Division{
	{ID: "dhaka", Name: "Dhaka"},
	{ID: "chattogram", Name: "Chattogram"},
	{ID: "rajshahi", Name: "Rajshahi"},
	{ID: "khulna", Name: "Khulna"},
	{ID: "barishal", Name: "Barishal"},
	{ID: "sylhet", Name: "Sylhet"},
	{ID: "rangpur", Name: "Rangpur"},
	{ID: "mymensingh", Name: "Mymensingh"},
}

var districts = []models.District{
	{ID: "dhaka", DivisionID: "dhaka", Name: "Dhaka"},
	{ID: "gazipur", DivisionID: "dhaka", Name: "Gazipur"},
	{ID: "narayanganj", DivisionID: "dhaka", Name: "Narayanganj"},
	{ID: "tangail", DivisionID: "dhaka", Name: "Tangail"},
	{ID: "chattogram", DivisionID: "chattogram", Name: "Chattogram"},
	{ID: "coxsbazar", DivisionID: "chattogram", Name: "Cox's Bazar"},
	{ID: "cumilla", DivisionID: "chattogram", Name: "Cumilla"},
	{ID: "rajshahi", DivisionID: "rajshahi", Name: "Rajshahi"},
	{ID: "bogura", DivisionID: "rajshahi", Name: "Bogura"},
	{ID: "khulna", DivisionID: "khulna", Name: "Khulna"},
	{ID: "jashore", DivisionID: "khulna", Name: "Jashore"},
	{ID: "barishal", DivisionID: "barishal", Name: "Barishal"},
	{ID: "patuakhali", DivisionID: "barishal", Name: "Patuakhali"},
	{ID: "sylhet", DivisionID: "sylhet", Name: "Sylhet"},
	{ID: "moulvibazar", DivisionID: "sylhet", Name: "Moulvibazar"},
	{ID: "rangpur", DivisionID: "rangpur", Name: "Rangpur"},
	{ID: "dinajpur", DivisionID: "rangpur", Name: "Dinajpur"},
	{ID: "mymensingh", DivisionID: "mymensingh", Name: "Mymensingh"},
	{ID: "jamalpur", DivisionID: "mymensingh", Name: "Jamalpur"},
}

var upazilas = []models.Upazila{
	{ID: "dhanmondi", DistrictID: "dhaka", Name: "Dhanmondi"},
	{ID: "mirpur", DistrictID: "dhaka", Name: "Mirpur"},
	{ID: "savar", DistrictID: "dhaka", Name: "Savar"},
	{ID: "gazipur-sadar", DistrictID: "gazipur", Name: "Gazipur Sadar"},
	{ID: "kaliakair", DistrictID: "gazipur", Name: "Kaliakair"},
	{ID: "narayanganj-sadar", DistrictID: "narayanganj", Name: "Narayanganj Sadar"},
	{ID: "rupganj", DistrictID: "narayanganj", Name: "Rupganj"},
	{ID: "tangail-sadar", DistrictID: "tangail", Name: "Tangail Sadar"},
	{ID: "kotwali-ctg", DistrictID: "chattogram", Name: "Kotwali"},
	{ID: "hathazari", DistrictID: "chattogram", Name: "Hathazari"},
	{ID: "coxsbazar-sadar", DistrictID: "coxsbazar", Name: "Cox's Bazar Sadar"},
	{ID: "cumilla-sadar", DistrictID: "cumilla", Name: "Cumilla Sadar"},
	{ID: "boalia", DistrictID: "rajshahi", Name: "Boalia"},
	{ID: "paba", DistrictID: "rajshahi", Name: "Paba"},
	{ID: "bogura-sadar", DistrictID: "bogura", Name: "Bogura Sadar"},
	{ID: "khulna-sadar", DistrictID: "khulna", Name: "Khulna Sadar"},
	{ID: "dumuria", DistrictID: "khulna", Name: "Dumuria"},
	{ID: "jashore-sadar", DistrictID: "jashore", Name: "Jashore Sadar"},
	{ID: "barishal-sadar", DistrictID: "barishal", Name: "Barishal Sadar"},
	{ID: "kalapara", DistrictID: "patuakhali", Name: "Kalapara"},
	{ID: "sylhet-sadar", DistrictID: "sylhet", Name: "Sylhet Sadar"},
	{ID: "sreemangal", DistrictID: "moulvibazar", Name: "Sreemangal"},
	{ID: "rangpur-sadar", DistrictID: "rangpur", Name: "Rangpur Sadar"},
	{ID: "dinajpur-sadar", DistrictID: "dinajpur", Name: "Dinajpur Sadar"},
	{ID: "mymensingh-sadar", DistrictID: "mymensingh", Name: "Mymensingh Sadar"},
	{ID: "trishal", DistrictID: "mymensingh", Name: "Trishal"},
	{ID: "jamalpur-sadar", DistrictID: "jamalpur", Name: "Jamalpur Sadar"},
}
