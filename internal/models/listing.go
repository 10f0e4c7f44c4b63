package models

// DraftListing is the single-slot, overwritable snapshot of the sell-car
// form. At most one exists per store; every save replaces it whole.
type DraftListing struct {
	Title        string `json:"title"`
	Brand        string `json:"brand"`
	Model        string `json:"model"`
	Year         int    `json:"year"`
	MileageKm    int    `json:"mileage"`
	Condition    string `json:"condition"`
	Transmission string `json:"transmission"`
	FuelType     string `json:"fuelType"`
	Color        string `json:"color"`
	Price        int64  `json:"price"`
	Negotiable   bool   `json:"negotiable"`
	Description  string `json:"description"`
	SellerName   string `json:"sellerName"`
	SellerPhone  string `json:"sellerPhone"`
	SellerEmail  string `json:"sellerEmail"`
	Location     string `json:"location"`
	SavedAt      string `json:"timestamp"`
}

// Listing is a submitted car listing. Reference is an opaque confirmation
// token handed back to the seller.
type Listing struct {
	ID          int64  `json:"id"`
	Reference   string `json:"reference"`
	DraftListing
	SubmittedAt string `json:"submittedAt"`
}

func (l Listing) RecordID() int64 { return l.ID }
