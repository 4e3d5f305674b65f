package domain

// Client identifies the renting party. CNIC is the national identity
// number and serves as the natural key when aggregating rentals per client.
type Client struct {
	FullName           string `json:"full_name"`
	CNIC               string `json:"cnic"`
	Phone              string `json:"phone"`
	Address            string `json:"address"`
	CNICFrontImageURL  string `json:"cnic_front_image_url,omitempty"`
	CNICBackImageURL   string `json:"cnic_back_image_url,omitempty"`
	PhotoURL           string `json:"photo_url,omitempty"`
	DrivingLicenseURL  string `json:"driving_license_url,omitempty"`
}

// Witness countersigns the rental agreement.
type Witness struct {
	Name     string `json:"name"`
	CNIC     string `json:"cnic"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	ImageURL string `json:"image_url,omitempty"`
}

// ClientSummary aggregates a client's rental history, keyed by CNIC.
type ClientSummary struct {
	CNIC         string `json:"cnic"`
	FullName     string `json:"full_name"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	PhotoURL     string `json:"photo_url,omitempty"`
	TotalRentals int32  `json:"total_rentals"`
	TotalSpent   int64  `json:"total_spent"`
	LastRental   string `json:"last_rental"`
}
