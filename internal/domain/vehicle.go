package domain

// Vehicle is a rentable vehicle with its rate sheet. All rates are whole
// currency units (PKR), non-negative, and mutated only through vehicle
// edit operations, never during an in-progress booking.
type Vehicle struct {
	ID          int32  `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Brand       string `json:"brand"`
	Model       string `json:"model"`
	Year        string `json:"year,omitempty"`
	Color       string `json:"color,omitempty"`
	LogoURL     string `json:"logo_url,omitempty"`
	ImageURL    string `json:"image_url"`
	HourlyRate  int64  `json:"hourly_rate"`
	DailyRate   int64  `json:"daily_rate"`
	WeeklyRate  int64  `json:"weekly_rate"`
	MonthlyRate int64  `json:"monthly_rate"`
	CreatedOn   string `json:"created_on"`
	UpdatedOn   string `json:"updated_on"`
}
