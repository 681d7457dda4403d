package domain

import "time"

// Donator is a tracked supporter. TotalGame counts remaining playable
// games; TotalDonation is derived as total_game × category price and is
// recomputed from scratch whenever TotalGame changes through an update.
type Donator struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	CategoryID    uint      `json:"category_id"`
	Category      Category  `json:"category"`
	TotalGame     int       `json:"total_game"`
	TotalDonation int64     `json:"total_donation"`
	CreatedBy     string    `json:"created_by"`
	UpdatedBy     string    `json:"updated_by"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// DonationPoint is the chart-feed reshaping of a donator row for a
// given date range.
type DonationPoint struct {
	ID           uint      `json:"id"`
	Amount       int64     `json:"amount"`
	CreatedAt    time.Time `json:"created_at"`
	DonatorName  string    `json:"donator_name"`
	CategoryName string    `json:"category_name"`
	CreatedBy    string    `json:"created_by"`
}
