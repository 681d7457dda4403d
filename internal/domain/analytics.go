package domain

// DailyTotal is the sum of donation-history amounts for one day.
type DailyTotal struct {
	Day   string `json:"day"` // YYYY-MM-DD
	Total int64  `json:"total"`
}

// CategoryTotal is the sum of donator lifetime donations per category.
type CategoryTotal struct {
	CategoryID   uint   `json:"category_id"`
	CategoryName string `json:"category_name"`
	Total        int64  `json:"total"`
}

// LeaderboardEntry ranks a donator by lifetime donation total.
type LeaderboardEntry struct {
	DonatorID     uint   `json:"donator_id"`
	Name          string `json:"name"`
	CategoryName  string `json:"category_name"`
	TotalDonation int64  `json:"total_donation"`
	TotalGame     int    `json:"total_game"`
}
