package domain

import "time"

type DonationEventType string

const (
	DonationEventNewDonator DonationEventType = "new_donator"
	DonationEventAddGames   DonationEventType = "add_games"
)

// DonationHistory is an append-only ledger entry. Rows are never
// updated or deleted by the application.
type DonationHistory struct {
	ID         uint              `json:"id"`
	DonatorID  uint              `json:"donator_id"`
	Amount     int64             `json:"amount"`
	EventType  DonationEventType `json:"event_type"`
	GamesAdded int               `json:"games_added"`
	CreatedBy  string            `json:"created_by"`
	CreatedAt  time.Time         `json:"created_at"`
}
