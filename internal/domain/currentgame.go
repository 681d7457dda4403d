package domain

import "time"

const (
	MinSlotPosition = 1
	MaxSlotPosition = 4
)

// CurrentGameSlot is one occupied position on the active roster. For a
// given actor at most one slot exists per position and per donator.
type CurrentGameSlot struct {
	ID        uint      `json:"id"`
	DonatorID uint      `json:"donator_id"`
	Donator   Donator   `json:"donator"`
	Position  int       `json:"position"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}
