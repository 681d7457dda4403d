package domain

import "time"

// GameSession is one (session_id, donator_id) row; every donator who
// played together shares the same SessionID.
type GameSession struct {
	ID        uint      `json:"id"`
	SessionID string    `json:"session_id"`
	DonatorID uint      `json:"donator_id"`
	Donator   Donator   `json:"donator"`
	PlayedAt  time.Time `json:"played_at"`
	CreatedBy string    `json:"created_by"`
}

// SessionGroup is a recorded play event with its participants resolved
// at lookup time, so names and categories reflect current data rather
// than a point-in-time snapshot.
type SessionGroup struct {
	SessionID string               `json:"session_id"`
	PlayedAt  time.Time            `json:"played_at"`
	Donators  []SessionParticipant `json:"donators"`
}

type SessionParticipant struct {
	Donator
	CategoryName string `json:"category_name"`
}
