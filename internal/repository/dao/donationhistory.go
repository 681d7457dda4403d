package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type DonationHistory struct {
	ID uint `gorm:"primaryKey"`

	DonatorID  uint   `gorm:"index;not null"`
	Amount     int64  `gorm:"not null"`
	EventType  string `gorm:"not null"`
	GamesAdded int    `gorm:"not null;default:0"`

	CreatedBy string    `gorm:"index;not null"`
	CreatedAt time.Time `gorm:"index;not null"`
}

func (DonationHistory) TableName() string {
	return "donations_history"
}

// DonationHistoryDAO only reads. Ledger rows are created inside the
// donator transactions, and nothing ever updates or deletes them.
type DonationHistoryDAO struct {
	db *gorm.DB
}

func NewDonationHistoryDAO(db *gorm.DB) *DonationHistoryDAO {
	return &DonationHistoryDAO{
		db: db,
	}
}

func (d *DonationHistoryDAO) FindByDateRange(ctx context.Context, actor string, start, end time.Time) ([]DonationHistory, error) {
	var records []DonationHistory

	result := d.db.WithContext(ctx).
		Where("created_by = ? AND created_at >= ? AND created_at <= ?", actor, start, end).
		Order("created_at").
		Find(&records)
	if result.Error != nil {
		return nil, result.Error
	}

	return records, nil
}
