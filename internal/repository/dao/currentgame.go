package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type CurrentGameSlot struct {
	ID uint `gorm:"primaryKey"`

	DonatorID uint    `gorm:"not null;uniqueIndex:idx_current_game_actor_donator"`
	Donator   Donator `gorm:"foreignKey:DonatorID"`
	Position  int     `gorm:"not null;uniqueIndex:idx_current_game_actor_position"`

	CreatedBy string `gorm:"not null;uniqueIndex:idx_current_game_actor_donator;uniqueIndex:idx_current_game_actor_position"`

	CreatedAt time.Time `gorm:"not null"`
}

func (CurrentGameSlot) TableName() string {
	return "current_game"
}

type CurrentGameDAO struct {
	db *gorm.DB
}

func NewCurrentGameDAO(db *gorm.DB) *CurrentGameDAO {
	return &CurrentGameDAO{
		db: db,
	}
}

func (d *CurrentGameDAO) FindAllByActor(ctx context.Context, actor string) ([]CurrentGameSlot, error) {
	var slots []CurrentGameSlot

	result := d.db.WithContext(ctx).
		Preload("Donator").
		Preload("Donator.Category").
		Where("created_by = ?", actor).
		Order("position").
		Find(&slots)
	if result.Error != nil {
		return nil, result.Error
	}

	return slots, nil
}

// Assign evicts whatever occupies the position, removes the donator
// from any other position and inserts the new slot, all in one
// transaction. The unique indexes on (created_by, position) and
// (created_by, donator_id) back the same invariant at the schema level.
func (d *CurrentGameDAO) Assign(ctx context.Context, actor string, donatorID uint, position int) (CurrentGameSlot, error) {
	slot := CurrentGameSlot{
		DonatorID: donatorID,
		Position:  position,
		CreatedBy: actor,
	}

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("created_by = ? AND position = ?", actor, position).
			Delete(&CurrentGameSlot{}).Error; err != nil {
			return err
		}

		if err := tx.Where("created_by = ? AND donator_id = ?", actor, donatorID).
			Delete(&CurrentGameSlot{}).Error; err != nil {
			return err
		}

		return tx.Create(&slot).Error
	})
	if err != nil {
		return CurrentGameSlot{}, err
	}

	return slot, nil
}

// Delete removes one slot. Deleting an absent or foreign-owned row
// matches zero rows and is treated as success.
func (d *CurrentGameDAO) Delete(ctx context.Context, actor string, id uint) error {
	result := d.db.WithContext(ctx).
		Where("created_by = ?", actor).
		Delete(&CurrentGameSlot{}, id)

	return result.Error
}

func (d *CurrentGameDAO) DeleteAllByActor(ctx context.Context, actor string) error {
	result := d.db.WithContext(ctx).
		Where("created_by = ?", actor).
		Delete(&CurrentGameSlot{})

	return result.Error
}
