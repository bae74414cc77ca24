package models

import "time"

// NewlyAdded marks an entity as recently added for UI highlighting. It has
// its own lifecycle and is never part of the trash cascade.
type NewlyAdded struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	TableName string    `json:"table_name" gorm:"index;not null"`
	EntityID  uint      `json:"entity_id" gorm:"index;not null"`
	AddedAt   time.Time `json:"added_at" gorm:"index;not null"`
}
