package models

import "time"

// Trash tracks one tombstoned root entity so it can be restored or purged
// later. Descendants of the root do not get rows of their own; the cascade
// set is recomputed from the store when the trash row is acted on.
type Trash struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	TableName string    `json:"table_name" gorm:"uniqueIndex:idx_trash_entity;not null"`
	EntityID  uint      `json:"entity_id" gorm:"uniqueIndex:idx_trash_entity;not null"`
	TrashedAt time.Time `json:"trashed_at" gorm:"index;not null"`
	Reason    string    `json:"reason"`
}
