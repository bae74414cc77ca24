package trash

import (
	"errors"
	"log"
	"time"

	"caprep/models"

	"gorm.io/gorm"
)

// Entry is a trash row enriched with the referenced entity's display name
type Entry struct {
	ID          uint      `json:"id"`
	TableName   string    `json:"table_name"`
	EntityID    uint      `json:"entity_id"`
	TrashedAt   time.Time `json:"trashed_at"`
	Reason      string    `json:"reason,omitempty"`
	DisplayName string    `json:"display_name"`
}

// List enumerates trash rows newest-first. Display-name lookups that fail
// degrade to a placeholder; listing never mutates state and never fails
// because of a single bad row.
func (e *Engine) List() ([]Entry, error) {
	var rows []models.Trash
	if err := e.db.Order("trashed_at desc").Find(&rows).Error; err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, Entry{
			ID:          row.ID,
			TableName:   row.TableName,
			EntityID:    row.EntityID,
			TrashedAt:   row.TrashedAt,
			Reason:      row.Reason,
			DisplayName: e.displayName(row),
		})
	}
	return entries, nil
}

func (e *Engine) displayName(row models.Trash) string {
	ops, ok := kinds[EntityKind(row.TableName)]
	if !ok {
		return "(Unknown Entity)"
	}
	name, err := ops.label(e.db, row.EntityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "(Deleted " + row.TableName + ")"
		}
		log.Printf("Error fetching display name for trash item %d: %v", row.ID, err)
		return "(Error Fetching Name)"
	}
	return name
}
