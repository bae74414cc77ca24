package newlyadded

import (
	"errors"
	"log"
	"time"

	"caprep/models"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a registry row does not exist
var ErrNotFound = errors.New("newly added item not found")

// Entry is a registry row enriched with the referenced entity's display name
type Entry struct {
	ID          uint      `json:"id"`
	TableName   string    `json:"table_name"`
	EntityID    uint      `json:"entity_id"`
	AddedAt     time.Time `json:"added_at"`
	DisplayName string    `json:"display_name"`
}

// Registry tracks recently added content for UI highlighting. It is a flat
// record set with no cascade and no transactional tie to the entities it
// references.
type Registry struct {
	db *gorm.DB
}

func NewRegistry(db *gorm.DB) *Registry {
	return &Registry{db: db}
}

// Add marks an entity as newly added
func (r *Registry) Add(tableName string, entityID uint) (*models.NewlyAdded, error) {
	row := models.NewlyAdded{
		TableName: tableName,
		EntityID:  entityID,
		AddedAt:   time.Now(),
	}
	if err := r.db.Create(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// List returns registry rows newest-first with display names resolved.
// Lookup failures degrade to placeholder names, never to an error.
func (r *Registry) List() ([]Entry, error) {
	var rows []models.NewlyAdded
	if err := r.db.Order("added_at desc").Find(&rows).Error; err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, Entry{
			ID:          row.ID,
			TableName:   row.TableName,
			EntityID:    row.EntityID,
			AddedAt:     row.AddedAt,
			DisplayName: r.displayName(row),
		})
	}
	return entries, nil
}

// Remove drops an entity's newly-added marker
func (r *Registry) Remove(id uint) error {
	res := r.db.Delete(&models.NewlyAdded{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Registry) displayName(row models.NewlyAdded) string {
	var (
		name string
		err  error
	)

	switch row.TableName {
	case "Course":
		name, err = r.pluckName(&models.Course{}, "name", row.EntityID)
	case "Topic":
		name, err = r.pluckName(&models.Topic{}, "name", row.EntityID)
	case "TestPaper":
		name, err = r.pluckName(&models.TestPaper{}, "name", row.EntityID)
	case "MCQ":
		name, err = r.pluckName(&models.MCQ{}, "question", row.EntityID)
	case "Note":
		name, err = r.pluckName(&models.Note{}, "name", row.EntityID)
	case "VideoNote":
		// Video notes carry no name; the UI shows a fixed label.
		return "Video Note"
	default:
		return "(Unknown Entity)"
	}

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "(Deleted " + row.TableName + ")"
		}
		log.Printf("Error enriching newly added item %d: %v", row.ID, err)
		return "(Error Fetching Name)"
	}
	return name
}

func (r *Registry) pluckName(model interface{}, column string, id uint) (string, error) {
	var row struct{ Value string }
	err := r.db.Model(model).Select(column + " as value").Where("id = ?", id).Take(&row).Error
	return row.Value, err
}
