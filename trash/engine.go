package trash

import (
	"errors"
	"log"
	"time"

	"caprep/models"

	"gorm.io/gorm"
)

// Sentinel errors returned by the engine. Controllers map these to HTTP
// statuses; everything else is a store failure.
var (
	ErrNotFound          = errors.New("record not found")
	ErrAlreadyTrashed    = errors.New("record is already in trash")
	ErrUnknownEntityKind = errors.New("unknown entity kind")
)

// FileRemover deletes an uploaded blob by its public URL. Removal runs
// outside the purge transaction and is allowed to fail.
type FileRemover interface {
	Remove(fileUrl string) error
}

// Engine owns the soft-delete, restore and purge transitions. It is the
// only component that writes deleted_at columns or trash rows.
type Engine struct {
	db    *gorm.DB
	files FileRemover
}

// NewEngine wires the engine to an entity store and an optional blob
// remover for purged note files.
func NewEngine(db *gorm.DB, files FileRemover) *Engine {
	return &Engine{db: db, files: files}
}

// MoveToTrash tombstones the entity and its whole cascade set and records
// one trash row for the root. It returns the updated root entity.
func (e *Engine) MoveToTrash(kind EntityKind, id uint, reason string) (interface{}, error) {
	ops, ok := kinds[kind]
	if !ok {
		return nil, ErrUnknownEntityKind
	}

	_, deletedAt, err := ops.fetch(e.db, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if deletedAt != nil {
		return nil, ErrAlreadyTrashed
	}

	at := time.Now()

	tx := e.db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	if err := ops.tombstone(tx, id, at); err != nil {
		tx.Rollback()
		return nil, err
	}
	entry := models.Trash{
		TableName: string(kind),
		EntityID:  id,
		TrashedAt: at,
		Reason:    reason,
	}
	if err := tx.Create(&entry).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	entity, _, err := ops.fetch(e.db, id)
	if err != nil {
		return nil, err
	}
	return entity, nil
}

// Restore clears tombstones on the trashed root and its whole cascade set
// and removes the trash row, all in one transaction.
func (e *Engine) Restore(trashID uint) error {
	tx := e.db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	var entry models.Trash
	if err := tx.Where("id = ?", trashID).Take(&entry).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	ops, ok := kinds[EntityKind(entry.TableName)]
	if !ok {
		tx.Rollback()
		return ErrUnknownEntityKind
	}

	if err := ops.restore(tx, entry.EntityID); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Delete(&models.Trash{}, entry.ID).Error; err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}

// PermanentlyDelete removes the trashed root and its whole cascade set from
// the store, child rows before parents, then cleans up any uploaded note
// files. Blob cleanup runs after commit and never fails the purge.
func (e *Engine) PermanentlyDelete(trashID uint) error {
	tx := e.db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	var entry models.Trash
	if err := tx.Where("id = ?", trashID).Take(&entry).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	ops, ok := kinds[EntityKind(entry.TableName)]
	if !ok {
		tx.Rollback()
		return ErrUnknownEntityKind
	}

	fileUrls, err := ops.purge(tx, entry.EntityID)
	if err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Delete(&models.Trash{}, entry.ID).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit().Error; err != nil {
		return err
	}

	if e.files != nil {
		for _, fileUrl := range fileUrls {
			if fileUrl == "" {
				continue
			}
			if err := e.files.Remove(fileUrl); err != nil {
				log.Printf("Failed to remove file %s for purged trash %d: %v", fileUrl, trashID, err)
			}
		}
	}
	return nil
}

// PurgeAll permanently deletes every trash row independently. A failing row
// is logged and skipped so one bad entry cannot block the rest.
func (e *Engine) PurgeAll() (purged int, failed int, err error) {
	var entries []models.Trash
	if err := e.db.Find(&entries).Error; err != nil {
		return 0, 0, err
	}

	for _, entry := range entries {
		if err := e.PermanentlyDelete(entry.ID); err != nil {
			log.Printf("Failed to permanently delete trash item %d: %v", entry.ID, err)
			failed++
			continue
		}
		purged++
	}
	return purged, failed, nil
}
