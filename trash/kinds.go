package trash

import (
	"caprep/models"
	"time"

	"gorm.io/gorm"
)

// EntityKind identifies which table a trash row points at. The set is
// closed; anything else in a trash row is data corruption.
type EntityKind string

const (
	KindCourse    EntityKind = "Course"
	KindTopic     EntityKind = "Topic"
	KindTestPaper EntityKind = "TestPaper"
	KindMCQ       EntityKind = "MCQ"
	KindNote      EntityKind = "Note"
	KindVideoNote EntityKind = "VideoNote"
)

// kindOps bundles the per-kind cascade behaviour so the engine can dispatch
// generically instead of repeating a six-way switch per operation.
type kindOps struct {
	// fetch loads the root row (tombstoned or not) and reports its tombstone.
	fetch func(db *gorm.DB, id uint) (interface{}, *time.Time, error)
	// label resolves the human readable display name for the row.
	label func(db *gorm.DB, id uint) (string, error)
	// tombstone marks the row and its whole cascade set as deleted.
	tombstone func(tx *gorm.DB, id uint, at time.Time) error
	// restore clears tombstones on the row and its whole cascade set.
	restore func(tx *gorm.DB, id uint) error
	// purge removes the row and its cascade set child-before-parent and
	// returns file URLs that need blob cleanup after commit.
	purge func(tx *gorm.DB, id uint) ([]string, error)
}

// ParseKind validates a table name coming in from a request or a stored row
func ParseKind(tableName string) (EntityKind, error) {
	kind := EntityKind(tableName)
	if _, ok := kinds[kind]; !ok {
		return "", ErrUnknownEntityKind
	}
	return kind, nil
}

var kinds = map[EntityKind]kindOps{
	KindCourse: {
		fetch: func(db *gorm.DB, id uint) (interface{}, *time.Time, error) {
			var row models.Course
			if err := db.Where("id = ?", id).Take(&row).Error; err != nil {
				return nil, nil, err
			}
			return &row, row.DeletedAt, nil
		},
		label: nameLabel(&models.Course{}),
		tombstone: func(tx *gorm.DB, id uint, at time.Time) error {
			topicIDs, err := topicIDsOfCourse(tx, id)
			if err != nil {
				return err
			}
			if err := setDeletedAt(tx, &models.MCQ{}, "topic_id IN ?", topicIDs, &at); err != nil {
				return err
			}
			if err := setDeletedAt(tx, &models.TestPaper{}, "topic_id IN ?", topicIDs, &at); err != nil {
				return err
			}
			if err := setDeletedAt(tx, &models.Note{}, "topic_id IN ?", topicIDs, &at); err != nil {
				return err
			}
			if err := setDeletedAt(tx, &models.VideoNote{}, "topic_id IN ?", topicIDs, &at); err != nil {
				return err
			}
			if err := setDeletedAt(tx, &models.Topic{}, "course_id = ?", id, &at); err != nil {
				return err
			}
			return setDeletedAt(tx, &models.Course{}, "id = ?", id, &at)
		},
		restore: func(tx *gorm.DB, id uint) error {
			topicIDs, err := topicIDsOfCourse(tx, id)
			if err != nil {
				return err
			}
			if err := setDeletedAt(tx, &models.Course{}, "id = ?", id, nil); err != nil {
				return err
			}
			if err := setDeletedAt(tx, &models.Topic{}, "course_id = ?", id, nil); err != nil {
				return err
			}
			if err := setDeletedAt(tx, &models.TestPaper{}, "topic_id IN ?", topicIDs, nil); err != nil {
				return err
			}
			if err := setDeletedAt(tx, &models.MCQ{}, "topic_id IN ?", topicIDs, nil); err != nil {
				return err
			}
			if err := setDeletedAt(tx, &models.Note{}, "topic_id IN ?", topicIDs, nil); err != nil {
				return err
			}
			return setDeletedAt(tx, &models.VideoNote{}, "topic_id IN ?", topicIDs, nil)
		},
		purge: func(tx *gorm.DB, id uint) ([]string, error) {
			topicIDs, err := topicIDsOfCourse(tx, id)
			if err != nil {
				return nil, err
			}
			fileUrls, err := noteFileUrls(tx, "topic_id IN ?", topicIDs)
			if err != nil {
				return nil, err
			}
			if err := tx.Where("topic_id IN ?", topicIDs).Delete(&models.MCQ{}).Error; err != nil {
				return nil, err
			}
			if err := tx.Where("topic_id IN ?", topicIDs).Delete(&models.TestPaper{}).Error; err != nil {
				return nil, err
			}
			if err := tx.Where("topic_id IN ?", topicIDs).Delete(&models.Note{}).Error; err != nil {
				return nil, err
			}
			if err := tx.Where("topic_id IN ?", topicIDs).Delete(&models.VideoNote{}).Error; err != nil {
				return nil, err
			}
			if err := tx.Where("course_id = ?", id).Delete(&models.Topic{}).Error; err != nil {
				return nil, err
			}
			return fileUrls, deleteRoot(tx, &models.Course{}, id)
		},
	},

	KindTopic: {
		fetch: func(db *gorm.DB, id uint) (interface{}, *time.Time, error) {
			var row models.Topic
			if err := db.Where("id = ?", id).Take(&row).Error; err != nil {
				return nil, nil, err
			}
			return &row, row.DeletedAt, nil
		},
		label: nameLabel(&models.Topic{}),
		tombstone: func(tx *gorm.DB, id uint, at time.Time) error {
			if err := setDeletedAt(tx, &models.MCQ{}, "topic_id = ?", id, &at); err != nil {
				return err
			}
			if err := setDeletedAt(tx, &models.TestPaper{}, "topic_id = ?", id, &at); err != nil {
				return err
			}
			if err := setDeletedAt(tx, &models.Note{}, "topic_id = ?", id, &at); err != nil {
				return err
			}
			if err := setDeletedAt(tx, &models.VideoNote{}, "topic_id = ?", id, &at); err != nil {
				return err
			}
			return setDeletedAt(tx, &models.Topic{}, "id = ?", id, &at)
		},
		restore: func(tx *gorm.DB, id uint) error {
			if err := setDeletedAt(tx, &models.Topic{}, "id = ?", id, nil); err != nil {
				return err
			}
			if err := setDeletedAt(tx, &models.TestPaper{}, "topic_id = ?", id, nil); err != nil {
				return err
			}
			if err := setDeletedAt(tx, &models.MCQ{}, "topic_id = ?", id, nil); err != nil {
				return err
			}
			if err := setDeletedAt(tx, &models.Note{}, "topic_id = ?", id, nil); err != nil {
				return err
			}
			return setDeletedAt(tx, &models.VideoNote{}, "topic_id = ?", id, nil)
		},
		purge: func(tx *gorm.DB, id uint) ([]string, error) {
			fileUrls, err := noteFileUrls(tx, "topic_id = ?", id)
			if err != nil {
				return nil, err
			}
			if err := tx.Where("topic_id = ?", id).Delete(&models.MCQ{}).Error; err != nil {
				return nil, err
			}
			if err := tx.Where("topic_id = ?", id).Delete(&models.TestPaper{}).Error; err != nil {
				return nil, err
			}
			if err := tx.Where("topic_id = ?", id).Delete(&models.Note{}).Error; err != nil {
				return nil, err
			}
			if err := tx.Where("topic_id = ?", id).Delete(&models.VideoNote{}).Error; err != nil {
				return nil, err
			}
			return fileUrls, deleteRoot(tx, &models.Topic{}, id)
		},
	},

	KindTestPaper: {
		fetch: func(db *gorm.DB, id uint) (interface{}, *time.Time, error) {
			var row models.TestPaper
			if err := db.Where("id = ?", id).Take(&row).Error; err != nil {
				return nil, nil, err
			}
			return &row, row.DeletedAt, nil
		},
		label: nameLabel(&models.TestPaper{}),
		tombstone: func(tx *gorm.DB, id uint, at time.Time) error {
			if err := setDeletedAt(tx, &models.MCQ{}, "test_paper_id = ?", id, &at); err != nil {
				return err
			}
			return setDeletedAt(tx, &models.TestPaper{}, "id = ?", id, &at)
		},
		restore: func(tx *gorm.DB, id uint) error {
			if err := setDeletedAt(tx, &models.TestPaper{}, "id = ?", id, nil); err != nil {
				return err
			}
			return setDeletedAt(tx, &models.MCQ{}, "test_paper_id = ?", id, nil)
		},
		purge: func(tx *gorm.DB, id uint) ([]string, error) {
			if err := tx.Where("test_paper_id = ?", id).Delete(&models.MCQ{}).Error; err != nil {
				return nil, err
			}
			return nil, deleteRoot(tx, &models.TestPaper{}, id)
		},
	},

	KindMCQ: {
		fetch: func(db *gorm.DB, id uint) (interface{}, *time.Time, error) {
			var row models.MCQ
			if err := db.Where("id = ?", id).Take(&row).Error; err != nil {
				return nil, nil, err
			}
			return &row, row.DeletedAt, nil
		},
		label: func(db *gorm.DB, id uint) (string, error) {
			var row struct{ Question string }
			err := db.Model(&models.MCQ{}).Select("question").Where("id = ?", id).Take(&row).Error
			return row.Question, err
		},
		tombstone: func(tx *gorm.DB, id uint, at time.Time) error {
			return setDeletedAt(tx, &models.MCQ{}, "id = ?", id, &at)
		},
		restore: func(tx *gorm.DB, id uint) error {
			return setDeletedAt(tx, &models.MCQ{}, "id = ?", id, nil)
		},
		purge: func(tx *gorm.DB, id uint) ([]string, error) {
			return nil, deleteRoot(tx, &models.MCQ{}, id)
		},
	},

	KindNote: {
		fetch: func(db *gorm.DB, id uint) (interface{}, *time.Time, error) {
			var row models.Note
			if err := db.Where("id = ?", id).Take(&row).Error; err != nil {
				return nil, nil, err
			}
			return &row, row.DeletedAt, nil
		},
		label: nameLabel(&models.Note{}),
		tombstone: func(tx *gorm.DB, id uint, at time.Time) error {
			return setDeletedAt(tx, &models.Note{}, "id = ?", id, &at)
		},
		restore: func(tx *gorm.DB, id uint) error {
			return setDeletedAt(tx, &models.Note{}, "id = ?", id, nil)
		},
		purge: func(tx *gorm.DB, id uint) ([]string, error) {
			fileUrls, err := noteFileUrls(tx, "id = ?", id)
			if err != nil {
				return nil, err
			}
			return fileUrls, deleteRoot(tx, &models.Note{}, id)
		},
	},

	KindVideoNote: {
		fetch: func(db *gorm.DB, id uint) (interface{}, *time.Time, error) {
			var row models.VideoNote
			if err := db.Where("id = ?", id).Take(&row).Error; err != nil {
				return nil, nil, err
			}
			return &row, row.DeletedAt, nil
		},
		label: func(db *gorm.DB, id uint) (string, error) {
			// Video notes carry no name; the UI shows a fixed label.
			var row struct{ ID uint }
			err := db.Model(&models.VideoNote{}).Select("id").Where("id = ?", id).Take(&row).Error
			return "Video Note", err
		},
		tombstone: func(tx *gorm.DB, id uint, at time.Time) error {
			return setDeletedAt(tx, &models.VideoNote{}, "id = ?", id, &at)
		},
		restore: func(tx *gorm.DB, id uint) error {
			return setDeletedAt(tx, &models.VideoNote{}, "id = ?", id, nil)
		},
		purge: func(tx *gorm.DB, id uint) ([]string, error) {
			return nil, deleteRoot(tx, &models.VideoNote{}, id)
		},
	},
}

// topicIDsOfCourse lists every topic id under a course, tombstoned ones
// included. Cascades must cover the whole subtree regardless of state.
func topicIDsOfCourse(tx *gorm.DB, courseID uint) ([]uint, error) {
	var ids []uint
	err := tx.Model(&models.Topic{}).Where("course_id = ?", courseID).Pluck("id", &ids).Error
	return ids, err
}

// setDeletedAt updates the tombstone column on every row matching the
// condition. A nil timestamp clears it.
func setDeletedAt(tx *gorm.DB, model interface{}, query string, arg interface{}, at *time.Time) error {
	return tx.Model(model).Where(query, arg).Update("deleted_at", at).Error
}

// noteFileUrls collects uploaded file URLs for notes matching the condition
// so the engine can clean up blobs after the purge commits.
func noteFileUrls(tx *gorm.DB, query string, arg interface{}) ([]string, error) {
	var urls []string
	err := tx.Model(&models.Note{}).Where(query, arg).Pluck("file_url", &urls).Error
	return urls, err
}

// deleteRoot removes the root row itself and fails NotFound when the row is
// already gone, so purging a dangling trash entry reports an error.
func deleteRoot(tx *gorm.DB, model interface{}, id uint) error {
	res := tx.Where("id = ?", id).Delete(model)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// nameLabel builds a label resolver for entities whose display name is
// their name column.
func nameLabel(model interface{}) func(db *gorm.DB, id uint) (string, error) {
	return func(db *gorm.DB, id uint) (string, error) {
		var row struct{ Name string }
		err := db.Model(model).Select("name").Where("id = ?", id).Take(&row).Error
		return row.Name, err
	}
}
