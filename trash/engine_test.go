package trash

import (
	"testing"
	"time"

	"caprep/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps every query on the same in-memory database
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Course{},
		&models.Topic{},
		&models.TestPaper{},
		&models.MCQ{},
		&models.Note{},
		&models.VideoNote{},
		&models.Trash{},
		&models.NewlyAdded{},
	))
	return db
}

type fakeRemover struct {
	removed []string
	err     error
}

func (f *fakeRemover) Remove(fileUrl string) error {
	f.removed = append(f.removed, fileUrl)
	return f.err
}

type tree struct {
	course models.Course
	topic  models.Topic
	paper  models.TestPaper
	mcq    models.MCQ
	note   models.Note
	video  models.VideoNote
}

func marks(n int) *int { return &n }

// seedTree creates one full content subtree: a course with a topic holding
// a test paper, an MCQ, a note and a video note.
func seedTree(t *testing.T, db *gorm.DB) tree {
	t.Helper()

	course := models.Course{Name: "CA Inter", CourseType: models.CourseTypeCAInter}
	require.NoError(t, db.Create(&course).Error)

	topic := models.Topic{Name: "Taxation", CourseID: course.ID}
	require.NoError(t, db.Create(&topic).Error)

	paper := models.TestPaper{Name: "Paper 1", TopicID: topic.ID, IsPublished: true}
	require.NoError(t, db.Create(&paper).Error)

	mcq := models.MCQ{
		Question:      "What is the basic exemption limit?",
		Options:       map[string]interface{}{"a": "2,50,000", "b": "3,00,000"},
		CorrectAnswer: "a",
		Marks:         marks(2),
		TopicID:       topic.ID,
		TestPaperID:   paper.ID,
	}
	require.NoError(t, db.Create(&mcq).Error)

	note := models.Note{
		Name:       "RTP May",
		Type:       models.NoteTypeRTP,
		FileName:   "rtp-may.pdf",
		FileUrl:    "/uploads/notes/rtp-may.pdf",
		TopicID:    topic.ID,
		CourseType: models.CourseTypeCAInter,
	}
	require.NoError(t, db.Create(&note).Error)

	video := models.VideoNote{
		Url:        "https://videos.example.com/taxation-intro",
		Type:       models.VideoNoteTypeRevision,
		TopicID:    topic.ID,
		CourseType: models.CourseTypeCAInter,
	}
	require.NoError(t, db.Create(&video).Error)

	return tree{course: course, topic: topic, paper: paper, mcq: mcq, note: note, video: video}
}

func deletedAtOf(t *testing.T, db *gorm.DB, model interface{}, id uint) *time.Time {
	t.Helper()
	var row struct{ DeletedAt *time.Time }
	require.NoError(t, db.Model(model).Select("deleted_at").Where("id = ?", id).Take(&row).Error)
	return row.DeletedAt
}

func trashCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&models.Trash{}).Count(&count).Error)
	return count
}

func TestMoveToTrashCourseCascade(t *testing.T) {
	db := newTestDB(t)
	tr := seedTree(t, db)
	engine := NewEngine(db, nil)

	_, err := engine.MoveToTrash(KindCourse, tr.course.ID, "")
	require.NoError(t, err)

	assert.NotNil(t, deletedAtOf(t, db, &models.Course{}, tr.course.ID))
	assert.NotNil(t, deletedAtOf(t, db, &models.Topic{}, tr.topic.ID))
	assert.NotNil(t, deletedAtOf(t, db, &models.TestPaper{}, tr.paper.ID))
	assert.NotNil(t, deletedAtOf(t, db, &models.MCQ{}, tr.mcq.ID))
	assert.NotNil(t, deletedAtOf(t, db, &models.Note{}, tr.note.ID))
	assert.NotNil(t, deletedAtOf(t, db, &models.VideoNote{}, tr.video.ID))

	// Exactly one trash row, for the root only
	var entries []models.Trash
	require.NoError(t, db.Find(&entries).Error)
	require.Len(t, entries, 1)
	assert.Equal(t, "Course", entries[0].TableName)
	assert.Equal(t, tr.course.ID, entries[0].EntityID)
}

func TestMoveToTrashReturnsUpdatedRoot(t *testing.T) {
	db := newTestDB(t)
	tr := seedTree(t, db)
	engine := NewEngine(db, nil)

	entity, err := engine.MoveToTrash(KindTopic, tr.topic.ID, "cleanup")
	require.NoError(t, err)

	topic, ok := entity.(*models.Topic)
	require.True(t, ok)
	assert.Equal(t, tr.topic.ID, topic.ID)
	assert.NotNil(t, topic.DeletedAt)

	var entry models.Trash
	require.NoError(t, db.Take(&entry).Error)
	assert.Equal(t, "cleanup", entry.Reason)
}

func TestMoveToTrashNotFound(t *testing.T) {
	db := newTestDB(t)
	engine := NewEngine(db, nil)

	_, err := engine.MoveToTrash(KindCourse, 99, "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMoveToTrashAlreadyTrashed(t *testing.T) {
	db := newTestDB(t)
	tr := seedTree(t, db)
	engine := NewEngine(db, nil)

	_, err := engine.MoveToTrash(KindMCQ, tr.mcq.ID, "")
	require.NoError(t, err)

	_, err = engine.MoveToTrash(KindMCQ, tr.mcq.ID, "")
	assert.ErrorIs(t, err, ErrAlreadyTrashed)
	assert.EqualValues(t, 1, trashCount(t, db))
}

func TestMoveToTrashUnknownKind(t *testing.T) {
	db := newTestDB(t)
	engine := NewEngine(db, nil)

	_, err := engine.MoveToTrash(EntityKind("Bogus"), 1, "")
	assert.ErrorIs(t, err, ErrUnknownEntityKind)
}

// The full lifecycle of a topic: trash tombstones the paper and MCQ under
// it, restore brings the whole subtree back and empties the trash.
func TestTopicTrashAndRestoreRoundTrip(t *testing.T) {
	db := newTestDB(t)
	tr := seedTree(t, db)
	engine := NewEngine(db, nil)

	_, err := engine.MoveToTrash(KindTopic, tr.topic.ID, "")
	require.NoError(t, err)

	assert.NotNil(t, deletedAtOf(t, db, &models.TestPaper{}, tr.paper.ID))
	assert.NotNil(t, deletedAtOf(t, db, &models.MCQ{}, tr.mcq.ID))
	assert.Nil(t, deletedAtOf(t, db, &models.Course{}, tr.course.ID))

	var entry models.Trash
	require.NoError(t, db.Take(&entry).Error)
	assert.Equal(t, "Topic", entry.TableName)

	require.NoError(t, engine.Restore(entry.ID))

	assert.Nil(t, deletedAtOf(t, db, &models.Topic{}, tr.topic.ID))
	assert.Nil(t, deletedAtOf(t, db, &models.TestPaper{}, tr.paper.ID))
	assert.Nil(t, deletedAtOf(t, db, &models.MCQ{}, tr.mcq.ID))
	assert.Nil(t, deletedAtOf(t, db, &models.Note{}, tr.note.ID))
	assert.Nil(t, deletedAtOf(t, db, &models.VideoNote{}, tr.video.ID))
	assert.EqualValues(t, 0, trashCount(t, db))
}

// Course restore must cover notes and video notes under its topics, not
// only test papers and MCQs.
func TestCourseRestoreIncludesNotesAndVideoNotes(t *testing.T) {
	db := newTestDB(t)
	tr := seedTree(t, db)
	engine := NewEngine(db, nil)

	_, err := engine.MoveToTrash(KindCourse, tr.course.ID, "")
	require.NoError(t, err)

	var entry models.Trash
	require.NoError(t, db.Take(&entry).Error)
	require.NoError(t, engine.Restore(entry.ID))

	assert.Nil(t, deletedAtOf(t, db, &models.Note{}, tr.note.ID))
	assert.Nil(t, deletedAtOf(t, db, &models.VideoNote{}, tr.video.ID))
	assert.Nil(t, deletedAtOf(t, db, &models.Topic{}, tr.topic.ID))
}

func TestRestoreNotFound(t *testing.T) {
	db := newTestDB(t)
	engine := NewEngine(db, nil)

	assert.ErrorIs(t, engine.Restore(42), ErrNotFound)
}

func TestRestoreUnknownEntityKind(t *testing.T) {
	db := newTestDB(t)
	engine := NewEngine(db, nil)

	entry := models.Trash{TableName: "Bogus", EntityID: 7, TrashedAt: time.Now()}
	require.NoError(t, db.Create(&entry).Error)

	assert.ErrorIs(t, engine.Restore(entry.ID), ErrUnknownEntityKind)
	// The corrupt row is left in place for inspection
	assert.EqualValues(t, 1, trashCount(t, db))
}

func TestPermanentlyDeleteCourseCascade(t *testing.T) {
	db := newTestDB(t)
	tr := seedTree(t, db)
	engine := NewEngine(db, nil)

	_, err := engine.MoveToTrash(KindCourse, tr.course.ID, "")
	require.NoError(t, err)

	var entry models.Trash
	require.NoError(t, db.Take(&entry).Error)
	require.NoError(t, engine.PermanentlyDelete(entry.ID))

	for _, model := range []interface{}{
		&models.Course{}, &models.Topic{}, &models.TestPaper{},
		&models.MCQ{}, &models.Note{}, &models.VideoNote{},
	} {
		var count int64
		require.NoError(t, db.Model(model).Count(&count).Error)
		assert.EqualValues(t, 0, count)
	}
	assert.EqualValues(t, 0, trashCount(t, db))

	// Purge is terminal: the trash id no longer resolves
	assert.ErrorIs(t, engine.Restore(entry.ID), ErrNotFound)
	assert.ErrorIs(t, engine.PermanentlyDelete(entry.ID), ErrNotFound)
}

func TestPermanentlyDeleteRemovesNoteFiles(t *testing.T) {
	db := newTestDB(t)
	tr := seedTree(t, db)
	remover := &fakeRemover{}
	engine := NewEngine(db, remover)

	_, err := engine.MoveToTrash(KindTopic, tr.topic.ID, "")
	require.NoError(t, err)

	var entry models.Trash
	require.NoError(t, db.Take(&entry).Error)
	require.NoError(t, engine.PermanentlyDelete(entry.ID))

	assert.Equal(t, []string{tr.note.FileUrl}, remover.removed)
}

func TestBlobRemovalFailureDoesNotFailPurge(t *testing.T) {
	db := newTestDB(t)
	tr := seedTree(t, db)
	remover := &fakeRemover{err: assert.AnError}
	engine := NewEngine(db, remover)

	_, err := engine.MoveToTrash(KindNote, tr.note.ID, "")
	require.NoError(t, err)

	var entry models.Trash
	require.NoError(t, db.Take(&entry).Error)

	// The store purge committed; the blob failure is logged and swallowed
	require.NoError(t, engine.PermanentlyDelete(entry.ID))

	var count int64
	require.NoError(t, db.Model(&models.Note{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
	assert.Equal(t, []string{tr.note.FileUrl}, remover.removed)
}

func TestPurgeAllIsolatesFailures(t *testing.T) {
	db := newTestDB(t)
	tr := seedTree(t, db)
	engine := NewEngine(db, nil)

	second := models.MCQ{
		Question:      "Second question",
		CorrectAnswer: "a",
		TopicID:       tr.topic.ID,
		TestPaperID:   tr.paper.ID,
	}
	require.NoError(t, db.Create(&second).Error)
	third := models.MCQ{
		Question:      "Third question",
		CorrectAnswer: "b",
		TopicID:       tr.topic.ID,
		TestPaperID:   tr.paper.ID,
	}
	require.NoError(t, db.Create(&third).Error)

	for _, id := range []uint{tr.mcq.ID, second.ID, third.ID} {
		_, err := engine.MoveToTrash(KindMCQ, id, "")
		require.NoError(t, err)
	}

	// Break the middle entry by removing its underlying row directly
	require.NoError(t, db.Where("id = ?", second.ID).Delete(&models.MCQ{}).Error)

	purged, failed, err := engine.PurgeAll()
	require.NoError(t, err)
	assert.Equal(t, 2, purged)
	assert.Equal(t, 1, failed)

	// The failing entry stays behind; the others are gone
	var remaining []models.Trash
	require.NoError(t, db.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, second.ID, remaining[0].EntityID)
}

func TestTrashRowUniquePerEntity(t *testing.T) {
	db := newTestDB(t)
	tr := seedTree(t, db)
	engine := NewEngine(db, nil)

	_, err := engine.MoveToTrash(KindNote, tr.note.ID, "")
	require.NoError(t, err)

	// Direct duplicate insert violates the composite unique index
	dup := models.Trash{TableName: "Note", EntityID: tr.note.ID, TrashedAt: time.Now()}
	assert.Error(t, db.Create(&dup).Error)
}

func TestParseKind(t *testing.T) {
	kind, err := ParseKind("TestPaper")
	require.NoError(t, err)
	assert.Equal(t, KindTestPaper, kind)

	_, err = ParseKind("Basket")
	assert.ErrorIs(t, err, ErrUnknownEntityKind)
}
