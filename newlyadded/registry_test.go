package newlyadded

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
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Course{},
		&models.Topic{},
		&models.TestPaper{},
		&models.MCQ{},
		&models.Note{},
		&models.VideoNote{},
		&models.NewlyAdded{},
	))
	return db
}

func TestAddAndList(t *testing.T) {
	db := newTestDB(t)
	registry := NewRegistry(db)

	course := models.Course{Name: "CA Final", CourseType: models.CourseTypeCAFinal}
	require.NoError(t, db.Create(&course).Error)

	row, err := registry.Add("Course", course.ID)
	require.NoError(t, err)
	assert.NotZero(t, row.ID)
	assert.False(t, row.AddedAt.IsZero())

	entries, err := registry.List()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Course", entries[0].TableName)
	assert.Equal(t, course.ID, entries[0].EntityID)
	assert.Equal(t, "CA Final", entries[0].DisplayName)
}

func TestListOrdersNewestFirst(t *testing.T) {
	db := newTestDB(t)
	registry := NewRegistry(db)

	older := models.NewlyAdded{TableName: "Course", EntityID: 1, AddedAt: time.Now().Add(-time.Hour)}
	newer := models.NewlyAdded{TableName: "Course", EntityID: 2, AddedAt: time.Now()}
	require.NoError(t, db.Create(&older).Error)
	require.NoError(t, db.Create(&newer).Error)

	entries, err := registry.List()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, newer.EntityID, entries[0].EntityID)
	assert.Equal(t, older.EntityID, entries[1].EntityID)
}

func TestListDisplayNameFallbacks(t *testing.T) {
	db := newTestDB(t)
	registry := NewRegistry(db)

	topic := models.Topic{Name: "Costing", CourseID: 1}
	require.NoError(t, db.Create(&topic).Error)
	video := models.VideoNote{Url: "https://videos.example.com/costing", TopicID: topic.ID}
	require.NoError(t, db.Create(&video).Error)

	_, err := registry.Add("Topic", topic.ID)
	require.NoError(t, err)
	_, err = registry.Add("VideoNote", video.ID)
	require.NoError(t, err)
	_, err = registry.Add("Note", 99) // referenced note never existed
	require.NoError(t, err)
	_, err = registry.Add("Bogus", 1)
	require.NoError(t, err)

	entries, err := registry.List()
	require.NoError(t, err)
	require.Len(t, entries, 4)

	byTable := map[string]Entry{}
	for _, entry := range entries {
		byTable[entry.TableName] = entry
	}
	assert.Equal(t, "Costing", byTable["Topic"].DisplayName)
	assert.Equal(t, "Video Note", byTable["VideoNote"].DisplayName)
	assert.Equal(t, "(Deleted Note)", byTable["Note"].DisplayName)
	assert.Equal(t, "(Unknown Entity)", byTable["Bogus"].DisplayName)
}

func TestRemove(t *testing.T) {
	db := newTestDB(t)
	registry := NewRegistry(db)

	row, err := registry.Add("TestPaper", 5)
	require.NoError(t, err)

	require.NoError(t, registry.Remove(row.ID))

	entries, err := registry.List()
	require.NoError(t, err)
	assert.Empty(t, entries)

	assert.ErrorIs(t, registry.Remove(row.ID), ErrNotFound)
}
