package models

import (
	"testing"
	"time"

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

	require.NoError(t, db.AutoMigrate(&TestPaper{}, &MCQ{}))
	return db
}

func TestTestPaperTotalMarks(t *testing.T) {
	db := newTestDB(t)

	paper := TestPaper{Name: "Mock 1", TopicID: 1}
	require.NoError(t, db.Create(&paper).Error)

	two, three := 2, 3
	mcqs := []MCQ{
		{Question: "q1", CorrectAnswer: "a", Marks: &two, TopicID: 1, TestPaperID: paper.ID},
		{Question: "q2", CorrectAnswer: "b", Marks: nil, TopicID: 1, TestPaperID: paper.ID},
		{Question: "q3", CorrectAnswer: "c", Marks: &three, TopicID: 1, TestPaperID: paper.ID},
	}
	require.NoError(t, db.Create(&mcqs).Error)

	total, err := TestPaperTotalMarks(db, paper.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, total)
}

func TestTestPaperTotalMarksSkipsTrashed(t *testing.T) {
	db := newTestDB(t)

	paper := TestPaper{Name: "Mock 2", TopicID: 1}
	require.NoError(t, db.Create(&paper).Error)

	ten := 10
	now := time.Now()
	trashed := MCQ{Question: "gone", CorrectAnswer: "a", Marks: &ten, TopicID: 1, TestPaperID: paper.ID, DeletedAt: &now}
	require.NoError(t, db.Create(&trashed).Error)

	total, err := TestPaperTotalMarks(db, paper.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, total)
}

func TestTestPaperTotalMarksEmptyPaper(t *testing.T) {
	db := newTestDB(t)

	paper := TestPaper{Name: "Mock 3", TopicID: 1}
	require.NoError(t, db.Create(&paper).Error)

	total, err := TestPaperTotalMarks(db, paper.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, total)
}
