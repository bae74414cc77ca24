package trash

import (
	"testing"
	"time"

	"caprep/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListEnrichesDisplayNames(t *testing.T) {
	db := newTestDB(t)
	tr := seedTree(t, db)
	engine := NewEngine(db, nil)

	_, err := engine.MoveToTrash(KindNote, tr.note.ID, "")
	require.NoError(t, err)
	_, err = engine.MoveToTrash(KindVideoNote, tr.video.ID, "")
	require.NoError(t, err)

	entries, err := engine.List()
	require.NoError(t, err)
	require.Len(t, entries, 2)

	byTable := map[string]Entry{}
	for _, entry := range entries {
		byTable[entry.TableName] = entry
	}
	assert.Equal(t, "RTP May", byTable["Note"].DisplayName)
	assert.Equal(t, "Video Note", byTable["VideoNote"].DisplayName)
}

func TestListOrdersNewestFirst(t *testing.T) {
	db := newTestDB(t)
	engine := NewEngine(db, nil)

	older := models.Trash{TableName: "Bogus", EntityID: 1, TrashedAt: time.Now().Add(-time.Hour)}
	newer := models.Trash{TableName: "Bogus", EntityID: 2, TrashedAt: time.Now()}
	require.NoError(t, db.Create(&older).Error)
	require.NoError(t, db.Create(&newer).Error)

	entries, err := engine.List()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, newer.EntityID, entries[0].EntityID)
	assert.Equal(t, older.EntityID, entries[1].EntityID)
}

func TestListPlaceholderNames(t *testing.T) {
	db := newTestDB(t)
	tr := seedTree(t, db)
	engine := NewEngine(db, nil)

	_, err := engine.MoveToTrash(KindMCQ, tr.mcq.ID, "")
	require.NoError(t, err)

	// Entity vanished underneath its trash row
	require.NoError(t, db.Where("id = ?", tr.mcq.ID).Delete(&models.MCQ{}).Error)

	// Trash row pointing at a table that does not exist
	bogus := models.Trash{TableName: "Bogus", EntityID: 9, TrashedAt: time.Now()}
	require.NoError(t, db.Create(&bogus).Error)

	entries, err := engine.List()
	require.NoError(t, err)
	require.Len(t, entries, 2)

	byTable := map[string]Entry{}
	for _, entry := range entries {
		byTable[entry.TableName] = entry
	}
	assert.Equal(t, "(Deleted MCQ)", byTable["MCQ"].DisplayName)
	assert.Equal(t, "(Unknown Entity)", byTable["Bogus"].DisplayName)
}

func TestListIsReadOnly(t *testing.T) {
	db := newTestDB(t)
	tr := seedTree(t, db)
	engine := NewEngine(db, nil)

	_, err := engine.MoveToTrash(KindTestPaper, tr.paper.ID, "")
	require.NoError(t, err)

	first, err := engine.List()
	require.NoError(t, err)
	second, err := engine.List()
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// Listing left both the trash and the paper untouched
	assert.EqualValues(t, 1, trashCount(t, db))
	assert.NotNil(t, deletedAtOf(t, db, &models.TestPaper{}, tr.paper.ID))
}
