package repositories

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/esathi/engineersathi/internal/app/models/dto"
)

func buildFilteredSQL(t *testing.T, filter dto.NoteFilter) (string, []interface{}) {
	t.Helper()

	b := applyNoteFilters(
		squirrel.Select("n.id").From("notes n").PlaceholderFormat(squirrel.Dollar),
		filter,
	)
	sql, args, err := b.ToSql()
	require.NoError(t, err)
	return sql, args
}

func TestApplyNoteFilters_Empty(t *testing.T) {
	sql, args := buildFilteredSQL(t, dto.NoteFilter{})

	assert.Equal(t, "SELECT n.id FROM notes n", sql)
	assert.Empty(t, args)
}

func TestApplyNoteFilters_Compose(t *testing.T) {
	sql, args := buildFilteredSQL(t, dto.NoteFilter{
		NoteType: "assignment",
		Featured: true,
	})

	assert.Contains(t, sql, "n.note_type = $1")
	assert.Contains(t, sql, "n.is_featured = $2")
	assert.Equal(t, []interface{}{"assignment", true}, args)
}

func TestApplyNoteFilters_AllSet(t *testing.T) {
	subjectID := int64(4)
	sql, args := buildFilteredSQL(t, dto.NoteFilter{
		SubjectID: &subjectID,
		Search:    "graph",
		NoteType:  "lecture",
		Chapter:   "3",
		Featured:  true,
	})

	assert.Contains(t, sql, "n.subject_id = $1")
	assert.Contains(t, sql, "n.title ILIKE $2")
	assert.Contains(t, sql, "n.note_type = $3")
	assert.Contains(t, sql, "n.chapter ILIKE $4")
	assert.Contains(t, sql, "n.is_featured = $5")
	assert.Equal(t, []interface{}{subjectID, "%graph%", "lecture", "%3%", true}, args)
}

func TestApplyNoteFilters_EscapesLikeMetacharacters(t *testing.T) {
	_, args := buildFilteredSQL(t, dto.NoteFilter{
		Search:  "100%_done",
		Chapter: `unit\2`,
	})

	assert.Equal(t, []interface{}{`%100\%\_done%`, `%unit\\2%`}, args)
}

func TestApplyNoteFilters_UnsetLeavesNoPredicates(t *testing.T) {
	sql, _ := buildFilteredSQL(t, dto.NoteFilter{Search: "sorting"})

	assert.NotContains(t, sql, "n.note_type")
	assert.NotContains(t, sql, "n.is_featured")
	assert.NotContains(t, sql, "n.subject_id")
	assert.NotContains(t, sql, "n.chapter")
}
