package repositoryImp

import (
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/breaking-byts/Life-Os-sub000/entities"
	"github.com/breaking-byts/Life-Os-sub000/pkg/block/repository"
)

func newTestRepo(t *testing.T) repository.BlockRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.WeekPlanBlock{}))
	return New(db)
}

func suggestedBlock(week, day string) *entities.WeekPlanBlock {
	return &entities.WeekPlanBlock{
		WeekStartDate: week,
		StartAt:       day + "T08:00:00",
		EndAt:         day + "T09:30:00",
		BlockType:     entities.BlockTypeStudy,
		Title:         "Focus block",
		Status:        entities.BlockStatusSuggested,
	}
}

func TestCreateAndFind(t *testing.T) {
	repo := newTestRepo(t)

	b := suggestedBlock("2026-03-02", "2026-03-02")
	require.NoError(t, repo.Create(b))
	require.NotZero(t, b.BlockID)

	got, err := repo.FindByID(b.BlockID)
	require.NoError(t, err)
	assert.Equal(t, "Focus block", got.Title)
	assert.Equal(t, entities.BlockStatusSuggested, got.Status)
}

func TestCreate_Validation(t *testing.T) {
	repo := newTestRepo(t)

	bad := suggestedBlock("2026-03-02", "2026-03-02")
	bad.BlockType = "nap"
	assert.Error(t, repo.Create(bad))

	badStatus := suggestedBlock("2026-03-02", "2026-03-02")
	badStatus.Status = "done"
	assert.Error(t, repo.Create(badStatus))

	// Empty status defaults to suggested.
	defaulted := suggestedBlock("2026-03-02", "2026-03-02")
	defaulted.Status = ""
	require.NoError(t, repo.Create(defaulted))
	assert.Equal(t, entities.BlockStatusSuggested, defaulted.Status)
}

func TestFindByID_NotFound(t *testing.T) {
	repo := newTestRepo(t)
	_, err := repo.FindByID(999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSetStatus(t *testing.T) {
	repo := newTestRepo(t)
	b := suggestedBlock("2026-03-02", "2026-03-02")
	require.NoError(t, repo.Create(b))

	got, err := repo.SetStatus(b.BlockID, entities.BlockStatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, entities.BlockStatusAccepted, got.Status)

	_, err = repo.SetStatus(b.BlockID, "done")
	assert.Error(t, err)

	_, err = repo.SetStatus(999, entities.BlockStatusAccepted)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete(t *testing.T) {
	repo := newTestRepo(t)
	b := suggestedBlock("2026-03-02", "2026-03-02")
	require.NoError(t, repo.Create(b))

	require.NoError(t, repo.Delete(b.BlockID))
	_, err := repo.FindByID(b.BlockID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, repo.Delete(b.BlockID), ErrNotFound)
}

func TestListByWeek_OrderedAndScoped(t *testing.T) {
	repo := newTestRepo(t)

	late := suggestedBlock("2026-03-02", "2026-03-03")
	late.StartAt = "2026-03-03T14:00:00"
	require.NoError(t, repo.Create(late))
	require.NoError(t, repo.Create(suggestedBlock("2026-03-02", "2026-03-02")))
	require.NoError(t, repo.Create(suggestedBlock("2026-03-09", "2026-03-09")))

	got, err := repo.ListByWeek("2026-03-02")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Less(t, got[0].StartAt, got[1].StartAt)
}

func TestBulkCreate(t *testing.T) {
	repo := newTestRepo(t)

	created, err := repo.BulkCreate([]entities.WeekPlanBlock{
		*suggestedBlock("2026-03-02", "2026-03-02"),
		*suggestedBlock("2026-03-02", "2026-03-03"),
	})
	require.NoError(t, err)
	require.Len(t, created, 2)
	assert.NotZero(t, created[0].BlockID)
	assert.NotZero(t, created[1].BlockID)

	// One bad row rejects the whole batch before any insert.
	bad := *suggestedBlock("2026-03-02", "2026-03-04")
	bad.BlockType = "nap"
	_, err = repo.BulkCreate([]entities.WeekPlanBlock{*suggestedBlock("2026-03-02", "2026-03-04"), bad})
	require.Error(t, err)

	got, err := repo.ListByWeek("2026-03-02")
	require.NoError(t, err)
	assert.Len(t, got, 2)

	created, err = repo.BulkCreate(nil)
	require.NoError(t, err)
	assert.Empty(t, created)
}

func TestClearSuggested_LeavesAcceptedAndLocked(t *testing.T) {
	repo := newTestRepo(t)

	require.NoError(t, repo.Create(suggestedBlock("2026-03-02", "2026-03-02")))
	require.NoError(t, repo.Create(suggestedBlock("2026-03-02", "2026-03-03")))

	accepted := suggestedBlock("2026-03-02", "2026-03-04")
	accepted.Status = entities.BlockStatusAccepted
	require.NoError(t, repo.Create(accepted))

	locked := suggestedBlock("2026-03-02", "2026-03-05")
	locked.Status = entities.BlockStatusLocked
	require.NoError(t, repo.Create(locked))

	otherWeek := suggestedBlock("2026-03-09", "2026-03-09")
	require.NoError(t, repo.Create(otherWeek))

	n, err := repo.ClearSuggested("2026-03-02")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	got, err := repo.ListByWeek("2026-03-02")
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, b := range got {
		assert.NotEqual(t, entities.BlockStatusSuggested, b.Status)
	}

	other, err := repo.ListByWeek("2026-03-09")
	require.NoError(t, err)
	assert.Len(t, other, 1, "other weeks untouched")
}
