package repositoryImp

import (
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/breaking-byts/Life-Os-sub000/entities"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entities.Course{},
		&entities.CourseMeeting{},
		&entities.CalendarEvent{},
		&entities.Assignment{},
		&entities.Exam{},
		&entities.WeekPlanBlock{},
	))
	return db
}

func seedCourse(t *testing.T, db *gorm.DB, name string, active bool) uint {
	t.Helper()
	c := entities.Course{Name: name, Color: "#336699", IsActive: true}
	require.NoError(t, db.Create(&c).Error)
	if !active {
		// The gorm default tag swallows a zero value on insert.
		require.NoError(t, db.Model(&c).Update("is_active", false).Error)
	}
	return c.CourseID
}

func TestActiveMeetings_JoinsCourseAndSkipsInactive(t *testing.T) {
	db := newTestDB(t)
	repo := New(db)

	activeID := seedCourse(t, db, "Algorithms", true)
	inactiveID := seedCourse(t, db, "Archived", false)

	require.NoError(t, db.Create(&entities.CourseMeeting{
		CourseID: activeID, DayOfWeek: 1, StartTime: "09:00", EndTime: "10:30", MeetingType: "Lecture",
	}).Error)
	require.NoError(t, db.Create(&entities.CourseMeeting{
		CourseID: inactiveID, DayOfWeek: 2, StartTime: "11:00", EndTime: "12:00",
	}).Error)

	rows, err := repo.ActiveMeetings()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Algorithms", rows[0].CourseName)
	assert.Equal(t, "#336699", rows[0].Color)
	assert.Equal(t, 1, rows[0].DayOfWeek)
}

func TestBlocksInRange(t *testing.T) {
	db := newTestDB(t)
	repo := New(db)
	courseID := seedCourse(t, db, "Algorithms", true)

	require.NoError(t, db.Create(&entities.WeekPlanBlock{
		WeekStartDate: "2026-03-02", StartAt: "2026-03-03T08:00:00", EndAt: "2026-03-03T09:30:00",
		BlockType: entities.BlockTypeStudy, CourseID: &courseID, Status: entities.BlockStatusSuggested,
	}).Error)
	require.NoError(t, db.Create(&entities.WeekPlanBlock{
		WeekStartDate: "2026-03-09", StartAt: "2026-03-10T08:00:00", EndAt: "2026-03-10T09:30:00",
		BlockType: entities.BlockTypeStudy, Status: entities.BlockStatusSuggested,
	}).Error)

	rows, err := repo.BlocksInRange("2026-03-02", "2026-03-08")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].Color, "course color joined in")
	assert.Equal(t, "#336699", *rows[0].Color)
}

func TestDueAssignments_FiltersCompletedAndRange(t *testing.T) {
	db := newTestDB(t)
	repo := New(db)
	courseID := seedCourse(t, db, "Algorithms", true)

	require.NoError(t, db.Create(&entities.Assignment{
		CourseID: courseID, Title: "PS1", DueDate: "2026-03-05T23:59:00",
	}).Error)
	require.NoError(t, db.Create(&entities.Assignment{
		CourseID: courseID, Title: "Done", DueDate: "2026-03-05", IsCompleted: true,
	}).Error)
	require.NoError(t, db.Create(&entities.Assignment{
		CourseID: courseID, Title: "Next month", DueDate: "2026-04-05",
	}).Error)

	rows, err := repo.DueAssignments("2026-03-02", "2026-03-08")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "PS1", rows[0].Title)
}

func TestExamsInRange(t *testing.T) {
	db := newTestDB(t)
	repo := New(db)
	courseID := seedCourse(t, db, "Algorithms", true)

	require.NoError(t, db.Create(&entities.Exam{
		CourseID: courseID, Title: "Midterm", ExamDate: "2026-03-06T13:00:00", DurationMinutes: 120,
	}).Error)
	require.NoError(t, db.Create(&entities.Exam{
		CourseID: courseID, Title: "Final", ExamDate: "2026-06-10",
	}).Error)

	rows, err := repo.ExamsInRange("2026-03-02", "2026-03-08")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Midterm", rows[0].Title)
	assert.Equal(t, 120, rows[0].DurationMinutes)
}

func TestUpsertImported_KeyedByFeedAndUID(t *testing.T) {
	db := newTestDB(t)
	repo := New(db)

	ev := entities.CalendarEvent{
		Title: "Team sync", StartAt: "2026-03-02T10:00:00", EndAt: "2026-03-02T10:30:00",
		Category: "imported", Locked: true, CalendarID: "school", ExternalUID: "weekly@remote",
	}
	require.NoError(t, repo.UpsertImported(&ev))
	firstID := ev.EventID
	require.NotZero(t, firstID)

	// Same key again: updates in place, no second row.
	again := entities.CalendarEvent{
		Title: "Team sync (moved)", StartAt: "2026-03-02T11:00:00", EndAt: "2026-03-02T11:30:00",
		Category: "imported", Locked: true, CalendarID: "school", ExternalUID: "weekly@remote",
	}
	require.NoError(t, repo.UpsertImported(&again))
	assert.Equal(t, firstID, again.EventID)

	var all []entities.CalendarEvent
	require.NoError(t, db.Find(&all).Error)
	require.Len(t, all, 1)
	assert.Equal(t, "Team sync (moved)", all[0].Title)

	// Same UID under another feed is a distinct row.
	other := entities.CalendarEvent{
		Title: "Other feed", StartAt: "2026-03-02T10:00:00", EndAt: "2026-03-02T10:30:00",
		CalendarID: "personal", ExternalUID: "weekly@remote",
	}
	require.NoError(t, repo.UpsertImported(&other))
	require.NoError(t, db.Find(&all).Error)
	assert.Len(t, all, 2)
}

func TestPruneImported(t *testing.T) {
	db := newTestDB(t)
	repo := New(db)

	seed := func(feed, uid string) {
		require.NoError(t, repo.UpsertImported(&entities.CalendarEvent{
			Title: uid, StartAt: "2026-03-02T10:00:00", EndAt: "2026-03-02T11:00:00",
			CalendarID: feed, ExternalUID: uid,
		}))
	}
	seed("school", "a")
	seed("school", "b")
	seed("school", "c")
	seed("personal", "a")

	n, err := repo.PruneImported("school", []string{"a", "c"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	var remaining []entities.CalendarEvent
	require.NoError(t, db.Where("calendar_id = ?", "school").Find(&remaining).Error)
	assert.Len(t, remaining, 2)

	var untouched []entities.CalendarEvent
	require.NoError(t, db.Where("calendar_id = ?", "personal").Find(&untouched).Error)
	assert.Len(t, untouched, 1, "other feeds never pruned")

	// Empty keep wipes the whole feed (remote went empty).
	n, err = repo.PruneImported("school", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}
