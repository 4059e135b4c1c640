package repositoryImp

import (
	"errors"

	"gorm.io/gorm"

	"github.com/breaking-byts/Life-Os-sub000/entities"
	"github.com/breaking-byts/Life-Os-sub000/pkg/calendar/repository"
)

type calRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.CalendarRepository { return &calRepo{db} }

func (r *calRepo) ActiveMeetings() ([]repository.MeetingRow, error) {
	var out []repository.MeetingRow
	err := r.db.Raw(`
		SELECT cm.meeting_id, cm.course_id, cm.day_of_week, cm.start_time, cm.end_time,
		       cm.meeting_type, c.name AS course_name, c.color
		FROM course_meetings cm
		JOIN courses c ON c.course_id = cm.course_id
		WHERE c.is_active = 1`).Scan(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *calRepo) Events() ([]entities.CalendarEvent, error) {
	var out []entities.CalendarEvent
	if err := r.db.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *calRepo) BlocksInRange(startDate, endDate string) ([]repository.BlockRow, error) {
	var out []repository.BlockRow
	err := r.db.Raw(`
		SELECT wpb.block_id, wpb.start_at, wpb.end_at, wpb.block_type, wpb.course_id,
		       wpb.title, wpb.status, c.color
		FROM week_plan_blocks wpb
		LEFT JOIN courses c ON c.course_id = wpb.course_id
		WHERE substr(wpb.start_at, 1, 10) >= ? AND substr(wpb.start_at, 1, 10) <= ?
		ORDER BY wpb.start_at`, startDate, endDate).Scan(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *calRepo) DueAssignments(startDate, endDate string) ([]repository.AssignmentRow, error) {
	var out []repository.AssignmentRow
	err := r.db.Raw(`
		SELECT a.assignment_id, a.course_id, a.title, a.due_date, c.color
		FROM assignments a
		JOIN courses c ON c.course_id = a.course_id
		WHERE a.is_completed = 0
		  AND substr(a.due_date, 1, 10) >= ? AND substr(a.due_date, 1, 10) <= ?`,
		startDate, endDate).Scan(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *calRepo) ExamsInRange(startDate, endDate string) ([]repository.ExamRow, error) {
	var out []repository.ExamRow
	err := r.db.Raw(`
		SELECT e.exam_id, e.course_id, e.title, e.exam_date, e.duration_minutes, c.color
		FROM exams e
		JOIN courses c ON c.course_id = e.course_id
		WHERE substr(e.exam_date, 1, 10) >= ? AND substr(e.exam_date, 1, 10) <= ?`,
		startDate, endDate).Scan(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *calRepo) UpsertImported(ev *entities.CalendarEvent) error {
	var existing entities.CalendarEvent
	err := r.db.Where("calendar_id = ? AND external_uid = ?", ev.CalendarID, ev.ExternalUID).
		First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(ev).Error
	}
	if err != nil {
		return err
	}
	ev.EventID = existing.EventID
	ev.CreatedAt = existing.CreatedAt
	return r.db.Save(ev).Error
}

func (r *calRepo) PruneImported(calendarID string, keep []string) (int64, error) {
	q := r.db.Where("calendar_id = ?", calendarID)
	if len(keep) > 0 {
		q = q.Where("external_uid NOT IN ?", keep)
	}
	res := q.Delete(&entities.CalendarEvent{})
	return res.RowsAffected, res.Error
}
