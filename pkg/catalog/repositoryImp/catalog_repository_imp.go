package repositoryImp

import (
	"gorm.io/gorm"

	"github.com/breaking-byts/Life-Os-sub000/entities"
	"github.com/breaking-byts/Life-Os-sub000/pkg/catalog/repository"
)

type catalogRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.CatalogRepository { return &catalogRepo{db} }

func (r *catalogRepo) CreateCourse(c *entities.Course) error { return r.db.Create(c).Error }

func (r *catalogRepo) ListCourses() ([]entities.Course, error) {
	var out []entities.Course
	if err := r.db.Order("name ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *catalogRepo) DeleteCourse(id uint) error {
	return r.db.Delete(&entities.Course{}, id).Error
}

func (r *catalogRepo) CreateMeeting(m *entities.CourseMeeting) error { return r.db.Create(m).Error }

func (r *catalogRepo) ListMeetings(courseID uint) ([]entities.CourseMeeting, error) {
	var out []entities.CourseMeeting
	q := r.db.Order("day_of_week ASC, start_time ASC")
	if courseID != 0 {
		q = q.Where("course_id = ?", courseID)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *catalogRepo) DeleteMeeting(id uint) error {
	return r.db.Delete(&entities.CourseMeeting{}, id).Error
}

func (r *catalogRepo) CreateEvent(e *entities.CalendarEvent) error { return r.db.Create(e).Error }

func (r *catalogRepo) ListEvents() ([]entities.CalendarEvent, error) {
	var out []entities.CalendarEvent
	if err := r.db.Order("start_at ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *catalogRepo) DeleteEvent(id uint) error {
	return r.db.Delete(&entities.CalendarEvent{}, id).Error
}

func (r *catalogRepo) CreateAssignment(a *entities.Assignment) error { return r.db.Create(a).Error }

func (r *catalogRepo) ListAssignments(courseID uint) ([]entities.Assignment, error) {
	var out []entities.Assignment
	q := r.db.Order("due_date ASC")
	if courseID != 0 {
		q = q.Where("course_id = ?", courseID)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *catalogRepo) DeleteAssignment(id uint) error {
	return r.db.Delete(&entities.Assignment{}, id).Error
}

func (r *catalogRepo) CreateExam(e *entities.Exam) error { return r.db.Create(e).Error }

func (r *catalogRepo) ListExams(courseID uint) ([]entities.Exam, error) {
	var out []entities.Exam
	q := r.db.Order("exam_date ASC")
	if courseID != 0 {
		q = q.Where("course_id = ?", courseID)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *catalogRepo) DeleteExam(id uint) error {
	return r.db.Delete(&entities.Exam{}, id).Error
}

func (r *catalogRepo) CreateWeeklyTask(t *entities.WeeklyTask) error { return r.db.Create(t).Error }

func (r *catalogRepo) ListWeeklyTasks() ([]entities.WeeklyTask, error) {
	var out []entities.WeeklyTask
	if err := r.db.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *catalogRepo) DeleteWeeklyTask(id uint) error {
	return r.db.Delete(&entities.WeeklyTask{}, id).Error
}
