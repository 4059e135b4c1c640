package repository

import "github.com/breaking-byts/Life-Os-sub000/entities"

// CatalogRepository is the CRUD store behind the read-only calendar feeds:
// courses and their meetings, events, assignments, exams, weekly tasks.
type CatalogRepository interface {
	CreateCourse(c *entities.Course) error
	ListCourses() ([]entities.Course, error)
	DeleteCourse(id uint) error

	CreateMeeting(m *entities.CourseMeeting) error
	ListMeetings(courseID uint) ([]entities.CourseMeeting, error)
	DeleteMeeting(id uint) error

	CreateEvent(e *entities.CalendarEvent) error
	ListEvents() ([]entities.CalendarEvent, error)
	DeleteEvent(id uint) error

	CreateAssignment(a *entities.Assignment) error
	ListAssignments(courseID uint) ([]entities.Assignment, error)
	DeleteAssignment(id uint) error

	CreateExam(e *entities.Exam) error
	ListExams(courseID uint) ([]entities.Exam, error)
	DeleteExam(id uint) error

	CreateWeeklyTask(t *entities.WeeklyTask) error
	ListWeeklyTasks() ([]entities.WeeklyTask, error)
	DeleteWeeklyTask(id uint) error
}
