package router

import (
	"github.com/labstack/echo/v4"

	blockCtrl "github.com/breaking-byts/Life-Os-sub000/pkg/block/controllerImp"
	calCtrl "github.com/breaking-byts/Life-Os-sub000/pkg/calendar/controllerImp"
	catalogCtrl "github.com/breaking-byts/Life-Os-sub000/pkg/catalog/controllerImp"
	dragCtrl "github.com/breaking-byts/Life-Os-sub000/pkg/drag/controllerImp"
	"github.com/breaking-byts/Life-Os-sub000/pkg/export"
	healthCtrl "github.com/breaking-byts/Life-Os-sub000/pkg/health/controllerImp"
	syncCtrl "github.com/breaking-byts/Life-Os-sub000/pkg/syncer/controllerImp"
)

func New(
	e *echo.Echo,
	cal *calCtrl.CalendarCtrl,
	blocks *blockCtrl.BlockCtrl,
	dragging *dragCtrl.DragCtrl,
	sync *syncCtrl.SyncCtrl,
	catalog *catalogCtrl.CatalogCtrl,
	exporter *export.Exporter,
	health *healthCtrl.HealthCtrl,
) *echo.Echo {
	e.GET("/health", health.Health)

	// Aggregated calendar view
	e.GET("/calendar/items", cal.Items)
	e.GET("/calendar/week", cal.Week)

	// Plan blocks: CRUD + lifecycle + generation
	e.GET("/plan/blocks", blocks.List)
	e.POST("/plan/blocks", blocks.Create)
	e.PUT("/plan/blocks/:id", blocks.Update)
	e.POST("/plan/blocks/:id/accept", blocks.Accept)
	e.POST("/plan/blocks/:id/lock", blocks.Lock)
	e.DELETE("/plan/blocks/:id", blocks.Delete)
	e.POST("/plan/generate", blocks.Generate)
	e.GET("/plan/export", exporter.Download)

	// Drag-to-reschedule sessions
	e.POST("/drag/start", dragging.Start)
	e.POST("/drag/:sid/move", dragging.Move)
	e.POST("/drag/:sid/end", dragging.End)
	e.DELETE("/drag/:sid", dragging.Cancel)

	// Remote calendar sync
	e.GET("/sync/status", sync.Status)
	e.POST("/sync/now", sync.Now)

	// Catalog (feeds behind the aggregated view)
	e.POST("/courses", catalog.CreateCourse)
	e.GET("/courses", catalog.ListCourses)
	e.DELETE("/courses/:id", catalog.DeleteCourse)
	e.POST("/courses/:id/meetings", catalog.CreateMeeting)
	e.GET("/courses/:id/meetings", catalog.ListMeetings)
	e.DELETE("/meetings/:id", catalog.DeleteMeeting)
	e.POST("/events", catalog.CreateEvent)
	e.GET("/events", catalog.ListEvents)
	e.DELETE("/events/:id", catalog.DeleteEvent)
	e.POST("/assignments", catalog.CreateAssignment)
	e.GET("/assignments", catalog.ListAssignments)
	e.DELETE("/assignments/:id", catalog.DeleteAssignment)
	e.POST("/exams", catalog.CreateExam)
	e.GET("/exams", catalog.ListExams)
	e.DELETE("/exams/:id", catalog.DeleteExam)
	e.POST("/tasks", catalog.CreateWeeklyTask)
	e.GET("/tasks", catalog.ListWeeklyTasks)
	e.DELETE("/tasks/:id", catalog.DeleteWeeklyTask)

	return e
}
