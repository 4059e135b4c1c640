package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/breaking-byts/Life-Os-sub000/entities"
	"github.com/breaking-byts/Life-Os-sub000/pkg/catalog/repository"
)

type CatalogCtrl struct{ repo repository.CatalogRepository }

func New(repo repository.CatalogRepository) *CatalogCtrl { return &CatalogCtrl{repo} }

func (h *CatalogCtrl) CreateCourse(c echo.Context) error {
	var course entities.Course
	if err := c.Bind(&course); err != nil {
		return badJSON(c)
	}
	course.IsActive = true
	if err := h.repo.CreateCourse(&course); err != nil {
		return serverErr(c, err)
	}
	return c.JSON(http.StatusCreated, course)
}

func (h *CatalogCtrl) ListCourses(c echo.Context) error {
	out, err := h.repo.ListCourses()
	if err != nil {
		return serverErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogCtrl) DeleteCourse(c echo.Context) error {
	return h.del(c, h.repo.DeleteCourse)
}

func (h *CatalogCtrl) CreateMeeting(c echo.Context) error {
	var m entities.CourseMeeting
	if err := c.Bind(&m); err != nil {
		return badJSON(c)
	}
	cid, _ := strconv.Atoi(c.Param("id"))
	m.CourseID = uint(cid)
	if err := h.repo.CreateMeeting(&m); err != nil {
		return serverErr(c, err)
	}
	return c.JSON(http.StatusCreated, m)
}

func (h *CatalogCtrl) ListMeetings(c echo.Context) error {
	cid, _ := strconv.Atoi(c.Param("id"))
	out, err := h.repo.ListMeetings(uint(cid))
	if err != nil {
		return serverErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogCtrl) DeleteMeeting(c echo.Context) error {
	return h.del(c, h.repo.DeleteMeeting)
}

func (h *CatalogCtrl) CreateEvent(c echo.Context) error {
	var ev entities.CalendarEvent
	if err := c.Bind(&ev); err != nil {
		return badJSON(c)
	}
	if err := h.repo.CreateEvent(&ev); err != nil {
		return serverErr(c, err)
	}
	return c.JSON(http.StatusCreated, ev)
}

func (h *CatalogCtrl) ListEvents(c echo.Context) error {
	out, err := h.repo.ListEvents()
	if err != nil {
		return serverErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogCtrl) DeleteEvent(c echo.Context) error {
	return h.del(c, h.repo.DeleteEvent)
}

func (h *CatalogCtrl) CreateAssignment(c echo.Context) error {
	var a entities.Assignment
	if err := c.Bind(&a); err != nil {
		return badJSON(c)
	}
	if err := h.repo.CreateAssignment(&a); err != nil {
		return serverErr(c, err)
	}
	return c.JSON(http.StatusCreated, a)
}

func (h *CatalogCtrl) ListAssignments(c echo.Context) error {
	cid, _ := strconv.Atoi(c.QueryParam("course_id"))
	out, err := h.repo.ListAssignments(uint(cid))
	if err != nil {
		return serverErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogCtrl) DeleteAssignment(c echo.Context) error {
	return h.del(c, h.repo.DeleteAssignment)
}

func (h *CatalogCtrl) CreateExam(c echo.Context) error {
	var e entities.Exam
	if err := c.Bind(&e); err != nil {
		return badJSON(c)
	}
	if err := h.repo.CreateExam(&e); err != nil {
		return serverErr(c, err)
	}
	return c.JSON(http.StatusCreated, e)
}

func (h *CatalogCtrl) ListExams(c echo.Context) error {
	cid, _ := strconv.Atoi(c.QueryParam("course_id"))
	out, err := h.repo.ListExams(uint(cid))
	if err != nil {
		return serverErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogCtrl) DeleteExam(c echo.Context) error {
	return h.del(c, h.repo.DeleteExam)
}

func (h *CatalogCtrl) CreateWeeklyTask(c echo.Context) error {
	var t entities.WeeklyTask
	if err := c.Bind(&t); err != nil {
		return badJSON(c)
	}
	if err := h.repo.CreateWeeklyTask(&t); err != nil {
		return serverErr(c, err)
	}
	return c.JSON(http.StatusCreated, t)
}

func (h *CatalogCtrl) ListWeeklyTasks(c echo.Context) error {
	out, err := h.repo.ListWeeklyTasks()
	if err != nil {
		return serverErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogCtrl) DeleteWeeklyTask(c echo.Context) error {
	return h.del(c, h.repo.DeleteWeeklyTask)
}

func (h *CatalogCtrl) del(c echo.Context, fn func(uint) error) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad id"})
	}
	if err := fn(uint(id)); err != nil {
		return serverErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"deleted": true})
}

func badJSON(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
}

func serverErr(c echo.Context, err error) error {
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
}
