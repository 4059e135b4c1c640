package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/breaking-byts/Life-Os-sub000/pkg/calendar/service"
)

type CalendarCtrl struct{ svc service.CalendarService }

func New(svc service.CalendarService) *CalendarCtrl { return &CalendarCtrl{svc} }

func (h *CalendarCtrl) Items(c echo.Context) error {
	start := c.QueryParam("start_date")
	end := c.QueryParam("end_date")
	if start == "" || end == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "start_date and end_date are required"})
	}
	includeAssignments := c.QueryParam("include_assignments") != "false"
	includeExams := c.QueryParam("include_exams") != "false"

	items, err := h.svc.Items(start, end, includeAssignments, includeExams)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, items)
}

func (h *CalendarCtrl) Week(c echo.Context) error {
	start := c.QueryParam("start_date")
	if start == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "start_date is required"})
	}
	buckets, err := h.svc.Week(start)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, buckets)
}
