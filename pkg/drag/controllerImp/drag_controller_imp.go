package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/breaking-byts/Life-Os-sub000/pkg/calendar/types"
	"github.com/breaking-byts/Life-Os-sub000/pkg/drag"
)

type DragCtrl struct{ engine *drag.Engine }

func New(engine *drag.Engine) *DragCtrl { return &DragCtrl{engine} }

type startReq struct {
	Item     types.CalendarItem `json:"item"`
	PointerY float64            `json:"pointer_y"`
	Geometry drag.Geometry      `json:"geometry"`
}

func (h *DragCtrl) Start(c echo.Context) error {
	var req startReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	id, preview, err := h.engine.Start(req.Item, req.PointerY, req.Geometry)
	if err != nil {
		if errors.Is(err, drag.ErrNotDraggable) {
			return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"session_id": id, "preview": preview})
}

func (h *DragCtrl) Move(c echo.Context) error {
	var req struct {
		PointerY float64 `json:"pointer_y"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	preview, err := h.engine.Move(c.Param("sid"), req.PointerY)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"preview": preview})
}

func (h *DragCtrl) End(c echo.Context) error {
	block, err := h.engine.End(c.Param("sid"))
	if err != nil {
		if errors.Is(err, drag.ErrNoSession) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		}
		// Session is already released; the commit itself failed.
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, block)
}

func (h *DragCtrl) Cancel(c echo.Context) error {
	h.engine.Cancel(c.Param("sid"))
	return c.JSON(http.StatusOK, map[string]bool{"cancelled": true})
}
