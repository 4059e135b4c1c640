package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/breaking-byts/Life-Os-sub000/pkg/block/repositoryImp"
	"github.com/breaking-byts/Life-Os-sub000/pkg/block/service"
)

type BlockCtrl struct{ svc service.BlockService }

func New(svc service.BlockService) *BlockCtrl { return &BlockCtrl{svc} }

func (h *BlockCtrl) List(c echo.Context) error {
	week := c.QueryParam("week_start_date")
	if week == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "week_start_date is required"})
	}
	blocks, err := h.svc.ListByWeek(week)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, blocks)
}

func (h *BlockCtrl) Create(c echo.Context) error {
	var input service.BlockInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	b, err := h.svc.Create(input)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, b)
}

func (h *BlockCtrl) Update(c echo.Context) error {
	id, err := blockID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad id"})
	}
	var input service.BlockInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	b, err := h.svc.Update(id, input)
	if err != nil {
		return jsonErr(c, err)
	}
	return c.JSON(http.StatusOK, b)
}

func (h *BlockCtrl) Accept(c echo.Context) error {
	id, err := blockID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad id"})
	}
	b, err := h.svc.Accept(id)
	if err != nil {
		return jsonErr(c, err)
	}
	return c.JSON(http.StatusOK, b)
}

func (h *BlockCtrl) Lock(c echo.Context) error {
	id, err := blockID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad id"})
	}
	b, err := h.svc.Lock(id)
	if err != nil {
		return jsonErr(c, err)
	}
	return c.JSON(http.StatusOK, b)
}

func (h *BlockCtrl) Delete(c echo.Context) error {
	id, err := blockID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad id"})
	}
	if err := h.svc.Delete(id); err != nil {
		return jsonErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"deleted": true})
}

func (h *BlockCtrl) Generate(c echo.Context) error {
	var body struct {
		WeekStartDate string `json:"week_start_date"`
	}
	if err := c.Bind(&body); err != nil || body.WeekStartDate == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "week_start_date is required"})
	}
	blocks, err := h.svc.Generate(body.WeekStartDate)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, blocks)
}

func blockID(c echo.Context) (uint, error) {
	n, err := strconv.Atoi(c.Param("id"))
	if err != nil || n <= 0 {
		return 0, errors.New("bad id")
	}
	return uint(n), nil
}

func jsonErr(c echo.Context, err error) error {
	switch {
	case errors.Is(err, repositoryImp.ErrNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, service.ErrIllegalTransition):
		return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}
