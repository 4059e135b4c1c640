package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/breaking-byts/Life-Os-sub000/pkg/syncer"
)

type SyncCtrl struct{ orch *syncer.Orchestrator }

func New(orch *syncer.Orchestrator) *SyncCtrl { return &SyncCtrl{orch} }

func (h *SyncCtrl) Status(c echo.Context) error {
	st, err := h.orch.Status()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, st)
}

// Now triggers a manual sync. Backoff still applies: a skipped attempt is a
// 200 with skipped=true, not an error.
func (h *SyncCtrl) Now(c echo.Context) error {
	res, err := h.orch.SyncNow(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, res)
}
