package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/breaking-byts/Life-Os-sub000/pkg/syncer"
)

var appStart = time.Now()

type HealthCtrl struct {
	db   *gorm.DB
	orch *syncer.Orchestrator
}

func NewHealthCtrl(db *gorm.DB, orch *syncer.Orchestrator) *HealthCtrl {
	return &HealthCtrl{db: db, orch: orch}
}

func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	dbOK := true
	dbErr := ""
	if h.db != nil {
		sqlDB, err := h.db.DB()
		if err != nil {
			dbOK = false
			dbErr = "db.DB(): " + err.Error()
		} else if err := sqlDB.PingContext(ctx); err != nil {
			dbOK = false
			dbErr = "ping: " + err.Error()
		}
	} else {
		dbOK = false
		dbErr = "gorm db is nil"
	}

	status := http.StatusOK
	if !dbOK {
		status = http.StatusServiceUnavailable
	}

	type sub struct {
		OK  bool   `json:"ok"`
		Err string `json:"err,omitempty"`
	}

	syncStatus := map[string]any{"connected": false}
	if h.orch != nil {
		if st, err := h.orch.Status(); err == nil {
			syncStatus = map[string]any{
				"connected":     st.Connected,
				"failure_count": st.FailureCount,
			}
		}
	}

	resp := map[string]any{
		"status":     map[string]any{"ok": dbOK},
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"checks": map[string]any{
			"database": sub{OK: dbOK, Err: dbErr},
		},
		"sync": syncStatus,
		"time": time.Now().Format(time.RFC3339),
	}

	return c.JSON(status, resp)
}
