package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/breaking-byts/Life-Os-sub000/config"
	"github.com/breaking-byts/Life-Os-sub000/database"
	"github.com/breaking-byts/Life-Os-sub000/router"

	blockCtrlImp "github.com/breaking-byts/Life-Os-sub000/pkg/block/controllerImp"
	blockRepoImp "github.com/breaking-byts/Life-Os-sub000/pkg/block/repositoryImp"
	blockSvcImp "github.com/breaking-byts/Life-Os-sub000/pkg/block/serviceImp"

	calCtrlImp "github.com/breaking-byts/Life-Os-sub000/pkg/calendar/controllerImp"
	calRepoImp "github.com/breaking-byts/Life-Os-sub000/pkg/calendar/repositoryImp"
	calSvcImp "github.com/breaking-byts/Life-Os-sub000/pkg/calendar/serviceImp"

	catalogCtrlImp "github.com/breaking-byts/Life-Os-sub000/pkg/catalog/controllerImp"
	catalogRepoImp "github.com/breaking-byts/Life-Os-sub000/pkg/catalog/repositoryImp"

	"github.com/breaking-byts/Life-Os-sub000/pkg/drag"
	dragCtrlImp "github.com/breaking-byts/Life-Os-sub000/pkg/drag/controllerImp"

	"github.com/breaking-byts/Life-Os-sub000/pkg/export"
	healthCtrlImp "github.com/breaking-byts/Life-Os-sub000/pkg/health/controllerImp"
	"github.com/breaking-byts/Life-Os-sub000/pkg/planner"
	settingRepoImp "github.com/breaking-byts/Life-Os-sub000/pkg/setting/repositoryImp"

	"github.com/breaking-byts/Life-Os-sub000/pkg/syncer"
	syncCtrlImp "github.com/breaking-byts/Life-Os-sub000/pkg/syncer/controllerImp"
	"github.com/breaking-byts/Life-Os-sub000/pkg/syncer/provider"
)

func main() {
	// 1) Config
	cfg := config.Load()

	plannerCfg, err := planner.LoadConfig(cfg.PlannerPolicy)
	if err != nil {
		log.Printf("[cfg] planner policy %s unreadable, using defaults: %v", cfg.PlannerPolicy, err)
	}

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Repositories
	calRepo := calRepoImp.New(db)
	blockRepo := blockRepoImp.New(db)
	catalogRepo := catalogRepoImp.New(db)
	settingRepo := settingRepoImp.New(db)

	// 4) Sync: provider + orchestrator (gated by backoff)
	var prov provider.Provider = provider.Disconnected{}
	if len(cfg.ICSFeeds) > 0 {
		feeds := make([]provider.Feed, len(cfg.ICSFeeds))
		for i, f := range cfg.ICSFeeds {
			feeds[i] = provider.Feed{ID: f.ID, URL: f.URL}
		}
		prov = provider.NewICS(feeds, calRepo)
	}
	orch := syncer.NewOrchestrator(prov, settingRepo)
	if err := orch.Start(cfg.SyncInterval); err != nil {
		log.Fatalf("start sync timer: %v", err)
	}
	defer orch.Stop()

	// 5) Services
	calSvc := calSvcImp.New(calRepo, plannerCfg)
	blockSvc := blockSvcImp.New(blockRepo, calSvc, plannerCfg, orch)
	dragEngine := drag.NewEngine(blockSvc, orch, plannerCfg.StepMinutes)
	stopSweeper := dragEngine.StartSweeper(cfg.DragSessionTTL)
	defer stopSweeper()

	// 6) Controllers
	calCtrl := calCtrlImp.New(calSvc)
	blockCtrl := blockCtrlImp.New(blockSvc)
	dragCtrl := dragCtrlImp.New(dragEngine)
	syncCtrl := syncCtrlImp.New(orch)
	catalogCtrl := catalogCtrlImp.New(catalogRepo)
	exporter := export.New(blockRepo)
	healthCtrl := healthCtrlImp.NewHealthCtrl(db, orch)

	// 7) Echo + routes
	e := echo.New()
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Logger())
	r := router.New(e, calCtrl, blockCtrl, dragCtrl, syncCtrl, catalogCtrl, exporter, healthCtrl)

	// 8) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
