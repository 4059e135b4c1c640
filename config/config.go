package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port           string
	DBPath         string
	PlannerPolicy  string // YAML file with the planning window/step policy
	SyncInterval   time.Duration
	ICSFeeds       []ICSFeed // remote calendar subscriptions; empty = disconnected
	DragSessionTTL time.Duration
}

type ICSFeed struct {
	ID  string
	URL string
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	getDur := func(k string, def time.Duration) time.Duration {
		if v := os.Getenv(k); v != "" {
			if d, err := time.ParseDuration(v); err == nil && d > 0 {
				return d
			}
			log.Printf("[cfg] bad duration in %s, using %s", k, def)
		}
		return def
	}

	cfg := AppConfig{
		Port:           get("PORT", "8080"),
		DBPath:         get("DB_PATH", "lifeos.db"),
		PlannerPolicy:  get("PLANNER_POLICY", "planner.yaml"),
		SyncInterval:   getDur("SYNC_INTERVAL", 10*time.Minute),
		ICSFeeds:       parseFeeds(get("ICS_FEEDS", "")),
		DragSessionTTL: getDur("DRAG_SESSION_TTL", 5*time.Minute),
	}
	log.Printf("[cfg] port=%s db=%s policy=%s sync_interval=%s feeds=%d",
		cfg.Port, cfg.DBPath, cfg.PlannerPolicy, cfg.SyncInterval, len(cfg.ICSFeeds))
	return cfg
}

// parseFeeds reads "id=url,id=url" pairs; a bare URL gets a numbered id.
func parseFeeds(raw string) []ICSFeed {
	if raw == "" {
		return nil
	}
	var feeds []ICSFeed
	for i, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, url, found := strings.Cut(part, "=")
		if !found || strings.HasPrefix(id, "http") {
			feeds = append(feeds, ICSFeed{ID: fmt.Sprintf("feed%d", i+1), URL: part})
			continue
		}
		feeds = append(feeds, ICSFeed{ID: id, URL: url})
	}
	return feeds
}
