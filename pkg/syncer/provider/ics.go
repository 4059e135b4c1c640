package provider

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/teambition/rrule-go"

	"github.com/breaking-byts/Life-Os-sub000/entities"
	"github.com/breaking-byts/Life-Os-sub000/pkg/calendar/repository"
	"github.com/breaking-byts/Life-Os-sub000/pkg/timeutil"
)

// Feed is one remote ICS subscription.
type Feed struct {
	ID  string
	URL string
}

// syncWindowDays bounds the resync horizon on both sides of now.
const syncWindowDays = 30

// ICSProvider pulls subscribed ICS feeds and mirrors their occurrences into
// the local calendar_events table, keyed by (calendar_id, external_uid).
// Each resync upserts everything visible in the window and prunes imported
// rows that vanished upstream.
type ICSProvider struct {
	feeds  []Feed
	repo   repository.CalendarRepository
	client *http.Client
	now    func() time.Time
}

func NewICS(feeds []Feed, repo repository.CalendarRepository) *ICSProvider {
	return &ICSProvider{
		feeds:  feeds,
		repo:   repo,
		client: &http.Client{Timeout: 15 * time.Second},
		now:    time.Now,
	}
}

func (p *ICSProvider) Connected() bool { return len(p.feeds) > 0 }

func (p *ICSProvider) Sync(ctx context.Context) error {
	winStart := p.now().AddDate(0, 0, -syncWindowDays)
	winEnd := p.now().AddDate(0, 0, syncWindowDays)

	for _, feed := range p.feeds {
		cal, err := p.fetch(ctx, feed)
		if err != nil {
			return fmt.Errorf("feed %s: %w", feed.ID, err)
		}

		var kept []string
		for _, ve := range cal.Events() {
			rows, err := expandVEvent(feed.ID, ve, winStart, winEnd)
			if err != nil {
				log.Printf("[sync] feed=%s skip event: %v", feed.ID, err)
				continue
			}
			for i := range rows {
				if err := p.repo.UpsertImported(&rows[i]); err != nil {
					return fmt.Errorf("feed %s: upsert %s: %w", feed.ID, rows[i].ExternalUID, err)
				}
				kept = append(kept, rows[i].ExternalUID)
			}
		}

		pruned, err := p.repo.PruneImported(feed.ID, kept)
		if err != nil {
			return fmt.Errorf("feed %s: prune: %w", feed.ID, err)
		}
		log.Printf("[sync] feed=%s kept=%d pruned=%d", feed.ID, len(kept), pruned)
	}
	return nil
}

func (p *ICSProvider) fetch(ctx context.Context, feed Feed) (*ical.Calendar, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feed.URL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return ical.ParseCalendar(resp.Body)
}

// expandVEvent turns one VEVENT into concrete imported rows inside the
// window: one row for a plain event, one per occurrence for a recurring one.
func expandVEvent(calendarID string, ve *ical.VEvent, winStart, winEnd time.Time) ([]entities.CalendarEvent, error) {
	uidProp := ve.GetProperty(ical.ComponentPropertyUniqueId)
	if uidProp == nil || uidProp.Value == "" {
		return nil, fmt.Errorf("missing UID")
	}
	uid := uidProp.Value

	title := ""
	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
		title = p.Value
	}

	start, err := ve.GetStartAt()
	if err != nil {
		return nil, fmt.Errorf("uid %s: no DTSTART: %w", uid, err)
	}
	end, err := ve.GetEndAt()
	if err != nil || !end.After(start) {
		end = start.Add(time.Hour)
	}
	duration := end.Sub(start)

	var rawRRule string
	if p := ve.GetProperty(ical.ComponentPropertyRrule); p != nil {
		rawRRule = p.Value
	}

	if rawRRule == "" {
		if end.Before(winStart) || start.After(winEnd) {
			return nil, nil
		}
		return []entities.CalendarEvent{importedRow(calendarID, uid, title, start, end)}, nil
	}

	rule, err := rrule.StrToRRule(strings.TrimPrefix(rawRRule, "RRULE:"))
	if err != nil {
		return nil, fmt.Errorf("uid %s: bad RRULE %q: %w", uid, rawRRule, err)
	}
	rule.DTStart(start)

	var rows []entities.CalendarEvent
	for _, occ := range rule.Between(winStart, winEnd, true) {
		occUID := fmt.Sprintf("%s_%s", uid, occ.Format(timeutil.DateLayout))
		rows = append(rows, importedRow(calendarID, occUID, title, occ, occ.Add(duration)))
	}
	return rows, nil
}

func importedRow(calendarID, uid, title string, start, end time.Time) entities.CalendarEvent {
	return entities.CalendarEvent{
		Title:       title,
		StartAt:     start.Local().Format(timeutil.DateTimeLayout),
		EndAt:       end.Local().Format(timeutil.DateTimeLayout),
		Category:    "imported",
		Locked:      true,
		ExternalUID: uid,
		CalendarID:  calendarID,
	}
}
