// Package drag implements the pointer-driven reschedule interaction for plan
// blocks: a session per drag, a live quantized preview while the pointer
// moves, and an atomic commit on release. Sessions are the explicit analog of
// the shell's global pointer listeners: acquired on start, released on every
// exit path, so a failed commit can never leave a drag stuck.
package drag

import (
	"errors"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/breaking-byts/Life-Os-sub000/entities"
	blockservice "github.com/breaking-byts/Life-Os-sub000/pkg/block/service"
	"github.com/breaking-byts/Life-Os-sub000/pkg/calendar/types"
	"github.com/breaking-byts/Life-Os-sub000/pkg/timeutil"
)

const dayMinutes = 24 * 60

var (
	ErrNotDraggable = errors.New("item is not a draggable plan block")
	ErrNoSession    = errors.New("no active drag session")
)

// Geometry maps pointer pixels to day minutes for the column being dragged
// over. ColumnTop is the pixel Y of midnight.
type Geometry struct {
	ColumnTop   float64 `json:"column_top"`
	PxPerMinute float64 `json:"px_per_minute"`
}

// Preview is the live candidate range. Duration stays fixed for the whole
// drag, and the day never changes: blocks move only within their own column.
type Preview struct {
	Day      string `json:"day"`
	StartMin int    `json:"start_min"`
	EndMin   int    `json:"end_min"`
	StartAt  string `json:"start_at"`
	EndAt    string `json:"end_at"`
}

type session struct {
	id          string
	blockID     uint
	status      string
	day         string
	durationMin int
	grabOffset  float64
	geo         Geometry
	preview     Preview
	startedAt   time.Time
}

// Committer is the slice of the lifecycle service a drag commit needs.
type Committer interface {
	Reschedule(id uint, startAt, endAt string) (*entities.WeekPlanBlock, error)
}

type Engine struct {
	mu       sync.Mutex
	sessions map[string]*session

	commit Committer
	sync   blockservice.SyncTrigger
	step   int
	now    func() time.Time
}

func NewEngine(commit Committer, sync blockservice.SyncTrigger, stepMinutes int) *Engine {
	if stepMinutes <= 0 {
		stepMinutes = 15
	}
	return &Engine{
		sessions: make(map[string]*session),
		commit:   commit,
		sync:     sync,
		step:     stepMinutes,
		now:      time.Now,
	}
}

// ResolveBlockID maps a plan-block item id ("wpb_<n>") back to its persisted
// block id.
func ResolveBlockID(itemID string) (uint, error) {
	raw, ok := strings.CutPrefix(itemID, types.PrefixPlanBlock)
	if !ok {
		return 0, fmt.Errorf("item %q: %w", itemID, ErrNotDraggable)
	}
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || n == 0 {
		return 0, fmt.Errorf("item %q: %w", itemID, ErrNotDraggable)
	}
	return uint(n), nil
}

// Start opens a drag session for an editable plan-block item. The returned
// preview mirrors the item's current range.
func (e *Engine) Start(item types.CalendarItem, pointerY float64, geo Geometry) (string, Preview, error) {
	if item.Source != types.SourcePlanBlock || !item.Editable || item.AllDay {
		return "", Preview{}, ErrNotDraggable
	}
	blockID, err := ResolveBlockID(item.ID)
	if err != nil {
		return "", Preview{}, err
	}
	if geo.PxPerMinute <= 0 {
		return "", Preview{}, errors.New("px_per_minute must be positive")
	}

	startMin, err := timeutil.MinutesOfDay(item.StartAt)
	if err != nil {
		return "", Preview{}, fmt.Errorf("parse start: %w", err)
	}
	endMin, err := timeutil.MinutesOfDay(item.EndAt)
	if err != nil {
		return "", Preview{}, fmt.Errorf("parse end: %w", err)
	}
	duration := endMin - startMin
	if duration < e.step {
		duration = e.step
	}

	day := timeutil.DayKey(item.StartAt)
	status := ""
	if item.Status != nil {
		status = *item.Status
	}

	s := &session{
		id:          uuid.NewString(),
		blockID:     blockID,
		status:      status,
		day:         day,
		durationMin: duration,
		grabOffset:  pointerY - (geo.ColumnTop + float64(startMin)*geo.PxPerMinute),
		geo:         geo,
		startedAt:   e.now(),
	}
	s.preview = e.previewAt(s, startMin)

	e.mu.Lock()
	e.sessions[s.id] = s
	e.mu.Unlock()
	return s.id, s.preview, nil
}

// Move recomputes the preview from a new pointer position: pixels to minutes
// from midnight, quantized to the step, clamped so the block stays fully
// on-grid, duration held fixed.
func (e *Engine) Move(sessionID string, pointerY float64) (Preview, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	s, ok := e.sessions[sessionID]
	if !ok {
		return Preview{}, ErrNoSession
	}

	raw := (pointerY - s.grabOffset - s.geo.ColumnTop) / s.geo.PxPerMinute
	start := int(math.Round(raw/float64(e.step))) * e.step
	if start < 0 {
		start = 0
	}
	if max := dayMinutes - s.durationMin; start > max {
		start = max
	}
	s.preview = e.previewAt(s, start)
	return s.preview, nil
}

// End commits the preview through the lifecycle service and releases the
// session. The session is released even when the commit fails. A push is
// requested only for accepted/locked blocks with a connected remote account.
func (e *Engine) End(sessionID string) (*entities.WeekPlanBlock, error) {
	e.mu.Lock()
	s, ok := e.sessions[sessionID]
	delete(e.sessions, sessionID)
	e.mu.Unlock()
	if !ok {
		return nil, ErrNoSession
	}

	updated, err := e.commit.Reschedule(s.blockID, s.preview.StartAt, s.preview.EndAt)
	if err != nil {
		return nil, err
	}
	if s.status == entities.BlockStatusAccepted || s.status == entities.BlockStatusLocked {
		if e.sync != nil && e.sync.Connected() {
			e.sync.RequestSync()
		}
	}
	return updated, nil
}

// Cancel discards a session without committing.
func (e *Engine) Cancel(sessionID string) {
	e.mu.Lock()
	delete(e.sessions, sessionID)
	e.mu.Unlock()
}

// Preview returns the live preview for a session, if any. Rendering shows
// this instead of the stale persisted position for the dragged item only.
func (e *Engine) Preview(sessionID string) (Preview, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	s, ok := e.sessions[sessionID]
	if !ok {
		return Preview{}, false
	}
	return s.preview, true
}

// Sweep drops sessions older than maxAge; a shell that died mid-drag must
// not pin its session forever. Returns the number dropped.
func (e *Engine) Sweep(maxAge time.Duration) int {
	cutoff := e.now().Add(-maxAge)
	e.mu.Lock()
	defer e.mu.Unlock()
	dropped := 0
	for id, s := range e.sessions {
		if s.startedAt.Before(cutoff) {
			delete(e.sessions, id)
			dropped++
		}
	}
	return dropped
}

// StartSweeper runs Sweep every ttl until the returned stop func is called,
// so abandoned sessions age out without any request traffic.
func (e *Engine) StartSweeper(ttl time.Duration) (stop func()) {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	ticker := time.NewTicker(ttl)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-ticker.C:
				if n := e.Sweep(ttl); n > 0 {
					log.Printf("[drag] swept %d stale sessions", n)
				}
			case <-done:
				return
			}
		}
	}()
	return func() {
		ticker.Stop()
		close(done)
	}
}

func (e *Engine) previewAt(s *session, startMin int) Preview {
	end := startMin + s.durationMin
	return Preview{
		Day:      s.day,
		StartMin: startMin,
		EndMin:   end,
		StartAt:  timeutil.Combine(s.day, startMin),
		EndAt:    timeutil.Combine(s.day, end),
	}
}
