package serviceImp

import (
	"fmt"
	"log"

	"github.com/breaking-byts/Life-Os-sub000/entities"
	"github.com/breaking-byts/Life-Os-sub000/pkg/block/repository"
	"github.com/breaking-byts/Life-Os-sub000/pkg/block/service"
	calservice "github.com/breaking-byts/Life-Os-sub000/pkg/calendar/service"
	"github.com/breaking-byts/Life-Os-sub000/pkg/planner"
	"github.com/breaking-byts/Life-Os-sub000/pkg/timeutil"
)

type blockSvc struct {
	repo repository.BlockRepository
	cal  calservice.CalendarService
	cfg  planner.Config
	sync service.SyncTrigger
}

func New(repo repository.BlockRepository, cal calservice.CalendarService, cfg planner.Config, sync service.SyncTrigger) service.BlockService {
	return &blockSvc{repo: repo, cal: cal, cfg: cfg, sync: sync}
}

func (s *blockSvc) Create(input service.BlockInput) (*entities.WeekPlanBlock, error) {
	b := &entities.WeekPlanBlock{
		WeekStartDate: input.WeekStartDate,
		StartAt:       input.StartAt,
		EndAt:         input.EndAt,
		BlockType:     input.BlockType,
		CourseID:      input.CourseID,
		WeeklyTaskID:  input.WeeklyTaskID,
		Title:         input.Title,
		Status:        input.Status,
		RationaleJSON: input.RationaleJSON,
	}
	if err := s.repo.Create(b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *blockSvc) Update(id uint, input service.BlockInput) (*entities.WeekPlanBlock, error) {
	b, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if input.WeekStartDate != "" {
		b.WeekStartDate = input.WeekStartDate
	}
	if input.StartAt != "" {
		b.StartAt = input.StartAt
	}
	if input.EndAt != "" {
		b.EndAt = input.EndAt
	}
	if input.BlockType != "" {
		b.BlockType = input.BlockType
	}
	if input.CourseID != nil {
		b.CourseID = input.CourseID
	}
	if input.WeeklyTaskID != nil {
		b.WeeklyTaskID = input.WeeklyTaskID
	}
	if input.Title != "" {
		b.Title = input.Title
	}
	if input.Status != "" {
		b.Status = input.Status
	}
	if input.RationaleJSON != "" {
		b.RationaleJSON = input.RationaleJSON
	}
	if err := s.repo.Update(b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *blockSvc) Accept(id uint) (*entities.WeekPlanBlock, error) {
	b, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if b.Status != entities.BlockStatusSuggested {
		return nil, fmt.Errorf("accept block %d from %q: %w", id, b.Status, service.ErrIllegalTransition)
	}
	out, err := s.repo.SetStatus(id, entities.BlockStatusAccepted)
	if err != nil {
		return nil, err
	}
	s.pushIfConnected()
	return out, nil
}

func (s *blockSvc) Lock(id uint) (*entities.WeekPlanBlock, error) {
	b, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if b.Status == entities.BlockStatusLocked {
		return nil, fmt.Errorf("lock block %d from %q: %w", id, b.Status, service.ErrIllegalTransition)
	}
	out, err := s.repo.SetStatus(id, entities.BlockStatusLocked)
	if err != nil {
		return nil, err
	}
	s.pushIfConnected()
	return out, nil
}

func (s *blockSvc) Delete(id uint) error {
	return s.repo.Delete(id)
}

func (s *blockSvc) Reschedule(id uint, startAt, endAt string) (*entities.WeekPlanBlock, error) {
	b, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	b.StartAt = startAt
	b.EndAt = endAt
	if err := s.repo.Update(b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *blockSvc) ListByWeek(weekStartDate string) ([]entities.WeekPlanBlock, error) {
	return s.repo.ListByWeek(weekStartDate)
}

func (s *blockSvc) Generate(weekStartDate string) ([]entities.WeekPlanBlock, error) {
	days, err := timeutil.WeekDays(weekStartDate)
	if err != nil {
		return nil, err
	}

	cleared, err := s.repo.ClearSuggested(weekStartDate)
	if err != nil {
		return nil, fmt.Errorf("clear suggested blocks: %w", err)
	}

	items, err := s.cal.Items(days[0], days[len(days)-1], true, true)
	if err != nil {
		return nil, fmt.Errorf("load busy items: %w", err)
	}

	var proposals []entities.WeekPlanBlock
	for _, day := range days {
		busy := s.cal.BusyIntervals(day, items)
		slot := planner.FindFirstSlot(s.cfg, busy, s.cfg.FocusMinutes)
		if slot == nil {
			continue // day is full, nothing to suggest
		}
		proposals = append(proposals, entities.WeekPlanBlock{
			WeekStartDate: weekStartDate,
			StartAt:       timeutil.Combine(day, slot.Start),
			EndAt:         timeutil.Combine(day, slot.End),
			BlockType:     entities.BlockTypeStudy,
			Title:         "Focus block",
			Status:        entities.BlockStatusSuggested,
		})
	}

	created, err := s.repo.BulkCreate(proposals)
	if err != nil {
		return nil, fmt.Errorf("insert suggestions: %w", err)
	}
	log.Printf("[plan] generate week=%s cleared=%d suggested=%d", weekStartDate, cleared, len(created))
	return created, nil
}

func (s *blockSvc) pushIfConnected() {
	if s.sync != nil && s.sync.Connected() {
		s.sync.RequestSync()
	}
}
