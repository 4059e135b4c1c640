package service

import (
	"errors"

	"github.com/breaking-byts/Life-Os-sub000/entities"
)

// ErrIllegalTransition is returned when a lifecycle operation is applied to a
// block whose current status does not permit it. Status only moves forward.
var ErrIllegalTransition = errors.New("illegal plan block status transition")

// SyncTrigger is the narrow view of the sync orchestrator the lifecycle
// needs: whether a remote account is connected, and a fire-and-forget push.
type SyncTrigger interface {
	Connected() bool
	RequestSync()
}

// BlockInput carries client-supplied block fields. On update, empty optional
// fields keep their stored values.
type BlockInput struct {
	WeekStartDate string `json:"week_start_date"`
	StartAt       string `json:"start_at"`
	EndAt         string `json:"end_at"`
	BlockType     string `json:"block_type"`
	CourseID      *uint  `json:"course_id"`
	WeeklyTaskID  *uint  `json:"weekly_task_id"`
	Title         string `json:"title"`
	Status        string `json:"status"`
	RationaleJSON string `json:"rationale_json"`
}

type BlockService interface {
	Create(input BlockInput) (*entities.WeekPlanBlock, error)
	Update(id uint, input BlockInput) (*entities.WeekPlanBlock, error)

	// Accept moves suggested -> accepted. Lock moves suggested|accepted ->
	// locked. Both push to the remote calendar when one is connected.
	Accept(id uint) (*entities.WeekPlanBlock, error)
	Lock(id uint) (*entities.WeekPlanBlock, error)

	// Delete removes the block from any status. It never pushes: a deleted
	// local suggestion has no guaranteed remote counterpart.
	Delete(id uint) error

	// Reschedule updates the time fields only, preserving type, title and
	// status. The caller decides whether a push follows.
	Reschedule(id uint, startAt, endAt string) (*entities.WeekPlanBlock, error)

	ListByWeek(weekStartDate string) ([]entities.WeekPlanBlock, error)

	// Generate clears the week's suggested blocks and proposes one focus
	// block per day in the first free slot. Idempotent per week.
	Generate(weekStartDate string) ([]entities.WeekPlanBlock, error)
}
