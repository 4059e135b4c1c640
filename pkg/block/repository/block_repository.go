package repository

import "github.com/breaking-byts/Life-Os-sub000/entities"

// BlockRepository is the CRUD surface over the persisted plan-block store.
// Lifecycle legality lives one layer up in the service; the repository only
// enforces the value enums.
type BlockRepository interface {
	Create(b *entities.WeekPlanBlock) error
	FindByID(id uint) (*entities.WeekPlanBlock, error)
	Update(b *entities.WeekPlanBlock) error
	SetStatus(id uint, status string) (*entities.WeekPlanBlock, error)
	Delete(id uint) error
	ListByWeek(weekStartDate string) ([]entities.WeekPlanBlock, error)
	BulkCreate(bs []entities.WeekPlanBlock) ([]entities.WeekPlanBlock, error)
	// ClearSuggested removes every suggested block of the week and returns
	// the number removed.
	ClearSuggested(weekStartDate string) (int64, error)
}
