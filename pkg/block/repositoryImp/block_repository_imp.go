package repositoryImp

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/breaking-byts/Life-Os-sub000/entities"
	"github.com/breaking-byts/Life-Os-sub000/pkg/block/repository"
)

var ErrNotFound = errors.New("plan block not found")

type blockRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.BlockRepository { return &blockRepo{db} }

func validate(b *entities.WeekPlanBlock) error {
	if !entities.ValidBlockType(b.BlockType) {
		return fmt.Errorf("invalid block_type %q", b.BlockType)
	}
	if b.Status == "" {
		b.Status = entities.BlockStatusSuggested
	}
	if !entities.ValidBlockStatus(b.Status) {
		return fmt.Errorf("invalid status %q", b.Status)
	}
	return nil
}

func (r *blockRepo) Create(b *entities.WeekPlanBlock) error {
	if err := validate(b); err != nil {
		return err
	}
	return r.db.Create(b).Error
}

func (r *blockRepo) FindByID(id uint) (*entities.WeekPlanBlock, error) {
	var b entities.WeekPlanBlock
	if err := r.db.First(&b, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *blockRepo) Update(b *entities.WeekPlanBlock) error {
	if err := validate(b); err != nil {
		return err
	}
	return r.db.Save(b).Error
}

func (r *blockRepo) SetStatus(id uint, status string) (*entities.WeekPlanBlock, error) {
	if !entities.ValidBlockStatus(status) {
		return nil, fmt.Errorf("invalid status %q", status)
	}
	res := r.db.Model(&entities.WeekPlanBlock{}).Where("block_id = ?", id).Update("status", status)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.FindByID(id)
}

func (r *blockRepo) Delete(id uint) error {
	res := r.db.Delete(&entities.WeekPlanBlock{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *blockRepo) ListByWeek(weekStartDate string) ([]entities.WeekPlanBlock, error) {
	var out []entities.WeekPlanBlock
	err := r.db.Where("week_start_date = ?", weekStartDate).Order("start_at ASC").Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *blockRepo) BulkCreate(bs []entities.WeekPlanBlock) ([]entities.WeekPlanBlock, error) {
	if len(bs) == 0 {
		return nil, nil
	}
	for i := range bs {
		if err := validate(&bs[i]); err != nil {
			return nil, fmt.Errorf("block %d: %w", i, err)
		}
	}
	if err := r.db.Create(&bs).Error; err != nil {
		return nil, err
	}
	return bs, nil
}

func (r *blockRepo) ClearSuggested(weekStartDate string) (int64, error) {
	res := r.db.Where("week_start_date = ? AND status = ?", weekStartDate, entities.BlockStatusSuggested).
		Delete(&entities.WeekPlanBlock{})
	return res.RowsAffected, res.Error
}
