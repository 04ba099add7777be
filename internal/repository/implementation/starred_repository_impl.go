package implementation

import (
	"context"
	"errors"

	"notecraft-be/internal/entity"
	"notecraft-be/internal/mapper"
	"notecraft-be/internal/model"
	"notecraft-be/internal/repository/contract"
	"notecraft-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StarredRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ExcerptMapper
}

func NewStarredRepository(db *gorm.DB) contract.StarredRepository {
	return &StarredRepositoryImpl{
		db:     db,
		mapper: mapper.NewExcerptMapper(),
	}
}

func (r *StarredRepositoryImpl) Create(ctx context.Context, item *entity.StarredItem) error {
	m := r.mapper.StarredToModel(item)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*item = *r.mapper.StarredToEntity(m)
	return nil
}

func (r *StarredRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.StarredItem{}, "id = ?", id).Error
}

func (r *StarredRepositoryImpl) DeleteByNoteId(ctx context.Context, noteId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("note_id = ?", noteId).Delete(&model.StarredItem{}).Error
}

func (r *StarredRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.StarredItem, error) {
	var m model.StarredItem
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.StarredToEntity(&m), nil
}

func (r *StarredRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.StarredItem, error) {
	var models []*model.StarredItem
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	items := make([]*entity.StarredItem, len(models))
	for i, m := range models {
		items[i] = r.mapper.StarredToEntity(m)
	}
	return items, nil
}
