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

type IndexItemRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ExcerptMapper
}

func NewIndexItemRepository(db *gorm.DB) contract.IndexItemRepository {
	return &IndexItemRepositoryImpl{
		db:     db,
		mapper: mapper.NewExcerptMapper(),
	}
}

func (r *IndexItemRepositoryImpl) Create(ctx context.Context, item *entity.IndexItem) error {
	m := r.mapper.IndexToModel(item)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*item = *r.mapper.IndexToEntity(m)
	return nil
}

func (r *IndexItemRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.IndexItem{}, "id = ?", id).Error
}

func (r *IndexItemRepositoryImpl) DeleteByNoteId(ctx context.Context, noteId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("note_id = ?", noteId).Delete(&model.IndexItem{}).Error
}

func (r *IndexItemRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.IndexItem, error) {
	var m model.IndexItem
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.IndexToEntity(&m), nil
}

func (r *IndexItemRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.IndexItem, error) {
	var models []*model.IndexItem
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	items := make([]*entity.IndexItem, len(models))
	for i, m := range models {
		items[i] = r.mapper.IndexToEntity(m)
	}
	return items, nil
}
