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

type TodoRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TodoMapper
}

func NewTodoRepository(db *gorm.DB) contract.TodoRepository {
	return &TodoRepositoryImpl{
		db:     db,
		mapper: mapper.NewTodoMapper(),
	}
}

func (r *TodoRepositoryImpl) Create(ctx context.Context, todo *entity.TodoItem) error {
	m := r.mapper.ToModel(todo)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*todo = *r.mapper.ToEntity(m)
	return nil
}

func (r *TodoRepositoryImpl) SetCompleted(ctx context.Context, id uuid.UUID, completed bool) error {
	return r.db.WithContext(ctx).
		Model(&model.TodoItem{}).
		Where("id = ?", id).
		Update("completed", completed).Error
}

func (r *TodoRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.TodoItem{}, "id = ?", id).Error
}

func (r *TodoRepositoryImpl) DeleteByNoteId(ctx context.Context, noteId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("note_id = ?", noteId).Delete(&model.TodoItem{}).Error
}

func (r *TodoRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.TodoItem, error) {
	var m model.TodoItem
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *TodoRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.TodoItem, error) {
	var models []*model.TodoItem
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
