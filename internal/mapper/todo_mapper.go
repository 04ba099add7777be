package mapper

import (
	"notecraft-be/internal/entity"
	"notecraft-be/internal/model"
)

type TodoMapper struct{}

func NewTodoMapper() *TodoMapper {
	return &TodoMapper{}
}

func (m *TodoMapper) ToEntity(t *model.TodoItem) *entity.TodoItem {
	if t == nil {
		return nil
	}
	return &entity.TodoItem{
		Id:        t.Id,
		NoteId:    t.NoteId,
		UserId:    t.UserId,
		Text:      t.Text,
		Completed: t.Completed,
		Deadline:  t.Deadline,
		CreatedAt: t.CreatedAt,
	}
}

func (m *TodoMapper) ToModel(t *entity.TodoItem) *model.TodoItem {
	if t == nil {
		return nil
	}
	return &model.TodoItem{
		Id:        t.Id,
		NoteId:    t.NoteId,
		UserId:    t.UserId,
		Text:      t.Text,
		Completed: t.Completed,
		Deadline:  t.Deadline,
		CreatedAt: t.CreatedAt,
	}
}

func (m *TodoMapper) ToEntities(todos []*model.TodoItem) []*entity.TodoItem {
	entities := make([]*entity.TodoItem, len(todos))
	for i, t := range todos {
		entities[i] = m.ToEntity(t)
	}
	return entities
}
