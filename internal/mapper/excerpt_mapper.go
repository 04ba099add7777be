package mapper

import (
	"notecraft-be/internal/entity"
	"notecraft-be/internal/model"
)

// ExcerptMapper converts both excerpt kinds (starred and index); their
// columns are identical.
type ExcerptMapper struct{}

func NewExcerptMapper() *ExcerptMapper {
	return &ExcerptMapper{}
}

func (m *ExcerptMapper) StarredToEntity(s *model.StarredItem) *entity.StarredItem {
	if s == nil {
		return nil
	}
	return &entity.StarredItem{
		Id:        s.Id,
		NoteId:    s.NoteId,
		UserId:    s.UserId,
		Text:      s.Text,
		CreatedAt: s.CreatedAt,
	}
}

func (m *ExcerptMapper) StarredToModel(s *entity.StarredItem) *model.StarredItem {
	if s == nil {
		return nil
	}
	return &model.StarredItem{
		Id:        s.Id,
		NoteId:    s.NoteId,
		UserId:    s.UserId,
		Text:      s.Text,
		CreatedAt: s.CreatedAt,
	}
}

func (m *ExcerptMapper) IndexToEntity(i *model.IndexItem) *entity.IndexItem {
	if i == nil {
		return nil
	}
	return &entity.IndexItem{
		Id:        i.Id,
		NoteId:    i.NoteId,
		UserId:    i.UserId,
		Text:      i.Text,
		CreatedAt: i.CreatedAt,
	}
}

func (m *ExcerptMapper) IndexToModel(i *entity.IndexItem) *model.IndexItem {
	if i == nil {
		return nil
	}
	return &model.IndexItem{
		Id:        i.Id,
		NoteId:    i.NoteId,
		UserId:    i.UserId,
		Text:      i.Text,
		CreatedAt: i.CreatedAt,
	}
}
