package service

import (
	"context"
	"time"

	"notecraft-be/internal/dto"
	"notecraft-be/internal/entity"
	"notecraft-be/internal/pkg/logger"
	"notecraft-be/internal/repository/specification"
	"notecraft-be/internal/repository/unitofwork"
	"notecraft-be/pkg/events"

	"github.com/google/uuid"
)

type indexService struct {
	uowFactory unitofwork.RepositoryFactory
	emitter
}

func NewIndexService(uowFactory unitofwork.RepositoryFactory, publisher IPublisherService, log logger.ILogger) IExcerptService {
	return &indexService{
		uowFactory: uowFactory,
		emitter:    emitter{publisher: publisher, logger: log},
	}
}

func indexToResponse(i *entity.IndexItem) *dto.ExcerptResponse {
	return &dto.ExcerptResponse{Id: i.Id, NoteId: i.NoteId, Text: i.Text, CreatedAt: i.CreatedAt}
}

func (s *indexService) List(ctx context.Context, userId uuid.UUID) ([]*dto.ExcerptResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	items, err := uow.IndexItemRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.NewestFirst{},
	)
	if err != nil {
		return nil, translateError("list index items", err)
	}

	res := make([]*dto.ExcerptResponse, 0, len(items))
	for _, item := range items {
		res = append(res, indexToResponse(item))
	}
	return res, nil
}

func (s *indexService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateExcerptRequest) (*dto.ExcerptResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if _, err := ownedNote(ctx, uow, userId, req.NoteId); err != nil {
		return nil, err
	}

	item := entity.IndexItem{
		Id:        uuid.New(),
		NoteId:    req.NoteId,
		UserId:    userId,
		Text:      req.Text,
		CreatedAt: time.Now(),
	}
	if err := uow.IndexItemRepository().Create(ctx, &item); err != nil {
		return nil, translateError("create index item", err)
	}

	s.emit(ctx, events.IndexItemCreated, userId, item.Id)
	return indexToResponse(&item), nil
}

func (s *indexService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	item, err := uow.IndexItemRepository().FindOne(ctx, owned(userId, id)...)
	if err != nil {
		return translateError("load index item", err)
	}
	if item == nil {
		return ErrNotFoundOrForbidden
	}

	if err := uow.IndexItemRepository().Delete(ctx, id); err != nil {
		return translateError("delete index item", err)
	}

	s.emit(ctx, events.IndexItemDeleted, userId, id)
	return nil
}
