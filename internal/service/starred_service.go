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

// IExcerptService is shared by the starred and index families; both keep
// verbatim text copied out of a note.
type IExcerptService interface {
	List(ctx context.Context, userId uuid.UUID) ([]*dto.ExcerptResponse, error)
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateExcerptRequest) (*dto.ExcerptResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

type starredService struct {
	uowFactory unitofwork.RepositoryFactory
	emitter
}

func NewStarredService(uowFactory unitofwork.RepositoryFactory, publisher IPublisherService, log logger.ILogger) IExcerptService {
	return &starredService{
		uowFactory: uowFactory,
		emitter:    emitter{publisher: publisher, logger: log},
	}
}

func starredToResponse(s *entity.StarredItem) *dto.ExcerptResponse {
	return &dto.ExcerptResponse{Id: s.Id, NoteId: s.NoteId, Text: s.Text, CreatedAt: s.CreatedAt}
}

func (s *starredService) List(ctx context.Context, userId uuid.UUID) ([]*dto.ExcerptResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	items, err := uow.StarredRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.NewestFirst{},
	)
	if err != nil {
		return nil, translateError("list starred items", err)
	}

	res := make([]*dto.ExcerptResponse, 0, len(items))
	for _, item := range items {
		res = append(res, starredToResponse(item))
	}
	return res, nil
}

func (s *starredService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateExcerptRequest) (*dto.ExcerptResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if _, err := ownedNote(ctx, uow, userId, req.NoteId); err != nil {
		return nil, err
	}

	item := entity.StarredItem{
		Id:        uuid.New(),
		NoteId:    req.NoteId,
		UserId:    userId,
		Text:      req.Text,
		CreatedAt: time.Now(),
	}
	if err := uow.StarredRepository().Create(ctx, &item); err != nil {
		return nil, translateError("create starred item", err)
	}

	s.emit(ctx, events.StarredCreated, userId, item.Id)
	return starredToResponse(&item), nil
}

func (s *starredService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	item, err := uow.StarredRepository().FindOne(ctx, owned(userId, id)...)
	if err != nil {
		return translateError("load starred item", err)
	}
	if item == nil {
		return ErrNotFoundOrForbidden
	}

	if err := uow.StarredRepository().Delete(ctx, id); err != nil {
		return translateError("delete starred item", err)
	}

	s.emit(ctx, events.StarredDeleted, userId, id)
	return nil
}
