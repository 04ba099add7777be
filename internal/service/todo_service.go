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

type ITodoService interface {
	List(ctx context.Context, userId uuid.UUID) ([]*dto.TodoResponse, error)
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateTodoRequest) (*dto.TodoResponse, error)
	Toggle(ctx context.Context, userId uuid.UUID, req *dto.ToggleTodoRequest) (*dto.TodoResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

type todoService struct {
	uowFactory unitofwork.RepositoryFactory
	emitter
}

func NewTodoService(uowFactory unitofwork.RepositoryFactory, publisher IPublisherService, log logger.ILogger) ITodoService {
	return &todoService{
		uowFactory: uowFactory,
		emitter:    emitter{publisher: publisher, logger: log},
	}
}

func toTodoResponse(t *entity.TodoItem) *dto.TodoResponse {
	return &dto.TodoResponse{
		Id:        t.Id,
		NoteId:    t.NoteId,
		Text:      t.Text,
		Completed: t.Completed,
		Deadline:  t.Deadline,
		CreatedAt: t.CreatedAt,
	}
}

func (s *todoService) List(ctx context.Context, userId uuid.UUID) ([]*dto.TodoResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	todos, err := uow.TodoRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.NewestFirst{},
	)
	if err != nil {
		return nil, translateError("list todos", err)
	}

	res := make([]*dto.TodoResponse, 0, len(todos))
	for _, t := range todos {
		res = append(res, toTodoResponse(t))
	}
	return res, nil
}

func (s *todoService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateTodoRequest) (*dto.TodoResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := ownedNote(ctx, uow, userId, req.NoteId); err != nil {
		return nil, err
	}

	todo := entity.TodoItem{
		Id:        uuid.New(),
		NoteId:    req.NoteId,
		UserId:    userId,
		Text:      req.Text,
		Completed: false,
		Deadline:  req.Deadline,
		CreatedAt: time.Now(),
	}
	if err := uow.TodoRepository().Create(ctx, &todo); err != nil {
		return nil, translateError("create todo", err)
	}

	s.emit(ctx, events.TodoCreated, userId, todo.Id)
	return toTodoResponse(&todo), nil
}

func (s *todoService) Toggle(ctx context.Context, userId uuid.UUID, req *dto.ToggleTodoRequest) (*dto.TodoResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	todo, err := uow.TodoRepository().FindOne(ctx, owned(userId, req.Id)...)
	if err != nil {
		return nil, translateError("load todo", err)
	}
	if todo == nil {
		return nil, ErrNotFoundOrForbidden
	}

	if err := uow.TodoRepository().SetCompleted(ctx, todo.Id, *req.Completed); err != nil {
		return nil, translateError("toggle todo", err)
	}
	todo.Completed = *req.Completed

	s.emit(ctx, events.TodoToggled, userId, todo.Id)
	return toTodoResponse(todo), nil
}

func (s *todoService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	todo, err := uow.TodoRepository().FindOne(ctx, owned(userId, id)...)
	if err != nil {
		return translateError("load todo", err)
	}
	if todo == nil {
		return ErrNotFoundOrForbidden
	}

	if err := uow.TodoRepository().Delete(ctx, id); err != nil {
		return translateError("delete todo", err)
	}

	s.emit(ctx, events.TodoDeleted, userId, id)
	return nil
}
