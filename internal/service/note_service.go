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
	"notecraft-be/pkg/outline"

	"github.com/google/uuid"
)

type INoteService interface {
	List(ctx context.Context, userId uuid.UUID) ([]*dto.NoteResponse, error)
	Create(ctx context.Context, userId uuid.UUID) (*dto.NoteResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
	Outline(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.OutlineResponse, error)
}

type noteService struct {
	uowFactory unitofwork.RepositoryFactory
	emitter
	now func() time.Time
}

func NewNoteService(uowFactory unitofwork.RepositoryFactory, publisher IPublisherService, log logger.ILogger) INoteService {
	return &noteService{
		uowFactory: uowFactory,
		emitter:    emitter{publisher: publisher, logger: log},
		now:        time.Now,
	}
}

func toNoteResponse(n *entity.Note) *dto.NoteResponse {
	return &dto.NoteResponse{
		Id:        n.Id,
		Title:     n.Title,
		Content:   n.Content,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

func (s *noteService) List(ctx context.Context, userId uuid.UUID) ([]*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	notes, err := uow.NoteRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.RecentlyUpdatedFirst{},
	)
	if err != nil {
		return nil, translateError("list notes", err)
	}

	res := make([]*dto.NoteResponse, 0, len(notes))
	for _, n := range notes {
		res = append(res, toNoteResponse(n))
	}
	return res, nil
}

func (s *noteService) Create(ctx context.Context, userId uuid.UUID) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	now := s.now()
	note := entity.Note{
		Id:        uuid.New(),
		Title:     entity.DefaultNoteTitle,
		Content:   "",
		UserId:    userId,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uow.NoteRepository().Create(ctx, &note); err != nil {
		return nil, translateError("create note", err)
	}

	s.emit(ctx, events.NoteCreated, userId, note.Id)
	return toNoteResponse(&note), nil
}

func (s *noteService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := ownedNote(ctx, uow, userId, req.Id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		note.Title = *req.Title
	}
	if req.Content != nil {
		note.Content = *req.Content
	}

	// updatedAt never moves backwards, even if the clock does.
	now := s.now()
	if now.Before(note.UpdatedAt) {
		now = note.UpdatedAt
	}
	note.UpdatedAt = now

	if err := uow.NoteRepository().Update(ctx, note); err != nil {
		return nil, translateError("update note", err)
	}

	s.emit(ctx, events.NoteUpdated, userId, note.Id)
	return toNoteResponse(note), nil
}

// Delete removes the note and its todos, starred items and index items in
// one transaction.
func (s *noteService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return translateError("begin transaction", err)
	}
	defer uow.Rollback()

	if _, err := ownedNote(ctx, uow, userId, id); err != nil {
		return err
	}

	if err := uow.TodoRepository().DeleteByNoteId(ctx, id); err != nil {
		return translateError("delete note todos", err)
	}
	if err := uow.StarredRepository().DeleteByNoteId(ctx, id); err != nil {
		return translateError("delete note starred items", err)
	}
	if err := uow.IndexItemRepository().DeleteByNoteId(ctx, id); err != nil {
		return translateError("delete note index items", err)
	}
	if err := uow.NoteRepository().Delete(ctx, id); err != nil {
		return translateError("delete note", err)
	}

	if err := uow.Commit(); err != nil {
		return translateError("commit note deletion", err)
	}

	s.emit(ctx, events.NoteDeleted, userId, id)
	return nil
}

func (s *noteService) Outline(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.OutlineResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	note, err := ownedNote(ctx, uow, userId, id)
	if err != nil {
		return nil, err
	}

	headings := outline.Headings(note.Content)
	res := &dto.OutlineResponse{
		NoteId:   note.Id,
		Headings: make([]dto.HeadingResponse, 0, len(headings)),
	}
	for _, h := range headings {
		res.Headings = append(res.Headings, dto.HeadingResponse{Level: h.Level, Text: h.Text, Line: h.Line})
	}
	return res, nil
}
