package service

import (
	"context"

	"notecraft-be/internal/dto"
	"notecraft-be/internal/entity"
	"notecraft-be/internal/repository/memory"
	"notecraft-be/internal/repository/specification"
	"notecraft-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IIdentityService interface {
	// Resolve turns a token subject into the identity every query is scoped
	// by. A subject whose account is gone is ErrUnauthenticated.
	Resolve(ctx context.Context, userId uuid.UUID) (*entity.Identity, error)
	Me(ctx context.Context, userId uuid.UUID) (*dto.IdentityResponse, error)
	Forget(userId uuid.UUID)
}

type identityService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *memory.IdentityCache
}

func NewIdentityService(uowFactory unitofwork.RepositoryFactory, cache *memory.IdentityCache) IIdentityService {
	return &identityService{
		uowFactory: uowFactory,
		cache:      cache,
	}
}

func (s *identityService) Resolve(ctx context.Context, userId uuid.UUID) (*entity.Identity, error) {
	if identity, ok := s.cache.Get(userId); ok {
		return identity, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, translateError("resolve identity", err)
	}
	if user == nil {
		return nil, ErrUnauthenticated
	}

	identity := &entity.Identity{Id: user.Id, Name: user.FullName, Email: user.Email}
	s.cache.Save(identity)
	return identity, nil
}

func (s *identityService) Me(ctx context.Context, userId uuid.UUID) (*dto.IdentityResponse, error) {
	identity, err := s.Resolve(ctx, userId)
	if err != nil {
		return nil, err
	}
	return &dto.IdentityResponse{Id: identity.Id, Name: identity.Name, Email: identity.Email}, nil
}

func (s *identityService) Forget(userId uuid.UUID) {
	s.cache.Delete(userId)
}
