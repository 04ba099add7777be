package service

import (
	"context"
	"errors"
	"sort"
	"sync"

	"notecraft-be/internal/entity"
	"notecraft-be/internal/repository/contract"
	"notecraft-be/internal/repository/specification"
	"notecraft-be/internal/repository/unitofwork"
	"notecraft-be/pkg/events"

	"github.com/google/uuid"
)

var errInjected = errors.New("injected failure")

// memStore is an in-memory stand-in for the database, shared by every unit
// of work a fake factory hands out.
type memStore struct {
	mu        sync.Mutex
	notes     map[uuid.UUID]*entity.Note
	todos     map[uuid.UUID]*entity.TodoItem
	starred   map[uuid.UUID]*entity.StarredItem
	index     map[uuid.UUID]*entity.IndexItem
	users     map[uuid.UUID]*entity.User
	providers map[string]*entity.UserProvider
	failOn    map[string]bool
	commits   int
}

func newMemStore() *memStore {
	return &memStore{
		notes:     map[uuid.UUID]*entity.Note{},
		todos:     map[uuid.UUID]*entity.TodoItem{},
		starred:   map[uuid.UUID]*entity.StarredItem{},
		index:     map[uuid.UUID]*entity.IndexItem{},
		users:     map[uuid.UUID]*entity.User{},
		providers: map[string]*entity.UserProvider{},
		failOn:    map[string]bool{},
	}
}

func (m *memStore) fail(op string) error {
	if m.failOn[op] {
		return errInjected
	}
	return nil
}

// filter is the subset of specifications the fakes understand.
type filter struct {
	id       *uuid.UUID
	userId   *uuid.UUID
	noteId   *uuid.UUID
	email    string
	provider *specification.LinkedToProvider
}

func parseSpecs(specs []specification.Specification) filter {
	var f filter
	for _, s := range specs {
		switch v := s.(type) {
		case specification.ByID:
			f.id = &v.ID
		case specification.UserOwnedBy:
			f.userId = &v.UserID
		case specification.ByNoteID:
			f.noteId = &v.NoteID
		case specification.ByEmail:
			f.email = v.Email
		case specification.LinkedToProvider:
			f.provider = &v
		}
	}
	return f
}

func (f filter) match(id, userId, noteId uuid.UUID) bool {
	if f.id != nil && *f.id != id {
		return false
	}
	if f.userId != nil && *f.userId != userId {
		return false
	}
	if f.noteId != nil && *f.noteId != noteId {
		return false
	}
	return true
}

type fakeFactory struct{ store *memStore }

func (f fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUow{store: f.store}
}

type fakeUow struct {
	store *memStore
	inTx  bool
}

func (u *fakeUow) Begin(ctx context.Context) error {
	if u.inTx {
		return unitofwork.ErrTxAlreadyStarted
	}
	u.inTx = true
	return nil
}

func (u *fakeUow) Commit() error {
	if !u.inTx {
		return unitofwork.ErrNoTransaction
	}
	u.inTx = false
	u.store.commits++
	return nil
}

func (u *fakeUow) Rollback() error {
	if !u.inTx {
		return unitofwork.ErrNoTransaction
	}
	u.inTx = false
	return nil
}

func (u *fakeUow) UserRepository() contract.UserRepository           { return userRepo{u.store} }
func (u *fakeUow) NoteRepository() contract.NoteRepository           { return noteRepo{u.store} }
func (u *fakeUow) TodoRepository() contract.TodoRepository           { return todoRepo{u.store} }
func (u *fakeUow) StarredRepository() contract.StarredRepository     { return starredRepo{u.store} }
func (u *fakeUow) IndexItemRepository() contract.IndexItemRepository { return indexRepo{u.store} }

type noteRepo struct{ s *memStore }

func (r noteRepo) Create(ctx context.Context, note *entity.Note) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("note.Create"); err != nil {
		return err
	}
	n := *note
	r.s.notes[n.Id] = &n
	return nil
}

func (r noteRepo) Update(ctx context.Context, note *entity.Note) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("note.Update"); err != nil {
		return err
	}
	n := *note
	r.s.notes[n.Id] = &n
	return nil
}

func (r noteRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("note.Delete"); err != nil {
		return err
	}
	delete(r.s.notes, id)
	return nil
}

func (r noteRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error) {
	all, err := r.FindAll(ctx, specs...)
	if err != nil || len(all) == 0 {
		return nil, err
	}
	return all[0], nil
}

func (r noteRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("note.Find"); err != nil {
		return nil, err
	}
	f := parseSpecs(specs)
	var out []*entity.Note
	for _, n := range r.s.notes {
		if f.match(n.Id, n.UserId, uuid.Nil) {
			c := *n
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	return out, nil
}

func (r noteRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, err := r.FindAll(ctx, specs...)
	return int64(len(all)), err
}

type todoRepo struct{ s *memStore }

func (r todoRepo) Create(ctx context.Context, todo *entity.TodoItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("todo.Create"); err != nil {
		return err
	}
	t := *todo
	r.s.todos[t.Id] = &t
	return nil
}

func (r todoRepo) SetCompleted(ctx context.Context, id uuid.UUID, completed bool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("todo.SetCompleted"); err != nil {
		return err
	}
	if t, ok := r.s.todos[id]; ok {
		t.Completed = completed
	}
	return nil
}

func (r todoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.todos, id)
	return nil
}

func (r todoRepo) DeleteByNoteId(ctx context.Context, noteId uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("todo.DeleteByNoteId"); err != nil {
		return err
	}
	for id, t := range r.s.todos {
		if t.NoteId == noteId {
			delete(r.s.todos, id)
		}
	}
	return nil
}

func (r todoRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.TodoItem, error) {
	all, err := r.FindAll(ctx, specs...)
	if err != nil || len(all) == 0 {
		return nil, err
	}
	return all[0], nil
}

func (r todoRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.TodoItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	f := parseSpecs(specs)
	var out []*entity.TodoItem
	for _, t := range r.s.todos {
		if f.match(t.Id, t.UserId, t.NoteId) {
			c := *t
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

type starredRepo struct{ s *memStore }

func (r starredRepo) Create(ctx context.Context, item *entity.StarredItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c := *item
	r.s.starred[c.Id] = &c
	return nil
}

func (r starredRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.starred, id)
	return nil
}

func (r starredRepo) DeleteByNoteId(ctx context.Context, noteId uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, it := range r.s.starred {
		if it.NoteId == noteId {
			delete(r.s.starred, id)
		}
	}
	return nil
}

func (r starredRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.StarredItem, error) {
	all, _ := r.FindAll(ctx, specs...)
	if len(all) == 0 {
		return nil, nil
	}
	return all[0], nil
}

func (r starredRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.StarredItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	f := parseSpecs(specs)
	var out []*entity.StarredItem
	for _, it := range r.s.starred {
		if f.match(it.Id, it.UserId, it.NoteId) {
			c := *it
			out = append(out, &c)
		}
	}
	return out, nil
}

type indexRepo struct{ s *memStore }

func (r indexRepo) Create(ctx context.Context, item *entity.IndexItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c := *item
	r.s.index[c.Id] = &c
	return nil
}

func (r indexRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.index, id)
	return nil
}

func (r indexRepo) DeleteByNoteId(ctx context.Context, noteId uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, it := range r.s.index {
		if it.NoteId == noteId {
			delete(r.s.index, id)
		}
	}
	return nil
}

func (r indexRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.IndexItem, error) {
	all, _ := r.FindAll(ctx, specs...)
	if len(all) == 0 {
		return nil, nil
	}
	return all[0], nil
}

func (r indexRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.IndexItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	f := parseSpecs(specs)
	var out []*entity.IndexItem
	for _, it := range r.s.index {
		if f.match(it.Id, it.UserId, it.NoteId) {
			c := *it
			out = append(out, &c)
		}
	}
	return out, nil
}

type userRepo struct{ s *memStore }

func (r userRepo) Create(ctx context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c := *user
	r.s.users[c.Id] = &c
	return nil
}

func (r userRepo) Update(ctx context.Context, user *entity.User) error {
	return r.Create(ctx, user)
}

func (r userRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	f := parseSpecs(specs)
	if f.provider != nil {
		link, ok := r.s.providers[f.provider.Name+"/"+f.provider.ProviderUserID]
		if !ok {
			return nil, nil
		}
		f.id = &link.UserId
	}
	for _, u := range r.s.users {
		if f.id != nil && *f.id != u.Id {
			continue
		}
		if f.email != "" && f.email != u.Email {
			continue
		}
		c := *u
		return &c, nil
	}
	return nil, nil
}

func (r userRepo) SaveUserProvider(ctx context.Context, provider *entity.UserProvider) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c := *provider
	r.s.providers[c.ProviderName+"/"+c.ProviderUserId] = &c
	return nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
	err    error
}

func (p *recordingPublisher) Publish(ctx context.Context, evt events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, evt)
	return nil
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.events))
	for i, e := range p.events {
		out[i] = e.EventType()
	}
	return out
}
