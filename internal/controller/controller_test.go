package controller

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"notecraft-be/internal/dto"
	"notecraft-be/internal/pkg/logger"
	"notecraft-be/internal/pkg/serverutils"
	"notecraft-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "controller-secret"

type stubNoteService struct {
	lastUpdate *dto.UpdateNoteRequest
	owner      uuid.UUID
	noteId     uuid.UUID
}

func (s *stubNoteService) List(ctx context.Context, userId uuid.UUID) ([]*dto.NoteResponse, error) {
	if userId != s.owner {
		return []*dto.NoteResponse{}, nil
	}
	return []*dto.NoteResponse{{Id: s.noteId, Title: "Untitled"}}, nil
}

func (s *stubNoteService) Create(ctx context.Context, userId uuid.UUID) (*dto.NoteResponse, error) {
	now := time.Now()
	return &dto.NoteResponse{Id: uuid.New(), Title: "Untitled", CreatedAt: now, UpdatedAt: now}, nil
}

func (s *stubNoteService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error) {
	s.lastUpdate = req
	if userId != s.owner || req.Id != s.noteId {
		return nil, service.ErrNotFoundOrForbidden
	}
	return &dto.NoteResponse{Id: req.Id}, nil
}

func (s *stubNoteService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	if userId != s.owner || id != s.noteId {
		return service.ErrNotFoundOrForbidden
	}
	return nil
}

func (s *stubNoteService) Outline(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.OutlineResponse, error) {
	return &dto.OutlineResponse{NoteId: id, Headings: []dto.HeadingResponse{}}, nil
}

type stubTodoService struct{}

func (stubTodoService) List(ctx context.Context, userId uuid.UUID) ([]*dto.TodoResponse, error) {
	return []*dto.TodoResponse{}, nil
}

func (stubTodoService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateTodoRequest) (*dto.TodoResponse, error) {
	return &dto.TodoResponse{Id: uuid.New(), NoteId: req.NoteId, Text: req.Text, Deadline: req.Deadline}, nil
}

func (stubTodoService) Toggle(ctx context.Context, userId uuid.UUID, req *dto.ToggleTodoRequest) (*dto.TodoResponse, error) {
	return &dto.TodoResponse{Id: req.Id, Completed: *req.Completed}, nil
}

func (stubTodoService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	return nil
}

type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newApp(notes service.INoteService) *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware(logger.NewNop()))
	api := app.Group("/api")
	auth := serverutils.NewJwtMiddleware(testSecret, nil)
	NewNoteController(notes).RegisterRoutes(api, auth)
	NewTodoController(stubTodoService{}).RegisterRoutes(api, auth)
	return app
}

func do(t *testing.T, app *fiber.App, method, path string, userId uuid.UUID, body string) (int, envelope) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if userId != uuid.Nil {
		token, err := serverutils.GenerateToken(testSecret, userId, time.Minute)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	return resp.StatusCode, env
}

func TestNoteController(t *testing.T) {
	owner, stranger := uuid.New(), uuid.New()
	notes := &stubNoteService{owner: owner, noteId: uuid.New()}
	app := newApp(notes)

	t.Run("unauthenticated", func(t *testing.T) {
		code, env := do(t, app, http.MethodGet, "/api/note/v1", uuid.Nil, "")
		assert.Equal(t, http.StatusUnauthorized, code)
		assert.False(t, env.Success)
	})

	t.Run("list", func(t *testing.T) {
		code, env := do(t, app, http.MethodGet, "/api/note/v1", owner, "")
		assert.Equal(t, http.StatusOK, code)
		assert.True(t, env.Success)

		var list []dto.NoteResponse
		require.NoError(t, json.Unmarshal(env.Data, &list))
		assert.Len(t, list, 1)
	})

	t.Run("partial update leaves content nil", func(t *testing.T) {
		code, _ := do(t, app, http.MethodPut, "/api/note/v1/"+notes.noteId.String(), owner, `{"title":"Trip"}`)
		assert.Equal(t, http.StatusOK, code)
		require.NotNil(t, notes.lastUpdate.Title)
		assert.Equal(t, "Trip", *notes.lastUpdate.Title)
		assert.Nil(t, notes.lastUpdate.Content)
	})

	t.Run("foreign and malformed ids look alike", func(t *testing.T) {
		code, foreign := do(t, app, http.MethodDelete, "/api/note/v1/"+notes.noteId.String(), stranger, "")
		assert.Equal(t, http.StatusNotFound, code)

		code, malformed := do(t, app, http.MethodDelete, "/api/note/v1/not-a-uuid", owner, "")
		assert.Equal(t, http.StatusNotFound, code)
		assert.Equal(t, foreign.Message, malformed.Message)
		assert.Equal(t, "unauthorized or not found", foreign.Message)
	})

	t.Run("delete returns null data", func(t *testing.T) {
		code, env := do(t, app, http.MethodDelete, "/api/note/v1/"+notes.noteId.String(), owner, "")
		assert.Equal(t, http.StatusOK, code)
		assert.True(t, env.Success)
		assert.Equal(t, "null", string(env.Data))
	})
}

func TestTodoController(t *testing.T) {
	app := newApp(&stubNoteService{})
	userId := uuid.New()

	t.Run("create validates", func(t *testing.T) {
		code, env := do(t, app, http.MethodPost, "/api/todo/v1", userId, `{"text":""}`)
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Contains(t, env.Message, "validation failed")
	})

	t.Run("create with deadline", func(t *testing.T) {
		body := `{"note_id":"` + uuid.NewString() + `","text":"pack","deadline":"2025-05-01T09:00:00Z"}`
		code, env := do(t, app, http.MethodPost, "/api/todo/v1", userId, body)
		assert.Equal(t, http.StatusOK, code)

		var todo dto.TodoResponse
		require.NoError(t, json.Unmarshal(env.Data, &todo))
		require.NotNil(t, todo.Deadline)
		assert.Equal(t, 9, todo.Deadline.Hour())
	})

	t.Run("toggle requires completed", func(t *testing.T) {
		code, _ := do(t, app, http.MethodPatch, "/api/todo/v1/"+uuid.NewString()+"/toggle", userId, `{}`)
		assert.Equal(t, http.StatusBadRequest, code)

		code, env := do(t, app, http.MethodPatch, "/api/todo/v1/"+uuid.NewString()+"/toggle", userId, `{"completed":true}`)
		assert.Equal(t, http.StatusOK, code)
		var todo dto.TodoResponse
		require.NoError(t, json.Unmarshal(env.Data, &todo))
		assert.True(t, todo.Completed)
	})
}
