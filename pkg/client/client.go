// Package client talks to the notecraft HTTP API and implements
// store.Gateway on top of it.
package client

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"notecraft-be/internal/dto"
	"notecraft-be/internal/pkg/serverutils"
	"notecraft-be/pkg/store"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

const defaultTimeout = 15 * time.Second

// APIError is a failure envelope returned by the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

type Client struct {
	http *resty.Client
}

var _ store.Gateway = (*Client)(nil)

// New builds a client for the API rooted at baseURL. token is the bearer
// token issued at sign-in.
func New(baseURL, token string) *Client {
	rc := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")+"/api").
		SetHeader("Content-Type", "application/json").
		SetTimeout(defaultTimeout)
	if token != "" {
		rc.SetAuthToken(token)
	}
	return &Client{http: rc}
}

func call[T any](ctx context.Context, c *Client, method, path string, body any) (T, error) {
	var zero T
	var env serverutils.Response[T]

	req := c.http.R().SetContext(ctx).SetResult(&env).SetError(&env)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return zero, err
	}
	if resp.IsError() || !env.Success {
		msg := env.Message
		if msg == "" {
			msg = resp.Status()
		}
		return zero, &APIError{Status: resp.StatusCode(), Message: msg}
	}
	return env.Data, nil
}

func (c *Client) Me(ctx context.Context) (dto.IdentityResponse, error) {
	return call[dto.IdentityResponse](ctx, c, http.MethodGet, "/user/v1/me", nil)
}

func (c *Client) Outline(ctx context.Context, noteId string) (dto.OutlineResponse, error) {
	return call[dto.OutlineResponse](ctx, c, http.MethodGet, "/note/v1/"+noteId+"/outline", nil)
}

func (c *Client) ListNotes(ctx context.Context) ([]store.Note, error) {
	res, err := call[[]dto.NoteResponse](ctx, c, http.MethodGet, "/note/v1", nil)
	if err != nil {
		return nil, err
	}
	notes := make([]store.Note, 0, len(res))
	for _, n := range res {
		notes = append(notes, toNote(n))
	}
	return notes, nil
}

func (c *Client) CreateNote(ctx context.Context) (store.Note, error) {
	res, err := call[dto.NoteResponse](ctx, c, http.MethodPost, "/note/v1", struct{}{})
	if err != nil {
		return store.Note{}, err
	}
	return toNote(res), nil
}

func (c *Client) UpdateNote(ctx context.Context, id string, patch store.NotePatch) (store.Note, error) {
	req := dto.UpdateNoteRequest{Title: patch.Title, Content: patch.Content}
	res, err := call[dto.NoteResponse](ctx, c, http.MethodPut, "/note/v1/"+id, req)
	if err != nil {
		return store.Note{}, err
	}
	return toNote(res), nil
}

func (c *Client) DeleteNote(ctx context.Context, id string) error {
	_, err := call[any](ctx, c, http.MethodDelete, "/note/v1/"+id, nil)
	return err
}

func (c *Client) ListTodos(ctx context.Context) ([]store.TodoItem, error) {
	res, err := call[[]dto.TodoResponse](ctx, c, http.MethodGet, "/todo/v1", nil)
	if err != nil {
		return nil, err
	}
	todos := make([]store.TodoItem, 0, len(res))
	for _, t := range res {
		todos = append(todos, toTodo(t))
	}
	return todos, nil
}

func (c *Client) CreateTodo(ctx context.Context, noteId, text string, deadline *time.Time) (store.TodoItem, error) {
	nid, err := parseID("note", noteId)
	if err != nil {
		return store.TodoItem{}, err
	}
	req := dto.CreateTodoRequest{NoteId: nid, Text: text, Deadline: deadline}
	res, err := call[dto.TodoResponse](ctx, c, http.MethodPost, "/todo/v1", req)
	if err != nil {
		return store.TodoItem{}, err
	}
	return toTodo(res), nil
}

func (c *Client) ToggleTodo(ctx context.Context, id string, completed bool) (store.TodoItem, error) {
	req := dto.ToggleTodoRequest{Completed: &completed}
	res, err := call[dto.TodoResponse](ctx, c, http.MethodPatch, "/todo/v1/"+id+"/toggle", req)
	if err != nil {
		return store.TodoItem{}, err
	}
	return toTodo(res), nil
}

func (c *Client) DeleteTodo(ctx context.Context, id string) error {
	_, err := call[any](ctx, c, http.MethodDelete, "/todo/v1/"+id, nil)
	return err
}

func (c *Client) ListStarred(ctx context.Context) ([]store.StarredItem, error) {
	return c.listExcerpts(ctx, "/starred/v1")
}

func (c *Client) CreateStarred(ctx context.Context, noteId, text string) (store.StarredItem, error) {
	return c.createExcerpt(ctx, "/starred/v1", noteId, text)
}

func (c *Client) DeleteStarred(ctx context.Context, id string) error {
	_, err := call[any](ctx, c, http.MethodDelete, "/starred/v1/"+id, nil)
	return err
}

func (c *Client) ListIndexItems(ctx context.Context) ([]store.IndexItem, error) {
	return c.listExcerpts(ctx, "/index/v1")
}

func (c *Client) CreateIndexItem(ctx context.Context, noteId, text string) (store.IndexItem, error) {
	return c.createExcerpt(ctx, "/index/v1", noteId, text)
}

func (c *Client) DeleteIndexItem(ctx context.Context, id string) error {
	_, err := call[any](ctx, c, http.MethodDelete, "/index/v1/"+id, nil)
	return err
}

func (c *Client) listExcerpts(ctx context.Context, path string) ([]store.Excerpt, error) {
	res, err := call[[]dto.ExcerptResponse](ctx, c, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	items := make([]store.Excerpt, 0, len(res))
	for _, e := range res {
		items = append(items, toExcerpt(e))
	}
	return items, nil
}

func (c *Client) createExcerpt(ctx context.Context, path, noteId, text string) (store.Excerpt, error) {
	nid, err := parseID("note", noteId)
	if err != nil {
		return store.Excerpt{}, err
	}
	res, err := call[dto.ExcerptResponse](ctx, c, http.MethodPost, path, dto.CreateExcerptRequest{NoteId: nid, Text: text})
	if err != nil {
		return store.Excerpt{}, err
	}
	return toExcerpt(res), nil
}

func parseID(kind, id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s id %q", kind, id)
	}
	return parsed, nil
}

func toNote(n dto.NoteResponse) store.Note {
	return store.Note{
		Id:        n.Id.String(),
		Title:     n.Title,
		Content:   n.Content,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

func toTodo(t dto.TodoResponse) store.TodoItem {
	return store.TodoItem{
		Id:        t.Id.String(),
		NoteId:    t.NoteId.String(),
		Text:      t.Text,
		Completed: t.Completed,
		Deadline:  t.Deadline,
		CreatedAt: t.CreatedAt,
	}
}

func toExcerpt(e dto.ExcerptResponse) store.Excerpt {
	return store.Excerpt{
		Id:        e.Id.String(),
		NoteId:    e.NoteId.String(),
		Text:      e.Text,
		CreatedAt: e.CreatedAt,
	}
}
