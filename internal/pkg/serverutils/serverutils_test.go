package serverutils

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"notecraft-be/internal/entity"
	"notecraft-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

type codedError struct{}

func (codedError) Error() string   { return "unauthorized or not found" }
func (codedError) StatusCode() int { return http.StatusNotFound }

type stubResolver struct {
	err error
}

func (r stubResolver) Resolve(_ context.Context, userId uuid.UUID) (*entity.Identity, error) {
	if r.err != nil {
		return nil, r.err
	}
	return &entity.Identity{Id: userId, Name: "Ada"}, nil
}

func newTestApp(resolver IdentityResolver) *fiber.App {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware(logger.NewNop()))

	app.Get("/panic", func(ctx *fiber.Ctx) error { panic("boom") })
	app.Get("/coded", func(ctx *fiber.Ctx) error { return codedError{} })
	app.Get("/plain", func(ctx *fiber.Ctx) error { return errors.New("db down") })

	protected := app.Group("/me", NewJwtMiddleware(testSecret, resolver))
	protected.Get("", func(ctx *fiber.Ctx) error {
		identity, err := CurrentIdentity(ctx)
		if err != nil {
			return err
		}
		return ctx.JSON(SuccessResponse("ok", identity.Name))
	})
	return app
}

func decode(t *testing.T, resp *http.Response) Response[any] {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out Response[any]
	require.NoError(t, json.Unmarshal(body, &out))
	return out
}

func TestErrorHandlerMiddleware(t *testing.T) {
	app := newTestApp(nil)

	tests := []struct {
		path    string
		code    int
		message string
	}{
		{path: "/panic", code: 500, message: "internal server error"},
		{path: "/coded", code: 404, message: "unauthorized or not found"},
		{path: "/plain", code: 500, message: "db down"},
		{path: "/missing", code: 404, message: "Cannot GET /missing"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, tt.path, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.code, resp.StatusCode)

			out := decode(t, resp)
			assert.False(t, out.Success)
			assert.Equal(t, tt.code, out.Code)
			assert.Equal(t, tt.message, out.Message)
			assert.Nil(t, out.Data)
		})
	}
}

func TestJwtMiddleware(t *testing.T) {
	userId := uuid.New()
	valid, err := GenerateToken(testSecret, userId, time.Hour)
	require.NoError(t, err)
	expired, err := GenerateToken(testSecret, userId, -time.Hour)
	require.NoError(t, err)
	foreign, err := GenerateToken("other-secret", userId, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name     string
		header   string
		query    string
		resolver IdentityResolver
		code     int
	}{
		{name: "no token", code: 401},
		{name: "valid header", header: "Bearer " + valid, code: 200},
		{name: "valid query", query: "?token=" + valid, code: 200},
		{name: "expired", header: "Bearer " + expired, code: 401},
		{name: "wrong secret", header: "Bearer " + foreign, code: 401},
		{name: "resolver rejects", header: "Bearer " + valid, resolver: stubResolver{err: fiber.ErrUnauthorized}, code: 401},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := tt.resolver
			if resolver == nil {
				resolver = stubResolver{}
			}
			app := newTestApp(resolver)

			req := httptest.NewRequest(http.MethodGet, "/me"+tt.query, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.code, resp.StatusCode)

			out := decode(t, resp)
			assert.Equal(t, tt.code == 200, out.Success)
			if tt.code == 200 {
				assert.Equal(t, "Ada", out.Data)
			}
		})
	}
}

func TestValidateRequest(t *testing.T) {
	type req struct {
		Text string `validate:"required"`
	}

	assert.NoError(t, ValidateRequest(req{Text: "x"}))

	err := ValidateRequest(req{})
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
	assert.Contains(t, fe.Message, "Text failed on required")
}
