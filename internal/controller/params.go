package controller

import (
	"notecraft-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// pathID parses the :id segment. A malformed id cannot name a record the
// caller owns, so it gets the same answer as a missing one.
func pathID(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, service.ErrNotFoundOrForbidden
	}
	return id, nil
}
