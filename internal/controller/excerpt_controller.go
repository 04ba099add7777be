package controller

import (
	"notecraft-be/internal/dto"
	"notecraft-be/internal/pkg/serverutils"
	"notecraft-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IExcerptController interface {
	RegisterRoutes(r fiber.Router, auth fiber.Handler)
	List(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

// excerptController serves one excerpt family (starred or index) under its
// own prefix.
type excerptController struct {
	prefix  string
	noun    string
	service service.IExcerptService
}

func NewStarredController(svc service.IExcerptService) IExcerptController {
	return &excerptController{prefix: "/starred/v1", noun: "starred item", service: svc}
}

func NewIndexController(svc service.IExcerptService) IExcerptController {
	return &excerptController{prefix: "/index/v1", noun: "index item", service: svc}
}

func (c *excerptController) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	h := r.Group(c.prefix)
	h.Use(auth)
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Delete(":id", c.Delete)
}

func (c *excerptController) List(ctx *fiber.Ctx) error {
	userId, err := serverutils.CurrentUserId(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.List(ctx.UserContext(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list "+c.noun+"s", res))
}

func (c *excerptController) Create(ctx *fiber.Ctx) error {
	userId, err := serverutils.CurrentUserId(ctx)
	if err != nil {
		return err
	}

	var req dto.CreateExcerptRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.UserContext(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success create "+c.noun, res))
}

func (c *excerptController) Delete(ctx *fiber.Ctx) error {
	userId, err := serverutils.CurrentUserId(ctx)
	if err != nil {
		return err
	}
	id, err := pathID(ctx)
	if err != nil {
		return err
	}

	if err := c.service.Delete(ctx.UserContext(), userId, id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete "+c.noun, nil))
}
