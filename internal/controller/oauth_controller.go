package controller

import (
	"fmt"
	"net/url"
	"time"

	"notecraft-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

const stateCookie = "oauth_state"

type IOAuthController interface {
	RegisterRoutes(r fiber.Router)
	Login(ctx *fiber.Ctx) error
	Callback(ctx *fiber.Ctx) error
}

type oauthController struct {
	service   service.IOAuthService
	clientURL string
}

func NewOAuthController(service service.IOAuthService, clientURL string) IOAuthController {
	return &oauthController{service: service, clientURL: clientURL}
}

func (c *oauthController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth")
	h.Get("/:provider/login", c.Login)
	h.Get("/:provider/callback", c.Callback)
}

func (c *oauthController) Login(ctx *fiber.Ctx) error {
	authURL, state, err := c.service.GetLoginURL(ctx.Params("provider"))
	if err != nil {
		return err
	}

	ctx.Cookie(&fiber.Cookie{
		Name:     stateCookie,
		Value:    state,
		Expires:  time.Now().Add(10 * time.Minute),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return ctx.Redirect(authURL, fiber.StatusTemporaryRedirect)
}

func (c *oauthController) Callback(ctx *fiber.Ctx) error {
	code := ctx.Query("code")
	if code == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing code")
	}
	if state := ctx.Query("state"); state == "" || state != ctx.Cookies(stateCookie) {
		return fiber.NewError(fiber.StatusBadRequest, "invalid state")
	}
	ctx.ClearCookie(stateCookie)

	res, err := c.service.HandleCallback(ctx.UserContext(), ctx.Params("provider"), code)
	if err != nil {
		return err
	}

	redirectURL := fmt.Sprintf("%s/app?token=%s", c.clientURL, url.QueryEscape(res.AccessToken))
	return ctx.Redirect(redirectURL, fiber.StatusTemporaryRedirect)
}
