package serverutils

import (
	"context"
	"strings"
	"time"

	"notecraft-be/internal/entity"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	localUserId   = "user_id"
	localIdentity = "identity"
)

var errUnauthenticated = fiber.NewError(fiber.StatusUnauthorized, "unauthenticated")

// IdentityResolver turns a token subject into a live identity, failing when
// the account no longer exists.
type IdentityResolver interface {
	Resolve(ctx context.Context, userId uuid.UUID) (*entity.Identity, error)
}

func GenerateToken(secret string, userId uuid.UUID, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userId.String(),
		"exp":     time.Now().Add(ttl).Unix(),
		"iat":     time.Now().Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func ParseToken(secret, tokenStr string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return uuid.Nil, errUnauthenticated
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, errUnauthenticated
	}
	sub, _ := claims["user_id"].(string)
	userId, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, errUnauthenticated
	}
	return userId, nil
}

// bearerToken reads the Authorization header, falling back to ?token= for
// websocket upgrades where browsers cannot set headers.
func bearerToken(ctx *fiber.Ctx) string {
	if h := ctx.Get(fiber.HeaderAuthorization); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	return ctx.Query("token")
}

func NewJwtMiddleware(secret string, resolver IdentityResolver) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		tokenStr := bearerToken(ctx)
		if tokenStr == "" {
			return errUnauthenticated
		}

		userId, err := ParseToken(secret, tokenStr)
		if err != nil {
			return err
		}

		identity := &entity.Identity{Id: userId}
		if resolver != nil {
			identity, err = resolver.Resolve(ctx.UserContext(), userId)
			if err != nil {
				return err
			}
		}

		ctx.Locals(localUserId, userId.String())
		ctx.Locals(localIdentity, identity)
		return ctx.Next()
	}
}

// CurrentUserId returns the authenticated owner of the request.
func CurrentUserId(ctx *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := ctx.Locals(localUserId).(string)
	if !ok {
		return uuid.Nil, errUnauthenticated
	}
	userId, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errUnauthenticated
	}
	return userId, nil
}

func CurrentIdentity(ctx *fiber.Ctx) (*entity.Identity, error) {
	identity, ok := ctx.Locals(localIdentity).(*entity.Identity)
	if !ok || identity == nil {
		return nil, errUnauthenticated
	}
	return identity, nil
}
