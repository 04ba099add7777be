package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"net/http"
	"time"

	"notecraft-be/internal/config"
	"notecraft-be/internal/dto"
	"notecraft-be/internal/entity"
	"notecraft-be/internal/pkg/logger"
	"notecraft-be/internal/pkg/serverutils"
	"notecraft-be/internal/repository/specification"
	"notecraft-be/internal/repository/unitofwork"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const (
	ProviderGoogle    = "google"
	googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"
)

var ErrUnsupportedProvider = &Error{Status: http.StatusBadRequest, Message: "unsupported provider"}

type IOAuthService interface {
	// GetLoginURL returns the provider consent URL and the state value the
	// callback must echo back.
	GetLoginURL(provider string) (url string, state string, err error)
	HandleCallback(ctx context.Context, provider string, code string) (*dto.LoginResponse, error)
}

// ProviderUser is what a provider tells us about the account that signed in.
type ProviderUser struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// UserInfoFetcher exchanges an authorization code for the provider profile.
type UserInfoFetcher func(ctx context.Context, code string) (*ProviderUser, error)

type oauthService struct {
	uowFactory unitofwork.RepositoryFactory
	googleConf *oauth2.Config
	fetch      UserInfoFetcher
	identities IIdentityService
	jwtSecret  string
	tokenTTL   time.Duration
	logger     logger.ILogger
}

func NewOAuthService(
	uowFactory unitofwork.RepositoryFactory,
	identities IIdentityService,
	cfg config.AuthConfig,
	log logger.ILogger,
) IOAuthService {
	conf := &oauth2.Config{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		RedirectURL:  cfg.GoogleRedirectURL,
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}

	s := &oauthService{
		uowFactory: uowFactory,
		googleConf: conf,
		identities: identities,
		jwtSecret:  cfg.JwtSecret,
		tokenTTL:   cfg.TokenTTL,
		logger:     log,
	}
	s.fetch = s.fetchGoogleUser
	return s
}

func (s *oauthService) GetLoginURL(provider string) (string, string, error) {
	if provider != ProviderGoogle {
		return "", "", ErrUnsupportedProvider
	}

	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", "", err
	}
	state := base64.URLEncoding.EncodeToString(b)
	return s.googleConf.AuthCodeURL(state), state, nil
}

func (s *oauthService) fetchGoogleUser(ctx context.Context, code string) (*ProviderUser, error) {
	token, err := s.googleConf.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("code exchange failed: %w", err)
	}

	// The oauth2 client injects the bearer token into every request.
	var user ProviderUser
	resp, err := resty.NewWithClient(s.googleConf.Client(ctx, token)).R().
		SetContext(ctx).
		SetResult(&user).
		Get(googleUserInfoURL)
	if err != nil {
		return nil, fmt.Errorf("failed getting user info: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("failed getting user info: %s", resp.Status())
	}
	return &user, nil
}

func (s *oauthService) HandleCallback(ctx context.Context, provider string, code string) (*dto.LoginResponse, error) {
	if provider != ProviderGoogle {
		return nil, ErrUnsupportedProvider
	}

	profile, err := s.fetch(ctx, code)
	if err != nil {
		s.logger.Warn("OAuth", "Provider sign-in failed", map[string]interface{}{"error": err.Error()})
		return nil, &Error{Status: http.StatusUnauthorized, Message: err.Error()}
	}
	if profile.Email == "" {
		return nil, &Error{Status: http.StatusUnauthorized, Message: "provider returned no email"}
	}

	user, err := s.upsertUser(ctx, provider, profile)
	if err != nil {
		return nil, err
	}
	s.identities.Forget(user.Id)

	token, err := serverutils.GenerateToken(s.jwtSecret, user.Id, s.tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	s.logger.Info("OAuth", "User signed in", map[string]interface{}{"user_id": user.Id.String()})
	return &dto.LoginResponse{
		AccessToken: token,
		User: dto.IdentityResponse{
			Id:    user.Id,
			Name:  user.FullName,
			Email: user.Email,
		},
	}, nil
}

// upsertUser finds the account by provider link, then by email, and creates
// it when neither exists. The provider link is refreshed either way.
func (s *oauthService) upsertUser(ctx context.Context, provider string, profile *ProviderUser) (*entity.User, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, translateError("begin transaction", err)
	}
	defer uow.Rollback()

	users := uow.UserRepository()
	user, err := users.FindOne(ctx, specification.LinkedToProvider{Name: provider, ProviderUserID: profile.ID})
	if err == nil && user == nil {
		user, err = users.FindOne(ctx, specification.ByEmail{Email: profile.Email})
	}
	if err != nil {
		return nil, translateError("look up user", err)
	}

	var avatar *string
	if profile.Picture != "" {
		avatar = &profile.Picture
	}

	now := time.Now()
	if user == nil {
		user = &entity.User{
			Id:        uuid.New(),
			Email:     profile.Email,
			FullName:  profile.Name,
			AvatarURL: avatar,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := users.Create(ctx, user); err != nil {
			return nil, translateError("create user", err)
		}
	} else if profile.Name != "" && (profile.Name != user.FullName || avatar != nil) {
		user.FullName = profile.Name
		user.AvatarURL = avatar
		user.UpdatedAt = now
		if err := users.Update(ctx, user); err != nil {
			return nil, translateError("update user", err)
		}
	}

	link := &entity.UserProvider{
		Id:             uuid.New(),
		UserId:         user.Id,
		ProviderName:   provider,
		ProviderUserId: profile.ID,
		AvatarURL:      profile.Picture,
		CreatedAt:      now,
	}
	if err := users.SaveUserProvider(ctx, link); err != nil {
		return nil, translateError("save provider link", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, translateError("commit sign-in", err)
	}
	return user, nil
}
