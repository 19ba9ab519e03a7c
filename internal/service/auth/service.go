package auth

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"counsellor/internal/model"
	"counsellor/internal/repository"
	"counsellor/internal/util"
	"counsellor/pkg/mq"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type Service struct {
	userRepo    *repository.UserRepository
	profileRepo *repository.ProfileRepository
	publisher   *mq.Publisher
	jwtSecret   string
	logger      *zap.Logger
}

func NewService(userRepo *repository.UserRepository, profileRepo *repository.ProfileRepository, publisher *mq.Publisher, jwtSecret string, logger *zap.Logger) *Service {
	return &Service{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		publisher:   publisher,
		jwtSecret:   jwtSecret,
		logger:      logger,
	}
}

// Register creates a new user together with an empty profile.
func (s *Service) Register(ctx context.Context, email, password string) (*model.User, error) {
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := util.HashPassword(password)
	if err != nil {
		return nil, err
	}

	u := &model.User{
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}

	if err := s.userRepo.CreateUser(ctx, u); err != nil {
		return nil, err
	}

	if err := s.profileRepo.CreateEmpty(ctx, u.ID); err != nil {
		return nil, err
	}

	if s.publisher != nil {
		payload := mq.UserRegisteredPayload{UserID: u.ID, Email: u.Email}
		if err := s.publisher.Publish(mq.RoutingUserRegistered, payload); err != nil {
			s.logger.Warn("Failed to publish user.registered", zap.Error(err))
		}
	}

	return u, nil
}

// Login checks user credentials and returns JWT.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	u, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", ErrInvalidCredentials
	}

	if !util.CheckPassword(password, u.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	token, err := util.GenerateJWT(u.ID, s.jwtSecret)
	if err != nil {
		return "", err
	}

	return token, nil
}
