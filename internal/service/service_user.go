package service

import (
	"context"
	"fmt"

	"github.com/cs1501-tools-of-the-trade/social-platform-demo/internal/logger"
	"github.com/cs1501-tools-of-the-trade/social-platform-demo/internal/store"
	"github.com/cs1501-tools-of-the-trade/social-platform-demo/internal/validators"
	"github.com/cs1501-tools-of-the-trade/social-platform-demo/models"
)

// userService is the concrete implementation of UserService.
type userService struct {
	userRepository store.UserRepository
	validator      validators.Validator

	logger *logger.Logger
}

// NewUserService constructs a UserService over userRepository.
func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		validator:      validators.NewTweetValidator(),
		logger:         logger,
	}
}

// Register validates req and persists a new user.
//
// Returns the persisted user or:
//   - validators.ErrUsernameEmpty for an empty username.
//   - a wrapped store.ErrUsernameAlreadyExists for a taken username.
func (s *userService) Register(ctx context.Context, req models.RegisterUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Msg("invalid registration request")
		return models.User{}, err
	}

	user, err := s.userRepository.CreateUser(ctx, models.User{Username: req.Username})
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("user_id", user.UserID).Str("username", user.Username).Msg("user registered")
	return user, nil
}

// Lookup returns the user registered under username. Usernames are matched
// exactly.
func (s *userService) Lookup(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" {
		return models.User{}, validators.ErrUsernameEmpty
	}

	user, err := s.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		log.Debug().Err(err).Str("username", username).Msg("user lookup failed")
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	return user, nil
}
