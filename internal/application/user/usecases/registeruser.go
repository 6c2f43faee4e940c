package usecases

import (
	"context"

	"quickdesk/internal/domain/shared/events"
	"quickdesk/internal/domain/user"
	vo "quickdesk/internal/domain/user/valueobjects"
	"quickdesk/internal/shared/errors"
	"quickdesk/internal/shared/logger"
)

type RegisterUserCommand struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

type RegisterUserResult struct {
	UserID       uint
	Email        string
	FullName     string
	Role         string
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

type RegisterUserUseCase struct {
	userRepo   user.UserRepository
	hasher     PasswordHasher
	jwtService JWTService
	publisher  events.EventPublisher
	logger     logger.Interface
}

func NewRegisterUserUseCase(
	userRepo user.UserRepository,
	hasher PasswordHasher,
	jwtService JWTService,
	publisher events.EventPublisher,
	logger logger.Interface,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo:   userRepo,
		hasher:     hasher,
		jwtService: jwtService,
		publisher:  publisher,
		logger:     logger,
	}
}

func (uc *RegisterUserUseCase) Execute(ctx context.Context, cmd RegisterUserCommand) (*RegisterUserResult, error) {
	uc.logger.Infow("executing register user use case", "email", cmd.Email)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid register user command", "error", err)
		return nil, err
	}

	email, err := vo.NewEmail(cmd.Email)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to process password")
	}

	newUser, err := user.NewUser(cmd.FirstName, cmd.LastName, email, hash)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	// Save maps a duplicate email to a conflict error.
	if err := uc.userRepo.Save(ctx, newUser); err != nil {
		uc.logger.Errorw("failed to save user", "error", err, "email", email.String())
		return nil, err
	}

	tokens, err := uc.jwtService.Generate(newUser.ID(), newUser.Role())
	if err != nil {
		uc.logger.Errorw("failed to generate tokens", "error", err, "user_id", newUser.ID())
		return nil, errors.NewInternalError("failed to issue tokens")
	}

	event := user.NewUserRegisteredEvent(newUser.ID(), email.String(), newUser.FullName(), newUser.CreatedAt())
	if err := uc.publisher.Publish(event); err != nil {
		uc.logger.Warnw("failed to publish user registered event", "error", err, "user_id", newUser.ID())
	}

	uc.logger.Infow("user registered successfully", "user_id", newUser.ID(), "email", email.String())

	return &RegisterUserResult{
		UserID:       newUser.ID(),
		Email:        email.String(),
		FullName:     newUser.FullName(),
		Role:         newUser.Role().String(),
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresIn:    tokens.ExpiresIn,
	}, nil
}

func (uc *RegisterUserUseCase) validateCommand(cmd RegisterUserCommand) error {
	if cmd.FirstName == "" {
		return errors.NewValidationError("first name is required")
	}
	if cmd.LastName == "" {
		return errors.NewValidationError("last name is required")
	}
	if cmd.Email == "" {
		return errors.NewValidationError("email is required")
	}
	if len(cmd.Password) < 8 {
		return errors.NewValidationError("password must be at least 8 characters")
	}
	if len(cmd.Password) > 72 {
		return errors.NewValidationError("password exceeds maximum length of 72 characters")
	}
	return nil
}
