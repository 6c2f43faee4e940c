package usecases

import (
	"context"

	"quickdesk/internal/domain/user"
	"quickdesk/internal/shared/errors"
	"quickdesk/internal/shared/logger"
)

type LoginUserCommand struct {
	Email    string
	Password string
}

type LoginUserResult struct {
	UserID       uint
	Email        string
	FullName     string
	Role         string
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

type LoginUserUseCase struct {
	userRepo   user.UserRepository
	hasher     PasswordHasher
	jwtService JWTService
	logger     logger.Interface
}

func NewLoginUserUseCase(
	userRepo user.UserRepository,
	hasher PasswordHasher,
	jwtService JWTService,
	logger logger.Interface,
) *LoginUserUseCase {
	return &LoginUserUseCase{
		userRepo:   userRepo,
		hasher:     hasher,
		jwtService: jwtService,
		logger:     logger,
	}
}

func (uc *LoginUserUseCase) Execute(ctx context.Context, cmd LoginUserCommand) (*LoginUserResult, error) {
	if cmd.Email == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("email and password are required")
	}

	existing, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		// The same error for a missing account and a wrong password keeps
		// account enumeration off the table.
		if errors.IsNotFoundError(err) {
			return nil, errors.NewInvalidCredentialsError()
		}
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil, err
	}

	if err := uc.hasher.Verify(cmd.Password, existing.PasswordHash()); err != nil {
		uc.logger.Warnw("failed login attempt", "email", cmd.Email)
		return nil, errors.NewInvalidCredentialsError()
	}

	if !existing.IsActive() {
		uc.logger.Warnw("login attempt on inactive account", "user_id", existing.ID())
		return nil, errors.NewAccountInactiveError()
	}

	tokens, err := uc.jwtService.Generate(existing.ID(), existing.Role())
	if err != nil {
		uc.logger.Errorw("failed to generate tokens", "error", err, "user_id", existing.ID())
		return nil, errors.NewInternalError("failed to issue tokens")
	}

	uc.logger.Infow("user logged in successfully", "user_id", existing.ID())

	return &LoginUserResult{
		UserID:       existing.ID(),
		Email:        existing.Email().String(),
		FullName:     existing.FullName(),
		Role:         existing.Role().String(),
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresIn:    tokens.ExpiresIn,
	}, nil
}
