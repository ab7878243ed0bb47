// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "vidvault/internal/delivery/context"
	"vidvault/internal/domain/entity"
	domainerrors "vidvault/internal/domain/errors"
	"vidvault/internal/domain/repository"
	"vidvault/internal/domain/service"
	"vidvault/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an inactive account and signs the caller in.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	role := input.Role
	if role == "" {
		role = entity.RoleUser
	}
	if !role.IsValid() {
		return nil, domainerrors.ErrInvalidInput.WrapMessage("unknown role")
	}
	if len(input.Password) > entity.MaxPasswordBytes {
		return nil, domainerrors.ErrInvalidInput.WrapMessage("password exceeds 72 bytes")
	}

	_, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err == nil {
		return nil, domainerrors.ErrUserAlreadyExists.WrapMessage("email already registered")
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to look up email")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	user := entity.NewUser(input.Email, hash, role)
	// A concurrent registration of the same email loses here with ErrUserAlreadyExists.
	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	token, err := srv.issue(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("User registered", slog.Int64("userID", user.ID), slog.String("role", role.String()))

	return &usecase.AuthOutput{User: user, Token: token}, nil
}

// Login checks the password and issues a new token. Unknown email and wrong
// password are indistinguishable to the caller.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("unknown email")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Debug("Password mismatch", slog.Int64("userID", user.ID))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("password mismatch")
	}

	token, err := srv.issue(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &usecase.AuthOutput{User: user, Token: token}, nil
}

// CurrentUser returns the caller's account.
func (srv *authService) CurrentUser(ctx context.Context, userID int64) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("user no longer exists")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load current user")
	}

	return user, nil
}

func (srv *authService) SessionTTL() time.Duration {
	return srv.tokenService.TTL()
}

func (srv *authService) issue(ctx context.Context, userID int64) (string, error) {
	token, err := srv.tokenService.Issue(userID)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token", slog.Int64("userID", userID), slog.Any("error", err))

		return "", domainerrors.ErrInternalError.WrapMessage("failed to issue token")
	}

	return token, nil
}
