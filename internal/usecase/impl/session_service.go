package impl

import (
	"context"
	"log/slog"

	deliverycontext "vidvault/internal/delivery/context"
	"vidvault/internal/domain/entity"
	domainerrors "vidvault/internal/domain/errors"
	"vidvault/internal/domain/repository"
	"vidvault/internal/domain/service"
	"vidvault/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	userRepo     repository.UserRepository
	tokenService service.TokenService
	logger       *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		userRepo:     params.UserRepo,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// Resolve verifies the token and reloads the user so deleted accounts lose access
// immediately. Only the ID and role are carried forward.
func (srv *sessionService) Resolve(ctx context.Context, token string) (*entity.Identity, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	if token == "" {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("no session token")
	}

	userID, err := srv.tokenService.Verify(token)
	if err != nil {
		logger.Debug("Session token rejected", slog.Any("reason", err))

		return nil, domainerrors.ErrUnauthorized.WrapMessage("invalid session token")
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		logger.Debug("Session user no longer exists", slog.Int64("userID", userID))

		return nil, domainerrors.ErrUnauthorized.WrapMessage("session user no longer exists")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load session user")
	}

	return user.Identity(), nil
}
