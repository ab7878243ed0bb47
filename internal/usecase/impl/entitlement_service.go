package impl

import (
	"context"
	"log/slog"
	"strconv"
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

// defaultPublishTimeout bounds the event publish so a slow broker cannot hold
// the provider's webhook call open.
const defaultPublishTimeout = 5 * time.Second

// entitlementService implements the EntitlementUsecase interface.
type entitlementService struct {
	userRepo  repository.UserRepository
	publisher service.EventPublisher
	logger    *slog.Logger
	now       func() time.Time

	publishTimeout time.Duration
}

// EntitlementServiceParams holds dependencies for EntitlementService, injected by Fx.
type EntitlementServiceParams struct {
	fx.In

	UserRepo  repository.UserRepository
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewEntitlementService is the constructor for entitlementService.
func NewEntitlementService(params EntitlementServiceParams) usecase.EntitlementUsecase {
	return &entitlementService{
		userRepo:  params.UserRepo,
		publisher: params.Publisher,
		logger:    params.Logger,
		now:       time.Now,

		publishTimeout: defaultPublishTimeout,
	}
}

func (srv *entitlementService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Activate marks the referenced user active. The read before the write only
// short-circuits the already-active case; the write itself is a single
// conditional UPDATE, so concurrent deliveries for one user all end Active.
func (srv *entitlementService) Activate(ctx context.Context, input *usecase.ActivateInput) (entity.ActivationResult, error) {
	if input == nil || !input.SignatureValid {
		return "", domainerrors.ErrInvalidWebhook
	}

	userID, err := parseClientReference(input.ClientReferenceID)
	if err != nil {
		return "", err
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return "", domainerrors.ErrUserNotFound.WrapMessage("activation target does not exist")
	}
	if err != nil {
		return "", errors.Wrap(err, "failed to load activation target")
	}

	if user.IsActive {
		srv.log(ctx).Info("Entitlement already active", slog.Int64("userID", userID))

		return entity.ActivationAlreadyActive, nil
	}

	if err := srv.userRepo.Activate(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", domainerrors.ErrUserNotFound.WrapMessage("activation target vanished")
		}

		return "", errors.Wrap(err, "failed to activate user")
	}

	srv.log(ctx).Info("Entitlement activated", slog.Int64("userID", userID), slog.String("paymentEventID", input.PaymentEventID))
	srv.publishActivated(ctx, userID, input.PaymentEventID)

	return entity.ActivationActivated, nil
}

// IsActive reads the flag from the store on every call.
func (srv *entitlementService) IsActive(ctx context.Context, userID int64) (bool, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return false, domainerrors.ErrUnauthorized.WrapMessage("user no longer exists")
	}
	if err != nil {
		return false, errors.Wrap(err, "failed to read entitlement")
	}

	return user.IsActive, nil
}

// publishActivated is best effort; the activation is already committed.
func (srv *entitlementService) publishActivated(ctx context.Context, userID int64, paymentEventID string) {
	if srv.publisher == nil {
		return
	}

	event := &service.EntitlementActivatedEvent{
		UserID:         userID,
		PaymentEventID: paymentEventID,
		ActivatedAt:    srv.now().UTC(),
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
	}

	publishCtx, cancel := context.WithTimeout(ctx, srv.publishTimeout)
	defer cancel()

	if err := srv.publisher.PublishEntitlementActivated(publishCtx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish entitlement event", slog.Int64("userID", userID), slog.Any("error", err))
	}
}

func parseClientReference(ref string) (int64, error) {
	if ref == "" {
		return 0, domainerrors.ErrMalformedReference.WrapMessage("client reference is empty")
	}

	userID, err := strconv.ParseInt(ref, 10, 64)
	if err != nil || userID <= 0 {
		return 0, domainerrors.ErrMalformedReference.WrapMessage("client reference is not a user id")
	}

	return userID, nil
}
