package impl

import (
	"context"
	"log/slog"
	"strconv"

	"vidvault/config"
	deliverycontext "vidvault/internal/delivery/context"
	"vidvault/internal/domain/entity"
	domainerrors "vidvault/internal/domain/errors"
	"vidvault/internal/domain/repository"
	"vidvault/internal/domain/service"
	"vidvault/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const simulatedPaymentEventID = "evt_simulated"

type billingService struct {
	cfg         *config.Config
	gateway     service.PaymentGateway
	qrcode      service.QRCodeService
	entitlement usecase.EntitlementUsecase
	userRepo    repository.UserRepository
	logger      *slog.Logger
}

// BillingServiceParams holds dependencies for BillingService, injected by Fx.
type BillingServiceParams struct {
	fx.In

	Config      *config.Config
	Gateway     service.PaymentGateway
	QRCode      service.QRCodeService
	Entitlement usecase.EntitlementUsecase
	UserRepo    repository.UserRepository
	Logger      *slog.Logger
}

// NewBillingService is the constructor for billingService.
func NewBillingService(params BillingServiceParams) usecase.BillingUsecase {
	return &billingService{
		cfg:         params.Config,
		gateway:     params.Gateway,
		qrcode:      params.QRCode,
		entitlement: params.Entitlement,
		userRepo:    params.UserRepo,
		logger:      params.Logger,
	}
}

func (srv *billingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *billingService) CreateCheckoutSession(ctx context.Context, userID int64, origin string) (*entity.CheckoutSession, error) {
	session, err := srv.gateway.CreateCheckoutSession(ctx, userID, origin)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create checkout session")
	}

	srv.log(ctx).Info("Checkout session created", slog.Int64("userID", userID), slog.String("sessionID", session.ID))

	return session, nil
}

func (srv *billingService) CreateCheckoutQR(ctx context.Context, userID int64, origin string) ([]byte, error) {
	session, err := srv.CreateCheckoutSession(ctx, userID, origin)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrcode.GenerateURLQR(session.URL)
	if err != nil {
		srv.log(ctx).Error("Failed to render checkout QR code", slog.Int64("userID", userID), slog.Any("error", err))

		return nil, domainerrors.ErrInternalError.WrapMessage("failed to render QR code")
	}

	return png, nil
}

func (srv *billingService) Status(ctx context.Context, userID int64) (bool, error) {
	return srv.entitlement.IsActive(ctx, userID)
}

// SimulateWebhook feeds the caller's own ID through the activator as a
// verified completion and reports the record before and after.
func (srv *billingService) SimulateWebhook(ctx context.Context, userID int64) (*usecase.SimulationOutput, error) {
	before, err := srv.DebugUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	result, err := srv.entitlement.Activate(ctx, &usecase.ActivateInput{
		SignatureValid:    true,
		ClientReferenceID: strconv.FormatInt(userID, 10),
		PaymentEventID:    simulatedPaymentEventID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "simulated activation failed")
	}

	after, err := srv.DebugUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Simulated webhook processed",
		slog.Int64("userID", userID),
		slog.String("result", string(result)),
		slog.Bool("activeBefore", before.IsActive),
		slog.Bool("activeAfter", after.IsActive),
	)

	return &usecase.SimulationOutput{
		UserBefore:           before,
		UserAfter:            after,
		Result:               result,
		ActivationSuccessful: after.IsActive,
	}, nil
}

func (srv *billingService) DebugUser(ctx context.Context, userID int64) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound.WrapMessage("caller does not exist")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user")
	}

	return user, nil
}

func (srv *billingService) DebugSystem(ctx context.Context) *usecase.SystemStatusOutput {
	out := &usecase.SystemStatusOutput{DatabaseStatus: usecase.DatabaseConnected}

	if cfg := srv.cfg; cfg != nil {
		out.Environment = cfg.Env.Env
		out.Configured.Database = cfg.Postgres != nil
		out.Configured.SigningSecret = cfg.SecretKey.Access != ""
		if cfg.Stripe != nil {
			out.Configured.StripeSecretKey = cfg.Stripe.SecretKey != ""
			out.Configured.StripePriceID = cfg.Stripe.PriceID != ""
			out.Configured.StripeWebhookSecret = cfg.Stripe.WebhookSecret != ""
		}
	}

	counts, err := srv.userRepo.Count(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to count users", slog.Any("error", err))
		out.DatabaseStatus = usecase.DatabaseError

		return out
	}
	out.Users = *counts

	return out
}
