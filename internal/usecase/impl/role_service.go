// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"carpool/config"
	deliverycontext "carpool/internal/delivery/context"
	"carpool/internal/domain/constants"
	"carpool/internal/domain/entity"
	domainerrors "carpool/internal/domain/errors"
	"carpool/internal/domain/repository"
	"carpool/internal/domain/service"
	"carpool/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// roleService implements the RoleUsecase interface.
type roleService struct {
	txManager        repository.TransactionManager
	publisher        service.RoleEventPublisher
	metrics          service.LifecycleMetrics
	revalidateOnEdit bool
	logger           *slog.Logger
}

// RoleServiceParams holds dependencies for RoleService, injected by Fx.
type RoleServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Publisher service.RoleEventPublisher
	Metrics   service.LifecycleMetrics
	Config    *config.Config
	Logger    *slog.Logger
}

// NewRoleService is the constructor for roleService.
func NewRoleService(params RoleServiceParams) usecase.RoleUsecase {
	return &roleService{
		txManager:        params.TxManager,
		publisher:        params.Publisher,
		metrics:          params.Metrics,
		revalidateOnEdit: params.Config.RevalidateOnEdit(),
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *roleService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ActivateRole runs the whole activation in one transaction: lock the role row, gate first
// activations on required fields, upsert the role, then overwrite its dependents.
func (srv *roleService) ActivateRole(ctx context.Context, userID uuid.UUID, input *usecase.ActivateRoleInput) (_ *usecase.ActivateRoleOutput, err error) {
	kind := input.Kind
	defer func() { srv.observe(constants.OperationActivate, kind, err) }()

	if !kind.IsValid() {
		return nil, domainerrors.NewValidationError("kind", "must be driver or passenger")
	}
	if kind == entity.RolePassenger && len(input.Data.Routes) > 1 {
		return nil, domainerrors.NewValidationError("routes", "a passenger may declare at most one route")
	}

	var (
		roleID          uuid.UUID
		firstActivation bool
	)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		roleRepo := repoFactory.NewRoleRepository()

		// 1. Lock the existing role so concurrent activations of the pair serialize here.
		existing, err := roleRepo.FindForUpdate(ctx, userID, kind)
		switch {
		case errors.Is(err, repository.ErrRoleNotFound):
			firstActivation = true
		case err != nil:
			return errors.Wrap(err, "failed to lock role")
		default:
			firstActivation = !existing.Active
		}

		// 2. Nothing has been written yet, so a failed gate leaves no trace.
		if firstActivation || srv.revalidateOnEdit {
			if err := validateRequiredFields(kind, &input.Data); err != nil {
				return err
			}
		}

		// 3. Insert or reactivate the role.
		roleID, err = roleRepo.Activate(ctx, userID, kind)
		if err != nil {
			return errors.Wrap(err, "failed to activate role")
		}

		// 4. Overwrite the dependents of the role.
		if kind == entity.RoleDriver {
			return srv.applyDriverData(ctx, repoFactory, userID, roleID, &input.Data)
		}

		return srv.applyPassengerData(ctx, repoFactory, userID, roleID, &input.Data)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to activate role")
	}

	srv.log(ctx).Info("Role activated",
		slog.String("userID", userID.String()),
		slog.String("roleID", roleID.String()),
		slog.String("kind", kind.String()),
		slog.Bool("firstActivation", firstActivation),
	)
	srv.publish(ctx, service.EventRoleActivated, userID, roleID, kind)

	return &usecase.ActivateRoleOutput{
		RoleID:          roleID,
		Kind:            kind,
		FirstActivation: firstActivation,
	}, nil
}

func (srv *roleService) applyDriverData(ctx context.Context, repoFactory repository.RepositoryFactory, userID, roleID uuid.UUID, data *usecase.RolePayload) error {
	profileID, err := repoFactory.NewDriverProfileRepository().Upsert(ctx, roleID, data.DriverProfile())
	if err != nil {
		return errors.Wrap(err, "failed to save driver profile")
	}

	// A present vehicle section overwrites the vehicle even when every field is blank.
	if data.Vehicle != nil {
		if _, err := repoFactory.NewVehicleRepository().Upsert(ctx, profileID, *data.Vehicle); err != nil {
			return errors.Wrap(err, "failed to save vehicle")
		}
	}

	if data.Routes != nil {
		if err := repoFactory.NewDriverRouteRepository().ReplaceAll(ctx, userID, data.Routes); err != nil {
			return errors.Wrap(err, "failed to replace driver routes")
		}
	}

	return nil
}

func (srv *roleService) applyPassengerData(ctx context.Context, repoFactory repository.RepositoryFactory, userID, roleID uuid.UUID, data *usecase.RolePayload) error {
	if _, err := repoFactory.NewPassengerProfileRepository().Upsert(ctx, roleID, data.PassengerProfile()); err != nil {
		return errors.Wrap(err, "failed to save passenger profile")
	}

	if data.Routes == nil {
		return nil
	}

	routeRepo := repoFactory.NewPassengerRouteRepository()

	// An empty list withdraws the passenger's route.
	if len(data.Routes) == 0 {
		if err := routeRepo.DeleteByPassengerUserID(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to delete passenger route")
		}

		return nil
	}

	if _, err := routeRepo.UpsertSingle(ctx, userID, data.Routes[0].Schedule); err != nil {
		return errors.Wrap(err, "failed to save passenger route")
	}

	return nil
}

// DeactivateRole flips the active flag off. Profile, vehicle and routes are kept.
func (srv *roleService) DeactivateRole(ctx context.Context, userID uuid.UUID, kind entity.RoleKind) (err error) {
	defer func() { srv.observe(constants.OperationDeactivate, kind, err) }()

	if !kind.IsValid() {
		return domainerrors.NewValidationError("kind", "must be driver or passenger")
	}

	var roleID uuid.UUID

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		roleRepo := repoFactory.NewRoleRepository()

		role, err := roleRepo.FindForUpdate(ctx, userID, kind)
		if err != nil {
			return mapRoleLookupError(err, kind)
		}
		roleID = role.ID

		if err := roleRepo.Deactivate(ctx, userID, kind); err != nil {
			return mapRoleLookupError(err, kind)
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to deactivate role")
	}

	srv.log(ctx).Info("Role deactivated",
		slog.String("userID", userID.String()),
		slog.String("roleID", roleID.String()),
		slog.String("kind", kind.String()),
	)
	srv.publish(ctx, service.EventRoleDeactivated, userID, roleID, kind)

	return nil
}

// RevokeRole deletes the role's dependents in foreign key order and the role itself last.
func (srv *roleService) RevokeRole(ctx context.Context, userID uuid.UUID, kind entity.RoleKind) (err error) {
	defer func() { srv.observe(constants.OperationRevoke, kind, err) }()

	if !kind.IsValid() {
		return domainerrors.NewValidationError("kind", "must be driver or passenger")
	}

	var roleID uuid.UUID

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		roleRepo := repoFactory.NewRoleRepository()

		role, err := roleRepo.FindForUpdate(ctx, userID, kind)
		if err != nil {
			return mapRoleLookupError(err, kind)
		}
		roleID = role.ID

		if kind == entity.RoleDriver {
			err = srv.deleteDriverData(ctx, repoFactory, userID, role.ID)
		} else {
			err = srv.deletePassengerData(ctx, repoFactory, userID, role.ID)
		}
		if err != nil {
			return err
		}

		if err := roleRepo.Delete(ctx, role.ID); err != nil {
			return errors.Wrap(err, "failed to delete role")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to revoke role")
	}

	srv.log(ctx).Info("Role revoked",
		slog.String("userID", userID.String()),
		slog.String("roleID", roleID.String()),
		slog.String("kind", kind.String()),
	)
	srv.publish(ctx, service.EventRoleRevoked, userID, roleID, kind)

	return nil
}

// deleteDriverData removes vehicle, then profile, then routes.
func (srv *roleService) deleteDriverData(ctx context.Context, repoFactory repository.RepositoryFactory, userID, roleID uuid.UUID) error {
	profileRepo := repoFactory.NewDriverProfileRepository()

	profile, err := profileRepo.FindByRoleID(ctx, roleID)
	switch {
	case errors.Is(err, repository.ErrProfileNotFound):
		// No profile means no vehicle either.
	case err != nil:
		return errors.Wrap(err, "failed to find driver profile")
	default:
		if err := repoFactory.NewVehicleRepository().DeleteByDriverProfileID(ctx, profile.ID); err != nil {
			return errors.Wrap(err, "failed to delete vehicle")
		}
		if err := profileRepo.DeleteByRoleID(ctx, roleID); err != nil {
			return errors.Wrap(err, "failed to delete driver profile")
		}
	}

	if err := repoFactory.NewDriverRouteRepository().DeleteAllByDriverUserID(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to delete driver routes")
	}

	return nil
}

// deletePassengerData removes profile, then route.
func (srv *roleService) deletePassengerData(ctx context.Context, repoFactory repository.RepositoryFactory, userID, roleID uuid.UUID) error {
	if err := repoFactory.NewPassengerProfileRepository().DeleteByRoleID(ctx, roleID); err != nil {
		return errors.Wrap(err, "failed to delete passenger profile")
	}

	if err := repoFactory.NewPassengerRouteRepository().DeleteByPassengerUserID(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to delete passenger route")
	}

	return nil
}

// publish emits the committed change. The transaction is already committed, so a failure is only logged.
func (srv *roleService) publish(ctx context.Context, eventType string, userID, roleID uuid.UUID, kind entity.RoleKind) {
	if srv.publisher == nil {
		return
	}

	event := &service.RoleEvent{
		Type:       eventType,
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		UserID:     userID.String(),
		RoleID:     roleID.String(),
		Kind:       kind.String(),
		OccurredAt: time.Now().UTC(),
	}

	if err := srv.publisher.PublishRoleEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish role event",
			slog.String("eventType", eventType),
			slog.String("roleID", event.RoleID),
			slog.Any("error", err),
		)
	}
}

func (srv *roleService) observe(operation string, kind entity.RoleKind, err error) {
	if srv.metrics == nil {
		return
	}

	label := kind.String()
	if !kind.IsValid() {
		label = "unknown"
	}

	srv.metrics.ObserveRoleOperation(operation, label, outcomeOf(err))
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return service.OutcomeSuccess
	case errors.Is(err, domainerrors.ErrValidationFailed):
		return service.OutcomeValidationError
	case errors.Is(err, domainerrors.ErrRoleNotFound):
		return service.OutcomeNotFound
	default:
		return service.OutcomeError
	}
}

func mapRoleLookupError(err error, kind entity.RoleKind) error {
	if errors.Is(err, repository.ErrRoleNotFound) {
		return domainerrors.ErrRoleNotFound.WrapMessage("no " + kind.String() + " role for this user")
	}

	return errors.Wrap(err, "failed to find role")
}
