package postgres

import (
	"context"
	"sync"
	"testing"
	"time"

	"carpool/internal/domain/entity"
	"carpool/internal/domain/repository"
	"carpool/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("carpool_db"),
		tcpostgres.WithUsername("carpool"),
		tcpostgres.WithPassword("pwd"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Skipf("postgres container unavailable: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		TranslateError:         true,
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	require.NoError(t, Migrate(ctx, db))

	return db
}

func strPtr(s string) *string { return &s }

func TestRepositories_Postgres(t *testing.T) {
	db := setupTestDatabase(t)
	ctx := context.Background()

	t.Run("activate is idempotent per user and kind", func(t *testing.T) {
		roles := NewRoleRepository(db)
		userID := uuid.New()

		first, err := roles.Activate(ctx, userID, entity.RoleDriver)
		require.NoError(t, err)
		second, err := roles.Activate(ctx, userID, entity.RoleDriver)
		require.NoError(t, err)
		assert.Equal(t, first, second)

		require.NoError(t, roles.Deactivate(ctx, userID, entity.RoleDriver))
		role, err := roles.FindByUserAndKind(ctx, userID, entity.RoleDriver)
		require.NoError(t, err)
		assert.False(t, role.Active)

		third, err := roles.Activate(ctx, userID, entity.RoleDriver)
		require.NoError(t, err)
		assert.Equal(t, first, third)

		var count int64
		require.NoError(t, db.Model(&model.RoleModel{}).Where("user_id = ?", userID).Count(&count).Error)
		assert.EqualValues(t, 1, count)
	})

	t.Run("concurrent first activations converge on one row", func(t *testing.T) {
		tm := NewTransactionManager(db)
		userID := uuid.New()

		const workers = 8
		ids := make([]uuid.UUID, workers)
		errs := make([]error, workers)

		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				errs[i] = tm.Execute(ctx, func(f repository.RepositoryFactory) error {
					id, err := f.NewRoleRepository().Activate(ctx, userID, entity.RolePassenger)
					ids[i] = id

					return err
				})
			}(i)
		}
		wg.Wait()

		for i := 0; i < workers; i++ {
			require.NoError(t, errs[i])
			assert.Equal(t, ids[0], ids[i])
		}

		list, err := NewRoleRepository(db).ListByUser(ctx, userID)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("profile upsert overwrites omitted fields with null", func(t *testing.T) {
		roles := NewRoleRepository(db)
		profiles := NewDriverProfileRepository(db)

		roleID, err := roles.Activate(ctx, uuid.New(), entity.RoleDriver)
		require.NoError(t, err)

		firstID, err := profiles.Upsert(ctx, roleID, entity.DriverProfileFields{
			Address:      strPtr("Av. Siempre Viva 742"),
			Neighborhood: strPtr("Centro"),
			PhotoRef:     strPtr("photos/a.jpg"),
			Phone:        strPtr("555-0100"),
		})
		require.NoError(t, err)

		secondID, err := profiles.Upsert(ctx, roleID, entity.DriverProfileFields{
			Address:      strPtr("Calle 2"),
			Neighborhood: strPtr("Norte"),
			PhotoRef:     strPtr("photos/b.jpg"),
		})
		require.NoError(t, err)
		assert.Equal(t, firstID, secondID)

		profile, err := profiles.FindByRoleID(ctx, roleID)
		require.NoError(t, err)
		assert.Equal(t, "Calle 2", *profile.Address)
		assert.Nil(t, profile.Phone)
	})

	t.Run("vehicle blocks profile deletion until removed", func(t *testing.T) {
		roles := NewRoleRepository(db)
		profiles := NewDriverProfileRepository(db)
		vehicles := NewVehicleRepository(db)

		roleID, err := roles.Activate(ctx, uuid.New(), entity.RoleDriver)
		require.NoError(t, err)
		profileID, err := profiles.Upsert(ctx, roleID, entity.DriverProfileFields{Address: strPtr("x")})
		require.NoError(t, err)

		seats := 4
		vehicleID, err := vehicles.Upsert(ctx, profileID, entity.VehicleFields{Make: strPtr("Fiat"), SeatCount: &seats})
		require.NoError(t, err)
		sameID, err := vehicles.Upsert(ctx, profileID, entity.VehicleFields{Make: strPtr("Ford")})
		require.NoError(t, err)
		assert.Equal(t, vehicleID, sameID)

		vehicle, err := vehicles.FindByDriverProfileID(ctx, profileID)
		require.NoError(t, err)
		assert.Equal(t, "Ford", *vehicle.Make)
		assert.Nil(t, vehicle.SeatCount)

		assert.Error(t, profiles.DeleteByRoleID(ctx, roleID))

		require.NoError(t, vehicles.DeleteByDriverProfileID(ctx, profileID))
		require.NoError(t, profiles.DeleteByRoleID(ctx, roleID))
		require.NoError(t, roles.Delete(ctx, roleID))

		_, err = vehicles.FindByDriverProfileID(ctx, profileID)
		assert.True(t, errors.Is(err, repository.ErrVehicleNotFound))
	})

	t.Run("driver routes are replaced wholesale and keep order", func(t *testing.T) {
		routes := NewDriverRouteRepository(db)
		userID := uuid.New()
		passengerRef := uuid.New()

		require.NoError(t, routes.ReplaceAll(ctx, userID, []entity.RouteInput{
			{Schedule: entity.Schedule{Origin: "A", Destination: "B", Days: "Mon"}},
			{Schedule: entity.Schedule{Origin: "C", Destination: "D", Days: "Tue"}},
		}))
		require.NoError(t, routes.ReplaceAll(ctx, userID, []entity.RouteInput{
			{
				Schedule: entity.Schedule{Origin: "E", Destination: "F", Days: "Wed", DepartTime: strPtr("07:30")},
				Stops:    []entity.Stop{{Address: "Stop 1"}, {PassengerRef: &passengerRef, Address: "Stop 2"}},
			},
			{Schedule: entity.Schedule{Origin: "G", Destination: "H"}},
			{Schedule: entity.Schedule{Origin: "I", Destination: "J"}},
		}))

		got, err := routes.FindByDriverUserID(ctx, userID)
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, []string{"E", "G", "I"}, []string{got[0].Origin, got[1].Origin, got[2].Origin})
		require.Len(t, got[0].Stops, 2)
		assert.Equal(t, passengerRef, *got[0].Stops[1].PassengerRef)

		require.NoError(t, routes.ReplaceAll(ctx, userID, nil))
		got, err = routes.FindByDriverUserID(ctx, userID)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("passenger route keeps its id across edits", func(t *testing.T) {
		routes := NewPassengerRouteRepository(db)
		userID := uuid.New()

		firstID, err := routes.UpsertSingle(ctx, userID, entity.Schedule{Origin: "A", Destination: "B"})
		require.NoError(t, err)
		secondID, err := routes.UpsertSingle(ctx, userID, entity.Schedule{Origin: "C", Destination: "D"})
		require.NoError(t, err)
		assert.Equal(t, firstID, secondID)

		route, err := routes.FindByPassengerUserID(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, "C", route.Origin)

		require.NoError(t, routes.DeleteByPassengerUserID(ctx, userID))
		_, err = routes.FindByPassengerUserID(ctx, userID)
		assert.True(t, errors.Is(err, repository.ErrRouteNotFound))
	})

	t.Run("failed transaction leaves no rows behind", func(t *testing.T) {
		tm := NewTransactionManager(db)
		userID := uuid.New()
		boom := errors.New("boom")

		err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
			roleID, err := f.NewRoleRepository().Activate(ctx, userID, entity.RolePassenger)
			if err != nil {
				return err
			}
			if _, err := f.NewPassengerProfileRepository().Upsert(ctx, roleID, entity.PassengerProfileFields{Nationality: strPtr("AR")}); err != nil {
				return err
			}

			return boom
		})
		require.ErrorIs(t, err, boom)

		_, err = NewRoleRepository(db).FindByUserAndKind(ctx, userID, entity.RolePassenger)
		assert.True(t, errors.Is(err, repository.ErrRoleNotFound))
	})

	t.Run("missing rows report not found", func(t *testing.T) {
		_, err := NewRoleRepository(db).FindByUserAndKind(ctx, uuid.New(), entity.RoleDriver)
		assert.True(t, errors.Is(err, repository.ErrRoleNotFound))

		err = NewRoleRepository(db).Deactivate(ctx, uuid.New(), entity.RoleDriver)
		assert.True(t, errors.Is(err, repository.ErrRoleNotFound))

		_, err = NewPassengerProfileRepository(db).FindByRoleID(ctx, uuid.New())
		assert.True(t, errors.Is(err, repository.ErrProfileNotFound))
	})
}
