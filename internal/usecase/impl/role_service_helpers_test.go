package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"carpool/config"
	"carpool/internal/domain/repository"
	mockRepo "carpool/internal/mocks/repository"
	mockService "carpool/internal/mocks/service"
	"carpool/internal/usecase"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// mockRoleServiceFixtures wires the role service to mockery mocks.
type mockRoleServiceFixtures struct {
	service   usecase.RoleUsecase
	txManager *mockRepo.MockTransactionManager
	publisher *mockService.MockRoleEventPublisher
	metrics   *mockService.MockLifecycleMetrics
}

func createMockRoleService(t *testing.T) mockRoleServiceFixtures {
	t.Helper()

	txManager := mockRepo.NewMockTransactionManager(t)
	publisher := mockService.NewMockRoleEventPublisher(t)
	metrics := mockService.NewMockLifecycleMetrics(t)

	svc := NewRoleService(RoleServiceParams{
		TxManager: txManager,
		Publisher: publisher,
		Metrics:   metrics,
		Config:    &config.Config{},
		Logger:    newDiscardLogger(),
	})

	return mockRoleServiceFixtures{
		service:   svc,
		txManager: txManager,
		publisher: publisher,
		metrics:   metrics,
	}
}

// onExecute runs the transaction body against a mock factory prepared by setup.
func (f mockRoleServiceFixtures) onExecute(t *testing.T, ctx context.Context, setup func(factory *mockRepo.MockRepositoryFactory)) {
	t.Helper()

	factory := mockRepo.NewMockRepositoryFactory(t)
	setup(factory)

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}
