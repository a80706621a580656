package service

// Lifecycle outcomes recorded by LifecycleMetrics.
const (
	OutcomeSuccess         = "success"
	OutcomeValidationError = "validation_error"
	OutcomeNotFound        = "not_found"
	OutcomeError           = "error"
)

// LifecycleMetrics records role lifecycle operations.
type LifecycleMetrics interface {
	ObserveRoleOperation(operation, kind, outcome string)
}
