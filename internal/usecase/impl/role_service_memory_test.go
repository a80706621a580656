package impl

import (
	"context"
	"slices"
	"sync"
	"time"

	"carpool/internal/domain/entity"
	"carpool/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var errInjected = errors.New("injected failure")

// memState is one consistent snapshot of every table.
type memState struct {
	roles             map[uuid.UUID]entity.Role             // by role ID
	driverProfiles    map[uuid.UUID]entity.DriverProfile    // by role ID
	passengerProfiles map[uuid.UUID]entity.PassengerProfile // by role ID
	vehicles          map[uuid.UUID]entity.Vehicle          // by driver profile ID
	driverRoutes      map[uuid.UUID][]entity.DriverRoute    // by driver user ID
	passengerRoutes   map[uuid.UUID]entity.PassengerRoute   // by passenger user ID
}

func newMemState() *memState {
	return &memState{
		roles:             map[uuid.UUID]entity.Role{},
		driverProfiles:    map[uuid.UUID]entity.DriverProfile{},
		passengerProfiles: map[uuid.UUID]entity.PassengerProfile{},
		vehicles:          map[uuid.UUID]entity.Vehicle{},
		driverRoutes:      map[uuid.UUID][]entity.DriverRoute{},
		passengerRoutes:   map[uuid.UUID]entity.PassengerRoute{},
	}
}

func (s *memState) clone() *memState {
	c := newMemState()
	for k, v := range s.roles {
		c.roles[k] = v
	}
	for k, v := range s.driverProfiles {
		c.driverProfiles[k] = v
	}
	for k, v := range s.passengerProfiles {
		c.passengerProfiles[k] = v
	}
	for k, v := range s.vehicles {
		c.vehicles[k] = v
	}
	for k, v := range s.driverRoutes {
		c.driverRoutes[k] = slices.Clone(v)
	}
	for k, v := range s.passengerRoutes {
		c.passengerRoutes[k] = v
	}

	return c
}

// memDB is an in-memory TransactionManager. Transactions are fully serialized,
// which is what the role row lock guarantees for a single (user, kind) pair,
// and a failing transaction leaves the committed state untouched.
type memDB struct {
	mu        sync.Mutex
	committed *memState

	// failOn makes the named repository operation return errInjected.
	failOn string
}

func newMemDB() *memDB {
	return &memDB{committed: newMemState()}
}

func (db *memDB) Execute(_ context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	working := db.committed.clone()
	if err := fn(&memTx{state: working, failOn: db.failOn}); err != nil {
		return err
	}
	db.committed = working

	return nil
}

// snapshot returns a copy of the committed state.
func (db *memDB) snapshot() *memState {
	db.mu.Lock()
	defer db.mu.Unlock()

	return db.committed.clone()
}

func (db *memDB) role(userID uuid.UUID, kind entity.RoleKind) (entity.Role, bool) {
	for _, r := range db.snapshot().roles {
		if r.UserID == userID && r.Kind == kind {
			return r, true
		}
	}

	return entity.Role{}, false
}

type memTx struct {
	state  *memState
	failOn string
}

func (tx *memTx) fail(op string) error {
	if tx.failOn == op {
		return errInjected
	}

	return nil
}

func (tx *memTx) NewRoleRepository() repository.RoleRepository {
	return (*memRoleRepo)(tx)
}

func (tx *memTx) NewDriverProfileRepository() repository.DriverProfileRepository {
	return (*memDriverProfileRepo)(tx)
}

func (tx *memTx) NewPassengerProfileRepository() repository.PassengerProfileRepository {
	return (*memPassengerProfileRepo)(tx)
}

func (tx *memTx) NewVehicleRepository() repository.VehicleRepository {
	return (*memVehicleRepo)(tx)
}

func (tx *memTx) NewDriverRouteRepository() repository.DriverRouteRepository {
	return (*memDriverRouteRepo)(tx)
}

func (tx *memTx) NewPassengerRouteRepository() repository.PassengerRouteRepository {
	return (*memPassengerRouteRepo)(tx)
}

// --- roles ---

type memRoleRepo memTx

func (r *memRoleRepo) find(userID uuid.UUID, kind entity.RoleKind) (entity.Role, bool) {
	for _, role := range r.state.roles {
		if role.UserID == userID && role.Kind == kind {
			return role, true
		}
	}

	return entity.Role{}, false
}

func (r *memRoleRepo) Activate(_ context.Context, userID uuid.UUID, kind entity.RoleKind) (uuid.UUID, error) {
	if err := (*memTx)(r).fail("role.activate"); err != nil {
		return uuid.Nil, err
	}

	now := time.Now()
	if role, ok := r.find(userID, kind); ok {
		role.Active = true
		role.UpdatedAt = now
		r.state.roles[role.ID] = role

		return role.ID, nil
	}

	role := entity.Role{ID: uuid.New(), UserID: userID, Kind: kind, Active: true, CreatedAt: now, UpdatedAt: now}
	r.state.roles[role.ID] = role

	return role.ID, nil
}

func (r *memRoleRepo) Deactivate(_ context.Context, userID uuid.UUID, kind entity.RoleKind) error {
	role, ok := r.find(userID, kind)
	if !ok {
		return repository.ErrRoleNotFound
	}
	role.Active = false
	r.state.roles[role.ID] = role

	return nil
}

func (r *memRoleRepo) FindByUserAndKind(_ context.Context, userID uuid.UUID, kind entity.RoleKind) (*entity.Role, error) {
	role, ok := r.find(userID, kind)
	if !ok {
		return nil, repository.ErrRoleNotFound
	}

	return &role, nil
}

func (r *memRoleRepo) FindForUpdate(ctx context.Context, userID uuid.UUID, kind entity.RoleKind) (*entity.Role, error) {
	if err := (*memTx)(r).fail("role.findForUpdate"); err != nil {
		return nil, err
	}

	return r.FindByUserAndKind(ctx, userID, kind)
}

func (r *memRoleRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]*entity.Role, error) {
	var roles []*entity.Role
	for _, role := range r.state.roles {
		if role.UserID == userID {
			roles = append(roles, &role)
		}
	}

	return roles, nil
}

func (r *memRoleRepo) Delete(_ context.Context, roleID uuid.UUID) error {
	if err := (*memTx)(r).fail("role.delete"); err != nil {
		return err
	}
	if _, ok := r.state.driverProfiles[roleID]; ok {
		return errors.New("driver profile still references role")
	}
	if _, ok := r.state.passengerProfiles[roleID]; ok {
		return errors.New("passenger profile still references role")
	}
	if _, ok := r.state.roles[roleID]; !ok {
		return repository.ErrRoleNotFound
	}
	delete(r.state.roles, roleID)

	return nil
}

// --- profiles ---

type memDriverProfileRepo memTx

func (r *memDriverProfileRepo) Upsert(_ context.Context, roleID uuid.UUID, fields entity.DriverProfileFields) (uuid.UUID, error) {
	if err := (*memTx)(r).fail("driverProfile.upsert"); err != nil {
		return uuid.Nil, err
	}
	if _, ok := r.state.roles[roleID]; !ok {
		return uuid.Nil, repository.ErrRoleNotFound
	}

	profile, ok := r.state.driverProfiles[roleID]
	if !ok {
		profile = entity.DriverProfile{ID: uuid.New(), RoleID: roleID, CreatedAt: time.Now()}
	}
	profile.DriverProfileFields = fields
	profile.UpdatedAt = time.Now()
	r.state.driverProfiles[roleID] = profile

	return profile.ID, nil
}

func (r *memDriverProfileRepo) FindByRoleID(_ context.Context, roleID uuid.UUID) (*entity.DriverProfile, error) {
	profile, ok := r.state.driverProfiles[roleID]
	if !ok {
		return nil, repository.ErrProfileNotFound
	}

	return &profile, nil
}

func (r *memDriverProfileRepo) DeleteByRoleID(_ context.Context, roleID uuid.UUID) error {
	profile, ok := r.state.driverProfiles[roleID]
	if !ok {
		return nil
	}
	if _, hasVehicle := r.state.vehicles[profile.ID]; hasVehicle {
		return errors.New("vehicle still references driver profile")
	}
	delete(r.state.driverProfiles, roleID)

	return nil
}

type memPassengerProfileRepo memTx

func (r *memPassengerProfileRepo) Upsert(_ context.Context, roleID uuid.UUID, fields entity.PassengerProfileFields) (uuid.UUID, error) {
	if err := (*memTx)(r).fail("passengerProfile.upsert"); err != nil {
		return uuid.Nil, err
	}
	if _, ok := r.state.roles[roleID]; !ok {
		return uuid.Nil, repository.ErrRoleNotFound
	}

	profile, ok := r.state.passengerProfiles[roleID]
	if !ok {
		profile = entity.PassengerProfile{ID: uuid.New(), RoleID: roleID, CreatedAt: time.Now()}
	}
	profile.PassengerProfileFields = fields
	profile.UpdatedAt = time.Now()
	r.state.passengerProfiles[roleID] = profile

	return profile.ID, nil
}

func (r *memPassengerProfileRepo) FindByRoleID(_ context.Context, roleID uuid.UUID) (*entity.PassengerProfile, error) {
	profile, ok := r.state.passengerProfiles[roleID]
	if !ok {
		return nil, repository.ErrProfileNotFound
	}

	return &profile, nil
}

func (r *memPassengerProfileRepo) DeleteByRoleID(_ context.Context, roleID uuid.UUID) error {
	delete(r.state.passengerProfiles, roleID)

	return nil
}

// --- vehicles ---

type memVehicleRepo memTx

func (r *memVehicleRepo) profileExists(profileID uuid.UUID) bool {
	for _, p := range r.state.driverProfiles {
		if p.ID == profileID {
			return true
		}
	}

	return false
}

func (r *memVehicleRepo) Upsert(_ context.Context, driverProfileID uuid.UUID, fields entity.VehicleFields) (uuid.UUID, error) {
	if err := (*memTx)(r).fail("vehicle.upsert"); err != nil {
		return uuid.Nil, err
	}
	if !r.profileExists(driverProfileID) {
		return uuid.Nil, repository.ErrProfileNotFound
	}

	vehicle, ok := r.state.vehicles[driverProfileID]
	if !ok {
		vehicle = entity.Vehicle{ID: uuid.New(), DriverProfileID: driverProfileID, CreatedAt: time.Now()}
	}
	vehicle.VehicleFields = fields
	vehicle.UpdatedAt = time.Now()
	r.state.vehicles[driverProfileID] = vehicle

	return vehicle.ID, nil
}

func (r *memVehicleRepo) FindByDriverProfileID(_ context.Context, driverProfileID uuid.UUID) (*entity.Vehicle, error) {
	vehicle, ok := r.state.vehicles[driverProfileID]
	if !ok {
		return nil, repository.ErrVehicleNotFound
	}

	return &vehicle, nil
}

func (r *memVehicleRepo) DeleteByDriverProfileID(_ context.Context, driverProfileID uuid.UUID) error {
	delete(r.state.vehicles, driverProfileID)

	return nil
}

// --- routes ---

type memDriverRouteRepo memTx

func (r *memDriverRouteRepo) ReplaceAll(_ context.Context, driverUserID uuid.UUID, routes []entity.RouteInput) error {
	if err := (*memTx)(r).fail("driverRoute.replaceAll"); err != nil {
		return err
	}

	stored := make([]entity.DriverRoute, 0, len(routes))
	for i, route := range routes {
		stored = append(stored, entity.DriverRoute{
			ID:           uuid.New(),
			DriverUserID: driverUserID,
			Position:     i,
			Schedule:     route.Schedule,
			Stops:        slices.Clone(route.Stops),
			CreatedAt:    time.Now(),
		})
	}

	if len(stored) == 0 {
		delete(r.state.driverRoutes, driverUserID)
	} else {
		r.state.driverRoutes[driverUserID] = stored
	}

	return nil
}

func (r *memDriverRouteRepo) FindByDriverUserID(_ context.Context, driverUserID uuid.UUID) ([]*entity.DriverRoute, error) {
	routes := make([]*entity.DriverRoute, 0, len(r.state.driverRoutes[driverUserID]))
	for _, route := range r.state.driverRoutes[driverUserID] {
		routes = append(routes, &route)
	}

	return routes, nil
}

func (r *memDriverRouteRepo) DeleteAllByDriverUserID(_ context.Context, driverUserID uuid.UUID) error {
	delete(r.state.driverRoutes, driverUserID)

	return nil
}

type memPassengerRouteRepo memTx

func (r *memPassengerRouteRepo) UpsertSingle(_ context.Context, passengerUserID uuid.UUID, schedule entity.Schedule) (uuid.UUID, error) {
	if err := (*memTx)(r).fail("passengerRoute.upsert"); err != nil {
		return uuid.Nil, err
	}

	route, ok := r.state.passengerRoutes[passengerUserID]
	if !ok {
		route = entity.PassengerRoute{ID: uuid.New(), PassengerUserID: passengerUserID, CreatedAt: time.Now()}
	}
	route.Schedule = schedule
	route.UpdatedAt = time.Now()
	r.state.passengerRoutes[passengerUserID] = route

	return route.ID, nil
}

func (r *memPassengerRouteRepo) FindByPassengerUserID(_ context.Context, passengerUserID uuid.UUID) (*entity.PassengerRoute, error) {
	route, ok := r.state.passengerRoutes[passengerUserID]
	if !ok {
		return nil, repository.ErrRouteNotFound
	}

	return &route, nil
}

func (r *memPassengerRouteRepo) DeleteByPassengerUserID(_ context.Context, passengerUserID uuid.UUID) error {
	delete(r.state.passengerRoutes, passengerUserID)

	return nil
}
