package validator

import (
	"testing"

	"carpool/internal/delivery/api/router/handler"
	domainerrors "carpool/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testStop struct {
	Address string `json:"address" validate:"required"`
}

type testRoute struct {
	Origin     string     `json:"origin" validate:"required"`
	DepartTime *string    `json:"depart_time" validate:"omitempty,hhmm"`
	Stops      []testStop `json:"stops" validate:"dive"`
}

type testRequest struct {
	Kind   string      `json:"kind" validate:"required,oneof=driver passenger"`
	Seats  *int        `json:"seat_count,omitempty" validate:"omitempty,min=1"`
	Routes []testRoute `json:"routes" validate:"dive"`
}

func strPtr(s string) *string { return &s }

func TestValidator_Valid(t *testing.T) {
	v := New()

	err := v.Validate(&testRequest{
		Kind:   "driver",
		Routes: []testRoute{{Origin: "A", DepartTime: strPtr("07:30"), Stops: []testStop{{Address: "x"}}}},
	})

	assert.NoError(t, err)
}

func TestValidator_ReportsJSONPath(t *testing.T) {
	v := New()

	tests := []struct {
		name      string
		req       *testRequest
		wantField string
	}{
		{name: "missing kind", req: &testRequest{}, wantField: "kind"},
		{name: "unknown kind", req: &testRequest{Kind: "admin"}, wantField: "kind"},
		{name: "seat count", req: &testRequest{Kind: "driver", Seats: new(int)}, wantField: "seat_count"},
		{name: "bad time", req: &testRequest{Kind: "driver", Routes: []testRoute{{Origin: "A", DepartTime: strPtr("7:5")}}}, wantField: "routes[0].depart_time"},
		{name: "hour out of range", req: &testRequest{Kind: "driver", Routes: []testRoute{{Origin: "A", DepartTime: strPtr("24:00")}}}, wantField: "routes[0].depart_time"},
		{name: "stop address", req: &testRequest{Kind: "driver", Routes: []testRoute{{Origin: "A", Stops: []testStop{{}}}}}, wantField: "routes[0].stops[0].address"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.req)

			var validationErr *domainerrors.ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, tt.wantField, validationErr.Field())
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestValidator_RoleRequestTags(t *testing.T) {
	v := New()

	tests := []struct {
		name      string
		req       any
		wantField string
	}{
		{name: "route origin", req: &handler.RouteRequest{Destination: "B", Days: "Mon"}, wantField: "origin"},
		{name: "route destination", req: &handler.RouteRequest{Origin: "A"}, wantField: "destination"},
		{name: "passenger ref", req: &handler.StopRequest{PassengerRef: strPtr("juan")}, wantField: "passenger_ref"},
		{name: "nested route origin", req: &handler.ActivateRoleRequest{
			Kind: "driver",
			Data: handler.RoleDataRequest{Routes: []handler.RouteRequest{{Days: "Mon"}}},
		}, wantField: "data.routes[0].origin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.req)

			var validationErr *domainerrors.ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, tt.wantField, validationErr.Field())
		})
	}

	err := v.Validate(&handler.RouteRequest{
		Origin:      "A",
		Destination: "B",
		Stops:       []handler.StopRequest{{PassengerRef: strPtr("0190b2a4-7c1e-7d3a-9f00-1a2b3c4d5e6f"), Address: "x"}},
	})
	assert.NoError(t, err)
}
