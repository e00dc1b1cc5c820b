package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/northfieldlabs/tenantdesk/internal/clock"
	tenantdomain "github.com/northfieldlabs/tenantdesk/internal/tenant/domain"
	tenantrepo "github.com/northfieldlabs/tenantdesk/internal/tenant/repository"
	"github.com/northfieldlabs/tenantdesk/internal/user/domain"
	"github.com/northfieldlabs/tenantdesk/internal/user/repository"
	"github.com/northfieldlabs/tenantdesk/pkg/query"
	"github.com/northfieldlabs/tenantdesk/pkg/simulate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testEnv struct {
	svc  domain.Service
	p    Params
	node *snowflake.Node
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	p := Params{
		Log:        zap.NewNop(),
		Clock:      clock.NewFakeClock(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)),
		GenID:      node,
		Latency:    simulate.None(),
		Repo:       repository.Provide(),
		TenantRepo: tenantrepo.Provide(),
	}
	return &testEnv{svc: New(p), p: p, node: node}
}

func (e *testEnv) addTenant(t *testing.T, name string) tenantdomain.Tenant {
	t.Helper()
	tenant := tenantdomain.Tenant{ID: e.node.Generate(), Name: name, Status: tenantdomain.StatusActive}
	require.NoError(t, e.p.TenantRepo.Insert(context.Background(), &tenant))
	return tenant
}

func TestCreateUserDefaults(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	tenant := env.addTenant(t, "Acme Robotics")

	user, err := env.svc.Create(ctx, domain.CreateUserRequest{
		TenantID: tenant.ID,
		Name:     "Dana Flores",
		Email:    "dana@acme.example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleViewer, user.Role)
	assert.Equal(t, domain.StatusInvited, user.Status)

	_, err = env.svc.Create(ctx, domain.CreateUserRequest{
		TenantID: env.node.Generate(),
		Name:     "Nobody",
		Email:    "nobody@nowhere.example.com",
	})
	assert.ErrorIs(t, err, domain.ErrUnknownTenant)

	_, err = env.svc.Create(ctx, domain.CreateUserRequest{
		TenantID: tenant.ID,
		Name:     "Bad Email",
		Email:    "bad-email",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidEmail)
}

func TestListUsersByRole(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	tenant := env.addTenant(t, "Acme Robotics")

	for _, tc := range []struct {
		name string
		role domain.Role
	}{
		{"Ava Admin", domain.RoleAdmin},
		{"Mia Manager", domain.RoleManager},
		{"Vic Viewer", domain.RoleViewer},
	} {
		_, err := env.svc.Create(ctx, domain.CreateUserRequest{
			TenantID: tenant.ID,
			Name:     tc.name,
			Email:    tc.name[:3] + "@acme.example.com",
			Role:     tc.role,
		})
		require.NoError(t, err)
	}

	resp, err := env.svc.List(ctx, domain.ListUserRequest{
		Request: query.Request{
			Filters: map[string]string{"role": "Admin"},
		},
	})
	require.NoError(t, err)
	require.Len(t, resp.Users, 1)
	assert.Equal(t, "Ava Admin", resp.Users[0].Name)
	assert.Equal(t, "Acme Robotics", resp.Users[0].TenantName)
}

func TestUpdateUser(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	tenant := env.addTenant(t, "Acme Robotics")

	user, err := env.svc.Create(ctx, domain.CreateUserRequest{
		TenantID: tenant.ID,
		Name:     "Dana Flores",
		Email:    "dana@acme.example.com",
	})
	require.NoError(t, err)

	updated, err := env.svc.Update(ctx, domain.UpdateUserRequest{
		ID:     user.ID,
		Role:   domain.RoleAdmin,
		Status: domain.StatusActive,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, updated.Role)
	assert.Equal(t, domain.StatusActive, updated.Status)
	assert.Equal(t, "Dana Flores", updated.Name)

	require.NoError(t, env.svc.Delete(ctx, user.ID))
	_, err = env.svc.Update(ctx, domain.UpdateUserRequest{ID: user.ID})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
