package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/northfieldlabs/tenantdesk/internal/clock"
	"github.com/northfieldlabs/tenantdesk/internal/subscription/domain"
	"github.com/northfieldlabs/tenantdesk/internal/subscription/repository"
	tenantdomain "github.com/northfieldlabs/tenantdesk/internal/tenant/domain"
	tenantrepo "github.com/northfieldlabs/tenantdesk/internal/tenant/repository"
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

func TestCreateSubscription(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	tenant := env.addTenant(t, "Acme Robotics")

	subscription, err := env.svc.Create(ctx, domain.CreateSubscriptionRequest{
		TenantID:  tenant.ID,
		Plan:      "Standard",
		Seats:     5,
		StartDate: "2025-01-01",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusActive, subscription.Status)
	assert.Equal(t, "Standard", subscription.Plan)

	_, err = env.svc.Create(ctx, domain.CreateSubscriptionRequest{
		TenantID: env.node.Generate(),
		Plan:     "Standard",
		Seats:    1,
	})
	assert.ErrorIs(t, err, domain.ErrUnknownTenant)

	_, err = env.svc.Create(ctx, domain.CreateSubscriptionRequest{
		TenantID: tenant.ID,
		Plan:     "Platinum",
		Seats:    1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidPlan)

	_, err = env.svc.Create(ctx, domain.CreateSubscriptionRequest{
		TenantID: tenant.ID,
		Plan:     "Basic",
		Seats:    0,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidSeats)
}

func TestListSubscriptionsSortBySeats(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	tenant := env.addTenant(t, "Acme Robotics")

	for _, tc := range []struct {
		plan  string
		seats int
	}{
		{"Premium", 12},
		{"Basic", 2},
		{"Standard", 7},
	} {
		_, err := env.svc.Create(ctx, domain.CreateSubscriptionRequest{
			TenantID: tenant.ID,
			Plan:     tc.plan,
			Seats:    tc.seats,
		})
		require.NoError(t, err)
	}

	resp, err := env.svc.List(ctx, domain.ListSubscriptionRequest{
		Request: query.Request{
			Sort: &query.Sort{Field: "seats", Order: query.OrderDesc},
		},
	})
	require.NoError(t, err)
	require.Len(t, resp.Subscriptions, 3)
	assert.Equal(t, 12, resp.Subscriptions[0].Seats)
	assert.Equal(t, 2, resp.Subscriptions[2].Seats)
	assert.Equal(t, "Acme Robotics", resp.Subscriptions[0].TenantName)
}

func TestUpdateSubscription(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	tenant := env.addTenant(t, "Acme Robotics")

	subscription, err := env.svc.Create(ctx, domain.CreateSubscriptionRequest{
		TenantID: tenant.ID,
		Plan:     "Basic",
		Seats:    3,
	})
	require.NoError(t, err)

	updated, err := env.svc.Update(ctx, domain.UpdateSubscriptionRequest{
		ID:      subscription.ID,
		Status:  domain.StatusCanceled,
		EndDate: "2025-12-31",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCanceled, updated.Status)
	assert.Equal(t, "2025-12-31", updated.EndDate)
	assert.Equal(t, "Basic", updated.Plan)

	_, err = env.svc.Update(ctx, domain.UpdateSubscriptionRequest{
		ID:   subscription.ID,
		Plan: "Platinum",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidPlan)

	require.NoError(t, env.svc.Delete(ctx, subscription.ID))
	_, err = env.svc.Update(ctx, domain.UpdateSubscriptionRequest{ID: subscription.ID})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
