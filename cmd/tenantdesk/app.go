package main

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/northfieldlabs/tenantdesk/internal/billing"
	billingdomain "github.com/northfieldlabs/tenantdesk/internal/billing/domain"
	"github.com/northfieldlabs/tenantdesk/internal/clock"
	"github.com/northfieldlabs/tenantdesk/internal/config"
	"github.com/northfieldlabs/tenantdesk/internal/device"
	devicedomain "github.com/northfieldlabs/tenantdesk/internal/device/domain"
	"github.com/northfieldlabs/tenantdesk/internal/fixtures"
	"github.com/northfieldlabs/tenantdesk/internal/observability"
	"github.com/northfieldlabs/tenantdesk/internal/overview"
	overviewdomain "github.com/northfieldlabs/tenantdesk/internal/overview/domain"
	"github.com/northfieldlabs/tenantdesk/internal/subscription"
	subscriptiondomain "github.com/northfieldlabs/tenantdesk/internal/subscription/domain"
	"github.com/northfieldlabs/tenantdesk/internal/tenant"
	tenantdomain "github.com/northfieldlabs/tenantdesk/internal/tenant/domain"
	"github.com/northfieldlabs/tenantdesk/internal/user"
	userdomain "github.com/northfieldlabs/tenantdesk/internal/user/domain"
	"github.com/northfieldlabs/tenantdesk/pkg/simulate"
	"go.uber.org/fx"
)

// services bundles everything a CLI command may need once the graph is up.
type services struct {
	fx.In

	Seeder        *fixtures.Seeder
	Tenants       tenantdomain.Service
	Devices       devicedomain.Service
	Subscriptions subscriptiondomain.Service
	Users         userdomain.Service
	Billing       billingdomain.Service
	Overview      overviewdomain.Service
}

// run builds the application graph, seeds the in-memory dataset, and hands
// control to fn. The dataset lives only for the duration of the process.
func run(fn func(ctx context.Context, s services) error) error {
	var runErr error

	app := fx.New(
		fx.NopLogger,

		config.Module,
		observability.Module,
		clock.Module,
		fx.Provide(RegisterSnowflake),
		fx.Provide(newLatency),

		tenant.Module,
		device.Module,
		subscription.Module,
		user.Module,
		billing.Module,
		overview.Module,
		fixtures.Module,

		fx.Invoke(func(s services) {
			ctx := context.Background()
			if err := s.Seeder.Seed(ctx); err != nil {
				runErr = err
				return
			}
			runErr = fn(ctx, s)
		}),
	)
	if err := app.Err(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Start(ctx); err != nil {
		return err
	}
	if err := app.Stop(ctx); err != nil {
		return err
	}
	return runErr
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}

func newLatency(profile config.SeedProfile) *simulate.Latency {
	min, max := profile.LatencyWindow()
	return simulate.NewLatency(min, max)
}
