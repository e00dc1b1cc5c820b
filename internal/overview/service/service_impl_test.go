package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	billingdomain "github.com/northfieldlabs/tenantdesk/internal/billing/domain"
	billingrepo "github.com/northfieldlabs/tenantdesk/internal/billing/repository"
	"github.com/northfieldlabs/tenantdesk/internal/billing/schedule"
	"github.com/northfieldlabs/tenantdesk/internal/clock"
	devicedomain "github.com/northfieldlabs/tenantdesk/internal/device/domain"
	devicerepo "github.com/northfieldlabs/tenantdesk/internal/device/repository"
	subscriptionrepo "github.com/northfieldlabs/tenantdesk/internal/subscription/repository"
	tenantdomain "github.com/northfieldlabs/tenantdesk/internal/tenant/domain"
	tenantrepo "github.com/northfieldlabs/tenantdesk/internal/tenant/repository"
	userrepo "github.com/northfieldlabs/tenantdesk/internal/user/repository"
	"github.com/northfieldlabs/tenantdesk/pkg/simulate"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestOverview(t *testing.T) {
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	p := Params{
		Log:     zap.NewNop(),
		Clock:   clock.NewFakeClock(now),
		Latency: simulate.None(),

		TenantRepo:       tenantrepo.Provide(),
		DeviceRepo:       devicerepo.Provide(),
		UnregisteredRepo: devicerepo.ProvideUnregistered(),
		SubscriptionRepo: subscriptionrepo.Provide(),
		UserRepo:         userrepo.Provide(),
		BillingRepo:      billingrepo.Provide(),
	}
	svc := New(p)
	ctx := context.Background()

	active := tenantdomain.Tenant{ID: node.Generate(), Name: "Acme", Status: tenantdomain.StatusActive}
	suspended := tenantdomain.Tenant{ID: node.Generate(), Name: "Beta", Status: tenantdomain.StatusSuspended}
	require.NoError(t, p.TenantRepo.Insert(ctx, &active))
	require.NoError(t, p.TenantRepo.Insert(ctx, &suspended))

	online := devicedomain.Device{ID: node.Generate(), TenantID: active.ID, Status: devicedomain.StatusOnline}
	offline := devicedomain.Device{ID: node.Generate(), TenantID: active.ID, Status: devicedomain.StatusOffline}
	require.NoError(t, p.DeviceRepo.Insert(ctx, &online))
	require.NoError(t, p.DeviceRepo.Insert(ctx, &offline))

	pending := devicedomain.UnregisteredDevice{ID: node.Generate(), SerialNumber: "SN-1"}
	require.NoError(t, p.UnregisteredRepo.Insert(ctx, &pending))

	// 100/month recurring.
	monthly := billingdomain.Record{
		ID: node.Generate(), TenantID: active.ID,
		PaymentType: schedule.PaymentMonthly,
		DeviceContract: []billingdomain.ContractLine{
			{DeviceType: "gateway", Quantity: 10, UnitPrice: decimal.NewFromInt(10)},
		},
	}
	// 1200/year contributes 100/month.
	annual := billingdomain.Record{
		ID: node.Generate(), TenantID: active.ID,
		PaymentType: schedule.PaymentAnnually,
		EndDate:     "2026-01-01",
		DeviceContract: []billingdomain.ContractLine{
			{DeviceType: "sensor", Quantity: 1, UnitPrice: decimal.NewFromInt(1200)},
		},
	}
	// Ended contracts never count toward revenue.
	ended := billingdomain.Record{
		ID: node.Generate(), TenantID: suspended.ID,
		PaymentType: schedule.PaymentMonthly,
		EndDate:     "2024-01-01",
		DeviceContract: []billingdomain.ContractLine{
			{DeviceType: "gateway", Quantity: 100, UnitPrice: decimal.NewFromInt(10)},
		},
	}
	// One-time payments are not recurring.
	oneTime := billingdomain.Record{
		ID: node.Generate(), TenantID: suspended.ID,
		PaymentType: schedule.PaymentOneTime,
		DeviceContract: []billingdomain.ContractLine{
			{DeviceType: "camera", Quantity: 1, UnitPrice: decimal.NewFromInt(9999)},
		},
	}
	for _, record := range []*billingdomain.Record{&monthly, &annual, &ended, &oneTime} {
		require.NoError(t, p.BillingRepo.Insert(ctx, record))
	}

	out, err := svc.Overview(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, out.Tenants)
	assert.Equal(t, map[string]int{"Active": 1, "Suspended": 1}, out.TenantsByStatus)
	assert.Equal(t, 2, out.Devices)
	assert.Equal(t, map[string]int{"Online": 1, "Offline": 1}, out.DevicesByStatus)
	assert.Equal(t, 1, out.UnregisteredDevices)
	assert.Equal(t, 4, out.BillingRecords)
	assert.Equal(t, 1, out.EndedContracts)
	assert.Equal(t, map[string]int{"Monthly": 2, "Annually": 1, "OneTime": 1}, out.BillingByPaymentType)
	assert.True(t, out.MonthlyRecurringRevenue.Equal(decimal.NewFromInt(200)),
		"got %s", out.MonthlyRecurringRevenue)
}
