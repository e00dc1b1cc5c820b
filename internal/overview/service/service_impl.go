package service

import (
	"context"

	billingdomain "github.com/northfieldlabs/tenantdesk/internal/billing/domain"
	"github.com/northfieldlabs/tenantdesk/internal/billing/schedule"
	"github.com/northfieldlabs/tenantdesk/internal/clock"
	devicedomain "github.com/northfieldlabs/tenantdesk/internal/device/domain"
	"github.com/northfieldlabs/tenantdesk/internal/overview/domain"
	subscriptiondomain "github.com/northfieldlabs/tenantdesk/internal/subscription/domain"
	tenantdomain "github.com/northfieldlabs/tenantdesk/internal/tenant/domain"
	userdomain "github.com/northfieldlabs/tenantdesk/internal/user/domain"
	"github.com/northfieldlabs/tenantdesk/pkg/simulate"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var twelve = decimal.NewFromInt(12)

type Params struct {
	fx.In

	Log     *zap.Logger
	Clock   clock.Clock
	Latency *simulate.Latency

	TenantRepo       tenantdomain.Repository
	DeviceRepo       devicedomain.Repository
	UnregisteredRepo devicedomain.UnregisteredRepository
	SubscriptionRepo subscriptiondomain.Repository
	UserRepo         userdomain.Repository
	BillingRepo      billingdomain.Repository
}

type Service struct {
	log     *zap.Logger
	clock   clock.Clock
	latency *simulate.Latency

	tenantRepo       tenantdomain.Repository
	deviceRepo       devicedomain.Repository
	unregisteredRepo devicedomain.UnregisteredRepository
	subscriptionRepo subscriptiondomain.Repository
	userRepo         userdomain.Repository
	billingRepo      billingdomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		log:              p.Log.Named("overview.service"),
		clock:            p.Clock,
		latency:          p.Latency,
		tenantRepo:       p.TenantRepo,
		deviceRepo:       p.DeviceRepo,
		unregisteredRepo: p.UnregisteredRepo,
		subscriptionRepo: p.SubscriptionRepo,
		userRepo:         p.UserRepo,
		billingRepo:      p.BillingRepo,
	}
}

func (s *Service) Overview(ctx context.Context) (domain.Overview, error) {
	s.latency.Sleep(ctx)

	tenants, err := s.tenantRepo.List(ctx)
	if err != nil {
		return domain.Overview{}, err
	}
	devices, err := s.deviceRepo.List(ctx)
	if err != nil {
		return domain.Overview{}, err
	}
	unregistered, err := s.unregisteredRepo.List(ctx)
	if err != nil {
		return domain.Overview{}, err
	}
	subscriptions, err := s.subscriptionRepo.List(ctx)
	if err != nil {
		return domain.Overview{}, err
	}
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return domain.Overview{}, err
	}
	records, err := s.billingRepo.List(ctx)
	if err != nil {
		return domain.Overview{}, err
	}

	out := domain.Overview{
		Tenants: len(tenants),
		TenantsByStatus: lo.CountValuesBy(tenants, func(t tenantdomain.Tenant) string {
			return string(t.Status)
		}),
		Devices: len(devices),
		DevicesByStatus: lo.CountValuesBy(devices, func(d devicedomain.Device) string {
			return string(d.Status)
		}),
		UnregisteredDevices: len(unregistered),
		Subscriptions:       len(subscriptions),
		Users:               len(users),
		BillingRecords:      len(records),
		BillingByPaymentType: lo.CountValuesBy(records, func(r billingdomain.Record) string {
			return string(r.PaymentType)
		}),
	}

	now := s.clock.Now()
	mrr := decimal.Zero
	for _, record := range records {
		if schedule.IsEnded(record.Terms(), now) {
			out.EndedContracts++
			continue
		}
		total := decimal.Zero
		for _, line := range record.DeviceContract {
			total = total.Add(line.Total())
		}
		switch record.PaymentType {
		case schedule.PaymentMonthly:
			mrr = mrr.Add(total)
		case schedule.PaymentAnnually:
			mrr = mrr.Add(total.Div(twelve))
		}
	}
	out.MonthlyRecurringRevenue = mrr.Round(2)

	return out, nil
}
