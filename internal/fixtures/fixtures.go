// Package fixtures populates the in-memory repositories with randomly
// generated, referentially consistent mock data. The same profile seed
// reproduces the same dataset.
package fixtures

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	billingdomain "github.com/northfieldlabs/tenantdesk/internal/billing/domain"
	"github.com/northfieldlabs/tenantdesk/internal/billing/schedule"
	"github.com/northfieldlabs/tenantdesk/internal/clock"
	"github.com/northfieldlabs/tenantdesk/internal/config"
	devicedomain "github.com/northfieldlabs/tenantdesk/internal/device/domain"
	subscriptiondomain "github.com/northfieldlabs/tenantdesk/internal/subscription/domain"
	tenantdomain "github.com/northfieldlabs/tenantdesk/internal/tenant/domain"
	userdomain "github.com/northfieldlabs/tenantdesk/internal/user/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const isoDate = "2006-01-02"

type Params struct {
	fx.In

	Log     *zap.Logger
	Clock   clock.Clock
	GenID   *snowflake.Node
	Config  config.Config
	Profile config.SeedProfile

	TenantRepo       tenantdomain.Repository
	DeviceRepo       devicedomain.Repository
	UnregisteredRepo devicedomain.UnregisteredRepository
	SubscriptionRepo subscriptiondomain.Repository
	UserRepo         userdomain.Repository
	BillingRepo      billingdomain.Repository
}

// Seeder generates and installs the mock dataset.
type Seeder struct {
	log     *zap.Logger
	clock   clock.Clock
	genID   *snowflake.Node
	cfg     config.Config
	profile config.SeedProfile

	tenantRepo       tenantdomain.Repository
	deviceRepo       devicedomain.Repository
	unregisteredRepo devicedomain.UnregisteredRepository
	subscriptionRepo subscriptiondomain.Repository
	userRepo         userdomain.Repository
	billingRepo      billingdomain.Repository
}

func New(p Params) *Seeder {
	return &Seeder{
		log:              p.Log.Named("fixtures"),
		clock:            p.Clock,
		genID:            p.GenID,
		cfg:              p.Config,
		profile:          p.Profile,
		tenantRepo:       p.TenantRepo,
		deviceRepo:       p.DeviceRepo,
		unregisteredRepo: p.UnregisteredRepo,
		subscriptionRepo: p.SubscriptionRepo,
		userRepo:         p.UserRepo,
		billingRepo:      p.BillingRepo,
	}
}

// Seed generates every collection and replaces the repositories'
// contents. Counts come from the seed profile.
func (s *Seeder) Seed(ctx context.Context) error {
	rng := rand.New(rand.NewSource(s.profile.Seed))
	now := s.clock.Now()

	companies := pool(companyPools, s.cfg.Language)
	people := pool(personPools, s.cfg.Language)

	tenants := make([]tenantdomain.Tenant, 0, s.profile.Tenants)
	for i := 0; i < s.profile.Tenants; i++ {
		name := companies[i%len(companies)]
		if i >= len(companies) {
			name = fmt.Sprintf("%s %d", name, i/len(companies)+1)
		}
		status := tenantdomain.StatusActive
		if rng.Intn(10) == 0 {
			status = tenantdomain.StatusSuspended
		}
		tenants = append(tenants, tenantdomain.Tenant{
			ID:        s.genID.Generate(),
			Name:      name,
			Slug:      slug.Make(name),
			Email:     fmt.Sprintf("contact@%s.example.com", slug.Make(name)),
			Phone:     fmt.Sprintf("+1-555-%04d", rng.Intn(10000)),
			Status:    status,
			Language:  s.cfg.Language,
			CreatedAt: now.AddDate(0, 0, -rng.Intn(720)),
		})
	}

	devices := make([]devicedomain.Device, 0, len(tenants)*s.profile.DevicesPerTenant)
	users := make([]userdomain.User, 0, len(tenants)*s.profile.UsersPerTenant)
	subscriptions := make([]subscriptiondomain.Subscription, 0, len(tenants))
	records := make([]billingdomain.Record, 0, len(tenants)*s.profile.BillingPerTenant)

	statuses := []devicedomain.Status{
		devicedomain.StatusOnline, devicedomain.StatusOnline,
		devicedomain.StatusOffline, devicedomain.StatusMaintenance,
	}
	roles := []userdomain.Role{userdomain.RoleAdmin, userdomain.RoleManager, userdomain.RoleViewer}
	plans := []string{"Basic", "Standard", "Premium"}

	for _, tenant := range tenants {
		for i := 0; i < s.profile.DevicesPerTenant; i++ {
			devices = append(devices, devicedomain.Device{
				ID:           s.genID.Generate(),
				TenantID:     tenant.ID,
				SerialNumber: serial(rng),
				Type:         deviceTypes[rng.Intn(len(deviceTypes))],
				Firmware:     firmwareVersions[rng.Intn(len(firmwareVersions))],
				Status:       statuses[rng.Intn(len(statuses))],
				RegisteredAt: now.AddDate(0, 0, -rng.Intn(360)),
			})
		}

		for i := 0; i < s.profile.UsersPerTenant; i++ {
			name := people[rng.Intn(len(people))]
			status := userdomain.StatusActive
			if rng.Intn(5) == 0 {
				status = userdomain.StatusInvited
			}
			users = append(users, userdomain.User{
				ID:        s.genID.Generate(),
				TenantID:  tenant.ID,
				Name:      name,
				Email:     fmt.Sprintf("%s@%s.example.com", slug.Make(name), tenant.Slug),
				Role:      roles[rng.Intn(len(roles))],
				Status:    status,
				CreatedAt: now.AddDate(0, 0, -rng.Intn(360)),
			})
		}

		start := now.AddDate(0, -rng.Intn(18)-1, 0)
		subscription := subscriptiondomain.Subscription{
			ID:        s.genID.Generate(),
			TenantID:  tenant.ID,
			Plan:      plans[rng.Intn(len(plans))],
			Status:    subscriptiondomain.StatusActive,
			Seats:     rng.Intn(20) + 1,
			StartDate: start.Format(isoDate),
			CreatedAt: start,
		}
		switch rng.Intn(6) {
		case 0:
			subscription.Status = subscriptiondomain.StatusTrialing
		case 1:
			subscription.Status = subscriptiondomain.StatusCanceled
			subscription.EndDate = start.AddDate(1, 0, 0).Format(isoDate)
		}
		subscriptions = append(subscriptions, subscription)

		for i := 0; i < s.profile.BillingPerTenant; i++ {
			records = append(records, s.billingRecord(rng, now, tenant.ID))
		}
	}

	unregistered := make([]devicedomain.UnregisteredDevice, 0, s.profile.UnregisteredDevices)
	for i := 0; i < s.profile.UnregisteredDevices; i++ {
		unregistered = append(unregistered, devicedomain.UnregisteredDevice{
			ID:           s.genID.Generate(),
			SerialNumber: serial(rng),
			Type:         deviceTypes[rng.Intn(len(deviceTypes))],
			SeenAt:       now.AddDate(0, 0, -rng.Intn(30)),
		})
	}

	if err := s.tenantRepo.Replace(ctx, tenants); err != nil {
		return err
	}
	if err := s.deviceRepo.Replace(ctx, devices); err != nil {
		return err
	}
	if err := s.unregisteredRepo.Replace(ctx, unregistered); err != nil {
		return err
	}
	if err := s.subscriptionRepo.Replace(ctx, subscriptions); err != nil {
		return err
	}
	if err := s.userRepo.Replace(ctx, users); err != nil {
		return err
	}
	if err := s.billingRepo.Replace(ctx, records); err != nil {
		return err
	}

	s.log.Info("fixtures seeded",
		zap.Int64("seed", s.profile.Seed),
		zap.Int("tenants", len(tenants)),
		zap.Int("devices", len(devices)),
		zap.Int("unregistered_devices", len(unregistered)),
		zap.Int("subscriptions", len(subscriptions)),
		zap.Int("users", len(users)),
		zap.Int("billing_records", len(records)),
	)
	return nil
}

// billingRecord covers every calculator branch across the dataset:
// ended contracts, open-ended ones, missing start dates, end-of-month
// due days, and all three payment types.
func (s *Seeder) billingRecord(rng *rand.Rand, now time.Time, tenantID snowflake.ID) billingdomain.Record {
	paymentTypes := []schedule.PaymentType{
		schedule.PaymentMonthly, schedule.PaymentMonthly,
		schedule.PaymentAnnually, schedule.PaymentOneTime,
	}

	record := billingdomain.Record{
		ID:          s.genID.Generate(),
		TenantID:    tenantID,
		PaymentType: paymentTypes[rng.Intn(len(paymentTypes))],
		CreatedAt:   now,
	}

	start := now.AddDate(0, -rng.Intn(30)-1, 0)
	record.StartDate = start.Format(isoDate)
	if rng.Intn(10) == 0 {
		// a few contracts never recorded a start date
		record.StartDate = ""
	}

	switch rng.Intn(5) {
	case 0:
		// already expired
		record.EndDate = now.AddDate(0, 0, -rng.Intn(180)-1).Format(isoDate)
	case 1, 2:
		record.EndDate = start.AddDate(rng.Intn(3)+1, 0, 0).Format(isoDate)
	default:
		// evergreen
	}

	if record.PaymentType != schedule.PaymentOneTime {
		if rng.Intn(4) == 0 {
			record.DueDay = billingdomain.DueDayEndOfMonth
		} else {
			record.DueDay = strconv.Itoa(rng.Intn(28) + 1)
		}
	}
	if record.PaymentType == schedule.PaymentAnnually {
		record.DueMonth = rng.Intn(12) + 1
	}

	lines := rng.Intn(3) + 1
	record.DeviceContract = make([]billingdomain.ContractLine, 0, lines)
	for i := 0; i < lines; i++ {
		record.DeviceContract = append(record.DeviceContract, billingdomain.ContractLine{
			DeviceType: deviceTypes[rng.Intn(len(deviceTypes))],
			Quantity:   rng.Intn(10) + 1,
			UnitPrice:  decimal.NewFromInt(int64(rng.Intn(80)+5)).Add(decimal.NewFromFloat(0.99)),
		})
	}

	if rng.Intn(3) == 0 {
		record.Description = "Device fleet contract"
	}
	return record
}

func serial(rng *rand.Rand) string {
	id := uuid.Must(uuid.NewRandomFromReader(rng))
	return "SN-" + strings.ToUpper(strings.SplitN(id.String(), "-", 2)[0])
}

// Module provides the seeder to the fx graph.
var Module = fx.Module("fixtures",
	fx.Provide(New),
)
