package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/gosimple/slug"
	billingdomain "github.com/northfieldlabs/tenantdesk/internal/billing/domain"
	"github.com/northfieldlabs/tenantdesk/internal/clock"
	devicedomain "github.com/northfieldlabs/tenantdesk/internal/device/domain"
	subscriptiondomain "github.com/northfieldlabs/tenantdesk/internal/subscription/domain"
	"github.com/northfieldlabs/tenantdesk/internal/tenant/domain"
	userdomain "github.com/northfieldlabs/tenantdesk/internal/user/domain"
	"github.com/northfieldlabs/tenantdesk/pkg/query"
	"github.com/northfieldlabs/tenantdesk/pkg/simulate"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log     *zap.Logger
	Clock   clock.Clock
	GenID   *snowflake.Node
	Latency *simulate.Latency
	Repo    domain.Repository

	DeviceRepo       devicedomain.Repository
	UserRepo         userdomain.Repository
	SubscriptionRepo subscriptiondomain.Repository
	BillingRepo      billingdomain.Repository
}

type Service struct {
	log     *zap.Logger
	clock   clock.Clock
	genID   *snowflake.Node
	latency *simulate.Latency
	repo    domain.Repository

	deviceRepo       devicedomain.Repository
	userRepo         userdomain.Repository
	subscriptionRepo subscriptiondomain.Repository
	billingRepo      billingdomain.Repository

	definition query.Definition[domain.Tenant]
}

func New(p Params) domain.Service {
	return &Service{
		log:              p.Log.Named("tenant.service"),
		clock:            p.Clock,
		genID:            p.GenID,
		latency:          p.Latency,
		repo:             p.Repo,
		deviceRepo:       p.DeviceRepo,
		userRepo:         p.UserRepo,
		subscriptionRepo: p.SubscriptionRepo,
		billingRepo:      p.BillingRepo,
		definition:       definition(),
	}
}

// definition is the tenant strategy table for the query engine.
func definition() query.Definition[domain.Tenant] {
	return query.Definition[domain.Tenant]{
		Filters: map[string]query.FilterFunc[domain.Tenant]{
			"unifiedSearch": query.ContainsAny(
				func(t domain.Tenant) string { return t.Name },
				func(t domain.Tenant) string { return t.Slug },
				func(t domain.Tenant) string { return t.Email },
				func(t domain.Tenant) string { return t.Phone },
				func(t domain.Tenant) string { return t.ID.String() },
			),
			"name":     query.Contains(func(t domain.Tenant) string { return t.Name }),
			"status":   query.Equals(func(t domain.Tenant) string { return string(t.Status) }),
			"language": query.Equals(func(t domain.Tenant) string { return t.Language }),
		},
		Sorters: map[string]query.CompareFunc[domain.Tenant]{
			"name":   query.ByString(func(t domain.Tenant) string { return t.Name }),
			"email":  query.ByString(func(t domain.Tenant) string { return t.Email }),
			"status": query.ByString(func(t domain.Tenant) string { return string(t.Status) }),
			"createdAt": func(a, b domain.Tenant) int {
				switch {
				case a.CreatedAt.Before(b.CreatedAt):
					return -1
				case a.CreatedAt.After(b.CreatedAt):
					return 1
				default:
					return 0
				}
			},
		},
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateTenantRequest) (domain.Tenant, error) {
	s.latency.Sleep(ctx)

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Tenant{}, domain.ErrInvalidName
	}
	email := strings.TrimSpace(req.Email)
	if email == "" || !strings.Contains(email, "@") {
		return domain.Tenant{}, domain.ErrInvalidEmail
	}

	tenant := domain.Tenant{
		ID:        s.genID.Generate(),
		Name:      name,
		Slug:      slug.Make(name),
		Email:     email,
		Phone:     strings.TrimSpace(req.Phone),
		Status:    domain.StatusActive,
		Language:  req.Language,
		CreatedAt: s.clock.Now(),
	}
	if err := s.repo.Insert(ctx, &tenant); err != nil {
		return domain.Tenant{}, err
	}
	s.log.Info("tenant created", zap.String("tenant_id", tenant.ID.String()))
	return tenant, nil
}

func (s *Service) GetByID(ctx context.Context, id snowflake.ID) (domain.Tenant, error) {
	s.latency.Sleep(ctx)

	tenant, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Tenant{}, err
	}
	return *tenant, nil
}

func (s *Service) List(ctx context.Context, req domain.ListTenantRequest) (domain.ListTenantResponse, error) {
	s.latency.Sleep(ctx)

	tenants, err := s.repo.List(ctx)
	if err != nil {
		return domain.ListTenantResponse{}, err
	}
	result := query.Run(tenants, req.Request, s.definition)
	return domain.ListTenantResponse{Tenants: result.Data, Meta: result.Meta}, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateTenantRequest) (domain.Tenant, error) {
	s.latency.Sleep(ctx)

	existing, err := s.repo.FindByID(ctx, req.ID)
	if err != nil {
		return domain.Tenant{}, err
	}

	tenant := *existing
	if name := strings.TrimSpace(req.Name); name != "" {
		tenant.Name = name
		tenant.Slug = slug.Make(name)
	}
	if email := strings.TrimSpace(req.Email); email != "" {
		if !strings.Contains(email, "@") {
			return domain.Tenant{}, domain.ErrInvalidEmail
		}
		tenant.Email = email
	}
	if phone := strings.TrimSpace(req.Phone); phone != "" {
		tenant.Phone = phone
	}
	if req.Status != "" {
		tenant.Status = req.Status
	}

	if err := s.repo.Update(ctx, tenant); err != nil {
		return domain.Tenant{}, err
	}
	return tenant, nil
}

// Delete removes a tenant and cascades to every record referencing it, so
// readers never observe orphaned devices, users, subscriptions, or billing.
func (s *Service) Delete(ctx context.Context, id snowflake.ID) (domain.DeleteTenantResponse, error) {
	s.latency.Sleep(ctx)

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return domain.DeleteTenantResponse{}, err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return domain.DeleteTenantResponse{}, err
	}

	resp := domain.DeleteTenantResponse{}
	resp.DevicesRemoved, _ = s.deviceRepo.DeleteByTenant(ctx, id)
	resp.UsersRemoved, _ = s.userRepo.DeleteByTenant(ctx, id)
	resp.SubscriptionsRemoved, _ = s.subscriptionRepo.DeleteByTenant(ctx, id)
	resp.BillingRemoved, _ = s.billingRepo.DeleteByTenant(ctx, id)

	s.log.Info("tenant deleted",
		zap.String("tenant_id", id.String()),
		zap.Int("devices_removed", resp.DevicesRemoved),
		zap.Int("users_removed", resp.UsersRemoved),
		zap.Int("subscriptions_removed", resp.SubscriptionsRemoved),
		zap.Int("billing_removed", resp.BillingRemoved),
	)
	return resp, nil
}
