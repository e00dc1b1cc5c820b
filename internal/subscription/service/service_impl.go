package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/northfieldlabs/tenantdesk/internal/clock"
	"github.com/northfieldlabs/tenantdesk/internal/subscription/domain"
	tenantdomain "github.com/northfieldlabs/tenantdesk/internal/tenant/domain"
	"github.com/northfieldlabs/tenantdesk/pkg/query"
	"github.com/northfieldlabs/tenantdesk/pkg/simulate"
	"github.com/samber/lo"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Plans supported by the mock catalog.
var Plans = []string{"Basic", "Standard", "Premium"}

type Params struct {
	fx.In

	Log        *zap.Logger
	Clock      clock.Clock
	GenID      *snowflake.Node
	Latency    *simulate.Latency
	Repo       domain.Repository
	TenantRepo tenantdomain.Repository
}

type Service struct {
	log        *zap.Logger
	clock      clock.Clock
	genID      *snowflake.Node
	latency    *simulate.Latency
	repo       domain.Repository
	tenantRepo tenantdomain.Repository

	definition query.Definition[domain.Row]
}

func New(p Params) domain.Service {
	return &Service{
		log:        p.Log.Named("subscription.service"),
		clock:      p.Clock,
		genID:      p.GenID,
		latency:    p.Latency,
		repo:       p.Repo,
		tenantRepo: p.TenantRepo,
		definition: definition(),
	}
}

func definition() query.Definition[domain.Row] {
	return query.Definition[domain.Row]{
		Filters: map[string]query.FilterFunc[domain.Row]{
			"textSearch": query.ContainsAny(
				func(r domain.Row) string { return r.TenantName },
				func(r domain.Row) string { return r.Plan },
				func(r domain.Row) string { return r.ID.String() },
			),
			"plan":   query.Equals(func(r domain.Row) string { return r.Plan }),
			"status": query.Equals(func(r domain.Row) string { return string(r.Status) }),
		},
		Sorters: map[string]query.CompareFunc[domain.Row]{
			"tenantName": query.ByString(func(r domain.Row) string { return r.TenantName }),
			"plan":       query.ByString(func(r domain.Row) string { return r.Plan }),
			"status":     query.ByString(func(r domain.Row) string { return string(r.Status) }),
			"seats":      query.ByInt(func(r domain.Row) int { return r.Seats }),
			"startDate":  query.ByDate(func(r domain.Row) string { return r.StartDate }),
			"endDate":    query.ByDate(func(r domain.Row) string { return r.EndDate }),
		},
		Aliases: map[string]string{
			"contractStart": "startDate",
			"contractEnd":   "endDate",
		},
	}
}

func (s *Service) List(ctx context.Context, req domain.ListSubscriptionRequest) (domain.ListSubscriptionResponse, error) {
	s.latency.Sleep(ctx)

	subscriptions, err := s.repo.List(ctx)
	if err != nil {
		return domain.ListSubscriptionResponse{}, err
	}
	tenants, err := s.tenantRepo.List(ctx)
	if err != nil {
		return domain.ListSubscriptionResponse{}, err
	}
	names := lo.SliceToMap(tenants, func(t tenantdomain.Tenant) (snowflake.ID, string) {
		return t.ID, t.Name
	})

	rows := make([]domain.Row, 0, len(subscriptions))
	for _, subscription := range subscriptions {
		name, ok := names[subscription.TenantID]
		if !ok {
			continue
		}
		rows = append(rows, domain.Row{Subscription: subscription, TenantName: name})
	}

	result := query.Run(rows, req.Request, s.definition)
	return domain.ListSubscriptionResponse{Subscriptions: result.Data, Meta: result.Meta}, nil
}

func (s *Service) Create(ctx context.Context, req domain.CreateSubscriptionRequest) (domain.Subscription, error) {
	s.latency.Sleep(ctx)

	if _, err := s.tenantRepo.FindByID(ctx, req.TenantID); err != nil {
		return domain.Subscription{}, domain.ErrUnknownTenant
	}
	plan := strings.TrimSpace(req.Plan)
	if !lo.Contains(Plans, plan) {
		return domain.Subscription{}, domain.ErrInvalidPlan
	}
	if req.Seats <= 0 {
		return domain.Subscription{}, domain.ErrInvalidSeats
	}

	subscription := domain.Subscription{
		ID:        s.genID.Generate(),
		TenantID:  req.TenantID,
		Plan:      plan,
		Status:    domain.StatusActive,
		Seats:     req.Seats,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		CreatedAt: s.clock.Now(),
	}
	if err := s.repo.Insert(ctx, &subscription); err != nil {
		return domain.Subscription{}, err
	}
	s.log.Info("subscription created",
		zap.String("subscription_id", subscription.ID.String()),
		zap.String("plan", plan),
	)
	return subscription, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateSubscriptionRequest) (domain.Subscription, error) {
	s.latency.Sleep(ctx)

	existing, err := s.repo.FindByID(ctx, req.ID)
	if err != nil {
		return domain.Subscription{}, err
	}
	subscription := *existing
	if plan := strings.TrimSpace(req.Plan); plan != "" {
		if !lo.Contains(Plans, plan) {
			return domain.Subscription{}, domain.ErrInvalidPlan
		}
		subscription.Plan = plan
	}
	if req.Status != "" {
		subscription.Status = req.Status
	}
	if req.Seats > 0 {
		subscription.Seats = req.Seats
	}
	if req.EndDate != "" {
		subscription.EndDate = req.EndDate
	}
	if err := s.repo.Update(ctx, subscription); err != nil {
		return domain.Subscription{}, err
	}
	return subscription, nil
}

func (s *Service) Delete(ctx context.Context, id snowflake.ID) error {
	s.latency.Sleep(ctx)
	return s.repo.Delete(ctx, id)
}
