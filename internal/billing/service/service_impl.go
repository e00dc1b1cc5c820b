package service

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/northfieldlabs/tenantdesk/internal/billing/domain"
	"github.com/northfieldlabs/tenantdesk/internal/billing/schedule"
	"github.com/northfieldlabs/tenantdesk/internal/clock"
	tenantdomain "github.com/northfieldlabs/tenantdesk/internal/tenant/domain"
	"github.com/northfieldlabs/tenantdesk/pkg/query"
	"github.com/northfieldlabs/tenantdesk/pkg/simulate"
	"github.com/samber/lo"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

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
		log:        p.Log.Named("billing.service"),
		clock:      p.Clock,
		genID:      p.GenID,
		latency:    p.Latency,
		repo:       p.Repo,
		tenantRepo: p.TenantRepo,
		definition: definition(),
	}
}

// definition is the billing strategy table. Computed billing fields are
// attached to each row before the engine runs, so their filters and
// comparators read precomputed values.
func definition() query.Definition[domain.Row] {
	return query.Definition[domain.Row]{
		Filters: map[string]query.FilterFunc[domain.Row]{
			"textSearch": query.ContainsAny(
				func(r domain.Row) string { return r.TenantName },
				func(r domain.Row) string { return r.Description },
				func(r domain.Row) string { return r.ID.String() },
			),
			"paymentType": query.Equals(func(r domain.Row) string { return string(r.PaymentType) }),
			"tenantName":  query.Contains(func(r domain.Row) string { return r.TenantName }),
			// Computed-bound filters: rows whose computed value is a
			// sentinel never match a bound.
			"nextBillingFrom": func(r domain.Row, value string) bool {
				return isComputedValue(r.NextBillingMonth) && r.NextBillingMonth >= value
			},
			"nextBillingTo": func(r domain.Row, value string) bool {
				return isComputedValue(r.NextBillingMonth) && r.NextBillingMonth <= value
			},
		},
		Sorters: map[string]query.CompareFunc[domain.Row]{
			"tenantName":  query.ByString(func(r domain.Row) string { return r.TenantName }),
			"paymentType": query.ByString(func(r domain.Row) string { return string(r.PaymentType) }),
			"startDate":   query.ByDate(func(r domain.Row) string { return r.StartDate }),
			"endDate":     query.ByDate(func(r domain.Row) string { return r.EndDate }),
			"nextBillingMonth": func(a, b domain.Row) int {
				return schedule.CompareComputed(a.NextBillingMonth, b.NextBillingMonth)
			},
			"nextBillingDate": func(a, b domain.Row) int {
				return schedule.CompareComputed(a.NextBillingDate, b.NextBillingDate)
			},
		},
		Aliases: map[string]string{
			"paymentSettings": "paymentType",
			"contractStart":   "startDate",
			"contractEnd":     "endDate",
		},
	}
}

func isComputedValue(value string) bool {
	return value != schedule.NotApplicable && value != schedule.Ended
}

// buildRow joins a record with its tenant name and evaluates the billing
// calculator once for the row.
func buildRow(record domain.Record, tenantName string, asOf clock.Clock) domain.Row {
	now := asOf.Now()
	terms := record.Terms()
	return domain.Row{
		Record:           record,
		TenantName:       tenantName,
		NextBillingMonth: schedule.NextBillingMonth(terms, now),
		NextBillingDate:  schedule.NextBillingDate(terms, now),
		ContractPeriod:   schedule.ContractPeriod(record.StartDate, record.EndDate),
	}
}

func (s *Service) List(ctx context.Context, req domain.ListBillingRequest) (domain.ListBillingResponse, error) {
	s.latency.Sleep(ctx)

	records, err := s.repo.List(ctx)
	if err != nil {
		return domain.ListBillingResponse{}, err
	}
	tenants, err := s.tenantRepo.List(ctx)
	if err != nil {
		return domain.ListBillingResponse{}, err
	}
	names := lo.SliceToMap(tenants, func(t tenantdomain.Tenant) (snowflake.ID, string) {
		return t.ID, t.Name
	})

	rows := make([]domain.Row, 0, len(records))
	for _, record := range records {
		name, ok := names[record.TenantID]
		if !ok {
			continue
		}
		rows = append(rows, buildRow(record, name, s.clock))
	}

	result := query.Run(rows, req.Request, s.definition)
	return domain.ListBillingResponse{Records: result.Data, Meta: result.Meta}, nil
}

func (s *Service) Detail(ctx context.Context, id snowflake.ID) (domain.Detail, error) {
	s.latency.Sleep(ctx)

	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Detail{}, err
	}
	tenantName := ""
	if tenant, err := s.tenantRepo.FindByID(ctx, record.TenantID); err == nil {
		tenantName = tenant.Name
	}
	return domain.Detail{Row: buildRow(*record, tenantName, s.clock)}, nil
}

func (s *Service) Create(ctx context.Context, req domain.CreateBillingRequest) (domain.Record, error) {
	s.latency.Sleep(ctx)

	if _, err := s.tenantRepo.FindByID(ctx, req.TenantID); err != nil {
		return domain.Record{}, domain.ErrUnknownTenant
	}
	if err := validatePaymentType(req.PaymentType); err != nil {
		return domain.Record{}, err
	}
	for _, line := range req.DeviceContract {
		if line.Quantity <= 0 {
			return domain.Record{}, domain.ErrInvalidQuantity
		}
	}

	record := domain.Record{
		ID:             s.genID.Generate(),
		TenantID:       req.TenantID,
		PaymentType:    req.PaymentType,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		DueDay:         req.DueDay,
		DueMonth:       req.DueMonth,
		DeviceContract: req.DeviceContract,
		Description:    req.Description,
		CreatedAt:      s.clock.Now(),
	}
	if err := s.repo.Insert(ctx, &record); err != nil {
		return domain.Record{}, err
	}
	s.log.Info("billing record created",
		zap.String("billing_id", record.ID.String()),
		zap.String("payment_type", string(record.PaymentType)),
	)
	return record, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateBillingRequest) (domain.Record, error) {
	s.latency.Sleep(ctx)

	existing, err := s.repo.FindByID(ctx, req.ID)
	if err != nil {
		return domain.Record{}, err
	}
	record := *existing
	if req.PaymentType != "" {
		if err := validatePaymentType(req.PaymentType); err != nil {
			return domain.Record{}, err
		}
		record.PaymentType = req.PaymentType
	}
	if req.StartDate != nil {
		record.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		record.EndDate = *req.EndDate
	}
	if req.DueDay != nil {
		record.DueDay = *req.DueDay
	}
	if req.DueMonth != nil {
		record.DueMonth = *req.DueMonth
	}
	if req.DeviceContract != nil {
		for _, line := range req.DeviceContract {
			if line.Quantity <= 0 {
				return domain.Record{}, domain.ErrInvalidQuantity
			}
		}
		record.DeviceContract = req.DeviceContract
	}
	if req.Description != nil {
		record.Description = *req.Description
	}
	if err := s.repo.Update(ctx, record); err != nil {
		return domain.Record{}, err
	}
	return record, nil
}

func (s *Service) Delete(ctx context.Context, id snowflake.ID) error {
	s.latency.Sleep(ctx)
	return s.repo.Delete(ctx, id)
}

func validatePaymentType(pt schedule.PaymentType) error {
	switch pt {
	case schedule.PaymentOneTime, schedule.PaymentMonthly, schedule.PaymentAnnually:
		return nil
	default:
		return domain.ErrInvalidPaymentType
	}
}
