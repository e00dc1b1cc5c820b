package service

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/northfieldlabs/tenantdesk/internal/clock"
	"github.com/northfieldlabs/tenantdesk/internal/device/domain"
	tenantdomain "github.com/northfieldlabs/tenantdesk/internal/tenant/domain"
	"github.com/northfieldlabs/tenantdesk/pkg/query"
	"github.com/northfieldlabs/tenantdesk/pkg/simulate"
	"github.com/samber/lo"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log          *zap.Logger
	Clock        clock.Clock
	GenID        *snowflake.Node
	Latency      *simulate.Latency
	Repo         domain.Repository
	Unregistered domain.UnregisteredRepository
	TenantRepo   tenantdomain.Repository
}

type Service struct {
	log          *zap.Logger
	clock        clock.Clock
	genID        *snowflake.Node
	latency      *simulate.Latency
	repo         domain.Repository
	unregistered domain.UnregisteredRepository
	tenantRepo   tenantdomain.Repository

	definition             query.Definition[domain.Row]
	unregisteredDefinition query.Definition[domain.UnregisteredDevice]
}

func New(p Params) domain.Service {
	return &Service{
		log:                    p.Log.Named("device.service"),
		clock:                  p.Clock,
		genID:                  p.GenID,
		latency:                p.Latency,
		repo:                   p.Repo,
		unregistered:           p.Unregistered,
		tenantRepo:             p.TenantRepo,
		definition:             definition(),
		unregisteredDefinition: unregisteredDefinition(),
	}
}

func definition() query.Definition[domain.Row] {
	return query.Definition[domain.Row]{
		Filters: map[string]query.FilterFunc[domain.Row]{
			"textSearch": query.ContainsAny(
				func(r domain.Row) string { return r.SerialNumber },
				func(r domain.Row) string { return r.Type },
				func(r domain.Row) string { return r.TenantName },
				func(r domain.Row) string { return r.ID.String() },
			),
			"type":       query.Equals(func(r domain.Row) string { return r.Type }),
			"status":     query.Equals(func(r domain.Row) string { return string(r.Status) }),
			"tenantName": query.Contains(func(r domain.Row) string { return r.TenantName }),
		},
		Sorters: map[string]query.CompareFunc[domain.Row]{
			"serialNumber": query.ByString(func(r domain.Row) string { return r.SerialNumber }),
			"type":         query.ByString(func(r domain.Row) string { return r.Type }),
			"status":       query.ByString(func(r domain.Row) string { return string(r.Status) }),
			"tenantName":   query.ByString(func(r domain.Row) string { return r.TenantName }),
			"registeredAt": func(a, b domain.Row) int {
				switch {
				case a.RegisteredAt.Before(b.RegisteredAt):
					return -1
				case a.RegisteredAt.After(b.RegisteredAt):
					return 1
				default:
					return 0
				}
			},
		},
	}
}

func unregisteredDefinition() query.Definition[domain.UnregisteredDevice] {
	return query.Definition[domain.UnregisteredDevice]{
		Filters: map[string]query.FilterFunc[domain.UnregisteredDevice]{
			"textSearch": query.ContainsAny(
				func(d domain.UnregisteredDevice) string { return d.SerialNumber },
				func(d domain.UnregisteredDevice) string { return d.Type },
			),
			"type": query.Equals(func(d domain.UnregisteredDevice) string { return d.Type }),
		},
		Sorters: map[string]query.CompareFunc[domain.UnregisteredDevice]{
			"serialNumber": query.ByString(func(d domain.UnregisteredDevice) string { return d.SerialNumber }),
			"type":         query.ByString(func(d domain.UnregisteredDevice) string { return d.Type }),
		},
	}
}

// List joins each device with its tenant's name before querying. Devices
// whose tenant no longer exists are dropped from the candidate set.
func (s *Service) List(ctx context.Context, req domain.ListDeviceRequest) (domain.ListDeviceResponse, error) {
	s.latency.Sleep(ctx)

	devices, err := s.repo.List(ctx)
	if err != nil {
		return domain.ListDeviceResponse{}, err
	}
	tenants, err := s.tenantRepo.List(ctx)
	if err != nil {
		return domain.ListDeviceResponse{}, err
	}
	names := lo.SliceToMap(tenants, func(t tenantdomain.Tenant) (snowflake.ID, string) {
		return t.ID, t.Name
	})

	rows := make([]domain.Row, 0, len(devices))
	for _, device := range devices {
		name, ok := names[device.TenantID]
		if !ok {
			continue
		}
		rows = append(rows, domain.Row{Device: device, TenantName: name})
	}

	result := query.Run(rows, req.Request, s.definition)
	return domain.ListDeviceResponse{Devices: result.Data, Meta: result.Meta}, nil
}

func (s *Service) ListUnregistered(ctx context.Context, req query.Request) (domain.ListUnregisteredResponse, error) {
	s.latency.Sleep(ctx)

	devices, err := s.unregistered.List(ctx)
	if err != nil {
		return domain.ListUnregisteredResponse{}, err
	}
	result := query.Run(devices, req, s.unregisteredDefinition)
	return domain.ListUnregisteredResponse{Devices: result.Data, Meta: result.Meta}, nil
}

// Register claims an unregistered device for a tenant: the device moves
// from the unregistered pool into the tenant's fleet.
func (s *Service) Register(ctx context.Context, req domain.RegisterDeviceRequest) (domain.Device, error) {
	s.latency.Sleep(ctx)

	pending, err := s.unregistered.FindByID(ctx, req.UnregisteredID)
	if err != nil {
		return domain.Device{}, err
	}
	if _, err := s.tenantRepo.FindByID(ctx, req.TenantID); err != nil {
		return domain.Device{}, domain.ErrUnknownTenant
	}

	device := domain.Device{
		ID:           s.genID.Generate(),
		TenantID:     req.TenantID,
		SerialNumber: pending.SerialNumber,
		Type:         pending.Type,
		Firmware:     req.Firmware,
		Status:       domain.StatusOffline,
		RegisteredAt: s.clock.Now(),
	}
	if err := s.repo.Insert(ctx, &device); err != nil {
		return domain.Device{}, err
	}
	if err := s.unregistered.Delete(ctx, pending.ID); err != nil {
		return domain.Device{}, err
	}

	s.log.Info("device registered",
		zap.String("device_id", device.ID.String()),
		zap.String("tenant_id", req.TenantID.String()),
		zap.String("serial_number", device.SerialNumber),
	)
	return device, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateDeviceRequest) (domain.Device, error) {
	s.latency.Sleep(ctx)

	existing, err := s.repo.FindByID(ctx, req.ID)
	if err != nil {
		return domain.Device{}, err
	}
	device := *existing
	if req.Firmware != "" {
		device.Firmware = req.Firmware
	}
	if req.Status != "" {
		device.Status = req.Status
	}
	if err := s.repo.Update(ctx, device); err != nil {
		return domain.Device{}, err
	}
	return device, nil
}

func (s *Service) Delete(ctx context.Context, id snowflake.ID) error {
	s.latency.Sleep(ctx)
	return s.repo.Delete(ctx, id)
}
