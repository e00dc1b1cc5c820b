package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/northfieldlabs/tenantdesk/internal/clock"
	tenantdomain "github.com/northfieldlabs/tenantdesk/internal/tenant/domain"
	"github.com/northfieldlabs/tenantdesk/internal/user/domain"
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
		log:        p.Log.Named("user.service"),
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
				func(r domain.Row) string { return r.Name },
				func(r domain.Row) string { return r.Email },
				func(r domain.Row) string { return r.TenantName },
				func(r domain.Row) string { return r.ID.String() },
			),
			"role":   query.Equals(func(r domain.Row) string { return string(r.Role) }),
			"status": query.Equals(func(r domain.Row) string { return string(r.Status) }),
		},
		Sorters: map[string]query.CompareFunc[domain.Row]{
			"name":       query.ByString(func(r domain.Row) string { return r.Name }),
			"email":      query.ByString(func(r domain.Row) string { return r.Email }),
			"role":       query.ByString(func(r domain.Row) string { return string(r.Role) }),
			"status":     query.ByString(func(r domain.Row) string { return string(r.Status) }),
			"tenantName": query.ByString(func(r domain.Row) string { return r.TenantName }),
		},
	}
}

func (s *Service) List(ctx context.Context, req domain.ListUserRequest) (domain.ListUserResponse, error) {
	s.latency.Sleep(ctx)

	users, err := s.repo.List(ctx)
	if err != nil {
		return domain.ListUserResponse{}, err
	}
	tenants, err := s.tenantRepo.List(ctx)
	if err != nil {
		return domain.ListUserResponse{}, err
	}
	names := lo.SliceToMap(tenants, func(t tenantdomain.Tenant) (snowflake.ID, string) {
		return t.ID, t.Name
	})

	rows := make([]domain.Row, 0, len(users))
	for _, user := range users {
		name, ok := names[user.TenantID]
		if !ok {
			continue
		}
		rows = append(rows, domain.Row{User: user, TenantName: name})
	}

	result := query.Run(rows, req.Request, s.definition)
	return domain.ListUserResponse{Users: result.Data, Meta: result.Meta}, nil
}

func (s *Service) Create(ctx context.Context, req domain.CreateUserRequest) (domain.User, error) {
	s.latency.Sleep(ctx)

	if _, err := s.tenantRepo.FindByID(ctx, req.TenantID); err != nil {
		return domain.User{}, domain.ErrUnknownTenant
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.User{}, domain.ErrInvalidName
	}
	email := strings.TrimSpace(req.Email)
	if email == "" || !strings.Contains(email, "@") {
		return domain.User{}, domain.ErrInvalidEmail
	}
	role := req.Role
	if role == "" {
		role = domain.RoleViewer
	}

	user := domain.User{
		ID:        s.genID.Generate(),
		TenantID:  req.TenantID,
		Name:      name,
		Email:     email,
		Role:      role,
		Status:    domain.StatusInvited,
		CreatedAt: s.clock.Now(),
	}
	if err := s.repo.Insert(ctx, &user); err != nil {
		return domain.User{}, err
	}
	s.log.Info("user created", zap.String("user_id", user.ID.String()))
	return user, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateUserRequest) (domain.User, error) {
	s.latency.Sleep(ctx)

	existing, err := s.repo.FindByID(ctx, req.ID)
	if err != nil {
		return domain.User{}, err
	}
	user := *existing
	if name := strings.TrimSpace(req.Name); name != "" {
		user.Name = name
	}
	if req.Role != "" {
		user.Role = req.Role
	}
	if req.Status != "" {
		user.Status = req.Status
	}
	if err := s.repo.Update(ctx, user); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

func (s *Service) Delete(ctx context.Context, id snowflake.ID) error {
	s.latency.Sleep(ctx)
	return s.repo.Delete(ctx, id)
}
