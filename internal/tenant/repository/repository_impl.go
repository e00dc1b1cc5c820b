package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/northfieldlabs/tenantdesk/internal/tenant/domain"
	"github.com/northfieldlabs/tenantdesk/pkg/memstore"
)

type tenantRepository struct {
	col *memstore.Collection[domain.Tenant]
}

// Provide builds the in-memory tenant repository.
func Provide() domain.Repository {
	return &tenantRepository{
		col: memstore.NewCollection(func(t domain.Tenant) snowflake.ID { return t.ID }),
	}
}

func (r *tenantRepository) Insert(ctx context.Context, tenant *domain.Tenant) error {
	r.col.Insert(*tenant)
	return nil
}

func (r *tenantRepository) FindByID(ctx context.Context, id snowflake.ID) (*domain.Tenant, error) {
	tenant, ok := r.col.Get(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &tenant, nil
}

func (r *tenantRepository) List(ctx context.Context) ([]domain.Tenant, error) {
	return r.col.All(), nil
}

func (r *tenantRepository) Update(ctx context.Context, tenant domain.Tenant) error {
	if !r.col.Update(tenant.ID, tenant) {
		return domain.ErrNotFound
	}
	return nil
}

func (r *tenantRepository) Delete(ctx context.Context, id snowflake.ID) error {
	if !r.col.Delete(id) {
		return domain.ErrNotFound
	}
	return nil
}

func (r *tenantRepository) Replace(ctx context.Context, tenants []domain.Tenant) error {
	r.col.Replace(tenants)
	return nil
}
