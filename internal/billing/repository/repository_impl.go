package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/northfieldlabs/tenantdesk/internal/billing/domain"
	"github.com/northfieldlabs/tenantdesk/pkg/memstore"
)

type billingRepository struct {
	col *memstore.Collection[domain.Record]
}

// Provide builds the in-memory billing repository.
func Provide() domain.Repository {
	return &billingRepository{
		col: memstore.NewCollection(func(r domain.Record) snowflake.ID { return r.ID }),
	}
}

func (r *billingRepository) Insert(ctx context.Context, record *domain.Record) error {
	r.col.Insert(*record)
	return nil
}

func (r *billingRepository) FindByID(ctx context.Context, id snowflake.ID) (*domain.Record, error) {
	record, ok := r.col.Get(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &record, nil
}

func (r *billingRepository) List(ctx context.Context) ([]domain.Record, error) {
	return r.col.All(), nil
}

func (r *billingRepository) Update(ctx context.Context, record domain.Record) error {
	if !r.col.Update(record.ID, record) {
		return domain.ErrNotFound
	}
	return nil
}

func (r *billingRepository) Delete(ctx context.Context, id snowflake.ID) error {
	if !r.col.Delete(id) {
		return domain.ErrNotFound
	}
	return nil
}

func (r *billingRepository) DeleteByTenant(ctx context.Context, tenantID snowflake.ID) (int, error) {
	return r.col.DeleteWhere(func(rec domain.Record) bool { return rec.TenantID == tenantID }), nil
}

func (r *billingRepository) Replace(ctx context.Context, records []domain.Record) error {
	r.col.Replace(records)
	return nil
}
