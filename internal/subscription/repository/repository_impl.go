package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/northfieldlabs/tenantdesk/internal/subscription/domain"
	"github.com/northfieldlabs/tenantdesk/pkg/memstore"
)

type subscriptionRepository struct {
	col *memstore.Collection[domain.Subscription]
}

// Provide builds the in-memory subscription repository.
func Provide() domain.Repository {
	return &subscriptionRepository{
		col: memstore.NewCollection(func(s domain.Subscription) snowflake.ID { return s.ID }),
	}
}

func (r *subscriptionRepository) Insert(ctx context.Context, subscription *domain.Subscription) error {
	r.col.Insert(*subscription)
	return nil
}

func (r *subscriptionRepository) FindByID(ctx context.Context, id snowflake.ID) (*domain.Subscription, error) {
	subscription, ok := r.col.Get(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &subscription, nil
}

func (r *subscriptionRepository) List(ctx context.Context) ([]domain.Subscription, error) {
	return r.col.All(), nil
}

func (r *subscriptionRepository) Update(ctx context.Context, subscription domain.Subscription) error {
	if !r.col.Update(subscription.ID, subscription) {
		return domain.ErrNotFound
	}
	return nil
}

func (r *subscriptionRepository) Delete(ctx context.Context, id snowflake.ID) error {
	if !r.col.Delete(id) {
		return domain.ErrNotFound
	}
	return nil
}

func (r *subscriptionRepository) DeleteByTenant(ctx context.Context, tenantID snowflake.ID) (int, error) {
	return r.col.DeleteWhere(func(s domain.Subscription) bool { return s.TenantID == tenantID }), nil
}

func (r *subscriptionRepository) Replace(ctx context.Context, subscriptions []domain.Subscription) error {
	r.col.Replace(subscriptions)
	return nil
}
