package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
)

// Repository is the in-memory subscription store.
type Repository interface {
	Insert(ctx context.Context, subscription *Subscription) error
	FindByID(ctx context.Context, id snowflake.ID) (*Subscription, error)
	List(ctx context.Context) ([]Subscription, error)
	Update(ctx context.Context, subscription Subscription) error
	Delete(ctx context.Context, id snowflake.ID) error
	DeleteByTenant(ctx context.Context, tenantID snowflake.ID) (int, error)
	Replace(ctx context.Context, subscriptions []Subscription) error
}
