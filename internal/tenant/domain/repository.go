package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
)

// Repository is the in-memory tenant store.
type Repository interface {
	Insert(ctx context.Context, tenant *Tenant) error
	FindByID(ctx context.Context, id snowflake.ID) (*Tenant, error)
	List(ctx context.Context) ([]Tenant, error)
	Update(ctx context.Context, tenant Tenant) error
	Delete(ctx context.Context, id snowflake.ID) error
	Replace(ctx context.Context, tenants []Tenant) error
}
