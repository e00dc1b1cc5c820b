package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
)

// Repository is the in-memory billing record store.
type Repository interface {
	Insert(ctx context.Context, record *Record) error
	FindByID(ctx context.Context, id snowflake.ID) (*Record, error)
	List(ctx context.Context) ([]Record, error)
	Update(ctx context.Context, record Record) error
	Delete(ctx context.Context, id snowflake.ID) error
	DeleteByTenant(ctx context.Context, tenantID snowflake.ID) (int, error)
	Replace(ctx context.Context, records []Record) error
}
