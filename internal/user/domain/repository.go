package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
)

// Repository is the in-memory user store.
type Repository interface {
	Insert(ctx context.Context, user *User) error
	FindByID(ctx context.Context, id snowflake.ID) (*User, error)
	List(ctx context.Context) ([]User, error)
	Update(ctx context.Context, user User) error
	Delete(ctx context.Context, id snowflake.ID) error
	DeleteByTenant(ctx context.Context, tenantID snowflake.ID) (int, error)
	Replace(ctx context.Context, users []User) error
}
