package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
)

// Repository is the in-memory registered-device store.
type Repository interface {
	Insert(ctx context.Context, device *Device) error
	FindByID(ctx context.Context, id snowflake.ID) (*Device, error)
	List(ctx context.Context) ([]Device, error)
	Update(ctx context.Context, device Device) error
	Delete(ctx context.Context, id snowflake.ID) error
	DeleteByTenant(ctx context.Context, tenantID snowflake.ID) (int, error)
	Replace(ctx context.Context, devices []Device) error
}

// UnregisteredRepository is the in-memory unclaimed-device store.
type UnregisteredRepository interface {
	Insert(ctx context.Context, device *UnregisteredDevice) error
	FindByID(ctx context.Context, id snowflake.ID) (*UnregisteredDevice, error)
	List(ctx context.Context) ([]UnregisteredDevice, error)
	Delete(ctx context.Context, id snowflake.ID) error
	Replace(ctx context.Context, devices []UnregisteredDevice) error
}
