package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/northfieldlabs/tenantdesk/internal/device/domain"
	"github.com/northfieldlabs/tenantdesk/pkg/memstore"
)

type deviceRepository struct {
	col *memstore.Collection[domain.Device]
}

// Provide builds the in-memory registered-device repository.
func Provide() domain.Repository {
	return &deviceRepository{
		col: memstore.NewCollection(func(d domain.Device) snowflake.ID { return d.ID }),
	}
}

func (r *deviceRepository) Insert(ctx context.Context, device *domain.Device) error {
	r.col.Insert(*device)
	return nil
}

func (r *deviceRepository) FindByID(ctx context.Context, id snowflake.ID) (*domain.Device, error) {
	device, ok := r.col.Get(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &device, nil
}

func (r *deviceRepository) List(ctx context.Context) ([]domain.Device, error) {
	return r.col.All(), nil
}

func (r *deviceRepository) Update(ctx context.Context, device domain.Device) error {
	if !r.col.Update(device.ID, device) {
		return domain.ErrNotFound
	}
	return nil
}

func (r *deviceRepository) Delete(ctx context.Context, id snowflake.ID) error {
	if !r.col.Delete(id) {
		return domain.ErrNotFound
	}
	return nil
}

func (r *deviceRepository) DeleteByTenant(ctx context.Context, tenantID snowflake.ID) (int, error) {
	return r.col.DeleteWhere(func(d domain.Device) bool { return d.TenantID == tenantID }), nil
}

func (r *deviceRepository) Replace(ctx context.Context, devices []domain.Device) error {
	r.col.Replace(devices)
	return nil
}

type unregisteredRepository struct {
	col *memstore.Collection[domain.UnregisteredDevice]
}

// ProvideUnregistered builds the in-memory unclaimed-device repository.
func ProvideUnregistered() domain.UnregisteredRepository {
	return &unregisteredRepository{
		col: memstore.NewCollection(func(d domain.UnregisteredDevice) snowflake.ID { return d.ID }),
	}
}

func (r *unregisteredRepository) Insert(ctx context.Context, device *domain.UnregisteredDevice) error {
	r.col.Insert(*device)
	return nil
}

func (r *unregisteredRepository) FindByID(ctx context.Context, id snowflake.ID) (*domain.UnregisteredDevice, error) {
	device, ok := r.col.Get(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &device, nil
}

func (r *unregisteredRepository) List(ctx context.Context) ([]domain.UnregisteredDevice, error) {
	return r.col.All(), nil
}

func (r *unregisteredRepository) Delete(ctx context.Context, id snowflake.ID) error {
	if !r.col.Delete(id) {
		return domain.ErrNotFound
	}
	return nil
}

func (r *unregisteredRepository) Replace(ctx context.Context, devices []domain.UnregisteredDevice) error {
	r.col.Replace(devices)
	return nil
}
