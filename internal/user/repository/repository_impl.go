package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/northfieldlabs/tenantdesk/internal/user/domain"
	"github.com/northfieldlabs/tenantdesk/pkg/memstore"
)

type userRepository struct {
	col *memstore.Collection[domain.User]
}

// Provide builds the in-memory user repository.
func Provide() domain.Repository {
	return &userRepository{
		col: memstore.NewCollection(func(u domain.User) snowflake.ID { return u.ID }),
	}
}

func (r *userRepository) Insert(ctx context.Context, user *domain.User) error {
	r.col.Insert(*user)
	return nil
}

func (r *userRepository) FindByID(ctx context.Context, id snowflake.ID) (*domain.User, error) {
	user, ok := r.col.Get(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context) ([]domain.User, error) {
	return r.col.All(), nil
}

func (r *userRepository) Update(ctx context.Context, user domain.User) error {
	if !r.col.Update(user.ID, user) {
		return domain.ErrNotFound
	}
	return nil
}

func (r *userRepository) Delete(ctx context.Context, id snowflake.ID) error {
	if !r.col.Delete(id) {
		return domain.ErrNotFound
	}
	return nil
}

func (r *userRepository) DeleteByTenant(ctx context.Context, tenantID snowflake.ID) (int, error) {
	return r.col.DeleteWhere(func(u domain.User) bool { return u.TenantID == tenantID }), nil
}

func (r *userRepository) Replace(ctx context.Context, users []domain.User) error {
	r.col.Replace(users)
	return nil
}
