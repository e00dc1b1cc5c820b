package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/northfieldlabs/tenantdesk/pkg/query"
)

type ListUserRequest struct {
	query.Request
}

type ListUserResponse struct {
	Users []Row      `json:"users"`
	Meta  query.Meta `json:"meta"`
}

type CreateUserRequest struct {
	TenantID snowflake.ID
	Name     string
	Email    string
	Role     Role
}

type UpdateUserRequest struct {
	ID     snowflake.ID
	Name   string
	Role   Role
	Status Status
}

type Service interface {
	List(context.Context, ListUserRequest) (ListUserResponse, error)
	Create(context.Context, CreateUserRequest) (User, error)
	Update(context.Context, UpdateUserRequest) (User, error)
	Delete(context.Context, snowflake.ID) error
}

var (
	ErrNotFound      = errors.New("not_found")
	ErrUnknownTenant = errors.New("unknown_tenant")
	ErrInvalidName   = errors.New("invalid_name")
	ErrInvalidEmail  = errors.New("invalid_email")
)
