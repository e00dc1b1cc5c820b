package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/northfieldlabs/tenantdesk/pkg/query"
)

type ListSubscriptionRequest struct {
	query.Request
}

type ListSubscriptionResponse struct {
	Subscriptions []Row      `json:"subscriptions"`
	Meta          query.Meta `json:"meta"`
}

type CreateSubscriptionRequest struct {
	TenantID  snowflake.ID
	Plan      string
	Seats     int
	StartDate string
	EndDate   string
}

type UpdateSubscriptionRequest struct {
	ID      snowflake.ID
	Plan    string
	Status  Status
	Seats   int
	EndDate string
}

type Service interface {
	List(context.Context, ListSubscriptionRequest) (ListSubscriptionResponse, error)
	Create(context.Context, CreateSubscriptionRequest) (Subscription, error)
	Update(context.Context, UpdateSubscriptionRequest) (Subscription, error)
	Delete(context.Context, snowflake.ID) error
}

var (
	ErrNotFound      = errors.New("not_found")
	ErrUnknownTenant = errors.New("unknown_tenant")
	ErrInvalidPlan   = errors.New("invalid_plan")
	ErrInvalidSeats  = errors.New("invalid_seats")
)
