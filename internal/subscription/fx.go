package subscription

import (
	"github.com/northfieldlabs/tenantdesk/internal/subscription/repository"
	"github.com/northfieldlabs/tenantdesk/internal/subscription/service"
	"go.uber.org/fx"
)

var Module = fx.Module("subscription.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
