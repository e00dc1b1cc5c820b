package billing

import (
	"github.com/northfieldlabs/tenantdesk/internal/billing/repository"
	"github.com/northfieldlabs/tenantdesk/internal/billing/service"
	"go.uber.org/fx"
)

var Module = fx.Module("billing.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
