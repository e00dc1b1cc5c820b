package tenant

import (
	"github.com/northfieldlabs/tenantdesk/internal/tenant/repository"
	"github.com/northfieldlabs/tenantdesk/internal/tenant/service"
	"go.uber.org/fx"
)

var Module = fx.Module("tenant.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
