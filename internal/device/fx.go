package device

import (
	"github.com/northfieldlabs/tenantdesk/internal/device/repository"
	"github.com/northfieldlabs/tenantdesk/internal/device/service"
	"go.uber.org/fx"
)

var Module = fx.Module("device.service",
	fx.Provide(repository.Provide),
	fx.Provide(repository.ProvideUnregistered),
	fx.Provide(service.New),
)
