package user

import (
	"github.com/northfieldlabs/tenantdesk/internal/user/repository"
	"github.com/northfieldlabs/tenantdesk/internal/user/service"
	"go.uber.org/fx"
)

var Module = fx.Module("user.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
