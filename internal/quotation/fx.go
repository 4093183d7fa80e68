package quotation

import (
	"github.com/smallbiznis/quotation/internal/quotation/repository"
	"github.com/smallbiznis/quotation/internal/quotation/service"
	"go.uber.org/fx"
)

var Module = fx.Module("quotation.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
