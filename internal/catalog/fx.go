package catalog

import (
	"github.com/PrimeDigitals001/Prototype-pos/internal/catalog/service"
	"go.uber.org/fx"
)

var Module = fx.Module("catalog.service",
	fx.Provide(service.New),
)
