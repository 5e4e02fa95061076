package invoice

import (
	"github.com/PrimeDigitals001/Prototype-pos/internal/invoice/service"
	"go.uber.org/fx"
)

var Module = fx.Module("invoice.service",
	fx.Provide(service.New),
)
