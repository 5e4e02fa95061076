package customer

import (
	"github.com/PrimeDigitals001/Prototype-pos/internal/customer/service"
	"go.uber.org/fx"
)

var Module = fx.Module("customer.service",
	fx.Provide(service.New),
)
