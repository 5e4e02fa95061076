package ledger

import (
	"github.com/PrimeDigitals001/Prototype-pos/internal/ledger/domain"
	"github.com/PrimeDigitals001/Prototype-pos/internal/ledger/store"
	"github.com/PrimeDigitals001/Prototype-pos/internal/seed"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Module("ledger.store",
	fx.Provide(provideStore),
)

func provideStore(db *gorm.DB, log *zap.Logger, genID *snowflake.Node) (domain.Store, error) {
	return store.NewGormStore(db, log, seed.Document(genID))
}
