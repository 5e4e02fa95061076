package server

import (
	"context"
	"net/http"
	"time"

	"github.com/PrimeDigitals001/Prototype-pos/internal/catalog"
	catalogdomain "github.com/PrimeDigitals001/Prototype-pos/internal/catalog/domain"
	"github.com/PrimeDigitals001/Prototype-pos/internal/config"
	"github.com/PrimeDigitals001/Prototype-pos/internal/customer"
	customerdomain "github.com/PrimeDigitals001/Prototype-pos/internal/customer/domain"
	"github.com/PrimeDigitals001/Prototype-pos/internal/invoice"
	invoicedomain "github.com/PrimeDigitals001/Prototype-pos/internal/invoice/domain"
	"github.com/PrimeDigitals001/Prototype-pos/internal/ledger"
	"github.com/PrimeDigitals001/Prototype-pos/internal/observability"
	obsmiddleware "github.com/PrimeDigitals001/Prototype-pos/internal/observability/logger"
	obsmetrics "github.com/PrimeDigitals001/Prototype-pos/internal/observability/metrics"
	"github.com/PrimeDigitals001/Prototype-pos/internal/receipt"
	"github.com/PrimeDigitals001/Prototype-pos/internal/report"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	fx.Provide(registerGin),
	ledger.Module,
	catalog.Module,
	customer.Module,
	invoice.Module,
	report.Module,
	receipt.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(log *zap.Logger, obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obsmiddleware.GinMiddleware(obsmiddleware.MiddlewareConfig{
		Log:   log,
		Debug: obsCfg.Debug(),
	}))
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(log *zap.Logger, obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	return NewEngine(log, obsCfg, httpMetrics)
}

func run(lc fx.Lifecycle, cfg config.Config, r *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("http server listening", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal("http server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine      *gin.Engine
	cfg         config.Config
	customerSvc customerdomain.Service
	catalogSvc  catalogdomain.Service
	invoiceSvc  invoicedomain.Service
	reportSvc   *report.Service
	receipts    *receipt.Renderer
	log         *zap.Logger
}

type ServerParams struct {
	fx.In

	Gin         *gin.Engine
	Cfg         config.Config
	CustomerSvc customerdomain.Service
	CatalogSvc  catalogdomain.Service
	InvoiceSvc  invoicedomain.Service
	ReportSvc   *report.Service
	Receipts    *receipt.Renderer
	Log         *zap.Logger
}

func NewServer(p ServerParams) *Server {
	s := &Server{
		engine:      p.Gin,
		cfg:         p.Cfg,
		customerSvc: p.CustomerSvc,
		catalogSvc:  p.CatalogSvc,
		invoiceSvc:  p.InvoiceSvc,
		reportSvc:   p.ReportSvc,
		receipts:    p.Receipts,
		log:         p.Log.Named("http.server"),
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	api := s.engine.Group("/api")

	customers := api.Group("/customers")
	customers.POST("", s.CreateCustomer)
	customers.GET("", s.ListCustomers)
	customers.GET("/:id", s.GetCustomerByID)
	customers.PATCH("/:id", s.UpdateCustomer)
	customers.DELETE("/:id", s.DeleteCustomer)
	customers.POST("/:id/clear-dues", s.ClearCustomerDues)

	items := api.Group("/items")
	items.POST("", s.CreateItem)
	items.GET("", s.ListItems)
	items.GET("/:id", s.GetItemByID)
	items.PATCH("/:id", s.UpdateItem)
	items.DELETE("/:id", s.DeleteItem)

	invoices := api.Group("/invoices")
	invoices.POST("", s.CreateInvoice)
	invoices.GET("", s.ListInvoices)
	invoices.GET("/:id", s.GetInvoiceByID)
	invoices.POST("/:id/toggle-payment", s.ToggleInvoicePayment)
	invoices.GET("/:id/receipt", s.InvoiceReceipt)

	api.GET("/reports/overview", s.ReportOverview)
}
