package routes

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "opticai/docs"
	"opticai/internal/adapter/http/handlers"
	"opticai/internal/adapter/persistence/repository"
	"opticai/internal/config"
	"opticai/internal/domain/document"
	"opticai/internal/infrastructure/database"
	"opticai/internal/infrastructure/payments"
	"opticai/internal/infrastructure/storage"
	"opticai/internal/usecase"
	"opticai/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const ServiceName = "opticai-api"

var router = gin.New()

// Run will start the server and block until SIGINT or SIGTERM.
func Run(cfg config.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	set, closeStore := buildHandlers(ctx, cfg)
	defer closeStore()
	registerRoutes(router, set)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      otelhttp.NewHandler(router, ServiceName),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("%s listening on %s storage=%s", ServiceName, server.Addr, cfg.StorageDriver)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to startup the application: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}

// handlerSet is everything registerRoutes needs.
type handlerSet struct {
	session   gin.HandlerFunc
	orders    *handlers.ServiceOrderHandler
	drafts    *handlers.DraftHandler
	documents *handlers.DocumentHandler
	charges   *handlers.OrderChargeHandler
}

type stores struct {
	orders   interfaces.IServiceOrderRepository
	tenants  interfaces.ITenantRepository
	profiles interfaces.IProfileRepository
	charges  interfaces.IOrderChargeRepository
}

func buildHandlers(ctx context.Context, cfg config.Config) (handlerSet, func()) {
	st, closeStore := openStores(ctx, cfg)

	drafts := repository.NewDraftMemoryRepository(cfg.DraftTTL)
	go drafts.RunJanitor(ctx, time.Minute)

	logos := &storage.LogoFetcher{HTTP: storage.NewHTTPFetcher(cfg.LogoFetchTimeout)}
	if awsCfg, err := database.NewAWSConfig(ctx, cfg.AWSRegion); err != nil {
		log.Printf("s3 logo fetcher disabled: %v", err)
	} else {
		logos.S3 = storage.NewS3Fetcher(awsCfg, cfg.S3Endpoint)
	}
	renderer := document.NewRenderer(logos)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken)
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	orderUseCase := usecase.NewServiceOrderUseCase(st.orders)
	draftUseCase := usecase.NewDraftUseCase(drafts, orderUseCase)
	documentUseCase := usecase.NewDocumentUseCase(st.orders, drafts, st.tenants, renderer)
	chargeUseCase := usecase.NewOrderChargeUseCase(st.charges, st.orders, paymentGateway)
	sessionUseCase := usecase.NewSessionUseCase(st.profiles, st.tenants)

	return handlerSet{
		session:   handlers.RequireSession(sessionUseCase),
		orders:    handlers.NewServiceOrderHandler(orderUseCase),
		drafts:    handlers.NewDraftHandler(draftUseCase),
		documents: handlers.NewDocumentHandler(documentUseCase),
		charges:   handlers.NewOrderChargeHandler(chargeUseCase),
	}, closeStore
}

// openStores selects the persistence backend. Both expose the same tables.
func openStores(ctx context.Context, cfg config.Config) (stores, func()) {
	if cfg.StorageDriver == config.StoragePostgres {
		pool, err := database.ConnectPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("failed to connect to postgres: %v", err)
		}
		if cfg.PostgresAutoSchema {
			if err := repository.EnsurePostgresSchema(ctx, pool); err != nil {
				log.Fatalf("failed to apply postgres schema: %v", err)
			}
		}
		return stores{
			orders:   repository.NewServiceOrderPostgresRepository(pool),
			tenants:  repository.NewTenantPostgresRepository(pool),
			profiles: repository.NewProfilePostgresRepository(pool),
			charges:  repository.NewOrderChargePostgresRepository(pool),
		}, pool.Close
	}

	ddb := database.ConnectDynamoDB(ctx, cfg.AWSRegion, cfg.DynamoDBEndpoint)
	return stores{
		orders:   repository.NewServiceOrderDynamoRepository(ddb, cfg.ServiceOrdersTable),
		tenants:  repository.NewTenantDynamoRepository(ddb, cfg.TenantsTable),
		profiles: repository.NewProfileDynamoRepository(ddb, cfg.ProfilesTable),
		charges:  repository.NewOrderChargeDynamoRepository(ddb, cfg.OrderChargesTable),
	}, func() {}
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
