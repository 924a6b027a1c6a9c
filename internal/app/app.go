package app

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/itisal/itisal-backend/internal/config"
	customerdb "github.com/itisal/itisal-backend/internal/customer/db"
	customerhandler "github.com/itisal/itisal-backend/internal/customer/handler"
	customerservice "github.com/itisal/itisal-backend/internal/customer/service"
	dashboardhandler "github.com/itisal/itisal-backend/internal/dashboard/handler"
	dashboardservice "github.com/itisal/itisal-backend/internal/dashboard/service"
	"github.com/itisal/itisal-backend/internal/i18n"
	i18ndb "github.com/itisal/itisal-backend/internal/i18n/db"
	i18nhandler "github.com/itisal/itisal-backend/internal/i18n/handler"
	i18nservice "github.com/itisal/itisal-backend/internal/i18n/service"
	orderdb "github.com/itisal/itisal-backend/internal/order/db"
	orderhandler "github.com/itisal/itisal-backend/internal/order/handler"
	orderservice "github.com/itisal/itisal-backend/internal/order/service"
	productdb "github.com/itisal/itisal-backend/internal/product/db"
	producthandler "github.com/itisal/itisal-backend/internal/product/handler"
	productservice "github.com/itisal/itisal-backend/internal/product/service"
	regiondb "github.com/itisal/itisal-backend/internal/region/db"
	regionhandler "github.com/itisal/itisal-backend/internal/region/handler"
	regionservice "github.com/itisal/itisal-backend/internal/region/service"
	storedb "github.com/itisal/itisal-backend/internal/store/db"
	storehandler "github.com/itisal/itisal-backend/internal/store/handler"
	storeservice "github.com/itisal/itisal-backend/internal/store/service"
	storesetupdb "github.com/itisal/itisal-backend/internal/storesetup/db"
	storesetuphandler "github.com/itisal/itisal-backend/internal/storesetup/handler"
	storesetupservice "github.com/itisal/itisal-backend/internal/storesetup/service"
	uploadservice "github.com/itisal/itisal-backend/internal/upload/service"
	userdb "github.com/itisal/itisal-backend/internal/user/db"
	userhandler "github.com/itisal/itisal-backend/internal/user/handler"
	"github.com/itisal/itisal-backend/internal/user/password"
	userservice "github.com/itisal/itisal-backend/internal/user/service"
	minioclient "github.com/itisal/itisal-backend/pkg/client/minio"
	pgclient "github.com/itisal/itisal-backend/pkg/client/postgresql"
	"github.com/itisal/itisal-backend/pkg/client/sqldb"
	pgtx "github.com/itisal/itisal-backend/pkg/transactor/postgresql"
	"go.uber.org/zap"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/itisal/itisal-backend/docs"
)

type App struct {
	HTTPServer *http.Server
}

func NewApp(log *zap.Logger, cfg config.Config) *App {
	pgClient, err := pgclient.NewClient(
		context.TODO(),
		pgclient.Config{
			Username: cfg.PostgreSQL.Username,
			Password: cfg.PostgreSQL.Password,
			Host:     cfg.PostgreSQL.Host,
			Port:     cfg.PostgreSQL.Port,
			Database: cfg.PostgreSQL.Database,
		},
	)
	if err != nil {
		log.Fatal(err.Error())
	}

	minioClient, err := minioclient.New(
		context.TODO(),
		minioclient.Config{
			Endpoint:        cfg.Minio.Endpoint,
			AccessKeyID:     cfg.Minio.AccessKeyID,
			SecretAccessKey: cfg.Minio.SecretAccessKey,
			UseSSL:          cfg.Minio.UseSSL,
		},
	)
	if err != nil {
		log.Fatal(err.Error())
	}

	translator, err := i18n.NewTranslator()
	if err != nil {
		log.Fatal(err.Error())
	}

	// The store_setup resource can live either in the shared pool database
	// or on the legacy SQL backend. Everything else always uses the pool.
	var storeSetupRepository storesetupservice.Repository
	if cfg.StoreSetup.Driver == config.StoreSetupDriverSQL {
		sqlClient, err := sqldb.NewClient(cfg.SQLServer.DSN)
		if err != nil {
			log.Fatal(err.Error())
		}

		storeSetupRepository = storesetupdb.NewSQLRepository(sqlClient, log)
	} else {
		storeSetupRepository = storesetupdb.NewPoolRepository(pgClient, log)
	}

	router := chi.NewRouter()

	router.Use(
		LoggingMiddleware(log),
		cors.Handler(cors.Options{
			AllowedOrigins:   cfg.HTTPServer.AllowedOrigins,
			AllowCredentials: cfg.HTTPServer.AllowCredentials,
		}),
		middleware.Recoverer,
	)

	router.Get("/swagger/*", httpSwagger.Handler())

	router.Route("/api", func(r chi.Router) {
		r.Get("/ping", PingHandler)

		txManager := pgtx.NewPgManager(pgClient)

		localeRepository := i18ndb.New(pgClient, log)
		localeService := i18nservice.New(localeRepository, log)
		localeHandler := i18nhandler.New(localeService, translator, log)

		regionRepository := regiondb.New(pgClient, log)
		regionService := regionservice.New(regionRepository, log)
		regionHandler := regionhandler.New(regionService, log)

		storeRepository := storedb.New(pgClient, log)
		storeService := storeservice.New(storeRepository, regionService, log)
		storeHandler := storehandler.New(storeService, log)

		storeSetupService := storesetupservice.New(storeSetupRepository, log)
		storeSetupHandler := storesetuphandler.New(storeSetupService, log)

		customerRepository := customerdb.New(pgClient, log)
		customerService := customerservice.New(customerRepository, regionService, txManager, log)
		customerHandler := customerhandler.New(customerService, log)

		productRepository := productdb.New(pgClient, log)
		productService := productservice.New(productRepository, log)
		uploadService := uploadservice.New(minioClient, cfg.Minio.ProductsBucket, log)
		productHandler := producthandler.New(productService, uploadService, cfg.HTTPServer.StaticURL, log)

		orderRepository := orderdb.New(pgClient, log)
		orderService := orderservice.New(
			orderRepository,
			customerService,
			storeService,
			productService,
			txManager,
			nil,
			log,
		)
		orderHandler := orderhandler.New(orderService, log)

		dashboardService := dashboardservice.New(orderService, log)
		dashboardHandler := dashboardhandler.New(dashboardService, log)

		passwordManager := password.New(log)
		userRepository := userdb.New(pgClient, log)
		userService := userservice.New(userRepository, passwordManager, log)
		userHandler := userhandler.New(userService, log)

		handlersToRegister := []struct {
			name    string
			handler interface{ Register(chi.Router) }
		}{
			{"locale", localeHandler},
			{"region", regionHandler},
			{"store", storeHandler},
			{"store setup", storeSetupHandler},
			{"customer", customerHandler},
			{"product", productHandler},
			{"order", orderHandler},
			{"dashboard", dashboardHandler},
			{"user", userHandler},
		}

		for _, h := range handlersToRegister {
			log.Info("register handlers", zap.String("resource", h.name))

			h.handler.Register(r)
		}
	})

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	return &App{
		HTTPServer: srv,
	}
}

func (a *App) MustRun() {
	if err := a.HTTPServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		panic("failed to start server")
	}
}

func (a *App) Shutdown(ctx context.Context) error {
	return a.HTTPServer.Shutdown(ctx)
}

func LoggingMiddleware(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			next.ServeHTTP(w, r)

			logger.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("remote", r.RemoteAddr),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}

// @Tags		other
// @Success	200		{string}	string
// @Failure	400,500	{object}	apperror.AppError
// @Router		/ping [get]
func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("pong"))
}
