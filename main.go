package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
)

func main() {
	// .env é opcional; em produção tudo vem do ambiente
	_ = godotenv.Load()

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize OpenTelemetry
	tp, err := initTracer(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			log.Printf("Error shutting down tracer: %v", err)
		}
	}()

	mp, err := initMetrics(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize metrics: %v", err)
	}
	defer func() {
		if err := mp.Shutdown(context.Background()); err != nil {
			log.Printf("Error shutting down meter: %v", err)
		}
	}()

	// Initialize database
	dbPool, err := initDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer dbPool.Close()

	if err := ensureSchema(context.Background(), dbPool); err != nil {
		log.Fatalf("Failed to ensure schema: %v", err)
	}

	// Initialize dependencies
	userRepository := NewUserRepository(dbPool)
	productRepository := NewProductRepository(dbPool)
	paymentRepository := NewPaymentRepository(dbPool)

	if cfg.SeedSampleData {
		if err := seedSampleProducts(context.Background(), productRepository); err != nil {
			log.Fatalf("Failed to seed sample products: %v", err)
		}
	}

	redisClient := initRedis(cfg)
	publisher := initPublisher(cfg)
	defer func() {
		if closer, ok := publisher.(io.Closer); ok {
			if err := closer.Close(); err != nil {
				log.Printf("Error closing kafka producer: %v", err)
			}
		}
	}()

	tokens := NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	tracer := tp.Tracer(cfg.ServiceName)
	meter := otel.Meter(cfg.ServiceName)

	authUseCase := NewAuthUseCase(userRepository, tokens)
	productUseCase := NewProductUseCase(productRepository)
	paymentUseCase := NewPaymentUseCase(paymentRepository, productRepository, publisher, meter)

	authHandler := NewAuthHandler(authUseCase, tracer)
	productHandler := NewProductHandler(productUseCase, tracer)
	paymentHandler := NewPaymentHandler(paymentUseCase, tracer)

	r := setupRouter(cfg.ServiceName, authHandler, productHandler, paymentHandler, tokens, redisClient)

	log.Printf("🚀 PIX e-commerce API listening on port %s", cfg.Port)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  30 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// setupRouter monta todas as rotas da API
func setupRouter(
	serviceName string,
	authHandler *AuthHandler,
	productHandler *ProductHandler,
	paymentHandler *PaymentHandler,
	tokens *TokenIssuer,
	redisClient *redis.Client,
) *gin.Engine {
	r := gin.Default()
	r.Use(otelgin.Middleware(serviceName))

	r.GET("/health", healthCheck)

	auth := r.Group("/api/auth")
	auth.Use(rateLimiter(redisClient, rateLimitCount, rateLimitPeriod))
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/verify", authRequired(tokens), authHandler.Verify)

	products := r.Group("/api/products")
	products.GET("", productHandler.List)
	products.GET("/:id", productHandler.Get)
	products.POST("", authRequired(tokens), productHandler.Create)
	products.PUT("/:id", authRequired(tokens), productHandler.Update)
	products.DELETE("/:id", authRequired(tokens), productHandler.Delete)

	payments := r.Group("/api/payments")
	payments.Use(authRequired(tokens))
	payments.POST("/pix", paymentHandler.CreatePix)
	payments.POST("/pix/:transactionId/confirm", paymentHandler.ConfirmPix)
	payments.GET("/my-payments", paymentHandler.MyPayments)
	payments.GET("/status/:transactionId", paymentHandler.Status)

	return r
}

func initDB(cfg *Config) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	// Configure connection pool
	config.MaxConns = 10
	config.MaxConnLifetime = time.Hour
	config.MaxConnIdleTime = 30 * time.Minute
	config.HealthCheckPeriod = 1 * time.Minute

	ctx := context.Background()
	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	// Wait for database to be ready
	for i := 0; i < 30; i++ {
		if err := pool.Ping(ctx); err == nil {
			log.Println("✅ Connected to database with connection pool")
			return pool, nil
		}
		log.Printf("⏳ Waiting for database... (%d/30)", i+1)
		time.Sleep(1 * time.Second)
	}

	pool.Close()
	return nil, fmt.Errorf("failed to connect to database after 30 attempts")
}

// initRedis conecta ao Redis quando configurado; sem Redis o rate limit fica
// desabilitado
func initRedis(cfg *Config) *redis.Client {
	if cfg.RedisAddr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("⚠️ Redis unavailable (%v), rate limiting disabled", err)
		return nil
	}

	log.Println("✅ Connected to redis")
	return client
}

// initPublisher conecta ao Kafka quando configurado; sem brokers os eventos
// são descartados
func initPublisher(cfg *Config) PaymentEventPublisher {
	if len(cfg.KafkaBrokers) == 0 {
		return NoopPaymentPublisher{}
	}

	publisher, err := NewKafkaPaymentPublisher(cfg.KafkaBrokers)
	if err != nil {
		log.Printf("⚠️ Kafka unavailable (%v), payment events disabled", err)
		return NoopPaymentPublisher{}
	}

	log.Println("✅ Connected to kafka")
	return publisher
}
