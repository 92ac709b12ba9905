package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"catalog-service/controllers"
	"catalog-service/database"
	"catalog-service/kafka"
	"catalog-service/middleware"
	"catalog-service/repository"
	"catalog-service/routes"
	"catalog-service/services"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func main() {
	// Initialize structured logger
	logger, err := zap.NewProduction()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	// Load .env file (optional, falls back to system env)
	_ = godotenv.Load()

	cfg := LoadConfig()

	// --- 1. Infrastructure clients ---

	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		zap.L().Warn("Failed to parse REDIS_URL, falling back to default", zap.Error(err))
		redisOpts = &redis.Options{Addr: "redis:6379", DB: 0}
	}
	redisClient := redis.NewClient(redisOpts)

	var mongoClient *mongo.Client
	var productRepo repository.ProductRepo
	var vendorRepo repository.VendorRepo
	var categoryRepo repository.CategoryRepo

	switch cfg.CatalogSource {
	case "mongo":
		client, db, err := database.Connect(cfg.MongoURL, cfg.MongoDB)
		if err != nil {
			zap.L().Fatal("Failed to connect to MongoDB", zap.Error(err))
		}
		mongoClient = client
		productRepo = repository.NewMongoProductRepo(db)
		vendorRepo = repository.NewMongoVendorRepo(db)
		categoryRepo = repository.NewMongoCategoryRepo(db)
	default:
		zap.L().Info("Using the seeded in-memory catalog")
		memCatalog := repository.NewSeededMemoryCatalog()
		productRepo = memCatalog
		vendorRepo = memCatalog.Vendors()
		categoryRepo = memCatalog.Categories()
	}

	var producer *kafka.Producer
	var events services.EventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		producer = kafka.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
		events = producer
		zap.L().Info("Catalog event producer enabled", zap.Strings("brokers", cfg.KafkaBrokers))
	}

	// --- 2. Dependency injection ---

	historyService := services.NewHistoryService(redisClient, 30*24*time.Hour)
	catalogService := services.NewCatalogService(productRepo, vendorRepo, categoryRepo, events)
	searchService := services.NewSearchService(productRepo, historyService)
	cacheManager := controllers.NewCacheManager(redisClient)

	var uploadService controllers.UploadAPI
	if cfg.EnableUploads {
		uploadService = newUploadService(cfg)
	}

	productController := controllers.NewProductController(catalogService, historyService, cacheManager)
	searchController := controllers.NewSearchController(searchService)
	vendorController := controllers.NewVendorController(catalogService)
	uploadController := controllers.NewUploadController(uploadService)

	// --- 3. HTTP server & middleware ---

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.Timeout(controllers.DefaultContextTimeout))
	r.Use(middleware.RateLimit(rate.Every(time.Second/20), 40))

	routes.RegisterRoutes(r, productController, searchController, vendorController, uploadController)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	// --- 4. Graceful shutdown ---

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		zap.L().Info("Catalog Service starting", zap.String("port", cfg.Port), zap.String("catalog_source", cfg.CatalogSource))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.L().Info("Shutting down Catalog Service...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Fatal("Server forced to shutdown", zap.Error(err))
	}

	if producer != nil {
		producer.Close()
	}
	if err := redisClient.Close(); err != nil {
		zap.L().Error("Failed to close Redis", zap.Error(err))
	}
	if mongoClient != nil {
		if err := database.Close(mongoClient); err != nil {
			zap.L().Error("Failed to close MongoDB", zap.Error(err))
		}
	}

	zap.L().Info("Catalog Service stopped gracefully")
}

// newUploadService builds the S3 presign client (LocalStack-compatible).
func newUploadService(cfg *Config) *services.UploadService {
	cfgOpts := []func(*awscfg.LoadOptions) error{
		awscfg.WithRegion(cfg.AWSRegion),
	}
	if cfg.AWSAccessKey != "" || cfg.AWSSecretKey != "" {
		cfgOpts = append(cfgOpts, awscfg.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AWSAccessKey, cfg.AWSSecretKey, ""),
		))
	}

	awsCfg, err := awscfg.LoadDefaultConfig(context.Background(), cfgOpts...)
	if err != nil {
		zap.L().Fatal("Failed to load AWS config", zap.Error(err))
	}

	s3Client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = true
		if cfg.AWSEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.AWSEndpoint)
		}
	})
	presignClient := s3.NewPresignClient(s3Client)

	return services.NewUploadService(presignClient, cfg.S3Bucket, cfg.S3Prefix, cfg.AWSEndpoint, cfg.CDNDomain)
}
