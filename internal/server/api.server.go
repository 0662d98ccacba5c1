package serverApp

import (
	"context"
	"sync"

	database "exchange-api/internal/pkg/db"
	"exchange-api/internal/pkg/middleware"
	"exchange-api/internal/pkg/rabbitmq"
	"exchange-api/internal/pkg/redis"
	"exchange-api/internal/pkg/telegram"
	"exchange-api/internal/repository"
	bankcardRepo "exchange-api/internal/repository/bankcard"
	orderRepo "exchange-api/internal/repository/order"
	rateRepo "exchange-api/internal/repository/rate"

	authHandler "exchange-api/internal/handler/auth"
	bankcardHandler "exchange-api/internal/handler/bankcard"
	orderHandler "exchange-api/internal/handler/order"
	rateHandler "exchange-api/internal/handler/rate"
	authService "exchange-api/internal/service/auth"
	bankcardService "exchange-api/internal/service/bankcard"
	draftService "exchange-api/internal/service/draft"
	orderService "exchange-api/internal/service/order"
	rateService "exchange-api/internal/service/rate"

	"github.com/gin-gonic/gin"
)

// Setup initializes the HTTP server with middleware and routes
func Setup(
	engine *gin.Engine,
	ctx context.Context,
	wg *sync.WaitGroup,
	db *database.Database,
	redisClient redis.IRedis,
	rb *rabbitmq.ConnectionManager,
	publisher *rabbitmq.Publisher,
	bot *telegram.BotClient,
	botToken string,
) {
	InitMiddleware(engine)

	// Health check endpoint
	engine.GET("/health", func(c *gin.Context) {
		rabbitmqHealth := "unhealthy"
		redisHealth := "unhealthy"
		databaseHealth := "unhealthy"
		rbCon := rb.GetConnection()

		if db != nil && !db.IsCloseConnection() {
			databaseHealth = "healthy"
		}

		if rbCon != nil && !rbCon.IsClosed() {
			rabbitmqHealth = "healthy"
		}
		if redisClient != nil {
			redisHealth = "healthy"
		}
		c.JSON(200, gin.H{
			"status": 200,
			"service": gin.H{
				"rabbitmq": gin.H{
					"status": rabbitmqHealth,
				},
				"redis": gin.H{
					"status": redisHealth,
				},
				"database": gin.H{
					"status": databaseHealth,
				},
			},
		})
	})

	e := engine.Group(BasePath())
	InitRoutes(e, ctx, wg, db, redisClient, rb, publisher, bot, botToken)
}

// BasePath returns the base API path
func BasePath() string {
	return "/api"
}

// InitMiddleware initializes global middleware
func InitMiddleware(e *gin.Engine) {
	e.Use(middleware.CorsMiddleware())
	e.Use(middleware.RequestInit())
	e.Use(middleware.ResponseInit())
}

func InitRoutes(
	e *gin.RouterGroup,
	ctx context.Context,
	wg *sync.WaitGroup,
	db *database.Database,
	redisClient redis.IRedis,
	rb *rabbitmq.ConnectionManager,
	publisher *rabbitmq.Publisher,
	bot *telegram.BotClient,
	botToken string,
) {

	// setup repo
	rp := repository.IRepository{
		Order:    orderRepo.NewRepo(db),
		BankCard: bankcardRepo.NewRepo(db),
		Rate:     rateRepo.NewRepo(db),
	}

	// Order and bank card routes require a logged-in mini app user.
	secured := e.Group("", middleware.AuthMiddleware())

	// === Auth ===
	AuthService := authService.NewService(ctx, botToken)
	AuthHandler := authHandler.NewHandler(ctx, AuthService)
	AuthHandler.NewRoutes(e)

	// === Rates ===
	RateService := rateService.NewService(ctx, rp)
	RateHandler := rateHandler.NewHandler(ctx, RateService)
	RateHandler.NewRoutes(e)

	// === Bank cards ===
	BankCardService := bankcardService.NewService(ctx, rp)
	BankCardHandler := bankcardHandler.NewHandler(ctx, BankCardService)
	BankCardHandler.NewRoutes(secured)

	// === Orders & draft ===
	DraftService := draftService.NewService(ctx, redisClient)
	OrderService := orderService.NewService(ctx, rp, DraftService, publisher)
	OrderHandler := orderHandler.NewHandler(ctx, OrderService, DraftService)
	OrderHandler.NewRoutes(secured)
}
