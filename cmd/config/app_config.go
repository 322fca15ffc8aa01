package config

import (
	"os"
	"time"

	"github.com/ljubanOpacic10/tiac-food-ordering/internal/api/handlers"
	"github.com/ljubanOpacic10/tiac-food-ordering/internal/api/routes"
	"github.com/ljubanOpacic10/tiac-food-ordering/internal/middleware"
	"github.com/ljubanOpacic10/tiac-food-ordering/internal/utils"
	"github.com/ljubanOpacic10/tiac-food-ordering/internal/utils/storage"
	"github.com/ljubanOpacic10/tiac-food-ordering/pkg/events"
	"github.com/ljubanOpacic10/tiac-food-ordering/pkg/jwt"
	"github.com/ljubanOpacic10/tiac-food-ordering/pkg/menu"
	"github.com/ljubanOpacic10/tiac-food-ordering/pkg/notification"
	"github.com/ljubanOpacic10/tiac-food-ordering/pkg/order"
	"github.com/ljubanOpacic10/tiac-food-ordering/pkg/payment"
	"github.com/ljubanOpacic10/tiac-food-ordering/pkg/restaurant"
	"github.com/ljubanOpacic10/tiac-food-ordering/pkg/session"
	"github.com/ljubanOpacic10/tiac-food-ordering/pkg/user"
	"github.com/ljubanOpacic10/tiac-food-ordering/pkg/vote"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Europe/Belgrade",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	hub := events.NewHub()

	// Repository
	userRepository := user.NewUserRepository(db)
	restaurantRepository := restaurant.NewRestaurantRepository(db)
	menuRepository := menu.NewMenuRepository(db)
	sessionRepository := session.NewSessionRepository(db)
	voteRepository := vote.NewVoteRepository(db)
	orderRepository := order.NewOrderRepository(db)
	notificationRepository := notification.NewNotificationRepository(db)
	paymentRepository := payment.NewPaymentRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	restaurantService := restaurant.NewRestaurantService(restaurantRepository, s3, hub)
	menuService := menu.NewMenuService(menuRepository, restaurantRepository, s3)
	sessionService := session.NewSessionService(sessionRepository, hub)
	voteService := vote.NewVoteService(voteRepository, sessionRepository, hub)
	orderService := order.NewOrderService(orderRepository, sessionRepository, restaurantRepository, menuRepository)
	notificationService := notification.NewNotificationService(notificationRepository, userRepository)
	paymentService := payment.NewPaymentService(paymentRepository, userRepository, orderRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	restaurantHandler := handlers.NewRestaurantHandler(restaurantService, validator)
	menuHandler := handlers.NewMenuHandler(menuService, validator)
	sessionHandler := handlers.NewSessionHandler(sessionService)
	voteHandler := handlers.NewVoteHandler(voteService, validator)
	orderHandler := handlers.NewOrderHandler(orderService, validator)
	notificationHandler := handlers.NewNotificationHandler(notificationService, validator)
	paymentHandler := handlers.NewPaymentHandler(paymentService, validator)
	eventHandler := handlers.NewEventHandler(hub)

	// routes
	routesConfig := routes.Config{
		App:                 app,
		UserHandler:         userHandler,
		RestaurantHandler:   restaurantHandler,
		MenuHandler:         menuHandler,
		SessionHandler:      sessionHandler,
		VoteHandler:         voteHandler,
		OrderHandler:        orderHandler,
		NotificationHandler: notificationHandler,
		PaymentHandler:      paymentHandler,
		EventHandler:        eventHandler,
		Middleware:          middlewares,
		JWTService:          jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
