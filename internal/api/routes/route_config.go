package routes

import (
	"github.com/ljubanOpacic10/tiac-food-ordering/internal/api/handlers"
	"github.com/ljubanOpacic10/tiac-food-ordering/internal/middleware"
	"github.com/ljubanOpacic10/tiac-food-ordering/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                 *fiber.App
	UserHandler         handlers.UserHandler
	RestaurantHandler   handlers.RestaurantHandler
	MenuHandler         handlers.MenuHandler
	SessionHandler      handlers.SessionHandler
	VoteHandler         handlers.VoteHandler
	OrderHandler        handlers.OrderHandler
	NotificationHandler handlers.NotificationHandler
	PaymentHandler      handlers.PaymentHandler
	EventHandler        handlers.EventHandler
	Middleware          middleware.Middleware
	JWTService          jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Restaurants()
	c.FoodTypes()
	c.MenuItems()
	c.Sessions()
	c.Votes()
	c.Orders()
	c.Notifications()
	c.Payments()
	c.Events()
	c.GuestRoute()
}

func (c *Config) auth() fiber.Handler {
	return c.Middleware.AuthMiddleware(c.JWTService)
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/register/admin", c.auth(), c.Middleware.AdminOnly(), c.UserHandler.RegisterAdmin)
		user.Post("/login", c.UserHandler.Login)
		user.Post("/login/admin", c.UserHandler.LoginAdmin)
		user.Get("/me", c.auth(), c.UserHandler.Me)
		user.Patch("/update", c.auth(), c.UserHandler.UpdateUser)
		user.Patch("/password", c.auth(), c.UserHandler.UpdatePassword)
		user.Get("", c.auth(), c.Middleware.AdminOnly(), c.UserHandler.GetUsers)
		user.Patch("/:id/debt", c.auth(), c.Middleware.AdminOnly(), c.UserHandler.UpdateDebt)
	}
}

func (c *Config) Restaurants() {
	restaurants := c.App.Group("/api/v1/restaurants", c.auth())
	{
		restaurants.Get("", c.RestaurantHandler.GetRestaurants)
		restaurants.Get("/top", c.RestaurantHandler.GetTopRestaurants)
		restaurants.Get("/:id", c.RestaurantHandler.GetRestaurantDetails)
		restaurants.Get("/:restaurantId/menu-items", c.MenuHandler.GetMenuItems)

		restaurants.Post("", c.Middleware.AdminOnly(), c.RestaurantHandler.AddRestaurant)
		restaurants.Patch("/:id", c.Middleware.AdminOnly(), c.RestaurantHandler.UpdateRestaurant)
		restaurants.Delete("/:id", c.Middleware.AdminOnly(), c.RestaurantHandler.DeleteRestaurant)
	}
}

func (c *Config) FoodTypes() {
	foodTypes := c.App.Group("/api/v1/food-types", c.auth())
	{
		foodTypes.Get("", c.RestaurantHandler.GetFoodTypes)
		foodTypes.Post("", c.Middleware.AdminOnly(), c.RestaurantHandler.AddFoodType)
		foodTypes.Delete("/:id", c.Middleware.AdminOnly(), c.RestaurantHandler.DeleteFoodType)
	}
}

func (c *Config) MenuItems() {
	menuItems := c.App.Group("/api/v1/menu-items", c.auth())
	{
		menuItems.Post("", c.Middleware.AdminOnly(), c.MenuHandler.AddMenuItem)
		menuItems.Patch("/:id", c.Middleware.AdminOnly(), c.MenuHandler.UpdateMenuItem)
		menuItems.Delete("/:id", c.Middleware.AdminOnly(), c.MenuHandler.DeleteMenuItem)

		menuItems.Get("/types", c.MenuHandler.GetMenuItemTypes)
		menuItems.Post("/types", c.Middleware.AdminOnly(), c.MenuHandler.AddMenuItemType)
	}
}

func (c *Config) Sessions() {
	voting := c.App.Group("/api/v1/sessions/voting", c.auth())
	{
		voting.Get("/active", c.SessionHandler.GetActiveVotingSession)
		voting.Post("/start", c.Middleware.AdminOnly(), c.SessionHandler.StartVotingSession)
		voting.Post("/end", c.Middleware.AdminOnly(), c.SessionHandler.EndVotingSession)
	}

	ordering := c.App.Group("/api/v1/sessions/ordering", c.auth())
	{
		ordering.Get("/active", c.SessionHandler.GetActiveOrderingSession)
		ordering.Post("/start", c.Middleware.AdminOnly(), c.SessionHandler.StartOrderingSession)
		ordering.Post("/end", c.Middleware.AdminOnly(), c.SessionHandler.EndOrderingSession)
	}
}

func (c *Config) Votes() {
	votes := c.App.Group("/api/v1/votes", c.auth())
	{
		votes.Get("/me", c.VoteHandler.GetMyVotes)
		votes.Post("", c.VoteHandler.SubmitVotes)
		votes.Get("/tally", c.Middleware.AdminOnly(), c.VoteHandler.GetVoteTally)
	}
}

func (c *Config) Orders() {
	orders := c.App.Group("/api/v1/orders", c.auth())
	{
		orders.Post("", c.OrderHandler.SubmitOrder)
		orders.Get("/today", c.OrderHandler.GetTodayOrder)
		orders.Get("/me", c.OrderHandler.GetMyOrders)

		orders.Get("", c.Middleware.AdminOnly(), c.OrderHandler.GetAllOrders)
		orders.Patch("/:id/status", c.Middleware.AdminOnly(), c.OrderHandler.UpdateOrderStatus)
	}
}

func (c *Config) Notifications() {
	notifications := c.App.Group("/api/v1/notifications", c.auth())
	{
		notifications.Post("", c.Middleware.AdminOnly(), c.NotificationHandler.SendNotification)
		notifications.Get("/me", c.NotificationHandler.GetMyNotifications)
		notifications.Patch("/:id/read", c.NotificationHandler.MarkAsRead)
		notifications.Delete("/:id", c.NotificationHandler.DeleteNotification)
	}
}

func (c *Config) Payments() {
	payments := c.App.Group("/api/v1/payments", c.auth())
	{
		payments.Post("/debt", c.PaymentHandler.CreateDebtPayment)
	}
}

func (c *Config) Events() {
	c.App.Get("/api/v1/events", c.auth(), c.EventHandler.Stream)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
	c.App.Post("/webhook/midtrans", c.PaymentHandler.MidtransWebhookHandler)
}
