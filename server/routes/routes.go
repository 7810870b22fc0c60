package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"todoapi/server/handlers"
	"todoapi/server/middleware/identity"
	"todoapi/store"
)

// RegisterRoutes wires the public auth endpoints and the identity-guarded
// todo endpoints.
func RegisterRoutes(app *fiber.App, users *store.UsersStore, registry *store.Registry, queryTimeout time.Duration) {
	app.Post("/register", handlers.HandleUserRegister(users, queryTimeout))
	app.Post("/login", handlers.HandleUserLogin(users, queryTimeout))

	// Every /todos request resolves the caller's store before the handler
	// runs; the middleware short-circuits on a missing or invalid User-ID.
	todos := app.Group("/todos", identity.New(identity.Config{
		Registry: registry,
	}))

	todos.Post("/", handlers.HandleAddTodo(queryTimeout))
	todos.Get("/", handlers.HandleListTodos(queryTimeout))
	todos.Get("/:todoId", handlers.HandleGetTodo(queryTimeout))
	todos.Put("/:todoId", handlers.HandleUpdateTodo(queryTimeout))
	todos.Delete("/:todoId", handlers.HandleDeleteTodo(queryTimeout))

	api := app.Group("/api")
	v1 := api.Group("/v1")

	v1.Get("/status", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "operational",
			"version": "1.0.0",
			"service": "Todo API",
		})
	})
}
