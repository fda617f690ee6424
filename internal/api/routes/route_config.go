package routes

import (
	"github.com/gofiber/fiber/v2"

	"pixelpantry/internal/api/handlers"
	"pixelpantry/internal/middleware"
)

type Config struct {
	App             *fiber.App
	PantryHandler   handlers.PantryHandler
	RecipeHandler   handlers.RecipeHandler
	MealPlanHandler handlers.MealPlanHandler
	ScanHandler     handlers.ScanHandler
	ProfileHandler  handlers.ProfileHandler
	Middleware      middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Pantry()
	c.Recipes()
	c.MealPlans()
	c.Scans()
	c.Profile()
	c.GuestRoute()
}

func (c *Config) Pantry() {
	pantry := c.App.Group("/api/v1/pantry")

	// Basic CRUD operations
	pantry.Post("", c.PantryHandler.AddPantryItem)
	pantry.Get("", c.PantryHandler.GetPantryItems)
	pantry.Patch("/:id", c.PantryHandler.UpdatePantryItem)
	pantry.Delete("/:id", c.PantryHandler.DeletePantryItem)

	// Queries
	pantry.Get("/stats", c.PantryHandler.GetStats)
	pantry.Get("/expiring", c.PantryHandler.GetExpiringItems)
	pantry.Get("/search", c.PantryHandler.SearchItems)
	pantry.Get("/category/:category", c.PantryHandler.GetItemsByCategory)
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes")

	recipes.Post("", c.RecipeHandler.AddRecipe)
	recipes.Get("", c.RecipeHandler.GetRecipes)
	recipes.Post("/generate", c.RecipeHandler.GenerateRecipes)
}

func (c *Config) MealPlans() {
	mealPlans := c.App.Group("/api/v1/meal-plans")

	mealPlans.Post("", c.MealPlanHandler.AddMealPlan)
	mealPlans.Get("", c.MealPlanHandler.GetMealPlans)
	mealPlans.Patch("/:id/complete", c.MealPlanHandler.CompleteMealPlan)
	mealPlans.Post("/generate", c.MealPlanHandler.GenerateMealPlan)
}

func (c *Config) Scans() {
	scans := c.App.Group("/api/v1/scans")

	scans.Post("/analyze", c.ScanHandler.AnalyzeImage)
	scans.Post("/save-scanned", c.ScanHandler.SaveScannedItems)
}

func (c *Config) Profile() {
	c.App.Get("/api/v1/profile", c.ProfileHandler.GetProfile)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
