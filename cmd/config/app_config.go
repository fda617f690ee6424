package config

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"pixelpantry/internal/api/handlers"
	"pixelpantry/internal/api/routes"
	"pixelpantry/internal/flatstore"
	"pixelpantry/internal/middleware"
	"pixelpantry/internal/utils"
	"pixelpantry/internal/utils/storage"
	"pixelpantry/pkg/chef"
	"pixelpantry/pkg/mealplan"
	"pixelpantry/pkg/pantry"
	"pixelpantry/pkg/profile"
	"pixelpantry/pkg/recipe"
	"pixelpantry/pkg/scanner"
)

func NewApp(store *Storage) (*fiber.App, error) {
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
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	pantryRepository, recipeRepository, mealPlanRepository := newRepositories(store)

	// Service
	pantryService := pantry.NewPantryService(pantryRepository, recipeRepository)
	recipeService := recipe.NewRecipeService(recipeRepository)
	mealPlanService := mealplan.NewMealPlanService(mealPlanRepository)
	llm := chef.NewOllamaModel(utils.GetConfig("OLLAMA_URL"), utils.GetConfig("OLLAMA_MODEL"))
	chefService := chef.NewChefService(llm, recipeService, mealPlanService, pantryRepository)
	scannerService := scanner.NewScannerService(pantryService, s3, utils.GetConfig("AI_MODEL_URL"))
	profileService := profile.NewProfileService(pantryService, mealPlanRepository)

	// Handler
	pantryHandler := handlers.NewPantryHandler(pantryService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, chefService, validator)
	mealPlanHandler := handlers.NewMealPlanHandler(mealPlanService, chefService, validator)
	scanHandler := handlers.NewScanHandler(scannerService, validator)
	profileHandler := handlers.NewProfileHandler(profileService)

	// routes
	routesConfig := routes.Config{
		App:             app,
		PantryHandler:   pantryHandler,
		RecipeHandler:   recipeHandler,
		MealPlanHandler: mealPlanHandler,
		ScanHandler:     scanHandler,
		ProfileHandler:  profileHandler,
		Middleware:      middlewares,
	}
	routesConfig.Setup()
	return app, nil
}

func newRepositories(store *Storage) (pantry.PantryRepository, recipe.RecipeRepository, mealplan.MealPlanRepository) {
	if store.DB != nil {
		return pantry.NewPantryRepository(store.DB),
			recipe.NewRecipeRepository(store.DB),
			mealplan.NewMealPlanRepository(store.DB)
	}
	return newFlatRepositories(store.Flat)
}

func newFlatRepositories(flat *flatstore.Store) (pantry.PantryRepository, recipe.RecipeRepository, mealplan.MealPlanRepository) {
	return pantry.NewPantryFlatRepository(flat),
		recipe.NewRecipeFlatRepository(flat),
		mealplan.NewMealPlanFlatRepository(flat)
}
