package chef

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"regexp"
	"strings"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"

	"pixelpantry/domain"
	"pixelpantry/entities"
	"pixelpantry/pkg/mealplan"
	"pixelpantry/pkg/pantry"
	"pixelpantry/pkg/recipe"
)

const dateLayout = "2006-01-02"

type (
	// ChefService generates recipes and meal plans with a local LLM.
	// Every failure path falls back to canned results so the feature
	// works without a model server running.
	ChefService interface {
		GenerateRecipes(ctx context.Context, req domain.GenerateRecipesRequest) ([]domain.RecipeResponse, error)
		GenerateMealPlan(ctx context.Context, req domain.GenerateMealPlanRequest) (domain.GeneratedMealPlanResponse, error)
	}

	chefService struct {
		llm              llms.Model
		recipeService    recipe.RecipeService
		mealPlanService  mealplan.MealPlanService
		pantryRepository pantry.PantryRepository
	}
)

// NewOllamaModel connects to a local Ollama server. A nil model is a
// valid return; the service then serves canned data only.
func NewOllamaModel(serverURL, model string) llms.Model {
	if serverURL == "" {
		return nil
	}
	llm, err := ollama.New(ollama.WithServerURL(serverURL), ollama.WithModel(model))
	if err != nil {
		log.Printf("ollama unavailable, falling back to canned generation: %v", err)
		return nil
	}
	return llm
}

func NewChefService(
	llm llms.Model,
	recipeService recipe.RecipeService,
	mealPlanService mealplan.MealPlanService,
	pantryRepository pantry.PantryRepository,
) ChefService {
	return &chefService{
		llm:              llm,
		recipeService:    recipeService,
		mealPlanService:  mealPlanService,
		pantryRepository: pantryRepository,
	}
}

// generatedRecipe is the JSON shape the model is asked to produce.
type generatedRecipe struct {
	Name         string                `json:"name"`
	Description  string                `json:"description"`
	Ingredients  []entities.Ingredient `json:"ingredients"`
	Instructions []string              `json:"instructions"`
	CookTime     int                   `json:"cookTime"`
	Servings     int                   `json:"servings"`
	Difficulty   string                `json:"difficulty"`
	Category     string                `json:"category"`
}

type generatedMealPlanDay struct {
	Day   int               `json:"day"`
	Date  string            `json:"date"`
	Meals map[string]string `json:"meals"`
}

type generatedMealPlan struct {
	Days         []generatedMealPlanDay `json:"days"`
	ShoppingList []string               `json:"shoppingList"`
}

func (s *chefService) GenerateRecipes(ctx context.Context, req domain.GenerateRecipesRequest) ([]domain.RecipeResponse, error) {
	ingredients, err := s.resolveIngredients(ctx, req.Ingredients)
	if err != nil {
		return nil, err
	}

	generated := s.generateRecipesWithModel(ctx, ingredients, req)

	responses := make([]domain.RecipeResponse, 0, len(generated))
	for _, gen := range generated {
		rating := 4.5 + rand.Float64()*0.5
		res, err := s.recipeService.AddRecipe(ctx, domain.AddRecipeRequest{
			Name:          gen.Name,
			Description:   gen.Description,
			Ingredients:   toIngredientRequests(gen.Ingredients),
			Instructions:  gen.Instructions,
			CookTime:      gen.CookTime,
			Servings:      gen.Servings,
			Difficulty:    gen.Difficulty,
			Category:      gen.Category,
			IsAIGenerated: true,
			Rating:        &rating,
		})
		if err != nil {
			return nil, err
		}
		responses = append(responses, res)
	}
	return responses, nil
}

func (s *chefService) GenerateMealPlan(ctx context.Context, req domain.GenerateMealPlanRequest) (domain.GeneratedMealPlanResponse, error) {
	days := req.Days
	if days == 0 {
		days = 7
	}
	if days < 0 {
		return domain.GeneratedMealPlanResponse{}, domain.ErrInvalidPlanDays
	}

	ingredients, err := s.resolveIngredients(ctx, req.Ingredients)
	if err != nil {
		return domain.GeneratedMealPlanResponse{}, err
	}

	plan := s.generateMealPlanWithModel(ctx, ingredients, days, req)

	for _, day := range plan.Days {
		for mealType, recipeName := range day.Meals {
			if recipeName == "" {
				continue
			}
			_, err := s.mealPlanService.AddMealPlan(ctx, domain.AddMealPlanRequest{
				Date:       day.Date,
				MealType:   mealType,
				RecipeName: recipeName,
			})
			if err != nil {
				return domain.GeneratedMealPlanResponse{}, err
			}
		}
	}

	responseDays := make([]domain.MealPlanDayResponse, 0, len(plan.Days))
	for _, day := range plan.Days {
		responseDays = append(responseDays, domain.MealPlanDayResponse{
			Day:   day.Day,
			Date:  day.Date,
			Meals: day.Meals,
		})
	}
	return domain.GeneratedMealPlanResponse{
		Days:         responseDays,
		ShoppingList: plan.ShoppingList,
	}, nil
}

// resolveIngredients falls back to the pantry contents when the request
// does not name ingredients explicitly.
func (s *chefService) resolveIngredients(ctx context.Context, requested []string) ([]string, error) {
	if len(requested) > 0 {
		return requested, nil
	}
	items, err := s.pantryRepository.GetPantryItems(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
	}
	if len(names) == 0 {
		return nil, domain.ErrNoIngredients
	}
	return names, nil
}

func (s *chefService) generateRecipesWithModel(ctx context.Context, ingredients []string, req domain.GenerateRecipesRequest) []generatedRecipe {
	if s.llm == nil {
		return mockRecipes(ingredients)
	}

	prompt := buildRecipePrompt(ingredients, req)
	raw, err := llms.GenerateFromSinglePrompt(ctx, s.llm, prompt, llms.WithTemperature(0.7))
	if err != nil {
		log.Printf("recipe generation failed, using canned recipes: %v", err)
		return mockRecipes(ingredients)
	}

	recipes, err := parseRecipesResponse(raw)
	if err != nil {
		log.Printf("unparseable recipe response, using canned recipes: %v", err)
		return mockRecipes(ingredients)
	}
	return recipes
}

func (s *chefService) generateMealPlanWithModel(ctx context.Context, ingredients []string, days int, req domain.GenerateMealPlanRequest) generatedMealPlan {
	if s.llm == nil {
		return mockMealPlan(days)
	}

	prompt := buildMealPlanPrompt(ingredients, days, req)
	raw, err := llms.GenerateFromSinglePrompt(ctx, s.llm, prompt, llms.WithTemperature(0.7))
	if err != nil {
		log.Printf("meal plan generation failed, using canned plan: %v", err)
		return mockMealPlan(days)
	}

	plan, err := parseMealPlanResponse(raw)
	if err != nil || len(plan.Days) == 0 {
		log.Printf("unparseable meal plan response, using canned plan: %v", err)
		return mockMealPlan(days)
	}
	return plan
}

func buildRecipePrompt(ingredients []string, req domain.GenerateRecipesRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are a professional chef. Create 3 detailed recipes using primarily these ingredients: %s.\n\n", strings.Join(ingredients, ", "))
	b.WriteString("Respond ONLY with a JSON array of recipe objects, each with fields: ")
	b.WriteString(`"name", "description", "ingredients" (array of {"name","amount","unit"}), "instructions" (array of strings), "cookTime" (minutes), "servings", "difficulty" (Easy, Medium or Hard), "category".`)
	if len(req.Dietary) > 0 {
		fmt.Fprintf(&b, "\nFollow these dietary restrictions: %s.", strings.Join(req.Dietary, ", "))
	}
	if req.CookTime > 0 {
		fmt.Fprintf(&b, "\nRecipes should take no more than %d minutes.", req.CookTime)
	}
	if req.Difficulty != "" {
		fmt.Fprintf(&b, "\nDifficulty level: %s.", req.Difficulty)
	}
	if req.Cuisine != "" {
		fmt.Fprintf(&b, "\nCuisine style: %s.", req.Cuisine)
	}
	if req.Servings > 0 {
		fmt.Fprintf(&b, "\nEach recipe should serve %d people.", req.Servings)
	}
	return b.String()
}

func buildMealPlanPrompt(ingredients []string, days int, req domain.GenerateMealPlanRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are a nutritionist. Create a %d-day meal plan using primarily these ingredients: %s.\n\n", days, strings.Join(ingredients, ", "))
	b.WriteString("Respond ONLY with a JSON object with fields: ")
	b.WriteString(`"days" (array of {"day","date" (YYYY-MM-DD, starting today),"meals" (object keyed by breakfast/lunch/dinner/snack with recipe names)}) and "shoppingList" (array of strings).`)
	if req.MealsPerDay > 0 {
		fmt.Fprintf(&b, "\nPlan %d meals per day.", req.MealsPerDay)
	}
	if len(req.Dietary) > 0 {
		fmt.Fprintf(&b, "\nFollow these dietary restrictions: %s.", strings.Join(req.Dietary, ", "))
	}
	if req.Budget != "" {
		fmt.Fprintf(&b, "\nKeep to a %s budget.", req.Budget)
	}
	return b.String()
}

var (
	jsonArrayPattern  = regexp.MustCompile(`(?s)\[.*\]`)
	jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)
)

// stripFences removes markdown code fences models like to wrap JSON in.
func stripFences(raw string) string {
	text := strings.TrimSpace(raw)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

func parseRecipesResponse(raw string) ([]generatedRecipe, error) {
	text := stripFences(raw)
	if match := jsonArrayPattern.FindString(text); match != "" {
		text = match
	}

	var recipes []generatedRecipe
	if err := json.Unmarshal([]byte(text), &recipes); err != nil {
		return nil, fmt.Errorf("parse recipes: %w", err)
	}

	for i := range recipes {
		sanitizeRecipe(&recipes[i])
	}
	return recipes, nil
}

func parseMealPlanResponse(raw string) (generatedMealPlan, error) {
	text := stripFences(raw)
	if match := jsonObjectPattern.FindString(text); match != "" {
		text = match
	}

	var plan generatedMealPlan
	if err := json.Unmarshal([]byte(text), &plan); err != nil {
		return generatedMealPlan{}, fmt.Errorf("parse meal plan: %w", err)
	}
	return sanitizeMealPlan(plan), nil
}

// sanitizeMealPlan keeps model output inside the bounds the persistence
// layer validates: meal keys are lowercased, unknown slots and days with
// unparseable dates are dropped. A plan with no surviving days triggers
// the canned fallback upstream.
func sanitizeMealPlan(plan generatedMealPlan) generatedMealPlan {
	days := make([]generatedMealPlanDay, 0, len(plan.Days))
	for _, day := range plan.Days {
		if _, err := time.Parse(dateLayout, day.Date); err != nil {
			continue
		}
		meals := make(map[string]string, len(day.Meals))
		for slot, recipeName := range day.Meals {
			switch slot = strings.ToLower(strings.TrimSpace(slot)); slot {
			case entities.MealTypeBreakfast, entities.MealTypeLunch, entities.MealTypeDinner, entities.MealTypeSnack:
				meals[slot] = recipeName
			}
		}
		if len(meals) == 0 {
			continue
		}
		day.Meals = meals
		days = append(days, day)
	}
	plan.Days = days
	return plan
}

// sanitizeRecipe keeps model output inside the bounds the persistence
// layer validates.
func sanitizeRecipe(r *generatedRecipe) {
	switch r.Difficulty {
	case entities.DifficultyEasy, entities.DifficultyMedium, entities.DifficultyHard:
	default:
		r.Difficulty = entities.DifficultyMedium
	}
	if r.CookTime <= 0 {
		r.CookTime = 30
	}
	if r.Servings <= 0 {
		r.Servings = 4
	}
	if r.Category == "" {
		r.Category = "Main Dish"
	}
}

func toIngredientRequests(ingredients []entities.Ingredient) []domain.RecipeIngredientRequest {
	requests := make([]domain.RecipeIngredientRequest, 0, len(ingredients))
	for _, ing := range ingredients {
		requests = append(requests, domain.RecipeIngredientRequest{
			Name:   ing.Name,
			Amount: ing.Amount,
			Unit:   ing.Unit,
		})
	}
	return requests
}

func mockRecipes(ingredients []string) []generatedRecipe {
	main := "pantry items"
	if len(ingredients) > 0 {
		main = ingredients[0]
	}

	return []generatedRecipe{
		{
			Name:        fmt.Sprintf("Pantry %s Special", main),
			Description: fmt.Sprintf("A simple dish that makes the most of %s.", main),
			Ingredients: []entities.Ingredient{
				{Name: main, Amount: "2", Unit: "cups"},
				{Name: "Olive oil", Amount: "2", Unit: "tbsp"},
				{Name: "Salt", Amount: "1", Unit: "tsp"},
				{Name: "Black pepper", Amount: "1/2", Unit: "tsp"},
				{Name: "Garlic", Amount: "2", Unit: "cloves"},
			},
			Instructions: []string{
				"Prepare all ingredients and wash them thoroughly.",
				"Heat olive oil in a large pan over medium heat.",
				"Add garlic and cook until fragrant, about 1 minute.",
				fmt.Sprintf("Add %s and cook for 5-7 minutes.", main),
				"Season with salt and pepper to taste.",
				"Cook for an additional 10-15 minutes until tender.",
				"Serve hot.",
			},
			CookTime:   25,
			Servings:   4,
			Difficulty: entities.DifficultyEasy,
			Category:   "Main Dish",
		},
	}
}

func mockMealPlan(days int) generatedMealPlan {
	start := time.Now().UTC()
	planDays := make([]generatedMealPlanDay, 0, days)
	for i := 0; i < days; i++ {
		date := start.AddDate(0, 0, i)
		planDays = append(planDays, generatedMealPlanDay{
			Day:  i + 1,
			Date: date.Format(dateLayout),
			Meals: map[string]string{
				entities.MealTypeBreakfast: fmt.Sprintf("Breakfast Bowl Day %d", i+1),
				entities.MealTypeLunch:     "Pantry Lunch Special",
				entities.MealTypeDinner:    "Weeknight Dinner",
			},
		})
	}
	return generatedMealPlan{
		Days: planDays,
		ShoppingList: []string{
			"Fresh herbs",
			"Seasonal vegetables",
			"Whole grains",
			"Cooking oil",
		},
	}
}
