package pantry

import (
	"context"
	"time"

	"pixelpantry/domain"
	"pixelpantry/entities"
	"pixelpantry/pkg/recipe"
)

const (
	defaultUnit     = "pieces"
	defaultCategory = "Other"

	// DefaultExpiryWindowDays is the window used by stats and by expiring
	// queries when the caller does not give one.
	DefaultExpiryWindowDays = 7

	dateLayout = "2006-01-02"
)

type (
	PantryService interface {
		AddPantryItem(ctx context.Context, req domain.AddPantryItemRequest) (domain.PantryItemResponse, error)
		GetPantryItems(ctx context.Context) ([]domain.PantryItemResponse, error)
		UpdatePantryItem(ctx context.Context, id int64, req domain.UpdatePantryItemRequest) error
		DeletePantryItem(ctx context.Context, id int64) error
		GetItemsByCategory(ctx context.Context, category string) ([]domain.PantryItemResponse, error)
		GetExpiringItems(ctx context.Context, days int) ([]domain.PantryItemResponse, error)
		SearchItems(ctx context.Context, query string) ([]domain.PantryItemResponse, error)
		GetStats(ctx context.Context) (domain.PantryStatsResponse, error)
	}

	pantryService struct {
		pantryRepository PantryRepository
		recipeRepository recipe.RecipeRepository
	}
)

func NewPantryService(pantryRepository PantryRepository, recipeRepository recipe.RecipeRepository) PantryService {
	return &pantryService{
		pantryRepository: pantryRepository,
		recipeRepository: recipeRepository,
	}
}

func (s *pantryService) AddPantryItem(ctx context.Context, req domain.AddPantryItemRequest) (domain.PantryItemResponse, error) {
	if req.Quantity < 0 {
		return domain.PantryItemResponse{}, domain.ErrInvalidQuantity
	}
	if req.Confidence != nil && (*req.Confidence < 0 || *req.Confidence > 1) {
		return domain.PantryItemResponse{}, domain.ErrInvalidConfidence
	}

	var expiryDate *time.Time
	if req.ExpiryDate != "" {
		parsed, err := time.Parse(dateLayout, req.ExpiryDate)
		if err != nil {
			return domain.PantryItemResponse{}, domain.ErrInvalidExpiryDate
		}
		expiryDate = &parsed
	}

	unit := req.Unit
	if unit == "" {
		unit = defaultUnit
	}
	category := req.Category
	if category == "" {
		category = defaultCategory
	}

	item := &entities.PantryItem{
		Name:       req.Name,
		Quantity:   req.Quantity,
		Unit:       unit,
		Category:   category,
		ExpiryDate: expiryDate,
		AddedDate:  time.Now().UTC(),
		Confidence: req.Confidence,
		ImageURL:   req.ImageURL,
	}

	if err := s.pantryRepository.AddPantryItem(ctx, item); err != nil {
		return domain.PantryItemResponse{}, err
	}

	return toPantryItemResponse(item), nil
}

func (s *pantryService) GetPantryItems(ctx context.Context) ([]domain.PantryItemResponse, error) {
	items, err := s.pantryRepository.GetPantryItems(ctx)
	if err != nil {
		return nil, err
	}
	return toPantryItemResponses(items), nil
}

// UpdatePantryItem overwrites the provided fields only. The id and added
// date are immutable; an unknown id is a no-op.
func (s *pantryService) UpdatePantryItem(ctx context.Context, id int64, req domain.UpdatePantryItemRequest) error {
	updates := make(map[string]interface{})

	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Quantity != nil {
		if *req.Quantity < 0 {
			return domain.ErrInvalidQuantity
		}
		updates["quantity"] = *req.Quantity
	}
	if req.Unit != nil {
		updates["unit"] = *req.Unit
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.ExpiryDate != nil {
		parsed, err := time.Parse(dateLayout, *req.ExpiryDate)
		if err != nil {
			return domain.ErrInvalidExpiryDate
		}
		updates["expiry_date"] = parsed
	}
	if req.Confidence != nil {
		if *req.Confidence < 0 || *req.Confidence > 1 {
			return domain.ErrInvalidConfidence
		}
		updates["confidence"] = *req.Confidence
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}

	if len(updates) == 0 {
		return domain.ErrEmptyUpdate
	}

	return s.pantryRepository.UpdatePantryItem(ctx, id, updates)
}

func (s *pantryService) DeletePantryItem(ctx context.Context, id int64) error {
	return s.pantryRepository.DeletePantryItem(ctx, id)
}

func (s *pantryService) GetItemsByCategory(ctx context.Context, category string) ([]domain.PantryItemResponse, error) {
	items, err := s.pantryRepository.GetItemsByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	return toPantryItemResponses(items), nil
}

func (s *pantryService) GetExpiringItems(ctx context.Context, days int) ([]domain.PantryItemResponse, error) {
	if days < 0 {
		return nil, domain.ErrInvalidExpiryDays
	}
	items, err := s.pantryRepository.GetExpiringItems(ctx, expiryCutoff(days))
	if err != nil {
		return nil, err
	}
	return toPantryItemResponses(items), nil
}

func (s *pantryService) SearchItems(ctx context.Context, query string) ([]domain.PantryItemResponse, error) {
	items, err := s.pantryRepository.SearchItems(ctx, query)
	if err != nil {
		return nil, err
	}
	return toPantryItemResponses(items), nil
}

func (s *pantryService) GetStats(ctx context.Context) (domain.PantryStatsResponse, error) {
	totalItems, err := s.pantryRepository.CountItems(ctx)
	if err != nil {
		return domain.PantryStatsResponse{}, err
	}

	totalRecipes, err := s.recipeRepository.CountRecipes(ctx)
	if err != nil {
		return domain.PantryStatsResponse{}, err
	}

	expiring, err := s.pantryRepository.GetExpiringItems(ctx, expiryCutoff(DefaultExpiryWindowDays))
	if err != nil {
		return domain.PantryStatsResponse{}, err
	}

	categoryCounts, err := s.pantryRepository.CountItemsByCategory(ctx)
	if err != nil {
		return domain.PantryStatsResponse{}, err
	}

	return domain.PantryStatsResponse{
		TotalItems:     totalItems,
		TotalRecipes:   totalRecipes,
		ExpiringItems:  int64(len(expiring)),
		CategoryCounts: categoryCounts,
	}, nil
}

// expiryCutoff is the last calendar day still considered "expiring":
// today plus the window, at date granularity.
func expiryCutoff(days int) time.Time {
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return today.AddDate(0, 0, days)
}

func toPantryItemResponse(item *entities.PantryItem) domain.PantryItemResponse {
	res := domain.PantryItemResponse{
		ID:         item.ID,
		Name:       item.Name,
		Quantity:   item.Quantity,
		Unit:       item.Unit,
		Category:   item.Category,
		AddedDate:  item.AddedDate,
		Confidence: item.Confidence,
		ImageURL:   item.ImageURL,
	}
	if item.ExpiryDate != nil {
		res.ExpiryDate = item.ExpiryDate.Format(dateLayout)
	}
	return res
}

func toPantryItemResponses(items []*entities.PantryItem) []domain.PantryItemResponse {
	responses := make([]domain.PantryItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, toPantryItemResponse(item))
	}
	return responses
}
