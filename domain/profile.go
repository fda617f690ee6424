package domain

var (
	MessageSuccessGetProfile = "profile retrieved successfully"
	MessageFailedGetProfile  = "failed to retrieve profile"
)

type (
	Achievement struct {
		ID          string `json:"id"`
		Title       string `json:"title"`
		Description string `json:"description"`
		Rarity      string `json:"rarity"`
		Unlocked    bool   `json:"unlocked"`
	}

	ProfileResponse struct {
		Level          int           `json:"level"`
		XP             int64         `json:"xp"`
		NextLevelXP    int64         `json:"next_level_xp"`
		TotalItems     int64         `json:"total_items"`
		TotalRecipes   int64         `json:"total_recipes"`
		CompletedMeals int64         `json:"completed_meals"`
		Achievements   []Achievement `json:"achievements"`
	}
)
