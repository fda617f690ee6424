package recipe

import (
	"context"
	"sort"

	"pixelpantry/entities"
	"pixelpantry/internal/flatstore"
)

type recipeFlatRepository struct {
	store *flatstore.Store
}

func NewRecipeFlatRepository(store *flatstore.Store) RecipeRepository {
	return &recipeFlatRepository{store: store}
}

func (r *recipeFlatRepository) readAll() ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.store.Read(flatstore.ListRecipes, &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeFlatRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	recipes, err := r.readAll()
	if err != nil {
		return err
	}
	id, err := r.store.NextID()
	if err != nil {
		return err
	}
	recipe.ID = id
	recipes = append(recipes, recipe)
	return r.store.Write(flatstore.ListRecipes, recipes)
}

func (r *recipeFlatRepository) GetRecipes(ctx context.Context) ([]*entities.Recipe, error) {
	recipes, err := r.readAll()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(recipes, func(i, j int) bool {
		if !recipes[i].CreatedDate.Equal(recipes[j].CreatedDate) {
			return recipes[i].CreatedDate.After(recipes[j].CreatedDate)
		}
		return recipes[i].ID > recipes[j].ID
	})
	return recipes, nil
}

func (r *recipeFlatRepository) CountRecipes(ctx context.Context) (int64, error) {
	recipes, err := r.readAll()
	if err != nil {
		return 0, err
	}
	return int64(len(recipes)), nil
}
