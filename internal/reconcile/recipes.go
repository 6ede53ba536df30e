package reconcile

import (
	"encoding/json"
	"strings"
	"sync"

	"calorie-service/internal/catalog"
	"calorie-service/internal/model"
	"calorie-service/pkg/kvstore"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RecipeService reconciles catalog recipes with user overrides and deletion
// markers. Recipe persistence is structurally simpler than products and
// skips the migration engine: an undecodable stored list degrades to empty.
type RecipeService struct {
	mu    sync.Mutex
	store kvstore.Store
	log   *zap.Logger
}

// NewRecipeService creates a recipe reconciliation service over the store
func NewRecipeService(store kvstore.Store, log *zap.Logger) *RecipeService {
	if log == nil {
		log = zap.NewNop()
	}
	return &RecipeService{store: store, log: log}
}

// IsUserCreated reports whether id has no catalog origin
func (s *RecipeService) IsUserCreated(id string) bool {
	return !catalog.HasRecipe(id)
}

// List merges catalog recipes with override substitutions and appends
// user-created recipes, in catalog order then user-created order
func (s *RecipeService) List(includeDeleted bool) []model.Recipe {
	s.mu.Lock()
	defer s.mu.Unlock()

	overrides := s.loadUserRecipes()
	deleted := readIDList(s.store, keyDeletedRecipes, s.log)

	overrideByID := make(map[string]model.Recipe, len(overrides))
	userCreated := make([]model.Recipe, 0, len(overrides))
	for _, r := range overrides {
		if catalog.HasRecipe(r.ID) {
			overrideByID[r.ID] = r
		} else {
			userCreated = append(userCreated, r)
		}
	}

	result := make([]model.Recipe, 0, len(catalog.Recipes)+len(userCreated))
	for _, r := range catalog.Recipes {
		isDeleted := containsID(deleted, r.ID)
		if isDeleted && !includeDeleted {
			continue
		}
		if override, ok := overrideByID[r.ID]; ok {
			r = override
		}
		r.IsDeleted = isDeleted && includeDeleted
		result = append(result, r)
	}
	return append(result, userCreated...)
}

// Get returns the current visible recipe with the given id
func (s *RecipeService) Get(id string) (model.Recipe, bool) {
	for _, r := range s.List(false) {
		if r.ID == id {
			return r, true
		}
	}
	return model.Recipe{}, false
}

// GetOriginal returns the pristine catalog recipe for id, or false for
// user-created ids
func (s *RecipeService) GetOriginal(id string) (model.Recipe, bool) {
	return catalog.RecipeByID(id)
}

// IsModified reports whether a catalog recipe has a pending user override
func (s *RecipeService) IsModified(id string) bool {
	if s.IsUserCreated(id) {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.loadUserRecipes() {
		if r.ID == id {
			return true
		}
	}
	return false
}

// Search returns visible recipes whose name or description contains the
// query, case-insensitively
func (s *RecipeService) Search(query string) []model.Recipe {
	query = strings.ToLower(query)
	matched := make([]model.Recipe, 0)
	for _, r := range s.List(false) {
		if strings.Contains(strings.ToLower(r.Name), query) ||
			strings.Contains(strings.ToLower(r.Description), query) {
			matched = append(matched, r)
		}
	}
	return matched
}

// Create stores a new user recipe under a freshly generated id. Returns nil
// when the storage write fails.
func (s *RecipeService) Create(data model.Recipe) *model.Recipe {
	s.mu.Lock()
	defer s.mu.Unlock()

	overrides := s.loadUserRecipes()
	data.ID = uuid.NewString()
	data.IsDeleted = false
	if data.Ingredients == nil {
		data.Ingredients = []model.RecipeIngredient{}
	}

	overrides = append(overrides, data)
	if err := writeJSON(s.store, keyUserRecipes, overrides); err != nil {
		s.log.Error("Failed to save new recipe", zap.Error(err))
		return nil
	}
	return &data
}

// Update replaces the override record for id, inserting one on the first
// edit of a catalog recipe. Returns nil for unknown user-created ids and on
// storage write failure.
func (s *RecipeService) Update(id string, data model.Recipe) *model.Recipe {
	s.mu.Lock()
	defer s.mu.Unlock()

	overrides := s.loadUserRecipes()
	data.ID = id
	data.IsDeleted = false
	if data.Ingredients == nil {
		data.Ingredients = []model.RecipeIngredient{}
	}

	index := -1
	for i := range overrides {
		if overrides[i].ID == id {
			index = i
			break
		}
	}

	if index == -1 {
		if s.IsUserCreated(id) {
			s.log.Warn("Update for unknown recipe id", zap.String("recipe_id", id))
			return nil
		}
		overrides = append(overrides, data)
	} else {
		overrides[index] = data
	}

	if err := writeJSON(s.store, keyUserRecipes, overrides); err != nil {
		s.log.Error("Failed to save updated recipe",
			zap.String("recipe_id", id),
			zap.Error(err))
		return nil
	}
	return &data
}

// Delete hides a catalog recipe behind a deletion marker, keeping any
// override record for a later restore. A user-created recipe is removed
// physically. Idempotent for catalog ids.
func (s *RecipeService) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.IsUserCreated(id) {
		deleted := readIDList(s.store, keyDeletedRecipes, s.log)
		if containsID(deleted, id) {
			return true
		}
		deleted = append(deleted, id)
		if err := writeJSON(s.store, keyDeletedRecipes, deleted); err != nil {
			s.log.Error("Failed to mark recipe deleted",
				zap.String("recipe_id", id),
				zap.Error(err))
			return false
		}
		return true
	}

	overrides := s.loadUserRecipes()
	filtered := make([]model.Recipe, 0, len(overrides))
	for _, r := range overrides {
		if r.ID != id {
			filtered = append(filtered, r)
		}
	}
	if err := writeJSON(s.store, keyUserRecipes, filtered); err != nil {
		s.log.Error("Failed to delete recipe",
			zap.String("recipe_id", id),
			zap.Error(err))
		return false
	}
	return true
}

// Reset removes the override record of a catalog recipe. Rejects
// user-created ids.
func (s *RecipeService) Reset(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.IsUserCreated(id) {
		s.log.Warn("Reset rejected for user-created recipe", zap.String("recipe_id", id))
		return false
	}

	overrides := s.loadUserRecipes()
	filtered := make([]model.Recipe, 0, len(overrides))
	for _, r := range overrides {
		if r.ID != id {
			filtered = append(filtered, r)
		}
	}
	if err := writeJSON(s.store, keyUserRecipes, filtered); err != nil {
		s.log.Error("Failed to reset recipe",
			zap.String("recipe_id", id),
			zap.Error(err))
		return false
	}
	return true
}

// Restore removes the deletion marker of a catalog recipe. Rejects
// user-created ids.
func (s *RecipeService) Restore(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.IsUserCreated(id) {
		s.log.Warn("Restore rejected for user-created recipe", zap.String("recipe_id", id))
		return false
	}

	deleted := readIDList(s.store, keyDeletedRecipes, s.log)
	filtered := removeID(deleted, id)
	if err := writeJSON(s.store, keyDeletedRecipes, filtered); err != nil {
		s.log.Error("Failed to restore recipe",
			zap.String("recipe_id", id),
			zap.Error(err))
		return false
	}
	return true
}

// DeletedCount returns the number of hidden catalog recipes
func (s *RecipeService) DeletedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(readIDList(s.store, keyDeletedRecipes, s.log))
}

// loadUserRecipes reads the override list; absent or undecodable storage
// yields an empty list
func (s *RecipeService) loadUserRecipes() []model.Recipe {
	data, ok := s.store.Read(keyUserRecipes)
	if !ok {
		return nil
	}
	var recipes []model.Recipe
	if err := json.Unmarshal(data, &recipes); err != nil {
		s.log.Warn("Corrupt recipe list in storage, treating as empty", zap.Error(err))
		return nil
	}
	return recipes
}
