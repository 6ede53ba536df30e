package reconcile

import (
	"testing"

	"calorie-service/internal/catalog"
	"calorie-service/internal/model"
	"calorie-service/pkg/kvstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newRecipeService() (*RecipeService, *kvstore.Memory) {
	store := kvstore.NewMemory()
	return NewRecipeService(store, zap.NewNop()), store
}

func TestRecipeListPristineCatalog(t *testing.T) {
	svc, _ := newRecipeService()

	result := svc.List(false)

	require.Len(t, result, len(catalog.Recipes))
	for i, r := range result {
		assert.Equal(t, catalog.Recipes[i].ID, r.ID)
		assert.False(t, r.IsDeleted)
		assert.False(t, svc.IsModified(r.ID))
	}
}

func TestRecipeUpdateCreatesOverride(t *testing.T) {
	svc, _ := newRecipeService()
	original := catalog.Recipes[0]

	modified := original
	modified.Name = "Мой вариант супа"
	updated := svc.Update(original.ID, modified)
	require.NotNil(t, updated)
	assert.True(t, svc.IsModified(original.ID))

	current, ok := svc.Get(original.ID)
	require.True(t, ok)
	assert.Equal(t, "Мой вариант супа", current.Name)

	pristine, ok := svc.GetOriginal(original.ID)
	require.True(t, ok)
	assert.Equal(t, original.Name, pristine.Name)
}

func TestRecipeCreateGeneratesID(t *testing.T) {
	svc, _ := newRecipeService()

	created := svc.Create(model.Recipe{
		ID:   "caller-supplied-id",
		Name: "Омлет",
		Ingredients: []model.RecipeIngredient{
			{ProductID: catalog.Products[24].ID, Amount: 2, Unit: model.PieceMedium},
		},
	})
	require.NotNil(t, created)
	assert.NotEqual(t, "caller-supplied-id", created.ID)
	assert.True(t, svc.IsUserCreated(created.ID))

	list := svc.List(false)
	assert.Equal(t, created.ID, list[len(list)-1].ID)
}

func TestRecipeDeleteAndRestore(t *testing.T) {
	svc, _ := newRecipeService()
	target := catalog.Recipes[1]

	require.True(t, svc.Delete(target.ID))
	_, ok := svc.Get(target.ID)
	assert.False(t, ok)
	assert.Equal(t, 1, svc.DeletedCount())

	require.True(t, svc.Restore(target.ID))
	_, ok = svc.Get(target.ID)
	assert.True(t, ok)
	assert.Equal(t, 0, svc.DeletedCount())
}

func TestRecipeResetAndRestoreRejectUserCreated(t *testing.T) {
	svc, _ := newRecipeService()

	created := svc.Create(model.Recipe{Name: "Своё блюдо"})
	require.NotNil(t, created)

	assert.False(t, svc.Reset(created.ID))
	assert.False(t, svc.Restore(created.ID))

	// Delete of a user-created recipe is permanent
	require.True(t, svc.Delete(created.ID))
	_, ok := svc.Get(created.ID)
	assert.False(t, ok)
}

func TestRecipeSearchMatchesDescription(t *testing.T) {
	svc, _ := newRecipeService()

	created := svc.Create(model.Recipe{
		Name:        "Паста",
		Description: "очень сытное блюдо на ужин",
	})
	require.NotNil(t, created)

	matched := svc.Search("сытное")
	require.Len(t, matched, 1)
	assert.Equal(t, created.ID, matched[0].ID)
}

func TestRecipeCorruptStorageDegradesToEmpty(t *testing.T) {
	svc, store := newRecipeService()
	require.NoError(t, store.Write(keyUserRecipes, []byte("{broken")))

	result := svc.List(false)
	assert.Len(t, result, len(catalog.Recipes))
}

func TestRecipeWriteFailures(t *testing.T) {
	svc, store := newRecipeService()
	store.FailWrites = true

	assert.Nil(t, svc.Create(model.Recipe{Name: "Не сохранится"}))
	assert.Nil(t, svc.Update(catalog.Recipes[0].ID, catalog.Recipes[0]))
	assert.False(t, svc.Delete(catalog.Recipes[0].ID))
}
