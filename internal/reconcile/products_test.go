package reconcile

import (
	"encoding/json"
	"os"
	"testing"

	"calorie-service/internal/catalog"
	"calorie-service/internal/model"
	"calorie-service/pkg/config"
	"calorie-service/pkg/kvstore"
	"calorie-service/prometheus"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	prometheus.InitMetrics(&config.Config{
		Metrics: config.MetricsConfig{Prefix: "calorie_service_test"},
	})
	os.Exit(m.Run())
}

func newProductService() (*ProductService, *kvstore.Memory) {
	store := kvstore.NewMemory()
	return NewProductService(store, zap.NewNop()), store
}

func TestProductListPristineCatalog(t *testing.T) {
	svc, _ := newProductService()

	result := svc.List(false)

	require.Len(t, result, len(catalog.Products))
	for i, p := range result {
		assert.Equal(t, catalog.Products[i].ID, p.ID)
		assert.False(t, p.IsDeleted)
	}
}

func TestProductUpdateCreatesOverride(t *testing.T) {
	svc, _ := newProductService()
	original := catalog.Products[0]

	modified := original
	modified.Calories = original.Calories + 100
	updated := svc.Update(original.ID, modified)
	require.NotNil(t, updated)

	current, ok := svc.Get(original.ID)
	require.True(t, ok)
	assert.Equal(t, original.Calories+100, current.Calories)

	// The catalog original is untouched
	pristine, ok := svc.GetOriginal(original.ID)
	require.True(t, ok)
	assert.Equal(t, original.Calories, pristine.Calories)

	// Catalog position is preserved
	assert.Equal(t, original.ID, svc.List(false)[0].ID)
}

func TestProductUpdateUnknownIDRejected(t *testing.T) {
	svc, _ := newProductService()

	updated := svc.Update("00000000-0000-4000-8000-000000000000", model.Product{Name: "Призрак"})
	assert.Nil(t, updated)
}

func TestProductCreateGeneratesID(t *testing.T) {
	svc, _ := newProductService()

	created := svc.Create(model.Product{
		ID:       "caller-supplied-id",
		Name:     "Домашний йогурт",
		Category: model.CategoryDairy,
		Calories: 60,
	})
	require.NotNil(t, created)
	assert.NotEqual(t, "caller-supplied-id", created.ID)
	assert.True(t, svc.IsUserCreated(created.ID))
	assert.NotNil(t, created.MeasurementUnits)

	// User-created items come after the catalog
	list := svc.List(false)
	assert.Equal(t, created.ID, list[len(list)-1].ID)
}

func TestProductDeleteAndRestoreCatalog(t *testing.T) {
	svc, _ := newProductService()
	target := catalog.Products[2]

	modified := target
	modified.Name = "Переименованный"
	require.NotNil(t, svc.Update(target.ID, modified))

	require.True(t, svc.Delete(target.ID))
	_, ok := svc.Get(target.ID)
	assert.False(t, ok)
	assert.Equal(t, 1, svc.DeletedCount())

	// Visible and flagged when deleted entries are requested
	found := false
	for _, p := range svc.List(true) {
		if p.ID == target.ID {
			found = true
			assert.True(t, p.IsDeleted)
			assert.Equal(t, "Переименованный", p.Name)
		}
	}
	assert.True(t, found)

	// Delete is idempotent for catalog ids
	require.True(t, svc.Delete(target.ID))
	assert.Equal(t, 1, svc.DeletedCount())

	// Restore brings back the override, not the original
	require.True(t, svc.Restore(target.ID))
	current, ok := svc.Get(target.ID)
	require.True(t, ok)
	assert.Equal(t, "Переименованный", current.Name)
	assert.Equal(t, 0, svc.DeletedCount())
}

func TestProductDeleteUserCreatedIsPhysical(t *testing.T) {
	svc, _ := newProductService()

	created := svc.Create(model.Product{Name: "Временный", Category: model.CategoryUncategorized})
	require.NotNil(t, created)

	require.True(t, svc.Delete(created.ID))
	_, ok := svc.Get(created.ID)
	assert.False(t, ok)
	assert.Equal(t, 0, svc.DeletedCount())

	// Nothing to restore
	assert.False(t, svc.Restore(created.ID))
}

func TestProductResetReturnsCatalogValues(t *testing.T) {
	svc, _ := newProductService()
	original := catalog.Products[1]

	modified := original
	modified.Protein = original.Protein + 5
	require.NotNil(t, svc.Update(original.ID, modified))

	require.True(t, svc.Reset(original.ID))
	current, ok := svc.Get(original.ID)
	require.True(t, ok)
	assert.Equal(t, original.Protein, current.Protein)

	// Reset with no override is still a success
	assert.True(t, svc.Reset(original.ID))
}

func TestProductResetRejectsUserCreated(t *testing.T) {
	svc, _ := newProductService()

	created := svc.Create(model.Product{Name: "Свой продукт", Category: model.CategoryUncategorized})
	require.NotNil(t, created)

	assert.False(t, svc.Reset(created.ID))
	_, ok := svc.Get(created.ID)
	assert.True(t, ok)
}

func TestProductWriteFailures(t *testing.T) {
	svc, store := newProductService()
	store.FailWrites = true

	assert.Nil(t, svc.Create(model.Product{Name: "Не сохранится"}))
	assert.Nil(t, svc.Update(catalog.Products[0].ID, catalog.Products[0]))
	assert.False(t, svc.Delete(catalog.Products[0].ID))
	assert.False(t, svc.Reset(catalog.Products[0].ID))
	assert.False(t, svc.Restore(catalog.Products[0].ID))
}

func TestProductSearch(t *testing.T) {
	svc, _ := newProductService()

	created := svc.Create(model.Product{Name: "Уникальнейший продукт", Category: model.CategoryUncategorized})
	require.NotNil(t, created)

	matched := svc.Search("уникальнейший")
	require.Len(t, matched, 1)
	assert.Equal(t, created.ID, matched[0].ID)

	assert.Empty(t, svc.Search("такого точно нет"))
}

func TestProductLoadRepairsCorruptData(t *testing.T) {
	svc, store := newProductService()
	require.NoError(t, store.Write(keyUserProducts, []byte(`[{"id":"bad","calories":"x"}]`)))

	list := svc.List(false)
	assert.Len(t, list, len(catalog.Products)+1)

	// The repaired list was persisted
	data, ok := store.Read(keyUserProducts)
	require.True(t, ok)
	var persisted []model.Product
	require.NoError(t, json.Unmarshal(data, &persisted))
	require.Len(t, persisted, 1)
	assert.NotEqual(t, "bad", persisted[0].ID)

	// And a report is pending until acknowledged
	report, ok := svc.MigrationReport()
	require.True(t, ok)
	assert.Contains(t, report.Report, "Обнаружено и исправлено проблем")
	assert.False(t, report.Timestamp.IsZero())

	svc.ClearMigrationReport()
	_, ok = svc.MigrationReport()
	assert.False(t, ok)
}

func TestProductStaleDeletionMarkersCleaned(t *testing.T) {
	svc, store := newProductService()
	stale := []string{catalog.Products[0].ID, "11111111-1111-4111-8111-111111111111"}
	data, err := json.Marshal(stale)
	require.NoError(t, err)
	require.NoError(t, store.Write(keyDeletedProducts, data))

	svc.List(false)

	assert.Equal(t, 1, svc.DeletedCount())
}
