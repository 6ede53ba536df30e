package reconcile

import (
	"encoding/json"
	"strings"
	"sync"
	"time"

	"calorie-service/internal/catalog"
	"calorie-service/internal/migrate"
	"calorie-service/internal/model"
	"calorie-service/pkg/kvstore"
	"calorie-service/prometheus"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MigrationReport is the persisted record of the last load that repaired
// data, kept only until the user has seen it
type MigrationReport struct {
	Timestamp time.Time `json:"timestamp"`
	Report    string    `json:"report"`
}

// ProductService reconciles catalog products with user overrides and
// deletion markers. Every load runs the stored override list through the
// migration engine, so the rest of the service only ever sees valid records.
//
// Read-modify-write sequences are serialized by a mutex within one process;
// across processes sharing a store backend, writes are last-write-wins.
type ProductService struct {
	mu    sync.Mutex
	store kvstore.Store
	log   *zap.Logger
}

// NewProductService creates a product reconciliation service over the store
func NewProductService(store kvstore.Store, log *zap.Logger) *ProductService {
	if log == nil {
		log = zap.NewNop()
	}
	return &ProductService{store: store, log: log}
}

// IsUserCreated reports whether id has no catalog origin
func (s *ProductService) IsUserCreated(id string) bool {
	return !catalog.HasProduct(id)
}

// List merges catalog entries with override substitutions and appends
// user-created products. Catalog order comes first, then user-created order.
// Deleted catalog entries are excluded unless includeDeleted is set, in which
// case they appear flagged, rendered with their override values if any.
func (s *ProductService) List(includeDeleted bool) []model.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list(includeDeleted)
}

func (s *ProductService) list(includeDeleted bool) []model.Product {
	overrides := s.loadUserProducts()
	deleted := readIDList(s.store, keyDeletedProducts, s.log)

	overrideByID := make(map[string]model.Product, len(overrides))
	userCreated := make([]model.Product, 0, len(overrides))
	for _, p := range overrides {
		if catalog.HasProduct(p.ID) {
			overrideByID[p.ID] = p
		} else {
			userCreated = append(userCreated, p)
		}
	}

	result := make([]model.Product, 0, len(catalog.Products)+len(userCreated))
	for _, p := range catalog.Products {
		isDeleted := containsID(deleted, p.ID)
		if isDeleted && !includeDeleted {
			continue
		}
		if override, ok := overrideByID[p.ID]; ok {
			p = override
		}
		p.IsDeleted = isDeleted && includeDeleted
		result = append(result, p)
	}
	return append(result, userCreated...)
}

// Get returns the current visible product with the given id
func (s *ProductService) Get(id string) (model.Product, bool) {
	for _, p := range s.List(false) {
		if p.ID == id {
			return p, true
		}
	}
	return model.Product{}, false
}

// GetOriginal returns the pristine catalog product for id, or false for
// user-created ids. Callers use it to diff an override against its origin.
func (s *ProductService) GetOriginal(id string) (model.Product, bool) {
	return catalog.ProductByID(id)
}

// Search returns visible products whose name contains the query,
// case-insensitively
func (s *ProductService) Search(query string) []model.Product {
	query = strings.ToLower(query)
	matched := make([]model.Product, 0)
	for _, p := range s.List(false) {
		if strings.Contains(strings.ToLower(p.Name), query) {
			matched = append(matched, p)
		}
	}
	return matched
}

// Create stores a new user product under a freshly generated id. Caller ids
// are never accepted, which keeps user ids disjoint from catalog ids.
// Returns nil when the storage write fails.
func (s *ProductService) Create(data model.Product) *model.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	overrides := s.loadUserProducts()
	data.ID = uuid.NewString()
	data.IsDeleted = false
	if data.MeasurementUnits == nil {
		data.MeasurementUnits = []model.MeasurementUnit{}
	}

	overrides = append(overrides, data)
	if err := writeJSON(s.store, keyUserProducts, overrides); err != nil {
		s.log.Error("Failed to save new product", zap.Error(err))
		return nil
	}
	return &data
}

// Update replaces the override record for id. For a catalog id with no
// override yet, the override is inserted. Returns nil for unknown
// user-created ids and on storage write failure.
func (s *ProductService) Update(id string, data model.Product) *model.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	overrides := s.loadUserProducts()
	data.ID = id
	data.IsDeleted = false
	if data.MeasurementUnits == nil {
		data.MeasurementUnits = []model.MeasurementUnit{}
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
			s.log.Warn("Update for unknown product id", zap.String("product_id", id))
			return nil
		}
		// First edit of a catalog product inserts its override record
		overrides = append(overrides, data)
	} else {
		overrides[index] = data
	}

	if err := writeJSON(s.store, keyUserProducts, overrides); err != nil {
		s.log.Error("Failed to save updated product",
			zap.String("product_id", id),
			zap.Error(err))
		return nil
	}
	return &data
}

// Delete hides a catalog product behind a deletion marker, leaving any
// override record intact for a later restore. A user-created product is
// removed physically, which is irreversible. Idempotent for catalog ids.
func (s *ProductService) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.IsUserCreated(id) {
		deleted := readIDList(s.store, keyDeletedProducts, s.log)
		if containsID(deleted, id) {
			return true
		}
		deleted = append(deleted, id)
		if err := writeJSON(s.store, keyDeletedProducts, deleted); err != nil {
			s.log.Error("Failed to mark product deleted",
				zap.String("product_id", id),
				zap.Error(err))
			return false
		}
		return true
	}

	overrides := s.loadUserProducts()
	filtered := make([]model.Product, 0, len(overrides))
	for _, p := range overrides {
		if p.ID != id {
			filtered = append(filtered, p)
		}
	}
	if err := writeJSON(s.store, keyUserProducts, filtered); err != nil {
		s.log.Error("Failed to delete product",
			zap.String("product_id", id),
			zap.Error(err))
		return false
	}
	return true
}

// Reset removes the override record of a catalog product, returning it to
// its original values. Succeeds even when no override exists. Rejects
// user-created ids, which have no original to return to.
func (s *ProductService) Reset(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.IsUserCreated(id) {
		s.log.Warn("Reset rejected for user-created product", zap.String("product_id", id))
		return false
	}

	overrides := s.loadUserProducts()
	filtered := make([]model.Product, 0, len(overrides))
	for _, p := range overrides {
		if p.ID != id {
			filtered = append(filtered, p)
		}
	}
	if err := writeJSON(s.store, keyUserProducts, filtered); err != nil {
		s.log.Error("Failed to reset product",
			zap.String("product_id", id),
			zap.Error(err))
		return false
	}
	return true
}

// Restore removes the deletion marker of a catalog product. Whatever
// override existed before the delete becomes visible again. Rejects
// user-created ids.
func (s *ProductService) Restore(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.IsUserCreated(id) {
		s.log.Warn("Restore rejected for user-created product", zap.String("product_id", id))
		return false
	}

	deleted := readIDList(s.store, keyDeletedProducts, s.log)
	filtered := removeID(deleted, id)
	if err := writeJSON(s.store, keyDeletedProducts, filtered); err != nil {
		s.log.Error("Failed to restore product",
			zap.String("product_id", id),
			zap.Error(err))
		return false
	}
	return true
}

// DeletedCount returns the number of hidden catalog products
func (s *ProductService) DeletedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(readIDList(s.store, keyDeletedProducts, s.log))
}

// MigrationReport returns the report of the last repairing load, if one is
// pending
func (s *ProductService) MigrationReport() (MigrationReport, bool) {
	data, ok := s.store.Read(keyMigrationReport)
	if !ok {
		return MigrationReport{}, false
	}
	var report MigrationReport
	if err := json.Unmarshal(data, &report); err != nil {
		s.log.Warn("Corrupt migration report in storage, dropping it", zap.Error(err))
		s.store.Erase(keyMigrationReport)
		return MigrationReport{}, false
	}
	return report, true
}

// ClearMigrationReport drops the pending migration report
func (s *ProductService) ClearMigrationReport() {
	s.store.Erase(keyMigrationReport)
}

// loadUserProducts reads the override list, repairs it, and persists both the
// repaired list and a migration report whenever anything was fixed. Absent
// storage yields an empty list without touching the store.
func (s *ProductService) loadUserProducts() []model.Product {
	data, ok := s.store.Read(keyUserProducts)
	if !ok {
		s.cleanupStaleMarkers()
		return nil
	}

	result := migrate.Products(data)
	cleanupIssues := s.cleanupStaleMarkers()
	allIssues := append(result.Issues, cleanupIssues...)

	if result.HasChanges || len(cleanupIssues) > 0 {
		report := migrate.FormatReport(allIssues)
		s.log.Warn("Repaired persisted product data",
			zap.Int("issues", len(allIssues)))
		for _, issue := range allIssues {
			prometheus.RecordMigrationIssue(string(issue.Type))
		}

		if err := writeJSON(s.store, keyUserProducts, result.Products); err != nil {
			s.log.Error("Failed to persist repaired products", zap.Error(err))
		} else if err := writeJSON(s.store, keyMigrationReport, MigrationReport{
			Timestamp: time.Now().UTC(),
			Report:    report,
		}); err != nil {
			s.log.Error("Failed to persist migration report", zap.Error(err))
		}
	}

	return result.Products
}

// cleanupStaleMarkers drops deletion markers whose id no longer exists in the
// catalog. They can appear when a catalog revision removes an entry the user
// had hidden.
func (s *ProductService) cleanupStaleMarkers() []migrate.Issue {
	deleted := readIDList(s.store, keyDeletedProducts, s.log)
	if len(deleted) == 0 {
		return nil
	}

	kept := make([]string, 0, len(deleted))
	var issues []migrate.Issue
	for _, id := range deleted {
		if catalog.HasProduct(id) {
			kept = append(kept, id)
			continue
		}
		issues = append(issues, migrate.Issue{
			Type:       migrate.IssueInvalidID,
			OriginalID: id,
			Message:    "Удалена отметка об удалении для несуществующего продукта \"" + id + "\"",
		})
	}

	if len(issues) == 0 {
		return nil
	}
	if err := writeJSON(s.store, keyDeletedProducts, kept); err != nil {
		s.log.Error("Failed to persist cleaned deletion markers", zap.Error(err))
		return nil
	}
	return issues
}
