package kvstore

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Entry is the row shape for the Postgres-backed store
type Entry struct {
	Key   string `gorm:"primarykey;type:varchar(255)"`
	Value []byte `gorm:"type:bytea"`
}

// TableName overrides the default table name
func (Entry) TableName() string {
	return "kv_entries"
}

// GormStore is a Store backend persisting each key as one row in Postgres
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates the store and runs the schema migration for its table
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, err
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) Read(key string) ([]byte, bool) {
	var entry Entry
	result := s.db.First(&entry, "key = ?", key)
	if result.Error != nil {
		return nil, false
	}
	return entry.Value, true
}

func (s *GormStore) Write(key string, value []byte) error {
	entry := Entry{Key: key, Value: value}
	result := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&entry)
	return result.Error
}

func (s *GormStore) Erase(key string) {
	s.db.Delete(&Entry{}, "key = ?", key)
}

// IsNotFound reports whether err is the gorm record-not-found error
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
