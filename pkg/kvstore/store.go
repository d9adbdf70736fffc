package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/myflixlabs/myflix-backend/pkg/db"
	apperrors "github.com/myflixlabs/myflix-backend/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StoreRecord is one durable key/value row. Values are JSON text; the
// schema never changes when collections evolve.
type StoreRecord struct {
	Key       string    `gorm:"column:key;primaryKey"`
	Value     string    `gorm:"column:value;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

func (StoreRecord) TableName() string {
	return "store_records"
}

// Store is the synchronous persistence layer every repository sits on.
// Operations complete against the database before returning.
type Store struct {
	client *db.Client
}

func New(client *db.Client) *Store {
	return &Store{client: client}
}

// Get returns the raw value for key. found is false when the key has
// never been written.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	var record StoreRecord
	err := s.client.DB().WithContext(ctx).First(&record, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, apperrors.Wrap(apperrors.CodeDependency, err, "reading store record")
	}
	return record.Value, true, nil
}

// Set writes key to value, replacing any previous value. Last write wins.
func (s *Store) Set(ctx context.Context, key string, value string) error {
	record := StoreRecord{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	err := s.client.DB().WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&record).Error
	if err != nil {
		return apperrors.Wrap(apperrors.CodeDependency, err, "writing store record")
	}
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	err := s.client.DB().WithContext(ctx).Delete(&StoreRecord{}, "key = ?", key).Error
	if err != nil {
		return apperrors.Wrap(apperrors.CodeDependency, err, "deleting store record")
	}
	return nil
}

// GetJSON unmarshals the value at key into out. found follows Get.
func (s *Store) GetJSON(ctx context.Context, key string, out any) (bool, error) {
	raw, found, err := s.Get(ctx, key)
	if err != nil || !found {
		return found, err
	}
	// a stored blob that no longer parses is a storage fault, not a
	// caller mistake
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return true, apperrors.Wrap(apperrors.CodeDependency, err, "decoding store record")
	}
	return true, nil
}

// SetJSON marshals in and writes it at key.
func (s *Store) SetJSON(ctx context.Context, key string, in any) error {
	raw, err := json.Marshal(in)
	if err != nil {
		return apperrors.Wrap(apperrors.CodeInternal, err, "encoding store record")
	}
	return s.Set(ctx, key, string(raw))
}
