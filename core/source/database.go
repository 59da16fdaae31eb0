package source

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"pokemasdb/core/database"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TrainerRecord is one raw trainer payload stored in the database.
type TrainerRecord struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:128;uniqueIndex"`
	Position  int    `gorm:"index"`
	Payload   string `gorm:"type:text"`
	UpdatedAt time.Time
}

// TableName overrides the table name used by TrainerRecord.
func (TrainerRecord) TableName() string {
	return "trainer_records"
}

// RequiredColumns are the columns DatabaseSource reads.
var RequiredColumns = []string{"name", "position", "payload"}

// DatabaseSource reads records from the trainer_records table.
type DatabaseSource struct {
	db *gorm.DB
}

// NewDatabase creates a database-backed source.
func NewDatabase(db *gorm.DB) *DatabaseSource {
	return &DatabaseSource{db: db}
}

func (s *DatabaseSource) Name() string {
	return "database"
}

// Migrate creates or updates the trainer_records table.
func (s *DatabaseSource) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&TrainerRecord{}); err != nil {
		return fmt.Errorf("failed to migrate trainer_records: %w", err)
	}
	return nil
}

// Check verifies that the table exposes every required column.
func (s *DatabaseSource) Check(ctx context.Context) error {
	missing, err := database.MissingColumns(s.db.WithContext(ctx), TrainerRecord{}.TableName(), RequiredColumns)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: trainer_records is missing columns %v", ErrUnavailable, missing)
	}
	return nil
}

// TrainerNames lists stored trainers by position.
func (s *DatabaseSource) TrainerNames(ctx context.Context) ([]string, error) {
	names := []string{}
	err := s.db.WithContext(ctx).
		Model(&TrainerRecord{}).
		Order("position ASC").
		Order("id ASC").
		Pluck("name", &names).Error
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list trainer_records: %v", ErrUnavailable, err)
	}
	return names, nil
}

// Trainer loads one stored payload.
func (s *DatabaseSource) Trainer(ctx context.Context, name string) ([]byte, error) {
	var rec TrainerRecord
	err := s.db.WithContext(ctx).Where("name = ?", name).Take(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &LookupError{Trainer: name, Status: http.StatusNotFound, Location: rec.TableName()}
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load trainer %q: %v", ErrUnavailable, name, err)
	}
	return []byte(rec.Payload), nil
}

// SaveTrainers replaces the table contents with records in one transaction.
func (s *DatabaseSource) SaveTrainers(ctx context.Context, records []Record) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		names := make([]string, len(records))
		for i, r := range records {
			names[i] = r.Name
			rec := TrainerRecord{Name: r.Name, Position: i, Payload: string(r.Payload)}
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "name"}},
				DoUpdates: clause.AssignmentColumns([]string{"position", "payload", "updated_at"}),
			}).Create(&rec).Error
			if err != nil {
				return fmt.Errorf("failed to save trainer %q: %w", r.Name, err)
			}
		}

		stale := tx.Where("1 = 1")
		if len(names) > 0 {
			stale = tx.Where("name NOT IN ?", names)
		}
		if err := stale.Delete(&TrainerRecord{}).Error; err != nil {
			return fmt.Errorf("failed to remove stale trainers: %w", err)
		}
		return nil
	})
}
