// interfaces.go: this code defines the interface for the database operations
package datastore

import (
	"fmt"

	"github.com/soluna/temple-go/internal/conf"
	"github.com/soluna/temple-go/internal/errors"
	"gorm.io/gorm"
)

// Interface abstracts the underlying database implementation and defines the
// operations the application needs.
type Interface interface {
	Open() error
	Close() error
	SaveProfile(profile *BirthProfile) error
	GetProfile(id string) (BirthProfile, error)
	GetAllProfiles() ([]BirthProfile, error)
	DeleteProfile(id string) error
	SaveChart(record *ChartRecord) error
	GetChartForProfile(profileID string) (ChartRecord, error)
}

// DataStore implements Interface using a GORM database.
type DataStore struct {
	DB *gorm.DB // GORM database instance
}

// New creates a new datastore based on the provided configuration.
func New(settings *conf.Settings) Interface {
	switch {
	case settings.Output.SQLite.Enabled:
		return &SQLiteStore{Settings: settings}
	case settings.Output.MySQL.Enabled:
		return &MySQLStore{Settings: settings}
	default:
		return nil
	}
}

// Close closes the database connection.
func (ds *DataStore) Close() error {
	if ds.DB == nil {
		return nil
	}
	sqlDB, err := ds.DB.DB()
	if err != nil {
		return fmt.Errorf("getting underlying database: %w", err)
	}
	return sqlDB.Close()
}

// SaveProfile inserts or updates a birth profile.
func (ds *DataStore) SaveProfile(profile *BirthProfile) error {
	if err := ds.DB.Save(profile).Error; err != nil {
		return errors.New(err).
			Category(errors.CategoryDatabase).
			Component("datastore").
			Context("operation", "save-profile").
			Build()
	}
	return nil
}

// GetProfile retrieves a birth profile by ID.
func (ds *DataStore) GetProfile(id string) (BirthProfile, error) {
	var profile BirthProfile
	if err := ds.DB.First(&profile, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return BirthProfile{}, errors.NotFoundError("profile", id)
		}
		return BirthProfile{}, errors.New(err).
			Category(errors.CategoryDatabase).
			Component("datastore").
			Build()
	}
	return profile, nil
}

// GetAllProfiles returns all saved birth profiles, newest first.
func (ds *DataStore) GetAllProfiles() ([]BirthProfile, error) {
	var profiles []BirthProfile
	if err := ds.DB.Order("created_at DESC").Find(&profiles).Error; err != nil {
		return nil, errors.New(err).
			Category(errors.CategoryDatabase).
			Component("datastore").
			Build()
	}
	return profiles, nil
}

// DeleteProfile removes a profile and its chart records.
func (ds *DataStore) DeleteProfile(id string) error {
	return ds.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&ChartRecord{}, "profile_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&BirthProfile{}, "id = ?", id).Error
	})
}

// SaveChart stores a calculation result for a profile, replacing any previous
// record for the same profile and calculation version.
func (ds *DataStore) SaveChart(record *ChartRecord) error {
	return ds.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&ChartRecord{}, "profile_id = ? AND calc_version = ?",
			record.ProfileID, record.CalcVersion).Error; err != nil {
			return err
		}
		return tx.Create(record).Error
	})
}

// GetChartForProfile retrieves the latest chart record for a profile.
func (ds *DataStore) GetChartForProfile(profileID string) (ChartRecord, error) {
	var record ChartRecord
	err := ds.DB.Order("created_at DESC").First(&record, "profile_id = ?", profileID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ChartRecord{}, errors.NotFoundError("chart", profileID)
		}
		return ChartRecord{}, errors.New(err).
			Category(errors.CategoryDatabase).
			Component("datastore").
			Build()
	}
	return record, nil
}

// performAutoMigration runs GORM auto-migration for all entities.
func performAutoMigration(db *gorm.DB, debug bool, dbType, connectionInfo string) error {
	if err := db.AutoMigrate(&BirthProfile{}, &ChartRecord{}); err != nil {
		return fmt.Errorf("failed to auto-migrate %s database: %w", dbType, err)
	}
	if debug {
		fmt.Printf("%s database connection initialized: %s\n", dbType, connectionInfo)
	}
	return nil
}
