package storage

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// kvEntry is the single-table layout backing the persistence port.
type kvEntry struct {
	Key   string `gorm:"primaryKey;column:key"`
	Value []byte `gorm:"column:value"`
}

// TableName specifies the table name for the kvEntry model
func (kvEntry) TableName() string {
	return "kv_entries"
}

// GormPort implements Port on top of a relational database through GORM.
// PostgreSQL is used when a DATABASE_URL is configured, SQLite otherwise.
type GormPort struct {
	db *gorm.DB
}

// OpenGormPort connects to the configured database and prepares the
// key/value table. databaseURL takes precedence over sqlitePath.
func OpenGormPort(databaseURL, sqlitePath string) (*GormPort, error) {
	var dialector gorm.Dialector
	if databaseURL != "" {
		dialector = postgres.Open(databaseURL)
	} else {
		log.Printf("DATABASE_URL not set, using SQLite file %s", sqlitePath)
		dialector = sqlite.Open(sqlitePath)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return NewGormPort(db)
}

// NewGormPort wraps an existing GORM connection, migrating the key/value
// table. Used directly by tests with an in-memory SQLite database.
func NewGormPort(db *gorm.DB) (*GormPort, error) {
	if err := db.AutoMigrate(&kvEntry{}); err != nil {
		return nil, fmt.Errorf("failed to migrate kv table: %w", err)
	}
	return &GormPort{db: db}, nil
}

// Get returns the value stored under key.
func (p *GormPort) Get(key string) ([]byte, bool, error) {
	var entry kvEntry
	err := p.db.First(&entry, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return entry.Value, true, nil
}

// Set upserts the value stored under key.
func (p *GormPort) Set(key string, value []byte) error {
	entry := kvEntry{Key: key, Value: value}
	err := p.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}
