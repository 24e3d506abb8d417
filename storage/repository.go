package storage

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"centerparcs-scraper/models"
)

// SejourRepository is the persistence surface the pipeline writes through and
// the presentation layer reads from. The pipeline only ever clears everything
// and inserts batches; it never updates rows in place.
type SejourRepository interface {
	// ClearAll irreversibly empties the sejours table
	ClearAll() error

	// InsertBatch inserts one batch of sejours
	InsertBatch(sejours []models.Sejour) error

	// ListByPrice returns all sejours, cheapest first (the default read order)
	ListByPrice() ([]models.Sejour, error)

	// ListByDate returns all sejours ordered by arrival date, then duration
	ListByDate() ([]models.Sejour, error)

	// Count returns the number of persisted sejours
	Count() (int64, error)
}

// GormRepository implements SejourRepository on a gorm DB handle
type GormRepository struct {
	db *gorm.DB
}

// Open opens the sejours database for the given driver and migrates the
// schema. sqlite is the default engine; postgres is supported for
// deployments that outgrow a file database.
func Open(driver, dsn string) (*GormRepository, error) {
	var dial gorm.Dialector
	switch driver {
	case "", "sqlite":
		dial = sqlite.Open(dsn)
	case "postgres":
		dial = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported db driver: %s", driver)
	}

	db, err := gorm.Open(dial, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driver, err)
	}

	if err := db.AutoMigrate(&models.Sejour{}); err != nil {
		return nil, fmt.Errorf("failed to migrate sejours table: %w", err)
	}

	return &GormRepository{db: db}, nil
}

// NewGormRepository wraps an already-open gorm DB
func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

// ClearAll irreversibly empties the sejours table
func (r *GormRepository) ClearAll() error {
	return r.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Sejour{}).Error
}

// InsertBatch inserts one batch of sejours
func (r *GormRepository) InsertBatch(sejours []models.Sejour) error {
	if len(sejours) == 0 {
		return nil
	}
	return r.db.Create(&sejours).Error
}

// ListByPrice returns all sejours, cheapest first
func (r *GormRepository) ListByPrice() ([]models.Sejour, error) {
	var sejours []models.Sejour
	err := r.db.Order("prix asc").Find(&sejours).Error
	return sejours, err
}

// ListByDate returns all sejours ordered by arrival date, then duration
func (r *GormRepository) ListByDate() ([]models.Sejour, error) {
	var sejours []models.Sejour
	err := r.db.Order("date_arrivee asc").Order("duree asc").Find(&sejours).Error
	return sejours, err
}

// Count returns the number of persisted sejours
func (r *GormRepository) Count() (int64, error) {
	var n int64
	err := r.db.Model(&models.Sejour{}).Count(&n).Error
	return n, err
}
