package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"centerparcs-scraper/models"
)

func openTestRepository(t *testing.T) *GormRepository {
	t.Helper()
	repo, err := Open("sqlite", filepath.Join(t.TempDir(), "sejours_test.db"))
	assert.NoError(t, err)
	return repo
}

func testSejour(code string, prix float64) models.Sejour {
	return models.Sejour{
		HousingCode:  code,
		HousingType:  "Cottage",
		ComfortLevel: "Premium",
		NbPersonnes:  4,
		DateArrivee:  time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		Duree:        7,
		Prix:         prix,
	}
}

func TestGormRepository(t *testing.T) {
	repo := openTestRepository(t)

	original := 307.0
	discounted := testSejour("VN1021", 250.0)
	discounted.PrixOriginal = &original

	err := repo.InsertBatch([]models.Sejour{
		testSejour("VN1022", 410.0),
		discounted,
		testSejour("VN1023", 199.0),
	})
	assert.NoError(t, err)

	n, err := repo.Count()
	assert.NoError(t, err)
	assert.Equal(t, int64(3), n)

	// Default read order: cheapest first
	sejours, err := repo.ListByPrice()
	assert.NoError(t, err)
	assert.Equal(t, 3, len(sejours))
	assert.Equal(t, "VN1023", sejours[0].HousingCode)
	assert.Equal(t, "VN1021", sejours[1].HousingCode)
	assert.Equal(t, "VN1022", sejours[2].HousingCode)

	// Nullable original price survives the round trip
	assert.Nil(t, sejours[0].PrixOriginal)
	assert.NotNil(t, sejours[1].PrixOriginal)
	assert.Equal(t, 307.0, *sejours[1].PrixOriginal)
	assert.Nil(t, sejours[1].URLSource)

	// Timestamps are set by the persistence layer
	assert.False(t, sejours[0].CreatedAt.IsZero())

	err = repo.ClearAll()
	assert.NoError(t, err)

	n, err = repo.Count()
	assert.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestGormRepositoryListByDate(t *testing.T) {
	repo := openTestRepository(t)

	early := testSejour("VN2", 300.0)
	early.DateArrivee = time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	late := testSejour("VN1", 100.0)
	late.DateArrivee = time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	err := repo.InsertBatch([]models.Sejour{late, early})
	assert.NoError(t, err)

	sejours, err := repo.ListByDate()
	assert.NoError(t, err)
	assert.Equal(t, "VN2", sejours[0].HousingCode)
	assert.Equal(t, "VN1", sejours[1].HousingCode)
}

func TestGormRepositoryInsertEmptyBatch(t *testing.T) {
	repo := openTestRepository(t)
	assert.NoError(t, repo.InsertBatch(nil))
}

func TestOpenUnsupportedDriver(t *testing.T) {
	_, err := Open("oracle", "dsn")
	assert.Error(t, err)
}

func TestReplaceAgainstRealDatabase(t *testing.T) {
	repo := openTestRepository(t)
	replacer := &Replacer{Repo: repo, BatchSize: 100}

	err := replacer.Replace(makeSejours(250))
	assert.NoError(t, err)

	n, err := repo.Count()
	assert.NoError(t, err)
	assert.Equal(t, int64(250), n)

	// A second replace does not accumulate
	err = replacer.Replace(makeSejours(120))
	assert.NoError(t, err)

	n, err = repo.Count()
	assert.NoError(t, err)
	assert.Equal(t, int64(120), n)
}
