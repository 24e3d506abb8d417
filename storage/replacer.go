package storage

import (
	"fmt"

	"centerparcs-scraper/models"
)

// DefaultBatchSize bounds one insert payload. On insère par paquets de 100
// pour ne pas surcharger SQLite.
const DefaultBatchSize = 100

// Replacer replaces the whole sejours dataset with a fresh scrape: clear
// everything, then insert in fixed-size batches.
//
// The clear and the inserts deliberately run outside a transaction, matching
// the behavior this comparator has always had: a failure mid-insert leaves a
// partial dataset until the next run overwrites it. Accepted risk.
type Replacer struct {
	Repo      SejourRepository
	BatchSize int
}

// Replace discards all persisted sejours and writes the given ones.
// The clear runs even when there is nothing to insert.
func (r *Replacer) Replace(sejours []models.Sejour) error {
	size := r.BatchSize
	if size <= 0 {
		size = DefaultBatchSize
	}

	if err := r.Repo.ClearAll(); err != nil {
		return fmt.Errorf("failed to clear sejours: %w", err)
	}

	for start := 0; start < len(sejours); start += size {
		end := min(start+size, len(sejours))
		if err := r.Repo.InsertBatch(sejours[start:end]); err != nil {
			return fmt.Errorf("failed to insert batch %d-%d: %w", start, end, err)
		}
	}

	return nil
}
