package scraper

import "centerparcs-scraper/models"

// Inconnu is the sentinel for cottage attributes missing from the listing page.
const Inconnu = "Inconnu"

// DefaultDurees is the stay-duration set queried when the trigger supplies none.
var DefaultDurees = []int{2, 3, 4, 5, 6, 7, 10, 11, 14}

// Cottage describes one rentable housing variant found on the listing page.
// Cottages only live for the duration of a run; the sejours table carries
// denormalized copies of these fields.
type Cottage struct {
	HousingCode  string
	HousingType  string
	ComfortLevel string
	NbPersonnes  int
}

// PairResult is the outcome of pricing one cottage for one stay duration.
// A pair either yields a list of sejours or a reason it was skipped, never
// both.
type PairResult struct {
	HousingCode string
	Duree       int
	Sejours     []models.Sejour
	Err         error
}
