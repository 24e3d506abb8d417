package models

import "time"

// Sejour is one priced stay option: a cottage variant, an arrival date and a
// duration in nights. One scraping run fully rebuilds the sejours table, so
// rows never outlive the run that wrote them.
type Sejour struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Cottage identity, denormalized from the listing page.
	// HousingCode is e.g. "VN1021"; several physical cottages share one code.
	HousingCode  string `gorm:"size:255;index" json:"housing_code"`
	HousingType  string `gorm:"size:255" json:"housing_type"`
	ComfortLevel string `gorm:"size:255" json:"comfort_level"`
	NbPersonnes  int    `json:"nb_personnes"`

	// The stay itself.
	DateArrivee time.Time `gorm:"type:date" json:"date_arrivee"`
	Duree       int       `json:"duree"`

	// Prix is the current price before tourist tax, possibly discounted.
	// PrixOriginal is only set when a promotion applies.
	Prix         float64  `gorm:"type:decimal(8,2)" json:"prix"`
	PrixOriginal *float64 `gorm:"type:decimal(8,2)" json:"prix_original,omitempty"`

	// URLSource is reserved for a deep link to the cottage page; the scraper
	// leaves it null.
	URLSource *string `gorm:"size:255" json:"url_source,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName keeps the table name of the original comparator.
func (Sejour) TableName() string {
	return "sejours"
}
