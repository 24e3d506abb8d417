package scraper

import (
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"time"

	"centerparcs-scraper/helpers"
	"centerparcs-scraper/logger"
	"centerparcs-scraper/models"
)

// Product catalog identity of the Villages Nature Paris domain on the
// flexCalendar API.
const (
	univers      = "cpe"
	language     = "fr"
	market       = "fr"
	offer        = "VN"
	currency     = "EUR"
	displayPrice = "per_stay"
)

// FetchFunc fetches a URL with query parameters and returns the body
type FetchFunc func(rawURL string, params url.Values) ([]byte, error)

// PricingEngine queries the flexCalendar API for every cottage × duration
// pair, strictly sequentially, and flattens the nested availability calendar
// into sejour rows. A failed pair is skipped; the engine never fails a run.
type PricingEngine struct {
	APIURL string
	Fetch  FetchFunc
}

// NewPricingEngine creates a pricing engine backed by the real HTTP client
func NewPricingEngine(apiURL string) *PricingEngine {
	return &PricingEngine{
		APIURL: apiURL,
		Fetch:  helpers.Fetch,
	}
}

// flexCalendarResponse mirrors the nesting of the pricing API payload.
// Promo and Original are pointers so an absent price object is
// distinguishable from a zero price.
type flexCalendarResponse struct {
	Results struct {
		Results struct {
			Dates map[string]dateEntry `json:"dates"`
		} `json:"results"`
	} `json:"results"`
}

type dateEntry struct {
	Cache struct {
		Price struct {
			Promo    *rawPrice `json:"promo"`
			Discount float64   `json:"discount"`
			Original *rawPrice `json:"original"`
		} `json:"price"`
	} `json:"cache"`
}

type rawPrice struct {
	RawBeforeTax float64 `json:"rawBeforeTax"`
}

// QueryAll walks the cottage × duration grid and collects every sejour the
// API offers. Pairs that fail are logged and skipped; the second return value
// is the number of skipped pairs.
func (e *PricingEngine) QueryAll(cottages []Cottage, durees []int, token string) ([]models.Sejour, int) {
	log := logger.ForScraper()

	var all []models.Sejour
	skipped := 0

	for _, cottage := range cottages {
		for _, duree := range durees {
			result := e.QueryPair(cottage, duree, token)
			if result.Err != nil {
				// Si un appel échoue pour un cottage/durée, on continue sans planter
				skipped++
				log.Warn().
					Str("housing_code", result.HousingCode).
					Int("duree", result.Duree).
					Err(result.Err).
					Msg("Skipping cottage/duration pair")
				continue
			}
			all = append(all, result.Sejours...)
		}
	}

	return all, skipped
}

// QueryPair prices one cottage for one stay duration
func (e *PricingEngine) QueryPair(cottage Cottage, duree int, token string) PairResult {
	result := PairResult{HousingCode: cottage.HousingCode, Duree: duree}

	params := url.Values{}
	params.Set("univers", univers)
	params.Set("language", language)
	params.Set("market", market)
	params.Set("offer", offer)
	params.Set("housing", cottage.HousingCode)
	params.Set("token", token)
	params.Set("currency", currency)
	params.Set("displayPrice", displayPrice)
	params.Set("duration", strconv.Itoa(duree))

	body, err := e.Fetch(e.APIURL, params)
	if err != nil {
		result.Err = err
		return result
	}

	var payload flexCalendarResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		result.Err = fmt.Errorf("failed to decode flexCalendar response: %w", err)
		return result
	}

	dates := payload.Results.Results.Dates

	// Pin the date order; JSON object order is not observable through a map
	keys := make([]string, 0, len(dates))
	for k := range dates {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, dateStr := range keys {
		price := dates[dateStr].Cache.Price

		if price.Promo == nil {
			result.Err = fmt.Errorf("date %s: missing promo price", dateStr)
			result.Sejours = nil
			return result
		}

		arrivee, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			result.Err = fmt.Errorf("date %s: %w", dateStr, err)
			result.Sejours = nil
			return result
		}

		var prixOriginal *float64
		if price.Discount > 0 {
			if price.Original == nil {
				result.Err = fmt.Errorf("date %s: discount without original price", dateStr)
				result.Sejours = nil
				return result
			}
			original := price.Original.RawBeforeTax
			prixOriginal = &original
		}

		result.Sejours = append(result.Sejours, models.Sejour{
			HousingCode:  cottage.HousingCode,
			HousingType:  cottage.HousingType,
			ComfortLevel: cottage.ComfortLevel,
			NbPersonnes:  cottage.NbPersonnes,
			DateArrivee:  arrivee,
			Duree:        duree,
			Prix:         price.Promo.RawBeforeTax,
			PrixOriginal: prixOriginal,
		})
	}

	return result
}
