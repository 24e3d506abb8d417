package scraper

import (
	"fmt"
	"strings"
	"time"

	"centerparcs-scraper/config"
	"centerparcs-scraper/helpers"
	"centerparcs-scraper/logger"
	"centerparcs-scraper/services/cache"
	"centerparcs-scraper/storage"
)

// rateLimitKey marks a rate-limited listing host in the block cache
const rateLimitKey = "centerparcs_rate_limited"

// Scraper runs the full pipeline: listing page → token + cottage catalog →
// flexCalendar grid → full replace of the sejours table. One run is strictly
// sequential and, once started, goes to completion or fatal error.
type Scraper struct {
	ListingURL string
	Engine     *PricingEngine
	Replacer   *storage.Replacer
	Fetch      FetchFunc
	CacheSvc   cache.CacheService
	BlockTime  time.Duration
}

// New creates a scraper wired to the real HTTP client.
// cacheSvc may be nil; the rate-limit guard is then disabled.
func New(cfg *config.Config, repo storage.SejourRepository, cacheSvc cache.CacheService) *Scraper {
	return &Scraper{
		ListingURL: cfg.ListingURL,
		Engine:     NewPricingEngine(cfg.PricingAPIURL),
		Replacer:   &storage.Replacer{Repo: repo, BatchSize: cfg.BatchSize},
		Fetch:      helpers.Fetch,
		CacheSvc:   cacheSvc,
		BlockTime:  cfg.BlockTime,
	}
}

// Summary reports what one run wrote
type Summary struct {
	Prix     int
	Cottages int
	Durees   int
	Skipped  int
}

// Message renders the summary the way the comparator UI displays it
func (s *Summary) Message() string {
	return fmt.Sprintf("✅ %d prix récupérés pour %d cottages × %d durées !", s.Prix, s.Cottages, s.Durees)
}

// Run executes one scraping run over the given stay durations. An empty
// duration set falls back to DefaultDurees. The sejours table is only
// touched when the fetch and parse phases succeeded.
func (s *Scraper) Run(durees []int) (*Summary, error) {
	if len(durees) == 0 {
		durees = DefaultDurees
	}

	log := logger.ForScraper()

	body, err := s.fetchListing()
	if err != nil {
		return nil, &StageError{Stage: "page cottages", Err: err}
	}

	token, found := ExtractToken(body)
	if !found {
		return nil, ErrTokenIntrouvable
	}

	cottages, err := ExtractCottages(body)
	if err != nil {
		return nil, &StageError{Stage: "page cottages", Err: err}
	}
	if len(cottages) == 0 {
		return nil, ErrAucunCottage
	}

	log.Info().
		Int("cottages", len(cottages)).
		Int("durees", len(durees)).
		Int("appels_api", len(cottages)*len(durees)).
		Msg("Catalogue extracted, querying flexCalendar")

	sejours, skipped := s.Engine.QueryAll(cottages, durees, token)

	if err := s.Replacer.Replace(sejours); err != nil {
		return nil, &StageError{Stage: "sauvegarde des séjours", Err: err}
	}

	return &Summary{
		Prix:     len(sejours),
		Cottages: len(cottages),
		Durees:   len(durees),
		Skipped:  skipped,
	}, nil
}

// fetchListing fetches the listing page, honoring the rate-limit block cache
// the same way a run that just got throttled would have left it.
func (s *Scraper) fetchListing() ([]byte, error) {
	if s.CacheSvc != nil {
		if _, err := s.CacheSvc.Get(rateLimitKey); err == nil {
			return nil, fmt.Errorf("%s: bloqué pendant encore %d secondes", rateLimitKey, int(s.BlockTime/time.Second))
		}
	}

	body, err := s.Fetch(s.ListingURL, nil)
	if err != nil {
		if s.CacheSvc != nil && strings.HasPrefix(err.Error(), "rate limited") {
			s.CacheSvc.Set(rateLimitKey, []byte("1"), s.BlockTime)
		}
		return nil, err
	}

	return body, nil
}
