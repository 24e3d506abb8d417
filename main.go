package main

import (
	"context"
	"os"

	"centerparcs-scraper/config"
	"centerparcs-scraper/internal/scraper"
	"centerparcs-scraper/logger"
	"centerparcs-scraper/services/cache"
	"centerparcs-scraper/services/notifier"
	"centerparcs-scraper/storage"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	godotenv.Load()

	// Initialize logger first
	logger.Init()
	log := logger.Default

	// Load and validate configuration
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	// Open the sejours database and migrate the schema
	repo, err := storage.Open(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open database")
	}

	ctx := context.Background()
	services := initializeServices(ctx, cfg)
	defer services.Cleanup()

	s := scraper.New(cfg, repo, services.Cache)

	// The run is strictly sequential: one API call per cottage × duration,
	// so the operator can estimate the wall-clock cost up front.
	log.Info().
		Str("environment", cfg.Environment).
		Ints("durees", cfg.Durees).
		Msg("Starting scraping run (~22 cottages × durées appels API)")

	summary, runErr := s.Run(cfg.Durees)

	var message string
	if runErr != nil {
		message = scraper.ErrorMessage(runErr)
		log.Error().Err(runErr).Msg("Scraping run failed")
	} else {
		message = summary.Message()
		log.Info().
			Int("prix", summary.Prix).
			Int("cottages", summary.Cottages).
			Int("durees", summary.Durees).
			Int("paires_ignorees", summary.Skipped).
			Msg("Scraping run finished")
	}

	// Hand the outcome to the surrounding app; it is displayed once
	if services.Notifier != nil {
		if err := services.Notifier.Notify(message); err != nil {
			log.Warn().Err(err).Msg("Failed to publish run outcome")
		}
	}
	log.Info().Msg(message)

	if runErr != nil {
		os.Exit(1)
	}

	// What the comparator page shows first: the cheapest stay
	sejours, err := repo.ListByPrice()
	if err != nil {
		log.Warn().Err(err).Msg("Failed to read back sejours")
		return
	}
	if len(sejours) > 0 {
		cheapest := sejours[0]
		log.Info().
			Str("housing_code", cheapest.HousingCode).
			Str("comfort_level", cheapest.ComfortLevel).
			Str("date_arrivee", cheapest.DateArrivee.Format("2006-01-02")).
			Int("duree", cheapest.Duree).
			Float64("prix", cheapest.Prix).
			Msg("Séjour le moins cher")
	}
}

// Services holds all the initialized optional services
type Services struct {
	Cache    cache.CacheService
	Notifier notifier.Notifier
}

// Cleanup cleans up all services
func (s *Services) Cleanup() {
	if s.Notifier != nil {
		s.Notifier.Close()
	}
}

// initializeServices initializes the optional services; each one stays nil
// when its backend is not configured
func initializeServices(ctx context.Context, cfg *config.Config) *Services {
	services := &Services{}

	if cfg.MemcacheAddr != "" {
		services.Cache = cache.NewMemcacheService(cfg.MemcacheAddr)
		logger.Info("Connected to Memcache at %s", cfg.MemcacheAddr)
	}

	if cfg.RedisAddr != "" {
		services.Notifier = notifier.NewRedisNotifier(
			ctx,
			cfg.RedisAddr,
			cfg.RedisDB,
			cfg.RedisStream,
			cfg.RedisMaxLength,
		)
		logger.Info("Connected to Redis at %s (DB: %d, Stream: %s)",
			cfg.RedisAddr, cfg.RedisDB, cfg.RedisStream)
	}

	return services
}
