package main

import (
	"context"

	"github.com/shenikar/location_directory/internal/config"
	"github.com/shenikar/location_directory/internal/events"
	"github.com/shenikar/location_directory/internal/models"
	"github.com/shenikar/location_directory/internal/repository"
	"github.com/shenikar/location_directory/pkg/logger"
	"github.com/shenikar/location_directory/pkg/postgres"
	redisclient "github.com/shenikar/location_directory/pkg/redis"
	"github.com/sirupsen/logrus"
)

func strPtr(s string) *string { return &s }

// sampleLocations — тестовый набор точек интереса для локальной разработки.
func sampleLocations() []*models.Location {
	return []*models.Location{
		{
			Titolo:          "Colosseo",
			Descrizione:     "Anfiteatro Flavio, il più grande anfiteatro romano del mondo.",
			Indirizzo:       "Piazza del Colosseo, 1, Roma",
			Latitude:        41.8902,
			Longitude:       12.4922,
			Stato:           models.StatoAttivo,
			OrariApertura:   strPtr("09:00 - 19:00"),
			PrezzoBiglietto: strPtr("€18"),
			SitoWeb:         strPtr("https://colosseo.it"),
			Telefono:        strPtr("+39 06 3996 7700"),
			NoteVisitatori:  strPtr("Prenotazione consigliata nei weekend."),
		},
		{
			Titolo:        "Duomo di Milano",
			Descrizione:   "Cattedrale metropolitana della Natività della Beata Vergine Maria.",
			Indirizzo:     "Piazza del Duomo, Milano",
			Latitude:      45.4641,
			Longitude:     9.1919,
			Stato:         models.StatoAttivo,
			OrariApertura: strPtr("08:00 - 19:00"),
		},
		{
			Titolo:      "Pompei Scavi",
			Descrizione: "Sito archeologico della città romana sepolta dal Vesuvio.",
			Indirizzo:   "Via Villa dei Misteri, 2, Pompei",
			Latitude:    40.7497,
			Longitude:   14.4869,
			Stato:       models.StatoInAllarme,
		},
		{
			Titolo:      "Teatro Antico di Taormina",
			Descrizione: "Teatro greco-romano con vista sull'Etna.",
			Indirizzo:   "Via del Teatro Greco, 1, Taormina",
			Latitude:    37.8525,
			Longitude:   15.2923,
			Stato:       models.StatoDisattivo,
		},
	}
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	log := logger.New(cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()

	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	repo := repository.NewLocationRepository(dbpool)
	publisher := events.NewRedisChangePublisher(redisClient)

	for _, location := range sampleLocations() {
		if err := repo.Create(ctx, location); err != nil {
			log.WithError(err).WithField("titolo", location.Titolo).Warn("Failed to seed location, skipping")
			continue
		}

		// Публикуем событие, чтобы воркер API сбросил кеш карты
		event := events.ChangeEvent{
			LocationID: location.ID,
			Action:     events.ActionCreate,
		}
		if err := publisher.Publish(ctx, event); err != nil {
			log.WithError(err).Warn("Failed to publish change event")
		}

		log.WithFields(logrus.Fields{
			"location_id": location.ID,
			"titolo":      location.Titolo,
		}).Info("Location seeded")
	}
}
