package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"ledger/internal/config"
	"ledger/internal/models"
	"ledger/internal/repositories"
	"ledger/internal/repositories/cache"
	"ledger/internal/services/transaction"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
)

func main() {
	session := flag.String("session", "", "session token to seed (a new one is minted when empty)")
	count := flag.Int("count", 10, "number of transactions to create")
	flag.Parse()

	if *count <= 0 {
		log.Fatal("-count must be positive")
	}

	config.LoadEnv()
	cfg := config.Load()

	db, err := repositories.Open(cfg.DB)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		if err := repositories.Close(db); err != nil {
			log.Printf("⚠️ Failed to close database connection: %v", err)
		}
	}()
	if err := repositories.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	ctx := context.Background()

	var summaryCache transaction.SummaryCache = cache.NoopCache{}
	redisClient, err := cache.Connect(ctx, cfg.Redis)
	if err != nil {
		log.Printf("⚠️ Redis unavailable, cached summaries may be stale: %v", err)
	} else if redisClient != nil {
		defer redisClient.Close()
		summaryCache = cache.NewCacheService(redisClient, cfg.SummaryCacheTTL)
	}

	sessionID := *session
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	service := transaction.NewService(repositories.NewTransactionRepository(db), summaryCache, transaction.Config{})
	for _, input := range fakeInputs(gofakeit.New(0), *count) {
		if _, err := service.Create(ctx, sessionID, input); err != nil {
			log.Fatalf("Failed to seed transaction: %v", err)
		}
	}

	log.Printf("✅ Seeded %d transactions", *count)
	fmt.Println(sessionID)
}

// fakeInputs builds n random transactions with amounts in [1, 1000].
func fakeInputs(faker *gofakeit.Faker, n int) []models.TransactionInput {
	inputs := make([]models.TransactionInput, 0, n)
	for i := 0; i < n; i++ {
		typ := models.TransactionTypeCredit
		if faker.Bool() {
			typ = models.TransactionTypeDebit
		}
		inputs = append(inputs, models.TransactionInput{
			Title:  faker.Sentence(3),
			Amount: faker.Price(1, 1000),
			Type:   typ,
		})
	}
	return inputs
}
