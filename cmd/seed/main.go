// Seed nạp canonical content vào database: documents, glossary,
// architecture components, 33 canonical operators và default brand.
// Idempotent: kind nào đã có active items thì bỏ qua.
//
// Seed ghi thẳng qua Store - không snapshot, không audit. Đây là
// system bootstrap, không phải user mutation.
package main

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"gogarvis-backend/internal/config"
	"gogarvis-backend/internal/domains/content"
	contentRepo "gogarvis-backend/internal/domains/content/repository"
	"gogarvis-backend/internal/infrastructure/database"
	"gogarvis-backend/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logger.Init(cfg.App.Environment)

	ctx := context.Background()
	db, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	defer db.Close()

	store := contentRepo.NewPostgresStore(db.Pool)

	seedKind(ctx, store, content.KindDocument, documents)
	seedKind(ctx, store, content.KindGlossary, glossaryTerms)
	seedKind(ctx, store, content.KindComponent, components)
	seedKind(ctx, store, content.KindOperator, canonicalOperators)
	seedKind(ctx, store, content.KindBrand, brandProfiles)

	log.Printf("Seed complete. Canonical operators: %d", len(canonicalOperators))
}

func seedKind(ctx context.Context, store content.Store, kind content.Kind, records []map[string]interface{}) {
	count, err := store.CountActive(ctx, kind)
	if err != nil {
		log.Fatalf("failed to count %s: %v", kind, err)
	}
	if count > 0 {
		log.Printf("Skipping %s: %d items already present", kind, count)
		return
	}

	now := time.Now().UTC()
	for _, record := range records {
		data := make(map[string]interface{}, len(record)+1)
		for k, v := range record {
			data[k] = v
		}
		id := uuid.New().String()
		data[kind.IDField()] = id

		item := &content.Item{
			Type:      kind,
			ID:        id,
			Data:      data,
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := store.Insert(ctx, item); err != nil {
			log.Fatalf("failed to seed %s %q: %v", kind, item.Title(), err)
		}
	}
	log.Printf("Seeded %d %s items", len(records), kind)
}
