// +build ignore

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	_ "github.com/jackc/pgx/v5/stdlib"
)

type AddressCacheFillEvent struct {
	EventID      uuid.UUID `json:"event_id"`
	ToiletID     int64     `json:"toilet_id"`
	BuildingName *string   `json:"building_name,omitempty"`
	Address      *string   `json:"address,omitempty"`
}

func ptr[T any](v T) *T {
	return &v
}

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	dbDSN := flag.String("db", "host=localhost port=5432 user=postgres password=postgres dbname=toilets sslmode=disable", "PostgreSQL DSN")
	toiletID := flag.Int64("toilet", 1, "Toilet ID to enrich")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	// Проверка подключения
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Тестовое событие (Shinjuku address)
	event := AddressCacheFillEvent{
		EventID:      uuid.New(),
		ToiletID:     *toiletID,
		BuildingName: ptr("Takashimaya Times Square"),
		Address:      ptr("5-24-2, Sendagaya, Shibuya, Tokyo"),
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	// Публикация в стрим
	result, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: "stream:toilet:address-cachefill",
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("✅ Event published successfully!\n")
	fmt.Printf("   Stream: stream:toilet:address-cachefill\n")
	fmt.Printf("   Message ID: %s\n", result)
	fmt.Printf("   Event ID: %s\n", event.EventID)
	fmt.Printf("   Toilet ID: %d\n", event.ToiletID)

	// Ожидание записи в БД
	fmt.Printf("\n⏳ Waiting for cached address in toilets table...\n")

	db, err := sqlx.Connect("pgx", *dbDSN)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer db.Close()

	timeout := time.After(30 * time.Second)
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-timeout:
			fmt.Println("❌ Timeout waiting for cached address")
			return
		case <-ticker.C:
			var row struct {
				BuildingName *string `db:"building_name"`
				Address      *string `db:"address"`
			}
			err := db.GetContext(ctx, &row,
				`SELECT building_name, address FROM toilets WHERE id = $1`, event.ToiletID)
			if err != nil {
				continue
			}

			if row.BuildingName != nil || row.Address != nil {
				fmt.Printf("\n✅ Address cached!\n")
				if row.BuildingName != nil {
					fmt.Printf("   Building: %s\n", *row.BuildingName)
				}
				if row.Address != nil {
					fmt.Printf("   Address:  %s\n", *row.Address)
				}
				return
			}
		}
	}
}
