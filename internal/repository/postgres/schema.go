package postgres

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

//go:embed schema.sql
var schemaSQL string

// InitSchema применяет схему БД, разбивая её на отдельные statement'ы.
// Все statement'ы идемпотентны (IF NOT EXISTS), повторный запуск безопасен.
func (db *DB) InitSchema(ctx context.Context) error {
	statements := strings.Split(schemaSQL, ";")

	for _, stmt := range statements {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}

		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement: %w", err)
		}
	}

	db.logger.Info("Database schema initialized",
		zap.Int("statements", len(statements)))
	return nil
}
