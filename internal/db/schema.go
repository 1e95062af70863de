package db

import (
	"context"
	"database/sql"
	"fmt"
	"log"
)

const (
	ProviderIndex = "ProviderIndex"
	ClientIndex   = "ClientIndex"
)

type index struct {
	name    string
	columns string
}

var secondaryIndexes = []index{
	{name: ProviderIndex, columns: "(provider_user_sub, id)"},
	{name: ClientIndex, columns: "(client_id, id)"},
}

// EnsureBookingTable creates the bookings table keyed by (id, client_id) and
// its two secondary indexes. Existing objects are left as they are.
func EnsureBookingTable(ctx context.Context, db *sql.DB, table string) error {
	qt, err := QuoteIdent(table)
	if err != nil {
		return err
	}

	if HasTable(ctx, db, table) {
		log.Printf("[DB] table %s already exists", table)
	} else {
		log.Printf("[DB] creating table %s", table)
		ddl := `
CREATE TABLE IF NOT EXISTS ` + qt + ` (
	id VARCHAR(64) NOT NULL,
	client_id VARCHAR(191) NOT NULL,
	provider_user_sub VARCHAR(191) NOT NULL,
	timeslot_id VARCHAR(191) NOT NULL,
	service_id VARCHAR(191) NOT NULL,
	status VARCHAR(20) NOT NULL,
	notes TEXT NULL,
	created_at VARCHAR(40) NOT NULL,
	updated_at VARCHAR(40) NOT NULL,
	PRIMARY KEY (id, client_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;
`
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("create table %s: %w", table, err)
		}
	}

	for _, idx := range secondaryIndexes {
		if HasIndex(ctx, db, table, idx.name) {
			log.Printf("[DB] index %s already exists", idx.name)
			continue
		}
		stmt := fmt.Sprintf("CREATE INDEX `%s` ON %s %s", idx.name, qt, idx.columns)
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create index %s: %w", idx.name, err)
		}
		log.Printf("[DB] index %s created", idx.name)
	}
	return nil
}
