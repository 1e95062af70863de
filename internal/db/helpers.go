package db

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
)

type QueryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]{0,63}$`)

// QuoteIdent backtick-quotes a table or index name after checking it is a
// plain identifier.
func QuoteIdent(name string) (string, error) {
	if !identRe.MatchString(name) {
		return "", fmt.Errorf("invalid identifier %q", name)
	}
	return "`" + name + "`", nil
}

// NullableString maps a nil pointer to SQL NULL. A non-nil empty string is
// written as "".
func NullableString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func HasTable(ctx context.Context, q QueryRower, table string) bool {
	var name sql.NullString
	err := q.QueryRowContext(ctx, `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = DATABASE()
		  AND table_name = ?
		LIMIT 1
	`, table).Scan(&name)
	if err != nil {
		return false
	}
	return name.Valid && name.String != ""
}

func HasIndex(ctx context.Context, q QueryRower, table, index string) bool {
	var name sql.NullString
	err := q.QueryRowContext(ctx, `
		SELECT index_name
		FROM information_schema.statistics
		WHERE table_schema = DATABASE()
		  AND table_name = ?
		  AND index_name = ?
		LIMIT 1
	`, table, index).Scan(&name)
	if err != nil {
		return false
	}
	return name.Valid && name.String != ""
}
