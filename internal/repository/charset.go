package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/vaultpass/passgen/internal/charset"
	"github.com/vaultpass/passgen/internal/model"
)

var ErrClassTableMissing = errors.New("character class table not found")

// CharsetRepository reads character classes stored one table per class.
// Each table has an id column giving the order and a value column holding
// one character per row.
type CharsetRepository struct {
	db *sql.DB
}

// NewCharsetRepository creates a new CharsetRepository.
func NewCharsetRepository(db *sql.DB) *CharsetRepository {
	return &CharsetRepository{db: db}
}

// classQuery builds the select for a class table. Class names come from the
// fixed model.Classes list, never from user input.
func classQuery(class model.Class) string {
	return fmt.Sprintf("SELECT value FROM `%s` ORDER BY id", class)
}

// Chars returns the characters stored for one class, in id order.
func (r *CharsetRepository) Chars(ctx context.Context, class model.Class) (string, error) {
	if !class.Valid() {
		return "", fmt.Errorf("%w: %q", charset.ErrUnknownClass, class)
	}

	rows, err := r.db.QueryContext(ctx, classQuery(class))
	if err != nil {
		if isUnknownTableError(err) {
			return "", fmt.Errorf("%w: %s", ErrClassTableMissing, class)
		}
		return "", fmt.Errorf("querying %s: %w", class, err)
	}
	defer rows.Close()

	var b strings.Builder
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return "", fmt.Errorf("scanning %s: %w", class, err)
		}
		b.WriteString(v)
	}

	return b.String(), rows.Err()
}

// LoadTable reads all four classes and builds an immutable charset.Table.
func (r *CharsetRepository) LoadTable(ctx context.Context) (*charset.Table, error) {
	src := make(map[model.Class]string, len(model.Classes))
	for _, class := range model.Classes {
		chars, err := r.Chars(ctx, class)
		if err != nil {
			return nil, err
		}
		src[class] = chars
	}
	return charset.NewTable(src)
}

// isUnknownTableError checks if a MySQL error is a missing table error (code 1146).
func isUnknownTableError(err error) bool {
	var myErr *mysql.MySQLError
	return errors.As(err, &myErr) && myErr.Number == 1146
}
