package seed

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var ErrUnknownDialect = errors.New("unknown SQL dialect")

// Dialect selects the FK toggles and identifier quoting of the rendered script.
type Dialect string

const (
	MySQL    Dialect = "mysql"
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite"
)

const dateTimeLayout = "2006-01-02 15:04:05"

// ParseDialect accepts a dialect name or alias, case-insensitively.
func ParseDialect(s string) (Dialect, error) {
	switch d := Dialect(strings.ToLower(strings.TrimSpace(s))); d {
	case MySQL, Postgres, SQLite:
		return d, nil
	case "postgresql", "pg":
		return Postgres, nil
	case "sqlite3":
		return SQLite, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDialect, s)
}

// DisableForeignKeys opens the script. Postgres defers deferrable
// constraints instead of switching replication role, which needs superuser;
// rows are emitted parents first so immediate constraints hold as well.
func (d Dialect) DisableForeignKeys() string {
	switch d {
	case Postgres:
		return "SET CONSTRAINTS ALL DEFERRED;"
	case SQLite:
		return "PRAGMA foreign_keys = OFF;"
	default:
		return "SET FOREIGN_KEY_CHECKS = 0;"
	}
}

func (d Dialect) EnableForeignKeys() string {
	switch d {
	case Postgres:
		return "SET CONSTRAINTS ALL IMMEDIATE;"
	case SQLite:
		return "PRAGMA foreign_keys = ON;"
	default:
		return "SET FOREIGN_KEY_CHECKS = 1;"
	}
}

// Quote leaves MySQL identifiers bare; the other dialects need double quotes
// to keep the mixed-case column names.
func (d Dialect) Quote(ident string) string {
	if d == MySQL {
		return ident
	}
	return `"` + strings.ReplaceAll(ident, `"`, `""`) + `"`
}

// Escape renders v as a SQL literal: NULL when absent, otherwise a
// single-quoted string with embedded quotes doubled.
func Escape(v any) string {
	if v == nil {
		return "NULL"
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return "NULL"
		}
		return Escape(rv.Elem().Interface())
	}

	var s string
	switch val := v.(type) {
	case string:
		s = val
	case time.Time:
		s = val.Format(dateTimeLayout)
	case fmt.Stringer:
		s = val.String()
	default:
		s = fmt.Sprint(val)
	}
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func intLiteral(n int) string { return strconv.Itoa(n) }

func nullIntLiteral(n *int) string {
	if n == nil {
		return "NULL"
	}
	return strconv.Itoa(*n)
}

func decimalLiteral(d decimal.Decimal) string { return d.StringFixed(2) }

// insert builds a single-line INSERT statement. values must already be literals.
func (d Dialect) insert(table string, columns []string, values []string) string {
	quoted := make([]string, len(columns))
	for i, c := range columns {
		quoted[i] = d.Quote(c)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s);",
		d.Quote(table), strings.Join(quoted, ", "), strings.Join(values, ", "))
}
