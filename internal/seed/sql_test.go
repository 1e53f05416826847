package seed

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscape(t *testing.T) {
	var nilString *string
	var nilTime *time.Time
	var nilInt *int
	name := "O'Brien"
	when := time.Date(2024, 3, 5, 7, 8, 9, 0, time.UTC)
	seven := 7

	tests := []struct {
		name string
		in   any
		want string
	}{
		{"untyped nil", nil, "NULL"},
		{"nil string pointer", nilString, "NULL"},
		{"nil time pointer", nilTime, "NULL"},
		{"nil int pointer", nilInt, "NULL"},
		{"plain string", "Kirloskar", "'Kirloskar'"},
		{"quote doubled", "it's", "'it''s'"},
		{"string pointer", &name, "'O''Brien'"},
		{"empty string", "", "''"},
		{"time", when, "'2024-03-05 07:08:09'"},
		{"time pointer", &when, "'2024-03-05 07:08:09'"},
		{"int pointer", &seven, "'7'"},
		{"decimal", decimal.RequireFromString("12.5"), "'12.5'"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Escape(tt.in))
		})
	}
}

func TestParseDialect(t *testing.T) {
	for in, want := range map[string]Dialect{
		"mysql":      MySQL,
		"MySQL":      MySQL,
		" postgres ": Postgres,
		"postgresql": Postgres,
		"pg":         Postgres,
		"sqlite":     SQLite,
		"sqlite3":    SQLite,
	} {
		got, err := ParseDialect(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseDialect("oracle")
	assert.ErrorIs(t, err, ErrUnknownDialect)
}

func TestDialectStatements(t *testing.T) {
	assert.Equal(t, "SET FOREIGN_KEY_CHECKS = 0;", MySQL.DisableForeignKeys())
	assert.Equal(t, "SET FOREIGN_KEY_CHECKS = 1;", MySQL.EnableForeignKeys())
	assert.Equal(t, "PRAGMA foreign_keys = OFF;", SQLite.DisableForeignKeys())
	assert.Equal(t, "SET CONSTRAINTS ALL DEFERRED;", Postgres.DisableForeignKeys())
	assert.Equal(t, "SET CONSTRAINTS ALL IMMEDIATE;", Postgres.EnableForeignKeys())
	assert.NotContains(t, Postgres.DisableForeignKeys(), "session_replication_role")

	assert.Equal(t,
		"INSERT INTO worker (WorkerId, WorkerName) VALUES (1, 'Worker_1');",
		MySQL.insert("worker", []string{"WorkerId", "WorkerName"}, []string{"1", "'Worker_1'"}))
	assert.Equal(t,
		`INSERT INTO "worker" ("WorkerId", "WorkerName") VALUES (1, 'Worker_1');`,
		Postgres.insert("worker", []string{"WorkerId", "WorkerName"}, []string{"1", "'Worker_1'"}))
}
