package postgres

import (
	"context"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestSplitStatementsKeepsFunctionBodies(t *testing.T) {
	script := `
-- comment
CREATE TABLE a (id int);

CREATE OR REPLACE FUNCTION f()
RETURNS TRIGGER AS $$
BEGIN
  NEW.updated_at = NOW();
  RETURN NEW;
END;
$$ LANGUAGE plpgsql;
CREATE INDEX IF NOT EXISTS a_idx ON a (id);
`
	stmts := splitStatements(script)
	if len(stmts) != 3 {
		t.Fatalf("expected 3 statements, got %d: %q", len(stmts), stmts)
	}
	if !strings.Contains(stmts[1], "RETURN NEW;") || !strings.HasSuffix(stmts[1], "LANGUAGE plpgsql;") {
		t.Fatalf("function body was split: %q", stmts[1])
	}
}

func TestEmbeddedSchemaCarriesMemoryCheck(t *testing.T) {
	if !strings.Contains(schemaDDL, "memories_event_or_trip_check") {
		t.Fatalf("expected memories exclusivity check in schema")
	}
	if strings.Contains(schemaDDL, "UNIQUE (trip_id, date)") {
		t.Fatalf("schedules must not be unique per (trip_id, date)")
	}
}

func TestMigrateAppliesEveryStatement(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer mockDB.Close()

	stmts := splitStatements(schemaDDL)
	mock.MatchExpectationsInOrder(true)
	for range stmts {
		mock.ExpectExec(".*").WillReturnResult(sqlmock.NewResult(0, 0))
	}

	if err := Migrate(context.Background(), mockDB); err != nil {
		t.Fatalf("Migrate returned error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
