package database

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pumpshop/seed/internal/models"
	"github.com/pumpshop/seed/internal/seed"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Apply executes a rendered script line by line in a single transaction.
// Comment and blank lines are skipped. It returns the number of statements
// executed; on failure nothing is committed.
func Apply(ctx context.Context, db *gorm.DB, lines []string) (int, error) {
	executed := 0
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, line := range lines {
			stmt := strings.TrimSpace(line)
			if stmt == "" || strings.HasPrefix(stmt, "--") {
				continue
			}
			if err := tx.Exec(stmt).Error; err != nil {
				slog.Warn("statement failed", "line", i+1, "table", tableOf(stmt), "error", err)
				return fmt.Errorf("line %d: %w", i+1, err)
			}
			executed++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to apply script: %w", err)
	}
	return executed, nil
}

// tableOf extracts the target table of an INSERT for log context.
func tableOf(stmt string) string {
	const prefix = "INSERT INTO "
	if !strings.HasPrefix(stmt, prefix) {
		return ""
	}
	rest := stmt[len(prefix):]
	if i := strings.IndexByte(rest, ' '); i > 0 {
		rest = rest[:i]
	}
	return strings.Trim(rest, `"`)
}

// LoadDataset reads every seeded table back into memory.
func LoadDataset(db *gorm.DB) (*models.Dataset, error) {
	ds := &models.Dataset{}
	loads := []struct {
		dest  interface{}
		order string
	}{
		{&ds.Organizations, "OrganizationId"},
		{&ds.Customers, "CustomerId"},
		{&ds.MobileNumbers, "MobileNumberId"},
		{&ds.Workers, "WorkerId"},
		{&ds.Users, "UserId"},
		{&ds.Suppliers, "SupplierId"},
		{&ds.Parts, "PartId"},
		{&ds.Jobs, "JobNumber"},
		{&ds.WorkLogs, "WorkLogId"},
		{&ds.PartsUsed, "PartUsedId"},
		{&ds.Windings, "id"},
		{&ds.Payments, "PaymentId"},
		{&ds.Documents, "DocumentId"},
	}
	for _, l := range loads {
		if err := db.Order(clause.OrderByColumn{Column: clause.Column{Name: l.order}}).Find(l.dest).Error; err != nil {
			return nil, fmt.Errorf("failed to load dataset: %w", err)
		}
	}
	return ds, nil
}

// CheckIntegrity loads the seeded rows and runs the same consistency rules
// the generator guarantees. Violations are returned wrapped in ErrIntegrity.
func CheckIntegrity(db *gorm.DB) (*models.Dataset, error) {
	ds, err := LoadDataset(db)
	if err != nil {
		return nil, err
	}
	if v := seed.Validate(ds); len(v) > 0 {
		return ds, fmt.Errorf("%w: %w", ErrIntegrity, v)
	}
	return ds, nil
}
