package migration_test

import (
	"path/filepath"
	"testing"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/vanijya/pkg/database"
	"github.com/shashiranjanraj/vanijya/pkg/migration"
)

type createWidgetsTable struct{}

func (m *createWidgetsTable) Up(db *gorm.DB) error {
	return db.Exec(`CREATE TABLE widgets (id INTEGER PRIMARY KEY, name TEXT)`).Error
}

func (m *createWidgetsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("widgets")
}

type createGadgetsTable struct{}

func (m *createGadgetsTable) Up(db *gorm.DB) error {
	return db.Exec(`CREATE TABLE gadgets (id INTEGER PRIMARY KEY, name TEXT)`).Error
}

func (m *createGadgetsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("gadgets")
}

func init() {
	migration.Register("20260301000000_create_widgets_table", &createWidgetsTable{})
	migration.Register("20260301000001_create_gadgets_table", &createGadgetsTable{})
}

func openDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open("sqlite", filepath.Join(t.TempDir(), "migrate.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { database.Close(db) })
	return db
}

func TestRunAppliesPendingMigrations(t *testing.T) {
	db := openDB(t)
	runner := migration.New(db)

	if err := runner.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	for _, table := range []string{"widgets", "gadgets", "vanijya_migrations"} {
		if !db.Migrator().HasTable(table) {
			t.Errorf("table %s missing after Run", table)
		}
	}

	// A second run is a no-op, not an error.
	if err := runner.Run(); err != nil {
		t.Fatalf("second Run: %v", err)
	}
}

func TestRollbackReversesLastBatch(t *testing.T) {
	db := openDB(t)
	runner := migration.New(db)

	if err := runner.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if err := runner.Rollback(); err != nil {
		t.Fatalf("Rollback: %v", err)
	}

	for _, table := range []string{"widgets", "gadgets"} {
		if db.Migrator().HasTable(table) {
			t.Errorf("table %s still present after Rollback", table)
		}
	}

	// Rolling back an empty history is a no-op.
	if err := runner.Rollback(); err != nil {
		t.Fatalf("empty Rollback: %v", err)
	}
}
