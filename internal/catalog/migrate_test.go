package catalog

import (
	"fmt"
	"io/fs"
	"strings"
	"testing"
)

func TestMigrations_Embedded(t *testing.T) {
	files, err := fs.Glob(migrationsFS, "migrations/*.sql")
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("files=%v want=2", files)
	}
}

func TestMigrations_SeedMatchesMemSource(t *testing.T) {
	raw, err := fs.ReadFile(migrationsFS, "migrations/00002_seed_items.sql")
	if err != nil {
		t.Fatalf("read seed: %v", err)
	}
	sql := strings.Join(strings.Fields(string(raw)), " ")

	for pos, it := range SeedItems() {
		row := fmt.Sprintf("(%d, %d, '%s', '%s', %s)", pos+1, it.ID, it.Name, it.Price, strings.ToUpper(fmt.Sprint(it.Stock)))
		if !strings.Contains(sql, row) {
			t.Fatalf("seed migration is missing %s", row)
		}
	}
}
