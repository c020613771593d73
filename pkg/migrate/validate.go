package migrate

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

var (
	migrationNameRe = regexp.MustCompile(`^(\d{14})_[a-z0-9_]+\.sql$`)
	createTableRe   = regexp.MustCompile(`(?i)CREATE TABLE IF NOT EXISTS\s+([a-z0-9_]+)`)
)

// ValidateDir checks goose file naming, version uniqueness and Up/Down
// markers. It also requires every table the migrations create to exist in
// the embedded sqlite schema so the local mode never drifts from Postgres.
func ValidateDir(dir string) error {
	if dir == "" {
		return fmt.Errorf("dir is required")
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read dir %q: %w", dir, err)
	}

	versions := map[string]string{}
	tables := map[string]string{}
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".sql") {
			continue
		}
		m := migrationNameRe.FindStringSubmatch(name)
		if m == nil {
			return fmt.Errorf("invalid migration filename %q (expected YYYYMMDDHHMMSS_name.sql)", name)
		}
		if prev, ok := versions[m[1]]; ok {
			return fmt.Errorf("duplicate migration version %s in %q and %q", m[1], prev, name)
		}
		versions[m[1]] = name

		raw, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return fmt.Errorf("read migration %q: %w", name, err)
		}
		body := string(raw)
		for _, marker := range []string{"-- +goose Up", "-- +goose Down"} {
			if !strings.Contains(body, marker) {
				return fmt.Errorf("migration %q missing %q", name, marker)
			}
		}
		for _, t := range createdTables(body) {
			tables[t] = name
		}
	}

	if missing := missingFromSQLite(tables); len(missing) > 0 {
		return fmt.Errorf("sqlite schema lacks tables %s", strings.Join(missing, ", "))
	}
	return nil
}

func createdTables(sql string) []string {
	var out []string
	for _, m := range createTableRe.FindAllStringSubmatch(sql, -1) {
		out = append(out, strings.ToLower(m[1]))
	}
	return out
}

func missingFromSQLite(tables map[string]string) []string {
	have := map[string]bool{}
	for _, t := range createdTables(sqliteSchema) {
		have[t] = true
	}
	var missing []string
	for t := range tables {
		if !have[t] {
			missing = append(missing, t)
		}
	}
	sort.Strings(missing)
	return missing
}
