package database

import "testing"

func TestDialectDriverNames(t *testing.T) {
	tests := []struct {
		name    string
		dialect Dialect
		driver  string
		subdir  string
		lastID  bool
	}{
		{"sqlite", SQLiteDialect{}, "sqlite3", "sqlite", true},
		{"postgres", PostgresDialect{}, "postgres", "postgres", false},
		{"mysql", MySQLDialect{}, "mysql", "mysql", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.dialect.DriverName(); got != tt.driver {
				t.Errorf("DriverName() = %v, want %v", got, tt.driver)
			}
			if got := tt.dialect.MigrationsSubdir(); got != tt.subdir {
				t.Errorf("MigrationsSubdir() = %v, want %v", got, tt.subdir)
			}
			if got := tt.dialect.SupportsLastInsertId(); got != tt.lastID {
				t.Errorf("SupportsLastInsertId() = %v, want %v", got, tt.lastID)
			}
		})
	}
}

func TestNumberPlaceholders(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{
			name:  "no placeholders",
			query: "SELECT id FROM children",
			want:  "SELECT id FROM children",
		},
		{
			name:  "single placeholder",
			query: "SELECT id FROM children WHERE id = ?",
			want:  "SELECT id FROM children WHERE id = $1",
		},
		{
			name:  "multiple placeholders",
			query: "INSERT INTO progress (child_id, subject, skill_area) VALUES (?, ?, ?)",
			want:  "INSERT INTO progress (child_id, subject, skill_area) VALUES ($1, $2, $3)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := numberPlaceholders(tt.query); got != tt.want {
				t.Errorf("numberPlaceholders() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPostgresRewriteQuery(t *testing.T) {
	got := PostgresDialect{}.RewriteQuery("UPDATE levels SET is_locked = ? WHERE id = ?")
	want := "UPDATE levels SET is_locked = $1 WHERE id = $2"
	if got != want {
		t.Errorf("RewriteQuery() = %v, want %v", got, want)
	}
}
