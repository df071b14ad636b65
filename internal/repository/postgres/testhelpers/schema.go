package testhelpers

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Migrate applies every *.up.sql file in dir in name order and checks that the
// campus tables exist afterwards. The campus migrations are idempotent.
func (tdb *TestDB) Migrate(t testing.TB, dir string) {
	t.Helper()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err, "read migrations dir")

	var files []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".up.sql") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)
	require.NotEmpty(t, files, "no migrations in %s", dir)

	tdb.execFiles(t, dir, files)

	for _, table := range []string{"campus_nodes", "campus_roads"} {
		var exists bool
		require.NoError(t, tdb.DB.Get(&exists, `SELECT to_regclass($1) IS NOT NULL`, table))
		require.True(t, exists, "table %s missing after migrations", table)
	}
}

// LoadFixtures executes the fixture files from dir in the given order.
func (tdb *TestDB) LoadFixtures(t testing.TB, dir string, files ...string) {
	t.Helper()
	tdb.execFiles(t, dir, files)
}

func (tdb *TestDB) execFiles(t testing.TB, dir string, files []string) {
	t.Helper()

	for _, file := range files {
		content, err := os.ReadFile(filepath.Join(dir, file))
		require.NoError(t, err, "read %s", file)

		_, err = tdb.DB.Exec(string(content))
		require.NoError(t, err, "execute %s", file)
		t.Logf("Applied %s", file)
	}
}
