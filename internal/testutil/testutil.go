// Package testutil provides shared test helpers for creating config files and vocabulary fixtures.
package testutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vocabquiz/vocabquiz/internal/vocabulary"
)

// SetupTestConfig creates a config file that keeps vocabulary in a YAML document under tmpDir.
// Delays are disabled and the seed is fixed. Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "reports"), 0755))
	configContent := fmt.Sprintf(`storage:
  driver: yaml
  document_path: %s
quiz:
  wrong_feedback_delay: 0s
  round_complete_delay: 0s
  seed: 1
outputs:
  report_directory: %s
`,
		DocumentPath(tmpDir),
		filepath.Join(tmpDir, "reports"),
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// SetupSQLiteTestConfig creates a config file that keeps vocabulary in a SQLite database under tmpDir.
func SetupSQLiteTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()
	cfgPath := SetupTestConfig(t, tmpDir)

	content, err := os.ReadFile(cfgPath)
	require.NoError(t, err)
	content = append(content, []byte(fmt.Sprintf("database:\n  path: %s\n  ping_attempts: 1\n", filepath.Join(tmpDir, "vocabquiz.db")))...)
	require.NoError(t, os.WriteFile(cfgPath, content, 0644))
	t.Setenv("VOCABQUIZ_STORAGE_DRIVER", "sqlite")
	return cfgPath
}

// DocumentPath is the vocabulary document used by SetupTestConfig.
func DocumentPath(tmpDir string) string {
	return filepath.Join(tmpDir, "vocabulary.yml")
}

// CreateDay adds a day with the given English and Vietnamese pairs to the document under tmpDir.
func CreateDay(t *testing.T, tmpDir, name string, pairs ...[2]string) vocabulary.Day {
	t.Helper()

	store := vocabulary.NewYAMLStore(DocumentPath(tmpDir))
	ctx := context.Background()
	day, err := store.CreateDay(ctx, name)
	require.NoError(t, err)
	for _, pair := range pairs {
		entry, err := store.AddEntry(ctx, day.ID, pair[0], pair[1])
		require.NoError(t, err)
		day.Vocabulary = append(day.Vocabulary, entry)
	}
	return day
}

// Words returns n distinct English and Vietnamese pairs.
func Words(n int) [][2]string {
	pairs := make([][2]string, 0, n)
	for i := 1; i <= n; i++ {
		pairs = append(pairs, [2]string{fmt.Sprintf("word %d", i), fmt.Sprintf("từ %d", i)})
	}
	return pairs
}
