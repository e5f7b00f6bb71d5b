// Package testutil provides shared test helpers for creating config files and
// card fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/k-yamanaka/studycards/internal/collection"
)

// SetupTestConfig creates a minimal config file for testing and returns its
// path.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	configContent := `database:
  host: localhost
  port: 3306
  database: studycards_test
  username: test
sync:
  base_url: https://sync.example.com
  retry_attempts: 1
review:
  session_limit: 5
`
	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// Cards builds n sequential test cards for a collection, positioned 0..n-1.
func Cards(collectionID string, n int) []collection.Card {
	cards := make([]collection.Card, 0, n)
	for i := 0; i < n; i++ {
		id := collectionID
		cards = append(cards, collection.Card{
			ID:           int64(i + 1),
			CollectionID: &id,
			Position:     int64(i),
			Front:        fmt.Sprintf("front-%d", i),
			Back:         fmt.Sprintf("back-%d", i),
		})
	}
	return cards
}
