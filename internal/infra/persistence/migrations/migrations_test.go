package migrations

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSource_EveryVersionHasUpAndDown(t *testing.T) {
	src, err := Source()
	require.NoError(t, err)
	t.Cleanup(func() { _ = src.Close() })

	version, err := src.First()
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)

	count := 0
	for {
		count++

		up, _, err := src.ReadUp(version)
		require.NoError(t, err, "missing up migration for version %d", version)
		_ = up.Close()

		down, _, err := src.ReadDown(version)
		require.NoError(t, err, "missing down migration for version %d", version)
		_ = down.Close()

		next, err := src.Next(version)
		if err != nil {
			require.ErrorIs(t, err, os.ErrNotExist)

			break
		}
		version = next
	}

	assert.Equal(t, 3, count)
}

func TestSource_ProfileTablesAreUniquePerAccount(t *testing.T) {
	src, err := Source()
	require.NoError(t, err)
	t.Cleanup(func() { _ = src.Close() })

	for _, version := range []uint{2, 3} {
		r, identifier, err := src.ReadUp(version)
		require.NoError(t, err)

		body, err := io.ReadAll(r)
		require.NoError(t, err)
		_ = r.Close()

		sqlText := string(body)
		assert.Contains(t, sqlText, "UNIQUE (account_id)", identifier)
		assert.Contains(t, sqlText, "REFERENCES accounts (id) ON DELETE CASCADE", identifier)
		assert.True(t, strings.HasPrefix(sqlText, "CREATE TABLE IF NOT EXISTS"), identifier)
	}
}
