package countries

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestName(t *testing.T) {
	n, ok := Name("JP")
	require.True(t, ok)
	require.Equal(t, "Japan", n)

	// lookups are case-insensitive
	n, ok = Name("jp")
	require.True(t, ok)
	require.Equal(t, "Japan", n)

	_, ok = Name("XX")
	require.False(t, ok)
	_, ok = Name("")
	require.False(t, ok)
}

func TestValid(t *testing.T) {
	require.True(t, Valid("US"))
	require.True(t, Valid("us"))
	require.False(t, Valid("ZZ"))
	require.False(t, Valid(""))
}

func TestAllSortedByName(t *testing.T) {
	all := All()
	require.Greater(t, len(all), 150)
	for i := 1; i < len(all); i++ {
		prev := strings.ToLower(all[i-1].Name)
		cur := strings.ToLower(all[i].Name)
		require.LessOrEqual(t, prev, cur, "entries %d/%d out of order", i-1, i)
	}
	for _, c := range all {
		require.Len(t, c.Code, 2)
		require.NotEmpty(t, c.Name)
	}
}
