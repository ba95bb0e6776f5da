package idx_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/localcore/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestNewAndParse(t *testing.T) {
	id := idx.New()
	require.False(t, id.IsZero())

	parsed, err := idx.Parse(id.String())
	require.NoError(t, err)
	require.Equal(t, id, parsed)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := idx.Parse("")
	require.ErrorIs(t, err, idx.ErrInvalid)

	_, err = idx.Parse("not-a-ulid")
	require.ErrorIs(t, err, idx.ErrInvalid)
}

func TestNewIsOrderedWithinMillisecond(t *testing.T) {
	tm := time.Unix(1700000000, 0).UTC()

	// Same timestamp, monotonic entropy keeps them increasing
	a := idx.NewAt(tm)
	b := idx.NewAt(tm)
	require.Less(t, a.String(), b.String())
}

func TestTimeExtraction(t *testing.T) {
	tm := time.Unix(1700000000, 0).UTC()
	id := idx.NewAt(tm)
	require.WithinDuration(t, tm, id.Time(), time.Millisecond)

	require.True(t, idx.ID("caller-id").Time().IsZero())
}

func TestAlnum(t *testing.T) {
	seen := make(map[string]struct{}, 100)
	for range 100 {
		s := idx.Alnum(16)
		require.Len(t, s, 16)
		require.Regexp(t, `^[A-Za-z0-9]{16}$`, s)
		require.NotContains(t, seen, s)
		seen[s] = struct{}{}
	}

	require.Empty(t, idx.Alnum(0))
}
