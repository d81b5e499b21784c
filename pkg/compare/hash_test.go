package compare_test

import (
	"strings"
	"testing"

	. "github.com/pseudomuto/domainkit/pkg/compare"
	"github.com/stretchr/testify/require"
)

func TestMix(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		require.Equal(t, Mix(1, 2), Mix(1, 2))
	})

	t.Run("order sensitive", func(t *testing.T) {
		require.NotEqual(t, Mix(1, 2), Mix(2, 1))
	})
}

func TestHashString(t *testing.T) {
	require.Equal(t, HashString("ada"), HashString("ada"))
	require.NotEqual(t, HashString("ada"), HashString("Ada"))
	require.NotEqual(t, HashString(""), HashString("a"))
}

func TestHashBytes(t *testing.T) {
	require.Equal(t, HashBytes([]byte("ada")), HashBytes([]byte("ada")))
	require.Equal(t, HashString("ada"), HashBytes([]byte("ada")))
}

func TestHashFolded(t *testing.T) {
	t.Run("fold-equal strings hash alike", func(t *testing.T) {
		pairs := [][2]string{
			{"go", "GO"},
			{"Grüße", "GRÜẞE"},    // capital sharp s folds with ß
			{"kelvin", "Kelvin"},  // Kelvin sign folds to k
			{"ΣΙΣΥΦΟΣ", "σισυφοσ"}, // trailing sigma in medial form
			{"ΣΙΣΥΦΟΣ", "σισυφος"}, // trailing sigma in final form
		}
		for _, p := range pairs {
			require.True(t, strings.EqualFold(p[0], p[1]), "fixture %q vs %q", p[0], p[1])
			require.Equal(t, HashFolded(p[0]), HashFolded(p[1]), "%q vs %q", p[0], p[1])
		}
	})

	t.Run("distinct strings hash apart", func(t *testing.T) {
		require.NotEqual(t, HashFolded("left"), HashFolded("right"))
	})
}

func TestFolded(t *testing.T) {
	t.Run("fold-equal strings share one canonical form", func(t *testing.T) {
		require.Equal(t, Folded("GO"), Folded("go"))
		require.Equal(t, Folded("GRÜẞE"), Folded("grüße"))
		require.NotEqual(t, Folded("left"), Folded("right"))
	})

	t.Run("agrees with HashFolded", func(t *testing.T) {
		for _, s := range []string{"", "go", "ΣΙΣΥΦΟΣ", "K kelvin", "mixed Case"} {
			require.Equal(t, HashString(Folded(s)), HashFolded(s), "%q", s)
		}
	})
}

type fixedHash struct {
	n int
}

func (f fixedHash) Hash() uint64 { return 42 }

func TestValueHash(t *testing.T) {
	t.Run("consistent with equality", func(t *testing.T) {
		require.Equal(t, ValueHash(7), ValueHash(7))
		require.Equal(t, ValueHash("ada"), ValueHash("ada"))
	})

	t.Run("dispatches to Hash method", func(t *testing.T) {
		require.Equal(t, uint64(42), ValueHash(fixedHash{n: 1}))
		require.Equal(t, uint64(42), ValueHash(fixedHash{n: 2}))
	})

	t.Run("agrees with HashOf on strings", func(t *testing.T) {
		require.Equal(t, HashString("ada"), ValueHash("ada"))
		require.Equal(t, HashOf("ada"), ValueHash("ada"))
	})
}

func TestHashOf(t *testing.T) {
	t.Run("nil is the null bucket", func(t *testing.T) {
		require.Equal(t, HashNull, HashOf(nil))
	})

	t.Run("dispatches to Hash method", func(t *testing.T) {
		require.Equal(t, uint64(42), HashOf(fixedHash{n: 3}))
	})

	t.Run("comparable values hash by value", func(t *testing.T) {
		type point struct{ x, y int }
		require.Equal(t, HashOf(point{1, 2}), HashOf(point{1, 2}))
	})

	t.Run("non-comparable values share a bucket", func(t *testing.T) {
		require.Equal(t, HashOf([]int{1}), HashOf([]int{2, 3}))
	})
}
