package domain_test

import (
	"encoding/json"
	"math"
	"testing"

	. "github.com/pseudomuto/domainkit/pkg/domain"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestNewNumber(t *testing.T) {
	n := NewNumber(42)
	require.Equal(t, 42, n.Value())
	require.Equal(t, "42", n.String())
	require.False(t, n.IsZero())
	require.True(t, NewNumber(0).IsZero())
}

func TestNumberFromPtr(t *testing.T) {
	v := int64(7)
	n, err := NumberFromPtr(&v)
	require.NoError(t, err)
	require.Equal(t, int64(7), n.Value())

	_, err = NumberFromPtr[int64](nil)
	require.ErrorIs(t, err, ErrNilValue)
}

func TestParseNumber(t *testing.T) {
	t.Run("integers", func(t *testing.T) {
		n, err := ParseNumber[int32]("-17")
		require.NoError(t, err)
		require.Equal(t, int32(-17), n.Value())
	})

	t.Run("unsigned", func(t *testing.T) {
		n, err := ParseNumber[uint8]("255")
		require.NoError(t, err)
		require.Equal(t, uint8(255), n.Value())

		_, err = ParseNumber[uint8]("256")
		require.Error(t, err, "out of range for the underlying type")
	})

	t.Run("floats", func(t *testing.T) {
		n, err := ParseNumber[float64]("12.5")
		require.NoError(t, err)
		require.Equal(t, 12.5, n.Value())
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := ParseNumber[int]("twelve")
		require.Error(t, err)
	})
}

func TestNumberString(t *testing.T) {
	require.Equal(t, "-17", NewNumber(int32(-17)).String())
	require.Equal(t, "255", NewNumber(uint8(255)).String())
	require.Equal(t, "12.5", NewNumber(12.5).String())
	require.Equal(t, "1.5", NewNumber(float32(1.5)).String())
}

func TestNumberEquality(t *testing.T) {
	require.True(t, NewNumber(7).Equal(NewNumber(7)))
	require.Equal(t, NewNumber(7).Hash(), NewNumber(7).Hash())
	require.False(t, NewNumber(7).Equal(NewNumber(8)))
	require.True(t, NewNumber(7).Equal(RestoreNumber(7)))
}

func TestNumberCompare(t *testing.T) {
	t.Run("orders numerically", func(t *testing.T) {
		require.Equal(t, -1, NewNumber(3).Compare(NewNumber(7)))
		require.Equal(t, 1, NewNumber(7).Compare(NewNumber(3)))
		require.Equal(t, 0, NewNumber(7).Compare(NewNumber(7)))
	})

	t.Run("NaN stays total", func(t *testing.T) {
		nan := NewNumber(math.NaN())
		one := NewNumber(1.0)

		// IEEE equality: NaN is not even equal to itself.
		require.False(t, nan.Equal(nan))

		// The ordering is total anyway: NaN sorts below everything and
		// compares as zero against itself.
		require.Equal(t, -1, nan.Compare(one))
		require.Equal(t, 1, one.Compare(nan))
		require.Equal(t, 0, nan.Compare(nan))
	})
}

func TestNumberJSON(t *testing.T) {
	t.Run("round trips as a JSON number", func(t *testing.T) {
		b, err := json.Marshal(NewNumber(12.5))
		require.NoError(t, err)
		require.Equal(t, "12.5", string(b))

		var out Number[float64]
		require.NoError(t, json.Unmarshal(b, &out))
		require.True(t, out.Equal(NewNumber(12.5)))
	})

	t.Run("null is rejected", func(t *testing.T) {
		var out Number[int]
		require.ErrorIs(t, json.Unmarshal([]byte(`null`), &out), ErrNilValue)
	})

	t.Run("fraction into an integer kind fails", func(t *testing.T) {
		var out Number[int]
		require.Error(t, json.Unmarshal([]byte(`12.5`), &out))
	})
}

func TestNumberYAML(t *testing.T) {
	b, err := yaml.Marshal(NewNumber(42))
	require.NoError(t, err)
	require.Equal(t, "42\n", string(b))

	var out Number[int]
	require.NoError(t, yaml.Unmarshal(b, &out))
	require.Equal(t, 42, out.Value())

	var null Number[int]
	err = null.UnmarshalYAML(&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"})
	require.ErrorIs(t, err, ErrNilValue)
}

func TestNumberText(t *testing.T) {
	b, err := NewNumber(int64(-99)).MarshalText()
	require.NoError(t, err)
	require.Equal(t, "-99", string(b))

	var out Number[int64]
	require.NoError(t, out.UnmarshalText(b))
	require.Equal(t, int64(-99), out.Value())
}
