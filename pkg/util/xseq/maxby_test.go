package xseq_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/genkit/pkg/util/xseq"
)

func TestMaxBy(t *testing.T) {
	t.Parallel()

	type host struct {
		name string
		load float64
	}
	hosts := []host{
		{"a", 0.3},
		{"b", 0.9},
		{"c", 0.9},
		{"d", 0.1},
	}

	got, err := xseq.MaxBy(slices.Values(hosts), func(h host) float64 { return h.load })
	require.NoError(t, err)
	assert.Equal(t, "b", got.name, "并列最大取最先出现者")
}

func TestMaxBy_SingleElement(t *testing.T) {
	t.Parallel()

	got, err := xseq.MaxBy(slices.Values([]int{42}), func(v int) int { return v })
	require.NoError(t, err)
	assert.Equal(t, 42, got)
}

func TestMaxBy_NegativeKeyInvertsToMin(t *testing.T) {
	t.Parallel()

	got, err := xseq.MaxBy(slices.Values([]int{5, 2, 8}), func(v int) int { return -v })
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}

func TestMaxBy_Empty(t *testing.T) {
	t.Parallel()

	got, err := xseq.MaxBy(slices.Values([]int(nil)), func(v int) int { return v })
	require.ErrorIs(t, err, xseq.ErrEmptySeq)
	assert.Zero(t, got)
}
