package main

import (
	"testing"

	"github.com/osuushi/grahamscan/internal/points"
	"github.com/stretchr/testify/assert"
)

func TestCheckFlags(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		assert.NoError(t, checkFlags(0, false, ""))
	})

	t.Run("random points drawn to the terminal", func(t *testing.T) {
		assert.NoError(t, checkFlags(100, true, "/tmp/hull.png"))
	})

	t.Run("imgcat without png", func(t *testing.T) {
		assert.EqualError(t, checkFlags(0, true, ""), "--imgcat requires --png")
	})

	t.Run("negative random count", func(t *testing.T) {
		assert.EqualError(t, checkFlags(-5, false, ""), "--random must not be negative, got -5")
	})
}

func TestComputeHull(t *testing.T) {
	_, err := computeHull(nil, nil)
	assert.EqualError(t, err, "no points to take the hull of")

	hull, err := computeHull([]points.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}, {X: 0, Y: 2}}, nil)
	assert.NoError(t, err)
	assert.Len(t, hull, 4)
}
