package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGrowth(t *testing.T) {
	assert.Equal(t, 50.0, Growth(150, 100))
	assert.Equal(t, -25.0, Growth(75, 100))
	assert.Equal(t, 0.0, Growth(100, 100))
	assert.Equal(t, 33.3, Growth(4, 3))

	// No baseline: any activity counts as full growth.
	assert.Equal(t, 100.0, Growth(5, 0))
	assert.Equal(t, 0.0, Growth(0, 0))
}

func TestRate(t *testing.T) {
	assert.Equal(t, 25.0, Rate(1, 4))
	assert.Equal(t, 66.7, Rate(2, 3))
	assert.Equal(t, 0.0, Rate(0, 10))
	assert.Equal(t, 0.0, Rate(3, 0))
}

func TestRateDifference(t *testing.T) {
	assert.Equal(t, 12.5, RateDifference(50.0, 37.5))
	assert.Equal(t, -5.0, RateDifference(20.0, 25.0))
}
