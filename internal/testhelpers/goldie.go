package testhelpers

import (
	"testing"

	"github.com/sebdah/goldie/v2"
)

// DotGoldie returns a goldie instance for DOT graph fixtures.
func DotGoldie(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t, goldie.WithNameSuffix(".dot.golden"))
}

// TextGoldie returns a goldie instance for plain text fixtures.
func TextGoldie(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t)
}
