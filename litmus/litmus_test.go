package litmus

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
)

func TestEnvironmentIsSetup(t *testing.T) {
	assert.Equal(t, 4, 2+2)
}

func TestGoldieIsSetup(t *testing.T) {
	g := goldie.New(t)
	g.Assert(t, t.Name(), []byte("Goldie is setup!"))
}
