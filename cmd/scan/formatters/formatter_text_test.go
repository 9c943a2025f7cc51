package formatters_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/LegacyCodeHQ/incmap/cmd/scan/formatters"
	"github.com/LegacyCodeHQ/incmap/internal/testhelpers"
)

func TestTextFormatter_Format(t *testing.T) {
	formatter := &formatters.TextFormatter{}
	output, err := formatter.Format(sampleGraph(t))
	require.NoError(t, err)

	g := testhelpers.TextGoldie(t)
	g.Assert(t, t.Name(), []byte(output))
}
