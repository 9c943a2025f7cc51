package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/LegacyCodeHQ/incmap/incgraph"
)

func TestParseDirSpecs(t *testing.T) {
	for _, tc := range []struct {
		name string
		spec string
		want incgraph.DirSpec
	}{
		{
			name: "no alias",
			spec: "include",
			want: incgraph.DirSpec{Path: "include"},
		},
		{
			name: "alias",
			spec: "vendor/mylib/include#mylib",
			want: incgraph.DirSpec{Path: "vendor/mylib/include", Alias: "mylib"},
		},
		{
			name: "trailing marker means empty alias",
			spec: "include#",
			want: incgraph.DirSpec{Path: "include"},
		},
		{
			name: "last marker wins",
			spec: "odd#dir#alias",
			want: incgraph.DirSpec{Path: "odd#dir", Alias: "alias"},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseDirSpecs([]string{tc.spec})
			assert.Equal(t, []incgraph.DirSpec{tc.want}, got)
		})
	}
}

func TestParseDirSpecs_Empty(t *testing.T) {
	assert.Empty(t, ParseDirSpecs(nil))
}
