package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsKept(t *testing.T) {
	tests := []struct {
		name     string
		response string
		exp      bool
		expError bool
	}{
		{
			name:     "NonMatching",
			response: "::\tsrc/main.go\n",
			exp:      true,
		},
		{
			name:     "Ignored",
			response: ".gitignore:2:*.log\tbuild.log\n",
			exp:      false,
		},
		{
			name:     "Negated",
			response: ".gitignore:5:!keep.log\tkeep.log\n",
			exp:      true,
		},
		{
			name:     "GitDir",
			response: "::\t.git\n",
			exp:      false,
		},
		{
			name:     "InsideGitDir",
			response: "::\t.git/config\n",
			exp:      false,
		},
		{
			name:     "GitPrefixedSibling",
			response: "::\t.gitignore\n",
			exp:      true,
		},
		{
			name:     "MissingPath",
			response: "no tab here\n",
			expError: true,
		},
		{
			name:     "MissingPattern",
			response: "source:\tpath\n",
			expError: true,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			keep, err := isKept(test.response)
			if test.expError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.exp, keep)
		})
	}
}
