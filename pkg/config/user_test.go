package config

import (
	"testing"

	"github.com/ghodss/yaml"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reposync/reposync/pkg/errors"
)

func TestParseUser(t *testing.T) {
	userEmptyVersion := User{
		Remote: "devbox:projects/app",
	}
	userCorrectVersion := User{
		Version: SupportedUserConfigVersion,
		Remote:  "devbox:projects/app",
	}
	userIncorrectVersion := User{
		Version: "incorrect_version",
		Remote:  "devbox:projects/app",
	}

	tests := []struct {
		name      string
		input     User
		expConfig User
		expError  bool
	}{
		{
			name:      "EmptyVersionDefaults",
			input:     userEmptyVersion,
			expConfig: User{Version: InitialUserConfigVersion, Remote: "devbox:projects/app"},
		},
		{
			name:      "CorrectVersion",
			input:     userCorrectVersion,
			expConfig: userCorrectVersion,
		},
		{
			name:     "IncorrectVersion",
			input:    userIncorrectVersion,
			expError: true,
		},
	}

	homedirExpand = func(path string) (string, error) {
		return "/home/test/.reposync.yaml", nil
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			fs = afero.NewMemMapFs()
			configBytes, err := yaml.Marshal(test.input)
			require.NoError(t, err)
			require.NoError(t, afero.WriteFile(fs,
				"/home/test/.reposync.yaml", configBytes, 0644))

			config, err := ParseUser()
			if test.expError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.expConfig, config)
		})
	}
}

func TestParseUserMissingFile(t *testing.T) {
	fs = afero.NewMemMapFs()
	homedirExpand = func(path string) (string, error) {
		return "/home/test/.reposync.yaml", nil
	}

	_, err := ParseUser()
	require.Error(t, err)
	_, ok := errors.RootCause(err).(errors.FileNotFound)
	assert.True(t, ok)
}

func TestParseUserUnknownField(t *testing.T) {
	fs = afero.NewMemMapFs()
	homedirExpand = func(path string) (string, error) {
		return "/home/test/.reposync.yaml", nil
	}
	require.NoError(t, afero.WriteFile(fs, "/home/test/.reposync.yaml",
		[]byte("remote: devbox:app\nbogus: true\n"), 0644))

	_, err := ParseUser()
	assert.Error(t, err)
}
