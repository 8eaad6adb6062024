package config

import (
	homedir "github.com/mitchellh/go-homedir"

	"github.com/reposync/reposync/pkg/errors"
)

const (
	// UserConfigPath is the default path to the reposync user config.
	UserConfigPath = "~/.reposync.yaml"

	// InitialUserConfigVersion is the first version of the reposync
	// user config. Config files that do not specify a version
	// will default to this version.
	InitialUserConfigVersion = "v1alpha1"

	// SupportedUserConfigVersion is the supported version of the
	// reposync user config of the current reposync binary.
	SupportedUserConfigVersion = "v1alpha1"
)

// User contains per-user defaults, such as the remote to sync with when no
// HOST:PATH argument is given.
type User struct {
	Version string `json:"version,omitempty"`
	Remote  string `json:"remote"`
}

func (u User) getVersion() string {
	return u.Version
}

// homedirExpand will be overridden in mock tests
var homedirExpand = homedir.Expand

// ParseUser attempts to parse the User stored in the default path.
func ParseUser() (User, error) {
	path, err := GetUserConfigPath()
	if err != nil {
		return User{}, errors.WithContext(err, "expand config path")
	}

	config := User{Version: InitialUserConfigVersion}
	if err := parseConfig(path, &config, SupportedUserConfigVersion); err != nil {
		if _, ok := err.(errors.FileNotFound); ok {
			return User{}, err
		}
		return User{}, errors.WithContext(err, "parse")
	}
	return config, nil
}

// GetUserConfigPath gets the path to the user's global reposync
// configuration. This path is expanded, so it can be directly passed to file
// operations.
func GetUserConfigPath() (string, error) {
	return homedirExpand(UserConfigPath)
}
