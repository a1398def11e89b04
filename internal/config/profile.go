package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Profile is the content shown on the demo profile page
type Profile struct {
	DisplayName string   `koanf:"display_name"`
	Status      string   `koanf:"status"`
	Bio         []string `koanf:"bio"`
	Actions     []string `koanf:"actions"`    // one action button per label
	ItemCount   int      `koanf:"item_count"` // entries in the list and grid surfaces

	// Header sizes in layout units before any scrolling
	Header HeaderConfig `koanf:"header"`
}

// HeaderConfig holds the expanded header sizes
type HeaderConfig struct {
	AvatarSize    float64 `koanf:"avatar_size"`
	AvatarMargin  float64 `koanf:"avatar_margin"`
	UsernameSize  float64 `koanf:"username_size"`
	ButtonsHeight float64 `koanf:"buttons_height"`
	PivotHeight   float64 `koanf:"pivot_height"`
}

const (
	appName         = "profile-header"
	profileFileName = "profile.toml"
)

// Profile defaults
const (
	DefaultItemCount     = 100
	MaxItemCount         = 10000
	DefaultAvatarSize    = 72
	DefaultAvatarMargin  = 8
	DefaultUsernameSize  = 22
	DefaultButtonsHeight = 40
	DefaultPivotHeight   = 36
)

// DefaultProfile returns the profile used when no file overrides it
func DefaultProfile() *Profile {
	return &Profile{
		DisplayName: "Jane Doe",
		Status:      "online",
		Bio: []string{
			"Scroll any tab to collapse the header.",
			"Release mid-way and it snaps to expanded or compact.",
		},
		Actions:   []string{"Message", "Call", "Follow"},
		ItemCount: DefaultItemCount,
		Header: HeaderConfig{
			AvatarSize:    DefaultAvatarSize,
			AvatarMargin:  DefaultAvatarMargin,
			UsernameSize:  DefaultUsernameSize,
			ButtonsHeight: DefaultButtonsHeight,
			PivotHeight:   DefaultPivotHeight,
		},
	}
}

// LoadProfile reads profile.toml from the config directory and the working directory
func LoadProfile() (*Profile, error) {
	return LoadProfileFrom(profilePaths()...)
}

// LoadProfileFrom reads the given TOML files in order (last wins); missing files are skipped
func LoadProfileFrom(paths ...string) (*Profile, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	profile := DefaultProfile()
	if err := k.Unmarshal("", profile); err != nil {
		return nil, err
	}

	profile.normalize()
	return profile, nil
}

// normalize replaces unusable values with defaults
func (p *Profile) normalize() {
	defaults := DefaultProfile()

	if p.DisplayName == "" {
		p.DisplayName = defaults.DisplayName
	}
	if p.ItemCount <= 0 {
		p.ItemCount = DefaultItemCount
	}
	if p.ItemCount > MaxItemCount {
		p.ItemCount = MaxItemCount
	}
	if p.Header.AvatarSize <= 0 {
		p.Header.AvatarSize = DefaultAvatarSize
	}
	if p.Header.AvatarMargin < 0 {
		p.Header.AvatarMargin = 0
	}
	if p.Header.UsernameSize <= 0 {
		p.Header.UsernameSize = DefaultUsernameSize
	}
	if p.Header.ButtonsHeight < 0 {
		p.Header.ButtonsHeight = 0
	}
	if p.Header.PivotHeight <= 0 {
		p.Header.PivotHeight = DefaultPivotHeight
	}
}

func profilePaths() []string {
	paths := []string{}

	// 1. $XDG_CONFIG_HOME/profile-header/profile.toml
	paths = append(paths, filepath.Join(xdg.ConfigHome, appName, profileFileName))

	// 2. ./profile.toml (pwd, highest priority)
	paths = append(paths, profileFileName)

	return paths
}
