package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeProfile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

func TestLoadProfileFrom_Defaults(t *testing.T) {
	profile, err := LoadProfileFrom(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("LoadProfileFrom() error = %v", err)
	}

	defaults := DefaultProfile()
	if profile.DisplayName != defaults.DisplayName {
		t.Errorf("Expected display name %q, got %q", defaults.DisplayName, profile.DisplayName)
	}
	if profile.ItemCount != DefaultItemCount {
		t.Errorf("Expected %d items, got %d", DefaultItemCount, profile.ItemCount)
	}
	if len(profile.Actions) != 3 {
		t.Errorf("Expected 3 default actions, got %d", len(profile.Actions))
	}
	if profile.Header.AvatarSize != DefaultAvatarSize {
		t.Errorf("Expected avatar size %d, got %v", DefaultAvatarSize, profile.Header.AvatarSize)
	}
}

func TestLoadProfileFrom_Overrides(t *testing.T) {
	dir := t.TempDir()
	base := writeProfile(t, dir, "base.toml", `
display_name = "Ada"
status = "away"
item_count = 40
actions = ["Wave", "Share"]

[header]
avatar_size = 96
buttons_height = 48
`)
	local := writeProfile(t, dir, "local.toml", `
status = "busy"

[header]
avatar_margin = 4
`)

	profile, err := LoadProfileFrom(base, local)
	if err != nil {
		t.Fatalf("LoadProfileFrom() error = %v", err)
	}

	if profile.DisplayName != "Ada" {
		t.Errorf("Expected display name 'Ada', got %q", profile.DisplayName)
	}
	if profile.Status != "busy" {
		t.Errorf("Later file should win, expected status 'busy', got %q", profile.Status)
	}
	if profile.ItemCount != 40 {
		t.Errorf("Expected 40 items, got %d", profile.ItemCount)
	}
	if len(profile.Actions) != 2 || profile.Actions[0] != "Wave" || profile.Actions[1] != "Share" {
		t.Errorf("Unexpected actions %v", profile.Actions)
	}
	if profile.Header.AvatarSize != 96 || profile.Header.ButtonsHeight != 48 || profile.Header.AvatarMargin != 4 {
		t.Errorf("Unexpected header %+v", profile.Header)
	}
	if profile.Header.UsernameSize != DefaultUsernameSize {
		t.Errorf("Unset username size should keep default, got %v", profile.Header.UsernameSize)
	}
}

func TestLoadProfileFrom_Normalize(t *testing.T) {
	path := writeProfile(t, t.TempDir(), "profile.toml", `
display_name = ""
item_count = 999999

[header]
avatar_size = -3
buttons_height = -1
`)

	profile, err := LoadProfileFrom(path)
	if err != nil {
		t.Fatalf("LoadProfileFrom() error = %v", err)
	}

	if profile.DisplayName == "" {
		t.Error("Empty display name should fall back to default")
	}
	if profile.ItemCount != MaxItemCount {
		t.Errorf("Item count should be clamped to %d, got %d", MaxItemCount, profile.ItemCount)
	}
	if profile.Header.AvatarSize != DefaultAvatarSize {
		t.Errorf("Invalid avatar size should fall back to default, got %v", profile.Header.AvatarSize)
	}
	if profile.Header.ButtonsHeight != 0 {
		t.Errorf("Negative buttons height should be clamped to 0, got %v", profile.Header.ButtonsHeight)
	}
}

func TestLoadProfileFrom_InvalidFile(t *testing.T) {
	path := writeProfile(t, t.TempDir(), "broken.toml", "display_name = [unterminated")

	if _, err := LoadProfileFrom(path); err == nil {
		t.Error("Expected an error for malformed TOML")
	}
}

func TestProfilePaths(t *testing.T) {
	paths := profilePaths()
	if len(paths) != 2 {
		t.Fatalf("Expected 2 profile paths, got %v", paths)
	}

	if filepath.Base(paths[0]) != profileFileName || filepath.Base(filepath.Dir(paths[0])) != appName {
		t.Errorf("Expected the user profile under %s/%s, got %s", appName, profileFileName, paths[0])
	}
	if paths[1] != profileFileName {
		t.Errorf("Working directory profile should load last, got %s", paths[1])
	}
}
