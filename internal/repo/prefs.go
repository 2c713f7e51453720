package repo

import (
	"fmt"

	"hustle/internal/store"
)

// Themes the planner knows about.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Theme returns the persisted theme preference, defaulting to dark.
func (r *Repos) Theme() string {
	return store.Get(r.kv, keyTheme, ThemeDark)
}

// SetTheme persists the theme preference.
func (r *Repos) SetTheme(theme string) error {
	if theme != ThemeDark && theme != ThemeLight {
		return fmt.Errorf("unknown theme %q", theme)
	}
	r.kv.Set(keyTheme, theme)
	return nil
}

// PrivacyAcknowledged reports whether the one-time privacy notice has been
// accepted.
func (r *Repos) PrivacyAcknowledged() bool {
	return store.Get(r.kv, keyPrivacySeen, false)
}

// AcknowledgePrivacy records the one-time privacy notice acceptance.
func (r *Repos) AcknowledgePrivacy() {
	r.kv.Set(keyPrivacySeen, true)
}
