package prefs

import "fmt"

// UnknownThemeError indicates a theme name outside the supported set.
type UnknownThemeError struct {
	Theme string
}

func (e *UnknownThemeError) Error() string {
	return fmt.Sprintf("unknown theme %q: use %q or %q", e.Theme, ThemeLight, ThemeDark)
}
