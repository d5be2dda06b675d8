package platform

import (
	"fmt"
	"runtime"
)

// ThemesDir returns the directory Ghostty loads bundled themes from. The
// location is fixed per OS; installs into it normally require root.
func ThemesDir() (string, error) {
	switch runtime.GOOS {
	case "darwin":
		return "/Applications/Ghostty.app/Contents/Resources/ghostty/themes", nil
	case "linux":
		return "/usr/share/ghostty/themes", nil
	default:
		return "", fmt.Errorf("theme installs are supported on macOS and Linux only (current: %s)", runtime.GOOS)
	}
}
