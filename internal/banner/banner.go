// Package banner renders the CLI startup banner.
package banner

import "fmt"

const art = `      _
  ___| |__   _____      __
 / __| '_ \ / _ \ \ /\ / /
| (__| |_) | (_) \ V  V /
 \___|_.__/ \___/ \_/\_/
`

// Banner returns the startup banner for the given version string.
func Banner(version string) string {
	return fmt.Sprintf("%s                  %s\n\n", art, version)
}
