/*package lib contains the small amount of shared setup needed by the mirror
command line tool. Almost all of the heavy lifting is done by lib/'s
subpackages.
*/
package lib

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

var (
	// Version is the version of the software.
	Version = "0.1.0"
)

// NewLogger creates a human-readable logger which writes to w and drops any
// messages below the named level ("debug", "info", "warn", "error").
func NewLogger(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}
