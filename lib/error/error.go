/*package error contains simple functions for reporting mirror errors.
*/
package error

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog"
)

var (
	logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	exit   = os.Exit
)

// SetLogger sets the logger that errors are reported through.
func SetLogger(log zerolog.Logger) { logger = log }

// External reports an error and kills the program. It should be used when an
// error is something a user could reasonbly be expected to fix through
// changes in configuration/data/environment. It has the same signature as
// the standard fmt.*printf() functions.
func External(format string, a ...interface{}) {
	logger.Error().Msg("mirror exited early with the following error:\n" +
		fmt.Sprintf(format, a...))
	exit(1)
}

// Internal reports an error along with a stack trace and kills the program.
// It should be used when the error requires a code dive to fix. It has the
// same signature as the standard fmt.*printf() functions.
func Internal(format string, a ...interface{}) {
	logger.Error().
		Str("stack", string(debug.Stack())).
		Msg("mirror exited early with the following internal error:\n" +
			fmt.Sprintf(format, a...))
	exit(1)
}
