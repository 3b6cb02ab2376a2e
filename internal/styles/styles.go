package styles

import (
	"os"

	"github.com/muesli/termenv"
)

var (
	stdout = termenv.NewOutput(os.Stdout)
	stderr = termenv.NewOutput(os.Stderr)

	ERROR = func(s string) string {
		return stderr.String(s).
			Foreground(stderr.Color("9")).
			String()
	}
	SELECTION = func(s string) string {
		return stdout.String(s).
			Foreground(stdout.Color("10")).
			Bold().
			String()
	}
)
