package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
)

const (
	EnvExchangeURL   = "NBU_EXCHANGE_URL"
	EnvSecuritiesURL = "NBU_SECURITIES_URL"
)

// RunExtension looks for an external nbu-<subcommand> executable on PATH and
// runs it with the remaining arguments, git style. It reports whether an
// extension ran and with which exit code; (false, 0) means none was found.
func RunExtension(subcommand string, args []string) (bool, int) {
	lp, err := exec.LookPath("nbu-" + subcommand)
	if err != nil {
		return false, 0
	}

	ext := exec.Command(lp, args...)
	ext.Stdin = os.Stdin
	ext.Stdout = os.Stdout
	ext.Stderr = os.Stderr

	// The endpoint flags travel as environment variables so that extensions
	// query the same endpoints as the main command.
	ext.Env = append(os.Environ(),
		EnvExchangeURL+"="+*exchangeURL,
		EnvSecuritiesURL+"="+*securitiesURL,
	)

	if err := ext.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return true, exitErr.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing %q: %v\n", lp, err)
		return true, 1
	}
	return true, 0
}
