// Package shellresolve determines the user's preferred shell, which is the
// command every new view runs.
//
// Grounded on deadpixi/mtm's getshell(): prefer $SHELL, then fall back to
// the passwd entry for the running user, then /bin/sh. Go has no stdlib
// equivalent of getpwuid(3) (os/user.User carries no shell field), so the
// passwd lookup is done by reading /etc/passwd directly, the same
// technique the retrieval pack's javanhut-RavenTerminal uses.
package shellresolve

import (
	"os"
	"os/user"
	"strings"
)

// Default returns the shell to run in each new view.
func Default() string {
	if sh := os.Getenv("SHELL"); sh != "" {
		return sh
	}
	if u, err := user.Current(); err == nil {
		if sh := lookupPasswdShell(u.Username); sh != "" {
			return sh
		}
	}
	return "/bin/sh"
}

func lookupPasswdShell(username string) string {
	data, err := os.ReadFile("/etc/passwd")
	if err != nil {
		return ""
	}
	for _, line := range strings.Split(string(data), "\n") {
		fields := strings.Split(line, ":")
		if len(fields) >= 7 && fields[0] == username {
			return fields[6]
		}
	}
	return ""
}
