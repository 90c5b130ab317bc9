// Package user names who is running todoboard, so change notifications can
// say who changed the board
package user

import (
	"os"
	"os/user"
	"strings"
)

// EnvUser overrides the detected name
const EnvUser = "TODOBOARD_USER"

// Name returns the name board changes are attributed to. It tries, in
// order, TODOBOARD_USER, the OS account and $USER, and never returns an
// empty string.
func Name() string {
	if name := strings.TrimSpace(os.Getenv(EnvUser)); name != "" {
		return name
	}
	if current, err := user.Current(); err == nil && current.Username != "" {
		return current.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "unknown"
}
