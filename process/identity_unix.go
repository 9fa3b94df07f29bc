//go:build !windows

package process

import "os"

// UID returns the real user id of the running process.
func UID() int { return os.Getuid() }

// GID returns the real group id of the running process.
func GID() int { return os.Getgid() }

// EUID returns the effective user id of the running process.
func EUID() int { return os.Geteuid() }

// EGID returns the effective group id of the running process.
func EGID() int { return os.Getegid() }
