//go:build windows

package process

// UID returns UnsupportedID: Windows has no POSIX user ids.
func UID() int { return UnsupportedID }

// GID returns UnsupportedID: Windows has no POSIX group ids.
func GID() int { return UnsupportedID }

// EUID returns UnsupportedID: Windows has no POSIX user ids.
func EUID() int { return UnsupportedID }

// EGID returns UnsupportedID: Windows has no POSIX group ids.
func EGID() int { return UnsupportedID }
