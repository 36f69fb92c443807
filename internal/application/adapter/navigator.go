package adapter

// Navigator applies a navigation decision. Replace must not grow browser
// history; at the HTTP edge this is a redirect, in tests a recording fake.
type Navigator interface {
	// Replace navigates to the given path, replacing the current location.
	Replace(path string)

	// CurrentPath returns the path the user is currently on.
	CurrentPath() string
}
