// Package shell is the navigation controller of the gallery. It owns the
// appearance state, mounts one variant view at a time and draws the chrome
// around it.
package shell
