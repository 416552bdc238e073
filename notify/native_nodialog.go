//go:build !dialog
// +build !dialog

package notify

// Default returns the in-game banner; build with -tags dialog for a native
// message box.
func Default() Notifier {
	return NewBanner()
}
