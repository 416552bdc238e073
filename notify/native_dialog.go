//go:build dialog
// +build dialog

package notify

import (
	"github.com/sqweek/dialog"
)

// Native shows a blocking OS message box.
type Native struct{}

func (Native) Notify(m Message) {
	dialog.Message("%s", m.Body).Title(m.Title).Info()
}

func (Native) Pending() bool { return false }

// Default returns the native message box in dialog builds.
func Default() Notifier {
	return Native{}
}
