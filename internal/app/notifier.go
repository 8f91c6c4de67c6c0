package app

import (
	"fmt"
	"io"

	"litsphere/internal/logging"
)

// AlertNotifier reports initialization failures on a console stream and
// in the log. GLFW has no message boxes.
type AlertNotifier struct {
	w io.Writer
}

// NewAlertNotifier writes alerts to w.
func NewAlertNotifier(w io.Writer) *AlertNotifier {
	return &AlertNotifier{w: w}
}

func (n *AlertNotifier) Alert(title, message string) {
	fmt.Fprintf(n.w, "%s: %s\n", title, message)
	logging.Logger().Error(message, "alert", title)
}
