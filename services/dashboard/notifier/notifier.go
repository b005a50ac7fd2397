package notifier

import (
	"sync"

	"github.com/piresc/smartdustbin/services/dashboard"
	"github.com/sirupsen/logrus"
)

// LogNotifier prints toasts through logrus
type LogNotifier struct {
	log *logrus.Logger
}

// NewLogNotifier creates a notifier writing to log
func NewLogNotifier(log *logrus.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

// Notify logs the toast; errors are logged at warning level
func (n *LogNotifier) Notify(kind dashboard.ToastKind, message string) {
	entry := n.log.WithField("toast", string(kind))
	switch kind {
	case dashboard.ToastError:
		entry.Warn(message)
	default:
		entry.Info(message)
	}
}

// Toast is one recorded notification
type Toast struct {
	Kind    dashboard.ToastKind
	Message string
}

// Recorder keeps every toast in memory
type Recorder struct {
	mu     sync.Mutex
	toasts []Toast
}

// Notify records the toast
func (r *Recorder) Notify(kind dashboard.ToastKind, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.toasts = append(r.toasts, Toast{Kind: kind, Message: message})
}

// Toasts returns a copy of the recorded toasts
func (r *Recorder) Toasts() []Toast {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Toast(nil), r.toasts...)
}

// Last returns the most recent toast
func (r *Recorder) Last() (Toast, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.toasts) == 0 {
		return Toast{}, false
	}
	return r.toasts[len(r.toasts)-1], true
}
