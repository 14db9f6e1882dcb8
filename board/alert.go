package board

type (
	// Alert is a one-shot operator-facing message: load warnings, save
	// failures and the like. Each problem is surfaced exactly once and
	// never retried.
	Alert struct {
		Message  string
		Priority AlertPriority
	}

	AlertPriority int

	Alerts struct {
		list []Alert
	}
)

const (
	Info AlertPriority = iota
	Warning
	Error
)

func (a *Alerts) Add(message string, priority AlertPriority) {
	a.list = append(a.list, Alert{Message: message, Priority: priority})
}

// Pop removes and returns the oldest pending alert.
func (a *Alerts) Pop() (Alert, bool) {
	if len(a.list) == 0 {
		return Alert{}, false
	}
	alert := a.list[0]
	a.list = a.list[1:]
	return alert, true
}
