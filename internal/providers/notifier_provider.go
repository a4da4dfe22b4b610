package providers

import "ptd/internal/notify"

// LogNotifier is the default notification sink: it records every request
// in the app log. Actual rendering (system notifications, badge updates)
// is done by the external UI consuming the API.
type LogNotifier struct {
	logger Logger
}

func NewLogNotifier(logger Logger) notify.NotifierInterface {
	return &LogNotifier{logger: logger}
}

func (ln *LogNotifier) NotifyDrop(n *notify.PriceDropNotification) {
	ln.logger.Infof(TypeApp, "Price drop: %s %s%.2f -> %s%.2f (-%s%%)",
		truncate(n.Product.Title, 40), n.Product.Currency, n.OldPrice, n.Product.Currency, n.NewPrice, n.Savings)
}

func (ln *LogNotifier) NotifyIncrease(n *notify.PriceIncreaseInfo) {
	ln.logger.Infof(TypeApp, "Price increase: %s %s%.2f -> %s%.2f",
		truncate(n.Product.Title, 40), n.Product.Currency, n.OldPrice, n.Product.Currency, n.NewPrice)
}

func (ln *LogNotifier) NotifyReminder(n *notify.ReminderNotification) {
	ln.logger.Infof(TypeApp, "Reminder: %s", n.Message)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
