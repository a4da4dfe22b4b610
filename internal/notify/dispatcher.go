package notify

import (
	"fmt"

	"ptd/internal/models"
)

// PriceDropNotification is emitted on every confirmed price drop. Whether
// and how it is displayed is the consumer's concern.
type PriceDropNotification struct {
	Product  models.TrackedProduct
	Alert    models.AlertRecord
	OldPrice float64
	NewPrice float64
	Savings  string
}

// PriceIncreaseInfo is a soft, non-alerting signal. It is only emitted for
// foreground checks so background re-checks stay quiet.
type PriceIncreaseInfo struct {
	Product  models.TrackedProduct
	OldPrice float64
	NewPrice float64
}

// ReminderNotification nudges the user to revisit tracked products.
type ReminderNotification struct {
	ProductCount int
	Message      string
}

// NotifierInterface is the sink consuming dispatched requests. The default
// implementation logs; rendering lives outside the daemon.
type NotifierInterface interface {
	NotifyDrop(n *PriceDropNotification)
	NotifyIncrease(n *PriceIncreaseInfo)
	NotifyReminder(n *ReminderNotification)
}

type DispatcherInterface interface {
	Dispatch(product *models.TrackedProduct, change models.PriceChange, alert *models.AlertRecord, foreground bool)
	Remind(productCount int)
}

// Dispatcher maps detector classifications to notification requests.
// Exactly one request per dispatch: a drop notification, an increase info,
// or nothing.
type Dispatcher struct {
	notifier NotifierInterface
}

func NewDispatcher(notifier NotifierInterface) DispatcherInterface {
	return &Dispatcher{notifier: notifier}
}

func (d *Dispatcher) Dispatch(product *models.TrackedProduct, change models.PriceChange, alert *models.AlertRecord, foreground bool) {
	switch change.Outcome {
	case models.Dropped:
		n := &PriceDropNotification{
			Product:  *product,
			OldPrice: change.OldPrice,
			NewPrice: change.NewPrice,
			Savings:  change.SavingsPercent,
		}
		if alert != nil {
			n.Alert = *alert
		}
		d.notifier.NotifyDrop(n)
	case models.Increased:
		if foreground {
			d.notifier.NotifyIncrease(&PriceIncreaseInfo{
				Product:  *product,
				OldPrice: change.OldPrice,
				NewPrice: change.NewPrice,
			})
		}
	}
}

func (d *Dispatcher) Remind(productCount int) {
	if productCount == 0 {
		return
	}
	d.notifier.NotifyReminder(&ReminderNotification{
		ProductCount: productCount,
		Message:      fmt.Sprintf("You have %d tracked products. Visit them to check for price drops.", productCount),
	})
}
