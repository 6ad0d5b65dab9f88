package helpers

// Order status progression. Cancelled is terminal and mutually exclusive
// with the progression: once an order is cancelled the tracker shows only
// the cancelled state, regardless of how far the order had advanced.

const (
	StatusPending        = "pending"
	StatusConfirmed      = "confirmed"
	StatusPreparing      = "preparing"
	StatusOutForDelivery = "out-for-delivery"
	StatusDelivered      = "delivered"
	StatusCancelled      = "cancelled"
)

type StatusStep struct {
	Key   string
	Label string
}

var StatusSteps = []StatusStep{
	{StatusPending, "Order Placed"},
	{StatusConfirmed, "Confirmed"},
	{StatusPreparing, "Preparing"},
	{StatusOutForDelivery, "Out for Delivery"},
	{StatusDelivered, "Delivered"},
}

// AllStatuses is the set the admin console may transition an order to.
var AllStatuses = []string{
	StatusPending, StatusConfirmed, StatusPreparing,
	StatusOutForDelivery, StatusDelivered, StatusCancelled,
}

// StatusIndex returns the position of a status in the fixed progression,
// or -1 for cancelled and anything unknown.
func StatusIndex(status string) int {
	for i, step := range StatusSteps {
		if step.Key == status {
			return i
		}
	}
	return -1
}

func IsValidStatus(status string) bool {
	if status == StatusCancelled {
		return true
	}
	return StatusIndex(status) >= 0
}

// ProgressStep is one tracker cell as the templates render it.
type ProgressStep struct {
	Key     string
	Label   string
	Active  bool
	Current bool
}

// ProgressSteps marks every step up to and including the order's furthest
// reached index as active. It returns nil for cancelled orders; callers
// render the cancelled terminal view instead.
func ProgressSteps(status string) []ProgressStep {
	if status == StatusCancelled {
		return nil
	}
	idx := StatusIndex(status)
	steps := make([]ProgressStep, len(StatusSteps))
	for i, step := range StatusSteps {
		steps[i] = ProgressStep{
			Key:     step.Key,
			Label:   step.Label,
			Active:  i <= idx,
			Current: i == idx,
		}
	}
	return steps
}

// StatusLabel is the human form of a status key ("out-for-delivery" →
// "Out for delivery").
func StatusLabel(status string) string {
	for _, step := range StatusSteps {
		if step.Key == status {
			return step.Label
		}
	}
	return TitleizeSlug(status)
}

// StatusBadgeClass maps a status to its badge style in the templates.
func StatusBadgeClass(status string) string {
	switch status {
	case StatusPending:
		return "badge-pending"
	case StatusConfirmed:
		return "badge-confirmed"
	case StatusPreparing:
		return "badge-preparing"
	case StatusOutForDelivery:
		return "badge-delivery"
	case StatusDelivered:
		return "badge-delivered"
	case StatusCancelled:
		return "badge-cancelled"
	default:
		return "badge-default"
	}
}
