package poll

// DeliveryStatus tracks the send progress of the poll message itself.
type DeliveryStatus string

const (
	StatusUnsent      DeliveryStatus = "unsent"
	StatusEncrypting  DeliveryStatus = "encrypting"
	StatusSending     DeliveryStatus = "sending"
	StatusSent        DeliveryStatus = "sent"
	StatusSynced      DeliveryStatus = "synced"
	StatusUndelivered DeliveryStatus = "undelivered"
	StatusFailed      DeliveryStatus = "failed"
)

// IsSent reports whether the message reached the server. Every other
// status, failures included, still counts as pending.
func (s DeliveryStatus) IsSent() bool {
	return s == StatusSent || s == StatusSynced
}

// ParseDeliveryStatus maps a status name to its DeliveryStatus.
// The shorthand "pending" maps to StatusSending.
func ParseDeliveryStatus(s string) (DeliveryStatus, error) {
	switch DeliveryStatus(s) {
	case StatusUnsent, StatusEncrypting, StatusSending, StatusSent,
		StatusSynced, StatusUndelivered, StatusFailed:
		return DeliveryStatus(s), nil
	case "pending":
		return StatusSending, nil
	}
	return "", ErrUnknownStatus
}
