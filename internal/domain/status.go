package domain

// DisplayType tags where an item in the unified orders view came from
type DisplayType string

const (
	DisplayOwnBooking      DisplayType = "own_booking"
	DisplaySentRequest     DisplayType = "sent_request"
	DisplayReceivedRequest DisplayType = "received_request"
)

// StatusTag is the single display label derived from (DisplayType, status).
// Every presentation site (badge, tooltip, table cell) consumes this one
// classification instead of re-deriving state locally.
type StatusTag string

const (
	TagConfirmed              StatusTag = "CONFIRMED"
	TagPending                StatusTag = "PENDING"
	TagSentRequestPending     StatusTag = "SENT REQUEST PENDING"
	TagSentRequestAccepted    StatusTag = "SENT REQUEST ACCEPTED"
	TagRejectedSent           StatusTag = "REJECTED SENT"
	TagReceiveRequestPending  StatusTag = "RECEIVE REQUEST PENDING"
	TagReceiveRequestAccepted StatusTag = "RECEIVE REQUEST ACCEPTED"
	TagRejectedReceived       StatusTag = "REJECTED RECEIVED"
	TagUnknown                StatusTag = "UNKNOWN"
)

// Classify maps (displayType, raw status) to the display tag.
// The match is exhaustive over the statuses the backend can produce;
// anything unexpected lands on TagUnknown rather than a crash.
func Classify(displayType DisplayType, status string) StatusTag {
	switch displayType {
	case DisplayOwnBooking:
		if status == string(StatusConfirmed) {
			return TagConfirmed
		}
		return TagPending

	case DisplaySentRequest:
		switch JoinRequestStatus(status) {
		case RequestPendingApproval:
			return TagSentRequestPending
		case RequestApproved:
			return TagSentRequestAccepted
		case RequestRejected:
			return TagRejectedSent
		}
		return TagUnknown

	case DisplayReceivedRequest:
		switch JoinRequestStatus(status) {
		case RequestPendingApproval:
			return TagReceiveRequestPending
		case RequestApproved:
			return TagReceiveRequestAccepted
		case RequestRejected:
			return TagRejectedReceived
		}
		return TagUnknown
	}
	return TagUnknown
}
