package get_order_statistics

// Request модель запроса статистики заказов участника
type Request struct {
	MemberID int64 // ID участника
}

// Response счетчики по бронированиям и заявкам участника
type Response struct {
	TotalBookings     int `json:"totalBookings"`
	ConfirmedBookings int `json:"confirmedBookings"`
	CancelledBookings int `json:"cancelledBookings"`

	SentRequests         int `json:"sentRequests"`
	SentPendingRequests  int `json:"sentPendingRequests"`
	SentApprovedRequests int `json:"sentApprovedRequests"`
	SentRejectedRequests int `json:"sentRejectedRequests"`

	ReceivedRequests         int `json:"receivedRequests"`
	ReceivedPendingRequests  int `json:"receivedPendingRequests"`
	ReceivedApprovedRequests int `json:"receivedApprovedRequests"`
	ReceivedRejectedRequests int `json:"receivedRejectedRequests"`
}
