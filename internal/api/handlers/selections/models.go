package selections

// UpsertSelectionRequest HTTP request model выбора слота
type UpsertSelectionRequest struct {
	CourseID     int64  `json:"courseId"`
	TeeID        int64  `json:"teeId"`
	Date         string `json:"date"` // "2026-09-03"
	Time         string `json:"time"` // "09:04"
	Participants int    `json:"participants"`
}

// RemoveSelectionRequest HTTP request model снятия выбора
type RemoveSelectionRequest struct {
	TeeID int64  `json:"teeId"`
	Date  string `json:"date"`
	Time  string `json:"time"`
}
