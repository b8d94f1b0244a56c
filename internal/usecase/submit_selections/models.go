package submit_selections

import (
	"time"

	"github.com/aldnch/GolfTeeService/pkg/types"
)

// Action действие, выбранное для одной записи набора
type Action string

const (
	// ActionConfirm создать новое бронирование в свободном слоте
	ActionConfirm Action = "confirm"

	// ActionAddParticipants добавить участников в свое бронирование
	ActionAddParticipants Action = "add_participants"

	// ActionJoinRequest отправить заявку владельцу частично занятого слота
	ActionJoinRequest Action = "join_request"

	// ActionUnavailable слот недоступен, действие невозможно
	ActionUnavailable Action = "unavailable"
)

// OutcomeStatus итог обработки одной записи
type OutcomeStatus string

const (
	// OutcomeConfirmed бронирование создано
	OutcomeConfirmed OutcomeStatus = "confirmed"

	// OutcomeParticipantsAdded участники добавлены в существующее бронирование
	OutcomeParticipantsAdded OutcomeStatus = "participants_added"

	// OutcomeJoinRequested заявка отправлена владельцу
	OutcomeJoinRequested OutcomeStatus = "join_requested"

	// OutcomeExistingRequest заявка уже была отправлена ранее, дубликат не создан
	OutcomeExistingRequest OutcomeStatus = "existing_request"

	// OutcomeFailed запись не прошла
	OutcomeFailed OutcomeStatus = "failed"
)

// Request модель запроса на отправку набора выборок
type Request struct {
	MemberID  int64  // ID участника
	SessionID string // ID сессии, владеющей набором выборок
}

// Outcome итог обработки одной выборки
type Outcome struct {
	Date         time.Time        `json:"date"`
	TeeID        int64            `json:"teeId"`
	Time         types.TimeString `json:"time"`
	Participants int              `json:"participants"`
	Action       Action           `json:"action"`
	Status       OutcomeStatus    `json:"status"`
	BookingID    int64            `json:"bookingId,omitempty"`
	RequestID    int64            `json:"requestId,omitempty"`
	Error        string           `json:"error,omitempty"`
}

// Summary агрегированные итоги по всему набору
type Summary struct {
	Total             int    `json:"total"`
	Confirmed         int    `json:"confirmed"`
	ParticipantsAdded int    `json:"participantsAdded"`
	JoinRequested     int    `json:"joinRequested"`
	ExistingRequests  int    `json:"existingRequests"`
	Failed            int    `json:"failed"`
	Title             string `json:"title"`
	Subtitle          string `json:"subtitle"`
	SelectionsCleared bool   `json:"selectionsCleared"`
}

// Response модель ответа с итогами по каждой выборке и сводкой
type Response struct {
	Outcomes []Outcome `json:"outcomes"`
	Summary  Summary   `json:"summary"`
}
