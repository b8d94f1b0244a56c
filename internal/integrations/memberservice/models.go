package memberservice

// Member данные участника клуба из внешнего сервиса
type Member struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	GolfClubID int64  `json:"golf_club_id"`
}

type memberResponse struct {
	Code    int     `json:"code"`
	Data    *Member `json:"data"`
	Message string  `json:"message"`
}
