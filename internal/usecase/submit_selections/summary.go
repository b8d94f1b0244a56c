package submit_selections

import "fmt"

// buildSummary агрегирует итоги и подбирает формулировку сводки.
// Существующие заявки считаются успехом: дубликат не создан,
// владелец уже уведомлен.
func buildSummary(outcomes []Outcome) Summary {
	s := Summary{Total: len(outcomes)}

	for _, o := range outcomes {
		switch o.Status {
		case OutcomeConfirmed:
			s.Confirmed++
		case OutcomeParticipantsAdded:
			s.ParticipantsAdded++
		case OutcomeJoinRequested:
			s.JoinRequested++
		case OutcomeExistingRequest:
			s.ExistingRequests++
		case OutcomeFailed:
			s.Failed++
		}
	}

	s.Title, s.Subtitle = summaryWording(s)
	return s
}

func summaryWording(s Summary) (title, subtitle string) {
	succeeded := s.Total - s.Failed
	booked := s.Confirmed + s.ParticipantsAdded
	requested := s.JoinRequested + s.ExistingRequests

	switch {
	case s.Failed == s.Total:
		return "Booking failed", "None of your selections could be processed. Please refresh and try again."

	case s.Failed > 0:
		return "Partially completed",
			fmt.Sprintf("%d of %d selections processed. %d could not be completed.",
				succeeded, s.Total, s.Failed)

	case booked > 0 && requested > 0:
		return "Booking confirmed",
			fmt.Sprintf("%s booked. %s sent to the slot owners.",
				plural(booked, "slot"), plural(requested, "join request"))

	case booked == 0 && requested > 0:
		if s.JoinRequested == 0 {
			return "Requests already sent",
				"Your join requests are still waiting for the owners' approval."
		}
		return "Join requests sent",
			fmt.Sprintf("%s sent. You will be notified once the owners respond.",
				plural(requested, "join request"))

	default:
		return "Booking confirmed", fmt.Sprintf("%s booked successfully.", plural(booked, "slot"))
	}
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
