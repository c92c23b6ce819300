package fiscal

import (
	"time"

	"taxtally/internal/domain"
)

// Due days-of-month for the statutory return forms, counted in the month
// following the period's end month.
const (
	gstr1DueDay  = 11
	gstr3bDueDay = 20
)

// warningWindowDays is the lead time under which an upcoming deadline is
// flagged as a warning rather than ok.
const warningWindowDays = 5

// FilingDeadlines computes the GSTR-1 and GSTR-3B due dates for the period
// and classifies each against today.
func FilingDeadlines(p domain.Period, today time.Time) (gstr1, gstr3b domain.DeadlineInfo) {
	gstr1 = deadline("GSTR-1", p, gstr1DueDay, today)
	gstr3b = deadline("GSTR-3B", p, gstr3bDueDay, today)
	return gstr1, gstr3b
}

func deadline(form string, p domain.Period, dueDay int, today time.Time) domain.DeadlineInfo {
	// First of the month after the period ends, then the due day.
	// AddDate handles the December to January year rollover.
	due := Date(p.End.Year(), p.End.Month(), 1).AddDate(0, 1, 0).AddDate(0, 0, dueDay-1)
	days := int(due.Sub(Truncate(today)).Hours() / 24)
	return domain.DeadlineInfo{
		Form:     form,
		DueDate:  due,
		DaysAway: days,
		Status:   classifyDeadline(days),
	}
}

func classifyDeadline(days int) domain.DeadlineStatus {
	switch {
	case days < 0:
		return domain.DeadlineStatusOverdue
	case days <= warningWindowDays:
		return domain.DeadlineStatusWarning
	default:
		return domain.DeadlineStatusOK
	}
}
