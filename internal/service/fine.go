package service

import "time"

// CalcFine charges perDay for every whole calendar day past the due date,
// truncated at midnight. Early or on-time returns cost nothing.
func CalcFine(dueDate, returnedAt time.Time, perDay int) int {
	daysLate := int(midnight(returnedAt).Sub(midnight(dueDate)).Hours() / 24)
	if daysLate <= 0 {
		return 0
	}
	return daysLate * perDay
}

func midnight(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
