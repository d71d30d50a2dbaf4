package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID Reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID Reference
}

// DateOnly truncates a timestamp to local midnight. All due-date comparisons
// in the installment engine happen at day granularity.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// AddMonthClamped returns the date one calendar month later, keeping the same
// day-of-month, clamped to the last valid day of the target month
// (Jan 31 -> Feb 28/29), unlike time.AddDate which normalizes overflow.
func AddMonthClamped(d time.Time) time.Time {
	y, m, day := d.Date()
	firstOfNext := time.Date(y, m+1, 1, 0, 0, 0, 0, d.Location())
	lastDay := firstOfNext.AddDate(0, 1, -1).Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(firstOfNext.Year(), firstOfNext.Month(), day, 0, 0, 0, 0, d.Location())
}
