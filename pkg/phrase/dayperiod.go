package phrase

// DayPeriod is one row of the day-period table. A row applies from
// Threshold minutes after midnight until the next row's threshold.
type DayPeriod struct {
	Threshold int
	// Lead is the uncolored lead-in ("in the", "at"); empty for bare labels.
	Lead  string
	Label string
}

// Text returns the plain rendering, e.g. "in the early morning".
func (d DayPeriod) Text() string {
	if d.Lead == "" {
		return d.Label
	}
	return d.Lead + " " + d.Label
}

// dayPeriods is scanned top to bottom; the first row whose threshold is
// not above the sample wins. The literal thresholds are deliberate: the
// minutes either side of 00:00 and 12:00 read "midnight" and "midday",
// and the -1 row catches minutes 0 and 1.
var dayPeriods = [...]DayPeriod{
	{Threshold: 1439, Label: "midnight"},
	{Threshold: 1260, Lead: "at", Label: "night"},
	{Threshold: 990, Lead: "in the", Label: "evening"},
	{Threshold: 722, Lead: "in the", Label: "afternoon"},
	{Threshold: 719, Label: "midday"},
	{Threshold: 360, Lead: "in the", Label: "morning"},
	{Threshold: 180, Lead: "in the early", Label: "morning"},
	{Threshold: 2, Lead: "at", Label: "night"},
	{Threshold: -1, Label: "midnight"},
}

func dayPeriodIndex(minutesSinceMidnight int) int {
	for i, p := range dayPeriods {
		if minutesSinceMidnight >= p.Threshold {
			return i
		}
	}
	return len(dayPeriods) - 1
}

// DayPeriods returns a copy of the table in scan order.
func DayPeriods() []DayPeriod {
	out := make([]DayPeriod, len(dayPeriods))
	copy(out, dayPeriods[:])
	return out
}

// DayPeriodAt returns the period containing minutesSinceMidnight
// (0..1439).
func DayPeriodAt(minutesSinceMidnight int) DayPeriod {
	return dayPeriods[dayPeriodIndex(minutesSinceMidnight)]
}
