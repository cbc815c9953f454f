package service

import (
	"math"
	"sort"
	"time"

	"github.com/limbo/habitflow/pkg/entity"
)

// DateOf truncates a timestamp to its calendar day in UTC. All streak and
// rate arithmetic runs on these normalized days.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween is the whole-day distance from a to b, negative when b is
// earlier. Both arguments are normalized first.
func DaysBetween(a, b time.Time) int {
	return int(DateOf(b).Sub(DateOf(a)).Hours() / 24)
}

// WeekdayIndex maps a date to 0=Monday..6=Sunday.
func WeekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// WeekStart is the Monday of the week containing t.
func WeekStart(t time.Time) time.Time {
	return DateOf(t).AddDate(0, 0, -WeekdayIndex(t))
}

// CalculateStreak computes the current and longest consecutive-day streaks
// over a habit's completion dates relative to ref.
//
// The current streak survives one missed day: if the most recent completion
// on or before ref is ref itself or the day before, counting starts there
// and walks backward day by day until the first gap. A most recent
// completion two or more days old means the streak is broken. Dates after
// ref never feed the current streak but still count toward the longest one.
func CalculateStreak(dates []time.Time, ref time.Time) (int, int) {
	if len(dates) == 0 {
		return 0, 0
	}
	set := make(map[time.Time]struct{}, len(dates))
	for _, d := range dates {
		set[DateOf(d)] = struct{}{}
	}
	refDay := DateOf(ref)
	longest := longestRun(set)

	var mostRecent time.Time
	found := false
	for d := range set {
		if !d.After(refDay) && (!found || d.After(mostRecent)) {
			mostRecent = d
			found = true
		}
	}
	if !found {
		return 0, longest
	}

	var expected time.Time
	switch {
	case mostRecent.Equal(refDay):
		expected = refDay.AddDate(0, 0, -1)
	case mostRecent.Equal(refDay.AddDate(0, 0, -1)):
		expected = mostRecent.AddDate(0, 0, -1)
	default:
		return 0, longest
	}
	current := 1
	for {
		if _, ok := set[expected]; !ok {
			break
		}
		current++
		expected = expected.AddDate(0, 0, -1)
	}
	if current > longest {
		longest = current
	}
	return current, longest
}

func longestRun(set map[time.Time]struct{}) int {
	if len(set) == 0 {
		return 0
	}
	days := make([]time.Time, 0, len(set))
	for d := range set {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	longest, run := 1, 1
	for i := 1; i < len(days); i++ {
		if days[i].Equal(days[i-1].AddDate(0, 0, 1)) {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 1
		}
	}
	return longest
}

// CompletionRate is the percentage of elapsed tracked days with a
// completion, capped at 100. Completions dated after today are excluded,
// and a start date in the future yields 0.
func CompletionRate(start time.Time, dates []time.Time, today time.Time) float64 {
	todayDay := DateOf(today)
	daysSinceStart := DaysBetween(start, todayDay) + 1
	if daysSinceStart <= 0 {
		return 0.0
	}
	valid := 0
	for _, d := range dates {
		if !DateOf(d).After(todayDay) {
			valid++
		}
	}
	rate := float64(valid) / float64(daysSinceStart) * 100
	return math.Min(rate, 100.0)
}

// CompletedOn resolves whether a set of completion dates counts as done on
// target under the given frequency. Daily habits need the exact date.
// Weekly habits use the sticky window: any completion in the inclusive
// trailing 7 days keeps the habit done. Custom habits behave like Daily;
// their times-per-week target is advisory only.
func CompletedOn(freq entity.Frequency, target time.Time, dates []time.Time) bool {
	targetDay := DateOf(target)
	if freq.Kind == entity.FrequencyWeekly {
		windowStart := targetDay.AddDate(0, 0, -6)
		for _, d := range dates {
			day := DateOf(d)
			if !day.Before(windowStart) && !day.After(targetDay) {
				return true
			}
		}
		return false
	}
	for _, d := range dates {
		if DateOf(d).Equal(targetDay) {
			return true
		}
	}
	return false
}
