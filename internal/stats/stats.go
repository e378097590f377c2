// Package stats aggregates reading sessions into daily, weekly and monthly
// totals and computes the current reading streak.
package stats

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/mrlokans/mybible/internal/entities"
)

const dateLayout = "2006-01-02"

type DailyStat struct {
	Date    string `json:"date"`
	TotalMs int64  `json:"totalMs"`
}

type WeeklyStat struct {
	WeekStart string `json:"weekStart"`
	TotalMs   int64  `json:"totalMs"`
}

type MonthlyStat struct {
	Month   string `json:"month"`
	TotalMs int64  `json:"totalMs"`
}

// Summary bundles every statistic for one set of sessions.
type Summary struct {
	TotalMs        int64         `json:"totalMs"`
	TotalFormatted string        `json:"totalFormatted"`
	Streak         int           `json:"streak"`
	Daily          []DailyStat   `json:"daily"`
	Weekly         []WeeklyStat  `json:"weekly"`
	Monthly        []MonthlyStat `json:"monthly"`
}

func Summarize(sessions []entities.ReadingSession, today time.Time) Summary {
	var total int64
	for _, s := range sessions {
		total += s.DurationMs
	}
	return Summary{
		TotalMs:        total,
		TotalFormatted: FormatDuration(total),
		Streak:         Streak(sessions, today),
		Daily:          Daily(sessions),
		Weekly:         Weekly(sessions),
		Monthly:        Monthly(sessions),
	}
}

func Daily(sessions []entities.ReadingSession) []DailyStat {
	totals := sumBy(sessions, func(s entities.ReadingSession) (string, bool) { return s.Date, true })
	out := make([]DailyStat, 0, len(totals))
	for _, k := range sortedKeys(totals) {
		out = append(out, DailyStat{Date: k, TotalMs: totals[k]})
	}
	return out
}

// Weekly groups sessions by the Monday starting their week.
func Weekly(sessions []entities.ReadingSession) []WeeklyStat {
	totals := sumBy(sessions, func(s entities.ReadingSession) (string, bool) {
		d, err := time.Parse(dateLayout, s.Date)
		if err != nil {
			return "", false
		}
		return StartOfWeek(d).Format(dateLayout), true
	})
	out := make([]WeeklyStat, 0, len(totals))
	for _, k := range sortedKeys(totals) {
		out = append(out, WeeklyStat{WeekStart: k, TotalMs: totals[k]})
	}
	return out
}

func Monthly(sessions []entities.ReadingSession) []MonthlyStat {
	totals := sumBy(sessions, func(s entities.ReadingSession) (string, bool) {
		if len(s.Date) < 7 {
			return "", false
		}
		return s.Date[:7], true
	})
	out := make([]MonthlyStat, 0, len(totals))
	for _, k := range sortedKeys(totals) {
		out = append(out, MonthlyStat{Month: k, TotalMs: totals[k]})
	}
	return out
}

// Streak counts consecutive reading days ending today or yesterday.
func Streak(sessions []entities.ReadingSession, today time.Time) int {
	days := make(map[string]struct{}, len(sessions))
	for _, s := range sessions {
		days[s.Date] = struct{}{}
	}
	if len(days) == 0 {
		return 0
	}

	day := civilDate(today)
	if _, ok := days[day.Format(dateLayout)]; !ok {
		day = day.AddDate(0, 0, -1)
		if _, ok := days[day.Format(dateLayout)]; !ok {
			return 0
		}
	}

	streak := 0
	for {
		if _, ok := days[day.Format(dateLayout)]; !ok {
			return streak
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
}

// StartOfWeek returns the Monday of the week containing d, at midnight.
func StartOfWeek(d time.Time) time.Time {
	d = civilDate(d)
	offset := int(d.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7
	}
	return d.AddDate(0, 0, -offset)
}

// Last7Days returns the dates of the past week ending with today, oldest first.
func Last7Days(today time.Time) []string {
	day := civilDate(today)
	out := make([]string, 7)
	for i := 0; i < 7; i++ {
		out[i] = day.AddDate(0, 0, i-6).Format(dateLayout)
	}
	return out
}

// FormatDuration renders a duration in Korean: "45초", "12분", "1시간 5분", "2시간".
func FormatDuration(ms int64) string {
	if ms < 60000 {
		return fmt.Sprintf("%d초", int64(math.Round(float64(ms)/1000)))
	}
	totalMin := ms / 60000
	hours := totalMin / 60
	minutes := totalMin % 60
	if hours > 0 {
		if minutes > 0 {
			return fmt.Sprintf("%d시간 %d분", hours, minutes)
		}
		return fmt.Sprintf("%d시간", hours)
	}
	return fmt.Sprintf("%d분", minutes)
}

// civilDate drops the clock so date arithmetic is not skewed by DST.
func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sumBy(sessions []entities.ReadingSession, key func(entities.ReadingSession) (string, bool)) map[string]int64 {
	totals := make(map[string]int64)
	for _, s := range sessions {
		if k, ok := key(s); ok {
			totals[k] += s.DurationMs
		}
	}
	return totals
}

func sortedKeys(m map[string]int64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
