package utils

import (
	"moodjournal-service/internal/app/models"
	"moodjournal-service/internal/pkg/constvars"
	"moodjournal-service/internal/pkg/dto/responses"
	"sort"
	"time"
)

func dayKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(constvars.DateLayout)
}

// CalculateStreaks returns the longest run of consecutive entry days and the
// run that ends today. A run ending yesterday still counts as current since
// today may not have an entry yet.
func CalculateStreaks(entryTimes []time.Time, now time.Time, loc *time.Location) (longest, current int) {
	if len(entryTimes) == 0 {
		return 0, 0
	}

	days := make(map[string]time.Time, len(entryTimes))
	for _, t := range entryTimes {
		local := t.In(loc)
		day := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
		days[day.Format(constvars.DateLayout)] = day
	}

	sorted := make([]time.Time, 0, len(days))
	for _, day := range days {
		sorted = append(sorted, day)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })

	run := 1
	longest = 1
	for i := 1; i < len(sorted); i++ {
		if isNextDay(sorted[i-1], sorted[i]) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	localNow := now.In(loc)
	today := time.Date(localNow.Year(), localNow.Month(), localNow.Day(), 0, 0, 0, 0, loc)
	cursor := today
	if _, ok := days[cursor.Format(constvars.DateLayout)]; !ok {
		cursor = cursor.AddDate(0, 0, -1)
	}
	for {
		if _, ok := days[cursor.Format(constvars.DateLayout)]; !ok {
			break
		}
		current++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return longest, current
}

func isNextDay(previous, next time.Time) bool {
	expected := previous.AddDate(0, 0, 1)
	return expected.Year() == next.Year() && expected.YearDay() == next.YearDay()
}

// BuildHeatmap buckets entry timestamps per local day in ascending order.
// Days without entries are omitted.
func BuildHeatmap(entryTimes []time.Time, loc *time.Location) []responses.HeatmapDay {
	counts := make(map[string]int)
	for _, t := range entryTimes {
		counts[dayKey(t, loc)]++
	}

	result := make([]responses.HeatmapDay, 0, len(counts))
	for date, count := range counts {
		result = append(result, responses.HeatmapDay{Date: date, Count: count})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date < result[j].Date })
	return result
}

// BuildMoodTrend averages entry mood scores per local day. Each entry first
// collapses to the mean of its mood scores, then entries of the same day are
// averaged.
func BuildMoodTrend(entries []models.Entry, loc *time.Location) []responses.MoodTrendPoint {
	type accumulator struct {
		total float64
		count int
	}
	perDay := make(map[string]*accumulator)
	for i := range entries {
		key := dayKey(entries[i].CreatedAt, loc)
		acc, ok := perDay[key]
		if !ok {
			acc = &accumulator{}
			perDay[key] = acc
		}
		acc.total += entries[i].MoodScore()
		acc.count++
	}

	result := make([]responses.MoodTrendPoint, 0, len(perDay))
	for date, acc := range perDay {
		result = append(result, responses.MoodTrendPoint{
			Date:         date,
			AverageScore: roundTo(acc.total/float64(acc.count), 2),
		})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date < result[j].Date })
	return result
}

// HeatmapRange returns the [from, to) interval for a year, or for one month
// of it when month is non-zero.
func HeatmapRange(year, month int, loc *time.Location) (time.Time, time.Time) {
	if month == 0 {
		from := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
		return from, from.AddDate(1, 0, 0)
	}
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	return from, from.AddDate(0, 1, 0)
}

func roundTo(value float64, places int) float64 {
	factor := 1.0
	for i := 0; i < places; i++ {
		factor *= 10
	}
	if value >= 0 {
		return float64(int64(value*factor+0.5)) / factor
	}
	return float64(int64(value*factor-0.5)) / factor
}
