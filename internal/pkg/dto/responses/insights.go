package responses

type HeatmapDay struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type MoodTrendPoint struct {
	Date         string  `json:"date"`
	AverageScore float64 `json:"average_score"`
}
