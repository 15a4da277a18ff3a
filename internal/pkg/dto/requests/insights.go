package requests

type Heatmap struct {
	UserID int64
	Year   int
	Month  int
}

type MoodTrend struct {
	UserID int64
	Limit  int
}
