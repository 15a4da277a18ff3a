package models

type Mood struct {
	ID    int64  `json:"id"`
	Label string `json:"label"`
	Emoji string `json:"emoji"`
	Score int    `json:"score"`
}

// DefaultMoods is the catalogue seeded into an empty moods table.
var DefaultMoods = []Mood{
	{Emoji: "😊", Label: "Happy", Score: 5},
	{Emoji: "😃", Label: "Very Happy", Score: 5},
	{Emoji: "🥰", Label: "Loving", Score: 5},
	{Emoji: "🤩", Label: "Excited", Score: 5},
	{Emoji: "😌", Label: "Content", Score: 4},
	{Emoji: "🙂", Label: "Pleased", Score: 4},
	{Emoji: "😐", Label: "Neutral", Score: 3},
	{Emoji: "😕", Label: "Confused", Score: 2},
	{Emoji: "😔", Label: "Sad", Score: 2},
	{Emoji: "😢", Label: "Very Sad", Score: 1},
	{Emoji: "😡", Label: "Angry", Score: 1},
	{Emoji: "😨", Label: "Anxious", Score: 1},
	{Emoji: "😴", Label: "Tired", Score: 3},
	{Emoji: "🤔", Label: "Thoughtful", Score: 3},
	{Emoji: "🤗", Label: "Grateful", Score: 4},
}
