package prompts

import "math/rand/v2"

var fallbackPrompts = []string{
	"What was the most meaningful conversation you had today?",
	"Describe a moment today that made you feel grateful.",
	"What's something you learned or realized today?",
	"If you could change one decision you made today, what would it be?",
	"What's something that challenged you today and how did you handle it?",
	"Write about something that surprised you today.",
	"What are you looking forward to tomorrow?",
	"What's one thing you did today that you're proud of?",
	"Describe something beautiful you saw today.",
	"What's a habit you want to develop or break?",
}

func randomFallbackPrompt() string {
	return fallbackPrompts[rand.IntN(len(fallbackPrompts))]
}
