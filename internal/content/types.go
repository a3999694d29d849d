package content

import (
	"time"
)

// MoodSelection is the user's mood input, embedded immutably in DailyContent.
type MoodSelection struct {
	PrimaryMood       string    `json:"primaryMood" firestore:"primaryMood"`
	SecondaryEmotions []string  `json:"secondaryEmotions" firestore:"secondaryEmotions"`
	Timestamp         time.Time `json:"timestamp" firestore:"timestamp"`
}

type Verse struct {
	Verse       string `json:"verse" firestore:"verse"`
	Reference   string `json:"reference" firestore:"reference"`
	Explanation string `json:"explanation" firestore:"explanation"`
}

type Meditation struct {
	Title            string `json:"title" firestore:"title"`
	Script           string `json:"script" firestore:"script"`
	BreathingPattern string `json:"breathingPattern" firestore:"breathingPattern"`
}

type Prayer struct {
	Title    string `json:"title" firestore:"title"`
	Prayer   string `json:"prayer" firestore:"prayer"`
	Category string `json:"category" firestore:"category"`
}

// Reflection's Response stays nil here; it is filled in later when the user
// answers the prompt.
type Reflection struct {
	ID       string  `json:"id" firestore:"id"`
	Prompt   string  `json:"prompt" firestore:"prompt"`
	Response *string `json:"response" firestore:"response"`
}

type ActionStep struct {
	Title       string `json:"title" firestore:"title"`
	Description string `json:"description" firestore:"description"`
	Category    string `json:"category" firestore:"category"`
}

// DailyContent is the aggregate persisted once per user per day. Its ID is
// the deterministic userID_date key, so regenerating on the same day
// overwrites the prior record.
type DailyContent struct {
	ID         string        `json:"id" firestore:"id"`
	UserID     string        `json:"userId" firestore:"userId"`
	Date       time.Time     `json:"date" firestore:"date"`
	Mood       MoodSelection `json:"mood" firestore:"mood"`
	Verse      Verse         `json:"verse" firestore:"verse"`
	Meditation Meditation    `json:"meditation" firestore:"meditation"`
	Prayer     Prayer        `json:"prayer" firestore:"prayer"`
	Reflection Reflection    `json:"reflection" firestore:"reflection"`
	ActionStep ActionStep    `json:"actionStep" firestore:"actionStep"`
	CreatedAt  time.Time     `json:"createdAt" firestore:"createdAt"`
	UpdatedAt  time.Time     `json:"updatedAt" firestore:"updatedAt"`
}

// DailyContentID builds the natural key for a user's content on a calendar day.
func DailyContentID(userID string, date time.Time) string {
	return userID + "_" + date.Format("2006-01-02")
}
