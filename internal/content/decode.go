package content

import (
	"encoding/json"
	"strings"
)

// The fixed fallbacks below stand in whenever the provider's reply cannot be
// decoded. Content generation for a potentially distressed user must never
// hard-fail at this layer.

func fallbackVerse() Verse {
	return Verse{
		Verse:       anchorVerseText,
		Reference:   "Jeremiah 29:11",
		Explanation: "This verse reminds us that God has good plans for us, even when we're struggling with difficult emotions.",
	}
}

func fallbackMeditation() Meditation {
	return Meditation{
		Title:            "Finding Peace in God's Presence",
		Script:           "Begin by finding a comfortable position... Take a deep breath in for 4 counts, hold for 7, exhale for 8...",
		BreathingPattern: "4-7-8",
	}
}

func fallbackPrayer() Prayer {
	return Prayer{
		Title:    "Prayer for Peace",
		Prayer:   "Dear Heavenly Father, thank you for your constant presence in my life...",
		Category: "comfort",
	}
}

func fallbackActionStep() ActionStep {
	return ActionStep{
		Title:       "Express Gratitude",
		Description: "Take a moment to thank God for three things in your life today.",
		Category:    "gratitude",
	}
}

// Each decode returns the parsed value and true, or the kind's fallback and
// false. Decoding never errors out.

func decodeVerse(raw string) (Verse, bool) {
	var v Verse
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &v); err != nil {
		return fallbackVerse(), false
	}
	if v.Verse == "" || v.Reference == "" || v.Explanation == "" {
		return fallbackVerse(), false
	}
	return v, true
}

func decodeMeditation(raw string) (Meditation, bool) {
	var m Meditation
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &m); err != nil {
		return fallbackMeditation(), false
	}
	if m.Title == "" || m.Script == "" || m.BreathingPattern == "" {
		return fallbackMeditation(), false
	}
	return m, true
}

func decodePrayer(raw string) (Prayer, bool) {
	var p Prayer
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &p); err != nil {
		return fallbackPrayer(), false
	}
	if p.Title == "" || p.Prayer == "" || p.Category == "" {
		return fallbackPrayer(), false
	}
	return p, true
}

func decodeActionStep(raw string) (ActionStep, bool) {
	var a ActionStep
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &a); err != nil {
		return fallbackActionStep(), false
	}
	if a.Title == "" || a.Description == "" || a.Category == "" {
		return fallbackActionStep(), false
	}
	return a, true
}

// stripCodeFences unwraps a ```json ... ``` block when the model adds one.
func stripCodeFences(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
