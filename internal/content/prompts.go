package content

import (
	"fmt"
	"strings"
)

// anchorVerseText is the fixed reference verse fed into the reflection and
// action-step prompts of the daily bundle. The bundle deliberately does not
// chain the freshly generated verse forward; the anchor keeps those prompts
// stable across regenerations.
const anchorVerseText = "For I know the plans I have for you, declares the LORD, plans to prosper you and not to harm you, plans to give you hope and a future."

const (
	verseSystemPrompt      = "You are a compassionate AI assistant helping Christians find comfort and guidance in Scripture. Always provide accurate Bible references and uplifting, faith-based responses."
	meditationSystemPrompt = "You are a meditation guide creating peaceful, Christian-focused meditation experiences. Focus on God's presence, peace, and love."
	prayerSystemPrompt     = "You are writing personal prayers that help people connect with God during their emotional journey."
	reflectionSystemPrompt = "You are creating reflection prompts that help people apply Scripture to their daily lives and emotional experiences."
	actionStepSystemPrompt = "You are suggesting practical, faith-based actions that help people live out their faith in daily life."
)

func versePrompt(mood string, secondaryEmotions []string) (system, user string) {
	feeling := mood
	if len(secondaryEmotions) > 0 {
		feeling += " and also " + strings.Join(secondaryEmotions, ", ")
	}
	user = fmt.Sprintf(`Generate a comforting and relevant Bible verse for someone feeling %s.

Please provide:
1. A Bible verse that speaks to this emotional state
2. The exact reference (book, chapter, verse)
3. A brief explanation of why this verse is relevant to their current mood

Format your response as JSON:
{
  "verse": "The actual verse text",
  "reference": "Book Chapter:Verse",
  "explanation": "Brief explanation of relevance"
}`, feeling)
	return verseSystemPrompt, user
}

func meditationPrompt(mood string, durationMinutes int) (system, user string) {
	user = fmt.Sprintf(`Create a %d-minute guided Christian meditation script for someone feeling %s.

The meditation should:
- Be calming and spiritually uplifting
- Include breathing guidance
- Incorporate faith-based imagery and Scripture
- Be appropriate for the user's emotional state

Format your response as JSON:
{
  "title": "Meditation title",
  "script": "The full meditation script with breathing cues and guidance",
  "breathingPattern": "4-7-8 or box or triangle"
}`, durationMinutes, mood)
	return meditationSystemPrompt, user
}

func prayerPrompt(mood, context string) (system, user string) {
	situation := mood
	if strings.TrimSpace(context) != "" {
		situation += " in the context of " + context
	}
	user = fmt.Sprintf(`Write a heartfelt Christian prayer for someone feeling %s.

The prayer should:
- Be personal and relatable
- Address the specific emotional state
- Express trust in God
- Be encouraging and hopeful

Format your response as JSON:
{
  "title": "Prayer title",
  "prayer": "The prayer text",
  "category": "gratitude, comfort, guidance, strength, etc."
}`, situation)
	return prayerSystemPrompt, user
}

func reflectionPrompt(mood, verse string) (system, user string) {
	user = fmt.Sprintf(`Create a thoughtful reflection question based on this Bible verse: "%s" for someone feeling %s.

The question should:
- Help them connect the verse to their current emotional state
- Encourage personal reflection and spiritual growth
- Be open-ended and thought-provoking

Return only the question, no additional formatting.`, verse, mood)
	return reflectionSystemPrompt, user
}

func actionStepPrompt(mood, verse string) (system, user string) {
	user = fmt.Sprintf(`Based on this Bible verse: "%s" and someone feeling %s, suggest a practical action step they can take today.

The action should:
- Be simple and achievable
- Help them apply the verse to their life
- Support their emotional well-being
- Be faith-based

Format your response as JSON:
{
  "title": "Action step title",
  "description": "Detailed description of what to do",
  "category": "service, prayer, study, self-care, etc."
}`, verse, mood)
	return actionStepSystemPrompt, user
}
