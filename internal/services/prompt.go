package services

import "loopai-backend/internal/models"

const (
	RoleUser  = "user"
	RoleModel = "model"
)

// systemPreamble is the fixed instruction block prepended to every
// assembled prompt.
const systemPreamble = `
You are LoopAI, an advanced AI tutor for the LoopWar coding platform. Your role is to help users learn programming concepts through interactive, personalized tutoring.

Key guidelines:
- Be friendly, patient, and encouraging
- Explain concepts clearly with examples
- Adapt your explanations based on user knowledge level
- Use code examples when relevant
- Guide users toward understanding rather than giving direct answers
- Relate concepts to real-world applications
- Encourage best practices and problem-solving skills

Remember: You're part of LoopWar, so reference the platform's features when appropriate.
`

// BuildPrompt flattens stored turns into the ordered list the model
// consumes: the preamble, then each stored turn as a user/model pair,
// then the new message. The preamble carries the user role, never the
// model role; the model reads the list as alternating turns, so the
// order is strict. For N stored turns the result has 2N+2 entries.
func BuildPrompt(history []models.ChatTurn, message string) []models.PromptMessage {
	prompt := make([]models.PromptMessage, 0, 2*len(history)+2)

	prompt = append(prompt, models.PromptMessage{Role: RoleUser, Text: systemPreamble})
	for _, turn := range history {
		prompt = append(prompt, models.PromptMessage{Role: RoleUser, Text: turn.UserMessage})
		prompt = append(prompt, models.PromptMessage{Role: RoleModel, Text: turn.AIResponse})
	}
	prompt = append(prompt, models.PromptMessage{Role: RoleUser, Text: message})

	return prompt
}
