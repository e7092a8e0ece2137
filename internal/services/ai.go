package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// AIService wraps the external text-generation client. It is constructed once
// in main and injected; callers treat every call as best effort.
type AIService struct {
	client *openai.Client
}

func NewAIService(apiKey string) *AIService {
	return &AIService{
		client: openai.NewClient(apiKey),
	}
}

// ExplanationInput carries everything the prompt template needs.
type ExplanationInput struct {
	StudentName      string
	MentorName       string
	MatchingSkills   []string
	AdditionalSkills []string
	MentorJobTitle   string
}

// GenerateExplanation asks the model why this mentor suits this student.
// Errors are returned so the caller can substitute fallback text.
func (s *AIService) GenerateExplanation(ctx context.Context, input ExplanationInput) (string, error) {
	if s.client == nil {
		return "", fmt.Errorf("OpenAI client not initialized")
	}

	jobTitle := input.MentorJobTitle
	if jobTitle == "" {
		jobTitle = "Not specified"
	}

	prompt := fmt.Sprintf(`Act as a mentorship matching expert. Generate a personalized recommendation explaining why %s would be a good mentor for %s.
Consider these matching skills: %s
Additional skills they could learn: %s
Mentor's current job: %s
Keep the response concise but persuasive, focusing on the value of this potential mentorship.`,
		input.MentorName,
		input.StudentName,
		strings.Join(input.MatchingSkills, ", "),
		strings.Join(input.AdditionalSkills, ", "),
		jobTitle,
	)

	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: openai.GPT4o,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			Temperature: 0.7,
		},
	)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from OpenAI")
	}

	return resp.Choices[0].Message.Content, nil
}
