package report

import (
	"context"
	"fmt"

	"medicore/config"

	openai "github.com/sashabaranov/go-openai"
)

const summaryPrompt = "You are a medical assistant. Summarize the following " +
	"medical report in plain language for the patient. Highlight diagnoses, " +
	"abnormal results and recommended follow-ups."

const questionPrompt = "You are a medical assistant. Answer the patient's " +
	"question using only the content of the following medical report. If the " +
	"report does not contain the answer, say so."

// Summarizer condenses extracted report text into a patient-readable
// summary. When a question is supplied the response answers it against the
// report text instead of producing a general summary.
type Summarizer interface {
	Summarize(ctx context.Context, text, question string) (string, error)
}

// NewSummarizer returns the OpenAI-backed summarizer, or a canned dry-run
// implementation when no API key is configured so the upload flow still
// works in development.
func NewSummarizer() Summarizer {
	key := config.AppConfig.OpenAIAPIKey
	if key == "" {
		return dryRunSummarizer{}
	}
	return &openAISummarizer{client: openai.NewClient(key)}
}

// summaryMessages builds the chat prompt: a plain summary request, or a
// question answered against the report text when one is supplied.
func summaryMessages(text, question string) []openai.ChatCompletionMessage {
	if question == "" {
		return []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: summaryPrompt},
			{Role: openai.ChatMessageRoleUser, Content: text},
		}
	}
	return []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: questionPrompt},
		{Role: openai.ChatMessageRoleUser, Content: "Report:\n" + text + "\n\nQuestion: " + question},
	}
}

type openAISummarizer struct {
	client *openai.Client
}

func (s *openAISummarizer) Summarize(ctx context.Context, text, question string) (string, error) {
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       openai.GPT3Dot5Turbo,
		Messages:    summaryMessages(text, question),
		Temperature: 0.2,
	})
	if err != nil {
		return "", fmt.Errorf("summarization request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("summarization returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

type dryRunSummarizer struct{}

func (dryRunSummarizer) Summarize(ctx context.Context, text, question string) (string, error) {
	if question != "" {
		return "Answer unavailable: automatic summarization is not configured. " +
			"The uploaded report was stored and its text extracted successfully.", nil
	}
	return "Summary unavailable: automatic summarization is not configured. " +
		"The uploaded report was stored and its text extracted successfully.", nil
}
