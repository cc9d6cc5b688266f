// Package llm translates text through an Azure OpenAI chat-completion
// deployment by instructing the model to act as a translator.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// DefaultAPIVersion is used when no Azure OpenAI API version is configured
const DefaultAPIVersion = "2023-05-15"

const systemPrompt = "You are a professional translator. Respond only with the translated content in Markdown."

// Config holds Azure OpenAI credentials and deployment settings
type Config struct {
	Endpoint   string // resource endpoint (AZURE_OPENAI_ENDPOINT)
	Key        string // API key (AZURE_OPENAI_KEY)
	Deployment string // chat-completion deployment name (AZURE_OPENAI_DEPLOYMENT)
	APIVersion string // optional (AZURE_OPENAI_API_VERSION)
}

// Validate reports every missing required setting at once, so a
// misconfigured run fails before any network call is attempted.
func (c *Config) Validate() error {
	var missing []string
	if c.Endpoint == "" {
		missing = append(missing, "AZURE_OPENAI_ENDPOINT")
	}
	if c.Key == "" {
		missing = append(missing, "AZURE_OPENAI_KEY")
	}
	if c.Deployment == "" {
		missing = append(missing, "AZURE_OPENAI_DEPLOYMENT")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing Azure OpenAI configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}

// chatClient is the narrow slice of the OpenAI client used by Translator,
// so tests can substitute a double for the network implementation.
type chatClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Translator translates text via an Azure OpenAI chat-completion deployment
type Translator struct {
	client     chatClient
	deployment string
}

// NewTranslator creates a new Azure OpenAI translator
func NewTranslator(config Config) (*Translator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	apiVersion := config.APIVersion
	if apiVersion == "" {
		apiVersion = DefaultAPIVersion
	}
	deployment := config.Deployment

	clientConfig := openai.DefaultAzureConfig(config.Key, config.Endpoint)
	clientConfig.APIVersion = apiVersion
	clientConfig.AzureModelMapperFunc = func(model string) string {
		return deployment
	}

	return &Translator{
		client:     openai.NewClientWithConfig(clientConfig),
		deployment: deployment,
	}, nil
}

// Translate sends text to the chat-completion deployment with a translation
// prompt and returns the model's answer.
func (t *Translator) Translate(ctx context.Context, text, targetLang string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("nothing to translate")
	}

	req := openai.ChatCompletionRequest{
		Model: t.deployment,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf("Translate the following text to %s and respond in Markdown.\n\n%s", targetLang, text),
			},
		},
		Temperature: 0.3,
	}

	resp, err := t.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("Azure OpenAI API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no translation returned")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
