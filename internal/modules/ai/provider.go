package ai

import (
	"context"
	"errors"
	neturl "net/url"
	"strings"

	anthropicclient "github.com/anthropics/anthropic-sdk-go"
	anthropicoption "github.com/anthropics/anthropic-sdk-go/option"
	"github.com/awqat-travel/core/internal/config"
	openaiclient "github.com/openai/openai-go/v2"
	openaioption "github.com/openai/openai-go/v2/option"
)

// Provider generates a single completion for a system prompt and user prompt.
type Provider interface {
	Complete(ctx context.Context, system, prompt string, profile promptProfile) (string, error)
}

// NewProvider builds a provider from config. Returns nil when no API key is
// configured; callers treat that as "assisted drafting disabled".
func NewProvider(cfg config.AIConfig) Provider {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil
	}
	if isAnthropicProviderType(cfg.Type) {
		return newAnthropicProvider(cfg)
	}
	return newOpenAIProvider(cfg)
}

func isAnthropicProviderType(raw string) bool {
	t := strings.ToLower(strings.TrimSpace(raw))
	t = strings.ReplaceAll(t, "_", "-")
	return t == "anthropic"
}

type openAIProvider struct {
	client openaiclient.Client
	model  string
}

func newOpenAIProvider(cfg config.AIConfig) *openAIProvider {
	opts := []openaioption.RequestOption{
		openaioption.WithAPIKey(strings.TrimSpace(cfg.APIKey)),
		openaioption.WithMaxRetries(0),
	}
	if normalized := normalizeOpenAIBaseURL(cfg.BaseURL); normalized != "" {
		opts = append(opts, openaioption.WithBaseURL(normalized))
	}

	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &openAIProvider{client: openaiclient.NewClient(opts...), model: model}
}

func (p *openAIProvider) Complete(ctx context.Context, system, prompt string, profile promptProfile) (string, error) {
	resp, err := p.client.Chat.Completions.New(ctx, openaiclient.ChatCompletionNewParams{
		Model: openaiclient.ChatModel(p.model),
		Messages: []openaiclient.ChatCompletionMessageParamUnion{
			openaiclient.SystemMessage(system),
			openaiclient.UserMessage(prompt),
		},
		Temperature: openaiclient.Float(profile.Temperature),
		MaxTokens:   openaiclient.Int(profile.MaxTokens),
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", errors.New("empty response from AI")
	}
	return resp.Choices[0].Message.Content, nil
}

type anthropicProvider struct {
	client anthropicclient.Client
	model  string
}

func newAnthropicProvider(cfg config.AIConfig) *anthropicProvider {
	opts := []anthropicoption.RequestOption{
		anthropicoption.WithAPIKey(strings.TrimSpace(cfg.APIKey)),
		anthropicoption.WithMaxRetries(0),
	}
	if endpoint := strings.TrimSpace(cfg.BaseURL); endpoint != "" {
		opts = append(opts, anthropicoption.WithBaseURL(strings.TrimRight(endpoint, "/")))
	}

	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = "claude-haiku-4-5-20251001"
	}
	return &anthropicProvider{client: anthropicclient.NewClient(opts...), model: model}
}

func (p *anthropicProvider) Complete(ctx context.Context, system, prompt string, profile promptProfile) (string, error) {
	resp, err := p.client.Messages.New(ctx, anthropicclient.MessageNewParams{
		Model:       anthropicclient.Model(p.model),
		MaxTokens:   profile.MaxTokens,
		Temperature: anthropicclient.Float(profile.Temperature),
		System: []anthropicclient.TextBlockParam{
			{Text: system},
		},
		Messages: []anthropicclient.MessageParam{
			anthropicclient.NewUserMessage(anthropicclient.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", err
	}

	var full strings.Builder
	for _, block := range resp.Content {
		if textBlock, ok := block.AsAny().(anthropicclient.TextBlock); ok {
			full.WriteString(textBlock.Text)
		}
	}
	text := full.String()
	if strings.TrimSpace(text) == "" {
		return "", errors.New("empty response from AI")
	}
	return text, nil
}

func normalizeOpenAIBaseURL(raw string) string {
	base := strings.TrimSpace(raw)
	if base == "" {
		return ""
	}
	parsed, err := neturl.Parse(base)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return strings.TrimRight(base, "/")
	}

	path := strings.TrimRight(parsed.Path, "/")
	if !strings.HasSuffix(path, "/v1") {
		path += "/v1"
	}
	parsed.Path = path
	return strings.TrimRight(parsed.String(), "/")
}
