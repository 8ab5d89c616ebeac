package analysis

import (
	"arogya-service/internal/app/config"
	"arogya-service/internal/pkg/exceptions"
	"context"
	"errors"
	"time"

	"google.golang.org/genai"
)

type geminiModelClient struct {
	Client           *genai.Client
	Model            string
	TimeoutInSeconds int
}

func NewGeminiModelClient(ctx context.Context, geminiConfig *config.Gemini) (ModelClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  geminiConfig.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &geminiModelClient{
		Client:           client,
		Model:            geminiConfig.Model,
		TimeoutInSeconds: geminiConfig.TimeoutInSeconds,
	}, nil
}

func (c *geminiModelClient) GenerateAnalysis(ctx context.Context, prompt string, imageData []byte, mimeType string) (string, error) {
	contents := []*genai.Content{
		{
			Parts: []*genai.Part{
				{Text: prompt},
				{
					InlineData: &genai.Blob{
						Data:     imageData,
						MIMEType: mimeType,
					},
				},
			},
		},
	}
	generateConfig := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](0.4),
		MaxOutputTokens: 2048,
	}

	text, err := c.generateOnce(ctx, contents, generateConfig)
	if err != nil {
		// One retry covers transient upstream hiccups; the parser's
		// fallback chain handles anything beyond that.
		if ctx.Err() != nil {
			return "", exceptions.ErrModelGenerateContent(err)
		}
		text, err = c.generateOnce(ctx, contents, generateConfig)
		if err != nil {
			return "", exceptions.ErrModelGenerateContent(err)
		}
	}
	return text, nil
}

func (c *geminiModelClient) generateOnce(ctx context.Context, contents []*genai.Content, generateConfig *genai.GenerateContentConfig) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, time.Duration(c.TimeoutInSeconds)*time.Second)
	defer cancel()

	result, err := c.Client.Models.GenerateContent(callCtx, c.Model, contents, generateConfig)
	if err != nil {
		return "", err
	}
	text := result.Text()
	if text == "" {
		return "", errors.New("model returned empty response")
	}
	return text, nil
}
