package services

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/servergreen991/designer-mom/utils"
)

// DefaultRenderModel is the Gemini image model used when none is
// configured.
const DefaultRenderModel = "gemini-2.5-flash-image"

// Renderer is the image-generation collaborator contract. Images travel
// as data URLs. Both operations may fail; failures never corrupt
// previously returned images.
type Renderer interface {
	// Generate renders one image from a textual description.
	Generate(ctx context.Context, prompt string) (string, error)

	// Edit applies a text-described change to a previously returned
	// image and returns the new image.
	Edit(ctx context.Context, imageDataURL, instruction string) (string, error)
}

// GeminiRenderer implements Renderer against the Gemini API.
type GeminiRenderer struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiRenderer creates a renderer backed by the official Gemini SDK.
func NewGeminiRenderer(ctx context.Context, apiKey, modelName string) (*GeminiRenderer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is empty")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	if modelName == "" {
		modelName = DefaultRenderModel
	}

	return &GeminiRenderer{
		client: client,
		model:  client.GenerativeModel(modelName),
	}, nil
}

// Close closes the underlying client connection.
func (r *GeminiRenderer) Close() {
	if r.client != nil {
		r.client.Close()
	}
}

// Generate renders one image for the prompt and returns it as a data URL.
func (r *GeminiRenderer) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := r.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generation error: %w", err)
	}
	return firstImage(resp)
}

// Edit sends the current image plus the instruction and returns the
// edited image as a data URL.
func (r *GeminiRenderer) Edit(ctx context.Context, imageDataURL, instruction string) (string, error) {
	mimeType, data, err := utils.ParseDataURL(imageDataURL)
	if err != nil {
		return "", fmt.Errorf("invalid source image: %w", err)
	}

	resp, err := r.model.GenerateContent(ctx,
		genai.Blob{MIMEType: mimeType, Data: data},
		genai.Text(instruction),
	)
	if err != nil {
		return "", fmt.Errorf("gemini edit error: %w", err)
	}
	return firstImage(resp)
}

// firstImage extracts the first inline image from a Gemini response.
func firstImage(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from gemini")
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if blob, ok := part.(genai.Blob); ok {
			return utils.EncodeDataURL(blob.MIMEType, blob.Data), nil
		}
	}
	return "", fmt.Errorf("no image data found in gemini response")
}
