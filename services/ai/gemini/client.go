package gemini

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"google.golang.org/genai"

	"github.com/trezcool/synapse/core"
	"github.com/trezcool/synapse/core/advisor"
)

const jsonMIMEType = "application/json"

// Client generates content with the Gemini API.
type Client struct {
	models *genai.Models
	model  string
}

var _ advisor.Generator = (*Client)(nil)

// NewClient returns a Gemini backed generator, or nil when no API key is configured.
func NewClient(ctx context.Context, conf *core.Config) (*Client, error) {
	if conf.Gemini.APIKey == "" {
		return nil, nil
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  conf.Gemini.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, errors.Wrap(err, "creating gemini client")
	}
	return &Client{models: client.Models, model: conf.Gemini.Model}, nil
}

func (c *Client) Generate(ctx context.Context, req advisor.Request) (string, error) {
	var config *genai.GenerateContentConfig
	if req.Schema != nil {
		config = &genai.GenerateContentConfig{
			ResponseMIMEType: jsonMIMEType,
			ResponseSchema:   toSchema(req.Schema),
		}
	}

	resp, err := c.models.GenerateContent(ctx, c.model, genai.Text(req.Prompt), config)
	if err != nil {
		return "", errors.Wrap(err, "generating content")
	}
	return responseText(resp)
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("no candidates in response")
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil {
			sb.WriteString(part.Text)
		}
	}
	return sb.String(), nil
}

var schemaTypes = map[advisor.SchemaType]genai.Type{
	advisor.TypeString:  genai.TypeString,
	advisor.TypeInteger: genai.TypeInteger,
	advisor.TypeArray:   genai.TypeArray,
	advisor.TypeObject:  genai.TypeObject,
}

func toSchema(s *advisor.Schema) *genai.Schema {
	if s == nil {
		return nil
	}
	out := &genai.Schema{
		Type:        schemaTypes[s.Type],
		Description: s.Description,
		Items:       toSchema(s.Items),
		Required:    s.Required,
	}
	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for name, prop := range s.Properties {
			out.Properties[name] = toSchema(prop)
		}
	}
	return out
}
