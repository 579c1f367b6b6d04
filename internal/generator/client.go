package generator

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"listify/internal/config"
	"listify/internal/logger"
	"listify/internal/models"
)

const openAIEndpoint = "https://api.openai.com/v1/chat/completions"

const systemPrompt = "You are an eBay listing optimizer. " +
	"Rules: Title <=80 chars, one line, no spam or all-caps. " +
	"Description <=4000 chars, mobile-friendly HTML with lead + bullets; " +
	"Allowed tags: <b>, <strong>, <br>, <ol>, <ul>, <li>, <table>, <tr>, <td>, <th>, <thead>, <tbody>, <tfoot>, <caption>, <colgroup>, <col>. " +
	"No active content (script/iframe/object/embed/applet/form/input/button/video/audio/canvas/svg/style). " +
	"Return results strictly via function call."

// Client generates marketplace listing candidates through the OpenAI API.
type Client struct {
	config *config.Config
	logger *logger.Logger
	http   *http.Client
}

// OpenAI API structures
type chatRequest struct {
	Model      string    `json:"model"`
	Messages   []message `json:"messages"`
	Tools      []tool    `json:"tools"`
	ToolChoice string    `json:"tool_choice"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type tool struct {
	Type     string       `json:"type"`
	Function toolFunction `json:"function"`
}

type toolFunction struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Parameters  json.RawMessage `json:"parameters"`
}

type chatResponse struct {
	Choices []choice `json:"choices"`
	Usage   usage    `json:"usage"`
}

type choice struct {
	Message struct {
		ToolCalls []toolCall `json:"tool_calls"`
	} `json:"message"`
}

type toolCall struct {
	Function struct {
		Name      string `json:"name"`
		Arguments string `json:"arguments"`
	} `json:"function"`
}

type usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// listingArguments is the function-call payload the model must return.
type listingArguments struct {
	EbayTitle           string `json:"ebay_title"`
	EbayDescriptionHTML string `json:"ebay_description_html"`
}

// listingToolSchema constrains the model to a compliant title and
// description. It restates the publishing rules so the generated payload
// usually survives validation.
var listingToolSchema = json.RawMessage(`{
  "type": "object",
  "properties": {
    "ebay_title": {
      "type": "string",
      "maxLength": 80,
      "minLength": 10,
      "description": "<= 80 characters, one line, start with brand/product, no spammy phrases (FREE, BEST DEAL, 100%, GUARANTEED, SALE), no emojis, no ALL-CAPS, no duplicate spaces."
    },
    "ebay_description_html": {
      "type": "string",
      "maxLength": 4000,
      "minLength": 40,
      "description": "<= 4000 characters of mobile-friendly HTML: short lead paragraph plus 3-8 bullet points, optional simple specs table. Allowed tags only; no active content; no external links or contact info."
    }
  },
  "required": ["ebay_title", "ebay_description_html"],
  "additionalProperties": false
}`)

func New(cfg *config.Config, log *logger.Logger) *Client {
	timeout := time.Duration(cfg.GenerationTimeoutSec) * time.Second
	return &Client{
		config: cfg,
		logger: log,
		http:   &http.Client{Timeout: timeout},
	}
}

// Generate produces one listing candidate for a catalog product. Errors
// are folded into the record (ok=false) so a batch always yields one
// record per item.
func (c *Client) Generate(model string, product models.Product) models.GenerationRecord {
	start := time.Now()
	rec := models.GenerationRecord{
		InputID:           models.FlexID(product.ExternalID),
		Model:             model,
		SourceTitle:       product.Title,
		SourceDescription: derefOrEmpty(product.Description),
		SourceBrand:       product.BrandName(),
	}

	title, description, tok, err := c.callOpenAI(model, makeUserPrompt(product))
	rec.LatencySec = time.Since(start).Seconds()
	if err != nil {
		c.logger.Error("Generation failed for item %s: %v", product.ExternalID, err)
		rec.Error = err.Error()
		return rec
	}

	rec.OK = true
	rec.EbayTitle = &title
	rec.EbayDescriptionHTML = &description
	rec.InputTokens = tok.PromptTokens
	rec.OutputTokens = tok.CompletionTokens
	rec.TotalTokens = tok.TotalTokens
	if rec.TotalTokens == 0 {
		rec.TotalTokens = rec.InputTokens + rec.OutputTokens
	}
	return rec
}

// makeUserPrompt lists the catalog fields the model should rewrite,
// skipping empty ones.
func makeUserPrompt(product models.Product) string {
	var lines []string
	add := func(k, v string) {
		if s := strings.TrimSpace(v); s != "" {
			lines = append(lines, fmt.Sprintf("%s: %s", k, s))
		}
	}
	add("Title", product.Title)
	add("Brand", product.BrandName())
	add("Description", derefOrEmpty(product.Description))

	return "Convert this Shopify product into an eBay-ready Title & HTML Description.\n" +
		strings.Join(lines, "\n")
}

// callOpenAI - Make API call to OpenAI
func (c *Client) callOpenAI(model, userPrompt string) (title, description string, tok usage, err error) {
	if c.config.OpenAIAPIKey == "" {
		return "", "", usage{}, fmt.Errorf("OpenAI API key not configured")
	}

	request := chatRequest{
		Model: model,
		Messages: []message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Tools: []tool{{
			Type: "function",
			Function: toolFunction{
				Name:        "optimize_for_ebay_title_description",
				Description: "Return an eBay-optimized title (<=80 chars) and a compliant HTML description (<=4000 chars, no active content).",
				Parameters:  listingToolSchema,
			},
		}},
		ToolChoice: "required",
	}

	jsonData, err := json.Marshal(request)
	if err != nil {
		return "", "", usage{}, fmt.Errorf("failed to marshal request: %v", err)
	}

	req, err := http.NewRequest("POST", openAIEndpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", "", usage{}, fmt.Errorf("failed to create request: %v", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.config.OpenAIAPIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", "", usage{}, fmt.Errorf("failed to make request: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", "", usage{}, fmt.Errorf("failed to read response: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", "", usage{}, fmt.Errorf("OpenAI API error: %s", string(body))
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", "", usage{}, fmt.Errorf("failed to parse response: %v", err)
	}

	if len(parsed.Choices) == 0 {
		return "", "", usage{}, fmt.Errorf("no response from OpenAI")
	}

	for _, call := range parsed.Choices[0].Message.ToolCalls {
		if call.Function.Name != "optimize_for_ebay_title_description" {
			continue
		}
		var args listingArguments
		if err := json.Unmarshal([]byte(call.Function.Arguments), &args); err != nil {
			continue
		}
		return args.EbayTitle, args.EbayDescriptionHTML, parsed.Usage, nil
	}

	return "", "", usage{}, fmt.Errorf("no listing function call in response")
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
