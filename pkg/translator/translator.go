package translator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/GlebRadaev/translator/pkg/clients"
)

var (
	ErrUnexpectedStatus = errors.New("unexpected status code")
	ErrEmptyOutput      = errors.New("engine returned empty output")
)

type Request struct {
	Text       string `json:"text"`
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang"`
	Model      string `json:"model,omitempty"`
}

type Response struct {
	OutputText string `json:"output_text"`
}

// HTTPEngine calls a remote translation engine at POST {url}/translate.
type HTTPEngine struct {
	url    string
	client clients.HTTPClientI
}

func NewHTTPEngine(url string, client clients.HTTPClientI) *HTTPEngine {
	return &HTTPEngine{
		url:    strings.TrimSuffix(url, "/"),
		client: client,
	}
}

func (e *HTTPEngine) Translate(ctx context.Context, text, sourceLang, targetLang, model string) (string, error) {
	body, err := json.Marshal(Request{
		Text:       text,
		SourceLang: sourceLang,
		TargetLang: targetLang,
		Model:      model,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	statusCode, respBody, err := e.client.Post(ctx, e.url+"/translate", nil, body)
	if err != nil {
		return "", fmt.Errorf("failed to call engine: %w", err)
	}
	if statusCode != http.StatusOK {
		return "", fmt.Errorf("%w: %d", ErrUnexpectedStatus, statusCode)
	}

	var resp Response
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return "", fmt.Errorf("failed to parse response body: %w", err)
	}
	if resp.OutputText == "" {
		return "", ErrEmptyOutput
	}
	return resp.OutputText, nil
}

// EchoEngine returns the input unchanged. It stands in for a real engine
// when no engine address is configured.
type EchoEngine struct{}

func NewEchoEngine() *EchoEngine {
	return &EchoEngine{}
}

func (EchoEngine) Translate(ctx context.Context, text, _, _, _ string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return text, nil
}
