package translator

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/GlebRadaev/translator/pkg/clients"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestHTTPEngineTranslate(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := clients.NewMockHTTPClientI(ctrl)
	engine := NewHTTPEngine("http://engine:9000/", client)
	ctx := context.Background()
	expectedBody := []byte(`{"text":"hello","source_lang":"en","target_lang":"de","model":"marian"}`)

	tests := []struct {
		name        string
		prepareMock func()
		expected    string
		expectedErr error
		anyErr      bool
	}{
		{
			name: "Success",
			prepareMock: func() {
				client.EXPECT().Post(ctx, "http://engine:9000/translate", gomock.Nil(), expectedBody).
					Return(http.StatusOK, []byte(`{"output_text":"hallo"}`), nil)
			},
			expected: "hallo",
		},
		{
			name: "Transport error",
			prepareMock: func() {
				client.EXPECT().Post(ctx, "http://engine:9000/translate", gomock.Nil(), expectedBody).
					Return(0, nil, errors.New("connection refused"))
			},
			anyErr: true,
		},
		{
			name: "Non-200 status",
			prepareMock: func() {
				client.EXPECT().Post(ctx, "http://engine:9000/translate", gomock.Nil(), expectedBody).
					Return(http.StatusServiceUnavailable, nil, nil)
			},
			expectedErr: ErrUnexpectedStatus,
		},
		{
			name: "Malformed body",
			prepareMock: func() {
				client.EXPECT().Post(ctx, "http://engine:9000/translate", gomock.Nil(), expectedBody).
					Return(http.StatusOK, []byte(`not json`), nil)
			},
			anyErr: true,
		},
		{
			name: "Empty output",
			prepareMock: func() {
				client.EXPECT().Post(ctx, "http://engine:9000/translate", gomock.Nil(), expectedBody).
					Return(http.StatusOK, []byte(`{"output_text":""}`), nil)
			},
			expectedErr: ErrEmptyOutput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			out, err := engine.Translate(ctx, "hello", "en", "de", "marian")

			switch {
			case tt.expectedErr != nil:
				assert.ErrorIs(t, err, tt.expectedErr)
			case tt.anyErr:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, out)
			}
		})
	}
}

func TestEchoEngineTranslate(t *testing.T) {
	engine := NewEchoEngine()

	out, err := engine.Translate(context.Background(), "bonjour", "fr", "en", "")
	assert.NoError(t, err)
	assert.Equal(t, "bonjour", out)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = engine.Translate(ctx, "bonjour", "fr", "en", "")
	assert.ErrorIs(t, err, context.Canceled)
}
