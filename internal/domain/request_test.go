package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslationRequestNormalize(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		req, err := TranslationRequest{Text: "hello", TargetLang: "de"}.Normalize()
		require.NoError(t, err)
		assert.Equal(t, DefaultSourceLang, req.SourceLang)
		assert.Equal(t, DefaultModel, req.Model)
	})

	t.Run("limits are inclusive", func(t *testing.T) {
		_, err := TranslationRequest{
			Text:       "hello",
			SourceLang: strings.Repeat("é", MaxLangLength),
			TargetLang: strings.Repeat("d", MaxLangLength),
			ExternalID: strings.Repeat("x", MaxExternalIDLength),
		}.Normalize()
		assert.NoError(t, err)
	})

	rejected := []struct {
		name string
		req  TranslationRequest
	}{
		{"blank text", TranslationRequest{Text: " \t", TargetLang: "de"}},
		{"missing target", TranslationRequest{Text: "hello"}},
		{"NUL in text", TranslationRequest{Text: "a\x00b", TargetLang: "de"}},
		{"invalid UTF-8 in text", TranslationRequest{Text: "a\xffb", TargetLang: "de"}},
		{"NUL in target", TranslationRequest{Text: "hello", TargetLang: "d\x00e"}},
		{"long source", TranslationRequest{Text: "hello", SourceLang: strings.Repeat("e", MaxLangLength+1), TargetLang: "de"}},
		{"long target", TranslationRequest{Text: "hello", TargetLang: strings.Repeat("d", MaxLangLength+1)}},
		{"long external id", TranslationRequest{Text: "hello", TargetLang: "de", ExternalID: strings.Repeat("x", MaxExternalIDLength+1)}},
	}
	for _, tt := range rejected {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.req.Normalize()
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
