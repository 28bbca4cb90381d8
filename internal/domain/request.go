package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Column limits of the translations table.
const (
	MaxLangLength       = 16
	MaxExternalIDLength = 64
)

// Normalize fills in the default source language and model and checks that
// the request fits the record store. A request that passes can always be
// recorded, so it is safe to charge for it.
func (r TranslationRequest) Normalize() (TranslationRequest, error) {
	if strings.TrimSpace(r.Text) == "" {
		return r, fmt.Errorf("%w: input_text is empty", ErrInvalidInput)
	}
	if strings.TrimSpace(r.TargetLang) == "" {
		return r, fmt.Errorf("%w: target_lang is empty", ErrInvalidInput)
	}
	if r.SourceLang == "" {
		r.SourceLang = DefaultSourceLang
	}
	if r.Model == "" {
		r.Model = DefaultModel
	}

	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"input_text", r.Text, 0},
		{"source_lang", r.SourceLang, MaxLangLength},
		{"target_lang", r.TargetLang, MaxLangLength},
		{"external_id", r.ExternalID, MaxExternalIDLength},
	}
	for _, f := range fields {
		if !utf8.ValidString(f.value) {
			return r, fmt.Errorf("%w: %s is not valid UTF-8", ErrInvalidInput, f.name)
		}
		if strings.ContainsRune(f.value, 0) {
			return r, fmt.Errorf("%w: %s contains a NUL character", ErrInvalidInput, f.name)
		}
		if f.max > 0 && utf8.RuneCountInString(f.value) > f.max {
			return r, fmt.Errorf("%w: %s is longer than %d characters", ErrInvalidInput, f.name, f.max)
		}
	}
	return r, nil
}
