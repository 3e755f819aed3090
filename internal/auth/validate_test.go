// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 eCommit Contributors

package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ecommit/ecommit/internal/auth"
)

func TestValidName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"simple name", "Ada Lovelace", true},
		{"apostrophe", "Conan O'Brien", true},
		{"hyphen and period", "Jean-Luc St. Pierre", true},
		{"comma suffix", "Davis, Jr.", true},
		{"empty", "", false},
		{"digits", "R2D2", false},
		{"underscore", "ada_lovelace", false},
		{"tab", "Ada\tLovelace", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, auth.ValidName(tt.input))
		})
	}
}

func TestValidEmail(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"plain address", "ada@example.com", true},
		{"subdomain", "ada@mail.example.co", true},
		{"plus tag", "ada+feed@example.org", true},
		{"dots in local part", "ada.lovelace@example.com", true},
		{"empty", "", false},
		{"missing at", "adaexample.com", false},
		{"missing tld", "ada@example", false},
		{"space", "ada lovelace@example.com", false},
		{"double at", "ada@@example.com", false},
		{"single-letter tld", "ada@example.c", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, auth.ValidEmail(tt.input))
		})
	}
}
