package ident

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"My Notes!", "mynotes"},
		{"  draft  ", "draft"},
		{"Hello_World-2024", "hello_world-2024"},
		{"ça-va?", "a-va"},
		{"!!!", ""},
		{"", ""},
		{"../etc/passwd", "etcpasswd"},
		{"ÀÉÎ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := Normalize(tt.raw)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, Normalize(got), "normalize must be idempotent")
		})
	}
}

func TestIsLegal(t *testing.T) {
	assert.True(t, IsLegal("draft"))
	assert.True(t, IsLegal("a-b_c-9"))
	assert.False(t, IsLegal(""))
	assert.False(t, IsLegal("Draft"))
	assert.False(t, IsLegal("my notes"))
	assert.False(t, IsLegal("note/1"))
}
