package imageurl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
		{"separator garbage only", ";,;", ""},
		{"absolute http", "http://cdn.example.com/a.jpg", "http://cdn.example.com/a.jpg"},
		{"absolute https", "https://cdn.example.com/a.jpg", "https://cdn.example.com/a.jpg"},
		{"data url", "data:image/png;base64,AAAA", "data:image/png;base64,AAAA"},
		{"blob url", "blob:http://localhost/abc", "blob:http://localhost/abc"},
		{"products with slash", "/products/foo.jpg", "/uploads/products/foo.jpg"},
		{"products without slash", "products/foo.jpg", "/uploads/products/foo.jpg"},
		{"uploads without slash", "uploads/products/foo.jpg", "/uploads/products/foo.jpg"},
		{"already normalized", "/uploads/products/foo.jpg", "/uploads/products/foo.jpg"},
		{"bare filename", "foo.jpg", "/foo.jpg"},
		{"leading separators stripped", ";,/products/bar.jpg", "/uploads/products/bar.jpg"},
		{"surrounding whitespace", "  products/baz.jpg  ", "/uploads/products/baz.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestSanitizeList(t *testing.T) {
	input := []string{
		"products/a.jpg",
		"/products/a.jpg", // aynı URL'ye normalize olur
		"",
		"https://cdn.example.com/b.jpg",
		"products/a.jpg",
	}

	result := SanitizeList(input)

	assert.Equal(t, []string{
		"/uploads/products/a.jpg",
		"https://cdn.example.com/b.jpg",
	}, result)
}

func TestSanitizeListEmpty(t *testing.T) {
	assert.Empty(t, SanitizeList(nil))
	assert.Empty(t, SanitizeList([]string{"", "  ", ";,"}))
}

func TestCleanStringList(t *testing.T) {
	result := CleanStringList([]string{" Saç bakımı ", "", "Manikür", "   "})
	assert.Equal(t, []string{"Saç bakımı", "Manikür"}, result)
}
