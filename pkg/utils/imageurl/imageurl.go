// pkg/utils/imageurl/imageurl.go
package imageurl

import "strings"

// Normalize eski kayıtlardan gelen göreli resim yollarını tek bir
// /uploads önekine taşır. Mutlak URL'ler olduğu gibi geçer.
func Normalize(rawURL string) string {
	normalized := strings.TrimSpace(rawURL)
	if normalized == "" {
		return ""
	}

	normalized = strings.TrimLeft(normalized, ";,")
	if normalized == "" {
		return ""
	}

	lower := strings.ToLower(normalized)
	if strings.HasPrefix(lower, "http://") ||
		strings.HasPrefix(lower, "https://") ||
		strings.HasPrefix(lower, "data:") ||
		strings.HasPrefix(lower, "blob:") {
		return normalized
	}

	switch {
	case strings.HasPrefix(normalized, "/products/"):
		return "/uploads" + normalized
	case strings.HasPrefix(normalized, "products/"):
		return "/uploads/" + normalized
	case strings.HasPrefix(normalized, "uploads/"):
		return "/" + normalized
	case !strings.HasPrefix(normalized, "/"):
		return "/" + normalized
	}

	return normalized
}

// SanitizeList normalizes every URL, drops blanks and collapses
// duplicates while preserving order.
func SanitizeList(urls []string) []string {
	seen := make(map[string]bool, len(urls))
	out := make([]string, 0, len(urls))
	for _, raw := range urls {
		u := Normalize(raw)
		if u == "" || seen[u] {
			continue
		}
		seen[u] = true
		out = append(out, u)
	}
	return out
}

// CleanStringList trims entries and drops the blank ones.
func CleanStringList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		trimmed := strings.TrimSpace(item)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
