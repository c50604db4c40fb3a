// Package revalidate önbelleğe alınmış sayfa render'larını içerik
// değişince geçersiz kılar. Backend, frontend'in revalidate kancasına
// best-effort POST atar; başarısızlık sadece loglanır.
package revalidate

import (
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

type Revalidator struct {
	baseURL string
	client  *http.Client
}

// New returns a revalidator for the given frontend origin. An empty
// origin disables revalidation entirely.
func New(baseURL string) *Revalidator {
	return &Revalidator{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

func (r *Revalidator) Enabled() bool {
	return r.baseURL != ""
}

// Invalidate her yol için frontend'e tek tek istek atar.
func (r *Revalidator) Invalidate(paths ...string) {
	if !r.Enabled() {
		return
	}

	for _, path := range paths {
		endpoint := r.baseURL + "/api/revalidate?path=" + url.QueryEscape(path)
		resp, err := r.client.Post(endpoint, "application/json", nil)
		if err != nil {
			log.Printf("Path revalidation failed for %s: %v", path, err)
			continue
		}
		resp.Body.Close()
		if resp.StatusCode >= 400 {
			log.Printf("Path revalidation failed for %s: status %d", path, resp.StatusCode)
		}
	}
}

// InvalidateProductPaths bir ürün değişikliğinden etkilenen public
// sayfaları geçersiz kılar.
func (r *Revalidator) InvalidateProductPaths(slugOrID string) {
	paths := []string{"/", "/koleksiyonlar", "/admin/products"}
	if slugOrID != "" {
		paths = append(paths, "/urun/"+slugOrID)
	}
	r.Invalidate(paths...)
}
