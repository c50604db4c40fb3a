package store

import (
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"superisi_backend/internal/model"
	"superisi_backend/pkg/utils/imageurl"
)

// productsFileData yerel ürün dosyasının yerleşimidir: ürün listesi artı
// ürün id'si ile anahtarlanan hizmet detayı haritası.
type productsFileData struct {
	Products          []model.Product     `json:"products"`
	ServiceDetailsMap map[string][]string `json:"serviceDetailsMap"`
}

func seedProductsData() productsFileData {
	return productsFileData{
		Products:          []model.Product{},
		ServiceDetailsMap: map[string][]string{},
	}
}

// normalizeProductsData her okuma/yazmada çalışır: id'siz satırlara id
// üretir, resim URL'lerini normalize eder, boş detay girdilerini temizler.
func normalizeProductsData(data productsFileData) productsFileData {
	products := make([]model.Product, 0, len(data.Products))
	for _, p := range data.Products {
		if strings.TrimSpace(p.ID) == "" {
			p.ID = uuid.New().String()
		}
		p.Images = datatypes.NewJSONSlice(imageurl.SanitizeList(p.Images))
		products = append(products, p)
	}

	detailsMap := make(map[string][]string, len(data.ServiceDetailsMap))
	for productID, details := range data.ServiceDetailsMap {
		cleaned := imageurl.CleanStringList(details)
		if productID != "" && len(cleaned) > 0 {
			detailsMap[productID] = cleaned
		}
	}

	return productsFileData{Products: products, ServiceDetailsMap: detailsMap}
}

// FileProductsStore is the JSON-file products backend used when no
// database is configured, and the read fallback when the database
// errors. Parse failures reset the file to the seeded defaults.
type FileProductsStore struct {
	file *jsonFile
}

func NewFileProductsStore(path string) *FileProductsStore {
	return &FileProductsStore{file: newJSONFile(path)}
}

func (s *FileProductsStore) readAll() productsFileData {
	raw, exists, err := s.file.load()
	if err != nil {
		log.Printf("Fallback product store read failed, resetting store: %v", err)
		seeded := seedProductsData()
		s.writeAll(seeded)
		return seeded
	}
	if !exists {
		seeded := seedProductsData()
		s.writeAll(seeded)
		return seeded
	}

	var data productsFileData
	if err := json.Unmarshal(raw, &data); err != nil {
		log.Printf("Fallback product store parse failed, resetting store: %v", err)
		seeded := seedProductsData()
		s.writeAll(seeded)
		return seeded
	}
	if data.Products == nil {
		data.Products = []model.Product{}
	}
	if data.ServiceDetailsMap == nil {
		data.ServiceDetailsMap = map[string][]string{}
	}
	return normalizeProductsData(data)
}

func (s *FileProductsStore) writeAll(data productsFileData) {
	normalized := normalizeProductsData(data)
	raw, err := json.MarshalIndent(normalized, "", "  ")
	if err != nil {
		log.Printf("Fallback product store encode failed: %v", err)
		return
	}
	if err := s.file.store(raw); err != nil {
		log.Printf("Fallback product store write failed: %v", err)
	}
}

func (s *FileProductsStore) List() ([]model.ProductPayload, error) {
	data := s.readAll()
	payloads := make([]model.ProductPayload, 0, len(data.Products))
	for _, p := range data.Products {
		payloads = append(payloads, model.NewProductPayload(p, data.ServiceDetailsMap[p.ID]))
	}
	return payloads, nil
}

func (s *FileProductsStore) Create(input model.ProductInput) (model.ProductPayload, error) {
	data := s.readAll()

	now := time.Now().UTC()
	product := model.Product{
		ID:        uuid.New().String(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	input.Apply(&product)
	if product.Slug == "" {
		product.Slug = product.ID
	}
	product.Images = datatypes.NewJSONSlice(imageurl.SanitizeList(product.Images))

	details := imageurl.CleanStringList(input.ServiceDetails)

	// En yeni başa gelecek şekilde ekle
	data.Products = append([]model.Product{product}, data.Products...)
	if len(details) > 0 {
		data.ServiceDetailsMap[product.ID] = details
	} else {
		delete(data.ServiceDetailsMap, product.ID)
	}
	s.writeAll(data)

	return model.NewProductPayload(product, details), nil
}

func (s *FileProductsStore) Update(id string, input model.ProductInput) (model.ProductPayload, error) {
	data := s.readAll()

	index := -1
	for i, p := range data.Products {
		if p.ID == id {
			index = i
			break
		}
	}
	if index < 0 {
		return model.ProductPayload{}, ErrProductNotFound
	}

	product := data.Products[index]
	input.Apply(&product)
	product.ID = id
	product.UpdatedAt = time.Now().UTC()
	product.Images = datatypes.NewJSONSlice(imageurl.SanitizeList(product.Images))

	details := imageurl.CleanStringList(input.ServiceDetails)

	data.Products[index] = product
	if len(details) > 0 {
		data.ServiceDetailsMap[id] = details
	} else {
		delete(data.ServiceDetailsMap, id)
	}
	s.writeAll(data)

	return model.NewProductPayload(product, details), nil
}

func (s *FileProductsStore) Delete(id string) (model.ProductPayload, error) {
	data := s.readAll()

	index := -1
	for i, p := range data.Products {
		if p.ID == id {
			index = i
			break
		}
	}
	if index < 0 {
		return model.ProductPayload{}, ErrProductNotFound
	}

	deleted := data.Products[index]
	data.Products = append(data.Products[:index], data.Products[index+1:]...)
	delete(data.ServiceDetailsMap, id)
	s.writeAll(data)

	return model.NewProductPayload(deleted, nil), nil
}

func (s *FileProductsStore) Count() (int64, error) {
	data := s.readAll()
	return int64(len(data.Products)), nil
}
