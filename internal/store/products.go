package store

import (
	"errors"
	"log"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"superisi_backend/internal/model"
	"superisi_backend/pkg/utils/imageurl"
	"superisi_backend/pkg/utils/jsonutil"
)

var ErrProductNotFound = errors.New("Product not found")

// ProductsStore katalog CRUD sözleşmesidir. Hizmet detayları ürün
// satırında değil, ürün id'siyle anahtarlanan ayrı bir haritada yaşar.
type ProductsStore interface {
	List() ([]model.ProductPayload, error)
	Create(input model.ProductInput) (model.ProductPayload, error)
	Update(id string, input model.ProductInput) (model.ProductPayload, error)
	Delete(id string) (model.ProductPayload, error)
	Count() (int64, error)
}

// DBProductsStore keeps product rows in the hosted table. The hosted
// schema has no service-details column, so the per-product detail lists
// ride in the product_service_details setting. Read paths degrade to
// the local file data instead of erroring.
type DBProductsStore struct {
	db       *gorm.DB
	settings SettingsStore
	files    *FileProductsStore
}

func NewDBProductsStore(db *gorm.DB, settings SettingsStore, files *FileProductsStore) *DBProductsStore {
	return &DBProductsStore{db: db, settings: settings, files: files}
}

func (s *DBProductsStore) detailsMap() map[string][]string {
	raw, err := s.settings.Get(KeyProductServiceDetails)
	if err != nil {
		log.Printf("Service details map fetch failed: %v", err)
		return map[string][]string{}
	}

	parsed := map[string][]string{}
	jsonutil.Decode(raw, &parsed)

	detailsMap := make(map[string][]string, len(parsed))
	for productID, details := range parsed {
		cleaned := imageurl.CleanStringList(details)
		if productID != "" && len(cleaned) > 0 {
			detailsMap[productID] = cleaned
		}
	}
	return detailsMap
}

func (s *DBProductsStore) persistDetails(productID string, details []string) error {
	if productID == "" {
		return nil
	}

	detailsMap := s.detailsMap()
	if len(details) > 0 {
		detailsMap[productID] = details
	} else {
		delete(detailsMap, productID)
	}
	return s.settings.Set(KeyProductServiceDetails, detailsMap)
}

func (s *DBProductsStore) List() ([]model.ProductPayload, error) {
	var rows []model.Product
	if err := s.db.Order("created_at desc").Find(&rows).Error; err != nil {
		log.Printf("Products fetch failed, using fallback data: %v", err)
		return s.files.List()
	}

	detailsMap := s.detailsMap()
	payloads := make([]model.ProductPayload, 0, len(rows))
	for _, p := range rows {
		p.Images = datatypes.NewJSONSlice(imageurl.SanitizeList(p.Images))
		payloads = append(payloads, model.NewProductPayload(p, detailsMap[p.ID]))
	}
	return payloads, nil
}

func (s *DBProductsStore) Create(input model.ProductInput) (model.ProductPayload, error) {
	var product model.Product
	input.Apply(&product)
	product.Images = datatypes.NewJSONSlice(imageurl.SanitizeList(product.Images))

	if err := s.db.Create(&product).Error; err != nil {
		return model.ProductPayload{}, err
	}

	details := imageurl.CleanStringList(input.ServiceDetails)
	if err := s.persistDetails(product.ID, details); err != nil {
		log.Printf("Service details persist failed for product %s: %v", product.ID, err)
	}

	return model.NewProductPayload(product, details), nil
}

func (s *DBProductsStore) Update(id string, input model.ProductInput) (model.ProductPayload, error) {
	var product model.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.ProductPayload{}, ErrProductNotFound
		}
		return model.ProductPayload{}, err
	}

	input.Apply(&product)
	product.ID = id
	product.Images = datatypes.NewJSONSlice(imageurl.SanitizeList(product.Images))

	if err := s.db.Save(&product).Error; err != nil {
		return model.ProductPayload{}, err
	}

	details := imageurl.CleanStringList(input.ServiceDetails)
	if err := s.persistDetails(id, details); err != nil {
		log.Printf("Service details persist failed for product %s: %v", id, err)
	}

	return model.NewProductPayload(product, details), nil
}

func (s *DBProductsStore) Delete(id string) (model.ProductPayload, error) {
	var product model.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.ProductPayload{}, ErrProductNotFound
		}
		return model.ProductPayload{}, err
	}

	if err := s.db.Delete(&model.Product{}, "id = ?", id).Error; err != nil {
		return model.ProductPayload{}, err
	}

	if err := s.persistDetails(id, nil); err != nil {
		log.Printf("Service details cleanup failed for product %s: %v", id, err)
	}

	return model.NewProductPayload(product, nil), nil
}

func (s *DBProductsStore) Count() (int64, error) {
	var count int64
	if err := s.db.Model(&model.Product{}).Count(&count).Error; err != nil {
		log.Printf("Product count failed, using fallback data: %v", err)
		return s.files.Count()
	}
	return count, nil
}
