// Package fetchers assembles the public page view-models from the
// settings and products stores, applying the site defaults whenever
// data is absent or the backend is unreachable. Public pages never see
// a backend error; they render defaults.
package fetchers

import (
	"encoding/json"
	"log"
	"strings"
	"unicode"

	"superisi_backend/internal/model"
	"superisi_backend/internal/store"
	"superisi_backend/pkg/utils/jsonutil"
)

type HeaderSettings struct {
	LogoText       string `json:"header_logo_text"`
	MenuAnasayfa   string `json:"header_menu_anasayfa"`
	MenuKoleksiyon string `json:"header_menu_koleksiyon"`
	MenuHakkimizda string `json:"header_menu_hakkimizda"`
	MenuIletisim   string `json:"header_menu_iletisim"`
}

type FooterSettings struct {
	BrandName        string `json:"footer_brand_name"`
	BrandDescription string `json:"footer_brand_description"`
	Text             string `json:"footer_text"`
	Address          string `json:"footer_address"`
	Whatsapp         string `json:"footer_whatsapp"`
	SocialInstagram  string `json:"footer_social_instagram"`
	SocialFacebook   string `json:"footer_social_facebook"`
	MenuHakkimizda   string `json:"footer_menu_hakkimizda"`
	MenuIletisim     string `json:"footer_menu_iletisim"`
}

type ContactNumbers struct {
	Phone           string `json:"phone"`
	WhatsappDisplay string `json:"whatsapp_display"`
	WhatsappNumber  string `json:"whatsapp_number"`
	WhatsappMessage string `json:"whatsapp_message"`
}

type SiteSettings struct {
	Header         HeaderSettings `json:"header"`
	Footer         FooterSettings `json:"footer"`
	ContactNumbers ContactNumbers `json:"contact_numbers"`
}

type HomepageData struct {
	HeroTitle          string   `json:"hero_title"`
	HeroSubtitle       string   `json:"hero_subtitle"`
	HeroImage          string   `json:"hero_image"`
	HeroCtaText        string   `json:"hero_cta_text"`
	HeroCtaLink        string   `json:"hero_cta_link"`
	HeroBrightness     float64  `json:"hero_brightness"`
	CtaBandTitle       string   `json:"cta_band_title"`
	CtaBandDescription string   `json:"cta_band_description"`
	CtaBandButtonText  string   `json:"cta_band_button_text"`
	CtaBandButtonLink  string   `json:"cta_band_button_link"`
	CtaBandImage       string   `json:"cta_band_image"`
	WhyUsTitle         string   `json:"why_us_title"`
	WhyUsSubtitle      string   `json:"why_us_subtitle"`
	WhyUsItem1Title    string   `json:"why_us_item1_title"`
	WhyUsItem1Desc     string   `json:"why_us_item1_desc"`
	WhyUsItem2Title    string   `json:"why_us_item2_title"`
	WhyUsItem2Desc     string   `json:"why_us_item2_desc"`
	WhyUsItem3Title    string   `json:"why_us_item3_title"`
	WhyUsItem3Desc     string   `json:"why_us_item3_desc"`
	ShowroomTitle      string   `json:"showroom_title"`
	ShowroomDesc       string   `json:"showroom_description"`
	ShowroomImage      string   `json:"showroom_image"`
	Feature1Icon       string   `json:"feature_1_icon"`
	Feature1Title      string   `json:"feature_1_title"`
	Feature1Desc       string   `json:"feature_1_description"`
	FeaturedProducts   []string `json:"featured_products"`
}

type AboutData struct {
	Title         string `json:"title"`
	Subtitle      string `json:"subtitle"`
	Content       string `json:"content"`
	Image         string `json:"image"`
	Feature1Title string `json:"feature1_title"`
	Feature1Desc  string `json:"feature1_desc"`
	Feature2Title string `json:"feature2_title"`
	Feature2Desc  string `json:"feature2_desc"`
	Feature3Title string `json:"feature3_title"`
	Feature3Desc  string `json:"feature3_desc"`
}

type ContactData struct {
	Title              string `json:"title"`
	Subtitle           string `json:"subtitle"`
	FormTitle          string `json:"form_title"`
	FormSubmitText     string `json:"form_submit_text"`
	WhatsappButtonText string `json:"whatsapp_button_text"`
	Address            string `json:"address"`
	Phone              string `json:"phone"`
	Whatsapp           string `json:"whatsapp"`
	Email              string `json:"email"`
	Hours              string `json:"hours"`
	MapLocation        string `json:"map_location"`
}

func DefaultContactNumbers() ContactNumbers {
	return ContactNumbers{
		Phone:           "0543 516 70 11",
		WhatsappDisplay: "0543 516 70 11",
		WhatsappNumber:  "905435167011",
		WhatsappMessage: "Merhaba, randevu almak istiyorum.",
	}
}

func DefaultHeader() HeaderSettings {
	return HeaderSettings{
		LogoText:       "Su Perisi Güzellik Salonu",
		MenuAnasayfa:   "Ana Sayfa",
		MenuKoleksiyon: "Koleksiyon",
		MenuHakkimizda: "Hakkımızda",
		MenuIletisim:   "Randevu Oluştur",
	}
}

func DefaultFooter() FooterSettings {
	return FooterSettings{
		BrandName:        "Su Perisi Güzellik Salonu",
		BrandDescription: "Profesyonel kadın saç ve kuaför hizmetleri",
		Text:             "2025 Su Perisi Güzellik Salonu. Tüm hakları saklıdır.",
		Address:          "Kırşehir Türkiye",
		Whatsapp:         "05435167011",
		MenuHakkimizda:   "Hakkımızda",
		MenuIletisim:     "Randevu Oluştur",
	}
}

func DefaultHomepage() HomepageData {
	return HomepageData{
		HeroTitle:          "Profesyonel Kadın Kuaför & Stil Hizmetleri",
		HeroSubtitle:       "Kesim, renklendirme ve özel gün saç tasarımlarında uzman ekibimizle tanışın",
		HeroImage:          "https://images.unsplash.com/photo-1519741497674-611481863552?w=2000",
		HeroCtaText:        "Hizmetleri Gör",
		HeroCtaLink:        "/koleksiyonlar",
		HeroBrightness:     0.5,
		CtaBandTitle:       "Randevunuzu Kolayca Oluşturun",
		CtaBandDescription: "WhatsApp veya telefon üzerinden hızlı randevu talebi bırakın, ekibimiz en kısa sürede size dönüş yapsın.",
		CtaBandButtonText:  "Randevu Al",
		CtaBandButtonLink:  "/iletisim",
		WhyUsTitle:         "Neden Su Perisi Güzellik Salonu?",
		WhyUsSubtitle:      "Binlerce müşteri bize güvendi",
		WhyUsItem1Title:    "Uzman Ekip",
		WhyUsItem1Desc:     "Deneyimli kuaför ekibimizle kesim, fön, renklendirme ve bakımda profesyonel sonuçlar",
		WhyUsItem2Title:    "Renk & Balayage",
		WhyUsItem2Desc:     "Doğal geçişler, modern tonlar ve saç tipinize uygun tekniklerle kişiye özel renk uygulamaları",
		WhyUsItem3Title:    "Saç Bakım Protokolleri",
		WhyUsItem3Desc:     "Keratin, saç botoksu ve onarıcı bakımlarla sağlıklı, parlak ve güçlü saç görünümü",
		ShowroomTitle:      "Salonumuzu Ziyaret Edin",
		ShowroomDesc:       "Profesyonel saç kesimi, renklendirme, fön ve bakım hizmetlerimizi yakından deneyimlemek için salonumuzu ziyaret edin.",
		Feature1Icon:       "✨",
		Feature1Title:      "Profesyonel Hizmet",
		Feature1Desc:       "Deneyimli stilistler ve profesyonel bakım uygulamaları",
		FeaturedProducts:   []string{},
	}
}

func DefaultAbout() AboutData {
	return AboutData{
		Title:         "Hakkımızda",
		Subtitle:      "Su Perisi Güzellik Salonu, kadın kuaför ve güzellik hizmetlerinde yüksek kalite ve modern stilin adresidir.",
		Feature1Title: "Profesyonel Saç Bakımı",
		Feature1Desc:  "Saçınıza uygun bakım protokolleri ve kaliteli ürünlerle sağlıklı görünüm",
		Feature2Title: "Renk & Balayage",
		Feature2Desc:  "Doğal geçişler, modern tonlar ve size özel renk danışmanlığı",
		Feature3Title: "Stil Danışmanlığı",
		Feature3Desc:  "Yüz şeklinize ve tarzınıza uygun kesim ve saç tasarımı önerileri",
	}
}

func DefaultContact() ContactData {
	return ContactData{
		Title:              "Randevu & İletişim",
		Subtitle:           "Sorularınız mı var? Hizmetlerimiz hakkında bilgi almak veya randevu oluşturmak için bizimle iletişime geçin. En kısa sürede yanıt vereceğiz.",
		FormTitle:          "Bize Ulaşın",
		FormSubmitText:     "Mesaj Gönder",
		WhatsappButtonText: "WhatsApp'tan Hızlıca Yazın",
		Address:            "Kırşehir Türkiye",
		Phone:              "0543 516 70 11",
		Whatsapp:           "0543 516 70 11",
		Email:              "info@dijitalshowroom.com",
		Hours:              "Pazartesi - Pazar\n10:00 - 19:00",
		MapLocation:        "Kırşehir",
	}
}

type Fetchers struct {
	settings store.SettingsStore
	products store.ProductsStore
}

func New(settings store.SettingsStore, products store.ProductsStore) *Fetchers {
	return &Fetchers{settings: settings, products: products}
}

// sanitizeWhatsappNumber rakam dışındaki her şeyi atar
func sanitizeWhatsappNumber(value string) string {
	var b strings.Builder
	for _, r := range value {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

// parseContactNumbers raw değeri çözer ve eksik alanları telefon
// numarasından türetip varsayılanlara düşer.
func parseContactNumbers(raw []byte) ContactNumbers {
	defaults := DefaultContactNumbers()

	var parsed ContactNumbers
	jsonutil.Decode(raw, &parsed)

	phone := firstNonEmpty(parsed.Phone, defaults.Phone)
	display := firstNonEmpty(parsed.WhatsappDisplay, parsed.Phone, defaults.WhatsappDisplay)
	number := firstNonEmpty(
		sanitizeWhatsappNumber(parsed.WhatsappNumber),
		sanitizeWhatsappNumber(parsed.WhatsappDisplay),
		sanitizeWhatsappNumber(parsed.Phone),
		defaults.WhatsappNumber,
	)
	message := firstNonEmpty(parsed.WhatsappMessage, defaults.WhatsappMessage)

	return ContactNumbers{
		Phone:           phone,
		WhatsappDisplay: firstNonEmpty(display, phone),
		WhatsappNumber:  number,
		WhatsappMessage: message,
	}
}

// GetSettings header, footer ve iletişim numaralarını tek seferde döner.
func (f *Fetchers) GetSettings() SiteSettings {
	fallback := SiteSettings{
		Header:         DefaultHeader(),
		Footer:         DefaultFooter(),
		ContactNumbers: DefaultContactNumbers(),
	}

	settingsMap, err := f.settings.All()
	if err != nil {
		log.Printf("Error fetching settings (using fallback): %v", err)
		return fallback
	}

	header := DefaultHeader()
	jsonutil.Decode(settingsMap[store.KeyHeader], &header)

	footer := DefaultFooter()
	jsonutil.Decode(settingsMap[store.KeyFooter], &footer)

	var contactNumbers ContactNumbers
	if raw, ok := settingsMap[store.KeyContactNumbers]; ok && len(raw) > 0 {
		contactNumbers = parseContactNumbers(raw)
	} else {
		// İletişim numaraları ayrı kaydedilmemişse footer'daki
		// WhatsApp numarasından türet
		contactNumbers = parseContactNumbers(nil)
		if footer.Whatsapp != "" {
			contactNumbers.Phone = footer.Whatsapp
			contactNumbers.WhatsappDisplay = footer.Whatsapp
			if digits := sanitizeWhatsappNumber(footer.Whatsapp); digits != "" {
				contactNumbers.WhatsappNumber = digits
			}
		}
	}

	footer.Whatsapp = firstNonEmpty(contactNumbers.WhatsappDisplay, footer.Whatsapp, fallback.Footer.Whatsapp)

	return SiteSettings{Header: header, Footer: footer, ContactNumbers: contactNumbers}
}

func (f *Fetchers) GetHomepage() HomepageData {
	homepage := DefaultHomepage()

	raw, err := f.settings.Get(store.KeyHomepage)
	if err != nil {
		log.Printf("Error fetching homepage data (using fallback): %v", err)
		return homepage
	}
	if len(raw) == 0 {
		log.Printf("Homepage data not found in settings, using defaults")
		return homepage
	}

	jsonutil.Decode(raw, &homepage)
	return homepage
}

func (f *Fetchers) GetAbout() AboutData {
	about := DefaultAbout()

	raw, err := f.settings.Get(store.KeyAbout)
	if err != nil {
		log.Printf("Error fetching about data (using fallback): %v", err)
		return about
	}
	jsonutil.Decode(raw, &about)
	return about
}

func (f *Fetchers) GetContactNumbers() ContactNumbers {
	raw, err := f.settings.Get(store.KeyContactNumbers)
	if err != nil {
		log.Printf("Error fetching contact numbers (using fallback): %v", err)
		return DefaultContactNumbers()
	}
	if len(raw) > 0 {
		return parseContactNumbers(raw)
	}

	// contact_numbers hiç kaydedilmemişse iletişim sayfası verisinden türet
	contactRaw, err := f.settings.Get(store.KeyContact)
	if err != nil {
		return DefaultContactNumbers()
	}
	var contactPage ContactData
	jsonutil.Decode(contactRaw, &contactPage)

	derived := ContactNumbers{
		Phone:           contactPage.Phone,
		WhatsappDisplay: firstNonEmpty(contactPage.Whatsapp, contactPage.Phone),
		WhatsappNumber:  firstNonEmpty(contactPage.Whatsapp, contactPage.Phone),
	}
	encoded, _ := json.Marshal(derived)
	return parseContactNumbers(encoded)
}

func (f *Fetchers) GetContact() ContactData {
	contact := DefaultContact()

	contactNumbers := f.GetContactNumbers()

	raw, err := f.settings.Get(store.KeyContact)
	if err != nil {
		log.Printf("Error fetching contact data (using fallback): %v", err)
		return contact
	}
	jsonutil.Decode(raw, &contact)

	contact.Phone = contactNumbers.Phone
	contact.Whatsapp = contactNumbers.WhatsappDisplay
	return contact
}

func (f *Fetchers) GetProducts() []model.ProductPayload {
	products, err := f.products.List()
	if err != nil {
		log.Printf("Error fetching products (using fallback): %v", err)
		return []model.ProductPayload{}
	}
	return products
}
