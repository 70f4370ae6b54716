package responder

// Category is the topic a message is classified into.
type Category string

const (
	Pricing    Category = "pricing"
	Timeline   Category = "timeline"
	Technology Category = "technology"
	SEO        Category = "seo"
	Mobile     Category = "mobile"
	Ecommerce  Category = "ecommerce"
	Support    Category = "support"
	Portfolio  Category = "portfolio"
	Contact    Category = "contact"
	Greeting   Category = "greeting"
	Default    Category = "default"
)

type entry struct {
	category  Category
	keywords  []string
	responses []string
}

// catalog is ordered by priority; Default carries no keywords and is last.
var catalog = []entry{
	{
		category: Pricing,
		keywords: []string{"fiyat", "ücret", "maliyet", "ne kadar", "tutar", "para"},
		responses: []string{
			"Web sitesi fiyatlandırması projenizin kapsamına göre değişir. Basit kurumsal siteler 2.500 TL'den, e-ticaret siteleri 4.000 TL'den başlar. Detaylı teklif için projenizin gereksinimlerini belirtmeniz gerekir.",
			"Fiyatlandırma, sitenizin özelliklerine, tasarım karmaşıklığına ve geliştirme süresine göre belirlenir. Size özel teklif hazırlamak için hangi tür web sitesi istediğinizi anlatabilir misiniz?",
			"Web geliştirme fiyatlarımız şeffaf ve rekabetçi. Temel paketlerimiz 2.500 TL'den başlıyor. Daha detaylı bilgi için projenizin özelliklerini paylaşabilir misiniz?",
		},
	},
	{
		category: Timeline,
		keywords: []string{"süre", "zaman", "ne kadar sürede", "tamamlanma", "bitirme", "hazırlama"},
		responses: []string{
			"Proje süresi, web sitenizin karmaşıklığına göre değişir. Basit kurumsal siteler 2-3 hafta, e-ticaret siteleri 4-6 hafta sürer. Hızlı teslimat için öncelikli geliştirme paketlerimiz de mevcuttur.",
			"Geliştirme süremiz projenizin kapsamına bağlıdır. Standart web siteleri 2-4 hafta arasında tamamlanır. Acil projeler için express geliştirme hizmeti sunuyoruz.",
			"Web sitesi teslim süreleri: Kurumsal siteler 2-3 hafta, e-ticaret 4-6 hafta, özel uygulamalar 6-12 hafta. Size özel bir zaman çizelgesi hazırlayabilirim.",
		},
	},
	{
		category: Technology,
		keywords: []string{"teknoloji", "programlama", "dil", "framework", "react", "vue", "angular", "javascript", "html", "css"},
		responses: []string{
			"Modern web teknolojileri kullanıyorum: HTML5, CSS3, JavaScript, React, Vue.js, Node.js, PHP, MySQL. Projenizin gereksinimlerine en uygun teknolojiyi seçiyoruz.",
			"Güncel teknoloji stack'im: Frontend için React/Vue.js, backend için Node.js/PHP, veritabanı için MySQL/MongoDB. Her proje için en optimal çözümü sunuyorum.",
			"HTML5, CSS3, JavaScript, React, Vue.js, Node.js, PHP, MySQL, WordPress, WooCommerce gibi teknolojilerle çalışıyorum. Hangi teknoloji ile ilgili detay istiyorsunuz?",
		},
	},
	{
		category: SEO,
		keywords: []string{"seo", "arama motoru", "google", "optimizasyon", "sıralama", "arama"},
		responses: []string{
			"Evet, tüm web sitelerimde SEO optimizasyonu dahildir. Google Analytics, Search Console kurulumu, meta tag optimizasyonu, hız optimizasyonu ve içerik optimizasyonu yapıyorum.",
			"SEO optimizasyonu web sitenizin arama motorlarında üst sıralarda yer alması için kritik. Teknik SEO, içerik optimizasyonu ve performans iyileştirmeleri dahil kapsamlı SEO hizmeti sunuyorum.",
			"SEO hizmetlerim: Teknik SEO analizi, anahtar kelime araştırması, içerik optimizasyonu, site hızı iyileştirme, Google Analytics kurulumu. SEO paketlerim ayrıca da mevcuttur.",
		},
	},
	{
		category: Mobile,
		keywords: []string{"mobil", "responsive", "telefon", "tablet", "uyumlu", "mobile"},
		responses: []string{
			"Evet, tüm web sitelerim responsive tasarımla mobil uyumludur. Mobile-first yaklaşımı benimsiyorum ve tüm cihazlarda mükemmel görünüm sağlıyorum.",
			"Mobil uyumluluk zorunludur. Web siteleriniz telefon, tablet ve desktop'ta aynı kalitede çalışır. Touch-friendly tasarım ve hızlı yükleme süreleri garanti ediyorum.",
			"Responsive tasarım ile web siteniz tüm cihazlarda mükemmel görünür. Mobile-first yaklaşımı, touch-friendly arayüz ve optimize edilmiş performans sunuyorum.",
		},
	},
	{
		category: Ecommerce,
		keywords: []string{"e-ticaret", "online mağaza", "satış", "alışveriş", "woocommerce", "shopify", "ecommerce"},
		responses: []string{
			"E-ticaret siteleri uzmanlık alanım. WooCommerce, Shopify, özel e-ticaret çözümleri geliştiriyorum. Ödeme entegrasyonları, envanter yönetimi, kargo entegrasyonları dahil.",
			"Online mağaza geliştirme konusunda deneyimliyim. WooCommerce ve Shopify ile profesyonel e-ticaret siteleri kuruyorum. Satış artırıcı özellikler ve SEO optimizasyonu dahil.",
			"E-ticaret çözümlerim: WooCommerce kurulumu, ödeme sistemleri entegrasyonu, envanter yönetimi, kargo entegrasyonları, mobil mağaza optimizasyonu. Hangi e-ticaret platformunu tercih ediyorsunuz?",
		},
	},
	{
		category: Support,
		keywords: []string{"destek", "bakım", "güncelleme", "yardım", "sorun", "problem"},
		responses: []string{
			"Site bakım ve güncelleme hizmetlerim mevcuttur. Güvenlik güncellemeleri, yedekleme, performans izleme ve 7/24 teknik destek sunuyorum. Aylık bakım paketlerim 500 TL'den başlıyor.",
			"Web sitenizin sürekli güncel ve güvenli kalması için bakım hizmetleri sunuyorum. Güvenlik güncellemeleri, yedekleme, hız optimizasyonu ve teknik destek dahil.",
			"Site bakım hizmetlerim: Güvenlik güncellemeleri, otomatik yedekleme, performans izleme, içerik güncellemeleri, teknik destek. Aylık bakım paketlerim mevcuttur.",
		},
	},
	{
		category: Portfolio,
		keywords: []string{"portföy", "proje", "örnek", "çalışma", "referans", "portfolio"},
		responses: []string{
			"Portföyümde 50+ tamamlanmış proje bulunuyor. E-ticaret, kurumsal siteler, mobil uygulamalar ve özel projeler geliştirdim. Projelerimi sağ tarafta inceleyebilirsiniz.",
			"Çeşitli sektörlerden projeler geliştirdim: moda e-ticaret, restoran rezervasyon sistemi, eğitim platformu, hastane yönetim sistemi. Detayları için portföy bölümüme bakabilirsiniz.",
			"Portföyümde kurumsal siteler, e-ticaret platformları, mobil uygulamalar ve özel yazılımlar var. 5 yıllık deneyimimle farklı sektörlerden başarılı projeler tamamladım.",
		},
	},
	{
		category: Contact,
		keywords: []string{"iletişim", "görüşme", "toplantı", "randevu", "konuşma", "contact"},
		responses: []string{
			"İletişim için e-posta, WhatsApp veya LinkedIn üzerinden ulaşabilirsiniz. Hızlı yanıt için WhatsApp'ı tercih edebilirsiniz. Görüşme planlamak için Cal.com linkimi kullanabilirsiniz.",
			"Projenizi görüşmek için WhatsApp, e-posta veya LinkedIn'den iletişime geçebilirsiniz. 2 saat içinde yanıt veriyorum. Ücretsiz danışmanlık için görüşme planlayabiliriz.",
			"İletişim bilgilerim profil bölümünde. WhatsApp en hızlı iletişim yolu. Proje detaylarını görüşmek için ücretsiz 30 dakikalık görüşme planlayabiliriz.",
		},
	},
	{
		category: Greeting,
		keywords: []string{"merhaba", "selam", "hello", "hi", "hey"},
		responses: []string{
			"Merhaba! Size nasıl yardımcı olabilirim? Web geliştirme, e-ticaret, SEO, mobil uygulama geliştirme gibi konularda sorularınızı yanıtlayabilirim.",
			"Selam! Web geliştirme hizmetlerim hakkında bilgi almak istiyorsanız, size yardımcı olabilirim. Hangi konuda detay istiyorsunuz?",
			"Merhaba! Projeniz hakkında konuşalım! Web sitesi, e-ticaret, mobil uygulama veya başka bir proje mi planlıyorsunuz? Size en uygun çözümü sunabilirim.",
		},
	},
	{
		category: Default,
		responses: []string{
			"Size nasıl yardımcı olabilirim? Web geliştirme, tasarım, SEO optimizasyonu veya teknik destek konularında sorularınızı bekliyorum.",
			"Web geliştirme konularında size yardımcı olmaktan memnuniyet duyarım. Hangi konuda bilgi almak istiyorsunuz?",
			"Projeniz hakkında daha detaylı bilgi verebilir misiniz? Size en uygun çözümü sunabilirim.",
			"Web geliştirme, e-ticaret, SEO veya başka bir konuda sorularınızı yanıtlayabilirim. Hangi konuda yardıma ihtiyacınız var?",
		},
	},
}

// Categories returns every category in priority order, Default last.
func Categories() []Category {
	out := make([]Category, len(catalog))
	for i, e := range catalog {
		out[i] = e.category
	}
	return out
}

// Candidates returns a copy of the replies for c. Unknown categories get the
// Default replies.
func Candidates(c Category) []string {
	e := lookup(c)
	return append([]string(nil), e.responses...)
}

// Valid reports whether c is a known category.
func Valid(c Category) bool {
	for _, e := range catalog {
		if e.category == c {
			return true
		}
	}
	return false
}

func lookup(c Category) entry {
	for _, e := range catalog {
		if e.category == c {
			return e
		}
	}
	return catalog[len(catalog)-1]
}
