package store

import "github.com/dzinstall/storefront/internal/domain/model"

// Wilayas lists the provinces accepted at registration.
var Wilayas = []string{
	"أدرار", "الشلف", "الأغواط", "أم البواقي", "باتنة", "بجاية", "بسكرة", "بشار",
	"البليدة", "البويرة", "تمنراست", "تبسة", "تلمسان", "تيارت", "تيزي وزو", "الجزائر",
	"الجلفة", "جيجل", "سطيف", "سعيدة", "سكيكدة", "سيدي بلعباس", "عنابة", "قالمة",
	"قسنطينة", "المدية", "مستغانم", "المسيلة", "معسكر", "ورقلة", "وهران",
}

// DeliveryCompanies lists the carriers offered for paperwork and shipping.
var DeliveryCompanies = []string{
	"Yalidine Express",
	"ZR Express",
	"Nord & West Express",
	"Maystro Delivery",
	"Guepex",
	"E-logistique",
	"البريد السريع EMS",
}

const unsplash = "https://images.unsplash.com/"

func image(path string) model.MediaItem {
	return model.MediaItem{Type: model.MediaTypeImage, URL: unsplash + path + "?auto=format&fit=crop&w=800&q=80"}
}

var (
	tvImage     = image("photo-1593359677879-a4bb92f829d1")
	fridgeImage = image("photo-1584568694244-14fbdf83bd30")
	stoveImage  = image("photo-1626143541742-9f8353322656")
	acImage     = model.MediaItem{
		Type: model.MediaTypeImage,
		URL:  "https://plus.unsplash.com/premium_photo-1677011984260-2646271a396e?q=80&w=800&auto=format&fit=crop",
	}
)

// SeedProducts returns a fresh copy of the built-in catalog.
func SeedProducts() []model.Product {
	return []model.Product{
		{
			ID:          "1",
			Name:        "تلفاز كوندور 55 بوصة 4K Smart",
			Brand:       "Condor",
			Category:    "تلفاز",
			Description: "تلفاز ذكي بدقة 4K عالية الوضوح، نظام أندرويد 11، يدعم جميع التطبيقات (Netflix, YouTube). تصميم بدون حواف لتجربة مشاهدة غامرة.",
			TotalPrice:  85000,
			Plan:        model.InstallmentPlan{Months: 12, MonthlyPrice: 7084},
			Features:    []string{"دقة 4K UHD", "Android TV 11", "HDR10+", "3 منافذ HDMI", "Dolby Audio"},
			Media:       []model.MediaItem{tvImage, tvImage, image("photo-1552975086-20a93237aad7")},
			Stock:       15,
		},
		{
			ID:          "2",
			Name:        "ثلاجة براندت 420 لتر",
			Brand:       "Brandt",
			Category:    "ثلاجات",
			Description: "ثلاجة واسعة بنظام تبريد NoFrost مانع لتكون الجليد، اقتصادية في استهلاك الطاقة، مع مساحات تخزين ذكية للخضروات والفواكه.",
			TotalPrice:  110000,
			Plan:        model.InstallmentPlan{Months: 18, MonthlyPrice: 6112},
			Features:    []string{"NoFrost", "A++ توفير طاقة", "ضمان 3 سنوات", "شاشة تحكم رقمية", "إضاءة LED"},
			Media:       []model.MediaItem{fridgeImage, image("photo-1571175443880-49e1d58b794a")},
			Stock:       8,
		},
		{
			ID:          "3",
			Name:        "غسالة أل جي 10.5 كغ Vivace",
			Brand:       "LG",
			Category:    "غسالات",
			Description: "غسالة ملابس ذكية بتقنية AI DD التي تتعرف على نوع القماش وتختار الغسيل الأمثل. محرك Direct Drive هادئ وموفر للطاقة.",
			TotalPrice:  145000,
			Plan:        model.InstallmentPlan{Months: 24, MonthlyPrice: 6042},
			Features:    []string{"AI DD", "Steam+ تعقيم بالبخار", "TurboWash 360", "ThinQ WiFi", "محرك انفرتر"},
			Media:       []model.MediaItem{image("photo-1626806775351-5c7e52dc29e6"), image("photo-1610557892470-55d9e80c0bce")},
			Stock:       5,
		},
		{
			ID:          "4",
			Name:        "مكيف هواء سامسونج 12000 BTU",
			Brand:       "Samsung",
			Category:    "تكييف",
			Description: "مكيف هواء بتقنية WindFree، تبريد بدون هواء مباشر مزعج. تبريد سريع وفعال مع فلتر لتنقية الهواء من الغبار والبكتيريا.",
			TotalPrice:  98000,
			Plan:        model.InstallmentPlan{Months: 12, MonthlyPrice: 8167},
			Features:    []string{"WindFree", "Inverter Boost", "فلتر مضاد للبكتيريا", "هدوء تام", "تبريد سريع"},
			Media:       []model.MediaItem{acImage, image("photo-1614631446501-abcf76949734")},
			Stock:       20,
		},
		{
			ID:          "5",
			Name:        "طباخة كوندور 5 شعلات",
			Brand:       "Condor",
			Category:    "أفران",
			Description: "طباخة عصرية من الإينوكس المقاوم للصدأ، أمان تام بفضل نظام Thermocouple، إشعال ذاتي، وشواية دجاج دوارة.",
			TotalPrice:  55000,
			Plan:        model.InstallmentPlan{Months: 10, MonthlyPrice: 5500},
			Features:    []string{"Inox", "Thermocouple Safety", "شواية دجاج", "مؤقت رقمي", "5 شعلات"},
			Media:       []model.MediaItem{stoveImage, image("photo-1584622650111-993a426fbf0a")},
			Stock:       12,
		},
	}
}

// SeedUsers returns a fresh copy of the built-in customers. None of them
// has a password until bootstrap assigns one.
func SeedUsers() []model.User {
	return []model.User{
		{
			FirstName: "Karim", LastName: "Benzine", BirthDate: "1985-05-12",
			Phone1: "0550123456", Phone2: "0661123456", Email: "karim.benz@gmail.com",
			Wilaya: "الجزائر", Baladyia: "Bab Ezzouar", Address: "حي 5 جويلية عمارة أ رقم 12",
			CCPNumber: "12345678", CCPKey: "22", NIN: "109850012345678901", NINExpiry: "2028-05-12",
			Role: model.RoleCustomer, RegistrationDate: "2023-01-15T10:00:00Z", LastLoginDate: "2023-10-25T14:30:00Z",
			IDCardFront: "karim_id_front.jpg", IDCardBack: "karim_id_back.jpg",
			ChequeImage: "karim_cheque.jpg", AccountStatement: "karim_releve.pdf",
		},
		{
			FirstName: "Amira", LastName: "Saidi", BirthDate: "1992-08-20",
			Phone1: "0661987654", Email: "amira.saidi@yahoo.fr",
			Wilaya: "وهران", Baladyia: "Es Senia", Address: "شارع الأمير عبد القادر رقم 45",
			CCPNumber: "87654321", CCPKey: "99", NIN: "109920098765432109", NINExpiry: "2030-01-01",
			Role: model.RoleCustomer, RegistrationDate: "2023-05-10T09:15:00Z", LastLoginDate: "2023-10-23T09:15:00Z",
			IDCardFront: "amira_id_front.jpg", IDCardBack: "amira_id_back.jpg",
			ChequeImage: "amira_cheque.jpg", AccountStatement: "amira_releve.pdf",
		},
		{
			FirstName: "Yacine", LastName: "Brahimi", BirthDate: "1988-11-03",
			Phone1: "0770112233", Email: "yacine.brahimi@outlook.com",
			Wilaya: "سطيف", Baladyia: "El Eulma", Address: "حي دبي التجاري",
			CCPNumber: "11223344", CCPKey: "45", NIN: "109880011223344556", NINExpiry: "2029-11-03",
			Role: model.RoleCustomer, RegistrationDate: "2023-08-20T16:45:00Z", LastLoginDate: "2023-10-25T13:45:00Z",
			IDCardFront: "yacine_id_front.jpg", IDCardBack: "yacine_id_back.jpg",
			ChequeImage: "yacine_cheque.jpg", AccountStatement: "yacine_releve.pdf",
		},
		{
			FirstName: "Ahmed", LastName: "Ben Mohamed", BirthDate: "1990-01-01",
			Phone1: "0550000000", Email: "client@dzinstall.com",
			Wilaya: "أدرار", Baladyia: "Adrar Centre", Address: "Hay 5 Juillet",
			CCPNumber: "12345678", CCPKey: "99", NIN: "1099000111222", NINExpiry: "2030-12-31",
			Role: model.RoleCustomer, RegistrationDate: "2023-01-01T10:00:00Z", LastLoginDate: "2023-10-25T14:30:00Z",
			IDCardFront: "ahmed_id.jpg", IDCardBack: "ahmed_id.jpg",
			ChequeImage: "ahmed_cheque.jpg", AccountStatement: "ahmed_releve.pdf",
		},
	}
}

// SeedOrders returns a fresh copy of the built-in applications.
func SeedOrders() []model.Order {
	return []model.Order{
		{
			ID: "1001", ProductID: "1", ProductName: "تلفاز كوندور 55 بوصة 4K Smart", ProductImage: tvImage.URL,
			CustomerName: "Karim Benzine", CustomerPhone: "0550123456", Wilaya: "الجزائر",
			Status: model.OrderStatusApproved, Date: "01/10/2023", MonthlyPrice: 7084, Months: 12,
			PreliminaryApprovalDate: "02/10/2023", FilesReceiptDate: "04/10/2023",
		},
		{
			ID: "1002", ProductID: "2", ProductName: "ثلاجة براندت 420 لتر", ProductImage: fridgeImage.URL,
			CustomerName: "Amira Saidi", CustomerPhone: "0661987654", Wilaya: "وهران",
			Status: model.OrderStatusPending, Date: "05/10/2023", MonthlyPrice: 6112, Months: 18,
		},
		{
			ID: "1003", ProductID: "5", ProductName: "طباخة كوندور 5 شعلات", ProductImage: stoveImage.URL,
			CustomerName: "Yacine Brahimi", CustomerPhone: "0770112233", Wilaya: "سطيف",
			Status: model.OrderStatusRejected, Date: "02/10/2023", MonthlyPrice: 5500, Months: 10,
			RejectionReason: "كشف الحساب غير كافي لتغطية القسط الشهري.", RejectionDate: "03/10/2023",
		},
		{
			ID: "1004", ProductID: "4", ProductName: "مكيف هواء سامسونج 12000 BTU", ProductImage: acImage.URL,
			CustomerName: "Karim Benzine", CustomerPhone: "0550123456", Wilaya: "الجزائر",
			Status: model.OrderStatusWaitingForFiles, Date: "10/10/2023", MonthlyPrice: 8167, Months: 12,
			PreliminaryApprovalDate: "11/10/2023", DeliveryCompany: "Yalidine Express", TrackingNumber: "YAL-123456789",
		},
	}
}
