package i18n

var bundles = map[string]map[string]string{
	Arabic: {
		"language.toggle": "ع",

		"hero.title":       "اكتشف أقوى العروض في الكويت",
		"hero.subtitle":    "مختصون في عروض العمرة والسياحة والفيزا منذ أكثر من 10 أعوام",
		"hero.description": "اكتشف أجمل الوجهات السياحية مع باقات مميزة وخدمات متخصصة",
		"hero.cta":         "اكتشف عروضنا المميزة",

		"offers.title":             "عروض السفر",
		"offers.subtitle":          "اختر وجهتك المفضلة من مجموعة متنوعة من الباقات السياحية",
		"offers.chooseDestination": "اختر وجهتك المفضلة",
		"offers.loading":           "جاري تحميل العروض...",
		"offers.availableOffers":   "عرض متاح",
		"offers.backToCategories":  "العودة للفئات",
		"offers.backToAll":         "العودة لجميع العروض",
		"offers.viewDetails":       "التفاصيل",
		"offers.bookNow":           "احجز الآن",
		"offers.download":          "تحميل",
		"offers.share":             "مشاركة",
		"offers.whatsapp":          "تواصل عبر الواتساب",
		"offers.currency":          "د.ك",
		"offers.unit":              "وحدة",
		"offers.units":             "وحدات",

		"footer.whatsapp": "تواصل عبر الواتساب",
		"footer.address":  "حولي - شارع تونس - بناية هيا (الكويت)",
		"footer.company":  "شركة أوقات للسياحة والسفر - AWQAT Travel & Tourism",
		"footer.rights":   "جميع الحقوق محفوظة.",
		"footer.aboutUs":  "من نحن",

		"about.title":       "من نحن؟",
		"about.companyName": "شركة أوقات للسياحة والسفر",
	},
	English: {
		"language.toggle": "en",

		"hero.title":       "Discover the Best Offers in Kuwait",
		"hero.subtitle":    "Specialists in Umrah, Tourism and Visa offers for over 10 years",
		"hero.description": "Discover the most beautiful tourist destinations with specialized packages and professional services",
		"hero.cta":         "Discover Our Special Offers",

		"offers.title":             "Travel Offers",
		"offers.subtitle":          "Choose your favorite destination from a variety of tourist packages",
		"offers.chooseDestination": "Choose Your Favorite Destination",
		"offers.loading":           "Loading offers...",
		"offers.availableOffers":   "available offers",
		"offers.backToCategories":  "Back to Categories",
		"offers.backToAll":         "Back to All Offers",
		"offers.viewDetails":       "View Details",
		"offers.bookNow":           "Book Now",
		"offers.download":          "Download",
		"offers.share":             "Share",
		"offers.whatsapp":          "Contact via WhatsApp",
		"offers.currency":          "KD",
		"offers.unit":              "unit",
		"offers.units":             "units",

		"footer.whatsapp": "Contact via WhatsApp",
		"footer.address":  "Hawalli - Tunisia Street - Haya Building (Kuwait)",
		"footer.company":  "AWQAT Travel & Tourism - شركة أوقات للسياحة والسفر",
		"footer.rights":   "All rights reserved.",
		"footer.aboutUs":  "About Us",

		"about.title":       "About Us",
		"about.companyName": "AWQAT Travel & Tourism",
	},
}
