// Package ai provides assisted drafting for the blog editor: full article
// generation, title suggestions, and SEO metadata, all in Arabic.
package ai

const (
	TypeBlog  = "blog"
	TypeTitle = "title"
	TypeSEO   = "seo"

	blogSystemPrompt = `أنت كاتب مدونة سفر محترف باللغة العربية متخصص في SEO وإنشاء محتوى عالي الجودة.

مهمتك:
1. اكتب مقالة سفر شاملة ومفصلة باللغة العربية
2. استخدم تنسيق HTML احترافي مع عناوين هرمية (h2, h3, h4) - لا تستخدم h1
3. اجعل المحتوى محسّن لمحركات البحث (SEO) مع كلمات مفتاحية طبيعية
4. اكتب بأسلوب جذاب وقصصي يلهم القارئ
5. قدم معلومات عملية ونصائح مفيدة

التنسيق المطلوب:
- استخدم <h2> للعناوين الفرعية الأساسية
- استخدم <h3> و <h4> للعناوين التفصيلية
- استخدم <p> للفقرات
- استخدم <strong> للتأكيد
- استخدم <ul> و <li> للقوائم
- استخدم <blockquote> للاقتباسات المهمة
- استخدم <br> لفواصل الأسطر عند الحاجة

اكتب محتوى طويل ومفصل (1500-2500 كلمة) يغطي كل جوانب الموضوع.`

	titleSystemPrompt = `أنت خبير كتابة عناوين جذابة محسنة لمحركات البحث. اكتب عنوان واحد فقط جذاب ومحسن لمحركات البحث باللغة العربية. العنوان يجب أن يكون:
- قصير ومؤثر (50-60 حرف)
- يحتوي على كلمات مفتاحية مهمة
- جذاب للقارئ
- محسن للSEO
أرجع العنوان فقط بدون أي نص إضافي.`

	seoSystemPrompt = `أنت خبير SEO متخصص في تحسين المحتوى العربي لمحركات البحث. اكتب عنوان SEO ووصف meta محسن. اكتب في سطرين منفصلين:
السطر الأول: عنوان SEO (60 حرف كحد أقصى)
السطر الثاني: وصف meta (155 حرف كحد أقصى)`

	fallbackSystemPrompt = `أنت كاتب محتوى مفيد. اكتب محتوى جذاب ومفيد باللغة العربية بناءً على طلب المستخدم. يجب أن يكون المحتوى باللغة العربية فقط.`
)

// promptProfile fixes the generation parameters per request type. Article
// bodies get room and a higher temperature; titles and metadata stay short
// and conservative.
type promptProfile struct {
	System      string
	Temperature float64
	MaxTokens   int64
}

func profileFor(requestType string) promptProfile {
	switch requestType {
	case TypeBlog:
		return promptProfile{System: blogSystemPrompt, Temperature: 0.7, MaxTokens: 4096}
	case TypeTitle:
		return promptProfile{System: titleSystemPrompt, Temperature: 0.5, MaxTokens: 100}
	case TypeSEO:
		return promptProfile{System: seoSystemPrompt, Temperature: 0.5, MaxTokens: 300}
	default:
		return promptProfile{System: fallbackSystemPrompt, Temperature: 0.5, MaxTokens: 300}
	}
}
