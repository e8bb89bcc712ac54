package lexicon

// arabic is the built-in English to Arabic table.
var arabic = [][2]string{
	// Basic words
	{"Error", "خطأ"},
	{"Errors", "أخطاء"},
	{"Unknown", "غير معروف"},
	{"Success", "نجاح"},
	{"Warning", "تحذير"},
	{"Info", "معلومات"},
	{"Help", "مساعدة"},
	{"Settings", "الإعدادات"},
	{"Menu", "القائمة"},
	{"Close", "إغلاق"},
	{"Opened", "مفتوح"},
	{"Closed", "مغلق"},
	{"Enabled", "مُمكّن"},
	{"Disabled", "معطّل"},
	{"ON", "تشغيل"},
	{"OFF", "إيقاف"},
	{"Proxy", "وكيل"},
	{"Keyboard", "لوحة المفاتيح"},
	{"Cookies", "ملفات تعريف الارتباط"},
	{"MediaInfo", "معلومات الملف"},
	{"Subtitles", "الترجمات"},
	{"Subtitle", "ترجمة"},
	{"Language", "اللغة"},
	{"Video", "فيديو"},
	{"Audio", "صوت"},
	{"Images", "صور"},
	{"Image", "صورة"},
	{"Playlist", "قائمة تشغيل"},
	{"Playlists", "قوائم تشغيل"},
	{"Group", "مجموعة"},
	{"Limits", "الحدود"},
	{"Format", "الصيغة"},
	{"Formats", "الصيغ"},
	{"Quality", "الجودة"},
	{"Duration", "المدة"},
	{"Title", "العنوان"},
	{"Direct", "مباشر"},
	{"Link", "رابط"},
	{"Links", "روابط"},
	{"Download", "تنزيل"},
	{"Downloading", "جارٍ التنزيل"},
	{"Processing", "جارٍ المعالجة"},
	{"Completed", "اكتمل"},
	{"Complete", "مكتمل"},
	{"Please", "الرجاء"},
	{"Wait", "الانتظار"},
	{"Try", "حاول"},
	{"again", "مرة أخرى"},
	{"File", "ملف"},
	{"Files", "ملفات"},
	{"Size", "الحجم"},
	{"Cache", "ذاكرة مؤقتة"},
	{"Sent", "تم الإرسال"},
	{"from", "من"},
	{"Checking", "جارٍ الفحص"},
	{"Invalid", "غير صالح"},
	{"Valid", "صالح"},
	{"Provide", "قدّم"},
	{"URL", "URL"},
	{"Warning:", "تحذير:"},
	{"Example", "مثال"},
	{"Examples", "أمثلة"},
	{"Range", "نطاق"},
	{"Usage", "الاستخدام"},
	{"Notes", "ملاحظات"},
	{"Note", "ملاحظة"},
	{"Tests", "اختبارات"},
	{"Test", "اختبار"},
	{"Selected", "محدّد"},
	{"Set", "تعيين"},
	{"Saved", "تم الحفظ"},
	{"Parameters", "المعلمات"},
	{"Parameter", "معلمة"},
	{"Option", "خيار"},
	{"Options", "خيارات"},
	{"Current value", "القيمة الحالية"},
	{"Quick commands", "أوامر سريعة"},
	{"Search", "بحث"},
	{"History", "السجل"},
	{"Account", "الحساب"},
	{"username", "اسم المستخدم"},

	// Bot-specific terms
	{"Live", "مباشر"},
	{"Stream", "بث"},
	{"Detected", "تم اكتشاف"},
	{"Downloading of ongoing", "تحميل الجاري"},
	{"infinite live streams", "البث المباشر اللامحدود"},
	{"is not allowed", "غير مسموح"},
	{"Please wait for the stream", "يرجى انتظار انتهاء البث"},
	{"to end and try downloading", "وانتهاءه ثم حاول التحميل"},
	{"again when", "مرة أخرى عندما"},
	{"The stream duration", "مدة البث"},
	{"is known", "معروفة"},
	{"The stream has finished", "انتهى البث"},
	{"Mobile", "محمول"},
	{"Activate", "تفعيل"},
	{"Inline search helper", "مساعد البحث المدمج"},
	{"set language with", "تعيين اللغة مع"},
	{"AUTO/TRANS", "تلقائي/ترجمة"},
	{"Current value", "القيمة الحالية"},
	{"Geo Bypass", "تجاوز جغرافي"},
	{"Embed Meta", "تضمين البيانات الوصفية"},
	{"Embed Thumb", "تضمين الصورة المصغرة"},
	{"Write Thumb", "كتابة الصورة المصغرة"},
	{"Concurrent", "متزامن"},
	{"Sleep Subs", "انتظار الترجمات"},
	{"Legacy Connect", "اتصال قديم"},
	{"Ignore Errors", "تجاهل الأخطاء"},
	{"Playlist Items", "عناصر القائمة"},
	{"Max Sleep", "أقصى انتظار"},
	{"Join Channel", "انضم للقناة"},
	{"Verification Required", "التحقق مطلوب"},
	{"Policy Violation", "انتهاك السياسة"},
	{"Impersonate", "انتحال شخصية"},
	{"Referer", "المرجع"},
	{"Username", "اسم المستخدم"},
	{"Password", "كلمة المرور"},
	{"Clean", "نظيف"},
	{"TikTok", "تيك توك"},
	{"Instagram", "إنستغرام"},
	{"playlist", "قائمة تشغيل"},
	{"Smart grouping", "تجميع ذكي"},
	{"Filters updated", "تم تحديث المرشحات"},
	{"db created", "تم إنشاء قاعدة البيانات"},
	{"Bot started", "تم بدء البوت"},

	// Common phrases
	{"Error occurred", "حدث خطأ"},
	{"Unknown error", "خطأ غير معروف"},
	{"An error occurred", "حدث خطأ"},
	{"Please wait", "يرجى الانتظار"},
	{"Processing...", "جارٍ المعالجة..."},
	{"Downloading media...", "جارٍ تنزيل الوسائط..."},
	{"Download complete", "اكتمل التنزيل"},
	{"Invalid URL", "رابط غير صالح"},
	{"Not enough disk space", "لا توجد مساحة كافية على القرص"},
	{"File size exceeds the limit", "يتجاوز حجم الملف الحد"},
	{"Direct link obtained", "تم الحصول على رابط مباشر"},
	{"Getting direct link...", "جارٍ الحصول على رابط مباشر..."},
	{"Getting available formats...", "جارٍ الحصول على الصيغ المتاحة..."},
	{"Invalid parameter", "معلمة غير صالحة"},
	{"Command executed", "تم تنفيذ الأمر"},
	{"Menu closed", "تم إغلاق القائمة"},
	{"Access denied", "تم رفض الوصول"},
	{"Please send a number", "يرجى إرسال رقم"},
	{"Please provide a valid URL", "يرجى تقديم رابط صالح"},
	{"Please send valid JSON", "يرجى إرسال JSON صالح"},
	{"Language set to", "تم تعيين اللغة إلى"},
	{"Subtitles are disabled", "تم تعطيل الترجمات"},
	{"Provide a valid URL", "يرجى تقديم رابط صالح"},
}
