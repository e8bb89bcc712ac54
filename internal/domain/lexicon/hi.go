package lexicon

// hindi is the built-in English to Hindi table.
var hindi = [][2]string{
	// Basic words
	{"Error", "त्रुटि"},
	{"Errors", "त्रुटियाँ"},
	{"Unknown", "अज्ञात"},
	{"Success", "सफल"},
	{"Warning", "चेतावनी"},
	{"Info", "जानकारी"},
	{"Help", "सहायता"},
	{"Settings", "सेटिंग्स"},
	{"Menu", "मेनू"},
	{"Close", "बंद करें"},
	{"Opened", "खोला गया"},
	{"Closed", "बंद"},
	{"Enabled", "सक्रिय"},
	{"Disabled", "निष्क्रिय"},
	{"ON", "चालू"},
	{"OFF", "बंद"},
	{"Proxy", "प्रॉक्सी"},
	{"Keyboard", "कीबोर्ड"},
	{"Cookies", "कुकीज़"},
	{"MediaInfo", "फ़ाइल जानकारी"},
	{"Subtitles", "उपशीर्षक"},
	{"Subtitle", "उपशीर्षक"},
	{"Language", "भाषा"},
	{"Video", "वीडियो"},
	{"Audio", "ऑडियो"},
	{"Images", "छवियाँ"},
	{"Image", "छवि"},
	{"Playlist", "प्लेलिस्ट"},
	{"Playlists", "प्लेलिस्ट्स"},
	{"Group", "समूह"},
	{"Limits", "सीमाएँ"},
	{"Format", "फ़ॉर्मेट"},
	{"Formats", "फ़ॉर्मेट्स"},
	{"Quality", "गुणवत्ता"},
	{"Duration", "अवधि"},
	{"Title", "शीर्षक"},
	{"Direct", "प्रत्यक्ष"},
	{"Link", "लिंक"},
	{"Links", "लिंक"},
	{"Download", "डाउनलोड"},
	{"Downloading", "डाउनलोड हो रहा है"},
	{"Processing", "प्रोसेस हो रहा है"},
	{"Completed", "पूर्ण"},
	{"Complete", "पूर्ण"},
	{"Please", "कृपया"},
	{"Wait", "प्रतीक्षा करें"},
	{"Try", "कोशिश करें"},
	{"again", "फिर से"},
	{"File", "फ़ाइल"},
	{"Files", "फ़ाइलें"},
	{"Size", "आकार"},
	{"Cache", "कैश"},
	{"Sent", "भेजा गया"},
	{"from", "से"},
	{"Checking", "जाँच"},
	{"Invalid", "अमान्य"},
	{"Valid", "मान्य"},
	{"Provide", "प्रदान करें"},
	{"URL", "URL"},
	{"Warning:", "चेतावनी:"},
	{"Example", "उदाहरण"},
	{"Examples", "उदाहरण"},
	{"Range", "सीमा"},
	{"Usage", "उपयोग"},
	{"Notes", "नोट्स"},
	{"Note", "नोट"},
	{"Tests", "परीक्षण"},
	{"Test", "परीक्षण"},
	{"Selected", "चयनित"},
	{"Set", "सेट"},
	{"Saved", "सहेजा गया"},
	{"Parameters", "पैरामीटर"},
	{"Parameter", "पैरामीटर"},
	{"Option", "विकल्प"},
	{"Options", "विकल्प"},
	{"Current value", "वर्तमान मान"},
	{"Quick commands", "त्वरित कमांड"},
	{"Search", "खोज"},
	{"History", "इतिहास"},
	{"Account", "खाता"},
	{"username", "उपयोगकर्ता नाम"},

	// Bot-specific terms
	{"Live", "लाइव"},
	{"Stream", "स्ट्रीम"},
	{"Detected", "पता चला"},
	{"Downloading of ongoing", "चल रहे का डाउनलोड"},
	{"infinite live streams", "अनंत लाइव स्ट्रीम"},
	{"is not allowed", "अनुमति नहीं है"},
	{"Please wait for the stream", "कृपया स्ट्रीम के समाप्त होने की प्रतीक्षा करें"},
	{"to end and try downloading", "समाप्त होने और डाउनलोड करने की कोशिश करें"},
	{"again when", "फिर से जब"},
	{"The stream duration", "स्ट्रीम की अवधि"},
	{"is known", "ज्ञात है"},
	{"The stream has finished", "स्ट्रीम समाप्त हो गई है"},
	{"Mobile", "मोबाइल"},
	{"Activate", "सक्रिय करें"},
	{"Inline search helper", "इनलाइन खोज सहायक"},
	{"set language with", "भाषा सेट करें"},
	{"AUTO/TRANS", "ऑटो/ट्रांस"},
	{"Current value", "वर्तमान मान"},
	{"Geo Bypass", "भौगोलिक बायपास"},
	{"Embed Meta", "एम्बेड मेटा"},
	{"Embed Thumb", "एम्बेड थंबनेल"},
	{"Write Thumb", "लिखें थंबनेल"},
	{"Concurrent", "समवर्ती"},
	{"Sleep Subs", "सबटाइटल प्रतीक्षा"},
	{"Legacy Connect", "पुराना कनेक्ट"},
	{"Ignore Errors", "त्रुटियों को नजरअंदाज करें"},
	{"Playlist Items", "प्लेलिस्ट आइटम"},
	{"Max Sleep", "अधिकतम प्रतीक्षा"},
	{"Join Channel", "चैनल में शामिल हों"},
	{"Verification Required", "सत्यापन आवश्यक"},
	{"Policy Violation", "नीति उल्लंघन"},
	{"Impersonate", "अनुकरण"},
	{"Referer", "रेफरर"},
	{"Username", "उपयोगकर्ता नाम"},
	{"Password", "पासवर्ड"},
	{"Clean", "साफ"},
	{"TikTok", "टिकटॉक"},
	{"Instagram", "इंस्टाग्राम"},
	{"playlist", "प्लेलिस्ट"},
	{"Smart grouping", "स्मार्ट समूहीकरण"},
	{"Filters updated", "फिल्टर अपडेट किए गए"},
	{"db created", "डेटाबेस बनाया गया"},
	{"Bot started", "बॉट शुरू किया गया"},

	// Common phrases
	{"Error occurred", "त्रुटि हुई"},
	{"Unknown error", "अज्ञात त्रुटि"},
	{"An error occurred", "एक त्रुटि हुई"},
	{"Please wait", "कृपया प्रतीक्षा करें"},
	{"Processing...", "प्रोसेस हो रहा है..."},
	{"Downloading media...", "मीडिया डाउनलोड हो रहा है..."},
	{"Download complete", "डाउनलोड पूर्ण"},
	{"Invalid URL", "अमान्य URL"},
	{"Not enough disk space", "डिस्क में पर्याप्त स्थान नहीं"},
	{"File size exceeds the limit", "फ़ाइल आकार सीमा से अधिक है"},
	{"Direct link obtained", "प्रत्यक्ष लिंक प्राप्त"},
	{"Getting direct link...", "प्रत्यक्ष लिंक प्राप्त किया जा रहा है..."},
	{"Getting available formats...", "उपलब्ध फ़ॉर्मेट्स प्राप्त किए जा रहे हैं..."},
	{"Invalid parameter", "अमान्य पैरामीटर"},
	{"Command executed", "कमांड निष्पादित"},
	{"Menu closed", "मेनू बंद"},
	{"Access denied", "पहुँच अस्वीकृत"},
	{"Please send a number", "कृपया एक संख्या भेजें"},
	{"Please provide a valid URL", "कृपया मान्य URL दें"},
	{"Please send valid JSON", "कृपया मान्य JSON भेजें"},
	{"Language set to", "भाषा सेट:"},
	{"Subtitles are disabled", "उपशीर्षक अक्षम हैं"},
	{"Provide a valid URL", "कृपया मान्य URL दें"},
}
