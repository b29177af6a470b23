package i18n

const (
	MsgDidntUnderstand          = "didnt_understand"
	MsgPleaseRepeat             = "please_repeat"
	MsgUnknownIntent            = "unknown_intent"
	MsgHelp                     = "help"
	MsgProductAskName           = "product_ask_name"
	MsgProductAskCategory       = "product_ask_category"
	MsgProductAskPrice          = "product_ask_price"
	MsgProductCreated           = "product_created"
	MsgProductCreationCancelled = "product_creation_cancelled"
	MsgProductListEmpty         = "product_list_empty"
	MsgProductListSummary       = "product_list_summary"
	MsgAnalyticsSummary         = "analytics_summary"
	MsgPricingQuote             = "pricing_quote"
	MsgPricingCategoryQuote     = "pricing_category_quote"
	MsgPricingNotFound          = "pricing_not_found"
	MsgOrdersEmpty              = "orders_empty"
	MsgOrdersSummary            = "orders_summary"
	MsgActionFailed             = "action_failed"
	MsgSessionUnavailable       = "session_unavailable"
)

func messageTemplates() map[string]map[string]string {
	return map[string]map[string]string{
		"en-IN": {
			MsgDidntUnderstand:          "Sorry, I didn't understand you. Please try again.",
			MsgPleaseRepeat:             "Sorry, something changed while I was working on that. Please repeat your last request.",
			MsgUnknownIntent:            "I didn't understand that. You can add a product, hear your products, sales, prices or orders. Please try again.",
			MsgHelp:                     "I can help you add a new product, list your products, report your sales, quote a price or check your orders. What would you like to do?",
			MsgProductAskName:           "Sure, let's add a new product. What is the product called?",
			MsgProductAskCategory:       "Got it, {name}. Which category does it belong to? For example pottery, textiles, jewelry or woodwork.",
			MsgProductAskPrice:          "What price do you want for {name}, in rupees?",
			MsgProductCreated:           "Done! {name} has been added under {category} at {price} rupees.",
			MsgProductCreationCancelled: "Okay, I have cancelled adding the product.",
			MsgProductListEmpty:         "You don't have any active products yet. Say 'add a product' to create one.",
			MsgProductListSummary:       "You have {count} recent products: {products}.",
			MsgAnalyticsSummary:         "Your total revenue is {revenue} rupees from {orders} orders. Your products have {views} views and {sales} sales.",
			MsgPricingQuote:             "{name} is priced at {price} rupees.",
			MsgPricingCategoryQuote:     "Your {count} products in {category} average {price} rupees.",
			MsgPricingNotFound:          "I couldn't find a price for that. Please tell me the product name.",
			MsgOrdersEmpty:              "You have no orders yet.",
			MsgOrdersSummary:            "You have {count} recent orders, {pending} of them are pending.",
			MsgActionFailed:             "Sorry, I couldn't complete that right now. Please try again.",
			MsgSessionUnavailable:       "Sorry, I'm having trouble right now. Please try again in a moment.",
		},
		"en-US": {
			MsgDidntUnderstand: "Sorry, I didn't catch that. Please try again.",
			MsgPleaseRepeat:    "Sorry, something changed while I was working on that. Please say it again.",
		},
		"hi-IN": {
			MsgDidntUnderstand:          "माफ़ कीजिए, मैं आपकी बात समझ नहीं पाया। कृपया फिर से कोशिश करें।",
			MsgPleaseRepeat:             "माफ़ कीजिए, बीच में कुछ बदल गया। कृपया अपनी बात दोबारा कहें।",
			MsgUnknownIntent:            "मैं यह समझ नहीं पाया। आप नया उत्पाद जोड़ सकते हैं, अपने उत्पाद, बिक्री, कीमत या ऑर्डर सुन सकते हैं। कृपया फिर से कोशिश करें।",
			MsgHelp:                     "मैं नया उत्पाद जोड़ने, आपके उत्पादों की सूची बताने, बिक्री की जानकारी देने, कीमत बताने या ऑर्डर देखने में मदद कर सकता हूँ। आप क्या करना चाहेंगे?",
			MsgProductAskName:           "ठीक है, नया उत्पाद जोड़ते हैं। उत्पाद का नाम क्या है?",
			MsgProductAskCategory:       "ठीक है, {name}। यह किस श्रेणी में आता है? जैसे मिट्टी के बर्तन, कपड़ा, गहने या लकड़ी का काम।",
			MsgProductAskPrice:          "{name} की कीमत कितने रुपये रखनी है?",
			MsgProductCreated:           "हो गया! {name} को {category} श्रेणी में {price} रुपये में जोड़ दिया गया है।",
			MsgProductCreationCancelled: "ठीक है, उत्पाद जोड़ना रद्द कर दिया गया है।",
			MsgProductListEmpty:         "आपके पास अभी कोई सक्रिय उत्पाद नहीं है। नया उत्पाद जोड़ने के लिए 'उत्पाद जोड़ो' कहें।",
			MsgProductListSummary:       "आपके {count} हाल के उत्पाद हैं: {products}।",
			MsgAnalyticsSummary:         "आपकी कुल कमाई {orders} ऑर्डर से {revenue} रुपये है। आपके उत्पादों को {views} बार देखा गया और {sales} बिक्री हुई।",
			MsgPricingQuote:             "{name} की कीमत {price} रुपये है।",
			MsgPricingCategoryQuote:     "{category} में आपके {count} उत्पादों की औसत कीमत {price} रुपये है।",
			MsgPricingNotFound:          "मुझे इसकी कीमत नहीं मिली। कृपया उत्पाद का नाम बताइए।",
			MsgOrdersEmpty:              "आपके पास अभी कोई ऑर्डर नहीं है।",
			MsgOrdersSummary:            "आपके {count} हाल के ऑर्डर हैं, जिनमें से {pending} बाकी हैं।",
			MsgActionFailed:             "माफ़ कीजिए, अभी यह काम पूरा नहीं हो पाया। कृपया फिर से कोशिश करें।",
			MsgSessionUnavailable:       "माफ़ कीजिए, अभी कुछ दिक्कत है। कृपया थोड़ी देर बाद कोशिश करें।",
		},
		"bn-IN": {
			MsgDidntUnderstand:    "দুঃখিত, আমি আপনার কথা বুঝতে পারিনি। আবার চেষ্টা করুন।",
			MsgPleaseRepeat:       "দুঃখিত, মাঝখানে কিছু বদলে গেছে। অনুগ্রহ করে আবার বলুন।",
			MsgUnknownIntent:      "আমি এটা বুঝতে পারিনি। অনুগ্রহ করে আবার চেষ্টা করুন।",
			MsgHelp:               "আমি নতুন পণ্য যোগ করা, পণ্যের তালিকা, বিক্রি, দাম বা অর্ডার জানাতে সাহায্য করতে পারি।",
			MsgProductAskName:     "ঠিক আছে, নতুন পণ্য যোগ করি। পণ্যটির নাম কী?",
			MsgProductAskCategory: "{name} কোন বিভাগের? যেমন মৃৎশিল্প, বস্ত্র, গয়না বা কাঠের কাজ।",
			MsgProductAskPrice:    "{name}-এর দাম কত টাকা রাখবেন?",
			MsgProductCreated:     "হয়ে গেছে! {name} {category} বিভাগে {price} টাকায় যোগ করা হয়েছে।",
			MsgActionFailed:       "দুঃখিত, এখন কাজটি করা গেল না। আবার চেষ্টা করুন।",
		},
		"te-IN": {
			MsgDidntUnderstand:    "క్షమించండి, మీరు చెప్పింది నాకు అర్థం కాలేదు. దయచేసి మళ్ళీ ప్రయత్నించండి.",
			MsgPleaseRepeat:       "క్షమించండి, దయచేసి మళ్ళీ చెప్పండి.",
			MsgUnknownIntent:      "నాకు అది అర్థం కాలేదు. దయచేసి మళ్ళీ ప్రయత్నించండి.",
			MsgHelp:               "కొత్త ఉత్పత్తిని జోడించడం, మీ ఉత్పత్తులు, అమ్మకాలు, ధరలు లేదా ఆర్డర్లు చెప్పడంలో నేను సహాయం చేస్తాను.",
			MsgProductAskName:     "సరే, కొత్త ఉత్పత్తిని జోడిద్దాం. దాని పేరు ఏమిటి?",
			MsgProductAskCategory: "{name} ఏ వర్గానికి చెందుతుంది?",
			MsgProductAskPrice:    "{name} ధర ఎన్ని రూపాయలు?",
			MsgProductCreated:     "పూర్తయింది! {name} ను {category} లో {price} రూపాయలకు జోడించాను.",
			MsgActionFailed:       "క్షమించండి, ఇప్పుడు అది పూర్తి చేయలేకపోయాను. మళ్ళీ ప్రయత్నించండి.",
		},
		"mr-IN": {
			MsgDidntUnderstand:    "माफ करा, मला तुमचे बोलणे समजले नाही. कृपया पुन्हा प्रयत्न करा.",
			MsgPleaseRepeat:       "माफ करा, कृपया पुन्हा सांगा.",
			MsgUnknownIntent:      "मला ते समजले नाही. कृपया पुन्हा प्रयत्न करा.",
			MsgHelp:               "मी नवीन उत्पादन जोडणे, तुमची उत्पादने, विक्री, किंमत किंवा ऑर्डर सांगण्यात मदत करू शकतो.",
			MsgProductAskName:     "ठीक आहे, नवीन उत्पादन जोडूया. उत्पादनाचे नाव काय आहे?",
			MsgProductAskCategory: "{name} कोणत्या प्रकारात येते?",
			MsgProductAskPrice:    "{name} ची किंमत किती रुपये ठेवायची?",
			MsgProductCreated:     "झाले! {name} {category} प्रकारात {price} रुपयांना जोडले आहे.",
			MsgActionFailed:       "माफ करा, आत्ता हे पूर्ण करता आले नाही. कृपया पुन्हा प्रयत्न करा.",
		},
		"ta-IN": {
			MsgDidntUnderstand:    "மன்னிக்கவும், நீங்கள் சொன்னது எனக்குப் புரியவில்லை. மீண்டும் முயற்சிக்கவும்.",
			MsgPleaseRepeat:       "மன்னிக்கவும், தயவுசெய்து மீண்டும் சொல்லுங்கள்.",
			MsgUnknownIntent:      "எனக்கு அது புரியவில்லை. மீண்டும் முயற்சிக்கவும்.",
			MsgHelp:               "புதிய பொருளைச் சேர்க்க, உங்கள் பொருட்கள், விற்பனை, விலை அல்லது ஆர்டர்களைச் சொல்ல நான் உதவுவேன்.",
			MsgProductAskName:     "சரி, புதிய பொருளைச் சேர்ப்போம். அதன் பெயர் என்ன?",
			MsgProductAskCategory: "{name} எந்த வகையைச் சேர்ந்தது?",
			MsgProductAskPrice:    "{name} விலை எத்தனை ரூபாய்?",
			MsgProductCreated:     "முடிந்தது! {name} {category} வகையில் {price} ரூபாய்க்குச் சேர்க்கப்பட்டது.",
			MsgActionFailed:       "மன்னிக்கவும், இப்போது அதைச் செய்ய முடியவில்லை. மீண்டும் முயற்சிக்கவும்.",
		},
		"gu-IN": {
			MsgDidntUnderstand:    "માફ કરશો, હું તમારી વાત સમજી શક્યો નહીં. કૃપા કરીને ફરી પ્રયાસ કરો.",
			MsgPleaseRepeat:       "માફ કરશો, કૃપા કરીને ફરીથી કહો.",
			MsgUnknownIntent:      "હું તે સમજી શક્યો નહીં. કૃપા કરીને ફરી પ્રયાસ કરો.",
			MsgHelp:               "હું નવું ઉત્પાદન ઉમેરવામાં, તમારા ઉત્પાદનો, વેચાણ, કિંમત કે ઓર્ડર જણાવવામાં મદદ કરી શકું છું.",
			MsgProductAskName:     "ઠીક છે, નવું ઉત્પાદન ઉમેરીએ. ઉત્પાદનનું નામ શું છે?",
			MsgProductAskCategory: "{name} કઈ શ્રેણીમાં આવે છે?",
			MsgProductAskPrice:    "{name} ની કિંમત કેટલા રૂપિયા રાખવી છે?",
			MsgProductCreated:     "થઈ ગયું! {name} ને {category} શ્રેણીમાં {price} રૂપિયામાં ઉમેર્યું છે.",
			MsgActionFailed:       "માફ કરશો, અત્યારે તે પૂર્ણ થઈ શક્યું નહીં. ફરી પ્રયાસ કરો.",
		},
		"kn-IN": {
			MsgDidntUnderstand:    "ಕ್ಷಮಿಸಿ, ನೀವು ಹೇಳಿದ್ದು ನನಗೆ ಅರ್ಥವಾಗಲಿಲ್ಲ. ದಯವಿಟ್ಟು ಮತ್ತೆ ಪ್ರಯತ್ನಿಸಿ.",
			MsgPleaseRepeat:       "ಕ್ಷಮಿಸಿ, ದಯವಿಟ್ಟು ಮತ್ತೆ ಹೇಳಿ.",
			MsgUnknownIntent:      "ನನಗೆ ಅದು ಅರ್ಥವಾಗಲಿಲ್ಲ. ದಯವಿಟ್ಟು ಮತ್ತೆ ಪ್ರಯತ್ನಿಸಿ.",
			MsgHelp:               "ಹೊಸ ಉತ್ಪನ್ನ ಸೇರಿಸಲು, ನಿಮ್ಮ ಉತ್ಪನ್ನಗಳು, ಮಾರಾಟ, ಬೆಲೆ ಅಥವಾ ಆರ್ಡರ್‌ಗಳನ್ನು ತಿಳಿಸಲು ನಾನು ಸಹಾಯ ಮಾಡುತ್ತೇನೆ.",
			MsgProductAskName:     "ಸರಿ, ಹೊಸ ಉತ್ಪನ್ನ ಸೇರಿಸೋಣ. ಅದರ ಹೆಸರು ಏನು?",
			MsgProductAskCategory: "{name} ಯಾವ ವರ್ಗಕ್ಕೆ ಸೇರುತ್ತದೆ?",
			MsgProductAskPrice:    "{name} ಬೆಲೆ ಎಷ್ಟು ರೂಪಾಯಿ?",
			MsgProductCreated:     "ಆಯಿತು! {name} ಅನ್ನು {category} ವರ್ಗದಲ್ಲಿ {price} ರೂಪಾಯಿಗೆ ಸೇರಿಸಲಾಗಿದೆ.",
			MsgActionFailed:       "ಕ್ಷಮಿಸಿ, ಈಗ ಅದನ್ನು ಪೂರ್ಣಗೊಳಿಸಲಾಗಲಿಲ್ಲ. ಮತ್ತೆ ಪ್ರಯತ್ನಿಸಿ.",
		},
		"ml-IN": {
			MsgDidntUnderstand:    "ക്ഷമിക്കണം, നിങ്ങൾ പറഞ്ഞത് എനിക്ക് മനസ്സിലായില്ല. ദയവായി വീണ്ടും ശ്രമിക്കുക.",
			MsgPleaseRepeat:       "ക്ഷമിക്കണം, ദയവായി വീണ്ടും പറയുക.",
			MsgUnknownIntent:      "എനിക്ക് അത് മനസ്സിലായില്ല. ദയവായി വീണ്ടും ശ്രമിക്കുക.",
			MsgProductAskName:     "ശരി, പുതിയ ഉൽപ്പന്നം ചേർക്കാം. അതിന്റെ പേര് എന്താണ്?",
			MsgProductAskCategory: "{name} ഏത് വിഭാഗത്തിൽ പെടുന്നു?",
			MsgProductAskPrice:    "{name} ന്റെ വില എത്ര രൂപ?",
			MsgActionFailed:       "ക്ഷമിക്കണം, ഇപ്പോൾ അത് പൂർത്തിയാക്കാനായില്ല. വീണ്ടും ശ്രമിക്കുക.",
		},
		"pa-IN": {
			MsgDidntUnderstand:    "ਮਾਫ਼ ਕਰਨਾ, ਮੈਂ ਤੁਹਾਡੀ ਗੱਲ ਨਹੀਂ ਸਮਝ ਸਕਿਆ। ਕਿਰਪਾ ਕਰਕੇ ਦੁਬਾਰਾ ਕੋਸ਼ਿਸ਼ ਕਰੋ।",
			MsgPleaseRepeat:       "ਮਾਫ਼ ਕਰਨਾ, ਕਿਰਪਾ ਕਰਕੇ ਦੁਬਾਰਾ ਦੱਸੋ।",
			MsgUnknownIntent:      "ਮੈਨੂੰ ਇਹ ਸਮਝ ਨਹੀਂ ਆਇਆ। ਕਿਰਪਾ ਕਰਕੇ ਦੁਬਾਰਾ ਕੋਸ਼ਿਸ਼ ਕਰੋ।",
			MsgProductAskName:     "ਠੀਕ ਹੈ, ਨਵਾਂ ਉਤਪਾਦ ਜੋੜੀਏ। ਉਤਪਾਦ ਦਾ ਨਾਮ ਕੀ ਹੈ?",
			MsgProductAskCategory: "{name} ਕਿਸ ਸ਼੍ਰੇਣੀ ਵਿੱਚ ਆਉਂਦਾ ਹੈ?",
			MsgProductAskPrice:    "{name} ਦੀ ਕੀਮਤ ਕਿੰਨੇ ਰੁਪਏ ਹੈ?",
			MsgActionFailed:       "ਮਾਫ਼ ਕਰਨਾ, ਹੁਣ ਇਹ ਪੂਰਾ ਨਹੀਂ ਹੋ ਸਕਿਆ। ਦੁਬਾਰਾ ਕੋਸ਼ਿਸ਼ ਕਰੋ।",
		},
		"ur-IN": {
			MsgDidntUnderstand: "معاف کیجیے، میں آپ کی بات نہیں سمجھ سکا۔ براہ کرم دوبارہ کوشش کریں۔",
			MsgPleaseRepeat:    "معاف کیجیے، براہ کرم دوبارہ کہیں۔",
			MsgProductAskName:  "ٹھیک ہے، نیا پروڈکٹ شامل کرتے ہیں۔ اس کا نام کیا ہے؟",
		},
		"or-IN": {
			MsgDidntUnderstand: "କ୍ଷମା କରନ୍ତୁ, ମୁଁ ଆପଣଙ୍କ କଥା ବୁଝିପାରିଲି ନାହିଁ। ଦୟାକରି ପୁଣି ଚେଷ୍ଟା କରନ୍ତୁ।",
		},
		"as-IN": {
			MsgDidntUnderstand: "দুঃখিত, মই আপোনাৰ কথা বুজি নাপালোঁ। অনুগ্ৰহ কৰি পুনৰ চেষ্টা কৰক।",
		},
		"ne-NP": {
			MsgDidntUnderstand: "माफ गर्नुहोस्, मैले तपाईंको कुरा बुझिनँ। कृपया फेरि प्रयास गर्नुहोस्।",
			MsgPleaseRepeat:    "माफ गर्नुहोस्, कृपया फेरि भन्नुहोस्।",
		},
	}
}
