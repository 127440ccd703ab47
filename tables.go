package accessai

// This file holds the fixed reference tables. They are built once by New
// and treated as immutable afterwards.

func (s *Service) loadLanguages() {
	s.languages = []Language{
		{Code: "en", Name: "English", NativeName: "English", TTS: true, Translation: true, SignLanguage: true, SignVariants: []SignVariant{VariantASL, VariantBSL}},
		{Code: "hi", Name: "Hindi", NativeName: "हिंदी", TTS: true, Translation: true, SignLanguage: true, SignVariants: []SignVariant{VariantISL}},
		{Code: "es", Name: "Spanish", NativeName: "Español", TTS: true, Translation: true},
		{Code: "ta", Name: "Tamil", NativeName: "தமிழ்", TTS: true, Translation: true, SignLanguage: true, SignVariants: []SignVariant{VariantISL}},
		{Code: "te", Name: "Telugu", NativeName: "తెలుగు", TTS: true, Translation: true, SignLanguage: true, SignVariants: []SignVariant{VariantISL}},
		{Code: "kn", Name: "Kannada", NativeName: "ಕನ್ನಡ", TTS: true, Translation: true, SignLanguage: true, SignVariants: []SignVariant{VariantISL}},
		{Code: "zh", Name: "Chinese", NativeName: "中文", TTS: true, Translation: true},
		{Code: "ja", Name: "Japanese", NativeName: "日本語", TTS: true, Translation: true},
		{Code: "fr", Name: "French", NativeName: "Français", TTS: true, Translation: true},
		{Code: "de", Name: "German", NativeName: "Deutsch", TTS: true, Translation: true},
		{Code: "ar", Name: "Arabic", NativeName: "العربية", TTS: true, Translation: true},
		{Code: "pt", Name: "Portuguese", NativeName: "Português", TTS: true, Translation: true},
	}
}

func (s *Service) loadPOS() {
	s.posDict = map[string]PosTag{
		"hello":     PosInterjection,
		"hi":        PosInterjection,
		"how":       PosAdverb,
		"are":       PosVerb,
		"you":       PosPronoun,
		"doing":     PosVerb,
		"today":     PosNoun,
		"i":         PosPronoun,
		"need":      PosVerb,
		"emergency": PosAdjective,
		"medical":   PosAdjective,
		"help":      PosNoun,
		"the":       PosDeterminer,
		"a":         PosDeterminer,
		"an":        PosDeterminer,
		"is":        PosVerb,
		"am":        PosVerb,
		"was":       PosVerb,
		"were":      PosVerb,
		"have":      PosVerb,
		"has":       PosVerb,
		"good":      PosAdjective,
		"bad":       PosAdjective,
		"big":       PosAdjective,
		"small":     PosAdjective,
		"and":       PosConjunction,
		"but":       PosConjunction,
		"or":        PosConjunction,
		"in":        PosPreposition,
		"on":        PosPreposition,
		"at":        PosPreposition,
		"to":        PosPreposition,
		"from":      PosPreposition,
	}
	s.posColors = map[PosTag]string{
		PosNoun:         "#0066cc",
		PosVerb:         "#cc0000",
		PosAdjective:    "#009933",
		PosAdverb:       "#ff9900",
		PosPronoun:      "#9933cc",
		PosPreposition:  "#cc6600",
		PosConjunction:  "#666666",
		PosInterjection: "#cc00cc",
		PosDeterminer:   "#006666",
	}
}

func (s *Service) loadSyllableRules() {
	// Rule order is load-bearing: later rules see the output of earlier ones.
	rules := []struct{ word, hyphenated string }{
		{"hello", "hel-lo"},
		{"how", "how"},
		{"doing", "do-ing"},
		{"today", "to-day"},
		{"emergency", "e-mer-gen-cy"},
		{"medical", "med-i-cal"},
		{"photosynthesis", "pho-to-syn-the-sis"},
		{"process", "pro-cess"},
		{"convert", "con-vert"},
		{"energy", "en-er-gy"},
	}
	s.syllableRules = make([]syllableRule, 0, len(rules))
	for _, r := range rules {
		s.syllableRules = append(s.syllableRules, newSyllableRule(r.word, r.hyphenated))
	}
}

func (s *Service) loadTranslations() {
	s.translations = map[string]map[string]string{
		"Hello, how are you doing today?": {
			"hi": "नमस्ते, आप आज कैसे हैं?",
			"es": "Hola, ¿cómo estás hoy?",
			"ta": "வணக்கம், இன்று எப்படி இருக்கிறீர்கள்?",
			"te": "హలో, ఈరోజు మీరు ఎలా ఉన్నారు?",
			"kn": "ಹಲೋ, ನೀವು ಇಂದು ಹೇಗಿದ್ದೀರಿ?",
			"zh": "你好，你今天怎么样？",
			"ja": "こんにちは、今日はどうですか？",
			"fr": "Bonjour, comment allez-vous aujourd'hui?",
			"de": "Hallo, wie geht es dir heute?",
			"ar": "مرحبا، كيف حالك اليوم؟",
			"pt": "Olá, como você está hoje?",
		},
		"I need emergency medical help": {
			"hi": "मुझे आपातकालीन चिकित्सा सहायता चाहिए",
			"es": "Necesito ayuda médica de emergencia",
			"ta": "எனக்கு அவசர மருத்துவ உதவி தேவை",
			"te": "నాకు అత్యవసర వైద్య సహాయం అవసరం",
			"kn": "ನನಗೆ ತುರ್ತು ವೈದ್ಯಕೀಯ ಸಹಾಯ ಬೇಕು",
			"zh": "我需要紧急医疗帮助",
			"ja": "緊急医療支援が必要です",
			"fr": "J'ai besoin d'une aide médicale d'urgence",
			"de": "Ich brauche dringend medizinische Hilfe",
			"ar": "أحتاج إلى مساعدة طبية طارئة",
			"pt": "Preciso de ajuda médica de emergência",
		},
	}
}

func (s *Service) loadSignDBs() {
	isl := newSignTable()
	// Greetings
	isl.add("hello", SignVideo{URL: CDNBaseURL + "/isl/hello.mp4", DurationSec: 2.5, Category: "greetings", Difficulty: "easy"})
	isl.add("hi", SignVideo{URL: CDNBaseURL + "/isl/hi.mp4", DurationSec: 1.8, Category: "greetings", Difficulty: "easy"})
	isl.add("goodbye", SignVideo{URL: CDNBaseURL + "/isl/goodbye.mp4", DurationSec: 2.2, Category: "greetings", Difficulty: "easy"})
	isl.add("thanks", SignVideo{URL: CDNBaseURL + "/isl/thanks.mp4", DurationSec: 1.5, Category: "greetings", Difficulty: "easy"})
	isl.add("welcome", SignVideo{URL: CDNBaseURL + "/isl/welcome.mp4", DurationSec: 2.0, Category: "greetings", Difficulty: "easy"})
	// Questions
	isl.add("how", SignVideo{URL: CDNBaseURL + "/isl/how.mp4", DurationSec: 1.8, Category: "social", Difficulty: "easy"})
	isl.add("what", SignVideo{URL: CDNBaseURL + "/isl/what.mp4", DurationSec: 1.6, Category: "social", Difficulty: "easy"})
	isl.add("when", SignVideo{URL: CDNBaseURL + "/isl/when.mp4", DurationSec: 1.7, Category: "social", Difficulty: "easy"})
	isl.add("where", SignVideo{URL: CDNBaseURL + "/isl/where.mp4", DurationSec: 1.9, Category: "social", Difficulty: "easy"})
	isl.add("why", SignVideo{URL: CDNBaseURL + "/isl/why.mp4", DurationSec: 1.8, Category: "social", Difficulty: "easy"})
	isl.add("who", SignVideo{URL: CDNBaseURL + "/isl/who.mp4", DurationSec: 1.5, Category: "social", Difficulty: "easy"})
	// Pronouns
	isl.add("i", SignVideo{URL: CDNBaseURL + "/isl/i.mp4", DurationSec: 1.2, Category: "social", Difficulty: "easy"})
	isl.add("you", SignVideo{URL: CDNBaseURL + "/isl/you.mp4", DurationSec: 1.3, Category: "social", Difficulty: "easy"})
	isl.add("we", SignVideo{URL: CDNBaseURL + "/isl/we.mp4", DurationSec: 1.4, Category: "social", Difficulty: "easy"})
	isl.add("they", SignVideo{URL: CDNBaseURL + "/isl/they.mp4", DurationSec: 1.5, Category: "social", Difficulty: "easy"})
	// Common verbs
	isl.add("am", SignVideo{URL: CDNBaseURL + "/isl/am.mp4", DurationSec: 1.3, Category: "social", Difficulty: "easy"})
	isl.add("are", SignVideo{URL: CDNBaseURL + "/isl/are.mp4", DurationSec: 1.3, Category: "social", Difficulty: "easy"})
	isl.add("is", SignVideo{URL: CDNBaseURL + "/isl/is.mp4", DurationSec: 1.2, Category: "social", Difficulty: "easy"})
	isl.add("have", SignVideo{URL: CDNBaseURL + "/isl/have.mp4", DurationSec: 1.4, Category: "social", Difficulty: "easy"})
	isl.add("need", SignVideo{URL: CDNBaseURL + "/isl/need.mp4", DurationSec: 1.6, Category: "social", Difficulty: "easy"})
	isl.add("want", SignVideo{URL: CDNBaseURL + "/isl/want.mp4", DurationSec: 1.5, Category: "social", Difficulty: "easy"})
	isl.add("go", SignVideo{URL: CDNBaseURL + "/isl/go.mp4", DurationSec: 1.4, Category: "social", Difficulty: "easy"})
	isl.add("come", SignVideo{URL: CDNBaseURL + "/isl/come.mp4", DurationSec: 1.5, Category: "social", Difficulty: "easy"})
	isl.add("help", SignVideo{URL: CDNBaseURL + "/isl/help.mp4", DurationSec: 1.7, Category: "emergency", Difficulty: "easy"})
	isl.add("know", SignVideo{URL: CDNBaseURL + "/isl/know.mp4", DurationSec: 1.6, Category: "social", Difficulty: "easy"})
	isl.add("understand", SignVideo{URL: CDNBaseURL + "/isl/understand.mp4", DurationSec: 2.3, Category: "social", Difficulty: "medium"})
	// Emergency and medical
	isl.add("emergency", SignVideo{URL: CDNBaseURL + "/isl/emergency.mp4", DurationSec: 2.5, Category: "emergency", Difficulty: "medium"})
	isl.add("doctor", SignVideo{URL: CDNBaseURL + "/isl/doctor.mp4", DurationSec: 2.0, Category: "medical", Difficulty: "easy"})
	isl.add("hospital", SignVideo{URL: CDNBaseURL + "/isl/hospital.mp4", DurationSec: 2.4, Category: "medical", Difficulty: "medium"})
	isl.add("medicine", SignVideo{URL: CDNBaseURL + "/isl/medicine.mp4", DurationSec: 2.3, Category: "medical", Difficulty: "medium"})
	isl.add("pain", SignVideo{URL: CDNBaseURL + "/isl/pain.mp4", DurationSec: 1.8, Category: "medical", Difficulty: "easy"})
	isl.add("sick", SignVideo{URL: CDNBaseURL + "/isl/sick.mp4", DurationSec: 1.9, Category: "medical", Difficulty: "easy"})
	// Time
	isl.add("today", SignVideo{URL: CDNBaseURL + "/isl/today.mp4", DurationSec: 1.8, Category: "social", Difficulty: "easy"})
	isl.add("tomorrow", SignVideo{URL: CDNBaseURL + "/isl/tomorrow.mp4", DurationSec: 2.2, Category: "social", Difficulty: "easy"})
	isl.add("yesterday", SignVideo{URL: CDNBaseURL + "/isl/yesterday.mp4", DurationSec: 2.3, Category: "social", Difficulty: "medium"})
	isl.add("now", SignVideo{URL: CDNBaseURL + "/isl/now.mp4", DurationSec: 1.5, Category: "social", Difficulty: "easy"})
	isl.add("later", SignVideo{URL: CDNBaseURL + "/isl/later.mp4", DurationSec: 1.7, Category: "social", Difficulty: "easy"})
	// Common adjectives
	isl.add("good", SignVideo{URL: CDNBaseURL + "/isl/good.mp4", DurationSec: 1.6, Category: "social", Difficulty: "easy"})
	isl.add("bad", SignVideo{URL: CDNBaseURL + "/isl/bad.mp4", DurationSec: 1.5, Category: "social", Difficulty: "easy"})
	isl.add("happy", SignVideo{URL: CDNBaseURL + "/isl/happy.mp4", DurationSec: 1.8, Category: "social", Difficulty: "easy"})
	isl.add("sad", SignVideo{URL: CDNBaseURL + "/isl/sad.mp4", DurationSec: 1.7, Category: "social", Difficulty: "easy"})
	isl.add("big", SignVideo{URL: CDNBaseURL + "/isl/big.mp4", DurationSec: 1.5, Category: "social", Difficulty: "easy"})
	isl.add("small", SignVideo{URL: CDNBaseURL + "/isl/small.mp4", DurationSec: 1.6, Category: "social", Difficulty: "easy"})
	// Doing
	isl.add("doing", SignVideo{URL: CDNBaseURL + "/isl/doing.mp4", DurationSec: 1.9, Category: "social", Difficulty: "easy"})
	// Numbers
	isl.add("one", SignVideo{URL: CDNBaseURL + "/isl/one.mp4", DurationSec: 1.3, Category: "education", Difficulty: "easy"})
	isl.add("two", SignVideo{URL: CDNBaseURL + "/isl/two.mp4", DurationSec: 1.3, Category: "education", Difficulty: "easy"})
	isl.add("three", SignVideo{URL: CDNBaseURL + "/isl/three.mp4", DurationSec: 1.4, Category: "education", Difficulty: "easy"})
	isl.setDefault(SignVideo{URL: CDNBaseURL + "/isl/fingerspell.mp4", DurationSec: 3.0, Category: "social", Difficulty: "medium"})

	asl := newSignTable()
	asl.add("hello", SignVideo{URL: CDNBaseURL + "/asl/hello.mp4", DurationSec: 2.3, Category: "greetings", Difficulty: "easy"})
	asl.add("how", SignVideo{URL: CDNBaseURL + "/asl/how.mp4", DurationSec: 1.7, Category: "social", Difficulty: "easy"})
	asl.add("are", SignVideo{URL: CDNBaseURL + "/asl/are.mp4", DurationSec: 1.2, Category: "social", Difficulty: "easy"})
	asl.add("you", SignVideo{URL: CDNBaseURL + "/asl/you.mp4", DurationSec: 1.2, Category: "social", Difficulty: "easy"})
	asl.setDefault(SignVideo{URL: CDNBaseURL + "/asl/fingerspell.mp4", DurationSec: 3.0, Category: "social", Difficulty: "medium"})

	bsl := newSignTable()
	bsl.add("hello", SignVideo{URL: CDNBaseURL + "/bsl/hello.mp4", DurationSec: 2.4, Category: "greetings", Difficulty: "easy"})
	bsl.add("how", SignVideo{URL: CDNBaseURL + "/bsl/how.mp4", DurationSec: 1.8, Category: "social", Difficulty: "easy"})
	bsl.add("are", SignVideo{URL: CDNBaseURL + "/bsl/are.mp4", DurationSec: 1.3, Category: "social", Difficulty: "easy"})
	bsl.add("you", SignVideo{URL: CDNBaseURL + "/bsl/you.mp4", DurationSec: 1.3, Category: "social", Difficulty: "easy"})
	bsl.setDefault(SignVideo{URL: CDNBaseURL + "/bsl/fingerspell.mp4", DurationSec: 3.0, Category: "social", Difficulty: "medium"})

	s.signDBs[VariantISL] = isl
	s.signDBs[VariantASL] = asl
	s.signDBs[VariantBSL] = bsl
}

func (s *Service) loadSamples() {
	s.samples = SampleQueries{
		DeafQueries: []SampleQuery{
			{ID: 1, Text: "Hello, how are you doing today?", Category: "social", Difficulty: "easy", ExpectedOutput: "Simple greeting with clear sign language videos"},
			{ID: 2, Text: "I need emergency medical help", Category: "emergency", Difficulty: "medium", ExpectedOutput: "Urgent medical request with clear communication"},
			{ID: 3, Text: "Where is the nearest hospital?", Category: "medical", Difficulty: "medium", ExpectedOutput: "Location query with directional signs"},
			{ID: 4, Text: "Can you help me understand this?", Category: "social", Difficulty: "medium", ExpectedOutput: "Request for assistance with comprehension support"},
			{ID: 5, Text: "Thank you for your help", Category: "social", Difficulty: "easy", ExpectedOutput: "Gratitude expression with appropriate signs"},
			{ID: 6, Text: "I am looking for a job opportunity", Category: "professional", Difficulty: "hard", ExpectedOutput: "Professional inquiry with career-related signs"},
			{ID: 7, Text: "What time does the store open?", Category: "daily", Difficulty: "medium", ExpectedOutput: "Time-related query with appropriate signs"},
			{ID: 8, Text: "Good morning, have a nice day", Category: "social", Difficulty: "easy", ExpectedOutput: "Morning greeting with positive sentiment"},
			{ID: 9, Text: "I need to make a doctor appointment", Category: "medical", Difficulty: "medium", ExpectedOutput: "Medical scheduling request"},
			{ID: 10, Text: "Can I get directions to the library?", Category: "daily", Difficulty: "medium", ExpectedOutput: "Navigation request with directional support"},
		},
		SpeechImpairedQueries: []SampleQuery{
			{ID: 11, Text: "I need to speak with customer service", Category: "professional", Difficulty: "medium", ExpectedOutput: "Service request with text-to-speech output"},
			{ID: 12, Text: "Can you repeat that please?", Category: "social", Difficulty: "easy", ExpectedOutput: "Clarification request with audio support"},
			{ID: 13, Text: "I would like to order food", Category: "daily", Difficulty: "easy", ExpectedOutput: "Food ordering with clear audio output"},
			{ID: 14, Text: "Please call emergency services", Category: "emergency", Difficulty: "hard", ExpectedOutput: "Emergency communication with immediate audio"},
			{ID: 15, Text: "What is the weather forecast today?", Category: "daily", Difficulty: "easy", ExpectedOutput: "Information query with audio response"},
			{ID: 16, Text: "I have a question about my bill", Category: "professional", Difficulty: "medium", ExpectedOutput: "Financial inquiry with professional tone"},
			{ID: 17, Text: "Can you help me find this product?", Category: "daily", Difficulty: "easy", ExpectedOutput: "Shopping assistance with audio support"},
			{ID: 18, Text: "I need technical support for my device", Category: "professional", Difficulty: "hard", ExpectedOutput: "Technical support request"},
			{ID: 19, Text: "Where can I find the restroom?", Category: "daily", Difficulty: "easy", ExpectedOutput: "Simple location query"},
			{ID: 20, Text: "I would like to schedule a meeting", Category: "professional", Difficulty: "medium", ExpectedOutput: "Professional scheduling request"},
		},
		DyslexiaQueries: []SampleQuery{
			{ID: 21, Text: "Photosynthesis is the process by which plants convert light energy", Category: "education", Difficulty: "hard", ExpectedOutput: "Scientific text with syllabification and color coding"},
			{ID: 22, Text: "The quick brown fox jumps over the lazy dog", Category: "education", Difficulty: "easy", ExpectedOutput: "Simple sentence with dyslexia-friendly formatting"},
			{ID: 23, Text: "Climate change affects ecosystems worldwide", Category: "education", Difficulty: "medium", ExpectedOutput: "Educational content with enhanced readability"},
			{ID: 24, Text: "Mathematics requires logical thinking and problem solving", Category: "education", Difficulty: "hard", ExpectedOutput: "Academic text with comprehension support"},
			{ID: 25, Text: "Reading books improves vocabulary and imagination", Category: "education", Difficulty: "medium", ExpectedOutput: "Reading encouragement with accessible formatting"},
			{ID: 26, Text: "Technology connects people across the globe", Category: "education", Difficulty: "medium", ExpectedOutput: "Modern topic with clear presentation"},
			{ID: 27, Text: "Healthy eating habits contribute to overall wellness", Category: "education", Difficulty: "medium", ExpectedOutput: "Health information with readable format"},
			{ID: 28, Text: "Communication skills are essential for success", Category: "professional", Difficulty: "medium", ExpectedOutput: "Professional development text"},
			{ID: 29, Text: "Democracy empowers citizens to participate in governance", Category: "education", Difficulty: "hard", ExpectedOutput: "Civic education with enhanced readability"},
			{ID: 30, Text: "Exercise improves physical and mental health", Category: "education", Difficulty: "easy", ExpectedOutput: "Health advice with clear formatting"},
		},
	}
}
