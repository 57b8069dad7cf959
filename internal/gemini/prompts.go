package gemini

import "github.com/adityawrm/mindbloom-backend/internal/models"

// languageContent bundles every prompt template and fallback string for one
// display language.
type languageContent struct {
	// analysisPrompt takes the journal entry text.
	analysisPrompt string
	// insightsPrompt takes entry count, average score, start date, end
	// date, and the numbered excerpt block.
	insightsPrompt string
	// advicePrompt takes the score, the score band description, the
	// dimension label, and the response-language clause.
	advicePrompt string
	// summaryPrompt takes the language clause and the dimension lines.
	summaryPrompt string
	// adviceFallback takes the dimension label and score.
	adviceFallback string

	fallbackInsights   map[string]string
	defaultInsight     string
	journeyInsight     string
	reflectionInsight  string
	consistentPractice string
	summaryUnavailable string
	languageClause     string
	bandLow            string
	bandAverage        string
	bandHigh           string
}

// contentFor returns the content bundle for the given language; anything
// other than "id" gets English.
func contentFor(lang string) languageContent {
	if lang == "id" {
		return contentID
	}
	return contentEN
}

var contentEN = languageContent{
	analysisPrompt: `
Analyze the following journal entry for sentiment and emotions. Provide a JSON response with the following structure:

{
  "sentiment_score": number (0-100, where 0 is very negative, 50 is neutral, 100 is very positive),
  "sentiment_label": "positive" | "neutral" | "negative",
  "emotions": {
    "joy": number (0-100),
    "confidence": number (0-100),
    "gratitude": number (0-100),
    "sadness": number (0-100),
    "anger": number (0-100),
    "fear": number (0-100)
  },
  "insights": "A brief, encouraging insight about *your* emotional state and suggestions for *your* wellbeing (2-3 sentences), directly addressing the user as 'you'."
}

Journal entry to analyze:
"%s"

Please respond with only the JSON object, no additional text. Ensure all responses are in English.
`,
	insightsPrompt: `
Based on *your* recent journal entries, provide a brief, encouraging insight about *your* emotional patterns and wellbeing trends. Keep it positive and supportive, offering practical suggestions for *your* continued growth. Directly address the user as 'you'.

Recent entries summary:
- Number of entries: %d
- Average sentiment score: %.1f/100
- Date range: %s to %s

Recent entry excerpts:
%s

Provide a 2-3 sentence insight that is encouraging and offers practical wellbeing advice, focusing on 'you'. Respond in English.
`,
	advicePrompt: `
Provide specific, actionable advice on how to maintain or improve the score for the following wellbeing dimension. The user's current score is %d/100, which %s. Address the user directly as 'you'.

Dimension: "%s"

- For low scores (under 50), give a simple, foundational tip.
- For average scores (50-69), suggest a way to build consistency or a new habit.
- For high scores (70+), offer a way to deepen the practice or a more advanced concept.

Format your response as: **Bold Header Text** followed by the body content (2-3 sentences). Be encouraging but direct. Ensure the response is in %s. If Bahasa applied address with 'kamu'

Your response MUST be only the formatted advice, with no preamble.
`,
	summaryPrompt: `Based on the following wellbeing dimension scores and the user's feedback for each, craft a concise summary (max 180 words). Weight your analysis according to the score (lower scores receive greater focus) while integrating the qualitative feedback. Write the analysis in %s. When referring to dimensions, ALWAYS use their human-readable labels:
Autonomy, Environmental Mastery, Personal Growth, Positive Relations, Purpose in Life, and Self-Acceptance (or their Bahasa equivalents). NEVER use the camelCase property keys such as personalGrowth. Do not mention each dimension term TWICE. Do not state the language being used. Address the user directly as 'you' or 'kamu' if Bahasa is applied.

%s`,
	adviceFallback: "For %s, with score %d, keep up your good practices. Try adding activities that support growth in this area.",
	fallbackInsights: map[string]string{
		models.LabelPositive: "Your positive outlook is a wonderful strength! Keep nurturing these uplifting thoughts and experiences to continue your growth.",
		models.LabelNegative: "It seems like you're navigating some challenging emotions right now. Remember that it's okay to feel this way, and these feelings are a part of your journey towards growth. You're doing great by acknowledging them.",
		models.LabelNeutral:  "Your emotional state appears balanced, and that's a great foundation! Continue reflecting on your experiences to maintain this equilibrium and deepen your self-understanding.",
	},
	defaultInsight:     "Your journal entry has been analyzed successfully. Keep up the great work!",
	journeyInsight:     "Continue journaling to receive personalized AI insights about your emotional patterns and wellbeing. Your journey of self-discovery is just beginning!",
	reflectionInsight:  "Your journaling journey shows great self-awareness, and you're doing an amazing job reflecting on your experiences to continue growing.",
	consistentPractice: "Your consistent journaling practice is building incredible emotional intelligence. Keep exploring your thoughts and feelings, you're on a fantastic path!",
	summaryUnavailable: "Summary unavailable at the moment.",
	languageClause:     "en-US | English",
	bandLow:            "needs improvement",
	bandAverage:        "is average",
	bandHigh:           "is strong",
}

var contentID = languageContent{
	analysisPrompt: `
Analisis entri jurnal berikut untuk sentimen dan emosi. Berikan respons JSON dengan struktur berikut:

{
  "sentiment_score": angka (0-100, dimana 0 sangat negatif, 50 netral, 100 sangat positif),
  "sentiment_label": "positive" | "neutral" | "negative",
  "emotions": {
    "joy": angka (0-100),
    "confidence": angka (0-100),
    "gratitude": angka (0-100),
    "sadness": angka (0-100),
    "anger": angka (0-100),
    "fear": angka (0-100)
  },
  "insights": "Wawasan singkat dan mendorong tentang keadaan emosional *kamu* dan saran untuk kesejahteraan *kamu* (2-3 kalimat), langsung menyapa pengguna sebagai 'kamu'."
}

Entri jurnal untuk dianalisis:
"%s"

Harap respons hanya dengan objek JSON, tanpa teks tambahan. Pastikan semua respons dalam Bahasa Indonesia.
`,
	insightsPrompt: `
Berdasarkan entri jurnal terbaru *kamu*, berikan wawasan singkat dan mendorong tentang pola emosional *kamu* dan tren kesejahteraan. Tetap positif dan suportif, tawarkan saran praktis untuk pertumbuhan *kamu* yang berkelanjutan. Langsung sapa pengguna sebagai 'kamu'.

Ringkasan entri terbaru:
- Jumlah entri: %d
- Skor sentimen rata-rata: %.1f/100
- Rentang tanggal: %s hingga %s

Kutipan entri terbaru:
%s

Berikan wawasan 2-3 kalimat yang mendorong dan menawarkan saran kesejahteraan praktis, fokus pada 'kamu'. Respons dalam Bahasa Indonesia.
`,
	advicePrompt: `
Provide specific, actionable advice on how to maintain or improve the score for the following wellbeing dimension. The user's current score is %d/100, which %s. Address the user directly as 'you'.

Dimension: "%s"

- For low scores (under 50), give a simple, foundational tip.
- For average scores (50-69), suggest a way to build consistency or a new habit.
- For high scores (70+), offer a way to deepen the practice or a more advanced concept.

Format your response as: **Bold Header Text** followed by the body content (2-3 sentences). Be encouraging but direct. Ensure the response is in %s. If Bahasa applied address with 'kamu'

Your response MUST be only the formatted advice, with no preamble.
`,
	summaryPrompt: `Based on the following wellbeing dimension scores and the user's feedback for each, craft a concise summary (max 180 words). Weight your analysis according to the score (lower scores receive greater focus) while integrating the qualitative feedback. Write the analysis in %s. When referring to dimensions, ALWAYS use their human-readable labels:
Autonomy, Environmental Mastery, Personal Growth, Positive Relations, Purpose in Life, and Self-Acceptance (or their Bahasa equivalents). NEVER use the camelCase property keys such as personalGrowth. Do not mention each dimension term TWICE. Do not state the language being used. Address the user directly as 'you' or 'kamu' if Bahasa is applied.

%s`,
	adviceFallback: "Untuk %s, dengan skor %d, terus pertahankan praktik baikmu. Coba tambahkan aktivitas yang mendukung pertumbuhan di area ini.",
	fallbackInsights: map[string]string{
		models.LabelPositive: "Keadaan positif kamu adalah kekuatan yang luar biasa! Terus pelihara pikiran dan pengalaman yang mengangkat ini untuk melanjutkan pertumbuhan kamu.",
		models.LabelNegative: "Sepertinya kamu sedang menavigasi beberapa emosi yang menantang saat ini. Ingatlah bahwa tidak apa-apa merasakan hal ini, dan perasaan ini adalah bagian dari perjalanan kamu menuju pertumbuhan. kamu melakukan hal yang hebat dengan mengakuinya.",
		models.LabelNeutral:  "Keadaan emosional kamu tampak seimbang, dan itu adalah fondasi yang bagus! Terus refleksikan pengalaman kamu untuk mempertahankan keseimbangan ini dan memperdalam pemahaman diri kamu.",
	},
	defaultInsight:     "Entri jurnal kamu telah dianalisis dengan sukses. Terus lakukan pekerjaan yang hebat!",
	journeyInsight:     "Terus menulis jurnal untuk menerima wawasan AI yang dipersonalisasi tentang pola emosional dan kesejahteraan kamu. Perjalanan penemuan diri kamu baru saja dimulai!",
	reflectionInsight:  "Perjalanan jurnal kamu menunjukkan kesadaran diri yang luar biasa, dan kamu melakukan pekerjaan yang menakjubkan dalam merefleksikan pengalaman kamu untuk terus tumbuh.",
	consistentPractice: "Praktik jurnal yang konsisten kamu membangun kecerdasan emosional yang luar biasa. Terus jelajahi pikiran dan perasaan kamu, kamu berada di jalur yang fantastis!",
	summaryUnavailable: "Ringkasan tidak tersedia saat ini.",
	languageClause:     "id-ID | Bahasa Indonesia",
	bandLow:            "needs improvement",
	bandAverage:        "is average",
	bandHigh:           "is strong",
}

// summaryLanguageClause is the language instruction embedded in the summary
// prompt.
func summaryLanguageClause(lang string) string {
	if lang == "id" {
		return "Bahasa Indonesia (id-ID)"
	}
	return "English (en-US)"
}
