package ryff

import "github.com/adityawrm/mindbloom-backend/internal/models"

// Question is one questionnaire item as served over the API.
type Question struct {
	ID        int    `json:"id"`
	Dimension string `json:"dimension"`
	Label     string `json:"dimension_label"`
	Text      string `json:"text"`
}

// questionDimension is the reverse of dimensionQuestions, built once.
var questionDimension = func() map[int]string {
	m := make(map[int]string, 42)
	for dim, ids := range dimensionQuestions {
		for _, id := range ids {
			m[id] = dim
		}
	}
	return m
}()

var dimensionLabelsEN = map[string]string{
	models.DimAutonomy:             "Autonomy",
	models.DimEnvironmentalMastery: "Environmental Mastery",
	models.DimPersonalGrowth:       "Personal Growth",
	models.DimPositiveRelations:    "Positive Relations",
	models.DimPurposeInLife:        "Purpose in Life",
	models.DimSelfAcceptance:       "Self-Acceptance",
}

var dimensionLabelsID = map[string]string{
	models.DimAutonomy:             "Otonomi",
	models.DimEnvironmentalMastery: "Penguasaan Lingkungan",
	models.DimPersonalGrowth:       "Pertumbuhan Pribadi",
	models.DimPositiveRelations:    "Hubungan Positif",
	models.DimPurposeInLife:        "Tujuan Hidup",
	models.DimSelfAcceptance:       "Penerimaan Diri",
}

// DimensionLabel returns the human-readable dimension name for the given
// language ("id" or anything else for English). Prompts sent to the model
// always use these labels, never the internal keys.
func DimensionLabel(lang, dim string) string {
	if lang == "id" {
		if label, ok := dimensionLabelsID[dim]; ok {
			return label
		}
	}
	if label, ok := dimensionLabelsEN[dim]; ok {
		return label
	}
	return dim
}

// Questions returns the full 42-item bank in the given language, in question
// id order.
func Questions(lang string) []Question {
	texts := questionTextsEN
	if lang == "id" {
		texts = questionTextsID
	}
	labels := dimensionLabelsEN
	if lang == "id" {
		labels = dimensionLabelsID
	}
	out := make([]Question, 0, len(texts))
	for i, text := range texts {
		id := i + 1
		dim := questionDimension[id]
		out = append(out, Question{
			ID:        id,
			Dimension: dim,
			Label:     labels[dim],
			Text:      text,
		})
	}
	return out
}

// questionTextsEN holds items 1..42 in order.
var questionTextsEN = []string{
	"I feel comfortable expressing my views, even if they differ from others.",
	"My life has been a continuous journey of learning, adapting, and personal growth.",
	"I generally feel capable of managing the situations in my life.",
	"Others would likely describe me as generous and willing to help.",
	"I have little interest in activities that broaden my perspectives.",
	"I enjoy planning for the future and actively working to achieve my goals.",
	"Most people perceive me as a loving and affectionate person.",
	"I often feel disappointed with what I've accomplished in life.",
	"I tend to live in the moment and don't dwell on future plans.",
	"I often worry about how others view me.",
	"Looking back, I am content with how my life has unfolded.",
	"I struggle to organize my life in a way that brings me satisfaction.",
	"My decisions are generally not swayed by popular opinion.",
	"I stopped trying to make significant improvements or changes in my life a long time ago.",
	"The demands of daily life often feel overwhelming.",
	"I haven't experienced many warm and trusting relationships.",
	"I believe it's important to seek new experiences that challenge my thinking.",
	"Forming close relationships has been difficult and frustrating for me.",
	"My self-perception is probably not as positive as most people's.",
	"I have a clear sense of direction and purpose in my life.",
	"I evaluate myself based on my own values, not on what others deem important.",
	"Overall, I feel confident and positive about myself.",
	"I have successfully created a living environment and lifestyle that I enjoy.",
	"I tend to be easily influenced by people with strong opinions.",
	"I dislike new situations that require me to change my established routines.",
	"I don't feel a strong connection with the people and community around me.",
	"I have trusting relationships with my friends, and they trust me in return.",
	"Reflecting on it, I haven't grown much as a person over the years.",
	"While some people drift through life without purpose, I am not one of them.",
	"I often feel isolated due to a lack of close friends to confide in.",
	"Comparing myself to others makes me feel good about who I am.",
	"I lack a clear understanding of what I want to achieve in life.",
	"Sometimes I feel as though I've experienced all there is to life.",
	"I feel that many people I know have achieved more in life than I have.",
	"I trust my own judgment, even if it goes against popular opinion.",
	"I am effective at managing the various responsibilities in my daily life.",
	"I feel that I have significantly developed as a person over time.",
	"I enjoy meaningful conversations with my family and friends.",
	"My daily activities often seem insignificant and without importance.",
	"I am generally pleased with most aspects of my personality.",
	"It is hard for me to express my own opinions on controversial topics.",
	"I often feel overwhelmed by the responsibilities I have.",
}

// questionTextsID holds the Bahasa Indonesia translations of items 1..42.
var questionTextsID = []string{
	"Saya merasa nyaman mengungkapkan pandangan saya, meskipun berbeda dari orang lain.",
	"Hidup saya merupakan perjalanan berkelanjutan dalam belajar, beradaptasi, dan pertumbuhan pribadi.",
	"Umumnya, saya merasa mampu mengelola situasi dalam hidup saya.",
	"Orang lain mungkin akan menggambarkan saya sebagai orang yang murah hati dan bersedia membantu.",
	"Saya kurang tertarik pada kegiatan yang memperluas pandangan saya.",
	"Saya menikmati membuat rencana untuk masa depan dan aktif berusaha mencapai tujuan saya.",
	"Kebanyakan orang menganggap saya sebagai orang yang penuh kasih sayang.",
	"Saya sering merasa kecewa dengan apa yang telah saya capai dalam hidup.",
	"Saya cenderung hidup di masa kini dan tidak terlalu memikirkan rencana masa depan.",
	"Saya sering khawatir tentang bagaimana orang lain memandang saya.",
	"Melihat ke belakang, saya puas dengan bagaimana hidup saya berjalan.",
	"Saya kesulitan mengatur hidup saya dengan cara yang memuaskan bagi saya.",
	"Keputusan saya umumnya tidak dipengaruhi oleh pendapat umum.",
	"Saya sudah lama berhenti mencoba membuat perbaikan atau perubahan signifikan dalam hidup saya.",
	"Tuntutan hidup sehari-hari seringkali terasa membebani.",
	"Saya belum banyak mengalami hubungan yang hangat dan saling percaya.",
	"Saya percaya penting untuk mencari pengalaman baru yang menantang pemikiran saya.",
	"Membangun hubungan dekat terasa sulit dan membuat frustrasi bagi saya.",
	"Persepsi diri saya mungkin tidak sepositif kebanyakan orang.",
	"Saya memiliki arah dan tujuan yang jelas dalam hidup saya.",
	"Saya menilai diri saya berdasarkan nilai-nilai saya sendiri, bukan berdasarkan apa yang dianggap penting oleh orang lain.",
	"Secara keseluruhan, saya merasa percaya diri dan positif tentang diri saya.",
	"Saya telah berhasil menciptakan lingkungan hidup dan gaya hidup yang saya nikmati.",
	"Saya cenderung mudah dipengaruhi oleh orang-orang dengan pendapat yang kuat.",
	"Saya tidak suka situasi baru yang mengharuskan saya mengubah rutinitas lama saya.",
	"Saya tidak merasa terhubung erat dengan orang-orang dan komunitas di sekitar saya.",
	"Saya memiliki hubungan yang saling percaya dengan teman-teman saya, dan mereka juga percaya pada saya.",
	"Jika dipikir-pikir, saya belum banyak berkembang sebagai pribadi selama bertahun-tahun.",
	"Meskipun beberapa orang menjalani hidup tanpa tujuan, saya bukan salah satunya.",
	"Saya sering merasa kesepian karena kurangnya teman dekat untuk berbagi.",
	"Membandingkan diri saya dengan orang lain membuat saya merasa senang dengan diri saya.",
	"Saya tidak memiliki pemahaman yang jelas tentang apa yang ingin saya capai dalam hidup.",
	"Terkadang saya merasa seolah-olah saya telah mengalami semua yang ada dalam hidup.",
	"Saya merasa banyak orang yang saya kenal telah mencapai lebih banyak dalam hidup daripada saya.",
	"Saya percaya pada penilaian saya sendiri, meskipun bertentangan dengan pendapat umum.",
	"Saya cukup efektif dalam mengelola berbagai tanggung jawab dalam kehidupan sehari-hari saya.",
	"Saya merasa telah berkembang pesat sebagai pribadi seiring waktu.",
	"Saya menikmati percakapan yang bermakna dengan keluarga dan teman-teman saya.",
	"Aktivitas harian saya seringkali terasa tidak penting dan tidak berarti bagi saya.",
	"Saya umumnya senang dengan sebagian besar aspek kepribadian saya.",
	"Sulit bagi saya untuk mengungkapkan pendapat saya sendiri tentang topik kontroversial.",
	"Saya sering merasa kewalahan dengan tanggung jawab yang saya miliki.",
}
