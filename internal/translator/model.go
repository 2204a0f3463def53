package translator

import "fmt"

// Model translates text into one fixed target language. The real system
// would back this with a downloadable per-pair model blob; the phrase-table
// model below is the placeholder implementation.
type Model interface {
	Translate(text string) string
}

// phraseTable is a tiny demonstration dictionary: source phrase → target
// language code → translation.
var phraseTable = map[string]map[string]string{
	"自由": {
		"en": "freedom", "de": "Freiheit", "fr": "liberté", "es": "libertad",
		"it": "libertà", "pt": "liberdade", "ru": "свобода", "zh": "自由",
		"ko": "자유", "ar": "حرية", "hi": "स्वतंत्रता", "tr": "özgürlük",
		"nl": "vrijheid", "el": "ελευθερία", "sv": "frihet", "pl": "wolność",
	},
	"美しい": {
		"en": "beautiful", "de": "schön", "fr": "beau", "es": "hermoso",
		"it": "bello", "pt": "belo", "ru": "красивый", "zh": "美丽",
		"ko": "아름다운", "ar": "جميل", "hi": "सुंदर", "tr": "güzel",
		"nl": "mooi", "el": "όμορφος", "sv": "vacker", "pl": "piękny",
	},
	"freedom": {
		"ja": "自由", "de": "Freiheit", "fr": "liberté", "es": "libertad",
		"it": "libertà", "pt": "liberdade", "ru": "свобода", "zh": "自由",
		"ko": "자유", "ar": "حرية", "hi": "स्वतंत्रता", "tr": "özgürlük",
		"nl": "vrijheid", "el": "ελευθερία", "sv": "frihet", "pl": "wolność",
	},
	"beautiful": {
		"ja": "美しい", "de": "schön", "fr": "beau", "es": "hermoso",
		"it": "bello", "pt": "belo", "ru": "красивый", "zh": "美丽",
		"ko": "아름다운", "ar": "جميل", "hi": "सुंदर", "tr": "güzel",
		"nl": "mooi", "el": "όμορφος", "sv": "vacker", "pl": "piękny",
	},
	"on": {
		"ja": "オン", "de": "an", "fr": "sur", "es": "en",
		"it": "su", "pt": "em", "ru": "на", "zh": "在",
		"ko": "에", "ar": "على", "hi": "पर", "tr": "üzerinde",
		"nl": "op", "el": "επί", "sv": "på", "pl": "na",
	},
}

type phraseTableModel struct {
	target string
}

// NewPhraseTableModel creates a toy model for the given target language.
func NewPhraseTableModel(target string) Model {
	return phraseTableModel{target: target}
}

// Translate returns the phrase-table translation, or the input wrapped in
// brackets when the phrase is unknown.
func (m phraseTableModel) Translate(text string) string {
	if translation, ok := phraseTable[text][m.target]; ok {
		return translation
	}
	return fmt.Sprintf("[%s]", text)
}
