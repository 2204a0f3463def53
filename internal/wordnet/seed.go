package wordnet

// SeedSenses is the minimal built-in sense table used when the built
// word-sense file cannot be read.
func SeedSenses() WordSenseTable {
	return WordSenseTable{
		"美しい": {
			{
				SynsetID:     "00217728-a",
				Word:         "美しい",
				Confidence:   ConfidenceHand,
				PartOfSpeech: "形容詞",
				Definition:   "感覚を活気づけ、知的情緒的賞賛を喚起する",
			},
		},
	}
}
