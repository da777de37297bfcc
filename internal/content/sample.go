package content

import "github.com/verba-en/backend/internal/models"

// SampleQuestions returns the built-in demonstration variant, served for any
// level that has no authored content file.
func SampleQuestions() []models.Question {
	return []models.Question{
		{
			Type:        models.TypeMultipleChoice,
			Text:        "Choose the correct form of the verb:",
			Instruction: "Read the sentence carefully and select the appropriate form.",
			Sentence:    "She _____ to the library every weekend.",
			Options:     []string{"go", "goes", "going", "gone"},
			Correct:     1,
			Explanation: "For third person singular (she/he/it) in present simple, we add -s or -es to the verb.",
			Points:      10,
		},
		{
			Type:        models.TypeMultipleChoice,
			Text:        "What is the meaning of \"breakthrough\"?",
			Instruction: "Choose the best definition.",
			Options: []string{
				"A serious problem or difficulty",
				"An important discovery or development",
				"A type of building structure",
				"A way to enter a place",
			},
			Correct:     1,
			Explanation: "\"Breakthrough\" means a sudden, dramatic, and important discovery or development.",
			Points:      10,
		},
		{
			Type: models.TypeReading,
			Passage: &models.Passage{
				Title: "Modern Technology",
				Text: "Modern technology has transformed the way we communicate. Social media platforms " +
					"connect billions of people worldwide, enabling instant sharing of information and ideas. " +
					"However, this connectivity also raises concerns about privacy and the spread of misinformation.",
			},
			Text: "According to the passage, what is ONE concern about modern technology?",
			Options: []string{
				"It is too expensive",
				"It raises privacy concerns",
				"It is difficult to learn",
				"It is not widely available",
			},
			Correct:     1,
			Explanation: "The passage mentions that connectivity \"raises concerns about privacy and the spread of misinformation.\"",
			Points:      15,
		},
		{
			Type:        models.TypeFillBlank,
			Text:        "Complete the sentence with the correct word:",
			Instruction: "Type your answer in the blank space.",
			Sentence:    "Despite the rain, they decided to _____ with their picnic plans.",
			Accepted:    []string{"proceed", "continue", "go ahead"},
			Explanation: "The correct phrases are \"proceed with,\" \"continue with,\" or \"go ahead with.\"",
			Points:      10,
		},
		{
			Type:        models.TypeMultipleChoice,
			Text:        "Choose the sentence with correct punctuation:",
			Instruction: "Select the properly punctuated sentence.",
			Options: []string{
				"Its a beautiful day outside.",
				"It's a beautiful day outside.",
				"Its' a beautiful day outside.",
				"Its a beautiful day, outside.",
			},
			Correct:     1,
			Explanation: "\"It's\" is the contraction of \"it is.\" The apostrophe replaces the missing letter \"i.\"",
			Points:      10,
		},
		{
			Type: models.TypeReading,
			Passage: &models.Passage{
				Title: "Climate Change",
				Text: "Scientists worldwide agree that climate change poses significant threats to our planet. " +
					"Rising temperatures lead to melting ice caps, rising sea levels, and more frequent extreme " +
					"weather events. Immediate action is necessary to reduce greenhouse gas emissions.",
			},
			Text: "What do scientists agree about?",
			Options: []string{
				"Climate change is not a serious issue",
				"Climate change poses significant threats",
				"Ice caps are growing larger",
				"Weather patterns are becoming more predictable",
			},
			Correct:     1,
			Explanation: "The passage states that \"Scientists worldwide agree that climate change poses significant threats to our planet.\"",
			Points:      15,
		},
		{
			Type:        models.TypeMultipleChoice,
			Text:        "Choose the correct preposition:",
			Instruction: "Complete the sentence with the appropriate preposition.",
			Sentence:    "She is interested _____ learning new languages.",
			Options:     []string{"in", "on", "at", "for"},
			Correct:     0,
			Explanation: "We use \"interested in\" when talking about having interest in something.",
			Points:      10,
		},
		{
			Type:        models.TypeMultipleChoice,
			Text:        "Identify the synonym of \"difficult\":",
			Options:     []string{"easy", "challenging", "simple", "pleasant"},
			Correct:     1,
			Explanation: "\"Challenging\" is a synonym of \"difficult,\" both meaning requiring effort or skill.",
			Points:      10,
		},
		{
			Type:        models.TypeFillBlank,
			Text:        "Complete with the correct form:",
			Instruction: "Use the present perfect tense.",
			Sentence:    "I _____ (finish) my homework already.",
			Accepted:    []string{"have finished"},
			Explanation: "Present perfect (have/has + past participle) is used for actions completed at an unspecified time before now.",
			Points:      10,
		},
		{
			Type: models.TypeMultipleChoice,
			Text: "Choose the correct sentence structure:",
			Options: []string{
				"If I would have time, I will help you.",
				"If I have time, I will help you.",
				"If I will have time, I help you.",
				"If I had time, I will help you.",
			},
			Correct:     1,
			Explanation: "First conditional uses: if + present simple, will + infinitive.",
			Points:      10,
		},
	}
}
