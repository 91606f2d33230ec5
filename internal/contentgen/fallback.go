package contentgen

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/nehal/linguo/internal/ledger"
)

// AnswersMatch is the canonical offline definition of a correct answer:
// whitespace-trimmed, case-insensitive equality.
func AnswersMatch(correctAnswer, userAnswer string) bool {
	return strings.EqualFold(strings.TrimSpace(correctAnswer), strings.TrimSpace(userAnswer))
}

// fixtureQuestion is one entry in the offline question pool.
type fixtureQuestion struct {
	qType         ledger.QuestionType
	question      string
	correctAnswer string
	options       []string
	explanation   string
}

// fixturePool is the deterministic question source used whenever the
// external generator is unavailable. Questions are drawn in order.
var fixturePool = []fixtureQuestion{
	{
		qType:         ledger.TypeMultipleChoice,
		question:      "Which word completes the sentence: \"She ___ to work every day.\"",
		correctAnswer: "goes",
		options:       []string{"goes", "go", "going", "gone"},
		explanation:   "Third-person singular subjects take the -es form in the present simple.",
	},
	{
		qType:         ledger.TypeFillBlank,
		question:      "Fill in the blank: \"I have lived here ___ 2019.\"",
		correctAnswer: "since",
		explanation:   "\"Since\" marks the starting point of a period that continues to now.",
	},
	{
		qType:         ledger.TypeTrueFalse,
		question:      "\"Their\" and \"there\" mean the same thing.",
		correctAnswer: "false",
		options:       []string{"true", "false"},
		explanation:   "\"Their\" is possessive; \"there\" refers to a place.",
	},
	{
		qType:         ledger.TypeMultipleChoice,
		question:      "Choose the correct past tense: \"Yesterday I ___ a great film.\"",
		correctAnswer: "saw",
		options:       []string{"saw", "seen", "see", "sawed"},
		explanation:   "\"See\" is irregular; its simple past is \"saw\".",
	},
	{
		qType:         ledger.TypeTranslation,
		question:      "Translate into English: \"Merci beaucoup.\"",
		correctAnswer: "thank you very much",
		explanation:   "\"Merci beaucoup\" is a polite, emphatic thank-you.",
	},
	{
		qType:         ledger.TypeFillBlank,
		question:      "Fill in the blank: \"There isn't ___ milk left.\"",
		correctAnswer: "any",
		explanation:   "Negative statements about uncountable nouns use \"any\", not \"some\".",
	},
	{
		qType:         ledger.TypeMultipleChoice,
		question:      "Which sentence is correct?",
		correctAnswer: "He doesn't like coffee.",
		options:       []string{"He doesn't like coffee.", "He don't like coffee.", "He doesn't likes coffee.", "He not like coffee."},
		explanation:   "Negatives in the present simple use \"doesn't\" plus the base verb.",
	},
	{
		qType:         ledger.TypeTrueFalse,
		question:      "The comparative form of \"good\" is \"gooder\".",
		correctAnswer: "false",
		options:       []string{"true", "false"},
		explanation:   "\"Good\" is irregular; its comparative is \"better\".",
	},
	{
		qType:         ledger.TypeFillBlank,
		question:      "Fill in the blank: \"She is interested ___ photography.\"",
		correctAnswer: "in",
		explanation:   "\"Interested\" takes the preposition \"in\".",
	},
	{
		qType:         ledger.TypeMultipleChoice,
		question:      "Which word is a synonym of \"begin\"?",
		correctAnswer: "start",
		options:       []string{"start", "finish", "delay", "avoid"},
		explanation:   "\"Start\" and \"begin\" are interchangeable in most contexts.",
	},
	{
		qType:         ledger.TypeTranslation,
		question:      "Translate into English: \"¿Dónde está la estación?\"",
		correctAnswer: "where is the station",
		explanation:   "A common travel phrase for asking directions.",
	},
	{
		qType:         ledger.TypeFillBlank,
		question:      "Fill in the blank: \"If it rains, we ___ stay home.\"",
		correctAnswer: "will",
		explanation:   "First conditional sentences pair a present-tense condition with \"will\".",
	},
}

// fallbackQuiz builds a quiz of min(count, pool size) fixture questions
// tagged with the requested topic, difficulty and focus.
func (p *Pipeline) fallbackQuiz(profile LearnerProfile, topic ledger.Topic, focus ledger.Focus, count int) *Quiz {
	if count > len(fixturePool) {
		count = len(fixturePool)
	}
	if count < 0 {
		count = 0
	}

	questions := make([]QuizQuestion, count)
	for i := 0; i < count; i++ {
		f := fixturePool[i]
		questions[i] = QuizQuestion{
			ID:            uuid.NewString(),
			Type:          f.qType,
			Question:      f.question,
			CorrectAnswer: f.correctAnswer,
			Options:       append([]string(nil), f.options...),
			Explanation:   f.explanation,
			Difficulty:    profile.Difficulty,
			Topic:         topic,
			Focus:         focus,
		}
	}

	return p.assembleQuiz(fmt.Sprintf("Practice: %s", topicTitle(topic)), questions, topic, profile.Difficulty, nil)
}

// fallbackMistakeQuiz reproduces each mistake's original question
// verbatim, with an explanation that names the learner's earlier answer.
func (p *Pipeline) fallbackMistakeQuiz(mistakes []ledger.MistakeRecord) *Quiz {
	questions := make([]QuizQuestion, len(mistakes))
	sourceIDs := make([]string, len(mistakes))
	for i, m := range mistakes {
		explanation := m.Explanation
		if explanation == "" {
			explanation = fmt.Sprintf("The correct answer is %q.", m.CorrectAnswer)
		}
		questions[i] = QuizQuestion{
			ID:            uuid.NewString(),
			Type:          m.Type,
			Question:      m.Question,
			CorrectAnswer: m.CorrectAnswer,
			Options:       append([]string(nil), m.Options...),
			Explanation:   fmt.Sprintf("%s You previously answered %q.", explanation, m.UserAnswer),
			Difficulty:    m.Difficulty,
			Topic:         m.Topic,
			Focus:         m.Focus,
		}
		sourceIDs[i] = m.ID
	}

	topic := ledger.TopicDailyLife
	difficulty := ledger.DifficultyBeginner
	if len(mistakes) > 0 {
		topic = mistakes[0].Topic
		difficulty = mistakes[0].Difficulty
	}

	return p.assembleQuiz("Review your mistakes", questions, topic, difficulty, sourceIDs)
}

// fallbackVerification applies the canonical comparator with generic
// feedback.
func fallbackVerification(correctAnswer, userAnswer string) *Verification {
	if AnswersMatch(correctAnswer, userAnswer) {
		return &Verification{
			IsCorrect:   true,
			Explanation: "Your answer matches the expected answer.",
			Feedback:    "Correct, well done!",
		}
	}
	return &Verification{
		IsCorrect:   false,
		Explanation: fmt.Sprintf("The expected answer is %q.", correctAnswer),
		Feedback:    "Not quite. Review the expected answer and try again.",
	}
}

// fallbackConversation is a fixed ordering-a-coffee dialogue, tagged
// with the requested topic.
func (p *Pipeline) fallbackConversation(profile LearnerProfile, topic ledger.Topic) *Conversation {
	lines := []ConversationLine{
		{Speaker: "Barista", Text: "Good morning! What can I get you?"},
		{Speaker: "Customer", Text: "Hi, a medium coffee with milk, please."},
		{Speaker: "Barista", Text: "Anything to eat with that?"},
		{Speaker: "Customer", Text: "Just a croissant, thanks."},
		{Speaker: "Barista", Text: "That's four fifty altogether."},
		{Speaker: "Customer", Text: "Here you go. Keep the change."},
	}

	questions := []QuizQuestion{
		{
			ID:            uuid.NewString(),
			Type:          ledger.TypeMultipleChoice,
			Question:      "What does the customer order to drink?",
			CorrectAnswer: "a medium coffee with milk",
			Options:       []string{"a medium coffee with milk", "a large tea", "an espresso", "a hot chocolate"},
			Explanation:   "The customer asks for a medium coffee with milk in the second line.",
			Difficulty:    profile.Difficulty,
			Topic:         topic,
			Focus:         ledger.FocusListening,
		},
		{
			ID:            uuid.NewString(),
			Type:          ledger.TypeTrueFalse,
			Question:      "The customer asks for the change back.",
			CorrectAnswer: "false",
			Options:       []string{"true", "false"},
			Explanation:   "The customer says \"keep the change\".",
			Difficulty:    profile.Difficulty,
			Topic:         topic,
			Focus:         ledger.FocusListening,
		},
	}

	return &Conversation{
		ID:        uuid.NewString(),
		Title:     "Ordering at a cafe",
		Scenario:  "A customer orders breakfast at a small cafe.",
		Lines:     lines,
		Questions: questions,
		Topic:     topic,
		CreatedAt: p.now(),
	}
}

const fallbackArticleBody = `Markets have been the heart of town life for as long as towns have existed. Long before supermarkets, people met at the central square once or twice a week to buy vegetables, bread, cloth and tools, and to exchange the news of the region. The market was not only a place of trade but a social institution, where farmers learned the price of grain, travelers passed on stories, and neighbors settled small disputes over a shared meal.

Many of those traditions survive today. In most European towns the weekly market still takes over the main square, and the stalls follow an order that has barely changed in centuries: produce near the fountain, cheese and meat under the arcades, flowers at the edge where the light is best. Regulars arrive early, greet the sellers by name, and taste before they buy. Tourists come later, drawn by the colors and the noise, and often leave with more than they planned to carry.

What keeps markets alive in the age of online shopping is exactly what made them matter in the first place. A market is slow on purpose. You talk to the person who grew the food, you ask how to cook it, and you come back the next week to say how it went. No delivery service can replace that conversation, and most people who shop at markets say the conversation, not the shopping, is the real reason they go.`

// fallbackArticle is a fixed reading passage about market towns, tagged
// with the requested topic and focus.
func (p *Pipeline) fallbackArticle(profile LearnerProfile, topic ledger.Topic, focus ledger.Focus) *Article {
	body := fallbackArticleBody

	article := &Article{
		ID:         uuid.NewString(),
		Title:      "A Morning at the Market",
		Body:       body,
		WordCount:  countWords(body),
		Topic:      topic,
		Difficulty: profile.Difficulty,
		Focus:      focus,
		CreatedAt:  p.now(),
	}
	article.Questions = p.fallbackArticleQuestions(article, p.cfg.MinArticleQuestions)
	return article
}

// fallbackArticleQuestions produces comprehension questions that are
// answerable from any passage plus a small set tied to the fixture
// article, clamped to the requested count.
func (p *Pipeline) fallbackArticleQuestions(article *Article, count int) []QuizQuestion {
	pool := []QuizQuestion{
		{
			Type:          ledger.TypeMultipleChoice,
			Question:      "What is the main subject of the passage?",
			CorrectAnswer: "town markets",
			Options:       []string{"town markets", "online shopping", "famous fountains", "European travel"},
			Explanation:   "Every paragraph returns to markets and the life around them.",
		},
		{
			Type:          ledger.TypeTrueFalse,
			Question:      "According to the passage, markets existed before supermarkets.",
			CorrectAnswer: "true",
			Options:       []string{"true", "false"},
			Explanation:   "The first paragraph says markets predate supermarkets.",
		},
		{
			Type:          ledger.TypeFillBlank,
			Question:      "The passage says a market is ___ on purpose.",
			CorrectAnswer: "slow",
			Explanation:   "The final paragraph states it directly.",
		},
		{
			Type:          ledger.TypeMultipleChoice,
			Question:      "Where are the flowers sold, according to the passage?",
			CorrectAnswer: "at the edge of the square",
			Options:       []string{"at the edge of the square", "under the arcades", "near the fountain", "inside the town hall"},
			Explanation:   "Flowers are placed at the edge where the light is best.",
		},
		{
			Type:          ledger.TypeTrueFalse,
			Question:      "The passage claims delivery services have replaced market conversations.",
			CorrectAnswer: "false",
			Options:       []string{"true", "false"},
			Explanation:   "It argues the opposite: no delivery service replaces the conversation.",
		},
	}

	if count > len(pool) {
		count = len(pool)
	}
	if count < 0 {
		count = 0
	}

	out := make([]QuizQuestion, count)
	for i := 0; i < count; i++ {
		q := pool[i]
		q.ID = uuid.NewString()
		q.Difficulty = article.Difficulty
		q.Topic = article.Topic
		q.Focus = ledger.FocusReading
		out[i] = q
	}
	return out
}

func topicTitle(topic ledger.Topic) string {
	words := strings.Split(string(topic), "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
