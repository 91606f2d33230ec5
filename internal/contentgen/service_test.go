package contentgen

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/nehal/linguo/internal/ledger"
	"github.com/nehal/linguo/internal/llm"
)

var testTime = time.Date(2026, 4, 2, 10, 0, 0, 0, time.UTC)

func testProfile() LearnerProfile {
	return LearnerProfile{
		Name:           "Sam",
		NativeLanguage: "English",
		TargetLanguage: "French",
		Difficulty:     ledger.DifficultyIntermediate,
	}
}

func newPipeline(provider llm.Provider) *Pipeline {
	return NewPipeline(provider, DefaultConfig(), WithClock(func() time.Time { return testTime }))
}

func quizJSON(t *testing.T, title string, questions []questionOutput) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(quizOutput{Title: title, Questions: questions})
	if err != nil {
		t.Fatal(err)
	}
	return raw
}

func TestGenerateQuizFromProvider(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{
		Content: quizJSON(t, "Ordering Food", []questionOutput{
			{
				Type:          "multiple_choice",
				Question:      "How do you say 'the bill' in French?",
				CorrectAnswer: "l'addition",
				Options:       []string{"l'addition", "la table", "le menu", "le plat"},
				Explanation:   "You ask for l'addition at the end of a meal.",
			},
			{
				Type:          "fill_blank",
				Question:      "Je voudrais ___ cafe.",
				CorrectAnswer: "un",
				Explanation:   "Cafe is masculine, so it takes 'un'.",
			},
		}),
	})
	p := newPipeline(provider)

	quiz, err := p.GenerateQuiz(context.Background(), testProfile(), ledger.TopicFood, ledger.FocusVocabulary, 2)
	if err != nil {
		t.Fatalf("GenerateQuiz() error = %v", err)
	}
	if quiz.Title != "Ordering Food" {
		t.Errorf("Title = %q", quiz.Title)
	}
	if len(quiz.Questions) != 2 {
		t.Fatalf("len(Questions) = %d, want 2", len(quiz.Questions))
	}
	if quiz.IsMistakeBased() {
		t.Error("plain quiz reports mistake-based")
	}
	q := quiz.Questions[0]
	if q.Topic != ledger.TopicFood || q.Focus != ledger.FocusVocabulary || q.Difficulty != ledger.DifficultyIntermediate {
		t.Errorf("question not tagged with request classification: %+v", q)
	}
	if q.ID == "" {
		t.Error("question missing ID")
	}
	if quiz.EstimatedDuration != 60*time.Second {
		t.Errorf("EstimatedDuration = %v, want 60s", quiz.EstimatedDuration)
	}
}

func TestGenerateQuizFallsBackOnProviderError(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("boom")},
	})
	p := newPipeline(provider)

	quiz, err := p.GenerateQuiz(context.Background(), testProfile(), ledger.TopicTravel, ledger.FocusGrammar, 5)
	if err != nil {
		t.Fatalf("GenerateQuiz() error = %v, want fallback", err)
	}
	if len(quiz.Questions) != 5 {
		t.Errorf("len(Questions) = %d, want 5", len(quiz.Questions))
	}
	for _, q := range quiz.Questions {
		if q.Topic != ledger.TopicTravel || q.Focus != ledger.FocusGrammar {
			t.Errorf("fallback question not tagged with request: %+v", q)
		}
	}
	if provider.CallCount() != 1 {
		t.Errorf("provider called %d times, want exactly 1", provider.CallCount())
	}
}

func TestGenerateQuizFallsBackOnMalformedResponse(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"unexpected": true`),
	})
	p := newPipeline(provider)

	quiz, err := p.GenerateQuiz(context.Background(), testProfile(), ledger.TopicCulture, ledger.FocusReading, 3)
	if err != nil {
		t.Fatalf("GenerateQuiz() error = %v, want fallback", err)
	}
	if len(quiz.Questions) != 3 {
		t.Errorf("len(Questions) = %d, want 3", len(quiz.Questions))
	}
}

func TestGenerateQuizOfflineCountClamp(t *testing.T) {
	p := newPipeline(nil)

	quiz, err := p.GenerateQuiz(context.Background(), testProfile(), ledger.TopicDailyLife, ledger.FocusVocabulary, 100)
	if err != nil {
		t.Fatalf("GenerateQuiz() error = %v", err)
	}
	if len(quiz.Questions) != len(fixturePool) {
		t.Errorf("len(Questions) = %d, want pool size %d", len(quiz.Questions), len(fixturePool))
	}
}

func sampleMistakes(n int) []ledger.MistakeRecord {
	out := make([]ledger.MistakeRecord, n)
	for i := range out {
		out[i] = ledger.MistakeRecord{
			ID:            string(rune('a' + i)),
			Question:      "What is the past tense of 'go'?",
			CorrectAnswer: "went",
			UserAnswer:    "goed",
			Explanation:   "'Go' is irregular.",
			Type:          ledger.TypeFillBlank,
			Difficulty:    ledger.DifficultyBeginner,
			Topic:         ledger.TopicDailyLife,
			Focus:         ledger.FocusGrammar,
		}
	}
	return out
}

func TestGenerateMistakeQuizEmptyList(t *testing.T) {
	p := newPipeline(nil)

	_, err := p.GenerateMistakeQuiz(context.Background(), testProfile(), nil)
	if !errors.Is(err, ErrNoMistakes) {
		t.Errorf("GenerateMistakeQuiz(nil) error = %v, want ErrNoMistakes", err)
	}
}

func TestGenerateMistakeQuizFallbackReproducesMistakes(t *testing.T) {
	mistakes := sampleMistakes(2)
	mistakes[1].Question = "Translate 'bonjour'"
	mistakes[1].CorrectAnswer = "hello"
	mistakes[1].UserAnswer = "goodbye"

	p := newPipeline(nil)
	quiz, err := p.GenerateMistakeQuiz(context.Background(), testProfile(), mistakes)
	if err != nil {
		t.Fatalf("GenerateMistakeQuiz() error = %v", err)
	}
	if !quiz.IsMistakeBased() {
		t.Error("quiz not marked mistake-based")
	}
	if len(quiz.Questions) != 2 {
		t.Fatalf("len(Questions) = %d, want 2", len(quiz.Questions))
	}
	for i, q := range quiz.Questions {
		if q.Question != mistakes[i].Question {
			t.Errorf("Questions[%d] = %q, want verbatim %q", i, q.Question, mistakes[i].Question)
		}
		if quiz.SourceMistakeIDs[i] != mistakes[i].ID {
			t.Errorf("SourceMistakeIDs[%d] = %q, want %q", i, quiz.SourceMistakeIDs[i], mistakes[i].ID)
		}
	}
}

func TestGenerateMistakeQuizCapsAtMax(t *testing.T) {
	p := newPipeline(nil)

	quiz, err := p.GenerateMistakeQuiz(context.Background(), testProfile(), sampleMistakes(25))
	if err != nil {
		t.Fatalf("GenerateMistakeQuiz() error = %v", err)
	}
	if len(quiz.Questions) != 10 {
		t.Errorf("len(Questions) = %d, want 10", len(quiz.Questions))
	}
	if len(quiz.SourceMistakeIDs) != 10 {
		t.Errorf("len(SourceMistakeIDs) = %d, want 10", len(quiz.SourceMistakeIDs))
	}
}

func TestGenerateMistakeQuizPreservesSourceClassification(t *testing.T) {
	mistakes := sampleMistakes(1)
	mistakes[0].Difficulty = ledger.DifficultyAdvanced
	mistakes[0].Topic = ledger.TopicBusiness
	mistakes[0].Focus = ledger.FocusWriting

	provider := llm.NewMockProvider(llm.MockResponse{
		Content: quizJSON(t, "Review", []questionOutput{
			{
				Type:          "fill_blank",
				Question:      "Complete: yesterday I ___ home early.",
				CorrectAnswer: "went",
				Explanation:   "Irregular past tense.",
			},
		}),
	})
	p := newPipeline(provider)

	quiz, err := p.GenerateMistakeQuiz(context.Background(), testProfile(), mistakes)
	if err != nil {
		t.Fatalf("GenerateMistakeQuiz() error = %v", err)
	}
	q := quiz.Questions[0]
	if q.Difficulty != ledger.DifficultyAdvanced || q.Topic != ledger.TopicBusiness || q.Focus != ledger.FocusWriting {
		t.Errorf("question classification = %s/%s/%s, want source mistake's", q.Difficulty, q.Topic, q.Focus)
	}
}

func TestVerifyAnswerFromProvider(t *testing.T) {
	raw, _ := json.Marshal(Verification{IsCorrect: true, Explanation: "Same meaning.", Feedback: "Nice!"})
	provider := llm.NewMockProvider(llm.MockResponse{Content: raw})
	p := newPipeline(provider)

	v, err := p.VerifyAnswer(context.Background(), "Capital of France?", "Paris", "It's Paris", ledger.TypeFillBlank)
	if err != nil {
		t.Fatalf("VerifyAnswer() error = %v", err)
	}
	if !v.IsCorrect || v.Feedback != "Nice!" {
		t.Errorf("Verification = %+v", v)
	}
}

func TestVerifyAnswerFallbackComparator(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("down")},
	})
	p := newPipeline(provider)

	v, err := p.VerifyAnswer(context.Background(), "Capital of France?", "Paris", " paris ", ledger.TypeFillBlank)
	if err != nil {
		t.Fatalf("VerifyAnswer() error = %v", err)
	}
	if !v.IsCorrect {
		t.Error("fallback comparator rejected ' paris ' for 'Paris'")
	}

	provider.AddResponse(llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}})
	v, err = p.VerifyAnswer(context.Background(), "Capital of France?", "Paris", "Lyon", ledger.TypeFillBlank)
	if err != nil {
		t.Fatalf("VerifyAnswer() error = %v", err)
	}
	if v.IsCorrect {
		t.Error("fallback comparator accepted wrong answer")
	}
}

func TestAnswersMatch(t *testing.T) {
	tests := []struct {
		correct string
		user    string
		want    bool
	}{
		{"Paris", " paris ", true},
		{"went", "went", true},
		{"went", "goed", false},
		{"  HELLO ", "hello", true},
		{"", "", true},
		{"a b", "ab", false},
	}
	for _, tt := range tests {
		if got := AnswersMatch(tt.correct, tt.user); got != tt.want {
			t.Errorf("AnswersMatch(%q, %q) = %v, want %v", tt.correct, tt.user, got, tt.want)
		}
	}
}

func TestGenerateConversationFallback(t *testing.T) {
	p := newPipeline(nil)

	conv, err := p.GenerateConversation(context.Background(), testProfile(), ledger.TopicFood, "")
	if err != nil {
		t.Fatalf("GenerateConversation() error = %v", err)
	}
	if len(conv.Lines) == 0 {
		t.Error("fallback conversation has no lines")
	}
	if len(conv.Questions) == 0 {
		t.Error("fallback conversation has no questions")
	}
	if conv.Topic != ledger.TopicFood {
		t.Errorf("Topic = %s, want food", conv.Topic)
	}
}

func TestGenerateArticleRaisesWordCountFloor(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("down")},
	})
	p := newPipeline(provider)

	article, err := p.GenerateArticle(context.Background(), testProfile(), ledger.TopicCulture, ledger.FocusReading, 50)
	if err != nil {
		t.Fatalf("GenerateArticle() error = %v", err)
	}
	if article.WordCount < 200 {
		t.Errorf("fallback article WordCount = %d, want >= 200", article.WordCount)
	}
	if len(article.Questions) < 5 {
		t.Errorf("fallback article has %d questions, want >= 5", len(article.Questions))
	}
}

func TestGenerateArticleQuestionsClampsRange(t *testing.T) {
	p := newPipeline(nil)
	article := &Article{
		Title:      "A Morning at the Market",
		Body:       fallbackArticleBody,
		Topic:      ledger.TopicCulture,
		Difficulty: ledger.DifficultyIntermediate,
	}

	questions, err := p.GenerateArticleQuestions(context.Background(), article, 1)
	if err != nil {
		t.Fatalf("GenerateArticleQuestions() error = %v", err)
	}
	if len(questions) != 5 {
		t.Errorf("len(questions) for count=1 is %d, want clamped to 5", len(questions))
	}
	for _, q := range questions {
		if q.Focus != ledger.FocusReading {
			t.Errorf("question focus = %s, want reading", q.Focus)
		}
	}
}

func TestWordCountFixtureArticle(t *testing.T) {
	if n := countWords(fallbackArticleBody); n < 200 {
		t.Errorf("fixture article is %d words, want >= 200", n)
	}
}
