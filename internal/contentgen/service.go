package contentgen

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/nehal/linguo/internal/ledger"
	"github.com/nehal/linguo/internal/llm"
)

// ErrNoMistakes is returned by GenerateMistakeQuiz when there is
// nothing to review. It is a domain condition, not a generation
// failure.
var ErrNoMistakes = errors.New("no mistakes to review")

// Pipeline produces quizzes, conversations and articles, preferring
// the external generator and degrading to deterministic local content
// whenever it is unavailable or fails. A generation call makes at most
// one external attempt; any provider error resolves to fallback
// content, never to a bare failure.
type Pipeline struct {
	provider llm.Provider
	cfg      Config
	now      func() time.Time
}

// PipelineOption configures a Pipeline.
type PipelineOption func(*Pipeline)

// WithClock overrides the time source. Used by tests.
func WithClock(now func() time.Time) PipelineOption {
	return func(p *Pipeline) { p.now = now }
}

// NewPipeline creates a generation pipeline. A nil provider puts the
// pipeline in offline mode: every call is served by the fallback
// generator.
func NewPipeline(provider llm.Provider, cfg Config, opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		provider: provider,
		cfg:      cfg,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// questionOutput is the raw generator question shape before assembly.
type questionOutput struct {
	Type          string   `json:"type"`
	Question      string   `json:"question"`
	CorrectAnswer string   `json:"correct_answer"`
	Options       []string `json:"options"`
	Explanation   string   `json:"explanation"`
}

type quizOutput struct {
	Title     string           `json:"title"`
	Questions []questionOutput `json:"questions"`
}

// GenerateQuiz produces a quiz of up to count questions for the given
// topic and focus.
func (p *Pipeline) GenerateQuiz(ctx context.Context, profile LearnerProfile, topic ledger.Topic, focus ledger.Focus, count int) (*Quiz, error) {
	if p.provider == nil {
		return p.fallbackQuiz(profile, topic, focus, count), nil
	}

	ctx = llm.WithPurpose(ctx, "quiz-gen")
	req := llm.Request{
		System: quizSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildQuizUserMessage(profile, topic, focus, count)},
		},
		Schema:      QuizSchema,
		MaxTokens:   p.cfg.MaxTokens,
		Temperature: p.cfg.Temperature,
	}

	resp, err := p.provider.Generate(ctx, req)
	if err != nil {
		return p.fallbackQuiz(profile, topic, focus, count), nil
	}

	var out quizOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return p.fallbackQuiz(profile, topic, focus, count), nil
	}

	questions := make([]QuizQuestion, 0, len(out.Questions))
	for _, q := range out.Questions {
		questions = append(questions, QuizQuestion{
			ID:            uuid.NewString(),
			Type:          ledger.QuestionType(q.Type),
			Question:      q.Question,
			CorrectAnswer: q.CorrectAnswer,
			Options:       q.Options,
			Explanation:   q.Explanation,
			Difficulty:    profile.Difficulty,
			Topic:         topic,
			Focus:         focus,
		})
	}
	if len(questions) > count {
		questions = questions[:count]
	}
	if len(questions) == 0 {
		return p.fallbackQuiz(profile, topic, focus, count), nil
	}

	return p.assembleQuiz(out.Title, questions, topic, profile.Difficulty, nil), nil
}

// GenerateMistakeQuiz builds a review quiz from recorded mistakes, one
// question per source mistake, capped by the configured maximum. An
// empty mistake list returns ErrNoMistakes.
func (p *Pipeline) GenerateMistakeQuiz(ctx context.Context, profile LearnerProfile, mistakes []ledger.MistakeRecord) (*Quiz, error) {
	if len(mistakes) == 0 {
		return nil, ErrNoMistakes
	}
	if len(mistakes) > p.cfg.MaxMistakeQuestions {
		mistakes = mistakes[:p.cfg.MaxMistakeQuestions]
	}

	if p.provider == nil {
		return p.fallbackMistakeQuiz(mistakes), nil
	}

	ctx = llm.WithPurpose(ctx, "mistake-quiz-gen")
	req := llm.Request{
		System: mistakeQuizSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildMistakeQuizUserMessage(profile, mistakes)},
		},
		Schema:      QuizSchema,
		MaxTokens:   p.cfg.MaxTokens,
		Temperature: p.cfg.Temperature,
	}

	resp, err := p.provider.Generate(ctx, req)
	if err != nil {
		return p.fallbackMistakeQuiz(mistakes), nil
	}

	var out quizOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return p.fallbackMistakeQuiz(mistakes), nil
	}
	if len(out.Questions) == 0 {
		return p.fallbackMistakeQuiz(mistakes), nil
	}

	// One question per mistake, in order. Extra generated questions are
	// dropped so traceability holds.
	n := len(out.Questions)
	if n > len(mistakes) {
		n = len(mistakes)
	}
	questions := make([]QuizQuestion, n)
	sourceIDs := make([]string, n)
	for i := 0; i < n; i++ {
		q := out.Questions[i]
		src := mistakes[i]
		questions[i] = QuizQuestion{
			ID:            uuid.NewString(),
			Type:          ledger.QuestionType(q.Type),
			Question:      q.Question,
			CorrectAnswer: q.CorrectAnswer,
			Options:       q.Options,
			Explanation:   q.Explanation,
			Difficulty:    src.Difficulty,
			Topic:         src.Topic,
			Focus:         src.Focus,
		}
		sourceIDs[i] = src.ID
	}

	title := out.Title
	if title == "" {
		title = "Review your mistakes"
	}
	return p.assembleQuiz(title, questions, mistakes[0].Topic, mistakes[0].Difficulty, sourceIDs), nil
}

// VerifyAnswer judges a free-form answer. On any provider failure it
// falls back to the canonical trimmed case-insensitive comparator.
func (p *Pipeline) VerifyAnswer(ctx context.Context, question, correctAnswer, userAnswer string, qType ledger.QuestionType) (*Verification, error) {
	if p.provider == nil {
		return fallbackVerification(correctAnswer, userAnswer), nil
	}

	ctx = llm.WithPurpose(ctx, "verify-answer")
	req := llm.Request{
		System: verifySystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildVerifyUserMessage(question, correctAnswer, userAnswer, qType)},
		},
		Schema:      VerifySchema,
		MaxTokens:   1024,
		Temperature: 0,
	}

	resp, err := p.provider.Generate(ctx, req)
	if err != nil {
		return fallbackVerification(correctAnswer, userAnswer), nil
	}

	var out Verification
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return fallbackVerification(correctAnswer, userAnswer), nil
	}
	return &out, nil
}

type conversationOutput struct {
	Title     string             `json:"title"`
	Scenario  string             `json:"scenario"`
	Lines     []ConversationLine `json:"lines"`
	Questions []questionOutput   `json:"questions"`
}

// GenerateConversation produces a practice dialogue with comprehension
// questions for the given topic.
func (p *Pipeline) GenerateConversation(ctx context.Context, profile LearnerProfile, topic ledger.Topic, scenario string) (*Conversation, error) {
	if p.provider == nil {
		return p.fallbackConversation(profile, topic), nil
	}

	ctx = llm.WithPurpose(ctx, "conversation-gen")
	req := llm.Request{
		System: conversationSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildConversationUserMessage(profile, topic, scenario)},
		},
		Schema:      ConversationSchema,
		MaxTokens:   p.cfg.MaxTokens,
		Temperature: p.cfg.Temperature,
	}

	resp, err := p.provider.Generate(ctx, req)
	if err != nil {
		return p.fallbackConversation(profile, topic), nil
	}

	var out conversationOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return p.fallbackConversation(profile, topic), nil
	}
	if len(out.Lines) == 0 {
		return p.fallbackConversation(profile, topic), nil
	}

	return &Conversation{
		ID:        uuid.NewString(),
		Title:     out.Title,
		Scenario:  out.Scenario,
		Lines:     out.Lines,
		Questions: p.adoptQuestions(out.Questions, profile.Difficulty, topic, ledger.FocusListening),
		Topic:     topic,
		CreatedAt: p.now(),
	}, nil
}

type articleOutput struct {
	Title     string           `json:"title"`
	Body      string           `json:"body"`
	Questions []questionOutput `json:"questions"`
}

// GenerateArticle produces a reading passage of at least wordCount
// words with comprehension questions. Requests below the configured
// minimum are raised to it.
func (p *Pipeline) GenerateArticle(ctx context.Context, profile LearnerProfile, topic ledger.Topic, focus ledger.Focus, wordCount int) (*Article, error) {
	if wordCount < p.cfg.MinArticleWords {
		wordCount = p.cfg.MinArticleWords
	}

	if p.provider == nil {
		return p.fallbackArticle(profile, topic, focus), nil
	}

	ctx = llm.WithPurpose(ctx, "article-gen")
	req := llm.Request{
		System: articleSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildArticleUserMessage(profile, topic, focus, wordCount)},
		},
		Schema:      ArticleSchema,
		MaxTokens:   p.cfg.MaxTokens,
		Temperature: p.cfg.Temperature,
	}

	resp, err := p.provider.Generate(ctx, req)
	if err != nil {
		return p.fallbackArticle(profile, topic, focus), nil
	}

	var out articleOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return p.fallbackArticle(profile, topic, focus), nil
	}
	if out.Body == "" {
		return p.fallbackArticle(profile, topic, focus), nil
	}

	article := &Article{
		ID:         uuid.NewString(),
		Title:      out.Title,
		Body:       out.Body,
		WordCount:  countWords(out.Body),
		Topic:      topic,
		Difficulty: profile.Difficulty,
		Focus:      focus,
		Questions:  p.adoptQuestions(out.Questions, profile.Difficulty, topic, ledger.FocusReading),
		CreatedAt:  p.now(),
	}
	return article, nil
}

// GenerateArticleQuestions produces count comprehension questions for
// an existing article. Count is clamped to the configured range.
func (p *Pipeline) GenerateArticleQuestions(ctx context.Context, article *Article, count int) ([]QuizQuestion, error) {
	if count < p.cfg.MinArticleQuestions {
		count = p.cfg.MinArticleQuestions
	}
	if count > p.cfg.MaxArticleQuestions {
		count = p.cfg.MaxArticleQuestions
	}

	if p.provider == nil {
		return p.fallbackArticleQuestions(article, count), nil
	}

	ctx = llm.WithPurpose(ctx, "article-questions")
	req := llm.Request{
		System: articleQuestionsSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildArticleQuestionsUserMessage(article, count)},
		},
		Schema:      ArticleQuestionsSchema,
		MaxTokens:   p.cfg.MaxTokens,
		Temperature: p.cfg.Temperature,
	}

	resp, err := p.provider.Generate(ctx, req)
	if err != nil {
		return p.fallbackArticleQuestions(article, count), nil
	}

	var out struct {
		Questions []questionOutput `json:"questions"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return p.fallbackArticleQuestions(article, count), nil
	}
	if len(out.Questions) == 0 {
		return p.fallbackArticleQuestions(article, count), nil
	}

	questions := p.adoptQuestions(out.Questions, article.Difficulty, article.Topic, ledger.FocusReading)
	if len(questions) > count {
		questions = questions[:count]
	}
	return questions, nil
}

// adoptQuestions converts raw generator questions into QuizQuestions
// tagged with the given classification.
func (p *Pipeline) adoptQuestions(raw []questionOutput, difficulty ledger.Difficulty, topic ledger.Topic, focus ledger.Focus) []QuizQuestion {
	out := make([]QuizQuestion, len(raw))
	for i, q := range raw {
		out[i] = QuizQuestion{
			ID:            uuid.NewString(),
			Type:          ledger.QuestionType(q.Type),
			Question:      q.Question,
			CorrectAnswer: q.CorrectAnswer,
			Options:       q.Options,
			Explanation:   q.Explanation,
			Difficulty:    difficulty,
			Topic:         topic,
			Focus:         focus,
		}
	}
	return out
}

func (p *Pipeline) assembleQuiz(title string, questions []QuizQuestion, topic ledger.Topic, difficulty ledger.Difficulty, sourceIDs []string) *Quiz {
	return &Quiz{
		ID:                uuid.NewString(),
		Title:             title,
		Questions:         questions,
		EstimatedDuration: time.Duration(len(questions)*p.cfg.SecondsPerQuestion) * time.Second,
		CreatedAt:         p.now(),
		Topic:             topic,
		Difficulty:        difficulty,
		SourceMistakeIDs:  sourceIDs,
	}
}

func countWords(s string) int {
	n := 0
	inWord := false
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r':
			inWord = false
		default:
			if !inWord {
				n++
				inWord = true
			}
		}
	}
	return n
}
