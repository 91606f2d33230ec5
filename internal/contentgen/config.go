package contentgen

// Config controls the behavior of the generation pipeline.
type Config struct {
	// MaxMistakeQuestions caps the size of a mistake-derived quiz.
	MaxMistakeQuestions int

	// MinArticleWords is the floor for generated article length.
	MinArticleWords int

	// MinArticleQuestions and MaxArticleQuestions bound the question
	// count for article comprehension.
	MinArticleQuestions int
	MaxArticleQuestions int

	// MaxTokens is the token budget for generator responses.
	MaxTokens int

	// Temperature controls generator output randomness (0.0-1.0).
	Temperature float64

	// SecondsPerQuestion drives the estimated quiz duration.
	SecondsPerQuestion int
}

// DefaultConfig returns the recommended pipeline settings.
func DefaultConfig() Config {
	return Config{
		MaxMistakeQuestions: 10,
		MinArticleWords:     200,
		MinArticleQuestions: 5,
		MaxArticleQuestions: 15,
		MaxTokens:           4096,
		Temperature:         0.7,
		SecondsPerQuestion:  30,
	}
}
