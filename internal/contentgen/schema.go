package contentgen

import "github.com/nehal/linguo/internal/llm"

// questionProperties is the shared question shape used by every schema
// that returns quiz questions.
var questionProperties = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"type": map[string]any{
			"type":        "string",
			"enum":        []any{"multiple_choice", "fill_blank", "true_false", "matching", "translation", "conversation"},
			"description": "How the learner answers the question",
		},
		"question": map[string]any{
			"type":        "string",
			"description": "The question prompt shown to the learner",
		},
		"correct_answer": map[string]any{
			"type":        "string",
			"description": "The correct answer. For choice questions: the text of the correct option.",
		},
		"options": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "string",
			},
			"description": "Exactly 4 options for choice questions, empty otherwise. Exactly one option is correct.",
		},
		"explanation": map[string]any{
			"type":        "string",
			"description": "Why the correct answer is correct, in the learner's native language",
		},
	},
	"required":             []any{"type", "question", "correct_answer", "options", "explanation"},
	"additionalProperties": false,
}

// QuizSchema defines the JSON schema for quiz generation responses.
var QuizSchema = &llm.Schema{
	Name:        "language-quiz",
	Description: "A language practice quiz with questions, answers and explanations",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "A short, engaging title for the quiz",
			},
			"questions": map[string]any{
				"type":  "array",
				"items": questionProperties,
			},
		},
		"required":             []any{"title", "questions"},
		"additionalProperties": false,
	},
}

// VerifySchema defines the JSON schema for answer verification responses.
var VerifySchema = &llm.Schema{
	Name:        "answer-verification",
	Description: "A judgment on whether a free-form answer is correct",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"is_correct": map[string]any{
				"type":        "boolean",
				"description": "Whether the answer conveys the same meaning as the expected answer",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "Why the answer is correct or incorrect",
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "Short encouraging feedback for the learner",
			},
		},
		"required":             []any{"is_correct", "explanation", "feedback"},
		"additionalProperties": false,
	},
}

// ConversationSchema defines the JSON schema for dialogue generation
// responses.
var ConversationSchema = &llm.Schema{
	Name:        "practice-conversation",
	Description: "A two-speaker dialogue in the target language with comprehension questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type": "string",
			},
			"scenario": map[string]any{
				"type":        "string",
				"description": "One sentence describing the situation of the dialogue",
			},
			"lines": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"speaker": map[string]any{
							"type": "string",
						},
						"text": map[string]any{
							"type":        "string",
							"description": "The line in the target language",
						},
						"translation": map[string]any{
							"type":        "string",
							"description": "The line translated into the learner's native language",
						},
					},
					"required":             []any{"speaker", "text", "translation"},
					"additionalProperties": false,
				},
			},
			"questions": map[string]any{
				"type":  "array",
				"items": questionProperties,
			},
		},
		"required":             []any{"title", "scenario", "lines", "questions"},
		"additionalProperties": false,
	},
}

// ArticleSchema defines the JSON schema for article generation responses.
var ArticleSchema = &llm.Schema{
	Name:        "reading-article",
	Description: "A reading passage in the target language with comprehension questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type": "string",
			},
			"body": map[string]any{
				"type":        "string",
				"description": "The article text in the target language, meeting the requested word count",
			},
			"questions": map[string]any{
				"type":  "array",
				"items": questionProperties,
			},
		},
		"required":             []any{"title", "body", "questions"},
		"additionalProperties": false,
	},
}

// ArticleQuestionsSchema defines the JSON schema for generating
// questions over an existing article.
var ArticleQuestionsSchema = &llm.Schema{
	Name:        "article-questions",
	Description: "Comprehension questions for a given reading passage",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":  "array",
				"items": questionProperties,
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
