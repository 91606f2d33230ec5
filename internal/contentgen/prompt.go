package contentgen

import (
	"fmt"
	"strings"

	"github.com/nehal/linguo/internal/ledger"
)

const quizSystemPrompt = `You are a language tutor creating practice quizzes for adult learners.

Rules:
- Generate questions in the learner's target language at the requested difficulty.
- Every question must be self-contained and unambiguous.
- Explanations are written in the learner's native language.
- For choice questions, provide exactly 4 options where exactly one is correct. Distractors should reflect common learner mistakes, not random words.
- For fill_blank questions, mark the blank with ___ in the question text.
- Vary question types across the quiz instead of repeating one type.
- Match the requested topic and skill focus.`

const mistakeQuizSystemPrompt = `You are a language tutor building a review quiz from a learner's past mistakes.

Rules:
- Produce exactly one question per supplied mistake, in the same order.
- Each question must test the same underlying concept as its source mistake but with varied surface wording, so the learner cannot answer from memory of the original question.
- Where the question type supports distractors, include the learner's original wrong answer as one of the options.
- Keep each question at the difficulty of its source mistake.
- Explanations are written in the learner's native language and should address the original confusion.`

const verifySystemPrompt = `You are a language tutor grading a single free-form answer.

Rules:
- Judge meaning, not surface form: accept synonyms, minor typos, and alternate phrasings that convey the expected answer.
- Reject answers that change the meaning or answer a different question.
- The explanation states why the answer is right or wrong.
- The feedback is one short, encouraging sentence addressed to the learner.`

const conversationSystemPrompt = `You are a language tutor writing a short practice dialogue for an adult learner.

Rules:
- Write 6 to 10 turns between two named speakers, entirely in the target language, at the requested difficulty.
- Each line carries a translation into the learner's native language.
- The dialogue must be natural for the given scenario, not a vocabulary list in disguise.
- Attach 3 to 5 comprehension questions about the dialogue.`

const articleSystemPrompt = `You are a language tutor writing a reading passage for an adult learner.

Rules:
- Write in the target language at the requested difficulty and at least the requested word count.
- Use complete paragraphs, no headings or bullet lists.
- The passage must be factually plausible and culturally neutral.
- Attach comprehension questions that can be answered from the passage alone.`

const articleQuestionsSystemPrompt = `You are a language tutor writing comprehension questions for an existing reading passage.

Rules:
- Every question must be answerable from the passage alone.
- Produce exactly the requested number of questions.
- For choice questions, distractors must be plausible given the passage.
- Explanations are written in the learner's native language.`

func writeProfile(b *strings.Builder, profile LearnerProfile) {
	fmt.Fprintf(b, "Native language: %s\n", profile.NativeLanguage)
	fmt.Fprintf(b, "Target language: %s\n", profile.TargetLanguage)
	fmt.Fprintf(b, "Difficulty: %s\n", profile.Difficulty)
	if len(profile.Interests) > 0 {
		fmt.Fprintf(b, "Interests: %s\n", strings.Join(profile.Interests, ", "))
	}
}

func buildQuizUserMessage(profile LearnerProfile, topic ledger.Topic, focus ledger.Focus, count int) string {
	var b strings.Builder
	writeProfile(&b, profile)
	fmt.Fprintf(&b, "Topic: %s\n", topic)
	fmt.Fprintf(&b, "Skill focus: %s\n", focus)
	fmt.Fprintf(&b, "\nGenerate a quiz with exactly %d questions.", count)
	return b.String()
}

func buildMistakeQuizUserMessage(profile LearnerProfile, mistakes []ledger.MistakeRecord) string {
	var b strings.Builder
	writeProfile(&b, profile)

	b.WriteString("\nPast mistakes, oldest confusion first:\n")
	for i, m := range mistakes {
		fmt.Fprintf(&b, "%d. Question: %s\n", i+1, m.Question)
		fmt.Fprintf(&b, "   Correct answer: %s\n", m.CorrectAnswer)
		fmt.Fprintf(&b, "   Learner answered: %s\n", m.UserAnswer)
		fmt.Fprintf(&b, "   Type: %s, difficulty: %s, topic: %s, focus: %s\n", m.Type, m.Difficulty, m.Topic, m.Focus)
	}

	fmt.Fprintf(&b, "\nGenerate exactly %d review questions, one per mistake, in order.", len(mistakes))
	return b.String()
}

func buildVerifyUserMessage(question, correctAnswer, userAnswer string, qType ledger.QuestionType) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Question type: %s\n", qType)
	fmt.Fprintf(&b, "Question: %s\n", question)
	fmt.Fprintf(&b, "Expected answer: %s\n", correctAnswer)
	fmt.Fprintf(&b, "Learner's answer: %s\n", userAnswer)
	return b.String()
}

func buildConversationUserMessage(profile LearnerProfile, topic ledger.Topic, scenario string) string {
	var b strings.Builder
	writeProfile(&b, profile)
	fmt.Fprintf(&b, "Topic: %s\n", topic)
	if scenario != "" {
		fmt.Fprintf(&b, "Scenario: %s\n", scenario)
	}
	return b.String()
}

func buildArticleUserMessage(profile LearnerProfile, topic ledger.Topic, focus ledger.Focus, wordCount int) string {
	var b strings.Builder
	writeProfile(&b, profile)
	fmt.Fprintf(&b, "Topic: %s\n", topic)
	fmt.Fprintf(&b, "Skill focus: %s\n", focus)
	fmt.Fprintf(&b, "Minimum word count: %d\n", wordCount)
	return b.String()
}

func buildArticleQuestionsUserMessage(article *Article, count int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Passage title: %s\n", article.Title)
	fmt.Fprintf(&b, "Passage:\n%s\n", article.Body)
	fmt.Fprintf(&b, "\nGenerate exactly %d comprehension questions.", count)
	return b.String()
}
