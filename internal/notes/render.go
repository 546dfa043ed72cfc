package notes

import (
	"fmt"
	"strings"
)

const quizTemplate = `**Quiz Questions:**

1. What is the main topic?
2. Name 3 key points.
3. What is the most important takeaway?

**Use these notes to answer:** %s...`

// RenderQuiz builds the fixed quiz scaffold over the first slice of the notes.
func RenderQuiz(notes string) string {
	return fmt.Sprintf(quizTemplate, runePrefix(notes, 300))
}

// RenderFlashcards turns the first five sentences of the notes into
// question/answer pairs, the question being a trimmed preview.
func RenderFlashcards(notes string) string {
	lines := strings.Split(notes, ". ")
	if len(lines) > 5 {
		lines = lines[:5]
	}

	cards := make([]string, 0, len(lines))
	for i, line := range lines {
		cards = append(cards, fmt.Sprintf("**Q%d:** %s...\n**A%d:** %s", i+1, runePrefix(line, 80), i+1, line))
	}

	return strings.Join(cards, "\n\n")
}

func runePrefix(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
