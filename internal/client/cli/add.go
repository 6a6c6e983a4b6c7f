package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/TJZine/CertPrep.ai-sub000/internal/models"
)

// RunAddQuiz creates an empty quiz with the given title. Question
// authoring happens in the app; the command exists so a fresh install has
// something to sync.
func (c *Cli) RunAddQuiz(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: add-quiz <title>")
	}

	quiz := &models.Quiz{
		Title:         strings.Join(args, " "),
		SchemaVersion: 1,
	}

	if err := c.dataService.AddQuiz(ctx, c.userID, quiz); err != nil {
		return fmt.Errorf("failed to add quiz: %w", err)
	}

	fmt.Printf("Quiz created: %s (%s)\n", quiz.Title, quiz.ID)
	fmt.Println("Run 'certprep sync quizzes' to push it to the server.")
	return nil
}
