package cli

import (
	"context"
	"fmt"

	"github.com/TJZine/CertPrep.ai-sub000/internal/models"
)

// RunList prints local records of one resource type.
func (c *Cli) RunList(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: list <resource> (quizzes, results, learning_states)")
	}

	switch args[0] {
	case models.ResourceQuizzes:
		return c.listQuizzes(ctx)
	case models.ResourceResults:
		return c.listResults(ctx)
	case models.ResourceLearningStates:
		return c.listLearningStates(ctx)
	default:
		return fmt.Errorf("unknown resource %q", args[0])
	}
}

func (c *Cli) listQuizzes(ctx context.Context) error {
	quizzes, err := c.dataService.ListQuizzes(ctx, c.userID)
	if err != nil {
		return fmt.Errorf("failed to list quizzes: %w", err)
	}

	if len(quizzes) == 0 {
		fmt.Println("No quizzes found.")
		return nil
	}

	fmt.Printf("Quizzes (%d):\n\n", len(quizzes))
	for _, quiz := range quizzes {
		fmt.Printf("  %s\n", quiz.Title)
		fmt.Printf("    ID:        %s\n", quiz.ID)
		fmt.Printf("    Questions: %d\n", len(quiz.Questions))
		if len(quiz.Tags) > 0 {
			fmt.Printf("    Tags:      %v\n", quiz.Tags)
		}
		fmt.Println()
	}
	return nil
}

func (c *Cli) listResults(ctx context.Context) error {
	results, err := c.dataService.ListResults(ctx, c.userID)
	if err != nil {
		return fmt.Errorf("failed to list results: %w", err)
	}

	if len(results) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	fmt.Printf("Results (%d):\n\n", len(results))
	for _, result := range results {
		fmt.Printf("  %s\n", result.ID)
		fmt.Printf("    Quiz:     %s\n", result.QuizID)
		fmt.Printf("    Taken at: %s\n", result.TakenAt.Local().Format("2006-01-02 15:04"))
		fmt.Printf("    Score:    %.1f\n", result.Score)
		fmt.Println()
	}
	return nil
}

func (c *Cli) listLearningStates(ctx context.Context) error {
	states, err := c.dataService.ListLearningStates(ctx, c.userID)
	if err != nil {
		return fmt.Errorf("failed to list learning states: %w", err)
	}

	if len(states) == 0 {
		fmt.Println("No learning states found.")
		return nil
	}

	fmt.Printf("Learning states (%d):\n\n", len(states))
	for _, state := range states {
		fmt.Printf("  %s\n", state.Subject)
		fmt.Printf("    Stage:    %d/%d\n", state.Stage, models.MaxStage)
		fmt.Printf("    Streak:   %d\n", state.ConsecutiveCorrect)
		fmt.Printf("    Next due: %s\n", state.NextDueAt.Local().Format("2006-01-02"))
		fmt.Println()
	}
	return nil
}
