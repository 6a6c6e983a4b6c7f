package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuizClone(t *testing.T) {
	original := &Quiz{
		ID:    "q1",
		Title: "Subnetting",
		Questions: []Question{
			{ID: "que1", Prompt: "What is /26?", Options: []string{"64", "32"}},
		},
		Tags: []string{"networking"},
	}

	clone := original.Clone()
	require.Equal(t, original, clone)

	clone.Questions[0].Options[0] = "128"
	clone.Tags[0] = "changed"

	assert.Equal(t, "64", original.Questions[0].Options[0])
	assert.Equal(t, "networking", original.Tags[0])
}

func TestResultClone(t *testing.T) {
	original := &Result{
		ID:        "r1",
		QuizID:    "q1",
		Score:     87.5,
		Answers:   map[string]string{"que1": "64"},
		Flagged:   map[string]bool{"que2": true},
		Breakdown: map[string]float64{"networking": 87.5},
	}

	clone := original.Clone()
	require.Equal(t, original, clone)

	clone.Answers["que1"] = "32"
	clone.Flagged["que2"] = false
	clone.Breakdown["networking"] = 0

	assert.Equal(t, "64", original.Answers["que1"])
	assert.True(t, original.Flagged["que2"])
	assert.Equal(t, 87.5, original.Breakdown["networking"])
}

func TestLearningStateValidate(t *testing.T) {
	tests := []struct {
		name    string
		stage   int
		wantErr error
	}{
		{name: "min stage", stage: MinStage},
		{name: "max stage", stage: MaxStage},
		{name: "below range", stage: 0, wantErr: ErrStageOutOfRange},
		{name: "above range", stage: 6, wantErr: ErrStageOutOfRange},
		{name: "negative", stage: -1, wantErr: ErrStageOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := &LearningState{Subject: "subnetting", Stage: tt.stage}
			err := state.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
