package cmd

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/grovetools/widgets/config"
	"github.com/grovetools/widgets/errors"
	"github.com/grovetools/widgets/form"
)

func validInputs() map[form.Field]string {
	return map[form.Field]string{
		form.FieldFullName: "Ada Lovelace",
		form.FieldEmail:    "ada@example.com",
		form.FieldSubject:  "Engine notes",
		form.FieldMessage:  "The analytical engine weaves patterns.",
	}
}

func fastConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Form.SubmitDelay = config.Duration(10 * time.Millisecond)
	cfg.SetDefaults()
	return cfg
}

func TestSimulateSubmit(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	tests := []struct {
		name     string
		outcome  form.OutcomeProvider
		inputs   map[form.Field]string
		wantCode errors.ErrorCode
	}{
		{name: "success", outcome: form.FixedOutcome(true), inputs: validInputs()},
		{name: "failure", outcome: form.FixedOutcome(false), inputs: validInputs(), wantCode: errors.ErrCodeSubmitFailed},
		{name: "invalid", outcome: form.FixedOutcome(true), inputs: map[form.Field]string{}, wantCode: errors.ErrCodeValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			err := simulateSubmit(ctx, fastConfig(), tt.inputs, tt.outcome, testLogger())
			if tt.wantCode == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantCode), "got %v", err)
		})
	}
}

func TestSimulateSubmitCancelled(t *testing.T) {
	cfg := &config.Config{}
	cfg.Form.SubmitDelay = config.Duration(time.Hour)
	cfg.SetDefaults()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := simulateSubmit(ctx, cfg, validInputs(), form.FixedOutcome(true), testLogger())
	assert.ErrorIs(t, err, context.Canceled)
}
