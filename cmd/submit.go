package cmd

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/grovetools/widgets/config"
	"github.com/grovetools/widgets/form"
	"github.com/grovetools/widgets/page"
	"github.com/grovetools/widgets/schedule"
	"github.com/grovetools/widgets/tui/components/contactform"
)

// simulateSubmit feeds inputs to a form controller running on a wall-clock
// scheduler, submits, and waits for the simulated call to settle. Tasks are
// executed on the calling goroutine.
func simulateSubmit(ctx context.Context, cfg *config.Config, inputs map[form.Field]string, outcome form.OutcomeProvider, logger *logrus.Entry) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	tasks := make(chan schedule.Task, 8)
	timer := schedule.NewTimer(func(task schedule.Task) {
		select {
		case tasks <- task:
		case <-ctx.Done():
		}
	})

	if outcome == nil && cfg.Form.SuccessRate != nil {
		outcome = form.NewRandomOutcome(*cfg.Form.SuccessRate)
	}

	sent := false
	elements := form.DefaultElements()
	ctl, err := form.New(form.Options{
		Elements:  elements,
		Page:      page.NewSet(elements.IDs()...),
		Scheduler: timer,
		Rules:     contactform.RulesFromConfig(cfg.Form),
		Timing:    contactform.TimingFromConfig(cfg.Form),
		Outcome:   outcome,
		Reload:    func() { sent = true },
		Logger:    logger,
	})
	if err != nil {
		return err
	}
	defer ctl.Reset()

	for _, f := range form.Fields {
		ctl.Input(f, inputs[f])
	}
	if err := ctl.Submit(); err != nil {
		return err
	}

	for ctl.State().Submitting {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case task := <-tasks:
			task()
		}
	}
	if sent {
		return nil
	}
	return ctl.LastError()
}
