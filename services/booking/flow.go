package booking

import (
	"fmt"

	"decorquote/models"
)

// Action is a user action that may move the flow to another step.
type Action string

const (
	ActionProceed Action = models.ActionProceed
	ActionBack    Action = models.ActionBack
	ActionSubmit  Action = models.ActionSubmit
)

type stepAction struct {
	step   models.Step
	action Action
}

// Valid transitions:
//
//	[addons] --proceed--> [details]
//	[details] --back--> [addons]
//	[details] --submit--> (closed on success, unchanged on failure)
//
// Close is allowed from any step and is handled by the session service.
var transitions = map[stepAction]models.Step{
	{models.StepAddons, ActionProceed}: models.StepDetails,
	{models.StepDetails, ActionBack}:   models.StepAddons,
	{models.StepDetails, ActionSubmit}: models.StepDetails,
}

// nextStep returns the step reached by applying action on current.
func nextStep(current models.Step, action Action) (models.Step, error) {
	next, ok := transitions[stepAction{current, action}]
	if !ok {
		return current, newBookingError(ErrInvalidTransition, fmt.Sprintf("cannot %s from step %q", action, current))
	}
	return next, nil
}

// footerActions lists the controls rendered in the footer for a step.
func footerActions(step models.Step) []string {
	if step == models.StepDetails {
		return []string{models.ActionBack, models.ActionSubmit}
	}
	return []string{models.ActionProceed}
}

func requireStep(session *models.BookingSession, step models.Step, what string) error {
	if session.Step != step {
		return newBookingError(ErrInvalidTransition, fmt.Sprintf("%s is only available on the %s step", what, step))
	}
	return nil
}
