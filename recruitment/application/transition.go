package application

import "slices"

// TransitionPolicy decides whether a status change is allowed
type TransitionPolicy interface {
	Allows(from, to ApplicationStatus) bool
}

type anyTransition struct{}

func (anyTransition) Allows(_, _ ApplicationStatus) bool { return true }

// AnyTransition accepts every change between valid statuses
var AnyTransition TransitionPolicy = anyTransition{}

// TransitionTable lists the allowed targets per current status.
// Setting the current status again is always allowed.
type TransitionTable map[ApplicationStatus][]ApplicationStatus

func (t TransitionTable) Allows(from, to ApplicationStatus) bool {
	if from == to {
		return true
	}
	return slices.Contains(t[from], to)
}

// DefaultTransitionTable is the forward-only review pipeline.
// accepted, rejected and withdrawn are terminal.
var DefaultTransitionTable = TransitionTable{
	ApplicationStatusSubmitted: {
		ApplicationStatusReviewed,
		ApplicationStatusInterviewScheduled,
		ApplicationStatusRejected,
		ApplicationStatusWithdrawn,
	},
	ApplicationStatusReviewed: {
		ApplicationStatusInterviewScheduled,
		ApplicationStatusOffered,
		ApplicationStatusRejected,
		ApplicationStatusWithdrawn,
	},
	ApplicationStatusInterviewScheduled: {
		ApplicationStatusInterviewCompleted,
		ApplicationStatusRejected,
		ApplicationStatusWithdrawn,
	},
	ApplicationStatusInterviewCompleted: {
		ApplicationStatusOffered,
		ApplicationStatusRejected,
		ApplicationStatusWithdrawn,
	},
	ApplicationStatusOffered: {
		ApplicationStatusAccepted,
		ApplicationStatusRejected,
		ApplicationStatusWithdrawn,
	},
}
