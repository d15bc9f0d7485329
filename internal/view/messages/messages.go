package messages

import "github.com/jobdeck/flaggate/pkg/flags"

// FlagChanged is delivered when the evaluator reports a value
// transition, either from a toggle in this session or a reload.
type FlagChanged struct {
	Change flags.Change
}

// SubscriptionClosed is delivered when the evaluator stops.
type SubscriptionClosed struct {
}
