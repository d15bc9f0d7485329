package flags

//go:generate mockgen -source=service.go -destination=mock/service.go

// Service is the evaluation surface consumed by UI code, the HTTP
// handlers and the gate wrapper.
type Service interface {
	IsEnabled(flag Flag) bool
	IsEnabledForUser(flag Flag, userID string) bool
	Update(flag Flag, enabled bool)
	Snapshot() map[Flag]bool
	Rollout(flag Flag) int
	SubscribeToChanges() ChangeSubscription
}

// Change describes a single flag value transition.
type Change struct {
	Flag    Flag
	Enabled bool
}

type ChangeSubscription chan Change
