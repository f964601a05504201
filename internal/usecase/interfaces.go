package usecase

// Notifier is the transient toast queue. Implementations schedule
// auto-dismissal themselves; usecases only push.
type Notifier interface {
	Push(userID, message, severity string)
}
