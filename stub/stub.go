package stub

// Noop accepts any arguments, ignores them all, and returns nil. It cannot
// fail and performs no work.
func Noop(_ ...any) any { return nil }
