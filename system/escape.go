package system

// KeySource reports whether the quit key is held.
type KeySource interface {
	EscapeDown() bool
}

// EscapeListener stops the loop once Escape is held.
type EscapeListener struct {
	keys KeySource
}

func NewEscapeListener(keys KeySource) *EscapeListener {
	return &EscapeListener{keys: keys}
}

func (l *EscapeListener) FrameStarted(float64) (bool, error) {
	return !l.keys.EscapeDown(), nil
}
