package system

import "github.com/milk9111/rotate/ecs"

// FrameListener is called once at the start of every rendered frame. It
// returns false to ask the host to stop rendering.
type FrameListener interface {
	FrameStarted(dt float64) (bool, error)
}

// FrameListenerFunc adapts a function to FrameListener.
type FrameListenerFunc func(dt float64) (bool, error)

func (f FrameListenerFunc) FrameStarted(dt float64) (bool, error) {
	return f(dt)
}

// Loop dispatches frames to its listeners in registration order.
type Loop struct {
	world     *ecs.World
	listeners []FrameListener
}

func NewLoop(w *ecs.World, listeners ...FrameListener) *Loop {
	l := &Loop{world: w}
	for _, fl := range listeners {
		l.AddListener(fl)
	}
	return l
}

func (l *Loop) AddListener(fl FrameListener) {
	if fl == nil {
		return
	}
	l.listeners = append(l.listeners, fl)
}

// Step runs one frame. Events pushed by the previous frame are dropped first,
// so the ones pushed now stay readable until the next Step. Every listener
// sees the frame even when an earlier one asked to stop; the first error
// aborts the frame.
func (l *Loop) Step(dt float64) (bool, error) {
	if l.world != nil {
		l.world.EndFrame()
	}
	keepGoing := true
	for _, fl := range l.listeners {
		ok, err := fl.FrameStarted(dt)
		if err != nil {
			return false, err
		}
		if !ok {
			keepGoing = false
		}
	}
	return keepGoing, nil
}
