package navigation

import (
	"context"

	"github.com/looplab/fsm"

	"folio/internal/app/errors"
	"folio/internal/config/logger"
)

// eventPrefix names the per-view transition events, e.g. open_skills
const eventPrefix = "open_"

//go:generate mockgen -source=navigator.go -destination=navigator_mock.go -package=navigation

// Navigator provides view switching functionality
type Navigator interface {
	// CurrentView returns the active view
	CurrentView() View
	// SwitchTo changes to the specified view
	SwitchTo(view View) error
	// Next moves to the following view, wrapping around
	Next()
	// Prev moves to the preceding view, wrapping around
	Prev()
}

type navigator struct {
	fsm *fsm.FSM
	log logger.Logger
}

// NewNavigator creates a new navigator starting with the home view
func NewNavigator(log logger.Logger) Navigator {
	log = log.WithComponent("NAV")

	states := make([]string, 0, len(Views))
	for _, v := range Views {
		states = append(states, v.String())
	}

	events := make(fsm.Events, 0, len(Views))
	for _, v := range Views {
		events = append(events, fsm.EventDesc{Name: eventName(v), Src: states, Dst: v.String()})
	}

	return &navigator{
		fsm: fsm.NewFSM(
			ViewHome.String(),
			events,
			fsm.Callbacks{
				"after_event": func(ctx context.Context, e *fsm.Event) {
					log.Debug().Msgf("VIEW %s → %s", e.Src, e.Dst)
				},
			},
		),
		log: log,
	}
}

func eventName(v View) string {
	return eventPrefix + v.String()
}

func (n *navigator) CurrentView() View {
	view, _ := ParseView(n.fsm.Current())
	return view
}

func (n *navigator) SwitchTo(view View) error {
	if !view.Valid() {
		return errors.ErrUnknownView
	}

	if !n.CurrentView().Valid() {
		n.log.Warn().Msgf("Selector held unknown state '%s', resetting to %s", n.fsm.Current(), view)
		n.fsm.SetState(view.String())

		return nil
	}

	err := n.fsm.Event(context.Background(), eventName(view))

	var noTransition fsm.NoTransitionError
	if err != nil && !errors.As(err, &noTransition) {
		n.log.Error().Err(err).Msgf("Failed to switch to %s", view)
		return err
	}

	return nil
}

func (n *navigator) Next() {
	n.step(1)
}

func (n *navigator) Prev() {
	n.step(-1)
}

// step moves by delta positions; an out-of-set state restarts from home
func (n *navigator) step(delta int) {
	current := n.CurrentView()
	if !current.Valid() {
		current = ViewHome
	}

	count := len(Views)
	next := Views[((int(current)+delta)%count+count)%count]

	_ = n.SwitchTo(next)
}
