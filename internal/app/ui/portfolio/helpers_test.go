package portfolio

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/mock/gomock"

	"folio/internal/app/ui/navigation"
	"folio/internal/app/ui/sections"
	"folio/internal/config/logger"
	"folio/internal/content"
)

const (
	testWidth  = 100
	testHeight = 40
)

func newMockLogger(ctrl *gomock.Controller) *logger.MockLogger {
	log := logger.NewMockLogger(ctrl)
	log.EXPECT().WithComponent(gomock.Any()).Return(log).AnyTimes()
	log.EXPECT().Debug().Return(nil).AnyTimes()
	log.EXPECT().Info().Return(nil).AnyTimes()
	log.EXPECT().Warn().Return(nil).AnyTimes()
	log.EXPECT().Error().Return(nil).AnyTimes()

	return log
}

func newTestModel(t *testing.T, nav navigation.Navigator, p *content.Portfolio, prober *Prober) Model {
	t.Helper()

	ctrl := gomock.NewController(t)
	log := newMockLogger(ctrl)

	m := NewModel(context.Background(), nav, sections.NewRenderer(p, log), prober, log)
	m.now = func() time.Time { return time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC) }

	return m
}

func newSizedModel(t *testing.T, nav navigation.Navigator) Model {
	t.Helper()

	m := newTestModel(t, nav, content.Default(), nil)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: testWidth, Height: testHeight})

	return updated.(Model)
}

func newRealNavigator(t *testing.T) navigation.Navigator {
	t.Helper()

	return navigation.NewNavigator(newMockLogger(gomock.NewController(t)))
}

func runeKey(r string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(r)}
}

// collectMsgs runs cmd and any batched commands it yields
func collectMsgs(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	msg := cmd()

	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		if msg == nil {
			return nil
		}

		return []tea.Msg{msg}
	}

	var msgs []tea.Msg
	for _, c := range batch {
		msgs = append(msgs, collectMsgs(c)...)
	}

	return msgs
}
