package portfolio

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	apperrors "folio/internal/app/errors"
	"folio/internal/app/ui/components"
	"folio/internal/app/ui/navigation"
	"folio/internal/app/ui/sections"
	"folio/internal/content"
)

func Test_Update_ViewKeys(t *testing.T) {
	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected navigation.View
	}{
		{name: "1 opens home", msg: runeKey("1"), expected: navigation.ViewHome},
		{name: "h opens home", msg: runeKey("h"), expected: navigation.ViewHome},
		{name: "2 opens about", msg: runeKey("2"), expected: navigation.ViewAbout},
		{name: "a opens about", msg: runeKey("a"), expected: navigation.ViewAbout},
		{name: "3 opens skills", msg: runeKey("3"), expected: navigation.ViewSkills},
		{name: "s opens skills", msg: runeKey("s"), expected: navigation.ViewSkills},
		{name: "4 opens projects", msg: runeKey("4"), expected: navigation.ViewProjects},
		{name: "p opens projects", msg: runeKey("p"), expected: navigation.ViewProjects},
		{name: "5 opens contact", msg: runeKey("5"), expected: navigation.ViewContact},
		{name: "c opens contact", msg: runeKey("c"), expected: navigation.ViewContact},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			nav := navigation.NewMockNavigator(ctrl)
			nav.EXPECT().CurrentView().Return(navigation.ViewHome).AnyTimes()

			m := newSizedModel(t, nav)

			nav.EXPECT().SwitchTo(tt.expected).Return(nil)

			_, cmd := m.Update(tt.msg)
			assert.Nil(t, cmd)
		})
	}
}

func Test_Update_NextPrev(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		next bool
	}{
		{name: "tab", msg: tea.KeyMsg{Type: tea.KeyTab}, next: true},
		{name: "right", msg: tea.KeyMsg{Type: tea.KeyRight}, next: true},
		{name: "shift+tab", msg: tea.KeyMsg{Type: tea.KeyShiftTab}, next: false},
		{name: "left", msg: tea.KeyMsg{Type: tea.KeyLeft}, next: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			nav := navigation.NewMockNavigator(ctrl)
			nav.EXPECT().CurrentView().Return(navigation.ViewHome).AnyTimes()

			m := newSizedModel(t, nav)

			if tt.next {
				nav.EXPECT().Next()
			} else {
				nav.EXPECT().Prev()
			}

			m.Update(tt.msg)
		})
	}
}

func Test_Update_SwitchesRenderedView(t *testing.T) {
	m := newSizedModel(t, newRealNavigator(t))

	updated, _ := m.Update(runeKey("s"))
	m = updated.(Model)

	assert.Equal(t, navigation.ViewSkills, m.nav.CurrentView())
	assert.Contains(t, ansi.Strip(m.View()), "My Skills")

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(Model)

	assert.Equal(t, navigation.ViewProjects, m.nav.CurrentView())
	assert.Contains(t, ansi.Strip(m.View()), "My Projects")
	assert.Equal(t, 0, m.ui.viewport.YOffset)
}

func Test_Update_SwitchErrorKeepsRendering(t *testing.T) {
	ctrl := gomock.NewController(t)
	nav := navigation.NewMockNavigator(ctrl)
	nav.EXPECT().CurrentView().Return(navigation.ViewHome).AnyTimes()

	m := newSizedModel(t, nav)

	nav.EXPECT().SwitchTo(navigation.ViewAbout).Return(apperrors.ErrUnknownView)

	updated, cmd := m.Update(runeKey("a"))

	assert.Nil(t, cmd)
	assert.Contains(t, ansi.Strip(updated.(Model).View()), "View My Work")
}

func Test_Update_Quit(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
	}{
		{name: "q", msg: runeKey("q")},
		{name: "esc", msg: tea.KeyMsg{Type: tea.KeyEsc}},
		{name: "ctrl+c", msg: tea.KeyMsg{Type: tea.KeyCtrlC}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newSizedModel(t, newRealNavigator(t))

			_, cmd := m.Update(tt.msg)

			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
		})
	}
}

func Test_Update_HelpToggle(t *testing.T) {
	m := newSizedModel(t, newRealNavigator(t))
	shortHeight := m.ui.viewport.Height

	updated, _ := m.Update(runeKey("?"))
	m = updated.(Model)

	assert.True(t, m.ui.help.ShowAll)
	assert.Less(t, m.ui.viewport.Height, shortHeight)

	updated, _ = m.Update(runeKey("?"))
	m = updated.(Model)

	assert.False(t, m.ui.help.ShowAll)
	assert.Equal(t, shortHeight, m.ui.viewport.Height)
}

func Test_Update_WindowSize(t *testing.T) {
	m := newTestModel(t, newRealNavigator(t), content.Default(), nil)

	assert.Equal(t, "Initializing…", m.View())

	m = newSizedModel(t, newRealNavigator(t))

	assert.True(t, m.ui.ready)
	assert.Equal(t, testWidth, m.ui.viewport.Width)
	assert.Equal(t, testHeight-components.NavHeight-components.FooterHeight, m.ui.viewport.Height)
	assert.Equal(t, testWidth, m.ui.help.Width)
}

func Test_Update_TinyWindow(t *testing.T) {
	m := newSizedModel(t, newRealNavigator(t))

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 10, Height: 3})
	m = updated.(Model)

	assert.Equal(t, 1, m.ui.viewport.Height)
	assert.NotEmpty(t, m.View())
}

func Test_Update_NavClicks(t *testing.T) {
	m := newSizedModel(t, newRealNavigator(t))
	zones := m.navZones()

	require.Len(t, zones, len(navigation.Views))

	order := []navigation.View{
		navigation.ViewAbout,
		navigation.ViewSkills,
		navigation.ViewProjects,
		navigation.ViewContact,
		navigation.ViewHome,
	}

	for _, target := range order {
		var zone navZone
		for _, z := range zones {
			if z.view == target {
				zone = z
			}
		}

		click := tea.MouseMsg{X: (zone.start + zone.end) / 2, Y: 0, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}

		updated, _ := m.Update(click)
		m = updated.(Model)

		assert.Equal(t, target, m.nav.CurrentView(), target.String())
	}
}

func Test_Update_IgnoredClicks(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.MouseMsg
	}{
		{name: "below the nav bar", msg: tea.MouseMsg{X: 1, Y: 3, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}},
		{name: "press", msg: tea.MouseMsg{X: 1, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}},
		{name: "right button", msg: tea.MouseMsg{X: 1, Y: 0, Action: tea.MouseActionRelease, Button: tea.MouseButtonRight}},
		{name: "past the last entry", msg: tea.MouseMsg{X: testWidth - 1, Y: 0, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newSizedModel(t, newRealNavigator(t))
			require.NoError(t, m.nav.SwitchTo(navigation.ViewSkills))

			updated, _ := m.Update(tt.msg)

			assert.Equal(t, navigation.ViewSkills, updated.(Model).nav.CurrentView())
		})
	}
}

func Test_Update_ImageFailed(t *testing.T) {
	m := newSizedModel(t, newRealNavigator(t))
	require.NoError(t, m.nav.SwitchTo(navigation.ViewProjects))

	updated, _ := m.Update(runeKey("p"))
	m = updated.(Model)
	assert.NotContains(t, ansi.Strip(m.View()), "Image Error")

	updated, _ = m.Update(imageFailedMsg{id: sections.ProjectImageID(0), err: errors.New("boom")})
	m = updated.(Model)

	img, ok := m.renderer.Images().Get(sections.ProjectImageID(0))
	require.True(t, ok)
	assert.True(t, img.Failed())
	assert.Contains(t, m.ui.viewport.View(), "Image Error")

	src := img.Src
	m.Update(imageFailedMsg{id: sections.ProjectImageID(0), err: errors.New("boom")})

	assert.Equal(t, src, img.Src)
	assert.False(t, m.renderer.Images().Fail(sections.ProjectImageID(0)), "fallback is applied once")
}

func Test_Update_UnknownMessage(t *testing.T) {
	m := newSizedModel(t, newRealNavigator(t))

	updated, cmd := m.Update("unexpected")

	assert.Nil(t, cmd)
	assert.Equal(t, m.View(), updated.(Model).View())
}
