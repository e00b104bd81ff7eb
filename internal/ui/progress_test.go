package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bhvaleri/decaffeinate/internal/driver"
)

func newModel(t *testing.T, files ...string) (*progressModel, chan driver.Event) {
	t.Helper()
	ch := make(chan driver.Event, 8)
	m, ok := NewProgressModel("converting", files, ch).(*progressModel)
	require.True(t, ok)
	return m, ch
}

func send(m *progressModel, ev driver.Event) {
	m.Update(eventMsg(ev))
}

func TestProgressModel_TracksFiles(t *testing.T) {
	m, _ := newModel(t, "a.coffee", "b.coffee", "c.coffee")

	send(m, driver.Event{File: "a.coffee", Stage: driver.StageParse, Status: driver.StatusWorking})
	send(m, driver.Event{File: "b.coffee", Stage: driver.StagePatch, Status: driver.StatusDone})
	send(m, driver.Event{File: "c.coffee", Stage: driver.StagePatch, Status: driver.StatusDone, Cached: true})
	send(m, driver.Event{File: "unknown.coffee", Stage: driver.StagePatch, Status: driver.StatusError})

	assert.Equal(t, []string{"parsing", "done", "cached"}, []string{m.items[0].status, m.items[1].status, m.items[2].status})
	assert.Equal(t, 2, m.finished())
	assert.InDelta(t, (0.3+1+1)/3, m.percent(), 1e-9)

	view := m.View()
	assert.Contains(t, view, "converting (2/3)")
	assert.Contains(t, view, "a.coffee")
}

func TestProgressModel_QuitsWhenEventsClose(t *testing.T) {
	m, ch := newModel(t, "a.coffee")
	close(ch)
	msg := m.listenForEvent()()
	assert.Equal(t, doneMsg{}, msg)

	_, cmd := m.Update(msg)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Contains(t, m.View(), "done: converting")
}

func TestProgressModel_Resize(t *testing.T) {
	m, _ := newModel(t, "a.coffee")
	m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	assert.Equal(t, 40, m.width)
	assert.Equal(t, 36, m.prog.Width)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "src/lo...", truncate("src/long/path.coffee", 9))
	assert.Equal(t, "ab", truncate("abcdef", 2))
	assert.Equal(t, "日本...", truncate("日本語のファイル", 7))
}

func TestEmptyModelRendersNothing(t *testing.T) {
	m, _ := newModel(t)
	assert.Empty(t, m.View())
}
