package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type noticeKind int

const (
	noticeInfo noticeKind = iota
	noticeError
	noticeProgress
)

const (
	infoTTL  = 4 * time.Second
	errorTTL = 10 * time.Second // errors stay up longer
)

type notice struct {
	id   int
	kind noticeKind
	text string
}

// noticeModel holds at most one transient notice and one persistent
// progress notice. Transient notices expire on their own; the progress
// notice stays until hidden explicitly.
type noticeModel struct {
	current  *notice
	progress string
	nextID   int
}

func (m *noticeModel) show(msg noticeMsg) tea.Cmd {
	if msg.kind == noticeProgress {
		m.progress = msg.text

		return nil
	}

	m.nextID++
	n := notice{id: m.nextID, kind: msg.kind, text: msg.text}
	m.current = &n

	ttl := infoTTL
	if msg.kind == noticeError {
		ttl = errorTTL
	}

	id := n.id

	return tea.Tick(ttl, func(time.Time) tea.Msg {
		return noticeExpireMsg{id: id}
	})
}

// expire removes the transient notice, unless a newer one replaced it.
func (m *noticeModel) expire(id int) {
	if m.current != nil && m.current.id == id {
		m.current = nil
	}
}

func (m *noticeModel) hideProgress() { m.progress = "" }

func (m *noticeModel) view(width int) string {
	switch {
	case m.current != nil && m.current.kind == noticeError:
		return errorNoticeStyle.Render(truncate(m.current.text, width))
	case m.current != nil:
		return infoNoticeStyle.Render(truncate(m.current.text, width))
	case m.progress != "":
		return progressNoticeStyle.Render(truncate(m.progress, width))
	default:
		return ""
	}
}
