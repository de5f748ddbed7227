package ports

import "github.com/jsamuelsen11/draftdesk/internal/domain/notice"

// Navigator is the navigation sink. Navigate is called with the redirect
// URL returned by the backend (force-refresh marker already appended).
type Navigator interface {
	Navigate(url string)
}

// NoticeSink receives notices emitted by the draft controller.
type NoticeSink interface {
	OnNotice(n notice.Notice)
}

// Translator renders a message key in the active locale. Unknown keys are
// returned unchanged.
type Translator interface {
	TranslateMessage(key string) string
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(url string)

// Navigate calls f(url).
func (f NavigatorFunc) Navigate(url string) { f(url) }

// NoticeSinkFunc adapts a function to NoticeSink.
type NoticeSinkFunc func(n notice.Notice)

// OnNotice calls f(n).
func (f NoticeSinkFunc) OnNotice(n notice.Notice) { f(n) }
