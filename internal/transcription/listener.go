package transcription

import (
	"github.com/uts/vosk-transcriber/internal/recognizer"
	"github.com/uts/vosk-transcriber/internal/recognizer/model"
)

// Listener receives the events of one transcription. OnPartial and OnFinal
// are called in recognition order from a single goroutine. OnComplete is
// called after a successful run, OnError after a failed one.
//
//go:generate moq -rm -out listener_mock.go . Listener
type Listener interface {
	recognizer.ResultHandler
	OnError(err error)
	OnComplete()
}

var _ Listener = ListenerFuncs{}

// ListenerFuncs adapts optional functions to a Listener.
type ListenerFuncs struct {
	Partial  func(result *model.Result)
	Final    func(result *model.Result)
	Error    func(err error)
	Complete func()
}

func (f ListenerFuncs) OnPartial(result *model.Result) {
	if f.Partial != nil {
		f.Partial(result)
	}
}

func (f ListenerFuncs) OnFinal(result *model.Result) {
	if f.Final != nil {
		f.Final(result)
	}
}

func (f ListenerFuncs) OnError(err error) {
	if f.Error != nil {
		f.Error(err)
	}
}

func (f ListenerFuncs) OnComplete() {
	if f.Complete != nil {
		f.Complete()
	}
}

var _ Listener = MultiListener{}

// MultiListener forwards every event to each listener in order.
type MultiListener []Listener

func (m MultiListener) OnPartial(result *model.Result) {
	for _, l := range m {
		l.OnPartial(result)
	}
}

func (m MultiListener) OnFinal(result *model.Result) {
	for _, l := range m {
		l.OnFinal(result)
	}
}

func (m MultiListener) OnError(err error) {
	for _, l := range m {
		l.OnError(err)
	}
}

func (m MultiListener) OnComplete() {
	for _, l := range m {
		l.OnComplete()
	}
}
