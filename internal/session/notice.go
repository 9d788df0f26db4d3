package session

import (
	"fmt"
	"time"
)

// NoticeKind identifies a notification for the presentation layer.
type NoticeKind string

const (
	NoticeLengthMismatch NoticeKind = "length_mismatch"
	NoticeWon            NoticeKind = "won"
	NoticeLost           NoticeKind = "lost"
	// NoticeRequestFocus asks the surface to re-open input on the active row.
	// Surfaces may honor it asynchronously after Delay; there is no ordering
	// guarantee relative to later input.
	NoticeRequestFocus NoticeKind = "request_focus"
)

// Notice is a single notification. Title and Message are product copy.
type Notice struct {
	Kind     NoticeKind    `json:"kind"`
	Title    string        `json:"title,omitempty"`
	Message  string        `json:"message,omitempty"`
	Expected int           `json:"expected,omitempty"`
	Target   string        `json:"target,omitempty"`
	Delay    time.Duration `json:"-"`
	DelayMs  int64         `json:"delayMs,omitempty"`
}

func lengthMismatch(n int) Notice {
	return Notice{
		Kind:     NoticeLengthMismatch,
		Message:  fmt.Sprintf("کلمه باید %d حرفی باشد!", n),
		Expected: n,
	}
}

func won() Notice {
	return Notice{Kind: NoticeWon, Title: "تبریک!", Message: "عالی بودی! 🎉"}
}

func lost(target string) Notice {
	return Notice{
		Kind:    NoticeLost,
		Title:   "باختی!",
		Message: "کلمه درست: " + target,
		Target:  target,
	}
}

func requestFocus(d time.Duration) Notice {
	return Notice{Kind: NoticeRequestFocus, Delay: d, DelayMs: d.Milliseconds()}
}
