//go:generate go run go.uber.org/mock/mockgen -source=notice.go -destination=../../mocks/mock_workflow_notice.go -package=mocks

package workflow

import "context"

type NoticeKind int

const (
	NoticeInvalidFile NoticeKind = iota
	NoticeConversionFailed
	NoticeError
)

const (
	MsgInvalidFile      = "Please select a valid DrawIO file"
	MsgConversionFailed = "Conversion failed"
	MsgUnexpectedError  = "An error occurred"
)

// Notice is a blocking, user-visible message.
type Notice struct {
	Kind    NoticeKind
	Message string
	Err     error
}

// Notifier shows notices to the user.
type Notifier interface {
	Notify(ctx context.Context, n Notice)
}

type NotifierFunc func(ctx context.Context, n Notice)

func (f NotifierFunc) Notify(ctx context.Context, n Notice) { f(ctx, n) }

// Navigator performs the download navigation. It has no error return: the
// controller neither observes nor reports the outcome of a download.
type Navigator interface {
	Navigate(ctx context.Context, url string)
}

type NavigatorFunc func(ctx context.Context, url string)

func (f NavigatorFunc) Navigate(ctx context.Context, url string) { f(ctx, url) }
