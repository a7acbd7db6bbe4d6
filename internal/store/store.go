package store

import (
	"context"
	"errors"
	"io"

	"fedboard/internal/meeting"
)

// 每个会期（YYYY-MM）至多一条正式记录，重复写入需要显式 overwrite。
var (
	ErrDuplicatePeriod = errors.New("meeting record already exists for period")
	ErrNotFound        = errors.New("meeting record not found")
)

// Store 会议记录的持久化接口。
type Store interface {
	// Save 写入一条新记录，同会期已有记录时返回 ErrDuplicatePeriod。
	Save(ctx context.Context, rec meeting.MeetingRecord) error
	// SaveOverwrite 写入并替换同会期的旧记录。
	SaveOverwrite(ctx context.Context, rec meeting.MeetingRecord) error
	// Load 按会期取记录，缺失时返回 ErrNotFound。
	Load(ctx context.Context, period string) (meeting.MeetingRecord, error)
	// List 按会期升序返回记录，year 为 0 时不过滤年份。
	List(ctx context.Context, year int) ([]meeting.MeetingRecord, error)
	// ExportCSV 把记录按会期升序导出为 CSV。
	ExportCSV(ctx context.Context, w io.Writer, year int) error
	Close() error
}
