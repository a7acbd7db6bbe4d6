package gormstore

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"fedboard/internal/engine"
	"fedboard/internal/meeting"
	"fedboard/internal/store"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// meetingRecordModel 会议记录的表结构。结构化列用于查询，
// 选票/快照/预测整体存 JSON 列。
type meetingRecordModel struct {
	ID            string `gorm:"primaryKey;size:64"`
	Period        string `gorm:"uniqueIndex;size:16"`
	Year          int    `gorm:"index"`
	FinalAction   string `gorm:"size:16"`
	MagnitudeBps  int
	PrevLower     string `gorm:"size:16"`
	PrevUpper     string `gorm:"size:16"`
	FinalLower    string `gorm:"size:16"`
	FinalUpper    string `gorm:"size:16"`
	TallyFor      int
	TallyAgainst  int
	TallyAbstain  int
	Votes         datatypes.JSON
	Dissenters    datatypes.JSON
	Projections   datatypes.JSON
	Snapshot      datatypes.JSON
	Model         string `gorm:"size:64"`
	CreatedAt     time.Time
}

func (meetingRecordModel) TableName() string { return "meeting_records" }

// GormStore 基于 Gorm + SQLite 的会议记录存储。
type GormStore struct {
	db *gorm.DB
}

var _ store.Store = (*GormStore)(nil)

func New(path string) (*GormStore, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("gorm store: 记录库路径不能为空")
	}
	if err := ensureDir(path); err != nil {
		return nil, err
	}
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&cache=shared", path)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&meetingRecordModel{}); err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// SQLite + WAL：给并发 HTTP 读留一点余量，同时控制锁竞争。
	sqlDB.SetMaxOpenConns(2)
	sqlDB.SetMaxIdleConns(2)
	return &GormStore{db: db}, nil
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func (s *GormStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *GormStore) Save(ctx context.Context, rec meeting.MeetingRecord) error {
	row, err := toModel(rec)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&meetingRecordModel{}).Where("period = ?", rec.Period).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("%w: %s", store.ErrDuplicatePeriod, rec.Period)
		}
		return tx.Create(&row).Error
	})
}

func (s *GormStore) SaveOverwrite(ctx context.Context, rec meeting.MeetingRecord) error {
	row, err := toModel(rec)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("period = ?", rec.Period).Delete(&meetingRecordModel{}).Error; err != nil {
			return err
		}
		return tx.Create(&row).Error
	})
}

func (s *GormStore) Load(ctx context.Context, period string) (meeting.MeetingRecord, error) {
	var row meetingRecordModel
	err := s.db.WithContext(ctx).Where("period = ?", period).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return meeting.MeetingRecord{}, fmt.Errorf("%w: %s", store.ErrNotFound, period)
		}
		return meeting.MeetingRecord{}, err
	}
	return fromModel(row)
}

func (s *GormStore) List(ctx context.Context, year int) ([]meeting.MeetingRecord, error) {
	q := s.db.WithContext(ctx).Model(&meetingRecordModel{}).Order("period asc")
	if year > 0 {
		q = q.Where("year = ?", year)
	}
	var rows []meetingRecordModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]meeting.MeetingRecord, 0, len(rows))
	for _, row := range rows {
		rec, err := fromModel(row)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

var csvHeader = []string{
	"period", "final_action", "magnitude_bps",
	"prev_lower", "prev_upper", "final_lower", "final_upper",
	"tally_for", "tally_against", "tally_abstain", "dissenters",
}

func (s *GormStore) ExportCSV(ctx context.Context, w io.Writer, year int) error {
	records, err := s.List(ctx, year)
	if err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, rec := range records {
		row := []string{
			rec.Period,
			string(rec.FinalAction),
			strconv.Itoa(rec.MagnitudeBps),
			rec.PreviousRange.Lower.StringFixed(2),
			rec.PreviousRange.Upper.StringFixed(2),
			rec.FinalRange.Lower.StringFixed(2),
			rec.FinalRange.Upper.StringFixed(2),
			strconv.Itoa(rec.Tally.For),
			strconv.Itoa(rec.Tally.Against),
			strconv.Itoa(rec.Tally.Abstain),
			strings.Join(rec.Dissenters, "|"),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func toModel(rec meeting.MeetingRecord) (meetingRecordModel, error) {
	year, _, err := meeting.ParsePeriod(rec.Period)
	if err != nil {
		return meetingRecordModel{}, err
	}
	votes, err := json.Marshal(rec.Votes)
	if err != nil {
		return meetingRecordModel{}, fmt.Errorf("marshal votes failed: %w", err)
	}
	dissenters, err := json.Marshal(rec.Dissenters)
	if err != nil {
		return meetingRecordModel{}, fmt.Errorf("marshal dissenters failed: %w", err)
	}
	projections, err := json.Marshal(rec.Projections)
	if err != nil {
		return meetingRecordModel{}, fmt.Errorf("marshal projections failed: %w", err)
	}
	snapshot, err := json.Marshal(rec.Snapshot)
	if err != nil {
		return meetingRecordModel{}, fmt.Errorf("marshal snapshot failed: %w", err)
	}
	createdAt := rec.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	return meetingRecordModel{
		ID:           rec.ID,
		Period:       rec.Period,
		Year:         year,
		FinalAction:  string(rec.FinalAction),
		MagnitudeBps: rec.MagnitudeBps,
		PrevLower:    rec.PreviousRange.Lower.String(),
		PrevUpper:    rec.PreviousRange.Upper.String(),
		FinalLower:   rec.FinalRange.Lower.String(),
		FinalUpper:   rec.FinalRange.Upper.String(),
		TallyFor:     rec.Tally.For,
		TallyAgainst: rec.Tally.Against,
		TallyAbstain: rec.Tally.Abstain,
		Votes:        datatypes.JSON(votes),
		Dissenters:   datatypes.JSON(dissenters),
		Projections:  datatypes.JSON(projections),
		Snapshot:     datatypes.JSON(snapshot),
		Model:        rec.Model,
		CreatedAt:    createdAt,
	}, nil
}

func fromModel(row meetingRecordModel) (meeting.MeetingRecord, error) {
	prevLower, err := decimal.NewFromString(row.PrevLower)
	if err != nil {
		return meeting.MeetingRecord{}, fmt.Errorf("bad prev_lower for %s: %w", row.Period, err)
	}
	prevUpper, err := decimal.NewFromString(row.PrevUpper)
	if err != nil {
		return meeting.MeetingRecord{}, fmt.Errorf("bad prev_upper for %s: %w", row.Period, err)
	}
	finalLower, err := decimal.NewFromString(row.FinalLower)
	if err != nil {
		return meeting.MeetingRecord{}, fmt.Errorf("bad final_lower for %s: %w", row.Period, err)
	}
	finalUpper, err := decimal.NewFromString(row.FinalUpper)
	if err != nil {
		return meeting.MeetingRecord{}, fmt.Errorf("bad final_upper for %s: %w", row.Period, err)
	}
	rec := meeting.MeetingRecord{
		ID:            row.ID,
		Period:        row.Period,
		FinalAction:   engine.Action(row.FinalAction),
		MagnitudeBps:  row.MagnitudeBps,
		PreviousRange: meeting.RateRange{Lower: prevLower, Upper: prevUpper},
		FinalRange:    meeting.RateRange{Lower: finalLower, Upper: finalUpper},
		Tally: meeting.Tally{
			For:     row.TallyFor,
			Against: row.TallyAgainst,
			Abstain: row.TallyAbstain,
		},
		Model:     row.Model,
		CreatedAt: row.CreatedAt,
	}
	if len(row.Votes) > 0 {
		if err := json.Unmarshal(row.Votes, &rec.Votes); err != nil {
			return meeting.MeetingRecord{}, fmt.Errorf("unmarshal votes for %s failed: %w", row.Period, err)
		}
	}
	if len(row.Dissenters) > 0 {
		if err := json.Unmarshal(row.Dissenters, &rec.Dissenters); err != nil {
			return meeting.MeetingRecord{}, fmt.Errorf("unmarshal dissenters for %s failed: %w", row.Period, err)
		}
	}
	if len(row.Projections) > 0 {
		if err := json.Unmarshal(row.Projections, &rec.Projections); err != nil {
			return meeting.MeetingRecord{}, fmt.Errorf("unmarshal projections for %s failed: %w", row.Period, err)
		}
	}
	if len(row.Snapshot) > 0 {
		if err := json.Unmarshal(row.Snapshot, &rec.Snapshot); err != nil {
			return meeting.MeetingRecord{}, fmt.Errorf("unmarshal snapshot for %s failed: %w", row.Period, err)
		}
	}
	return rec, nil
}
