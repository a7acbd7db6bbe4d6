package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"fedboard/internal/analytics"
	"fedboard/internal/config"
	"fedboard/internal/engine"
	"fedboard/internal/meeting"
	"fedboard/internal/member"
	"fedboard/internal/render"
	"fedboard/internal/schedule"
	"fedboard/internal/store"
)

// 中文说明：
// 只读查询接口。会议记录、纪要、立场与异议统计都从存储层读出，
// 不提供触发模拟的写接口，模拟由 CLI 驱动。

type Server struct {
	addr     string
	store    store.Store
	registry *member.Registry
	cfg      *config.Config
	router   *gin.Engine
}

type ServerConfig struct {
	Addr     string
	Store    store.Store
	Registry *member.Registry
	Config   *config.Config
}

func NewServer(cfg ServerConfig) (*Server, error) {
	if cfg.Store == nil {
		return nil, errors.New("store 不能为空")
	}
	if cfg.Registry == nil {
		return nil, errors.New("registry 不能为空")
	}
	if cfg.Config == nil {
		return nil, errors.New("config 不能为空")
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8087"
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	s := &Server{
		addr:     cfg.Addr,
		store:    cfg.Store,
		registry: cfg.Registry,
		cfg:      cfg.Config,
		router:   router,
	}
	s.registerRoutes()
	return s, nil
}

// Handler 暴露路由，便于测试直接挂 httptest。
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) registerRoutes() {
	s.router.GET("/healthz", s.handleHealth)
	api := s.router.Group("/api/v1")
	api.GET("/meetings", s.handleMeetingList)
	api.GET("/meetings/:period", s.handleMeetingDetail)
	api.GET("/meetings/:period/minutes", s.handleMeetingMinutes)
	api.GET("/members", s.handleMembers)
	api.GET("/schedule/:year", s.handleSchedule)
	api.GET("/analytics/stance", s.handleStance)
	api.GET("/analytics/dissents", s.handleDissents)
	api.GET("/analytics/impact", s.handleImpact)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleMeetingList(c *gin.Context) {
	year := 0
	if raw := c.Query("year"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "year 非法"})
			return
		}
		year = v
	}
	records, err := s.store.List(c.Request.Context(), year)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"meetings": records})
}

func (s *Server) handleMeetingDetail(c *gin.Context) {
	rec, ok := s.loadRecord(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"meeting": rec})
}

func (s *Server) handleMeetingMinutes(c *gin.Context) {
	rec, ok := s.loadRecord(c)
	if !ok {
		return
	}
	text := render.Minutes(rec, s.registry.All())
	c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(text))
}

func (s *Server) loadRecord(c *gin.Context) (meeting.MeetingRecord, bool) {
	period := c.Param("period")
	if _, _, err := meeting.ParsePeriod(period); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return meeting.MeetingRecord{}, false
	}
	rec, err := s.store.Load(c.Request.Context(), period)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "meeting not found"})
			return meeting.MeetingRecord{}, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return meeting.MeetingRecord{}, false
	}
	return rec, true
}

func (s *Server) handleMembers(c *gin.Context) {
	members := s.registry.All()
	if raw := c.Query("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "year 非法"})
			return
		}
		members = s.registry.Eligible(year)
	}
	c.JSON(http.StatusOK, gin.H{"members": members})
}

func (s *Server) handleSchedule(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year 非法"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"year": year, "periods": schedule.MeetingPeriods(year)})
}

func (s *Server) handleStance(c *gin.Context) {
	records, err := s.store.List(c.Request.Context(), 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	scores := analytics.StanceScores(records, s.registry.All(), s.cfg.Stance)
	c.JSON(http.StatusOK, gin.H{"scores": scores})
}

func (s *Server) handleDissents(c *gin.Context) {
	records, err := s.store.List(c.Request.Context(), 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"dissents":    analytics.DissentsByMember(records),
		"dissentRate": analytics.DissentRate(records),
	})
}

func (s *Server) handleImpact(c *gin.Context) {
	action := engine.Action(c.DefaultQuery("action", "hold"))
	if !action.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "action 非法"})
		return
	}
	bps, err := strconv.Atoi(c.DefaultQuery("bps", "0"))
	if err != nil || bps < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bps 非法"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"action": action,
		"bps":    bps,
		"impact": analytics.EstimateImpact(action, bps, s.cfg.Impact),
	})
}

// Start 启动 HTTP 服务，阻塞直到 ctx 取消或出现错误。
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{Addr: s.addr, Handler: s.router}
	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		shCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shCtx)
		return nil
	case err := <-errCh:
		return err
	}
}
