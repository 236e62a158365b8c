// Package monitor exposes a small HTTP surface for inspecting a packet
// stream: decode on demand, health, readiness, and metrics.
package monitor

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/danmuck/umpwire/codec"
	"github.com/danmuck/umpwire/internal/observability"
	"github.com/danmuck/umpwire/ump"
)

type Monitor struct {
	Name string
	Addr string
	Mode codec.Mode

	router   *gin.Engine
	appeared time.Time
}

func New(name, addr string, mode codec.Mode) *Monitor {
	observability.RegisterMetrics()
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(observability.RequestLogger(log.Logger))
	r.Use(observability.RequestMetricsMiddleware(name))
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"http://localhost:3000"},
		AllowMethods: []string{"GET", "POST"},
		AllowHeaders: []string{"Origin", "Content-Type"},
		MaxAge:       12 * time.Hour,
	}))
	_ = r.SetTrustedProxies([]string{"127.0.0.1", "::1"})

	return &Monitor{
		Name:     name,
		Addr:     addr,
		Mode:     mode,
		router:   r,
		appeared: time.Now(),
	}
}

func (m *Monitor) HTTPRouter() *gin.Engine {
	return m.router
}

func (m *Monitor) RegisterRoutes() {
	m.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"uptime":  time.Since(m.appeared).String(),
			"service": m.Name,
			"mode":    m.Mode.String(),
		})
	})

	m.router.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"ready":   true,
			"uptime":  time.Since(m.appeared).String(),
			"service": m.Name,
		})
	})

	m.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	m.router.POST("/decode", m.handleDecode)
}

type decodeRequest struct {
	Words []string `json:"words"`
}

type decodedPacket struct {
	Type  string   `json:"type"`
	Group uint8    `json:"group"`
	Words []string `json:"words"`
}

func (m *Monitor) handleDecode(c *gin.Context) {
	var req decodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	words, err := parseWords(req.Words)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	packets := make([]decodedPacket, 0)
	for len(words) > 0 {
		t, n, ok := ump.Classify(words[0])
		if !ok {
			observability.RecordDecodeError(m.Name, codec.ErrUnsupportedMessageType)
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": codec.ErrUnsupportedMessageType.Error()})
			return
		}
		if len(words) < n {
			observability.RecordDecodeError(m.Name, codec.ErrMalformedPacket)
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": codec.ErrMalformedPacket.Error()})
			return
		}
		msg, err := codec.Decode(words[:n], m.Mode)
		if err != nil {
			observability.RecordDecodeError(m.Name, err)
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		observability.RecordDecode(m.Name, t)
		packets = append(packets, decodedPacket{
			Type:  t.String(),
			Group: msg.Group(),
			Words: formatWords(words[:n]),
		})
		words = words[n:]
	}

	c.JSON(http.StatusOK, gin.H{"packets": packets})
}

func (m *Monitor) Serve() error {
	m.RegisterRoutes()
	return m.router.Run(m.Addr)
}

func parseWords(fields []string) ([]uint32, error) {
	words := make([]uint32, 0, len(fields))
	for _, f := range fields {
		raw := strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(f), "0x"), "0X")
		v, err := strconv.ParseUint(raw, 16, 32)
		if err != nil {
			return nil, err
		}
		words = append(words, uint32(v))
	}
	return words, nil
}

func formatWords(words []uint32) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = strconv.FormatUint(uint64(w), 16)
	}
	return out
}
