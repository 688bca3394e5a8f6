package server

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/danmuck/fastahdr/internal/config"
	"github.com/danmuck/fastahdr/internal/fasta"
	"github.com/danmuck/fastahdr/internal/header"
	"github.com/danmuck/fastahdr/internal/observability"
)

type parseRequest struct {
	Header  string `json:"header"`
	Variant string `json:"variant"`
}

func (s *Service) registerRoutes() {
	s.router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"uptime":  time.Since(s.appeared).String(),
			"service": "headerd",
			"version": version,
		})
	})

	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	s.router.POST("/v1/parse", s.handleParse)
}

func (s *Service) handleParse(c *gin.Context) {
	var req parseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Variant == "" {
		req.Variant = config.VariantAuto
	}
	if err := config.ValidateVariant(req.Variant); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	line := []byte(req.Header)
	variant := strings.ToLower(strings.TrimSpace(req.Variant))

	var (
		can *header.Canonical
		iso *header.Isoform
		err error
	)
	start := time.Now()
	switch variant {
	case config.VariantCanonical:
		var rec header.Canonical
		if rec, err = header.ParseCanonical(line); err == nil {
			can = &rec
		}
	case config.VariantIsoform:
		var rec header.Isoform
		if rec, err = header.ParseIsoform(line); err == nil {
			iso = &rec
		}
	default:
		can, iso, err = fasta.Parse(line)
	}
	observability.RecordParse(variant, err, time.Since(start))

	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, failureBody(err))
		return
	}
	if can != nil {
		c.JSON(http.StatusOK, gin.H{"variant": config.VariantCanonical, "record": can})
		return
	}
	c.JSON(http.StatusOK, gin.H{"variant": config.VariantIsoform, "record": iso})
}

func failureBody(err error) gin.H {
	body := gin.H{
		"error": err.Error(),
		"kind":  observability.FailureKind(err),
	}
	var syn *header.SyntaxError
	if errors.As(err, &syn) {
		body["remaining"] = string(syn.Remaining)
	}
	return body
}
