package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/danmuck/fastahdr/internal/config"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return New(config.DefaultServerConfig(), zerolog.Nop())
}

func postParse(t *testing.T, s *Service, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/parse", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	s := newTestService(t)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["service"] != "headerd" {
		t.Fatalf("unexpected service: %v", body["service"])
	}
}

func TestParseCanonicalViaAuto(t *testing.T) {
	s := newTestService(t)
	w := postParse(t, s, `{"header":">sp|P02668|CASK_BOVIN Kappa-casein OS=Bos taurus OX=9913 GN=CSN3 PE=1 SV=1"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d body=%s", w.Code, w.Body.String())
	}
	var body struct {
		Variant string `json:"variant"`
		Record  struct {
			Database   string `json:"database"`
			Identifier string `json:"identifier"`
			GeneName   string `json:"gene_name"`
		} `json:"record"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Variant != "canonical" {
		t.Fatalf("unexpected variant: %q", body.Variant)
	}
	if body.Record.Database != "sp" || body.Record.Identifier != "P02668" {
		t.Fatalf("unexpected record: %+v", body.Record)
	}
	if body.Record.GeneName != "CSN3" {
		t.Fatalf("unexpected gene name: %q", body.Record.GeneName)
	}
}

func TestParseIsoformViaAuto(t *testing.T) {
	s := newTestService(t)
	w := postParse(t, s, `{"header":">sp|Q4R572-2|1433B_MACFA Isoform Short of 14-3-3 protein beta/alpha OS=Macaca fascicularis OX=9541 GN=YWHAB"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d body=%s", w.Code, w.Body.String())
	}
	var body struct {
		Variant string `json:"variant"`
		Record  struct {
			Isoform string `json:"isoform"`
		} `json:"record"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Variant != "isoform" || body.Record.Isoform != "2" {
		t.Fatalf("unexpected response: %s", w.Body.String())
	}
}

func TestParseMalformedHeaderReturns422(t *testing.T) {
	s := newTestService(t)
	w := postParse(t, s, `{"header":">xx|garbage","variant":"canonical"}`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("unexpected status: %d", w.Code)
	}
	var body struct {
		Kind      string `json:"kind"`
		Remaining string `json:"remaining"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Kind != "tag" {
		t.Fatalf("unexpected kind: %q", body.Kind)
	}
	if body.Remaining != "xx|garbage" {
		t.Fatalf("unexpected remaining: %q", body.Remaining)
	}
}

func TestParseRejectsUnknownVariant(t *testing.T) {
	s := newTestService(t)
	w := postParse(t, s, `{"header":">sp|...","variant":"tabular"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", w.Code)
	}
}

func TestParseRejectsBadBody(t *testing.T) {
	s := newTestService(t)
	w := postParse(t, s, `not json`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", w.Code)
	}
}
