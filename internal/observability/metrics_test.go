package observability

import (
	"errors"
	"testing"
	"time"

	"github.com/danmuck/fastahdr/internal/header"
)

func TestRegisterMetricsAndRecordersAreSafe(t *testing.T) {
	RegisterMetrics()
	RegisterMetrics()

	RecordParse("canonical", nil, 3*time.Microsecond)
	RecordParse("isoform", header.ErrIncomplete, 1*time.Microsecond)
	RecordHTTPRequest("POST", "/v1/parse", 200, 12*time.Millisecond)
}

func TestFailureKindLabels(t *testing.T) {
	_, err := header.ParseCanonical([]byte(">xx|nope"))
	if got := FailureKind(err); got != "tag" {
		t.Fatalf("unexpected kind label: %q", got)
	}
	if got := FailureKind(header.ErrIncomplete); got != "incomplete" {
		t.Fatalf("unexpected incomplete label: %q", got)
	}
	if got := FailureKind(errors.New("boom")); got != "other" {
		t.Fatalf("unexpected fallback label: %q", got)
	}
}
