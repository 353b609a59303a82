package date

import (
	"context"
	"testing"
	"time"

	"github.com/espanso/espanso-core/internal/event"
	"github.com/espanso/espanso-core/internal/render"
)

func fixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

func TestCalculate_DefaultLayout(t *testing.T) {
	now := time.Date(2026, 7, 31, 12, 0, 0, 0, time.UTC)
	e := New(fixedClock(now))

	res := e.Calculate(context.Background(), nil, nil, render.Params{})
	if res.Kind != render.ResultOK {
		t.Fatalf("Kind = %v, want ResultOK", res.Kind)
	}
	want := now.Format(time.RFC3339)
	if res.Output.Single != want {
		t.Fatalf("Single = %q, want %q", res.Output.Single, want)
	}
}

func TestCalculate_CustomFormat(t *testing.T) {
	now := time.Date(2026, 7, 31, 12, 0, 0, 0, time.UTC)
	e := New(fixedClock(now))

	res := e.Calculate(context.Background(), nil, nil, render.Params{
		"format": event.StringValue("2006-01-02"),
	})
	if res.Output.Single != "2026-07-31" {
		t.Fatalf("Single = %q, want %q", res.Output.Single, "2026-07-31")
	}
}

func TestCalculate_Offset(t *testing.T) {
	now := time.Date(2026, 7, 31, 12, 0, 0, 0, time.UTC)
	e := New(fixedClock(now))

	res := e.Calculate(context.Background(), nil, nil, render.Params{
		"format": event.StringValue("15:04:05"),
		"offset": {Num: 3600, Is: event.KindNumber},
	})
	if res.Output.Single != "13:00:00" {
		t.Fatalf("Single = %q, want %q", res.Output.Single, "13:00:00")
	}
}

func TestNew_NilClockDefaultsToTimeNow(t *testing.T) {
	e := New(nil)
	if e.now == nil {
		t.Fatalf("now = nil, want a default clock")
	}
}
