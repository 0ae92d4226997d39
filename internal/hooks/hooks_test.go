package hooks

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
)

func TestFilter_PriorityOrder(t *testing.T) {
	f := NewFilter[string, struct{}]("title", nil)
	f.Add(20, "late", func(s string, _ struct{}) string { return s + "c" })
	f.Add(5, "early", func(s string, _ struct{}) string { return s + "a" })
	f.Add(DefaultPriority, "middle", func(s string, _ struct{}) string { return s + "b" })

	if got := f.Apply("", struct{}{}); got != "abc" {
		t.Fatalf("got %q", got)
	}
	if diff := cmp.Diff([]string{"early", "middle", "late"}, f.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestFilter_StableWithinPriority(t *testing.T) {
	f := NewFilter[[]string, struct{}]("list", nil)
	for _, name := range []string{"one", "two", "three"} {
		name := name
		f.Add(DefaultPriority, name, func(v []string, _ struct{}) []string { return append(v, name) })
	}
	got := f.Apply(nil, struct{}{})
	if diff := cmp.Diff([]string{"one", "two", "three"}, got); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestFilter_ContextPassed(t *testing.T) {
	f := NewFilter[int, int]("width", zap.NewNop())
	f.Add(DefaultPriority, "scale", func(v, factor int) int { return v * factor })
	if got := f.Apply(3, 4); got != 12 {
		t.Fatalf("got %d", got)
	}
}

func TestFilter_EmptyIsIdentity(t *testing.T) {
	f := NewFilter[string, struct{}]("noop", nil)
	if got := f.Apply("same", struct{}{}); got != "same" {
		t.Fatalf("got %q", got)
	}
	if f.Len() != 0 || f.Name() != "noop" {
		t.Fatalf("len=%d name=%q", f.Len(), f.Name())
	}
}

func TestFilter_Remove(t *testing.T) {
	f := NewFilter[string, struct{}]("title", nil)
	f.Add(DefaultPriority, "suffix", func(s string, _ struct{}) string { return s + "!" })
	if !f.Remove("suffix") {
		t.Fatal("expected removal")
	}
	if f.Remove("suffix") {
		t.Fatal("second removal should report false")
	}
	if got := f.Apply("hi", struct{}{}); got != "hi" {
		t.Fatalf("got %q", got)
	}
}

func TestAction_RunsInOrder(t *testing.T) {
	var b strings.Builder
	a := NewAction[*strings.Builder]("footer", nil)
	a.Add(9999, "sprite", func(w *strings.Builder) error { w.WriteString("[sprite]"); return nil })
	a.Add(0, "first", func(w *strings.Builder) error { w.WriteString("[first]"); return nil })
	if err := a.Do(&b); err != nil {
		t.Fatal(err)
	}
	if b.String() != "[first][sprite]" {
		t.Fatalf("got %q", b.String())
	}
}

func TestAction_StopsOnError(t *testing.T) {
	boom := errors.New("boom")
	ran := false
	a := NewAction[struct{}]("head", nil)
	a.Add(1, "fails", func(struct{}) error { return boom })
	a.Add(2, "after", func(struct{}) error { ran = true; return nil })

	err := a.Do(struct{}{})
	if !errors.Is(err, boom) {
		t.Fatalf("got %v", err)
	}
	if !strings.Contains(err.Error(), "head: fails") {
		t.Fatalf("error should name hook and callback: %v", err)
	}
	if ran {
		t.Fatal("callbacks after a failure must not run")
	}
}
