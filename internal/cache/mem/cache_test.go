package mem

import (
	"testing"

	"volunteerhub/internal/domain"
)

func TestGetAfterUpdate(t *testing.T) {
	c := New()
	if _, ok := c.Get("7"); ok {
		t.Fatal("empty cache should miss")
	}
	c.Update("7", domain.Dashboard{Browse: []domain.Event{{ID: "1"}}})
	d, ok := c.Get("7")
	if !ok || len(d.Browse) != 1 {
		t.Fatalf("Get() = %+v, %v", d, ok)
	}
	if _, ok := c.Get("8"); ok {
		t.Fatal("snapshots must be per user")
	}
}

func TestInvalidate(t *testing.T) {
	c := New()
	c.Update("7", domain.Dashboard{})
	c.Invalidate("7")
	if _, ok := c.Get("7"); ok {
		t.Fatal("Invalidate() should drop the snapshot")
	}
}

func TestMarkEnrolled(t *testing.T) {
	c := New()
	c.Update("7", domain.Dashboard{
		Browse: []domain.Event{
			{ID: "1", Name: "Cleanup", Urgency: "High"},
			{ID: "2", Name: "Food Drive"},
		},
		Enrolled: []domain.Event{{ID: "1", Name: "Cleanup"}},
	})
	c.MarkEnrolled("7", "1")
	d, _ := c.Get("7")
	if !d.Browse[0].Enrolled() {
		t.Error("browse copy should be marked enrolled")
	}
	if !d.Enrolled[0].Enrolled() {
		t.Error("enrolled copy should be marked enrolled")
	}
	if d.Browse[1].Enrolled() {
		t.Error("other events must not change")
	}
	if d.Browse[0].Name != "Cleanup" || d.Browse[0].Urgency != "High" {
		t.Error("only the status field may change")
	}
}

func TestMarkEnrolledUnknownUser(t *testing.T) {
	c := New()
	c.MarkEnrolled("missing", "1")
	if _, ok := c.Get("missing"); ok {
		t.Fatal("patching an absent snapshot must not create one")
	}
}
