// ABOUTME: Tests for lead capture tool handlers
// ABOUTME: Validates field updates, invalid names, and finalize
package handlers

import (
	"context"
	"errors"
	"testing"

	"github.com/poojareddy/voicedesk/models"
)

func TestUpdateLeadFieldHandler(t *testing.T) {
	st := setupTestStore(t)
	h := NewLeadHandlers(st, nil, "sess-test")

	_, out, err := h.UpdateLeadField(context.Background(), nil, UpdateLeadFieldInput{
		Field: "organization",
		Value: "Chai Point",
	})
	if err != nil {
		t.Fatalf("UpdateLeadField failed: %v", err)
	}
	if out.Lead.Organization != "Chai Point" {
		t.Errorf("expected organization set, got %+v", out.Lead)
	}
	if out.Message == "" {
		t.Error("expected a confirmation message")
	}

	leads, err := st.LoadLeads()
	if err != nil {
		t.Fatalf("LoadLeads failed: %v", err)
	}
	if len(leads) != 1 {
		t.Errorf("expected 1 persisted snapshot, got %d", len(leads))
	}
}

func TestUpdateLeadFieldRejectsUnknownName(t *testing.T) {
	st := setupTestStore(t)
	h := NewLeadHandlers(st, nil, "sess-test")

	_, _, err := h.UpdateLeadField(context.Background(), nil, UpdateLeadFieldInput{
		Field: "annual_revenue",
		Value: "1cr",
	})
	if err == nil {
		t.Fatal("expected a tool error for unknown field")
	}
	if !errors.Is(err, models.ErrInvalidField) {
		t.Errorf("expected ErrInvalidField, got %v", err)
	}
}

func TestFinalizeLeadHandler(t *testing.T) {
	st := setupTestStore(t)
	h := NewLeadHandlers(st, nil, "sess-test")

	if _, _, err := h.UpdateLeadField(context.Background(), nil, UpdateLeadFieldInput{Field: "name", Value: "Dev Patel"}); err != nil {
		t.Fatalf("UpdateLeadField failed: %v", err)
	}

	_, out, err := h.FinalizeLead(context.Background(), nil, FinalizeLeadInput{})
	if err != nil {
		t.Fatalf("FinalizeLead failed: %v", err)
	}
	if out.Lead.Name != "Dev Patel" {
		t.Errorf("expected final lead snapshot, got %+v", out.Lead)
	}

	leads, err := st.LoadLeads()
	if err != nil {
		t.Fatalf("LoadLeads failed: %v", err)
	}
	if len(leads) != 2 {
		t.Errorf("expected update + final snapshots, got %d", len(leads))
	}
}
