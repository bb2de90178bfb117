package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/appbook/appbook/models"
)

func TestCreateAppointmentInput(t *testing.T) {
	valid := func() CreateAppointmentInput {
		return CreateAppointmentInput{
			ProfessionalID: 1,
			ServiceType:    "Doctor",
			DateTime:       time.Now().Add(24 * time.Hour),
			Duration:       60,
		}
	}

	t.Run("valid", func(t *testing.T) {
		in := valid()
		if err := in.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("defaults duration", func(t *testing.T) {
		in := valid()
		in.Duration = 0
		if err := in.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if in.Duration != models.DefaultDuration {
			t.Errorf("duration = %d, want %d", in.Duration, models.DefaultDuration)
		}
	})

	fieldCases := []struct {
		name    string
		mutate  func(*CreateAppointmentInput)
		field   string
	}{
		{"missing professional", func(in *CreateAppointmentInput) { in.ProfessionalID = 0 }, "professional_id"},
		{"missing service type", func(in *CreateAppointmentInput) { in.ServiceType = "" }, "service_type"},
		{"past date", func(in *CreateAppointmentInput) { in.DateTime = time.Now().Add(-time.Hour) }, "date_time"},
		{"negative duration", func(in *CreateAppointmentInput) { in.Duration = -5 }, "duration"},
		{"notes too long", func(in *CreateAppointmentInput) { in.Notes = strings.Repeat("x", MaxNotesLength+1) }, "notes"},
	}

	for _, tt := range fieldCases {
		t.Run(tt.name, func(t *testing.T) {
			in := valid()
			tt.mutate(&in)
			err := in.Validate()
			if err == nil {
				t.Fatal("expected validation failure")
			}
			errs, ok := err.(FieldErrors)
			if !ok {
				t.Fatalf("expected FieldErrors, got %T", err)
			}
			if _, present := errs[tt.field]; !present {
				t.Errorf("expected failure on field %q, got %v", tt.field, errs)
			}
		})
	}
}

func TestUpdateAppointmentInput(t *testing.T) {
	badStatus := models.AppointmentStatus("SNOOZED")
	badDuration := -10
	in := UpdateAppointmentInput{Status: &badStatus, Duration: &badDuration}
	err := in.Validate()
	if err == nil {
		t.Fatal("expected validation failure")
	}
	errs := err.(FieldErrors)
	if _, ok := errs["status"]; !ok {
		t.Errorf("expected status error, got %v", errs)
	}
	if _, ok := errs["duration"]; !ok {
		t.Errorf("expected duration error, got %v", errs)
	}

	empty := UpdateAppointmentInput{}
	if err := empty.Validate(); err != nil {
		t.Errorf("empty update should be valid, got %v", err)
	}
}

func TestPaginationNormalize(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		limit     int
		wantPage  int
		wantLimit int
	}{
		{"defaults", 0, 0, 1, DefaultPageSize},
		{"capped limit", 1, 500, 1, MaxPageSize},
		{"negative page", -3, 25, 1, 25},
		{"unchanged", 2, 10, 2, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Pagination{Page: tt.page, Limit: tt.limit}
			p.Normalize(DefaultPageSize)
			if p.Page != tt.wantPage || p.Limit != tt.wantLimit {
				t.Errorf("got page=%d limit=%d, want page=%d limit=%d",
					p.Page, p.Limit, tt.wantPage, tt.wantLimit)
			}
		})
	}

	p := Pagination{Page: 3, Limit: 10}
	if p.Offset() != 20 {
		t.Errorf("Offset() = %d, want 20", p.Offset())
	}
}
