package service

import (
	"strings"
	"testing"

	"weddingrsvp/internal/models"
)

func TestBuildRSVPNotificationBody(t *testing.T) {
	email := "maria@example.com"
	plusOne := "Carlos"
	phone := "+525541234567"
	transport := true
	bringing := true
	count := 2

	record := &models.RSVPRecord{
		Name:             "Maria Lopez",
		Email:            &email,
		Language:         models.LanguageSpanish,
		Attending:        true,
		GuestCount:       3,
		PlusOneName:      &plusOne,
		Phone:            &phone,
		TransportNeeded:  &transport,
		BringingChildren: &bringing,
		ChildrenCount:    &count,
	}

	body := buildRSVPNotificationBody(record)

	wantLines := []string{
		"Name: Maria Lopez",
		"Attending: Yes",
		"Guests: 3",
		"Plus one: Carlos",
		"Language: es",
		"Email: maria@example.com",
		"Phone: +525541234567",
		"Airport: N/A",
		"Transport needed: Yes",
		"Kids food required: Not specified",
		"Bringing children: Yes",
		"Children count: 2",
		"Notes: N/A",
	}
	for _, line := range wantLines {
		if !strings.Contains(body, line) {
			t.Errorf("expected body to contain %q, got:\n%s", line, body)
		}
	}
}

func TestBuildRSVPNotificationBodyNotAttending(t *testing.T) {
	record := &models.RSVPRecord{
		Name:       "John",
		Language:   models.LanguageEnglish,
		Attending:  false,
		GuestCount: 1,
	}

	body := buildRSVPNotificationBody(record)

	if !strings.Contains(body, "Attending: No") {
		t.Errorf("expected 'Attending: No' in body, got:\n%s", body)
	}
	if !strings.Contains(body, "Children count: Not specified") {
		t.Errorf("expected unset children count, got:\n%s", body)
	}
}

func TestEmailServiceDisabledSkipsSend(t *testing.T) {
	svc, err := NewEmailService("us-east-1", "", "", "")
	if err != nil {
		t.Fatalf("NewEmailService failed: %v", err)
	}
	if svc.IsEnabled() {
		t.Fatal("expected service to be disabled without addresses")
	}

	record := &models.RSVPRecord{Name: "John", GuestCount: 1}
	if err := svc.SendRSVPNotification(t.Context(), record); err != nil {
		t.Errorf("expected disabled send to be a no-op, got %v", err)
	}
}
