package service

import (
	"context"
	"path/filepath"
	"testing"

	"weddingrsvp/internal/config"
	"weddingrsvp/internal/database"
	"weddingrsvp/internal/models"
	"weddingrsvp/internal/repository"
	"weddingrsvp/internal/sms"
)

func newTestServices(t *testing.T) (*RSVPService, *InviteService, *repository.InviteRepository) {
	t.Helper()

	cfg := &config.Config{
		DatabaseType: "sqlite",
		DatabasePath: filepath.Join(t.TempDir(), "test.db"),
	}
	db, err := database.Initialize(cfg)
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.RunMigrations("../../migrations"); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	emailService, err := NewEmailService("us-east-1", "", "", "")
	if err != nil {
		t.Fatalf("Failed to create email service: %v", err)
	}

	inviteRepo := repository.NewInviteRepository(db)
	inviteService := NewInviteService(inviteRepo, sms.NewTwilioSender("", "", "", ""), "https://example.com")
	rsvpService := NewRSVPService(repository.NewRSVPRepository(db), inviteService, emailService)
	return rsvpService, inviteService, inviteRepo
}

func TestSubmitFlagsDuplicateEmail(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	rsvpService, _, _ := newTestServices(t)
	email := "maria@example.com"

	first, err := rsvpService.Submit(context.Background(), RSVPSubmission{
		Name:       "Maria Lopez",
		Email:      &email,
		Attending:  true,
		GuestCount: 2,
	})
	if err != nil {
		t.Fatalf("First submit failed: %v", err)
	}
	if first.ReviewStatus != models.ReviewApproved {
		t.Errorf("expected first record approved, got %q", first.ReviewStatus)
	}
	if first.DuplicateFlag {
		t.Error("expected first record unflagged")
	}

	second, err := rsvpService.Submit(context.Background(), RSVPSubmission{
		Name:       "Maria L",
		Email:      &email,
		Attending:  true,
		GuestCount: 1,
	})
	if err != nil {
		t.Fatalf("Second submit failed: %v", err)
	}
	if !second.DuplicateFlag {
		t.Error("expected second record flagged as duplicate")
	}
	if second.ReviewStatus != models.ReviewPending {
		t.Errorf("expected second record pending review, got %q", second.ReviewStatus)
	}
	if second.DuplicateReason == nil {
		t.Error("expected a duplicate reason on the second record")
	}

	records, err := rsvpService.ListForReview()
	if err != nil {
		t.Fatalf("ListForReview failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].ID != second.ID {
		t.Error("expected the flagged record to sort first for review")
	}
	for _, r := range records {
		if r.ID == first.ID && r.ReviewStatus != models.ReviewApproved {
			t.Errorf("expected first record to stay approved, got %q", r.ReviewStatus)
		}
	}
}

func TestSubmitFlagsDuplicateNormalizedPhone(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	rsvpService, _, _ := newTestServices(t)
	rawPhone := "9735550102"
	formattedPhone := "(973) 555-0102"

	first, err := rsvpService.Submit(context.Background(), RSVPSubmission{
		Name:       "John Smith",
		Phone:      &rawPhone,
		Attending:  true,
		GuestCount: 1,
	})
	if err != nil {
		t.Fatalf("First submit failed: %v", err)
	}
	if first.DuplicateFlag {
		t.Error("expected first record unflagged")
	}

	// A differently formatted number normalizes to the same value and
	// must still trip the duplicate check
	second, err := rsvpService.Submit(context.Background(), RSVPSubmission{
		Name:       "Johnny Smith",
		Phone:      &formattedPhone,
		Attending:  false,
		GuestCount: 1,
	})
	if err != nil {
		t.Fatalf("Second submit failed: %v", err)
	}
	if second.Phone == nil || *second.Phone != "+19735550102" {
		t.Fatalf("expected normalized phone '+19735550102', got %v", second.Phone)
	}
	if !second.DuplicateFlag {
		t.Error("expected second record flagged as duplicate")
	}
	if second.ReviewStatus != models.ReviewPending {
		t.Errorf("expected second record pending review, got %q", second.ReviewStatus)
	}
}

func TestSubmitWithInviteTokenCompletesFunnel(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	rsvpService, inviteService, inviteRepo := newTestServices(t)

	accepted, err := inviteService.Create("Maria Lopez", "5541234567", nil, nil, nil)
	if err != nil {
		t.Fatalf("Failed to create invite: %v", err)
	}
	declined, err := inviteService.Create("John Smith", "9735550102", nil, nil, nil)
	if err != nil {
		t.Fatalf("Failed to create invite: %v", err)
	}

	if _, err := rsvpService.Submit(context.Background(), RSVPSubmission{
		Name:        "Maria Lopez",
		Attending:   true,
		GuestCount:  2,
		InviteToken: &accepted.InviteToken,
	}); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if _, err := rsvpService.Submit(context.Background(), RSVPSubmission{
		Name:        "John Smith",
		Attending:   false,
		GuestCount:  1,
		InviteToken: &declined.InviteToken,
	}); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	got, err := inviteRepo.GetByToken(accepted.InviteToken)
	if err != nil {
		t.Fatalf("GetByToken failed: %v", err)
	}
	if got.Status != models.InviteAccepted {
		t.Errorf("expected invite accepted, got %q", got.Status)
	}
	if got.RespondedAt == nil {
		t.Error("expected responded_at to be stamped")
	}

	got, err = inviteRepo.GetByToken(declined.InviteToken)
	if err != nil {
		t.Fatalf("GetByToken failed: %v", err)
	}
	if got.Status != models.InviteDeclined {
		t.Errorf("expected invite declined, got %q", got.Status)
	}
	if got.RespondedAt == nil {
		t.Error("expected responded_at to be stamped")
	}
}
