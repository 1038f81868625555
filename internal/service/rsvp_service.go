package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"weddingrsvp/internal/dashboard"
	"weddingrsvp/internal/models"
	"weddingrsvp/internal/phone"
	"weddingrsvp/internal/repository"
	"weddingrsvp/internal/validation"
)

var ErrRSVPNotFound = errors.New("rsvp not found")

// RSVPSubmission carries a guest form submission into the service
type RSVPSubmission struct {
	Name             string          `json:"name"`
	Email            *string         `json:"email"`
	Language         models.Language `json:"language"`
	Attending        bool            `json:"attending"`
	GuestCount       int             `json:"guest_count"`
	PlusOneName      *string         `json:"plus_one_name"`
	Phone            *string         `json:"phone"`
	ArrivalAirport   *string         `json:"arrival_airport"`
	Hotel            *string         `json:"hotel"`
	AllergiesNotes   *string         `json:"allergies_notes"`
	TransportNeeded  *bool           `json:"transport_needed"`
	KidsFoodRequired *bool           `json:"kids_food_required"`
	BringingChildren *bool           `json:"bringing_children"`
	ChildrenCount    *int            `json:"children_count"`
	InviteToken      *string         `json:"invite_token"`
}

// RSVPService handles guest submissions and dashboard moderation
type RSVPService struct {
	rsvpRepo      *repository.RSVPRepository
	inviteService *InviteService
	emailService  *EmailService
}

// NewRSVPService creates a new RSVP service
func NewRSVPService(rsvpRepo *repository.RSVPRepository, inviteService *InviteService, emailService *EmailService) *RSVPService {
	return &RSVPService{
		rsvpRepo:      rsvpRepo,
		inviteService: inviteService,
		emailService:  emailService,
	}
}

// Submit validates and persists a guest submission. The invite funnel and
// the notification email are follow-ups: the funnel update is part of the
// primary action, while a notification failure only logs a warning.
func (s *RSVPService) Submit(ctx context.Context, sub RSVPSubmission) (*models.RSVPRecord, error) {
	if err := validation.ValidateGuestName(sub.Name); err != nil {
		return nil, err
	}
	if err := validation.ValidateGuestCount(sub.GuestCount); err != nil {
		return nil, err
	}
	if sub.Email != nil && strings.TrimSpace(*sub.Email) != "" {
		if err := validation.ValidateEmail(*sub.Email); err != nil {
			return nil, err
		}
	}
	if err := validation.ValidateChildren(sub.BringingChildren, sub.ChildrenCount); err != nil {
		return nil, err
	}

	language := sub.Language
	if language != models.LanguageSpanish {
		language = models.LanguageEnglish
	}

	record := &models.RSVPRecord{
		Name:             strings.TrimSpace(sub.Name),
		Email:            trimOptional(sub.Email),
		Language:         language,
		Attending:        sub.Attending,
		GuestCount:       sub.GuestCount,
		PlusOneName:      trimOptional(sub.PlusOneName),
		ArrivalAirport:   trimOptional(sub.ArrivalAirport),
		Hotel:            trimOptional(sub.Hotel),
		AllergiesNotes:   trimOptional(sub.AllergiesNotes),
		TransportNeeded:  sub.TransportNeeded,
		KidsFoodRequired: sub.KidsFoodRequired,
		BringingChildren: sub.BringingChildren,
		InviteToken:      trimOptional(sub.InviteToken),
		ReviewStatus:     models.ReviewApproved,
	}
	if record.BringingChildren != nil && *record.BringingChildren {
		record.ChildrenCount = sub.ChildrenCount
	}
	if p := trimOptional(sub.Phone); p != nil {
		normalized := phone.Normalize(*p, language)
		record.Phone = &normalized
	}

	s.flagDuplicates(record)

	if err := s.rsvpRepo.Insert(record); err != nil {
		return nil, fmt.Errorf("failed to save rsvp: %w", err)
	}

	if record.InviteToken != nil {
		if err := s.inviteService.RecordResponse(*record.InviteToken, record.Attending); err != nil {
			log.Printf("Warning: failed to update invite funnel for token %s: %v", *record.InviteToken, err)
		}
	}

	if err := s.emailService.SendRSVPNotification(ctx, record); err != nil {
		log.Printf("Warning: failed to send RSVP notification: %v", err)
	}

	return record, nil
}

// flagDuplicates marks a submission for review when another record already
// carries the same email or normalized phone
func (s *RSVPService) flagDuplicates(record *models.RSVPRecord) {
	if record.Email == nil && record.Phone == nil {
		return
	}

	count, err := s.rsvpRepo.CountMatching(record.Email, record.Phone)
	if err != nil {
		log.Printf("Warning: duplicate check failed: %v", err)
		return
	}
	if count > 0 {
		reason := "Possible duplicate: matches an existing response"
		record.DuplicateFlag = true
		record.DuplicateReason = &reason
		record.ReviewStatus = models.ReviewPending
	}
}

// ListForReview returns all records with review-pending ones first
func (s *RSVPService) ListForReview() ([]models.RSVPRecord, error) {
	records, err := s.rsvpRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list rsvps: %w", err)
	}
	return dashboard.SortForReview(records), nil
}

// Stats computes the dashboard response counters
func (s *RSVPService) Stats() (dashboard.RSVPStats, error) {
	records, err := s.rsvpRepo.List()
	if err != nil {
		return dashboard.RSVPStats{}, fmt.Errorf("failed to list rsvps: %w", err)
	}
	return dashboard.ComputeRSVPStats(records), nil
}

// Approve clears the duplicate flag and marks a record approved
func (s *RSVPService) Approve(id string) (*models.RSVPRecord, error) {
	record, err := s.rsvpRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get rsvp: %w", err)
	}
	if record == nil {
		return nil, ErrRSVPNotFound
	}

	record.ReviewStatus = models.ReviewApproved
	record.DuplicateFlag = false
	record.DuplicateReason = nil

	if err := s.rsvpRepo.Update(record); err != nil {
		return nil, fmt.Errorf("failed to update rsvp: %w", err)
	}
	return record, nil
}

// EditAndApprove applies operator edits to a record and approves it
func (s *RSVPService) EditAndApprove(id string, sub RSVPSubmission) (*models.RSVPRecord, error) {
	record, err := s.rsvpRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get rsvp: %w", err)
	}
	if record == nil {
		return nil, ErrRSVPNotFound
	}

	if err := validation.ValidateGuestName(sub.Name); err != nil {
		return nil, err
	}
	if err := validation.ValidateGuestCount(sub.GuestCount); err != nil {
		return nil, err
	}
	if err := validation.ValidateChildren(sub.BringingChildren, sub.ChildrenCount); err != nil {
		return nil, err
	}

	language := sub.Language
	if language != models.LanguageSpanish {
		language = models.LanguageEnglish
	}

	record.Name = strings.TrimSpace(sub.Name)
	record.Email = trimOptional(sub.Email)
	record.Language = language
	record.Attending = sub.Attending
	record.GuestCount = sub.GuestCount
	record.PlusOneName = trimOptional(sub.PlusOneName)
	record.ArrivalAirport = trimOptional(sub.ArrivalAirport)
	record.Hotel = trimOptional(sub.Hotel)
	record.AllergiesNotes = trimOptional(sub.AllergiesNotes)
	record.TransportNeeded = sub.TransportNeeded
	record.KidsFoodRequired = sub.KidsFoodRequired
	record.BringingChildren = sub.BringingChildren
	record.ChildrenCount = nil
	if record.BringingChildren != nil && *record.BringingChildren {
		record.ChildrenCount = sub.ChildrenCount
	}
	if p := trimOptional(sub.Phone); p != nil {
		normalized := phone.Normalize(*p, language)
		record.Phone = &normalized
	} else {
		record.Phone = nil
	}
	record.ReviewStatus = models.ReviewApproved
	record.DuplicateFlag = false
	record.DuplicateReason = nil

	if err := s.rsvpRepo.Update(record); err != nil {
		return nil, fmt.Errorf("failed to update rsvp: %w", err)
	}
	return record, nil
}

// Delete removes a record
func (s *RSVPService) Delete(id string) error {
	if err := s.rsvpRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete rsvp: %w", err)
	}
	return nil
}

// trimOptional trims an optional string, collapsing blank values to nil
func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
