package sms

import (
	"strings"
	"testing"

	"weddingrsvp/internal/models"
)

func makeInvite(language *models.Language, seats *int) *models.SMSInvite {
	return &models.SMSInvite{
		ID:             "id-1",
		GuestName:      "Alex",
		Phone:          "+15551234567",
		InviteLanguage: language,
		ReservedSeats:  seats,
		InviteToken:    "token-1",
		InviteURL:      "https://example.com/?invite=token-1",
		Status:         models.InviteDraft,
	}
}

func langPtr(l models.Language) *models.Language { return &l }
func intPtr(n int) *int                          { return &n }

func TestBuildInviteTextEnglish(t *testing.T) {
	text := BuildInviteText(makeInvite(langPtr(models.LanguageEnglish), intPtr(2)))

	for _, want := range []string{
		"Hello Alex",
		"We have reserved 2 seat(s) for you.",
		"https://example.com/?invite=token-1",
		"by 3/15/2026",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("english text missing %q:\n%s", want, text)
		}
	}
}

func TestBuildInviteTextDefaultsToEnglish(t *testing.T) {
	text := BuildInviteText(makeInvite(nil, intPtr(2)))

	if !strings.Contains(text, "Hello Alex") {
		t.Errorf("expected english greeting, got:\n%s", text)
	}
	if !strings.Contains(text, "seat(s) for you.") {
		t.Errorf("expected english seats sentence, got:\n%s", text)
	}
}

func TestBuildInviteTextSpanish(t *testing.T) {
	tests := []struct {
		name  string
		seats *int
		want  string
	}{
		{name: "singular seat", seats: intPtr(1), want: "1 lugar reservado para ti."},
		{name: "plural seats", seats: intPtr(4), want: "4 lugares reservados para ti y tus invitados."},
		{name: "zero seats uses plural", seats: intPtr(0), want: "0 lugares reservados para ti y tus invitados."},
		{name: "nil seats defaults to singular", seats: nil, want: "1 lugar reservado para ti."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := BuildInviteText(makeInvite(langPtr(models.LanguageSpanish), tt.seats))
			if !strings.Contains(text, tt.want) {
				t.Errorf("spanish text missing %q:\n%s", tt.want, text)
			}
			if !strings.Contains(text, "Hola Alex") {
				t.Errorf("spanish text missing greeting:\n%s", text)
			}
			if !strings.Contains(text, "antes del 15/03/2026") {
				t.Errorf("spanish text missing deadline:\n%s", text)
			}
		})
	}
}

func TestBuildInviteTextIsDeterministic(t *testing.T) {
	invite := makeInvite(langPtr(models.LanguageSpanish), intPtr(3))

	first := BuildInviteText(invite)
	second := BuildInviteText(invite)

	if first != second {
		t.Error("BuildInviteText produced different output for the same invite")
	}
}

func TestBuildInviteTextContainsURLOnOwnLine(t *testing.T) {
	invite := makeInvite(langPtr(models.LanguageEnglish), intPtr(1))
	text := BuildInviteText(invite)

	found := false
	for _, line := range strings.Split(text, "\n") {
		if line == invite.InviteURL {
			found = true
		}
	}
	if !found {
		t.Errorf("invite URL not on its own line:\n%s", text)
	}
}
