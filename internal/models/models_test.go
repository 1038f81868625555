package models

import "testing"

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Language
	}{
		{name: "spanish", input: "es", want: LanguageSpanish},
		{name: "spanish sp alias", input: "sp", want: LanguageSpanish},
		{name: "spanish uppercase", input: "ES", want: LanguageSpanish},
		{name: "spanish padded", input: "  es ", want: LanguageSpanish},
		{name: "english", input: "en", want: LanguageEnglish},
		{name: "unknown defaults to english", input: "fr", want: LanguageEnglish},
		{name: "empty defaults to english", input: "", want: LanguageEnglish},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ParseLanguage(tt.input)
			if result != tt.want {
				t.Errorf("ParseLanguage(%q) = %v, want %v", tt.input, result, tt.want)
			}
		})
	}
}

func TestResolveLanguage(t *testing.T) {
	es := LanguageSpanish

	if got := ResolveLanguage(nil); got != LanguageEnglish {
		t.Errorf("ResolveLanguage(nil) = %v, want en", got)
	}
	if got := ResolveLanguage(&es); got != LanguageSpanish {
		t.Errorf("ResolveLanguage(&es) = %v, want es", got)
	}
}

func TestReviewStatusIsPending(t *testing.T) {
	tests := []struct {
		status ReviewStatus
		want   bool
	}{
		{ReviewPending, true},
		{ReviewNeedsEdit, true},
		{ReviewApproved, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if got := tt.status.IsPending(); got != tt.want {
				t.Errorf("%s.IsPending() = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}

func TestInviteStatusCanAdvanceTo(t *testing.T) {
	tests := []struct {
		name string
		from InviteStatus
		to   InviteStatus
		want bool
	}{
		{name: "draft to sent", from: InviteDraft, to: InviteSent, want: true},
		{name: "sent to opened", from: InviteSent, to: InviteOpened, want: true},
		{name: "opened to started", from: InviteOpened, to: InviteStarted, want: true},
		{name: "started to accepted", from: InviteStarted, to: InviteAccepted, want: true},
		{name: "started to declined", from: InviteStarted, to: InviteDeclined, want: true},
		{name: "skip ahead draft to opened", from: InviteDraft, to: InviteOpened, want: true},
		{name: "no backwards move", from: InviteStarted, to: InviteOpened, want: false},
		{name: "no self transition", from: InviteOpened, to: InviteOpened, want: false},
		{name: "accepted is terminal", from: InviteAccepted, to: InviteDeclined, want: false},
		{name: "declined is terminal", from: InviteDeclined, to: InviteAccepted, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.CanAdvanceTo(tt.to); got != tt.want {
				t.Errorf("%s.CanAdvanceTo(%s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestInviteStatusInclusionSets(t *testing.T) {
	// WasOpened absorbs every downstream stage, WasStarted the stages after it
	opened := []InviteStatus{InviteOpened, InviteStarted, InviteAccepted, InviteDeclined}
	for _, s := range opened {
		if !s.WasOpened() {
			t.Errorf("%s.WasOpened() = false, want true", s)
		}
	}
	for _, s := range []InviteStatus{InviteDraft, InviteSent} {
		if s.WasOpened() {
			t.Errorf("%s.WasOpened() = true, want false", s)
		}
	}

	started := []InviteStatus{InviteStarted, InviteAccepted, InviteDeclined}
	for _, s := range started {
		if !s.WasStarted() {
			t.Errorf("%s.WasStarted() = false, want true", s)
		}
	}
	if InviteOpened.WasStarted() {
		t.Error("opened.WasStarted() = true, want false")
	}
}

func TestInviteDefaults(t *testing.T) {
	invite := SMSInvite{GuestName: "Alex"}

	if got := invite.Seats(); got != 1 {
		t.Errorf("Seats() = %d, want 1 when unset", got)
	}
	if got := invite.Language(); got != LanguageEnglish {
		t.Errorf("Language() = %v, want en when unset", got)
	}

	seats := 4
	es := LanguageSpanish
	invite.ReservedSeats = &seats
	invite.InviteLanguage = &es

	if got := invite.Seats(); got != 4 {
		t.Errorf("Seats() = %d, want 4", got)
	}
	if got := invite.Language(); got != LanguageSpanish {
		t.Errorf("Language() = %v, want es", got)
	}
}
