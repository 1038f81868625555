package validation

import "testing"

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{name: "valid email", email: "guest@example.com", wantErr: false},
		{name: "valid with plus", email: "guest+wedding@example.com", wantErr: false},
		{name: "empty", email: "", wantErr: true},
		{name: "whitespace only", email: "   ", wantErr: true},
		{name: "missing at", email: "guestexample.com", wantErr: true},
		{name: "missing tld", email: "guest@example", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateEmail(%q) error = %v, wantErr %v", tt.email, err, tt.wantErr)
			}
		})
	}
}

func TestValidateGuestName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid name", input: "Maria Lopez", wantErr: false},
		{name: "empty", input: "", wantErr: true},
		{name: "whitespace only", input: "  ", wantErr: true},
		{name: "single character", input: "M", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateGuestName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateGuestName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateGuestCount(t *testing.T) {
	if err := ValidateGuestCount(0); err == nil {
		t.Error("ValidateGuestCount(0) expected error")
	}
	if err := ValidateGuestCount(1); err != nil {
		t.Errorf("ValidateGuestCount(1) error = %v", err)
	}
	if err := ValidateGuestCount(8); err != nil {
		t.Errorf("ValidateGuestCount(8) error = %v", err)
	}
}

func TestValidateChildren(t *testing.T) {
	yes, no := true, false
	two, negative := 2, -1

	tests := []struct {
		name     string
		bringing *bool
		count    *int
		wantErr  bool
	}{
		{name: "no children no count", bringing: &no, count: nil, wantErr: false},
		{name: "bringing with count", bringing: &yes, count: &two, wantErr: false},
		{name: "count without bringing", bringing: &no, count: &two, wantErr: true},
		{name: "count with nil bringing", bringing: nil, count: &two, wantErr: true},
		{name: "negative count", bringing: &yes, count: &negative, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateChildren(tt.bringing, tt.count)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateChildren() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := ValidationError{Field: "email", Message: "email is required"}
	if err.Error() != "email: email is required" {
		t.Errorf("Error() = %q", err.Error())
	}
}
