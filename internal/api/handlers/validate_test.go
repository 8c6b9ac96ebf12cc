package handlers

import (
	"strings"
	"testing"
)

type sampleRequest struct {
	Email  string `validate:"required,email"`
	Name   string `validate:"required,max=10"`
	Amount int    `validate:"gt=0"`
	Kind   string `validate:"oneof=Common Extraordinary"`
}

func TestValidateStruct(t *testing.T) {
	ok := sampleRequest{Email: "a@b.com", Name: "unit 3", Amount: 5, Kind: "Common"}
	if err := ValidateStruct(ok); err != nil {
		t.Errorf("valid struct rejected: %v", err)
	}

	bad := sampleRequest{Email: "not-an-email", Name: "", Amount: -1, Kind: "Other"}
	err := ValidateStruct(bad)
	if err == nil {
		t.Fatal("invalid struct accepted")
	}

	msgs := ValidationMessages(err)
	if len(msgs) != 4 {
		t.Fatalf("got %d messages, want 4: %v", len(msgs), msgs)
	}

	joined := strings.Join(msgs, "; ")
	for _, want := range []string{
		"email must be a valid email",
		"name cannot be empty",
		"amount must be greater than 0",
		"kind must be one of: Common Extraordinary",
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("messages %q missing %q", joined, want)
		}
	}
}

func TestValidationMessagesNonValidatorError(t *testing.T) {
	msgs := ValidationMessages(ValidateStruct("not a struct"))
	if len(msgs) != 1 || msgs[0] != "invalid request body" {
		t.Errorf("got %v, want the generic message", msgs)
	}
}
