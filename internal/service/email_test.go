package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEntryAlertEmailTemplate(t *testing.T) {
	submitted := time.Date(2025, 6, 14, 15, 30, 0, 0, time.UTC)

	subject, body := entryAlertEmailTemplate("Emma", "Spirit", submitted, "We finally nailed the left lead canter.")

	assert.Equal(t, "New Journal Entry from Emma (Spirit)", subject)
	assert.Contains(t, body, "Hello Michelle,")
	assert.Contains(t, body, "Emma has just submitted a new journal entry for Spirit")
	assert.Contains(t, body, "Rider: Emma")
	assert.Contains(t, body, "Horse: Spirit")
	assert.Contains(t, body, "Submitted: June 14, 2025 at 3:30 PM")
	assert.Contains(t, body, "We finally nailed the left lead canter.")
}

func TestEmailServiceLogProvider(t *testing.T) {
	svc := NewEmailService("log", "", SMTPConfig{}, "noreply@test", "michelle@test")

	err := svc.NotifyEntryAlert("Emma", "Spirit", time.Now(), "preview")
	assert.NoError(t, err)
}

func TestEmailServiceUnknownProvider(t *testing.T) {
	svc := NewEmailService("carrier-pigeon", "", SMTPConfig{}, "noreply@test", "michelle@test")

	err := svc.NotifyEntryAlert("Emma", "Spirit", time.Now(), "preview")
	assert.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "unknown email provider"))
}

func TestEmailServiceUnconfiguredResend(t *testing.T) {
	svc := NewEmailService("resend", "", SMTPConfig{}, "noreply@test", "michelle@test")

	err := svc.NotifyEntryAlert("Emma", "Spirit", time.Now(), "preview")
	assert.Error(t, err)
}
