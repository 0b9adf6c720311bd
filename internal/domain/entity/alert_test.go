package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlertSeverity_RequiresEscalation(t *testing.T) {
	assert.True(t, SeverityCritical.RequiresEscalation())
	assert.True(t, SeverityHigh.RequiresEscalation())
	assert.False(t, SeverityMedium.RequiresEscalation())
	assert.False(t, SeverityLow.RequiresEscalation())
}

func TestAlertStatus_IsTerminal(t *testing.T) {
	assert.False(t, StatusActive.IsTerminal())
	assert.False(t, StatusAcknowledged.IsTerminal())
	assert.True(t, StatusResolved.IsTerminal())
	assert.True(t, StatusFalseAlarm.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
}

func TestAlertStatus_IsValidResolution(t *testing.T) {
	assert.True(t, StatusResolved.IsValidResolution())
	assert.True(t, StatusFalseAlarm.IsValidResolution())
	assert.True(t, StatusCancelled.IsValidResolution())
	assert.False(t, StatusActive.IsValidResolution())
	assert.False(t, StatusAcknowledged.IsValidResolution())
}

func TestSOSAlert_Transitions(t *testing.T) {
	alert := &SOSAlert{Status: StatusActive}
	assert.True(t, alert.CanAcknowledge())
	assert.True(t, alert.CanResolve())

	alert.Status = StatusAcknowledged
	assert.False(t, alert.CanAcknowledge())
	assert.True(t, alert.CanResolve())

	alert.Status = StatusResolved
	assert.False(t, alert.CanAcknowledge())
	assert.False(t, alert.CanResolve())
}

func TestNotificationPreference_Channels(t *testing.T) {
	assert.Equal(t, []string{"email", "sms"}, PreferenceAll.Channels())
	assert.Equal(t, []string{"email"}, PreferenceEmail.Channels())
	assert.Equal(t, []string{"sms"}, PreferenceSMS.Channels())
}
