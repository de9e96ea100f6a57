// ABOUTME: Tests for the session contract.
// ABOUTME: Covers authentication state and week-start conversion.
package session

import (
	"encoding/json"
	"testing"
	"time"
)

func TestIsAuthenticated(t *testing.T) {
	tests := []struct {
		name string
		s    *Session
		want bool
	}{
		{"nil session", nil, false},
		{"no user", New(nil), false},
		{"user", New(&User{ID: "u1", Name: "Sam"}), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.IsAuthenticated(); got != tt.want {
				t.Errorf("IsAuthenticated() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		weekStartsOn int
		want         time.Weekday
	}{
		{0, time.Sunday},
		{1, time.Monday},
		{5, time.Monday},
	}
	for _, tt := range tests {
		got := Preferences{WeekStartsOn: tt.weekStartsOn}.WeekStart()
		if got != tt.want {
			t.Errorf("WeekStart(%d) = %v, want %v", tt.weekStartsOn, got, tt.want)
		}
	}
}

func TestPreferencesFallBackToDefaults(t *testing.T) {
	p := New(nil).Preferences()
	if p.WeekStart() != time.Monday {
		t.Errorf("default week start = %v, want Monday", p.WeekStart())
	}
	if p.RestSeconds() != 90 {
		t.Errorf("default rest = %d, want 90", p.RestSeconds())
	}

	u := &User{ID: "u1", Preferences: Preferences{WeekStartsOn: 0, DefaultRestTime: 120}}
	p = New(u).Preferences()
	if p.WeekStart() != time.Sunday || p.RestSeconds() != 120 {
		t.Errorf("preferences = %+v", p)
	}
}

func TestUserMissingPreferencesUseDefaults(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want time.Weekday
	}{
		{"no preferences", `{"id":"u1","name":"Sam"}`, time.Monday},
		{"partial preferences", `{"id":"u1","name":"Sam","preferences":{"units":"imperial"}}`, time.Monday},
		{"explicit sunday", `{"id":"u1","name":"Sam","preferences":{"week_starts_on":0}}`, time.Sunday},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var u User
			if err := json.Unmarshal([]byte(tt.doc), &u); err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}
			if got := u.Preferences.WeekStart(); got != tt.want {
				t.Errorf("WeekStart() = %v, want %v", got, tt.want)
			}
			if u.Name != "Sam" {
				t.Errorf("Name = %q, want Sam", u.Name)
			}
		})
	}
}
