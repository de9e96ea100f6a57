// ABOUTME: Session contract: the signed-in user profile and their preferences.
// ABOUTME: An absent profile means the session is not authenticated.
package session

import (
	"encoding/json"
	"time"
)

// Preferences are per-user display and calendar settings.
type Preferences struct {
	// WeekStartsOn is 0 for Sunday and 1 for Monday.
	WeekStartsOn    int    `json:"week_starts_on"`
	Units           string `json:"units,omitempty"`
	Theme           string `json:"theme,omitempty"`
	DefaultRestTime int    `json:"default_rest_time,omitempty"`
}

// DefaultPreferences returns Monday week start, metric units and 90s rest.
func DefaultPreferences() Preferences {
	return Preferences{
		WeekStartsOn:    1,
		Units:           "metric",
		Theme:           "system",
		DefaultRestTime: 90,
	}
}

// WeekStart converts WeekStartsOn to a weekday. Anything but 0 means Monday.
func (p Preferences) WeekStart() time.Weekday {
	if p.WeekStartsOn == 0 {
		return time.Sunday
	}
	return time.Monday
}

// RestSeconds returns the default rest between sets.
func (p Preferences) RestSeconds() int {
	if p.DefaultRestTime <= 0 {
		return 90
	}
	return p.DefaultRestTime
}

// User is the locally signed-in profile.
type User struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Email          string      `json:"email,omitempty"`
	Preferences    Preferences `json:"preferences"`
	WeeklyWorkouts int         `json:"weekly_workouts,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
}

// UnmarshalJSON fills preferences the document leaves out with defaults,
// so a profile without week_starts_on still starts weeks on Monday.
func (u *User) UnmarshalJSON(data []byte) error {
	type plain User
	p := plain{Preferences: DefaultPreferences()}
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*u = User(p)
	return nil
}

// Session exposes the authentication flag and preferences to the stores.
type Session struct {
	user *User
}

// New wraps a user. A nil user yields an unauthenticated session.
func New(user *User) *Session {
	return &Session{user: user}
}

// IsAuthenticated reports whether a user is signed in.
func (s *Session) IsAuthenticated() bool {
	return s != nil && s.user != nil
}

// User returns the signed-in user, if any.
func (s *Session) User() (User, bool) {
	if !s.IsAuthenticated() {
		return User{}, false
	}
	return *s.user, true
}

// Preferences returns the user's preferences, or defaults when signed out.
func (s *Session) Preferences() Preferences {
	if !s.IsAuthenticated() {
		return DefaultPreferences()
	}
	return s.user.Preferences
}
