// ABOUTME: BodyMetric model for append-only body measurements.
// ABOUTME: Weight, body fat and circumference measurements are all optional.
package models

import (
	"time"
)

// Measurements holds optional circumference readings in the user's units.
type Measurements struct {
	Chest *float64
	Waist *float64
	Hips  *float64
	Bicep *float64
	Thigh *float64
}

// BodyMetric is a dated body measurement record.
type BodyMetric struct {
	ID           string
	Date         time.Time
	Weight       *float64
	BodyFat      *float64
	Measurements Measurements
	Photos       []string
}

// NewBodyMetric creates a new BodyMetric dated now.
func NewBodyMetric() *BodyMetric {
	return &BodyMetric{
		ID:   NewID(),
		Date: time.Now(),
	}
}

// WithDate sets a custom measurement date.
func (m *BodyMetric) WithDate(t time.Time) *BodyMetric {
	m.Date = t
	return m
}

// WithWeight sets the body weight.
func (m *BodyMetric) WithWeight(w float64) *BodyMetric {
	m.Weight = &w
	return m
}

// WithBodyFat sets the body fat percentage.
func (m *BodyMetric) WithBodyFat(pct float64) *BodyMetric {
	m.BodyFat = &pct
	return m
}

// Clone returns a deep copy.
func (m BodyMetric) Clone() BodyMetric {
	out := m
	out.Weight = clonePtr(m.Weight)
	out.BodyFat = clonePtr(m.BodyFat)
	out.Measurements = Measurements{
		Chest: clonePtr(m.Measurements.Chest),
		Waist: clonePtr(m.Measurements.Waist),
		Hips:  clonePtr(m.Measurements.Hips),
		Bicep: clonePtr(m.Measurements.Bicep),
		Thigh: clonePtr(m.Measurements.Thigh),
	}
	if m.Photos != nil {
		out.Photos = append([]string(nil), m.Photos...)
	}
	return out
}
