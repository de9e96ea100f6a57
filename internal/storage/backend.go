// ABOUTME: Backend interface for namespace-keyed durable storage.
// ABOUTME: Defines the four data namespaces and the not-found sentinel.
package storage

import (
	"errors"
	"os"
	"path/filepath"
)

// ErrNotFound is returned by a Backend when a key has never been written.
var ErrNotFound = errors.New("not found")

// Backend stores one opaque value per key. Set replaces the whole value.
// This interface allows swapping implementations (e.g., for testing).
type Backend interface {
	Get(key string) ([]byte, error)
	Set(key string, data []byte) error
	Delete(key string) error
	Close() error
}

// Namespace names one persisted collection.
type Namespace string

const (
	NamespaceWorkouts    Namespace = "workouts"
	NamespaceExercises   Namespace = "exercises"
	NamespaceBodyMetrics Namespace = "body-metrics"
	NamespaceGoals       Namespace = "goals"
)

// AllNamespaces lists every namespace in dependency order.
var AllNamespaces = []Namespace{
	NamespaceExercises, NamespaceWorkouts, NamespaceBodyMetrics, NamespaceGoals,
}

// IsValidNamespace checks if a string names a known namespace.
func IsValidNamespace(s string) bool {
	for _, ns := range AllNamespaces {
		if string(ns) == s {
			return true
		}
	}
	return false
}

// DataDir returns the default data directory under XDG_DATA_HOME.
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "gymtrack")
}
