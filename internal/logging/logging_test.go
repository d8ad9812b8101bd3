package logging

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// TestNewZapLogger_InvalidLevel tests that an unknown level is rejected.
func TestNewZapLogger_InvalidLevel(t *testing.T) {
	// Act
	_, err := NewZapLogger(Options{Level: "loud"})

	// Assert
	if err == nil {
		t.Fatal("expected error for invalid level, got nil")
	}
}

// TestNewZapLogger_InvalidFormat tests that an unknown format is rejected.
func TestNewZapLogger_InvalidFormat(t *testing.T) {
	// Act
	_, err := NewZapLogger(Options{Format: "xml"})

	// Assert
	if err == nil {
		t.Fatal("expected error for invalid format, got nil")
	}
}

// TestZapLogger_Printf tests that Printf writes a formatted info entry.
func TestZapLogger_Printf(t *testing.T) {
	// Arrange
	core, logs := observer.New(zap.InfoLevel)
	logger := NewZapLoggerFrom(zap.New(core))

	// Act
	logger.Printf("[Lookup] fetched %s", "octocat")

	// Assert
	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	if entries[0].Message != "[Lookup] fetched octocat" {
		t.Errorf("unexpected message %q", entries[0].Message)
	}
}
