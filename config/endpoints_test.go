package config

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func newTestLogger(buf *bytes.Buffer, level log.Level) *log.Logger {
	return log.NewWithOptions(buf, log.Options{Level: level})
}

func TestResolveEntries(t *testing.T) {
	cases := []struct {
		base     string
		name     EndpointName
		expected string
	}{
		{"http://localhost:3001", QUESTIONS, "http://localhost:3001/questions"},
		{"https://api.example.com", AUTH_LOGIN, "https://api.example.com/api/auth/login"},
		{"https://api.example.com", AUTH_REFRESH, "https://api.example.com/api/auth/refresh"},
		{"https://api.example.com", AUTH_LOGOUT, "https://api.example.com/api/auth/logout"},
		{"https://api.example.com", USERS, "https://api.example.com/api/users"},
		{"https://api.example.com", PROGRESS, "https://api.example.com/api/progress"},
		{"https://api.example.com", LEADERBOARD, "https://api.example.com/api/leaderboard"},
		// no trimming, the base is used as given
		{"http://host/", QUESTIONS, "http://host//questions"},
	}
	var buf bytes.Buffer
	for _, c := range cases {
		e := Resolve(c.base, newTestLogger(&buf, log.InfoLevel))
		got, ok := e.Lookup(string(c.name))
		if !ok {
			t.Fatalf("Expected %s to exist in table.", c.name)
		}
		if got != c.expected {
			t.Error(fmt.Errorf("Unexpected url for %s. Expected: %s but received %s", c.name, c.expected, got))
		}
	}
}

func TestResolveStructFields(t *testing.T) {
	var buf bytes.Buffer
	e := Resolve("http://localhost:3001", newTestLogger(&buf, log.InfoLevel))
	if e.Questions != "http://localhost:3001/questions" {
		t.Errorf("Unexpected questions url: %s", e.Questions)
	}
	if e.Auth.Login != "http://localhost:3001/api/auth/login" {
		t.Errorf("Unexpected login url: %s", e.Auth.Login)
	}
	if e.Relative() {
		t.Error("Expected table with base url to not be relative.")
	}
}

func TestResolveIsDeterministic(t *testing.T) {
	var buf bytes.Buffer
	for _, base := range []string{"", "http://localhost:3001", "https://api.example.com/v1"} {
		a := Resolve(base, newTestLogger(&buf, log.InfoLevel))
		b := Resolve(base, newTestLogger(&buf, log.InfoLevel))
		if a != b {
			t.Errorf("Expected identical tables for base %q.", base)
		}
		for _, s := range suffixes {
			got, _ := a.Lookup(string(s.name))
			if got != base+s.suffix {
				t.Errorf("Expected %s to be %s but received %s", s.name, base+s.suffix, got)
			}
		}
	}
}

func TestResolveMissingBaseURL(t *testing.T) {
	var buf bytes.Buffer
	// only errors pass through this logger
	e := Resolve("", newTestLogger(&buf, log.ErrorLevel))
	if !strings.Contains(buf.String(), API_URL_KEY+" is not defined") {
		t.Errorf("Expected error diagnostic, got: %q", buf.String())
	}
	if !e.Relative() {
		t.Error("Expected table without base url to be relative.")
	}
	if e.Auth.Login != "/api/auth/login" {
		t.Errorf("Expected bare path, got %s", e.Auth.Login)
	}
	if strings.Contains(e.Questions, "undefined") {
		t.Errorf("Unexpected placeholder in %s", e.Questions)
	}
}

func TestResolveLogsBaseURL(t *testing.T) {
	var buf bytes.Buffer
	Resolve("https://api.example.com", newTestLogger(&buf, log.InfoLevel))
	if !strings.Contains(buf.String(), "https://api.example.com") {
		t.Errorf("Expected info diagnostic with base url, got: %q", buf.String())
	}

	buf.Reset()
	Resolve("https://api.example.com", newTestLogger(&buf, log.ErrorLevel))
	if buf.Len() != 0 {
		t.Errorf("Expected no error diagnostic when base url is set, got: %q", buf.String())
	}
}

func TestResolveNilLogger(t *testing.T) {
	e := Resolve("http://localhost:3001", nil)
	if e.Users != "http://localhost:3001/api/users" {
		t.Errorf("Unexpected users url: %s", e.Users)
	}
}

func TestTableIsACopy(t *testing.T) {
	var buf bytes.Buffer
	e := Resolve("http://localhost:3001", newTestLogger(&buf, log.InfoLevel))
	table := e.Table()
	if len(table) != len(Names()) {
		t.Fatalf("Expected %d entries, got %d", len(Names()), len(table))
	}
	table[QUESTIONS] = "http://evil.example.com/questions"
	delete(table, AUTH_LOGIN)

	if got, _ := e.Lookup(string(QUESTIONS)); got != "http://localhost:3001/questions" {
		t.Errorf("Mutating the table changed the endpoints: %s", got)
	}
	if again := e.Table(); again[AUTH_LOGIN] != "http://localhost:3001/api/auth/login" {
		t.Errorf("Expected a fresh table, got %v", again)
	}
}

func TestLookup(t *testing.T) {
	var buf bytes.Buffer
	e := Resolve("http://localhost:3001", newTestLogger(&buf, log.InfoLevel))
	if got, ok := e.Lookup(" auth.refresh "); !ok || got != "http://localhost:3001/api/auth/refresh" {
		t.Errorf("Expected case insensitive lookup, got %q %v", got, ok)
	}
	if _, ok := e.Lookup("SCORES"); ok {
		t.Error("Expected unknown name to not be found.")
	}
}

func TestNamesOrder(t *testing.T) {
	expected := []EndpointName{AUTH_LOGIN, AUTH_REFRESH, AUTH_LOGOUT, QUESTIONS, USERS, PROGRESS, LEADERBOARD}
	names := Names()
	if len(names) != len(expected) {
		t.Fatalf("Expected %d names, got %d", len(expected), len(names))
	}
	for i := range expected {
		if names[i] != expected[i] {
			t.Errorf("Expected %s at %d, got %s", expected[i], i, names[i])
		}
	}
}
