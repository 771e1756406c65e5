package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blob-arcade/internal/storage"
)

func TestStatsModel(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("storage.Open failed: %v", err)
	}
	defer store.Close()

	for _, r := range []storage.Run{
		{LevelName: "Alpha", Source: "embedded", Ticks: 120, Respawns: 1},
		{LevelName: "Alpha", Source: "embedded", Ticks: 90, Respawns: 0},
		{LevelName: "Beta", Source: "embedded", Ticks: 600, Respawns: 4},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun failed: %v", err)
		}
	}

	m := NewStatsModel(store, 100, 30, 60)
	if m.Selected() != "Alpha" {
		t.Fatalf("selected = %q, expected Alpha", m.Selected())
	}
	if len(m.runs) != 2 || m.runs[0].Ticks != 90 {
		t.Errorf("expected Alpha runs best first, got %+v", m.runs)
	}
	if view := m.View(); !strings.Contains(view, "1.5s") {
		t.Error("view should show the best time in seconds")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(StatsModel)
	if m.Selected() != "Beta" {
		t.Errorf("selected = %q after tab, expected Beta", m.Selected())
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(StatsModel)
	if m.Selected() != "Alpha" {
		t.Errorf("selected = %q after shift+tab, expected Alpha", m.Selected())
	}
}

func TestStatsModelEmpty(t *testing.T) {
	m := NewStatsModel(nil, 60, 20, 60)
	if m.Selected() != "" {
		t.Errorf("selected = %q, expected empty", m.Selected())
	}
	if view := m.View(); !strings.Contains(view, "No runs recorded yet") {
		t.Error("empty board should say so")
	}
}

func TestFormatTicks(t *testing.T) {
	if got := formatTicks(90, 60); got != "1.5s" {
		t.Errorf("formatTicks(90, 60) = %q", got)
	}
	if got := formatTicks(90, 0); got != "90 f" {
		t.Errorf("formatTicks(90, 0) = %q", got)
	}
}
