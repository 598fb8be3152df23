package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/thatcatcamp/palettekitty/internal/palette"
)

func TestGenerateFromArg(t *testing.T) {
	tests := []struct {
		arg  string
		seed string
	}{
		{"#3f51b5", "#3f51b5"},
		{"3f51b5", "#3f51b5"},
		{"3F51B5", "#3f51b5"},
		{"indigo", "#3f51b5"},
		{"Teal", "#009688"},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			p, err := generateFromArg(tt.arg)
			if err != nil {
				t.Fatalf("generateFromArg failed: %v", err)
			}
			if p.Seed != tt.seed {
				t.Errorf("expected seed %s, got %s", tt.seed, p.Seed)
			}
		})
	}
}

func TestGenerateFromArgInvalid(t *testing.T) {
	for _, arg := range []string{"zzzzzz", "#fff", "not-a-preset"} {
		if _, err := generateFromArg(arg); !errors.Is(err, palette.ErrColorNotFound) {
			t.Errorf("%s: expected ErrColorNotFound, got %v", arg, err)
		}
	}
}

func TestWritePaletteTable(t *testing.T) {
	p, _ := palette.Generate("#3f51b5")

	var buf bytes.Buffer
	writePaletteTable(&buf, p)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 15 {
		t.Fatalf("expected header plus 14 rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[6], "500") || !strings.Contains(lines[6], "#3f51b5") {
		t.Errorf("unexpected 500 row: %q", lines[6])
	}
}

func TestWritePaletteJSON(t *testing.T) {
	p, _ := palette.Generate("#3f51b5")

	var buf bytes.Buffer
	if err := writePaletteJSON(&buf, p); err != nil {
		t.Fatalf("writePaletteJSON failed: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if decoded["500"] != "#3f51b5" {
		t.Errorf("expected 500 to be #3f51b5, got %v", decoded["500"])
	}
}
