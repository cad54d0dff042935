package main

import "testing"

func TestParseNodeValid(t *testing.T) {
	n, err := parseNode("3", "7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Row != 3 || n.Col != 7 {
		t.Errorf("got (%d,%d), want (3,7)", n.Row, n.Col)
	}
}

func TestParseNodeRejectsNonInteger(t *testing.T) {
	if _, err := parseNode("x", "7"); err == nil {
		t.Error("expected error for non-integer row")
	}
	if _, err := parseNode("3", "y"); err == nil {
		t.Error("expected error for non-integer column")
	}
}
