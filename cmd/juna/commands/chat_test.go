// ABOUTME: Tests for the chat command
// ABOUTME: Verifies command structure and mood flag validation

package commands

import (
	"bytes"
	"testing"
)

func TestNewChatCmd(t *testing.T) {
	cmd := NewChatCmd()

	if cmd.Use != "chat" {
		t.Errorf("Use = %q, want %q", cmd.Use, "chat")
	}
	if cmd.Short == "" {
		t.Error("Short description should not be empty")
	}

	mood := cmd.Flags().Lookup("mood")
	if mood == nil {
		t.Fatal("--mood flag not found")
	}
	if mood.DefValue != "baik" {
		t.Errorf("--mood default = %q, want %q", mood.DefValue, "baik")
	}
	if cmd.Flags().Lookup("session") == nil {
		t.Error("--session flag not found")
	}
}

func TestChatCmd_RejectsUnknownMood(t *testing.T) {
	root := NewRootCmd()
	var output bytes.Buffer
	root.SetOut(&output)
	root.SetErr(&output)
	root.SetArgs([]string{"chat", "--mood", "marah"})

	if err := root.Execute(); err == nil {
		t.Error("unknown mood should fail")
	}
}

func TestChatCmd_MoodNames(t *testing.T) {
	for _, mood := range []string{"baik", "galak", "random"} {
		if _, ok := moodNames[mood]; !ok {
			t.Errorf("mood %q not recognized", mood)
		}
	}
	if _, ok := moodNames["mean"]; ok {
		t.Error("mood surface should not expose 'mean' directly")
	}
}

func TestChatCmd_RejectsArgs(t *testing.T) {
	root := NewRootCmd()
	var output bytes.Buffer
	root.SetOut(&output)
	root.SetErr(&output)
	root.SetArgs([]string{"chat", "extra"})

	if err := root.Execute(); err == nil {
		t.Error("chat with positional args should fail")
	}
}
