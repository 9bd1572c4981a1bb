package mpvplayer

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

type recordingInput struct {
	commands   [][]string
	properties map[string]string
	failOn     string
}

func (r *recordingInput) Command(cmd []string) error {
	r.commands = append(r.commands, cmd)
	return nil
}

func (r *recordingInput) SetPropertyString(name, value string) error {
	if name == r.failOn {
		return errors.New("property unavailable")
	}
	if r.properties == nil {
		r.properties = make(map[string]string)
	}
	r.properties[name] = value
	return nil
}

func TestHideNativeControls(t *testing.T) {
	in := &recordingInput{}
	if err := hideNativeControls(in); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	want := []string{"script-message", "osc-visibility", "never", "no-osd"}
	if len(in.commands) != 1 || !reflect.DeepEqual(in.commands[0], want) {
		t.Errorf("Expected OSC to be hidden, got commands %v", in.commands)
	}
	if in.properties["input-default-bindings"] != "no" {
		t.Errorf("Expected default key bindings to be disabled")
	}
	if in.properties["input-vo-keyboard"] != "no" {
		t.Errorf("Expected window keyboard input to be disabled")
	}
}

func TestHideNativeControlsReportsEveryFailure(t *testing.T) {
	in := &recordingInput{failOn: "input-vo-keyboard"}
	err := hideNativeControls(in)
	if err == nil || !strings.Contains(err.Error(), "disable window keyboard") {
		t.Fatalf("Expected window keyboard failure, got %v", err)
	}
	// The remaining steps still ran
	if len(in.commands) != 1 || in.properties["input-default-bindings"] != "no" {
		t.Errorf("Expected the other steps to be applied despite the failure")
	}
}
