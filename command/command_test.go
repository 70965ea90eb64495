package command

import "testing"

func TestCommandType_String(t *testing.T) {
	tests := []struct {
		ct   CommandType
		want string
	}{
		{CmdDrawCommand, "DrawCommand"},
		{CmdClipRect, "ClipRect"},
		{CmdConcat44, "Concat44"},
		{CmdSave, "Save"},
		{CmdSaveLayer, "SaveLayer"},
		{CmdRestore, "Restore"},
		{CommandType(254), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.ct.String(); got != tt.want {
				t.Errorf("CommandType.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCommandInterface(t *testing.T) {
	bounds := NewRect(0, 0, 100, 100)
	commands := []Command{
		DrawCommand{Name: "DrawRect", Paint: DefaultPaint()},
		ClipRectCommand{Bounds: bounds, Op: ClipIntersect, AntiAlias: true},
		Concat44Command{Matrix: Identity44()},
		SaveCommand{},
		SaveLayerCommand{Paint: DefaultPaint(), Bounds: &bounds},
		RestoreCommand{},
	}

	want := []CommandType{CmdDrawCommand, CmdClipRect, CmdConcat44, CmdSave, CmdSaveLayer, CmdRestore}
	for i, c := range commands {
		if got := c.Type(); got != want[i] {
			t.Errorf("commands[%d].Type() = %v, want %v", i, got, want[i])
		}
	}
}

func TestRecordLen(t *testing.T) {
	r := Record{
		{Index: 0, Command: SaveCommand{}},
		{Index: 1, Command: DrawCommand{Name: "DrawRect"}},
		{Index: 2, Command: RestoreCommand{}},
	}
	if got := r.Len(); got != 3 {
		t.Errorf("Record.Len() = %d, want 3", got)
	}
}

func TestClipOpString(t *testing.T) {
	if ClipIntersect.String() != "Intersect" {
		t.Errorf("ClipIntersect.String() = %q", ClipIntersect.String())
	}
	if ClipDifference.String() != "Difference" {
		t.Errorf("ClipDifference.String() = %q", ClipDifference.String())
	}
	if ClipOp(99).String() != "Unknown" {
		t.Errorf("ClipOp(99).String() = %q", ClipOp(99).String())
	}
}
