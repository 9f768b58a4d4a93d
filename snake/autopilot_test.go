package snake

import "testing"

func TestAutopilot(t *testing.T) {
	geo, err := NewGeometry(121)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		view View
		want Direction
	}{
		{
			name: "seeks food on the longer axis",
			view: View{Body: []int{1, 2, 3}, Foods: []int{36}, Direction: Right, Len: 3},
			want: Down,
		},
		{
			name: "turns before the right edge",
			view: View{Body: []int{9, 10, 11}, Direction: Right, Len: 3},
			want: Down,
		},
		{
			name: "refuses to reverse into the body",
			view: View{Body: []int{3, 4, 5}, Foods: []int{2}, Direction: Right, Len: 3},
			want: Right,
		},
		{
			name: "avoids the top edge",
			view: View{Body: []int{27, 16, 5}, Direction: Up, Len: 3},
			want: Right,
		},
		{
			name: "moving tail is free",
			view: View{Body: []int{1, 12, 13, 2}, Direction: Left, Len: 4},
			want: Left,
		},
		{
			name: "growing tail still blocks",
			view: View{Body: []int{1, 12, 13, 2}, Direction: Left, Len: 5},
			want: Right,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := (Autopilot{}).Next(geo, tt.view); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestAutopilotReachesFood(t *testing.T) {
	// food at 61: five rows down, three columns right of the head
	tg := newTestGame(t, DefaultConfig(), sequence(60), WithPilot(Autopilot{}))

	for i := 0; i < 40 && tg.Snapshot().Score == 0; i++ {
		if err := tg.Step(); err != nil {
			t.Fatalf("tick %d: %v", i, err)
		}
	}
	v := tg.Snapshot()
	if v.State == Failed || v.Score != 1 {
		t.Fatalf("expected the autopilot to eat once, got %+v", v)
	}
	if v.Head() != 61 {
		t.Errorf("expected head on the eaten cell 61, got %d", v.Head())
	}
}
