package snake

// Pilot chooses a direction before each tick
type Pilot interface {
	Next(geo *Geometry, v View) Direction
}

// Autopilot steers toward the oldest food and away from edges and its own
// body. It keeps no state between ticks.
type Autopilot struct{}

// Next applies, in order: safety (no limit, out-of-range or body cell),
// food seeking along the longer axis first, holding the current heading,
// then any safe direction in cyclic order. With no safe move it keeps the
// current heading.
func (Autopilot) Next(geo *Geometry, v View) Direction {
	head := v.Head()
	if head == 0 || !geo.InRange(head) {
		return v.Direction
	}

	safe := func(d Direction) bool {
		next := geo.Next(head, d)
		if geo.IsLimit(d, next) || !geo.InRange(next) {
			return false
		}
		// the tail moves out of the way unless the snake is still growing
		body := v.Body
		if len(body) == v.Len {
			body = body[1:]
		}
		for _, c := range body {
			if c == next {
				return false
			}
		}
		return true
	}

	// --- Priority 1: seek food ---
	if len(v.Foods) > 0 && geo.InRange(v.Foods[0]) {
		for _, d := range towards(geo, head, v.Foods[0]) {
			if safe(d) {
				return d
			}
		}
	}

	// --- Priority 2: hold heading ---
	if safe(v.Direction) {
		return v.Direction
	}

	// --- Priority 3: anything that survives ---
	for i := 1; i < len(Directions); i++ {
		d := (v.Direction + Direction(i)) % 4
		if safe(d) {
			return d
		}
	}
	return v.Direction
}

// towards lists the directions that close the distance from head to target,
// the axis with the larger gap first.
func towards(geo *Geometry, head, target int) []Direction {
	hr, hc := geo.RowCol(head)
	tr, tc := geo.RowCol(target)
	dr, dc := tr-hr, tc-hc

	var vertical, horizontal []Direction
	switch {
	case dr > 0:
		vertical = []Direction{Down}
	case dr < 0:
		vertical = []Direction{Up}
	}
	switch {
	case dc > 0:
		horizontal = []Direction{Right}
	case dc < 0:
		horizontal = []Direction{Left}
	}

	if abs(dr) >= abs(dc) {
		return append(vertical, horizontal...)
	}
	return append(horizontal, vertical...)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
