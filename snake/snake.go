package snake

// State of a snake
type State int

const (
	Running State = iota
	Failed
)

func (s State) String() string {
	if s == Failed {
		return "failed"
	}
	return "running"
}

// Step reports what one Tick changed
type Step struct {
	Vacated bool // the tail moved off Dropped
	Dropped int
	Next    int  // index the head tried to move to
	Ate     bool // a food was consumed; exactly one replacement is owed
	Failed  bool // Next was invalid and the snake is now Failed
}

// Snake is the body state machine. It is not safe for concurrent use; Game
// serializes access to it.
type Snake struct {
	geo        *Geometry
	initialLen int
	initialDir Direction
	strict     bool

	body   []int // oldest first, head last
	length int   // target body length, grows by one per food
	dir    Direction
	foods  []int // FIFO
	state  State
}

// NewSnake creates a Running snake with body 1..initialLen heading dir.
func NewSnake(geo *Geometry, initialLen int, dir Direction) (*Snake, error) {
	if geo == nil {
		return nil, configErrorf("geometry", "required")
	}
	if initialLen < 1 || initialLen > geo.TotalCells() {
		return nil, configErrorf("snake length", "%d must be between 1 and %d", initialLen, geo.TotalCells())
	}
	if !dir.Valid() {
		return nil, configErrorf("direction", "%d is not a direction", int(dir))
	}
	s := &Snake{
		geo:        geo,
		initialLen: initialLen,
		initialDir: dir,
	}
	s.Reset()
	return s, nil
}

// SetStrict toggles the extra out-of-range and self-collision checks.
func (s *Snake) SetStrict(strict bool) {
	s.strict = strict
}

// Reset restores the configured initial body, length and direction, drops all
// food and returns to Running.
func (s *Snake) Reset() {
	s.body = make([]int, 0, s.initialLen)
	for i := 1; i <= s.initialLen; i++ {
		s.body = append(s.body, i)
	}
	s.length = s.initialLen
	s.dir = s.initialDir
	s.foods = nil
	s.state = Running
}

// Tick advances the snake one cell. It returns ErrGameOver, and changes
// nothing, once the snake has failed.
func (s *Snake) Tick() (Step, error) {
	if s.state == Failed {
		return Step{}, ErrGameOver
	}

	var step Step
	step.Next = s.geo.Next(s.Head(), s.dir)
	if len(s.body) == s.length {
		step.Vacated = true
		step.Dropped = s.body[0]
		s.body = s.body[1:]
	}

	if !s.checkStep(step.Next) {
		s.state = Failed
		step.Failed = true
		return step, nil
	}

	if len(s.foods) > 0 && s.foods[0] == step.Next {
		s.foods = s.foods[1:]
		s.length++
		step.Ate = true
	}
	s.body = append(s.body, step.Next)
	return step, nil
}

func (s *Snake) checkStep(next int) bool {
	if s.geo.IsLimit(s.dir, next) {
		return false
	}
	if s.strict {
		return s.geo.InRange(next) && !s.Occupies(next)
	}
	return true
}

// ChangeDirection sets the heading for the next tick. Reversal is allowed.
// It reports false for an unknown direction.
func (s *Snake) ChangeDirection(d Direction) bool {
	if !d.Valid() {
		return false
	}
	s.dir = d
	return true
}

// AddFood queues a food index
func (s *Snake) AddFood(index int) {
	s.foods = append(s.foods, index)
}

// Occupies reports whether index is on the body
func (s *Snake) Occupies(index int) bool {
	for _, c := range s.body {
		if c == index {
			return true
		}
	}
	return false
}

// Head returns the newest body index
func (s *Snake) Head() int {
	if len(s.body) == 0 {
		return 0
	}
	return s.body[len(s.body)-1]
}

// Body returns a copy of the body, oldest first
func (s *Snake) Body() []int {
	return append([]int(nil), s.body...)
}

// Foods returns a copy of the food queue, oldest first
func (s *Snake) Foods() []int {
	return append([]int(nil), s.foods...)
}

// Len returns the target body length
func (s *Snake) Len() int { return s.length }

// Direction returns the current heading
func (s *Snake) Direction() Direction { return s.dir }

// State returns Running or Failed
func (s *Snake) State() State { return s.state }
