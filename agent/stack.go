package agent

import "battleship/game"

// stack is a LIFO of coordinates next to confirmed hits.
type stack struct {
	items []game.Coordinate
}

func (s *stack) push(c game.Coordinate) {
	s.items = append(s.items, c)
}

func (s *stack) pop() (game.Coordinate, bool) {
	if len(s.items) == 0 {
		return game.Coordinate{}, false
	}
	last := len(s.items) - 1
	c := s.items[last]
	s.items = s.items[:last]
	return c, true
}

func (s *stack) len() int {
	return len(s.items)
}
