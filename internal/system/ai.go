package system

import "robot-battle/internal/gamemap"

// StepRobot moves a robot one cell toward the player along a single axis.
// The row axis is used only when it has the strictly larger distance; ties
// go to the column axis. A step that would leave the grid is dropped and the
// other axis is not tried. dead reports whether the robot ended on a chasm.
func StepRobot(robot, player gamemap.Position, grid *gamemap.Grid) (next gamemap.Position, dead bool) {
	dx := player.Row - robot.Row
	dy := player.Col - robot.Col

	next = robot
	if abs(dx) > abs(dy) {
		next.Row += sign(dx)
	} else {
		next.Col += sign(dy)
	}
	if !grid.InBounds(next) {
		next = robot
	}
	return next, grid.At(next).IsHazard()
}

// StepRobots advances every robot in order and splits them into the ones
// still standing and the ones that fell into a chasm. Neither slice aliases
// robots.
func StepRobots(robots []gamemap.Position, player gamemap.Position, grid *gamemap.Grid) (alive, fallen []gamemap.Position) {
	alive = make([]gamemap.Position, 0, len(robots))
	for _, r := range robots {
		next, dead := StepRobot(r, player, grid)
		if dead {
			fallen = append(fallen, next)
			continue
		}
		alive = append(alive, next)
	}
	return alive, fallen
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}
