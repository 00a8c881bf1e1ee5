package gamemap

// Entities holds the positions found by ConvertMap, each list in row-major order.
type Entities struct {
	Robots  []Position
	Charges []Position
	Keys    []Position
	Player  Position
}

// ConvertMap scans g once and collects robot, charge and key positions plus
// the player position. Player is NoPosition when the grid has no player cell;
// if several exist the last one scanned wins.
func ConvertMap(g *Grid) Entities {
	e := Entities{Player: NoPosition}
	g.ForEach(func(pos Position, c Cell) {
		switch c.Kind {
		case KindRobot:
			e.Robots = append(e.Robots, pos)
		case KindCharge:
			e.Charges = append(e.Charges, pos)
		case KindKey:
			e.Keys = append(e.Keys, pos)
		case KindPlayer:
			e.Player = pos
		}
	})
	return e
}
