package generate

import (
	"math"
	"robot-battle/internal/gamemap"

	"github.com/zyedidia/generic/mapset"
)

// Generate builds a new grid from cfg. All randomness is drawn from cfg.Rand:
// one Intn per cell for the texture fill, then one Shuffle per placement pass.
func Generate(cfg *Config) (*gamemap.Grid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := gamemap.New(cfg.Rows, cfg.Cols, cfg.Tokens)
	for r := 0; r < cfg.Rows; r++ {
		for c := 0; c < cfg.Cols; c++ {
			id := cfg.Textures[cfg.Rand.Intn(len(cfg.Textures))]
			g.Set(gamemap.Position{Row: r, Col: c}, gamemap.MakeTexture(id))
		}
	}

	danger := DangerZone(cfg.Rows, cfg.Cols)
	// Each pass only sees cells left empty by the previous ones, so later
	// coefficients apply to a smaller pool.
	place(g, cfg, cfg.Coeff.Clefts, gamemap.MakeChasm(), danger)
	place(g, cfg, cfg.Coeff.Robots, gamemap.MakeRobot(), nil)
	place(g, cfg, cfg.Coeff.Charges, gamemap.MakeCharge(), nil)
	place(g, cfg, cfg.Coeff.Keys, gamemap.MakeKey(), nil)

	g.Set(cfg.PlayerPos, gamemap.MakePlayer())
	g.Set(cfg.ExitPos, gamemap.MakeExit())
	return g, nil
}

// FeatureCount is the number of cells a pass tries to fill.
func FeatureCount(rows, cols int, coeff float64) int {
	return int(math.Round(float64(rows*cols) * coeff))
}

// place overwrites up to FeatureCount empty cells with feature, skipping
// any cell in exclude.
func place(g *gamemap.Grid, cfg *Config, coeff float64, feature gamemap.Cell, exclude *mapset.Set[gamemap.Position]) {
	var candidates []gamemap.Position
	g.ForEach(func(pos gamemap.Position, c gamemap.Cell) {
		if !c.IsTexture() {
			return
		}
		if exclude != nil && exclude.Has(pos) {
			return
		}
		candidates = append(candidates, pos)
	})

	cfg.Rand.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	n := min(FeatureCount(cfg.Rows, cfg.Cols, coeff), len(candidates))
	for _, pos := range candidates[:n] {
		g.Set(pos, feature)
	}
}

// DangerZone returns the ten cells beside the left and right spawn corridors
// on the middle row that never receive a chasm. Cells falling outside a
// small grid are still listed; they simply never match a candidate.
func DangerZone(rows, cols int) *mapset.Set[gamemap.Position] {
	mid := rows / 2
	zone := mapset.New[gamemap.Position]()
	for _, p := range []gamemap.Position{
		{Row: mid - 1, Col: 0},
		{Row: mid - 1, Col: 1},
		{Row: mid + 1, Col: 0},
		{Row: mid + 1, Col: 1},
		{Row: mid, Col: 1},
		{Row: mid - 1, Col: cols - 1},
		{Row: mid - 1, Col: cols - 2},
		{Row: mid + 1, Col: cols - 1},
		{Row: mid + 1, Col: cols - 2},
		{Row: mid, Col: cols - 2},
	} {
		zone.Put(p)
	}
	return &zone
}
