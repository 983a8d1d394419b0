package landscape

// Cell is one cube of the landscape at a fixed world position on the ground
// plane.
type Cell struct {
	X, Z float64
}

// BuildCells lays out a square grid of side cubeAmount+1 centered on the
// origin. The x index is the outer loop, so cell i sits at
// (i/side, i%side) in grid coordinates.
func BuildCells(cubeWidth float64, cubeAmount int) []Cell {
	if cubeAmount < 0 {
		return nil
	}
	side := cubeAmount + 1
	half := float64(cubeAmount) * cubeWidth / 2
	cells := make([]Cell, 0, side*side)
	for x := 0; x < side; x++ {
		for z := 0; z < side; z++ {
			cells = append(cells, Cell{
				X: float64(x)*cubeWidth - half,
				Z: float64(z)*cubeWidth - half,
			})
		}
	}
	return cells
}
