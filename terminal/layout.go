package terminal

// hudRows is the number of rows reserved above the field.
const hudRows = 1

// Layout maps between terminal cells and field coordinates. The field is
// stretched over every cell below the HUD row.
type Layout struct {
	Cols, Rows     int
	FieldW, FieldH float64
}

func (l Layout) fieldRows() int {
	return max(l.Rows-hudRows, 1)
}

// CellToField returns the field position at the centre of a cell.
// Cells in the HUD row map to the top edge of the field.
func (l Layout) CellToField(col, row int) (x, y float64) {
	cols := max(l.Cols, 1)
	row = max(row-hudRows, 0)
	x = (float64(col) + 0.5) * l.FieldW / float64(cols)
	y = (float64(row) + 0.5) * l.FieldH / float64(l.fieldRows())
	return x, y
}

// FieldToCell returns the cell containing a field position and whether
// that position lies on screen.
func (l Layout) FieldToCell(x, y float64) (col, row int, ok bool) {
	if l.Cols <= 0 || l.FieldW <= 0 || l.FieldH <= 0 || !(x >= 0 && x < l.FieldW && y >= 0 && y < l.FieldH) {
		return 0, 0, false
	}
	col = int(x / l.FieldW * float64(l.Cols))
	row = int(y/l.FieldH*float64(l.fieldRows())) + hudRows
	return col, row, true
}
