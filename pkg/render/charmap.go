package render

// CharMap is a rectangular character grid with a horizontal baseline row.
// It is the unit of composition for the two-dimensional renderer: grids
// are placed side by side aligned on their baselines, stacked into
// fractions, or raised into exponents.
type CharMap struct {
	cells    [][]rune // rectangular, row 0 on top
	baseline int      // row index operands align on
}

// NewCharMap returns a single-row grid holding text, baseline on that row.
func NewCharMap(text string) *CharMap {
	return &CharMap{cells: [][]rune{[]rune(text)}}
}

func blankCells(w, h int) [][]rune {
	cells := make([][]rune, h)
	for i := range cells {
		row := make([]rune, w)
		for j := range row {
			row[j] = ' '
		}
		cells[i] = row
	}
	return cells
}

// Width returns the number of columns.
func (m *CharMap) Width() int {
	if len(m.cells) == 0 {
		return 0
	}
	return len(m.cells[0])
}

// Height returns the number of rows.
func (m *CharMap) Height() int { return len(m.cells) }

// Baseline returns the baseline row index.
func (m *CharMap) Baseline() int { return m.baseline }

// Lines returns the grid as strings, one per row.
func (m *CharMap) Lines() []string {
	out := make([]string, len(m.cells))
	for i, row := range m.cells {
		out[i] = string(row)
	}
	return out
}

// blit copies src into m with its top-left corner at (row, col).
func (m *CharMap) blit(src *CharMap, row, col int) {
	for i, r := range src.cells {
		copy(m.cells[row+i][col:], r)
	}
}

// Beside juxtaposes grids left to right, aligned on their baselines.
func Beside(maps ...*CharMap) *CharMap {
	above, below, width := 0, 0, 0
	for _, src := range maps {
		if src.baseline > above {
			above = src.baseline
		}
		if d := src.Height() - src.baseline - 1; d > below {
			below = d
		}
		width += src.Width()
	}
	out := &CharMap{cells: blankCells(width, above+below+1), baseline: above}
	col := 0
	for _, src := range maps {
		out.blit(src, above-src.baseline, col)
		col += src.Width()
	}
	return out
}

// Over stacks top above a horizontal bar above bottom. The baseline sits
// on the bar.
func Over(top, bottom *CharMap) *CharMap {
	width := top.Width()
	if bottom.Width() > width {
		width = bottom.Width()
	}
	width += 2 // the bar overhangs both operands by one column
	out := &CharMap{
		cells:    blankCells(width, top.Height()+bottom.Height()+1),
		baseline: top.Height(),
	}
	for j := 0; j < width; j++ {
		out.cells[top.Height()][j] = '-'
	}
	out.blit(top, 0, (width-top.Width())/2)
	out.blit(bottom, top.Height()+1, (width-bottom.Width())/2)
	return out
}

// Raise places exp as a superscript of base: exp's bottom row sits one
// above base's top row, and the baseline stays with base.
func Raise(base, exp *CharMap) *CharMap {
	out := &CharMap{
		cells:    blankCells(base.Width()+exp.Width(), base.Height()+exp.Height()),
		baseline: exp.Height() + base.baseline,
	}
	out.blit(base, exp.Height(), 0)
	out.blit(exp, 0, base.Width())
	return out
}

// Parens wraps m in parentheses, drawn tall when m spans several rows.
func Parens(m *CharMap) *CharMap {
	h := m.Height()
	if h == 1 {
		return Beside(NewCharMap("("), m, NewCharMap(")"))
	}
	left := &CharMap{cells: blankCells(1, h), baseline: m.baseline}
	right := &CharMap{cells: blankCells(1, h), baseline: m.baseline}
	for i := 0; i < h; i++ {
		var l, r rune
		switch i {
		case 0:
			l, r = '/', '\\'
		case h - 1:
			l, r = '\\', '/'
		default:
			l, r = '|', '|'
		}
		left.cells[i][0] = l
		right.cells[i][0] = r
	}
	return Beside(left, m, right)
}
