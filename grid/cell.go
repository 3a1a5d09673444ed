package grid

import "fmt"

// Pos returns the cell's (row, col).
func (c *Cell) Pos() (row, col int) { return c.Row, c.Col }

// String formats the cell as "(row,col)".
func (c *Cell) String() string { return fmt.Sprintf("(%d,%d)", c.Row, c.Col) }

// Grid returns the grid that owns c.
func (c *Cell) Grid() *Grid { return c.grid }

// State mutators. None of them check exclusivity of Start or End;
// the controller is responsible for that.

func (c *Cell) MarkStart()   { c.State = Start }
func (c *Cell) MarkEnd()     { c.State = End }
func (c *Cell) MarkBarrier() { c.State = Barrier }
func (c *Cell) MarkEmpty()   { c.State = Empty }
func (c *Cell) MarkOpen()    { c.State = Open }
func (c *Cell) MarkClosed()  { c.State = Closed }
func (c *Cell) MarkPath()    { c.State = Path }

// State predicates.

func (c *Cell) IsEmpty() bool   { return c.State == Empty }
func (c *Cell) IsOpen() bool    { return c.State == Open }
func (c *Cell) IsClosed() bool  { return c.State == Closed }
func (c *Cell) IsBarrier() bool { return c.State == Barrier }
func (c *Cell) IsStart() bool   { return c.State == Start }
func (c *Cell) IsEnd() bool     { return c.State == End }
func (c *Cell) IsPath() bool    { return c.State == Path }
