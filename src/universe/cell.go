package universe

//Cell is the state of one position of the field, stored as a single byte
//so the generation buffer can be handed to a renderer as is
type Cell byte

const (
	Dead  Cell = 0
	Alive Cell = 1
)

//String renders the cell the same way Universe.String does
func (c Cell) String() string {
	if c == Alive {
		return "◼"
	}
	return "◻"
}
