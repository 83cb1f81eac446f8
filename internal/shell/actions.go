package shell

// action is one entry of the main menu.
type action int

const (
	actionAdd action = iota
	actionCheckout
	actionReturn
	actionState
	actionSearch
	actionCount
	actionClear
	actionExit
)

// menu lists the actions in display order.
var menu = []action{
	actionAdd,
	actionCheckout,
	actionReturn,
	actionState,
	actionSearch,
	actionCount,
	actionClear,
	actionExit,
}

func (a action) String() string {
	switch a {
	case actionAdd:
		return "Add a Book"
	case actionCheckout:
		return "Checkout a Book"
	case actionReturn:
		return "Return a Book"
	case actionState:
		return "Check Book State"
	case actionSearch:
		return "Search for a Book"
	case actionCount:
		return "Count Books"
	case actionClear:
		return "Clear Terminal"
	case actionExit:
		return "Exit"
	default:
		return "unknown"
	}
}
