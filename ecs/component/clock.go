package component

// Clock is a singleton resource holding the host frame delta in seconds.
// Time-based systems read it instead of calling the wall clock, which
// keeps them deterministic under test.
type Clock struct {
	Delta float64
}

var ClockComponent = NewComponent[Clock]()
