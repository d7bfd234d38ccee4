package core

// DisplayDriver is the abstract character-display interface core code
// paints through: clear, set_cursor(col,row), print(bytes).
// Platform-specific code wraps the real hardware driver; tests
// substitute a fake that records calls.
type DisplayDriver interface {
	Clear()
	SetCursor(col, row int)
	Print(b []byte)
}

var displayDriver DisplayDriver

// SetDisplayDriver is called by target-specific code to register its driver.
func SetDisplayDriver(d DisplayDriver) {
	displayDriver = d
}

// MustDisplay returns the configured driver or panics if missing.
func MustDisplay() DisplayDriver {
	if displayDriver == nil {
		panic("display driver not configured")
	}
	return displayDriver
}

// Paint writes all four rows to the display. It is the single function
// through which every display write happens.
func Paint(rows [DisplayRows]Row) {
	drv := MustDisplay()
	for row := 0; row < DisplayRows; row++ {
		drv.SetCursor(0, row)
		drv.Print(rows[row][:])
	}
}
