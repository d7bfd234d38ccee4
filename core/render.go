package core

// DisplayWidth and DisplayRows are the physical display geometry
// (20 columns x 4 rows).
const (
	DisplayWidth = 20
	DisplayRows  = 4
)

var waitAnimGlyphs = [WaitAnimFrames]byte{'|', '/', '-', '\\'}

// Row is one fully-padded, exactly-DisplayWidth-byte display line.
type Row [DisplayWidth]byte

// Render projects (mode, model, liveness, animation frame,
// display-timeout) into the four rows the display driver paints.
// It touches no I/O; Paint is responsible for actually writing the
// rows out.
func Render(model *Model, buf *ScrollBuffer, haveData bool, waitAnimFrame int, displayTimeoutMs uint32) [DisplayRows]Row {
	var rows [DisplayRows]Row

	if !haveData {
		renderWaiting(&rows, waitAnimFrame, displayTimeoutMs)
		return rows
	}

	switch model.Mode {
	case ModeTelemetry:
		renderTelemetry(&rows, model, buf)
	case ModeCommandsWaiting:
		renderCommandsWaiting(&rows)
	case ModeCommands:
		renderCommands(&rows, model)
	}
	return rows
}

func blankRow(r *Row) {
	for i := range r {
		r[i] = ' '
	}
}

func padInto(r *Row, s []byte) {
	n := copy(r[:], s)
	for i := n; i < DisplayWidth; i++ {
		r[i] = ' '
	}
}

const waitingPrefix = "Waiting for data"

func renderWaiting(rows *[DisplayRows]Row, waitAnimFrame int, displayTimeoutMs uint32) {
	blankRow(&rows[0])
	copy(rows[0][:], waitingPrefix)
	rows[0][DisplayWidth-1] = waitAnimGlyphs[waitAnimFrame%WaitAnimFrames]

	if displayTimeoutMs == 0 {
		padInto(&rows[1], []byte("Timeout: --"))
	} else {
		seconds := (displayTimeoutMs + 500) / 1000
		var digits [10]byte
		i := len(digits)
		for {
			i--
			digits[i] = byte('0' + seconds%10)
			seconds /= 10
			if seconds == 0 {
				break
			}
		}
		blankRow(&rows[1])
		n := copy(rows[1][:], "Timeout: ")
		n += copy(rows[1][n:], digits[i:])
		rows[1][n] = 's'
	}

	blankRow(&rows[2])
	blankRow(&rows[3])
}

func renderTelemetry(rows *[DisplayRows]Row, model *Model, buf *ScrollBuffer) {
	for row := 0; row < DisplayRows; row++ {
		line := buf.Get(model.Scroll + row)
		padInto(&rows[row], line.Bytes())
	}
}

func renderCommandsWaiting(rows *[DisplayRows]Row) {
	padInto(&rows[0], []byte("> Loading commands..."))
	blankRow(&rows[1])
	blankRow(&rows[2])
	blankRow(&rows[3])
}

func renderCommands(rows *[DisplayRows]Row, model *Model) {
	total := model.Total()
	for row := 0; row < DisplayRows; row++ {
		idx := model.WindowStart + row
		if idx >= total {
			blankRow(&rows[row])
			continue
		}

		marker := byte(' ')
		if idx == model.CursorIndex {
			marker = '>'
		}

		var label []byte
		if idx == model.CommandsCount {
			label = []byte(ExitLabel)
		} else {
			label = model.Commands[idx].Label()
		}

		rows[row][0] = marker
		n := copy(rows[row][1:], label)
		for i := 1 + n; i < DisplayWidth; i++ {
			rows[row][i] = ' '
		}
	}
}
