package core

// commandsHeaderLine is the exact first line identifying a command-list
// frame.
const commandsHeaderLine = "COMMANDS v1"

// metaPrefix is the literal first token of a metadata frame.
const metaPrefix = "META"

// Router classifies a committed Frame and mutates the UI model, scroll
// buffer, link state, and LEDs accordingly. It holds no state of its
// own; everything it touches is passed in.
type Router struct{}

// Route dispatches a single committed frame. now is the current
// monotonic millisecond time, used to refresh link liveness and to
// time the acknowledgement LED pulse.
func (Router) Route(f *Frame, model *Model, buf *ScrollBuffer, link *LinkState, leds *LEDs, now uint32) {
	if f.Len() == 0 {
		return
	}

	line0Line := f.Line(0)
	line0 := line0Line.Bytes()

	switch {
	case isMetaLine(line0):
		routeMeta(f, model, buf, link, leds, now)
	case string(line0) == commandsHeaderLine:
		routeCommands(f, model, link, now)
	default:
		routeTelemetry(f, model, buf, link, leds, now, 0)
	}
}

func isMetaLine(line0 []byte) bool {
	if len(line0) < len(metaPrefix) {
		return false
	}
	if string(line0[:len(metaPrefix)]) != metaPrefix {
		return false
	}
	return len(line0) == len(metaPrefix) || line0[len(metaPrefix)] == ' '
}

func routeMeta(f *Frame, model *Model, buf *ScrollBuffer, link *LinkState, leds *LEDs, now uint32) {
	metaLine := f.Line(0)
	applyMetaFields(metaLine.Bytes(), link)

	if f.Len() > 1 {
		// META followed by payload lines is treated as telemetry with
		// the META line stripped.
		routeTelemetry(f, model, buf, link, leds, now, 1)
		return
	}

	// META-only frame: keepalive. Refreshes liveness; the scroll buffer
	// and the green LED are left untouched.
	link.Refresh(now)
}

func applyMetaFields(line0 []byte, link *LinkState) {
	const key = "interval="
	i := 0
	for i < len(line0) {
		for i < len(line0) && line0[i] == ' ' {
			i++
		}
		start := i
		for i < len(line0) && line0[i] != ' ' {
			i++
		}
		tok := line0[start:i]
		if len(tok) > len(key) && string(tok[:len(key)]) == key {
			if ms, ok := parseDecimalSecondsMs(tok[len(key):]); ok {
				link.ApplyHeartbeatIntervalMs(ms)
			}
		}
	}
}

func routeCommands(f *Frame, model *Model, link *LinkState, now uint32) {
	n := 0
	for i := 1; i < f.Len() && n < CommandsCapacity; i++ {
		cmdLine := f.Line(i)
		id, label, ok := splitCommandLine(cmdLine.Bytes())
		if !ok {
			continue
		}
		model.Commands[n].SetID(id)
		model.Commands[n].SetLabel(label)
		n++
	}

	model.CommandsCount = n
	model.ResetCommandMenu()
	model.RequestedMode = ModeCommands
	model.SetMode(now, ModeCommands)

	link.Refresh(now)
}

func splitCommandLine(line []byte) (id, label []byte, ok bool) {
	sp := -1
	for i, c := range line {
		if c == ' ' {
			sp = i
			break
		}
	}
	if sp <= 0 {
		// No space, or an empty id (line starts with a space): malformed.
		return nil, nil, false
	}
	id = line[:sp]
	if sp+1 <= len(line) {
		label = line[sp+1:]
	}
	return id, label, true
}

func routeTelemetry(f *Frame, model *Model, buf *ScrollBuffer, link *LinkState, leds *LEDs, now uint32, startLine int) {
	savedScroll := model.Scroll

	buf.Clear()
	for i := startLine; i < f.Len(); i++ {
		telLine := f.Line(i)
		buf.Push(telLine.Bytes())
	}

	model.Scroll = savedScroll
	model.ClampScroll(buf.Size())

	if model.RequestedMode == ModeTelemetry {
		model.SetMode(now, ModeTelemetry)
	}

	link.Refresh(now)
	leds.PulseGreen(now)
}
