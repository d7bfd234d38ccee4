//go:build !tinygo

package core

// systemMillis is the fake clock driving SystemClock under plain `go
// test`. Tests advance it directly via SetSystemMillis.
var systemMillis uint32

func getSystemMillis() uint32 {
	return systemMillis
}

func setSystemMillis(ms uint32) {
	systemMillis = ms
}
