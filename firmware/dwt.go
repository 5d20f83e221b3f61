//go:build tinygo && cortexm

package main

import (
	"runtime/volatile"
	"unsafe"
)

// Cortex-M Data Watchpoint and Trace unit
var (
	demcr     = (*volatile.Register32)(unsafe.Pointer(uintptr(0xE000EDFC)))
	dwtCtrl   = (*volatile.Register32)(unsafe.Pointer(uintptr(0xE0001000)))
	dwtCyccnt = (*volatile.Register32)(unsafe.Pointer(uintptr(0xE0001004)))
)

const (
	demcrTRCENA      = 1 << 24
	dwtCtrlCYCCNTENA = 1 << 0
)

// enableCycleCounter starts CYCCNT from zero
func enableCycleCounter() {
	demcr.SetBits(demcrTRCENA)
	dwtCyccnt.Set(0)
	dwtCtrl.SetBits(dwtCtrlCYCCNTENA)
}

// dwtCounter reads CYCCNT, which increments once per core clock cycle
type dwtCounter struct{}

func (dwtCounter) Count() uint32 {
	return dwtCyccnt.Get()
}
