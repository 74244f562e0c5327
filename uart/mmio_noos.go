//go:build noos

package uart

import (
	"embedded/mmio"
	"unsafe"
)

var regs *registers = (*registers)(unsafe.Pointer(BaseAddr))

type registers struct {
	data mmio.U8
	_    [LSROffset - DataOffset - 1]mmio.U8
	lsr  mmio.U8
}

func (r *registers) LoadData() byte         { return r.data.Load() }
func (r *registers) StoreData(b byte)       { r.data.Store(b) }
func (r *registers) LoadStatus() LineStatus { return LineStatus(r.lsr.Load()) }

var port = Port{regs: regs}

// MMIO returns the port for the UART registers at [BaseAddr]. All calls return
// the same port, it is the only mapping of these registers.
//
//go:nosplit
func MMIO() *Port { return &port }
