// This file is part of VGABall.
//
// VGABall is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// VGABall is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with VGABall.  If not, see <https://www.gnu.org/licenses/>.

package registers

import (
	"os"
	"unsafe"

	"github.com/jetsetilly/vgaball/curated"
	"golang.org/x/sys/unix"
)

// error patterns for the memory-mapped register file.
const (
	MapFault   = "memmap: %v"
	WriteFault = "memmap: write: %v"
)

// MemMap is a File implementation over a memory-mapped register window. The
// window is mapped from a device file; either /dev/mem with the peripheral's
// physical base address, or a UIO node with base 0.
type MemMap struct {
	dev *os.File
	mem []byte

	// offset of the register window into the mapping. non-zero when the
	// base address is not page aligned
	skew uint32
}

// NewMemMap maps the vga_ball register window from the named device file.
// The base argument is the physical address of the peripheral's registers.
func NewMemMap(device string, base uint64) (*MemMap, error) {
	dev, err := os.OpenFile(device, os.O_RDWR|os.O_SYNC, 0)
	if err != nil {
		return nil, curated.Errorf(MapFault, err)
	}

	// mmap offsets must be page aligned. map from the enclosing page and
	// remember how far into the mapping the register window starts
	pageSize := uint64(os.Getpagesize())
	page := base &^ (pageSize - 1)
	skew := base - page

	mem, err := unix.Mmap(int(dev.Fd()), int64(page), int(skew)+MapSize,
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		dev.Close()
		return nil, curated.Errorf(MapFault, err)
	}

	return &MemMap{
		dev:  dev,
		mem:  mem,
		skew: uint32(skew),
	}, nil
}

// WriteWord implements the File interface. The store is a single 32-bit
// store, matching the word-width the hardware decodes.
func (m *MemMap) WriteWord(offset uint32, value uint32) error {
	if m.mem == nil {
		return curated.Errorf(WriteFault, "register window not mapped")
	}
	if offset >= MapSize || offset%4 != 0 {
		return curated.Errorf(WriteFault, "bad register offset")
	}

	*(*uint32)(unsafe.Pointer(&m.mem[m.skew+offset])) = value

	return nil
}

// Close implements the File interface.
func (m *MemMap) Close() error {
	if m.mem == nil {
		return nil
	}

	err := unix.Munmap(m.mem)
	m.mem = nil

	if err2 := m.dev.Close(); err == nil {
		err = err2
	}

	if err != nil {
		return curated.Errorf(MapFault, err)
	}
	return nil
}
