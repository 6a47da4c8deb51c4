package heightmap

import (
	"bufio"
	"fmt"
	"io"
)

const asmBytesPerLine = 16

// WriteAsm emits the table as a read-only data section for the ROM build
// Symbols: tileIdToHeightMap (u8 per tile id) and heightMaps (8 u8 per profile)
func (t *Table) WriteAsm(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprint(bw, ".section .rodata_binf\n\n")
	fmt.Fprint(bw, "    .align  2\n    .global tileIdToHeightMap\ntileIdToHeightMap:\n")
	writeDcb(bw, t.index)

	flat := make([]uint8, 0, len(t.profiles)*Columns)
	for _, p := range t.profiles {
		flat = append(flat, p[:]...)
	}
	fmt.Fprint(bw, "\n    .align  2\n    .global heightMaps\nheightMaps:\n")
	writeDcb(bw, flat)

	return bw.Flush()
}

// WriteHeader emits the C declarations and lookup helper matching WriteAsm
func (t *Table) WriteHeader(w io.Writer) error {
	_, err := fmt.Fprintf(w, `#ifndef _RES_COLLISION_H_
#define _RES_COLLISION_H_

extern const u8 tileIdToHeightMap[%d];
extern const u8 heightMaps[%d][8];

u8 getHeightValue(u16 tileId, u8 offsetX) {
    u8 heightMapIdx = tileIdToHeightMap[tileId];
    if (heightMapIdx == 0) {
        return 0;
    }
    const u8 *heightMap = heightMaps[heightMapIdx - 1];
    return heightMap[offsetX];
}

#endif // _RES_COLLISION_H_
`, len(t.index), len(t.profiles))
	return err
}

func writeDcb(w *bufio.Writer, data []uint8) {
	for start := 0; start < len(data); start += asmBytesPerLine {
		end := min(start+asmBytesPerLine, len(data))
		w.WriteString("    dc.b    ")
		for i, b := range data[start:end] {
			if i > 0 {
				w.WriteString(", ")
			}
			fmt.Fprintf(w, "0x%02x", b)
		}
		w.WriteByte('\n')
	}
}
