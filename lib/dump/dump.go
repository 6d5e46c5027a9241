/*package dump reads and writes particle dumps: a small fixed-size header
followed by a zstd-compressed block containing positions, velocities, and
group masks. All values are little-endian.*/
package dump

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"unsafe"

	"github.com/DataDog/zstd"

	"github.com/phil-mansfield/mirror/lib/particles"
)

var (
	// Magic identifies mirror dump files.
	Magic uint64 = 0x6d6972726f720001
	// Version is the version of the dump format.
	Version uint64 = 0x1
	// Level is the zstd compression level used for dumps.
	Level = 3
	// ChunkSize is the number of particles read from a dump at a time.
	ChunkSize = 1 << 16
)

// Header describes the contents of a dump.
type Header struct {
	Magic, Version uint64
	Step, N        int64
	BoxLo, BoxHi   [3]float64
	Dt             float64
}

// Write writes a header and the particles in p to wr. The Magic, Version, and
// N fields of hd are set by Write.
func Write(wr io.Writer, hd Header, p *particles.Local) error {
	hd.Magic, hd.Version, hd.N = Magic, Version, int64(p.NLocal())
	if err := binary.Write(wr, binary.LittleEndian, &hd); err != nil {
		return err
	}

	zw := zstd.NewWriterLevel(wr, Level)
	if err := writeBlock(zw, p); err != nil {
		zw.Close()
		return err
	}
	return zw.Close()
}

func writeBlock(wr io.Writer, p *particles.Local) error {
	if _, err := wr.Write(vecBytes(p.X)); err != nil {
		return err
	}
	if _, err := wr.Write(vecBytes(p.V)); err != nil {
		return err
	}
	return binary.Write(wr, binary.LittleEndian, p.Mask)
}

// Read reads a dump written by Write.
func Read(rd io.Reader) (Header, *particles.Local, error) {
	hd := Header{}
	if err := binary.Read(rd, binary.LittleEndian, &hd); err != nil {
		return hd, nil, fmt.Errorf("Could not read dump header: %s",
			err.Error())
	}
	if hd.Magic != Magic {
		return hd, nil, fmt.Errorf("The dump has magic number 0x%x, but "+
			"0x%x was expected. It is probably not a mirror dump.",
			hd.Magic, Magic)
	} else if hd.Version != Version {
		return hd, nil, fmt.Errorf("The dump has version %d, but this "+
			"version of mirror can only read version %d.", hd.Version, Version)
	} else if hd.N < 0 {
		return hd, nil, fmt.Errorf("The dump header is corrupted: it "+
			"claims to contain %d particles.", hd.N)
	}

	zr := zstd.NewReader(rd)
	defer zr.Close()

	p, err := readBlock(zr, hd.N)
	if err != nil {
		return hd, nil, err
	}

	return hd, p, nil
}

// readBlock reads n particles in chunks of at most ChunkSize, so memory is
// only allocated for data which is actually present in the stream.
func readBlock(rd io.Reader, n int64) (*particles.Local, error) {
	p := &particles.Local{}
	var err error
	if p.X, err = readVecs(rd, n); err != nil {
		return nil, fmt.Errorf("Could not read positions: %s", err.Error())
	}
	if p.V, err = readVecs(rd, n); err != nil {
		return nil, fmt.Errorf("Could not read velocities: %s", err.Error())
	}

	p.Mask = make([]int32, 0, chunkCap(n))
	for int64(len(p.Mask)) < n {
		buf := make([]int32, chunkCap(n-int64(len(p.Mask))))
		if err := binary.Read(rd, binary.LittleEndian, buf); err != nil {
			return nil, fmt.Errorf("Could not read masks: %s", err.Error())
		}
		p.Mask = append(p.Mask, buf...)
	}
	return p, nil
}

func readVecs(rd io.Reader, n int64) ([][3]float64, error) {
	out := make([][3]float64, 0, chunkCap(n))
	for int64(len(out)) < n {
		buf := make([][3]float64, chunkCap(n-int64(len(out))))
		if _, err := io.ReadFull(rd, vecBytes(buf)); err != nil {
			return nil, err
		}
		out = append(out, buf...)
	}
	return out, nil
}

func chunkCap(n int64) int {
	if n > int64(ChunkSize) {
		return ChunkSize
	}
	return int(n)
}

// WriteFile writes a dump to fname, creating its directory if needed.
func WriteFile(fname string, hd Header, p *particles.Local) error {
	if dir := filepath.Dir(fname); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := Write(f, hd, p); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadFile reads the dump fname.
func ReadFile(fname string) (Header, *particles.Local, error) {
	f, err := os.Open(fname)
	if err != nil {
		return Header{}, nil, err
	}
	defer f.Close()
	return Read(f)
}

// vecBytes views a [][3]float64 as raw bytes. binary.Write goes through
// reflection for arrays of arrays, which is slow and allocates heavily.
// The view is only valid on little-endian machines.
func vecBytes(x [][3]float64) []byte {
	if len(x) == 0 {
		return []byte{}
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&x[0][0])), len(x)*24)
}
