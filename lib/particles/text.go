package particles

import (
	"fmt"

	"github.com/phil-mansfield/mirror/lib/catio"
)

// ReadText reads particles from a text catalog with the columns
// x y z vx vy vz. Every particle is placed in the "all" group.
func ReadText(fname string, config ...catio.TextConfig) (*Local, error) {
	rd, err := catio.TextFile(fname, config...)
	if err != nil {
		return nil, err
	}
	return readColumns(rd)
}

func readColumns(rd catio.Reader) (*Local, error) {
	cols, err := rd.ReadFloat64s([]int{0, 1, 2, 3, 4, 5})
	if err != nil {
		return nil, err
	}

	n := len(cols[0])
	if n == 0 {
		return nil, fmt.Errorf("The particle catalog contains no particles.")
	}

	p := New(n)
	for i := 0; i < n; i++ {
		for dim := 0; dim < 3; dim++ {
			p.X[i][dim] = cols[dim][i]
			p.V[i][dim] = cols[dim+3][i]
		}
	}
	return p, nil
}
