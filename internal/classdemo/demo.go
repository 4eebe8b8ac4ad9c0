// --- classdemo/internal/classdemo/demo.go ---

package classdemo

import (
	"fmt"
	"io"
)

const Banner = "***Demonstration-1. A class demo with 2 objects ***"

// Run builds two independent ClassEx1 values and writes their fields to w,
// one line each, after the banner. It stops at the first failed write.
func Run(w io.Writer) error {
	// 1. Two objects, no arguments
	obA := NewClassEx1()
	obB := NewClassEx1()

	// 2. Print in order
	lines := []string{
		Banner,
		fmt.Sprintf("obA.myInt = %d", obA.MyInt),
		fmt.Sprintf("obB.myInt = %d", obB.MyInt),
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("write %q: %w", line, err)
		}
	}
	return nil
}
