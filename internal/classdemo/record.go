// --- classdemo/internal/classdemo/record.go ---

package classdemo

// ClassEx1 holds a single integer field that callers never initialize.
type ClassEx1 struct {
	MyInt int
}

// NewClassEx1 returns a fresh instance with MyInt at its default of 0.
func NewClassEx1() *ClassEx1 {
	return &ClassEx1{MyInt: 0}
}
