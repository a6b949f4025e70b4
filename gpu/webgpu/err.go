package webgpu

import "fmt"

// Handle panics with the formatted description if err is non-nil. Used
// for failures a renderer cannot continue from.
func Handle(err error, desc string, args ...any) {
	if err != nil {
		text := fmt.Sprintf(desc, args...)
		panic(text + ": " + err.Error())
	}
}
