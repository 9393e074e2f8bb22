package limit_test

import "fmt"

// recoverErr runs fn and returns the error it panicked with, if any.
func recoverErr(fn func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		e, ok := r.(error)
		if !ok {
			err = fmt.Errorf("panic: %v", r)
			return
		}
		err = e
	}()

	fn()
	return nil
}
