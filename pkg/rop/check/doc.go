// Package check propagates failed results out of the calling function and
// binds the payload of successful ones.
//
// Two styles are provided.
//
// The explicit style returns the failure to the caller, who returns it:
//
//	func open(name string) rop.Result[*os.File] { ... }
//
//	func size(name string) rop.Result[int64] {
//		var f *os.File
//		if out, failed := check.PropagateInto[int64](open(name), &f); failed {
//			return out
//		}
//		defer f.Close()
//		...
//	}
//
// Err and Into do the same for functions that return a plain error.
//
// The guarded style unwinds to the nearest Guard or Run without an explicit
// return at every call site:
//
//	res := check.Guard(func() int64 {
//		f := check.Must(open(name))
//		defer f.Close()
//		...
//	})
//
// Do, Must and MustInto called outside any guard panic with the failure.
//
// Neither style changes the error it propagates, and each invocation exits
// only its own enclosing function (or guard).
package check
