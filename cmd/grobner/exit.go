package main

// exitCodeError carries a process exit code alongside its error, the
// same UNSAT/SAT exit-code convention the teacher's main() applies
// directly via os.Exit(3).
type exitCodeError struct {
	code int
	err  error
}

func (e *exitCodeError) Error() string { return e.err.Error() }
func (e *exitCodeError) Unwrap() error { return e.err }
