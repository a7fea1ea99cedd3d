package utils

// Assert panics when condition does not hold. It guards programmer errors
// only; anything reachable from user input must be validated before it
// gets here.
func Assert(condition bool, message ...string) {
	if !condition {
		if len(message) == 1 {
			panic(message[0])
		}
		panic("failed assertion")
	}
}

// AssertErr panics with err when condition does not hold, so a recover
// site can inspect the typed value.
func AssertErr(condition bool, err func() error) {
	if !condition {
		panic(err())
	}
}
