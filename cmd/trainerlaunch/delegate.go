package main

import (
	"os"

	"github.com/icpctrainer/trainerlaunch/internal/bootstrap"
)

// delegate hands control to the prepared interpreter, forwarding the given
// arguments and the merged environment. On unix the process image is
// replaced; on windows the child is spawned and waited on, and its exit
// code becomes ours. It returns only when the hand-off itself fails.
func delegate(res *bootstrap.Result, forwarded []string) error {
	argv := res.Argv(forwarded)
	env := res.Env(os.Environ())
	return execReplace(argv, env)
}
