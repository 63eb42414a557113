// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import "fmt"

// BadInputError reports arguments or runtime files the CLI cannot use.
type BadInputError struct {
	Reason string
	Err    error
}

func (e *BadInputError) Error() string {
	if e.Err == nil {
		return e.Reason
	}
	return fmt.Sprintf("%s: %v", e.Reason, e.Err)
}

func (e *BadInputError) Unwrap() error {
	return e.Err
}

// UnknownCommandError reports a missing or unrecognized verb.
type UnknownCommandError struct {
	Command string
}

func (e *UnknownCommandError) Error() string {
	if e.Command == "" {
		return "no command given, see 'conf help'"
	}
	return fmt.Sprintf("unknown command %q, see 'conf help'", e.Command)
}
