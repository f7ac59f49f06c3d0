package cataloging

import "errors"

var (
	ErrChannelNotFound   = errors.New("canal não encontrado")
	ErrBenchmarkNotFound = errors.New("benchmark não encontrado")
)
