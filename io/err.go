package io

import (
	"errors"

	"github.com/ezrec/bfdb/translate"
)

var f = translate.From

var (
	// Cell I/O errors
	ErrInputEnd = errors.New(f("end of input"))
	ErrEofMode  = errors.New(f("unknown end of input mode"))
)
