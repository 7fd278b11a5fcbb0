package flist

import (
	"errors"
)

var (
	ErrorListIsEmpty          = errors.New("list is empty")
	ErrorCursorIsEnd          = errors.New("cursor is the end cursor")
	ErrorCursorIsNotInTheList = errors.New("cursor is not in the list")
	ErrorCursorHasNoNext      = errors.New("cursor has no next element")
)
