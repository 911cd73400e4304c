package domain

import "errors"

var (
	// Item errors
	ErrItemNotFound    = errors.New("item not found")
	ErrInvalidCategory = errors.New("unknown item category")

	// Window errors
	ErrInvalidWindow = errors.New("window start is after window end")
)
