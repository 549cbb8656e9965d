package domain

import "errors"

var (
	ErrConfig   = errors.New("invalid configuration")
	ErrFetch    = errors.New("fetching issues failed")
	ErrDelivery = errors.New("delivering report failed")
)
