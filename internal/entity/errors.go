package entity

import "errors"

var (
	ErrBatchNotFound   = errors.New("batch not found")
	ErrImageNotFound   = errors.New("image not found")
	ErrEmptyBatch      = errors.New("no image files provided")
	ErrUnsupportedType = errors.New("unsupported image type")
)
