package queries

import (
	"staybook/internal/pkg/errs"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

var (
	ErrInvalidPage     = errs.NewKind("page must be a positive integer", errs.ErrInvalidInput)
	ErrInvalidPageSize = errs.NewKind("limit must be a positive integer", errs.ErrInvalidInput)
)

type PageRequest struct {
	Page int
	Size int
}

// NewPageRequest applies the defaults to absent values and caps Size at MaxPageSize.
func NewPageRequest(page, size *int) (PageRequest, error) {
	p := PageRequest{Page: DefaultPage, Size: DefaultPageSize}
	if page != nil {
		if *page < 1 {
			return PageRequest{}, ErrInvalidPage
		}
		p.Page = *page
	}
	if size != nil {
		if *size < 1 {
			return PageRequest{}, ErrInvalidPageSize
		}
		p.Size = min(*size, MaxPageSize)
	}
	return p, nil
}

func DefaultPageRequest() PageRequest {
	return PageRequest{Page: DefaultPage, Size: DefaultPageSize}
}

func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Size
}

type Page[T any] struct {
	CurrentPage  int `json:"currentPage"`
	TotalPages   int `json:"totalPages"`
	TotalResults int `json:"totalResults"`
	Data         []T `json:"data"`
}

func NewPage[T any](req PageRequest, total int, data []T) *Page[T] {
	if data == nil {
		data = []T{}
	}
	return &Page[T]{
		CurrentPage:  req.Page,
		TotalPages:   TotalPages(total, req.Size),
		TotalResults: total,
		Data:         data,
	}
}

// TotalPages is ceil(total/size), and 0 when there is nothing to page.
func TotalPages(total, size int) int {
	if total <= 0 || size <= 0 {
		return 0
	}
	return (total + size - 1) / size
}
