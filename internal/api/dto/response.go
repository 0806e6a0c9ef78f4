package dto

import (
	"bytes"

	"github.com/goccy/go-json"
)

// ListResponse 分页列表返回
type ListResponse[T any] struct {
	Results  []T     `json:"results"`
	Count    int64   `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
}

// HasNext reports whether the server advertised another page.
func (s *ListResponse[T]) HasNext() bool {
	return s.Next != nil && *s.Next != ""
}

// ErrorBody is the error payload the API returns on non-2xx responses.
type ErrorBody struct {
	Error  any    `json:"error"`
	Detail string `json:"detail"`
}

// FlexList accepts either a bare JSON array or a ListResponse envelope.
type FlexList[T any] struct {
	Items []T
	Count int64
	Next  bool
}

func (s *FlexList[T]) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '[' {
		if err := json.Unmarshal(b, &s.Items); err != nil {
			return err
		}
		s.Count = int64(len(s.Items))
		s.Next = false
		return nil
	}
	var page ListResponse[T]
	if err := json.Unmarshal(b, &page); err != nil {
		return err
	}
	s.Items = page.Results
	s.Count = page.Count
	s.Next = page.HasNext()
	return nil
}
