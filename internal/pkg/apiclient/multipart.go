package apiclient

import (
	"bytes"
	"net/url"

	"github.com/go-resty/resty/v2"
)

// Form multipart/form-data payload. Repeated text fields (tags_ids,
// media_to_remove) and repeated file parts keep insertion order.
type Form struct {
	values url.Values
	files  []*resty.MultipartField
}

func NewForm() *Form {
	return &Form{values: url.Values{}}
}

func (f *Form) Add(name, value string) *Form {
	f.values.Add(name, value)
	return f
}

func (f *Form) AddFile(field, fileName, contentType string, data []byte) *Form {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	f.files = append(f.files, &resty.MultipartField{
		Param:       field,
		FileName:    fileName,
		ContentType: contentType,
		Reader:      bytes.NewReader(data),
	})
	return f
}

// Values returns every value written under name, for assertions and logging.
func (f *Form) Values(name string) []string {
	return f.values[name]
}

func (f *Form) FileCount() int {
	return len(f.files)
}

// apply 写入请求; multipart is forced even when the form carries no file
func (f *Form) apply(r *resty.Request) *resty.Request {
	return r.SetFormDataFromValues(f.values).SetMultipartFields(f.files...)
}
