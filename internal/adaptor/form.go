package adaptor

import (
	"errors"
	"mime"
	"mime/multipart"
	"net/http"
	"reflect"
	"strings"

	"umrah-booking/pkg/storage"
	"umrah-booking/pkg/utils"

	"github.com/gorilla/schema"
)

var formDecoder = newFormDecoder()

func newFormDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.SetAliasTag("form")
	// _method and file parts are not DTO fields
	d.IgnoreUnknownKeys(true)
	return d
}

func isMultipart(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "multipart/form-data"
}

// parseMultipart returns the parsed form, reusing the one MethodOverride may have parsed already.
func parseMultipart(r *http.Request, maxMemory int64) (*multipart.Form, error) {
	if r.MultipartForm == nil {
		if err := r.ParseMultipartForm(maxMemory); err != nil {
			return nil, err
		}
	}
	return r.MultipartForm, nil
}

// decodeForm decodes the text fields of form into dst and validates it,
// writing a 422 on failure.
func decodeForm(w http.ResponseWriter, form *multipart.Form, dst any) bool {
	if err := formDecoder.Decode(dst, formValues(form.Value)); err != nil {
		utils.ResponseUnprocessable(w, "Validation failed", formErrors(err))
		return false
	}
	return validate(w, dst)
}

// formValues folds "key[]" into "key" and drops blank values, so an empty
// field reads as not sent.
func formValues(values map[string][]string) map[string][]string {
	out := make(map[string][]string, len(values))
	for key, vals := range values {
		key = strings.TrimSuffix(key, "[]")
		for _, v := range vals {
			if v = strings.TrimSpace(v); v != "" {
				out[key] = append(out[key], v)
			}
		}
	}
	return out
}

func formErrors(err error) map[string]string {
	var multi schema.MultiError
	if !errors.As(err, &multi) {
		return map[string]string{"form": "Invalid form data"}
	}

	errs := make(map[string]string, len(multi))
	for key, fieldErr := range multi {
		errs[key] = conversionMessage(fieldErr)
	}
	return errs
}

func conversionMessage(err error) string {
	var conv schema.ConversionError
	if !errors.As(err, &conv) || conv.Type == nil {
		return "Invalid value"
	}

	switch conv.Type.Kind() {
	case reflect.Int, reflect.Int32, reflect.Int64:
		return "Must be a whole number"
	case reflect.Float32, reflect.Float64:
		return "Must be a number"
	case reflect.Bool:
		return "Must be true or false"
	case reflect.Slice:
		return "Must be a JSON list"
	default:
		return "Invalid value"
	}
}

// formUploads opens every file sent under key or key[]. The returned func closes them.
func formUploads(form *multipart.Form, key string) ([]storage.Upload, func(), error) {
	headers := append(append([]*multipart.FileHeader{}, form.File[key]...), form.File[key+"[]"]...)
	return openUploads(headers)
}

// formUpload opens the first file under key, or returns nil when none was sent.
func formUpload(form *multipart.Form, key string) (*storage.Upload, func(), error) {
	headers := form.File[key]
	if len(headers) == 0 {
		return nil, func() {}, nil
	}

	uploads, closeAll, err := openUploads(headers[:1])
	if err != nil {
		return nil, closeAll, err
	}
	return &uploads[0], closeAll, nil
}

func openUploads(headers []*multipart.FileHeader) ([]storage.Upload, func(), error) {
	var files []multipart.File
	closeAll := func() {
		for _, f := range files {
			f.Close()
		}
	}

	uploads := make([]storage.Upload, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			closeAll()
			return nil, func() {}, err
		}
		files = append(files, f)

		uploads = append(uploads, storage.Upload{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Content:     f,
		})
	}

	return uploads, closeAll, nil
}
