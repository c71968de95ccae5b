package middleware

import (
	"net/http"
	"strings"

	"umrah-booking/pkg/utils"
)

// MethodOverride turns a POST carrying _method=PUT|PATCH|DELETE (form field) or an
// X-HTTP-Method-Override header into that method.
func MethodOverride(maxMemory int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodPost {
				method := strings.ToUpper(r.Header.Get("X-HTTP-Method-Override"))

				if method == "" && isForm(r) {
					if err := r.ParseMultipartForm(maxMemory); err != nil && err != http.ErrNotMultipart {
						utils.ResponseBadRequest(w, "Invalid multipart form", nil)
						return
					}
					method = strings.ToUpper(r.FormValue("_method"))
				}

				switch method {
				case http.MethodPut, http.MethodPatch, http.MethodDelete:
					r.Method = method
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

func isForm(r *http.Request) bool {
	ct := r.Header.Get("Content-Type")
	return strings.HasPrefix(ct, "multipart/form-data") ||
		strings.HasPrefix(ct, "application/x-www-form-urlencoded")
}
