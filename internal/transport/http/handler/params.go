package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// urlID parses the named chi URL parameter as a positive integer id.
func urlID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}
